package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type AlertHandler struct {
	AlertService *services.AlertService
}

func NewAlertHandler(s *services.AlertService) *AlertHandler {
	return &AlertHandler{AlertService: s}
}

func (h *AlertHandler) Create(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req dtos.AlertCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	alert, err := h.AlertService.Create(identity.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Alert created successfully",
		"alert":   alert,
		"success": true,
	})
}

func (h *AlertHandler) Get(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	alert, err := h.AlertService.GetByOwner(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"response": alert,
		"message":  "Alert found",
		"success":  true,
	})
}

func (h *AlertHandler) Delete(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	if err := h.AlertService.DeleteByOwner(identity.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Alert deleted successfully",
		"success": true,
	})
}
