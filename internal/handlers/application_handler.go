package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(s *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: s}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job id is required.", "success": false})
		return
	}

	if err := h.ApplicationService.Apply(id, identity.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job applied successfully.",
		"success": true,
	})
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	applications, err := h.ApplicationService.ListByApplicant(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": applications,
		"success":      true,
	})
}

func (h *ApplicationHandler) Applicants(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Job id is required.", "success": false})
		return
	}

	job, applicants, err := h.ApplicationService.Applicants(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job": gin.H{
			"id":         job.ID,
			"title":      job.Title,
			"applicants": applicants,
		},
		"success": true,
	})
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Application id is required.", "success": false})
		return
	}

	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required.", "success": false})
		return
	}

	if err := h.ApplicationService.UpdateStatus(id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated successfully.",
		"success": true,
	})
}
