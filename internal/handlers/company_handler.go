package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type CompanyHandler struct {
	CompanyService *services.CompanyService
	UploadDir      string
}

func NewCompanyHandler(s *services.CompanyService, uploadDir string) *CompanyHandler {
	return &CompanyHandler{CompanyService: s, UploadDir: uploadDir}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	var req dtos.CompanyRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Company name is required.", "success": false})
		return
	}

	company, err := h.CompanyService.Register(identity.UserID, req.CompanyName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully.",
		"company": company,
		"success": true,
	})
}

func (h *CompanyHandler) List(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	companies, err := h.CompanyService.ListByUser(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"companies": companies,
		"success":   true,
	})
}

func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	company, err := h.CompanyService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"company": company,
		"success": true,
	})
}

func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	logoPath, _, err := saveUpload(c, "logo", h.UploadDir)
	if err != nil {
		respondError(c, err)
		return
	}

	company, err := h.CompanyService.Update(id, &req, logoPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company information updated.",
		"company": company,
		"success": true,
	})
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id.", "success": false})
		return
	}

	if err := h.CompanyService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company deleted successfully.",
		"success": true,
	})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
