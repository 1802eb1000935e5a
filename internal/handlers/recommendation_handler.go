package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type RecommendationHandler struct {
	RecommendationService *services.RecommendationService
}

func NewRecommendationHandler(s *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{RecommendationService: s}
}

func (h *RecommendationHandler) RecommendedJobs(c *gin.Context) {
	identity, _ := middleware.IdentityFrom(c)

	jobs, err := h.RecommendationService.RecommendedJobs(identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(jobs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "No recommendations available.",
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendedJobs": jobs,
		"success":         true,
	})
}
