package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/auth"
	"github.com/hireloop/hireloop-backend/internal/dtos"
	"github.com/hireloop/hireloop-backend/internal/middleware"
	"github.com/hireloop/hireloop-backend/internal/services"
)

type RecruiterHandler struct {
	RecruiterService *services.RecruiterService
	Codec            *auth.TokenCodec
}

func NewRecruiterHandler(s *services.RecruiterService, codec *auth.TokenCodec) *RecruiterHandler {
	return &RecruiterHandler{RecruiterService: s, Codec: codec}
}

func (h *RecruiterHandler) Register(c *gin.Context) {
	var req dtos.RecruiterRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	if err := h.RecruiterService.Register(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"success": true,
	})
}

func (h *RecruiterHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	recruiter, err := h.RecruiterService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Codec.Issue(recruiter.ID, auth.RoleRecruiter)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token, int(h.Codec.TTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Welcome back %s", recruiter.Name),
		"recruiter": recruiter,
		"success":   true,
	})
}

func (h *RecruiterHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully.",
		"success": true,
	})
}

func (h *RecruiterHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated", "success": false})
		return
	}

	var req dtos.RecruiterProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	recruiter, err := h.RecruiterService.UpdateProfile(identity.UserID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Profile updated successfully.",
		"recruiter": recruiter,
		"success":   true,
	})
}
