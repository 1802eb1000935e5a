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

type StudentHandler struct {
	StudentService *services.StudentService
	Codec          *auth.TokenCodec
	UploadDir      string
}

func NewStudentHandler(s *services.StudentService, codec *auth.TokenCodec, uploadDir string) *StudentHandler {
	return &StudentHandler{StudentService: s, Codec: codec, UploadDir: uploadDir}
}

func (h *StudentHandler) Register(c *gin.Context) {
	var req dtos.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	if err := h.StudentService.Register(&req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully.",
		"success": true,
	})
}

func (h *StudentHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	student, err := h.StudentService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.Codec.Issue(student.ID, auth.RoleStudent)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token, int(h.Codec.TTL().Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome back %s", student.Fullname),
		"student": student,
		"success": true,
	})
}

func (h *StudentHandler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully.",
		"success": true,
	})
}

func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated", "success": false})
		return
	}

	var req dtos.StudentProfileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Something is missing", "success": false})
		return
	}

	resumePath, resumeName, err := saveUpload(c, "resume", h.UploadDir)
	if err != nil {
		respondError(c, err)
		return
	}

	student, err := h.StudentService.UpdateProfile(identity.UserID, &req, resumePath, resumeName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully.",
		"student": student,
		"success": true,
	})
}

// setSessionCookie stores the token the way the original does: httpOnly,
// SameSite=Strict, max-age matching the token validity window.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
}
