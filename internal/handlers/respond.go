package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/apperrors"
)

// respondError converts any service error into the JSON envelope. Unknown
// errors become a 500 so nothing crosses a handler boundary unhandled.
func respondError(c *gin.Context, err error) {
	domainErr := apperrors.AsDomain(err)
	c.JSON(domainErr.HTTPStatus(), gin.H{
		"message": domainErr.Message,
		"success": false,
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
