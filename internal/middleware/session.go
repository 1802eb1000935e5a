package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop-backend/internal/auth"
	"go.uber.org/zap"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "token"

const identityKey = "identity"

// RequireAuth extracts the session token from the request cookie, verifies
// it, and attaches the Identity to the context. Every outcome terminates the
// request: valid tokens continue the chain, everything else gets a 401.
func RequireAuth(codec *auth.TokenCodec, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User not authenticated",
				"success": false,
			})
			return
		}

		identity, err := codec.Verify(tokenString)
		if err != nil {
			logger.Debug("session token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid token",
				"success": false,
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRoles allows the request through only when the verified identity's
// role is in the allow-list. Must be mounted after RequireAuth.
func RequireRoles(roles ...auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := IdentityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "User not authenticated",
				"success": false,
			})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"message": "Access denied. You do not have the right role.",
			"success": false,
		})
	}
}

// IdentityFrom returns the Identity attached by RequireAuth.
func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := value.(auth.Identity)
	return identity, ok
}
