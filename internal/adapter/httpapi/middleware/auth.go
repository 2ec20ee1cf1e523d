package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/muthomi-ke/land-platform/internal/auth"
	"github.com/muthomi-ke/land-platform/internal/platform/logger"
)

// UserIDKey is the gin context key carrying the authenticated user's id.
const UserIDKey = "user_id"

// TokenKey carries the raw bearer token, so sign-out can revoke it.
const TokenKey = "session_token"

// Auth verifies the Bearer token on every request it wraps and stores the
// user id in the request context. Requests without a valid session are
// rejected before reaching the handler.
func Auth(svc *auth.Service, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is not provided"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			log.Warn("Auth: invalid authorization header format", "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token format is invalid, expected 'Bearer <token>'"})
			return
		}
		token := parts[1]

		userID, err := svc.Verify(c.Request.Context(), token)
		if err != nil {
			log.Warn("Auth: token validation failed", "path", c.FullPath(), "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is invalid"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(TokenKey, token)
		c.Next()
	}
}
