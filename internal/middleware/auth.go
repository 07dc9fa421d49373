package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/natsukih/notes-api/internal/auth"
	"github.com/natsukih/notes-api/internal/constants"
	apierrors "github.com/natsukih/notes-api/internal/errors"
)

// RequireAuth validates the bearer token and stores the caller's user ID
// in the request context.
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			apierrors.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		userID, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	// RequireAuth always stores a uint64.
	userID, ok := value.(uint64)
	return userID, ok
}
