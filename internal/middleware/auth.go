package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/planwise-dev/planwise-api/internal/apperrors"
	"github.com/planwise-dev/planwise-api/internal/auth"
)

// ContextUserIDKey is where the authenticated user id lives in the
// request context.
const ContextUserIDKey = "user_id"

// RequireAuth verifies the bearer token and stores the embedded user id
// in the context as the current identity.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			apperrors.Unauthenticated(c, "Authorization token is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			apperrors.Unauthenticated(c, "Authorization header format must be Bearer {token}")
			c.Abort()
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			apperrors.Unauthenticated(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := raw.(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}
