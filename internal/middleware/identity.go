package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"blog-api/internal/auth"
	"blog-api/internal/response"
)

// UserIDKey is the gin context key holding the resolved user id
const UserIDKey = "user_id"

// Identity resolves the acting user and stores it under UserIDKey.
// Requests without a usable identity continue anonymously; handlers decide
// whether an identity is required.
func Identity(resolver auth.IdentityResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolver.Resolve(c.Request)
		switch {
		case err == nil && userID != uuid.Nil:
			c.Set(UserIDKey, userID)
		case err != nil && !errors.Is(err, auth.ErrNoIdentity):
			logger.Debug("Ignoring unusable identity",
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
		}
		c.Next()
	}
}

// RequireIdentity rejects requests that Identity could not attach a user to
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// UserID returns the identity attached by Identity
func UserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
