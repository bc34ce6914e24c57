package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

const userContextKey = "auth.user"

// UserResolver resolves a session token to a user via the external auth
// service.
type UserResolver interface {
	CurrentUser(ctx context.Context, token string) (domain.User, error)
}

// UserAuth authenticates the customer by forwarding the bearer token to
// the auth service. Requests without a valid session are rejected.
func UserAuth(users UserResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		user, err := users.CurrentUser(c.Request.Context(), token)
		if err != nil {
			if _, ok := err.(*apperrors.ErrUnauthenticated); ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			logger.Error("Failed to resolve user session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "auth service unavailable, try again"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminAuth authenticates administrative requests against the server-held
// bcrypt hash of the admin API key.
func AdminAuth(apiKeyHash string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")
		if key == "" {
			key = bearerToken(c)
		}
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
			logger.Warn("Rejected admin request with invalid API key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(userContextKey, domain.User{ID: "admin", Role: "admin"})
		c.Next()
	}
}

// GetUserFromContext returns the authenticated user set by UserAuth or
// AdminAuth.
func GetUserFromContext(c *gin.Context) (domain.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
