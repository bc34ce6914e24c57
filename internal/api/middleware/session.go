package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie     = "cart_session"
	sessionContextKey = "cart.session"
	sessionMaxAge     = 60 * 60 * 24 * 30
)

// CartSession ensures every request carries a cart session id, issuing a
// cookie on first contact. The id scopes the Redis-held cart.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(sessionCookie, sessionID, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the cart session id set by CartSession.
func GetSessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
