package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyKeyHeader   = "Idempotency-Key"
	idempotencyKeyContext  = "idempotency.key"
	idempotencyHashContext = "idempotency.hash"
)

// Idempotency captures the client's Idempotency-Key header together with
// a hash of the request body, so the checkout service can detect a
// resubmission of the same request versus a reused key. The body is
// restored for the downstream handler.
func Idempotency() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable request body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

		sum := sha256.Sum256(body)
		c.Set(idempotencyKeyContext, key)
		c.Set(idempotencyHashContext, hex.EncodeToString(sum[:]))
		c.Next()
	}
}

// GetIdempotencyInfo returns the key and request hash captured by
// Idempotency; both are empty when the client sent no key.
func GetIdempotencyInfo(c *gin.Context) (key, requestHash string) {
	return c.GetString(idempotencyKeyContext), c.GetString(idempotencyHashContext)
}
