package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// writeError maps the engine's error taxonomy onto HTTP responses.
// Upstream failures are the only retryable kind and say so; everything
// else is actionable validation feedback.
func writeError(c *gin.Context, logger *zap.Logger, err error) {
	switch err.(type) {
	case *apperrors.ErrValidation:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
	case *apperrors.ErrEmptyCart:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case *apperrors.ErrUnauthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case *apperrors.ErrInvalidStateTransition:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case *apperrors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case *apperrors.ErrUpstream:
		logger.Error("Upstream failure", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable, try again"})
	default:
		logger.Error("Unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
