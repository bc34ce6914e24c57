package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/auth"
	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/service"
)

// CreatePaymentOrderRequest represents the provider order creation payload
type CreatePaymentOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// VerifyPaymentRequest represents the provider payment callback payload
type VerifyPaymentRequest struct {
	OrderID           string `json:"order_id" binding:"required"`
	ProviderOrderID   string `json:"provider_order_id" binding:"required"`
	ProviderPaymentID string `json:"provider_payment_id" binding:"required"`
	Signature         string `json:"signature" binding:"required"`
}

// HandleCreatePaymentOrder handles POST /v1/payments/order
func HandleCreatePaymentOrder(store service.DocumentStore, media service.MediaUploader, cfg config.PaymentConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CreatePaymentOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		order, err := lifecycleService.GetOrder(c.Request.Context(), req.OrderID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if !auth.CanReadOrder(user, *order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		paymentService := service.NewPaymentService(store, cfg, logger)
		providerOrder, err := paymentService.CreateProviderOrder(c.Request.Context(), req.OrderID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, providerOrder)
	}
}

// HandleVerifyPayment handles POST /v1/payments/verify
func HandleVerifyPayment(store service.DocumentStore, media service.MediaUploader, cfg config.PaymentConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req VerifyPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		order, err := lifecycleService.GetOrder(c.Request.Context(), req.OrderID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if !auth.CanUpdateOrder(user, *order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		paymentService := service.NewPaymentService(store, cfg, logger)
		verified, err := paymentService.Verify(
			c.Request.Context(),
			req.OrderID,
			req.ProviderOrderID,
			req.ProviderPaymentID,
			req.Signature,
		)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		if !verified {
			// A rejected payment, not a retryable failure.
			c.JSON(http.StatusBadRequest, gin.H{"verified": false, "error": "invalid signature"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"verified": true})
	}
}
