package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/handlers"
	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/cart"
	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, store *cms.Client, carts *cart.Store, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Public storefront routes
		v1.GET("/products", handlers.HandleListProducts(store, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(store, logger))
		v1.GET("/categories", handlers.HandleListCategories(store, logger))
		v1.GET("/shipping-methods", handlers.HandleListShippingMethods(store, logger))
		v1.GET("/testimonials", handlers.HandleListTestimonials(store, logger))
		v1.POST("/enquiries", handlers.HandleSubmitEnquiry(store, logger))

		// Session-scoped cart routes
		cartRoutes := v1.Group("")
		cartRoutes.Use(middleware.CartSession())
		{
			cartRoutes.GET("/cart", handlers.HandleGetCart(carts, logger))
			cartRoutes.POST("/cart/items", handlers.HandleAddCartItem(carts, store, logger))
			cartRoutes.PATCH("/cart/items/:productId", handlers.HandleUpdateCartItem(carts, logger))
			cartRoutes.DELETE("/cart/items/:productId", handlers.HandleRemoveCartItem(carts, logger))
			cartRoutes.DELETE("/cart", handlers.HandleClearCart(carts, logger))
			cartRoutes.GET("/shipping-methods/:id/cost", handlers.HandleResolveShippingCost(store, carts, logger))
		}

		// Customer routes (require an authenticated session)
		customerRoutes := v1.Group("")
		customerRoutes.Use(middleware.CartSession())
		customerRoutes.Use(middleware.UserAuth(store, logger))
		{
			customerRoutes.POST("/orders", middleware.Idempotency(), handlers.HandleSubmitOrder(store, carts, repos, logger))
			customerRoutes.GET("/orders", handlers.HandleListMyOrders(store, store, logger))
			customerRoutes.GET("/orders/:id", handlers.HandleGetOrder(store, store, logger))
			customerRoutes.POST("/orders/:id/return", handlers.HandleRequestReturn(store, store, logger))
			customerRoutes.POST("/payments/order", handlers.HandleCreatePaymentOrder(store, store, cfg.Payment, logger))
			customerRoutes.POST("/payments/verify", handlers.HandleVerifyPayment(store, store, cfg.Payment, logger))
		}

		// Admin routes (API key)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AdminAuth(cfg.Admin.APIKeyHash, logger))
		{
			adminRoutes.POST("/orders/:id/ship", handlers.HandleShipOrder(store, store, logger))
			adminRoutes.POST("/orders/:id/deliver", handlers.HandleDeliverOrder(store, store, logger))
			adminRoutes.POST("/orders/:id/cancel", handlers.HandleCancelOrder(store, store, logger))
			adminRoutes.POST("/orders/:id/resolve-return", handlers.HandleResolveReturn(store, store, logger))
			adminRoutes.GET("/orders", handlers.HandleAdminListOrders(store, store, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
