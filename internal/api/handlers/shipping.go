package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/service"
)

// HandleListShippingMethods handles GET /v1/shipping-methods
func HandleListShippingMethods(store service.DocumentStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shippingService := service.NewShippingService(store, logger)

		methods, err := shippingService.ListMethods(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"shipping_methods": methods})
	}
}

// HandleResolveShippingCost handles GET /v1/shipping-methods/:id/cost.
// The effective cost depends on the session's current cart total.
func HandleResolveShippingCost(store service.DocumentStore, carts service.CartStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shippingService := service.NewShippingService(store, logger)

		method, err := shippingService.GetMethod(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		current, err := carts.Get(c.Request.Context(), middleware.GetSessionID(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		cartTotal := current.Total()
		cost, err := service.ResolveCost(&method, cartTotal)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"shipping_method": method.Name,
			"cart_total":      cartTotal,
			"shipping_cost":   cost,
			"order_total":     cartTotal + cost,
		})
	}
}
