package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/auth"
	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/repository"
	"github.com/luxeshop/storefront-api/internal/service"
)

// SubmitOrderRequest represents the checkout submission payload
type SubmitOrderRequest struct {
	ShippingMethodID string               `json:"shipping_method_id" binding:"required"`
	ShippingAddress  domain.Address       `json:"shipping_address" binding:"required"`
	PaymentMethod    domain.PaymentMethod `json:"payment_method" binding:"required"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID              string                `json:"id"`
	Status          domain.OrderStatus    `json:"status"`
	Items           []OrderItemResponse   `json:"items"`
	Total           int64                 `json:"total"`
	ShippingCost    int64                 `json:"shipping_cost"`
	ShippingMethod  string                `json:"shipping_method"`
	ShippingAddress domain.Address        `json:"shipping_address"`
	PaymentMethod   domain.PaymentMethod  `json:"payment_method"`
	ReturnDetails   *domain.ReturnRequest `json:"return_details,omitempty"`
	CreatedAt       string                `json:"created_at,omitempty"`
}

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

func orderResponse(order domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			ProductID: item.Product.ID(),
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	resp := OrderResponse{
		ID:              order.ID,
		Status:          order.Status,
		Items:           items,
		Total:           order.Total,
		ShippingCost:    order.ShippingCost,
		ShippingMethod:  order.ShippingMethod,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		ReturnDetails:   order.ReturnDetails,
	}
	if !order.CreatedAt.IsZero() {
		resp.CreatedAt = order.CreatedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

// HandleSubmitOrder handles POST /v1/orders
func HandleSubmitOrder(store service.DocumentStore, carts service.CartStore, repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req SubmitOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		key, requestHash := middleware.GetIdempotencyInfo(c)

		checkoutService := service.NewCheckoutService(store, carts, repos, logger)
		order, err := checkoutService.SubmitOrder(c.Request.Context(), user, middleware.GetSessionID(c), service.CheckoutInput{
			ShippingMethodID: req.ShippingMethodID,
			Address:          req.ShippingAddress,
			PaymentMethod:    req.PaymentMethod,
			IdempotencyKey:   key,
			RequestHash:      requestHash,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, orderResponse(*order))
	}
}

// HandleListMyOrders handles GET /v1/orders
func HandleListMyOrders(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		orders, err := lifecycleService.ListOrdersForUser(c.Request.Context(), user.ID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		responses := make([]OrderResponse, len(orders))
		for i, order := range orders {
			responses[i] = orderResponse(order)
		}

		c.JSON(http.StatusOK, gin.H{"orders": responses})
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.GetUserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		order, err := lifecycleService.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		if !auth.CanReadOrder(user, *order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		c.JSON(http.StatusOK, orderResponse(*order))
	}
}
