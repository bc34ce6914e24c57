package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/service"
)

// AddCartItemRequest represents the add-to-cart payload
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest represents the quantity update payload
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse represents the cart with its derived total
type CartResponse struct {
	Lines     []domain.CartLine `json:"lines"`
	CartTotal int64             `json:"cart_total"`
}

func cartResponse(c domain.Cart) CartResponse {
	lines := c.Lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartResponse{Lines: lines, CartTotal: c.Total()}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(carts service.CartStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		current, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(current))
	}
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(carts service.CartStore, catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		var req AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		// Snapshot the unit price from the current catalog price. No
		// stock check here; stock is validated display-side only.
		product, err := catalog.GetProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		current, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		current.AddLine(product, req.Quantity)

		if err := carts.Save(c.Request.Context(), sessionID, current); err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(current))
	}
}

// HandleUpdateCartItem handles PATCH /v1/cart/items/:productId
func HandleUpdateCartItem(carts service.CartStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)
		productID := c.Param("productId")

		var req UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		current, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		// Quantity of zero or less removes the line.
		current.SetQuantity(productID, *req.Quantity)

		if err := carts.Save(c.Request.Context(), sessionID, current); err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(current))
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:productId
func HandleRemoveCartItem(carts service.CartStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)
		productID := c.Param("productId")

		current, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		// Removing an absent id is a no-op, not an error.
		current.RemoveLine(productID)

		if err := carts.Save(c.Request.Context(), sessionID, current); err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(current))
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(carts service.CartStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		if err := carts.Clear(c.Request.Context(), sessionID); err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, cartResponse(domain.Cart{}))
	}
}
