package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/service"
)

// ResolveReturnRequest represents the return resolution payload
type ResolveReturnRequest struct {
	Approve      *bool  `json:"approve" binding:"required"`
	AdminComment string `json:"admin_comment"`
}

// HandleShipOrder handles POST /v1/admin/orders/:id/ship
func HandleShipOrder(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lifecycleService := service.NewLifecycleService(store, media, logger)

		order, err := lifecycleService.MarkShipped(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
}

// HandleDeliverOrder handles POST /v1/admin/orders/:id/deliver
func HandleDeliverOrder(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lifecycleService := service.NewLifecycleService(store, media, logger)

		order, err := lifecycleService.MarkDelivered(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
}

// HandleCancelOrder handles POST /v1/admin/orders/:id/cancel
func HandleCancelOrder(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		lifecycleService := service.NewLifecycleService(store, media, logger)

		order, err := lifecycleService.Cancel(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
}

// HandleResolveReturn handles POST /v1/admin/orders/:id/resolve-return
func HandleResolveReturn(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResolveReturnRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		order, err := lifecycleService.ResolveReturn(c.Request.Context(), c.Param("id"), *req.Approve, req.AdminComment)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"id": order.ID, "status": order.Status})
	}
}

// HandleAdminListOrders handles GET /v1/admin/orders
func HandleAdminListOrders(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 50
		}
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}

		lifecycleService := service.NewLifecycleService(store, media, logger)
		orders, err := lifecycleService.ListOrders(c.Request.Context(), domain.OrderStatus(c.Query("status")), limit, page)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		responses := make([]OrderResponse, len(orders))
		for i, order := range orders {
			responses[i] = orderResponse(order)
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": responses,
			"limit":  limit,
			"page":   page,
		})
	}
}
