package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/service"
)

// HandleListProducts handles GET /v1/products. Filtering, sorting and
// pagination pass through to the data service's query API.
func HandleListProducts(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		opts := cms.ListOptions{
			Sort: c.DefaultQuery("sort", "-createdAt"),
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "24"))
		if err != nil || limit < 1 || limit > 100 {
			limit = 24
		}
		opts.Limit = limit

		if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
			opts.Page = page
		}

		where := map[string]string{}
		if category := c.Query("category"); category != "" {
			where["category.equals"] = category
		}
		if c.Query("featured") == "true" {
			where["isFeatured.equals"] = "true"
		}
		if len(where) > 0 {
			opts.Where = where
		}

		products, err := catalog.ListProducts(c.Request.Context(), opts)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"limit":    opts.Limit,
			"page":     opts.Page,
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// HandleListCategories handles GET /v1/categories
func HandleListCategories(catalog service.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": categories})
	}
}
