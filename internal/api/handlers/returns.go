package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/api/middleware"
	"github.com/luxeshop/storefront-api/internal/auth"
	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/service"
)

const maxReturnImageBytes = 8 << 20

// HandleRequestReturn handles POST /v1/orders/:id/return. The request is
// multipart: "type" and "reason" fields plus zero or more "images" files.
func HandleRequestReturn(store service.DocumentStore, media service.MediaUploader, logger *zap.Logger) gin.HandlerFunc {
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
		if !auth.CanUpdateOrder(user, *order) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": "expected multipart form",
			})
			return
		}

		input := service.ReturnInput{
			Type:   domain.ReturnType(c.PostForm("type")),
			Reason: c.PostForm("reason"),
		}

		for _, header := range form.File["images"] {
			if header.Size > maxReturnImageBytes {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"details": "image too large: " + header.Filename,
				})
				return
			}

			file, err := header.Open()
			if err != nil {
				writeError(c, logger, err)
				return
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				writeError(c, logger, err)
				return
			}

			input.Images = append(input.Images, service.ReturnImage{
				Data:     data,
				Filename: header.Filename,
				MimeType: header.Header.Get("Content-Type"),
			})
		}

		updated, err := lifecycleService.RequestReturn(c.Request.Context(), order.ID, input)
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, orderResponse(*updated))
	}
}
