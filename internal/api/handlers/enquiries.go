package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/service"
)

// EnquiryRequest represents the contact-form payload
type EnquiryRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// HandleSubmitEnquiry handles POST /v1/enquiries
func HandleSubmitEnquiry(store service.DocumentStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EnquiryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		enquiryService := service.NewEnquiryService(store, logger)
		created, err := enquiryService.SubmitEnquiry(c.Request.Context(), domain.Enquiry{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Message: req.Message,
		})
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"id": created.ID})
	}
}

// HandleListTestimonials handles GET /v1/testimonials
func HandleListTestimonials(store service.DocumentStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		enquiryService := service.NewEnquiryService(store, logger)

		testimonials, err := enquiryService.ListTestimonials(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"testimonials": testimonials})
	}
}
