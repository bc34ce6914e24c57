package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

type enquiryService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewEnquiryService creates a new enquiry service
func NewEnquiryService(store DocumentStore, logger *zap.Logger) *enquiryService {
	return &enquiryService{
		store:  store,
		logger: logger,
	}
}

// SubmitEnquiry persists a contact-form submission.
func (s *enquiryService) SubmitEnquiry(ctx context.Context, enquiry domain.Enquiry) (*domain.Enquiry, error) {
	if enquiry.Name == "" {
		return nil, &apperrors.ErrValidation{Field: "name", Message: "required"}
	}
	if enquiry.Email == "" {
		return nil, &apperrors.ErrValidation{Field: "email", Message: "required"}
	}
	if enquiry.Message == "" {
		return nil, &apperrors.ErrValidation{Field: "message", Message: "required"}
	}

	var created domain.Enquiry
	if err := s.store.CreateDocument(ctx, "enquiries", enquiry, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListTestimonials returns published testimonials.
func (s *enquiryService) ListTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	var envelope struct {
		Docs []domain.Testimonial `json:"docs"`
	}
	if err := s.store.ListDocuments(ctx, "testimonials", cms.ListOptions{Sort: "-createdAt"}, &envelope); err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}
