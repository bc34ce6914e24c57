package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

func TestSubmitEnquiry(t *testing.T) {
	docs := newFakeDocStore()
	svc := NewEnquiryService(docs, zap.NewNop())

	created, err := svc.SubmitEnquiry(context.Background(), domain.Enquiry{
		Name:    "Asha Rao",
		Email:   "asha@example.com",
		Message: "Do you resize rings?",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 1, docs.count("enquiries"))
}

func TestSubmitEnquiryValidation(t *testing.T) {
	docs := newFakeDocStore()
	svc := NewEnquiryService(docs, zap.NewNop())

	tests := []struct {
		field   string
		enquiry domain.Enquiry
	}{
		{"name", domain.Enquiry{Email: "a@b.c", Message: "hi"}},
		{"email", domain.Enquiry{Name: "A", Message: "hi"}},
		{"message", domain.Enquiry{Name: "A", Email: "a@b.c"}},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := svc.SubmitEnquiry(context.Background(), tt.enquiry)
			var verr *apperrors.ErrValidation
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.Equal(t, 0, docs.count("enquiries"))
}

func TestListTestimonials(t *testing.T) {
	docs := newFakeDocStore()
	docs.seed("testimonials", "t-1", domain.Testimonial{Author: "Meera", Quote: "Beautiful work", Rating: 5})
	svc := NewEnquiryService(docs, zap.NewNop())

	testimonials, err := svc.ListTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Meera", testimonials[0].Author)
}
