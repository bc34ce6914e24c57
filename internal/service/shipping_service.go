package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

type shippingService struct {
	store  DocumentStore
	logger *zap.Logger
}

// NewShippingService creates a new shipping service
func NewShippingService(store DocumentStore, logger *zap.Logger) *shippingService {
	return &shippingService{
		store:  store,
		logger: logger,
	}
}

// ListMethods returns the configured shipping methods sorted cheapest
// first. The first method is the UI's default selection.
func (s *shippingService) ListMethods(ctx context.Context) ([]domain.ShippingMethod, error) {
	var envelope struct {
		Docs []domain.ShippingMethod `json:"docs"`
	}
	err := s.store.ListDocuments(ctx, "shipping-methods", cms.ListOptions{Sort: "price"}, &envelope)
	if err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}

// GetMethod fetches one shipping method by id.
func (s *shippingService) GetMethod(ctx context.Context, id string) (domain.ShippingMethod, error) {
	var method domain.ShippingMethod
	if err := s.store.GetDocument(ctx, "shipping-methods", id, &method); err != nil {
		return domain.ShippingMethod{}, err
	}
	return method, nil
}

// ResolveCost computes the effective shipping cost for a cart total. A
// set, non-zero free-shipping threshold at or below the cart total makes
// the method free; otherwise the flat price applies. A nil method is an
// error: checkout must block rather than silently default to 0.
func ResolveCost(method *domain.ShippingMethod, cartTotal int64) (int64, error) {
	if method == nil {
		return 0, &apperrors.ErrValidation{Field: "shippingMethod", Message: "no shipping method selected"}
	}
	if method.FreeShippingThreshold > 0 && cartTotal >= method.FreeShippingThreshold {
		return 0, nil
	}
	return method.Price, nil
}
