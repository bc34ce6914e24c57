package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	"github.com/luxeshop/storefront-api/internal/repository"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// CheckoutInput is everything the customer supplies at checkout
// submission beyond the cart itself.
type CheckoutInput struct {
	ShippingMethodID string
	Address          domain.Address
	PaymentMethod    domain.PaymentMethod

	// IdempotencyKey and RequestHash are set by the idempotency
	// middleware when the client sends an Idempotency-Key header.
	IdempotencyKey string
	RequestHash    string
}

type checkoutService struct {
	store  DocumentStore
	carts  CartStore
	repos  *repository.Repositories
	logger *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(store DocumentStore, carts CartStore, repos *repository.Repositories, logger *zap.Logger) *checkoutService {
	return &checkoutService{
		store:  store,
		carts:  carts,
		repos:  repos,
		logger: logger,
	}
}

// SubmitOrder materializes the session's cart into an order: validates
// the inputs, resolves the shipping cost, snapshots unit prices, persists
// the order, and clears the cart only after persistence succeeds. A
// persistence failure leaves the cart intact for retry.
func (s *checkoutService) SubmitOrder(ctx context.Context, user domain.User, sessionID string, in CheckoutInput) (*domain.Order, error) {
	if user.ID == "" {
		return nil, &apperrors.ErrUnauthenticated{}
	}

	if in.IdempotencyKey != "" {
		order, err := s.replayIdempotent(ctx, user, in)
		if err != nil {
			return nil, err
		}
		if order != nil {
			return order, nil
		}
	}

	c, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, &apperrors.ErrEmptyCart{}
	}

	if field := in.Address.MissingField(); field != "" {
		return nil, &apperrors.ErrValidation{Field: field, Message: "required"}
	}
	if !in.PaymentMethod.IsValid() {
		return nil, &apperrors.ErrValidation{Field: "paymentMethod", Message: "unknown payment method"}
	}
	if in.ShippingMethodID == "" {
		return nil, &apperrors.ErrValidation{Field: "shippingMethod", Message: "no shipping method selected"}
	}

	var method domain.ShippingMethod
	if err := s.store.GetDocument(ctx, "shipping-methods", in.ShippingMethodID, &method); err != nil {
		return nil, err
	}

	cartTotal := c.Total()
	shippingCost, err := ResolveCost(&method, cartTotal)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, domain.OrderItem{
			Product:  domain.IDRef[domain.Product](line.ProductID),
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	order := domain.Order{
		User:            domain.IDRef[domain.User](user.ID),
		Items:           items,
		Total:           cartTotal + shippingCost,
		ShippingCost:    shippingCost,
		ShippingMethod:  method.Name,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.Address,
		PaymentMethod:   in.PaymentMethod,
	}

	var created domain.Order
	if err := s.store.CreateDocument(ctx, "orders", order, &created); err != nil {
		return nil, err
	}

	if in.IdempotencyKey != "" {
		key := &domain.IdempotencyKey{
			Key:         in.IdempotencyKey,
			UserID:      user.ID,
			OrderID:     created.ID,
			RequestHash: in.RequestHash,
		}
		if err := s.repos.IdempotencyKey.Create(ctx, key); err != nil {
			// The order exists; losing the key only weakens replay
			// protection for this one submission.
			s.logger.Warn("Failed to store idempotency key", zap.Error(err))
		}
	}

	// Cart clearing is a separate step gated on the create succeeding.
	// If it fails the customer retries with an already-placed order, so
	// surface nothing and let the sliding TTL reap the leftover.
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear cart after order placement",
			zap.String("order_id", created.ID),
			zap.Error(err),
		)
	}

	return &created, nil
}

// replayIdempotent returns the previously created order for a reused
// idempotency key, or nil when the key is unseen.
func (s *checkoutService) replayIdempotent(ctx context.Context, user domain.User, in CheckoutInput) (*domain.Order, error) {
	existing, err := s.repos.IdempotencyKey.GetByKey(ctx, in.IdempotencyKey)
	if err != nil {
		if _, ok := err.(*apperrors.ErrNotFound); ok {
			return nil, nil
		}
		return nil, err
	}

	if existing.UserID != user.ID || existing.RequestHash != in.RequestHash {
		return nil, &apperrors.ErrValidation{
			Field:   "Idempotency-Key",
			Message: "key already used for a different request",
		}
	}

	var order domain.Order
	if err := s.store.GetDocument(ctx, "orders", existing.OrderID, &order); err != nil {
		return nil, err
	}

	s.logger.Info("Replayed idempotent order submission",
		zap.String("order_id", order.ID),
		zap.String("idempotency_key", in.IdempotencyKey),
	)
	return &order, nil
}
