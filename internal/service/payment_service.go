package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// ProviderOrder is the payment-provider order the client completes the
// payment against. Amount is in minor currency units.
type ProviderOrder struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type paymentService struct {
	store  DocumentStore
	cfg    config.PaymentConfig
	logger *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(store DocumentStore, cfg config.PaymentConfig, logger *zap.Logger) *paymentService {
	return &paymentService{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

// CreateProviderOrder prepares the provider-side order for an existing
// storefront order. Settlement itself happens at the provider; this only
// quotes the amount in minor units with a receipt reference.
func (s *paymentService) CreateProviderOrder(ctx context.Context, orderID string) (*ProviderOrder, error) {
	var order domain.Order
	if err := s.store.GetDocument(ctx, "orders", orderID, &order); err != nil {
		return nil, err
	}

	return &ProviderOrder{
		OrderID:  orderID,
		Amount:   order.Total * 100,
		Currency: "INR",
		Receipt:  "receipt_" + orderID,
	}, nil
}

// Verify checks the provider's payment callback signature and, on a
// match, moves the order to processing and records the payment id. A
// mismatch never mutates the order, however often it is retried.
func (s *paymentService) Verify(ctx context.Context, orderID, providerOrderID, providerPaymentID, signature string) (bool, error) {
	var order domain.Order
	if err := s.store.GetDocument(ctx, "orders", orderID, &order); err != nil {
		return false, err
	}

	mac := hmac.New(sha256.New, []byte(s.cfg.KeySecret))
	mac.Write([]byte(providerOrderID + "|" + providerPaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		s.logger.Warn("Payment signature mismatch", zap.String("order_id", orderID))
		return false, nil
	}

	if !order.Status.CanTransitionTo(domain.OrderStatusProcessing) {
		return false, &apperrors.ErrInvalidStateTransition{
			From: order.Status,
			To:   domain.OrderStatusProcessing,
		}
	}

	patch := map[string]interface{}{
		"status":        domain.OrderStatusProcessing,
		"transactionId": providerPaymentID,
	}
	var updated domain.Order
	if err := s.store.UpdateDocument(ctx, "orders", orderID, patch, &updated); err != nil {
		return false, err
	}

	s.logger.Info("Payment verified",
		zap.String("order_id", orderID),
		zap.String("payment_id", providerPaymentID),
	)
	return true, nil
}
