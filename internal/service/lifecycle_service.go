package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// ReturnImage is one customer-attached photo for a return request.
type ReturnImage struct {
	Data     []byte
	Filename string
	MimeType string
}

// ReturnInput describes a return or replacement request.
type ReturnInput struct {
	Type   domain.ReturnType
	Reason string
	Images []ReturnImage
}

type lifecycleService struct {
	store  DocumentStore
	media  MediaUploader
	logger *zap.Logger
}

// NewLifecycleService creates a new order lifecycle service
func NewLifecycleService(store DocumentStore, media MediaUploader, logger *zap.Logger) *lifecycleService {
	return &lifecycleService{
		store:  store,
		media:  media,
		logger: logger,
	}
}

// GetOrder fetches one order by id.
func (s *lifecycleService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var order domain.Order
	if err := s.store.GetDocument(ctx, "orders", orderID, &order); err != nil {
		return nil, err
	}
	order.ID = orderID
	return &order, nil
}

// ListOrdersForUser returns a user's orders, newest first.
func (s *lifecycleService) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var envelope struct {
		Docs []domain.Order `json:"docs"`
	}
	opts := cms.ListOptions{
		Where: map[string]string{"user.equals": userID},
		Sort:  "-createdAt",
	}
	if err := s.store.ListDocuments(ctx, "orders", opts, &envelope); err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}

// ListOrders returns a page of all orders, optionally filtered by status.
// Administrative listing.
func (s *lifecycleService) ListOrders(ctx context.Context, status domain.OrderStatus, limit, page int) ([]domain.Order, error) {
	opts := cms.ListOptions{
		Sort:  "-createdAt",
		Limit: limit,
		Page:  page,
	}
	if status != "" {
		if !status.IsValid() {
			return nil, &apperrors.ErrValidation{Field: "status", Message: "unknown status"}
		}
		opts.Where = map[string]string{"status.equals": string(status)}
	}

	var envelope struct {
		Docs []domain.Order `json:"docs"`
	}
	if err := s.store.ListDocuments(ctx, "orders", opts, &envelope); err != nil {
		return nil, err
	}
	return envelope.Docs, nil
}

// MarkShipped records that fulfillment handed the order to the carrier.
func (s *lifecycleService) MarkShipped(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, domain.OrderStatusShipped)
}

// MarkDelivered records carrier delivery.
func (s *lifecycleService) MarkDelivered(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, domain.OrderStatusDelivered)
}

// Cancel cancels an order. Administrative action, legal from pending and
// processing only.
func (s *lifecycleService) Cancel(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.transition(ctx, orderID, domain.OrderStatusCancelled)
}

// RequestReturn opens the return/replacement sub-flow on a delivered
// order. Images are uploaded before any state change so that an upload
// failure aborts the whole request; the engine does not retry uploads.
func (s *lifecycleService) RequestReturn(ctx context.Context, orderID string, in ReturnInput) (*domain.Order, error) {
	if !in.Type.IsValid() {
		return nil, &apperrors.ErrValidation{Field: "type", Message: "must be refund or replacement"}
	}
	if in.Reason == "" {
		return nil, &apperrors.ErrValidation{Field: "reason", Message: "required"}
	}

	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	target := in.Type.RequestedStatus()
	// A second request while one is pending fails here too: the
	// *_requested states only transition to terminal resolutions.
	if order.Status != domain.OrderStatusDelivered || !order.Status.CanTransitionTo(target) {
		return nil, &apperrors.ErrInvalidStateTransition{From: order.Status, To: target}
	}

	imageIDs := make([]string, 0, len(in.Images))
	for _, img := range in.Images {
		id, err := s.media.UploadFile(ctx, img.Data, img.Filename, img.MimeType)
		if err != nil {
			s.logger.Error("Return image upload failed, aborting request",
				zap.String("order_id", orderID),
				zap.String("filename", img.Filename),
				zap.Error(err),
			)
			return nil, err
		}
		imageIDs = append(imageIDs, id)
	}

	details := domain.ReturnRequest{
		Type:        in.Type,
		Reason:      in.Reason,
		Images:      imageIDs,
		RequestDate: time.Now().UTC(),
	}

	patch := map[string]interface{}{
		"status":        target,
		"returnDetails": details,
	}

	var updated domain.Order
	if err := s.store.UpdateDocument(ctx, "orders", orderID, patch, &updated); err != nil {
		return nil, err
	}
	updated.ID = orderID

	s.logger.Info("Return request opened",
		zap.String("order_id", orderID),
		zap.String("type", string(in.Type)),
	)
	return &updated, nil
}

// ResolveReturn closes a pending return/replacement request. Approval
// resolves to returned or replaced per the request type; rejection always
// resolves to rejected.
func (s *lifecycleService) ResolveReturn(ctx context.Context, orderID string, approve bool, adminComment string) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var target domain.OrderStatus
	switch {
	case !approve:
		target = domain.OrderStatusRejected
	case order.Status == domain.OrderStatusReturnRequested:
		target = domain.OrderStatusReturned
	default:
		target = domain.OrderStatusReplaced
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, &apperrors.ErrInvalidStateTransition{From: order.Status, To: target}
	}

	patch := map[string]interface{}{"status": target}
	if adminComment != "" && order.ReturnDetails != nil {
		details := *order.ReturnDetails
		details.AdminComment = adminComment
		patch["returnDetails"] = details
	}

	var updated domain.Order
	if err := s.store.UpdateDocument(ctx, "orders", orderID, patch, &updated); err != nil {
		return nil, err
	}
	updated.ID = orderID

	s.logger.Info("Return request resolved",
		zap.String("order_id", orderID),
		zap.String("status", string(target)),
	)
	return &updated, nil
}

// transition validates and applies a single status change.
func (s *lifecycleService) transition(ctx context.Context, orderID string, target domain.OrderStatus) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, &apperrors.ErrInvalidStateTransition{From: order.Status, To: target}
	}

	patch := map[string]interface{}{"status": target}

	var updated domain.Order
	if err := s.store.UpdateDocument(ctx, "orders", orderID, patch, &updated); err != nil {
		return nil, err
	}
	updated.ID = orderID

	s.logger.Info("Order status changed",
		zap.String("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(target)),
	)
	return &updated, nil
}
