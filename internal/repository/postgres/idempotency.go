package postgres

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

type idempotencyKeyRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewIdempotencyKeyRepository creates a new idempotency key repository
func NewIdempotencyKeyRepository(db *sql.DB, logger *zap.Logger) *idempotencyKeyRepository {
	return &idempotencyKeyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *idempotencyKeyRepository) Create(ctx context.Context, key *domain.IdempotencyKey) error {
	query := `
		INSERT INTO idempotency_keys (key, user_id, order_id, request_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if key.CreatedAt.IsZero() {
		key.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		key.Key,
		key.UserID,
		key.OrderID,
		key.RequestHash,
		key.CreatedAt,
	)

	if err != nil {
		r.logger.Error("Failed to create idempotency key", zap.Error(err))
		return &apperrors.ErrUpstream{Op: "create idempotency key", Err: err}
	}

	return nil
}

func (r *idempotencyKeyRepository) GetByKey(ctx context.Context, keyValue string) (*domain.IdempotencyKey, error) {
	query := `
		SELECT key, user_id, order_id, request_hash, created_at
		FROM idempotency_keys
		WHERE key = $1
	`

	var key domain.IdempotencyKey

	err := r.db.QueryRowContext(ctx, query, keyValue).Scan(
		&key.Key,
		&key.UserID,
		&key.OrderID,
		&key.RequestHash,
		&key.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, &apperrors.ErrNotFound{Resource: "idempotency key", ID: keyValue}
	}
	if err != nil {
		r.logger.Error("Failed to get idempotency key", zap.Error(err))
		return nil, &apperrors.ErrUpstream{Op: "get idempotency key", Err: err}
	}

	return &key, nil
}
