package repository

import (
	"context"

	"github.com/luxeshop/storefront-api/internal/domain"
)

// IdempotencyKeyRepository stores processed order-submission keys.
type IdempotencyKeyRepository interface {
	Create(ctx context.Context, key *domain.IdempotencyKey) error
	GetByKey(ctx context.Context, key string) (*domain.IdempotencyKey, error)
}

// Repositories bundles the repository implementations handed to services.
type Repositories struct {
	IdempotencyKey IdempotencyKeyRepository
}
