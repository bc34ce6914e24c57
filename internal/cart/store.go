package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luxeshop/storefront-api/internal/config"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

const keyPrefix = "storefront:cart:"

// Store persists session carts in Redis so they survive reloads and
// process restarts. One session is assumed single-writer; concurrent tabs
// racing on the same cart resolve last-write-wins via UpdatedAt.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStore creates a new cart store
func NewStore(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) *Store {
	return &Store{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		ttl:    ttl,
		logger: logger,
	}
}

// Get loads the session's cart. A missing key is an empty cart, not an
// error: carts come into existence on first write.
func (s *Store) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err == redis.Nil {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, &apperrors.ErrUpstream{Op: "cart get", Err: err}
	}

	var c domain.Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		// A corrupt cart is unrecoverable; start the session over rather
		// than locking the customer out of checkout.
		s.logger.Warn("Discarding undecodable cart", zap.String("session_id", sessionID), zap.Error(err))
		return domain.Cart{}, nil
	}

	return c, nil
}

// Save writes the cart back with a sliding TTL. The stored value replaces
// whatever was there (last write wins).
func (s *Store) Save(ctx context.Context, sessionID string, c domain.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return &apperrors.ErrUpstream{Op: "cart save", Err: err}
	}
	if err := s.client.Set(ctx, keyPrefix+sessionID, raw, s.ttl).Err(); err != nil {
		return &apperrors.ErrUpstream{Op: "cart save", Err: err}
	}
	return nil
}

// Clear deletes the session's cart. Clearing an absent cart is a no-op.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return &apperrors.ErrUpstream{Op: "cart clear", Err: err}
	}
	return nil
}

// Ping verifies the Redis connection at startup.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return &apperrors.ErrUpstream{Op: "cart ping", Err: err}
	}
	return nil
}
