package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denyListPrefix = "auth:denylist:"

// TokenRepository keeps a Redis deny-list of revoked token ids.
type TokenRepository struct {
	client *redis.Client
}

// NewTokenRepository constructs a TokenRepository. A nil client disables the deny-list.
func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{client: client}
}

// Enabled reports whether revocations are persisted.
func (r *TokenRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Revoke denies the token id until ttl elapses.
func (r *TokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if !r.Enabled() || ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, denyListPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id is on the deny-list.
func (r *TokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	n, err := r.client.Exists(ctx, denyListPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
