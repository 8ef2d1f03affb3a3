package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/hub-accounts/internal/logger"
)

// TokenBlacklistRepository stores revoked refresh token ids in Redis until they expire.
type TokenBlacklistRepository struct {
	client *redis.Client
}

// NewTokenBlacklistRepository creates a new repository instance
func NewTokenBlacklistRepository(client *redis.Client) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client}
}

func blacklistKey(jti string) string {
	return fmt.Sprintf("token_blacklist:%s", jti)
}

// Add blacklists jti for ttl. A token that is already expired is not stored.
func (r *TokenBlacklistRepository) Add(ctx context.Context, jti string, ttl time.Duration) error {
	key := blacklistKey(jti)
	if ttl <= 0 {
		logger.Log.Infow("token blacklist set",
			"key", key,
			"ttl", ttl,
			"result", "skipped",
			"error", nil,
		)
		return nil
	}

	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token blacklist set",
		"key", key,
		"ttl", ttl,
		"result", "ok",
		"error", err,
	)

	return err
}

// Contains reports whether jti is blacklisted.
func (r *TokenBlacklistRepository) Contains(ctx context.Context, jti string) (bool, error) {
	key := blacklistKey(jti)
	n, err := r.client.Exists(ctx, key).Result()

	logger.Log.Infow("token blacklist lookup",
		"key", key,
		"result", n,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return n > 0, nil
}
