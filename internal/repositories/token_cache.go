package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rentmart/rentmart/internal/logger"
)

// RevokedTokenRepository stores revoked JWTs in Redis until they expire,
// so a logged-out token cannot be replayed for its remaining lifetime.
type RevokedTokenRepository struct {
	client *redis.Client
}

func NewRevokedTokenRepository(client *redis.Client) *RevokedTokenRepository {
	return &RevokedTokenRepository{client: client}
}

func revokedTokenKey(token string) string {
	return fmt.Sprintf("revoked_token:%s", token)
}

// Revoke marks a token as revoked for ttl. A non-positive ttl means the
// token has already expired and there is nothing to store.
func (r *RevokedTokenRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revokedTokenKey(token)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow(
		"key", "revoked_token",
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token has been revoked.
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, revokedTokenKey(token)).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
