package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rentmart/rentmart/internal/logger"
	"github.com/rentmart/rentmart/internal/models"
)

// ProductCacheRepository caches product rows in Redis with a TTL.
type ProductCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewProductCacheRepository creates a cache repository with the given TTL.
func NewProductCacheRepository(client *redis.Client, expiration time.Duration) *ProductCacheRepository {
	return &ProductCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func productCacheKey(productID uuid.UUID) string {
	return fmt.Sprintf("product:%s", productID)
}

// Get returns the cached product, or (nil, nil) on a cache miss.
func (r *ProductCacheRepository) Get(ctx context.Context, productID uuid.UUID) (*models.ProductDB, error) {
	key := productCacheKey(productID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var product models.ProductDB
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &product, nil
}

// Set caches a product row with the repository TTL.
func (r *ProductCacheRepository) Set(ctx context.Context, product *models.ProductDB) error {
	key := productCacheKey(product.ProductID)

	b, err := json.Marshal(product)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, b, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete invalidates a cached product after an update or delete.
func (r *ProductCacheRepository) Delete(ctx context.Context, productID uuid.UUID) error {
	key := productCacheKey(productID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
