package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"payment-analytics-service/internal/model"
)

const keyPrefix = "insights:"

// InsightsCache stores computed insight payloads for a bounded TTL. Lookups
// are best-effort; a miss and a cache failure are both recoverable.
type InsightsCache interface {
	GetInsights(ctx context.Context, key string) (model.PaymentInsights, bool, error)
	SetInsights(ctx context.Context, key string, insights model.PaymentInsights) error
}

type redisInsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInsightsCache creates an InsightsCache backed by Redis.
func NewRedisInsightsCache(client *redis.Client, ttl time.Duration) InsightsCache {
	return &redisInsightsCache{client: client, ttl: ttl}
}

func (c *redisInsightsCache) GetInsights(ctx context.Context, key string) (model.PaymentInsights, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.PaymentInsights{}, false, nil
	}
	if err != nil {
		return model.PaymentInsights{}, false, fmt.Errorf("cache get: %w", err)
	}

	var insights model.PaymentInsights
	if err := json.Unmarshal(raw, &insights); err != nil {
		// A corrupt entry behaves like a miss; the caller recomputes and
		// overwrites it.
		return model.PaymentInsights{}, false, fmt.Errorf("cache decode: %w", err)
	}
	return insights, true, nil
}

func (c *redisInsightsCache) SetInsights(ctx context.Context, key string, insights model.PaymentInsights) error {
	raw, err := json.Marshal(insights)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
