package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"retail-insights/internal/core/cache"
	"retail-insights/internal/features/insights/domain"
)

const insightKeyPrefix = "insight:"

// RedisInsightRepository implements ports.InsightRepository on top of the cache port.
type RedisInsightRepository struct {
	cache cache.Cache
}

// NewRedisInsightRepository creates a new RedisInsightRepository.
func NewRedisInsightRepository(c cache.Cache) *RedisInsightRepository {
	return &RedisInsightRepository{
		cache: c,
	}
}

// Save stores the insight under key for ttl.
func (r *RedisInsightRepository) Save(ctx context.Context, key string, insight *domain.Insight, ttl time.Duration) error {
	data, err := json.Marshal(insight)
	if err != nil {
		return fmt.Errorf("failed to marshal insight: %w", err)
	}

	if err := r.cache.Set(ctx, insightKeyPrefix+key, data, ttl); err != nil {
		return fmt.Errorf("failed to save insight to cache: %w", err)
	}
	return nil
}

// Get retrieves a cached insight.
func (r *RedisInsightRepository) Get(ctx context.Context, key string) (*domain.Insight, error) {
	data, err := r.cache.Get(ctx, insightKeyPrefix+key)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get insight from cache: %w", err)
	}

	var insight domain.Insight
	if err := json.Unmarshal(data, &insight); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insight: %w", err)
	}
	return &insight, nil
}

// Delete removes a cached insight.
func (r *RedisInsightRepository) Delete(ctx context.Context, key string) error {
	if err := r.cache.Delete(ctx, insightKeyPrefix+key); err != nil {
		return fmt.Errorf("failed to delete insight from cache: %w", err)
	}
	return nil
}
