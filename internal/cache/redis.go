package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/floracart/insight-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL  = 10 * time.Minute
	strategyKey = "strategy:doc"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

func buildKey(userID string, limit int) string {
	return fmt.Sprintf("rec:user:%s:limit:%d", userID, limit)
}

// Get recommendations from cache
func (c *Cache) GetRecommendations(ctx context.Context, userID string, limit int) ([]domain.RecommendedProduct, bool, error) {
	key := buildKey(userID, limit)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var recs []domain.RecommendedProduct
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}

	return recs, true, nil
}

// Store recommendations in cache
func (c *Cache) SetRecommendations(ctx context.Context, userID string, limit int, recs []domain.RecommendedProduct) error {
	key := buildKey(userID, limit)
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}

	return nil
}

func (c *Cache) GetStrategy(ctx context.Context) (*domain.Strategy, bool, error) {
	val, err := c.client.Get(ctx, strategyKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get strategy from cache: %w", err)
	}

	var s domain.Strategy
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal strategy: %w", err)
	}

	return &s, true, nil
}

func (c *Cache) SetStrategy(ctx context.Context, s *domain.Strategy) error {
	val, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal strategy: %w", err)
	}

	if err := c.client.Set(ctx, strategyKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set strategy in cache: %w", err)
	}

	return nil
}

// Clear user cache: used when the user places a new order
func (c *Cache) ClearUserCache(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("rec:user:%s:limit:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Clear the strategy document: new orders shift top sellers and the matrix
func (c *Cache) ClearStrategy(ctx context.Context) error {
	if err := c.client.Del(ctx, strategyKey).Err(); err != nil {
		return fmt.Errorf("cache delete %s: %w", strategyKey, err)
	}
	return nil
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
