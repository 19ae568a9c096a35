// Package cache implements the plan cache on Redis.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/coinbag/backend/internal/application/adapter"
)

// DefaultPlanTTL bounds how stale a cached plan can get if an invalidation
// is ever missed.
const DefaultPlanTTL = 15 * time.Minute

// redisPlanCache implements the adapter.PlanCache interface on Redis.
type redisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPlanCache creates a new Redis-backed plan cache. A non-positive
// ttl falls back to DefaultPlanTTL.
func NewRedisPlanCache(client *redis.Client, ttl time.Duration) adapter.PlanCache {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &redisPlanCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cached plan JSON for a user.
func (c *redisPlanCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	value, err := c.client.Get(ctx, planKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

// Set stores the plan JSON for a user.
func (c *redisPlanCache) Set(ctx context.Context, userID uuid.UUID, plan []byte) error {
	return c.client.Set(ctx, planKey(userID), plan, c.ttl).Err()
}

// Invalidate drops the cached plan for a user.
func (c *redisPlanCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, planKey(userID)).Err()
}

func planKey(userID uuid.UUID) string {
	return "plan:" + userID.String()
}
