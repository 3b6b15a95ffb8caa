// Package cache implements Redis-backed caches for read-heavy endpoints.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

const dashboardKeyPrefix = "dashboard:"

// dashboardCache implements adapter.DashboardCache on Redis.
type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard cache instance.
func NewDashboardCache(client *redis.Client, ttl time.Duration) adapter.DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached payload, or (nil, nil) on a miss.
func (c *dashboardCache) Get(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payload, err := c.client.Get(ctx, dashboardKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return payload, nil
}

// Set stores the payload for the configured TTL.
func (c *dashboardCache) Set(ctx context.Context, userID uuid.UUID, payload []byte) error {
	return c.client.Set(ctx, dashboardKey(userID), payload, c.ttl).Err()
}

// Invalidate drops the user's cached dashboard.
func (c *dashboardCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, dashboardKey(userID)).Err()
}

func dashboardKey(userID uuid.UUID) string {
	return dashboardKeyPrefix + userID.String()
}
