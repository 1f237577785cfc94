package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLUnreadCount bounds how stale the unread badge can get between
// invalidations.
const TTLUnreadCount = 30 * time.Second

// Service caches per-user unread message totals in Redis.
// All operations are no-ops or misses when Redis is unavailable.
type Service interface {
	GetUnreadCount(ctx context.Context, userID uint) (int64, bool)
	SetUnreadCount(ctx context.Context, userID uint, count int64)
	InvalidateUnreadCount(ctx context.Context, userID uint)
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service backed by the given Redis client.
// A nil client is allowed and disables caching.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func unreadKey(userID uint) string {
	return fmt.Sprintf("unread:%d", userID)
}

// GetUnreadCount returns the cached unread total, with a hit flag
func (c *redisCache) GetUnreadCount(ctx context.Context, userID uint) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, unreadKey(userID)).Int64()
	if err != nil {
		return 0, false
	}
	return val, true
}

// SetUnreadCount caches the unread total for a short period
func (c *redisCache) SetUnreadCount(ctx context.Context, userID uint, count int64) {
	if c.client == nil {
		return
	}
	c.client.Set(ctx, unreadKey(userID), count, TTLUnreadCount) //nolint:errcheck
}

// InvalidateUnreadCount drops the cached unread total (on send / mark-read)
func (c *redisCache) InvalidateUnreadCount(ctx context.Context, userID uint) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, unreadKey(userID)) //nolint:errcheck
}
