package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	rolePrefix     = "spacerole:"
	defaultRoleTTL = time.Minute
)

// RoleCache caches the role of a user in a space
type RoleCache struct {
	client *Client
	ttl    time.Duration
}

// NewRoleCache creates a new role cache
func NewRoleCache(client *Client, ttl time.Duration) *RoleCache {
	if ttl <= 0 {
		ttl = defaultRoleTTL
	}
	return &RoleCache{client: client, ttl: ttl}
}

func roleKey(spaceID, userID string) string {
	return fmt.Sprintf("%s%s:%s", rolePrefix, spaceID, userID)
}

// Get returns the cached role. A miss yields ("", false, nil).
func (c *RoleCache) Get(ctx context.Context, spaceID, userID string) (string, bool, error) {
	role, err := c.client.rdb.Get(ctx, roleKey(spaceID, userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get cached role: %w", err)
	}
	return role, true, nil
}

// Set caches the role of a user in a space
func (c *RoleCache) Set(ctx context.Context, spaceID, userID, role string) error {
	return c.client.rdb.Set(ctx, roleKey(spaceID, userID), role, c.ttl).Err()
}

// Invalidate removes a cached role
func (c *RoleCache) Invalidate(ctx context.Context, spaceID, userID string) error {
	return c.client.rdb.Del(ctx, roleKey(spaceID, userID)).Err()
}
