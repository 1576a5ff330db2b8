package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const availabilityTTL = 30 * time.Second

// AvailabilityCache memoises username/email availability answers in Redis.
// Entries are short-lived and advisory: a miss or a Redis failure simply
// sends the caller to the database, and the unique indexes there remain the
// source of truth. Key format: avail:<kind>:<value>
type AvailabilityCache struct {
	client *redis.Client
}

func NewAvailabilityCache(client *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{client: client}
}

func (c *AvailabilityCache) Get(ctx context.Context, kind, value string) (available bool, found bool) {
	v, err := c.client.Get(ctx, c.key(kind, value)).Result()
	if err != nil {
		return false, false
	}
	return v == "1", true
}

func (c *AvailabilityCache) Set(ctx context.Context, kind, value string, available bool) {
	v := "0"
	if available {
		v = "1"
	}
	// Best effort: a failed write only costs a future database lookup.
	_ = c.client.Set(ctx, c.key(kind, value), v, availabilityTTL).Err()
}

func (c *AvailabilityCache) key(kind, value string) string {
	return fmt.Sprintf("avail:%s:%s", kind, strings.ToLower(value))
}
