package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/travelsafe/internal/destination"
)

const defaultTTL = time.Hour

// Cache wraps a Redis client and provides typed get/set/delete for live reports.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 1-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// NewCacheWithTTL constructs a Cache with a custom TTL. Non-positive values
// fall back to the default.
func NewCacheWithTTL(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// key returns the Redis key for the given location.
func key(location string) string {
	return "live:" + strings.ToLower(strings.TrimSpace(location))
}

// Get retrieves a live report from cache.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) Get(ctx context.Context, location string) (*destination.LiveReport, error) {
	val, err := c.client.Get(ctx, key(location)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for %s: %w", location, err)
	}

	var report destination.LiveReport
	if err := json.Unmarshal(val, &report); err != nil {
		return nil, fmt.Errorf("unmarshaling cached report for %s: %w", location, err)
	}

	return &report, nil
}

// Set stores a live report in cache with the configured TTL.
func (c *Cache) Set(ctx context.Context, location string, report *destination.LiveReport) error {
	if report == nil {
		return nil
	}

	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling live report for %s: %w", location, err)
	}

	if err := c.client.Set(ctx, key(location), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for %s: %w", location, err)
	}

	return nil
}

// Delete removes the cached entry for the given location.
func (c *Cache) Delete(ctx context.Context, location string) error {
	if err := c.client.Del(ctx, key(location)).Err(); err != nil {
		return fmt.Errorf("cache delete for %s: %w", location, err)
	}
	return nil
}

// Ping checks that Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
