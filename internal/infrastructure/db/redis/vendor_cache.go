package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const vendorCacheTTL = 5 * time.Minute

// VendorCache caches serialized directory pages in Redis.
// Key format: vendors:<filter fingerprint>
type VendorCache struct {
	client *redis.Client
}

// NewVendorCache creates a VendorCache wrapping the given Redis client.
func NewVendorCache(client *redis.Client) *VendorCache {
	return &VendorCache{client: client}
}

// Get returns the cached page for key, or (nil, nil) on a miss.
func (c *VendorCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("vendor cache get: %w", err)
	}
	return data, nil
}

// Set stores the page under key (expires after vendorCacheTTL).
func (c *VendorCache) Set(ctx context.Context, key string, value []byte) error {
	return c.client.Set(ctx, c.key(key), value, vendorCacheTTL).Err()
}

func (c *VendorCache) key(key string) string {
	return "vendors:" + key
}
