// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Provides TTL support with a background janitor that purges expired items

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	cerrors "content-normalizer-api/core/errors"
)

const (
	// DefaultExpiration applies when the cache is created without one
	DefaultExpiration = 1 * time.Hour

	// DefaultCleanupInterval is how often expired items are purged
	DefaultCleanupInterval = 10 * time.Minute
)

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance with default intervals
func NewMemoryCache() *MemoryCache {
	return NewMemoryCacheWithExpiration(DefaultExpiration, DefaultCleanupInterval)
}

// NewMemoryCacheWithExpiration creates a cache with explicit expiration and
// cleanup intervals
func NewMemoryCacheWithExpiration(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	if defaultExpiration <= 0 {
		defaultExpiration = DefaultExpiration
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCleanupInterval
	}
	return &MemoryCache{
		items: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, &cerrors.NotFoundError{Resource: "cache entry", ID: key}
	}

	stored := value.([]byte)

	// Return a copy of the value
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	// Create a copy of the value
	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	expiration := ttl
	if ttl <= 0 {
		expiration = gocache.NoExpiration
	}

	c.items.Set(key, valueCopy, expiration)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.items.Delete(key)
	return nil
}

// Len reports the number of items, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}

// Flush removes every item
func (c *MemoryCache) Flush() {
	c.items.Flush()
}
