// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, SQLite, in-memory, or any other caching solution.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a normalized result
//	err := cache.Set(ctx, "normalize:https://example.com/feed.xml", payload, 1*time.Hour)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "normalize:https://example.com/feed.xml")
//	if errors.IsNotFound(err) {
//		// cache miss
//	}
//
//	// Drop it
//	err = cache.Delete(ctx, "normalize:https://example.com/feed.xml")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns a *errors.NotFoundError when the key is missing or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
