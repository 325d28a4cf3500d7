// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package normalizer

import (
	"time"

	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/infrastructure/cache/memory"
	"content-normalizer-api/infrastructure/cache/sqlite"
	httpInfra "content-normalizer-api/infrastructure/http/standard"
	"content-normalizer-api/infrastructure/logger/structured"
	"content-normalizer-api/pkg/config"
)

// DefaultTimeout bounds a single fetch
const DefaultTimeout = 30 * time.Second

// DefaultHTTPClient creates a default HTTP client with the given timeout
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a JSON logger writing to stdout
func DefaultLogger() interfaces.Logger {
	return structured.NewDefault()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithSQLiteCache stores results in a SQLite file that outlives the process.
// The file is closed by Client.Close.
func WithSQLiteCache(path string) Option {
	return func(c *Config) error {
		if path == "" {
			path = "normalizer_cache.db"
		}
		cache, err := sqlite.NewSQLiteCache(config.SQLiteConfig{Path: path}, c.Logger)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "opening SQLite cache").
				WithCause(err).
				WithContext("path", path)
		}
		c.Cache = cache
		c.closers = append(c.closers, cache)
		return nil
	}
}
