// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	cerrors "content-normalizer-api/core/errors"
	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/pkg/config"
)

const (
	tableName = "cache"

	defaultPath            = "cache.db"
	defaultCleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	queries  *cacheQueries
	logger   interfaces.Logger

	done      chan struct{}
	closeOnce sync.Once
}

// Stats describes the contents of the cache file
type Stats struct {
	TotalEntries   int    `json:"total_entries"`
	ExpiredEntries int    `json:"expired_entries"`
	SizeBytes      int64  `json:"db_size_bytes"`
	Path           string `json:"file_path"`
}

// NewSQLiteCache creates a new SQLite cache client and starts its cleanup routine
func NewSQLiteCache(cfg config.SQLiteConfig, logger interfaces.Logger) (*Client, error) {
	filePath := cfg.Path
	if filePath == "" {
		filePath = defaultPath
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	queries, err := newCacheQueries(tableName)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to build cache queries: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		queries:  queries,
		logger:   logger,
		done:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine(interval)

	return client, nil
}

// initSchema creates the cache table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_expiry ON cache(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key, c.logger); err != nil {
		return nil, &cerrors.ValidationError{Field: "key", Message: err.Error()}
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, c.queries.get, key, time.Now().Unix()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &cerrors.NotFoundError{Resource: "cache entry", ID: key}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache with TTL. A zero TTL never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return &cerrors.ValidationError{Field: "key", Message: err.Error()}
	}
	if err := ValidateValue(value); err != nil {
		return &cerrors.ValidationError{Field: "value", Message: err.Error()}
	}

	expiry := int64(math.MaxInt64)
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	if _, err := c.db.ExecContext(ctx, c.queries.set, key, value, expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key, c.logger); err != nil {
		return &cerrors.ValidationError{Field: "key", Message: err.Error()}
	}

	if _, err := c.db.ExecContext(ctx, c.queries.del, key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, c.queries.clear); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

// cleanupRoutine periodically removes expired entries until Close
func (c *Client) cleanupRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if _, err := c.Cleanup(context.Background()); err != nil && c.logger != nil {
				c.logger.Warn("SQLite cache cleanup failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// Cleanup removes expired entries and reports how many were dropped
func (c *Client) Cleanup(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, c.queries.cleanup, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{Path: c.filePath}

	if err := c.db.QueryRowContext(ctx, c.queries.count).Scan(&stats.TotalEntries); err != nil {
		return nil, err
	}

	if err := c.db.QueryRowContext(ctx, c.queries.countExpired, time.Now().Unix()).Scan(&stats.ExpiredEntries); err != nil {
		return nil, err
	}

	// Database file size
	var pageCount, pageSize int64
	if err := c.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats.SizeBytes = pageCount * pageSize
		}
	}

	return stats, nil
}
