// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache on patrickmn/go-cache
// - cache/redis: Redis-based cache on go-redis
// - cache/sqlite: File-backed cache on mattn/go-sqlite3
// - http/standard: net/http client with a body size cap and request logging
// - logger/structured: logrus logger with optional rotating file output
//
// Every cache returns *errors.NotFoundError on a miss.
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	cache, err := sqlite.NewSQLiteCache(config.SQLiteConfig{Path: "cache.db"}, logger)
//	defer cache.Close()
//
// # HTTP Client
//
// The client makes exactly one attempt per call:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithUserAgent("ContentNormalizer/1.0"),
//	    standard.WithMaxBodyBytes(10<<20),
//	)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := structured.New(structured.Options{Level: "debug", Format: "text"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "url": "https://example.com",
//	})
package infrastructure
