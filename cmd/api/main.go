// ABOUTME: Main entry point for the Content Normalizer API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-normalizer-api/api"
	"content-normalizer-api/api/handlers"
	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/core/normalizer"
	"content-normalizer-api/infrastructure/cache/memory"
	"content-normalizer-api/infrastructure/cache/redis"
	"content-normalizer-api/infrastructure/cache/sqlite"
	stdhttp "content-normalizer-api/infrastructure/http/standard"
	"content-normalizer-api/infrastructure/logger/structured"
	"content-normalizer-api/pkg/config"
	"content-normalizer-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Info("Starting Content Normalizer API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"cache_ttl":  cfg.Cache.TTL.String(),
	})

	flags := featureflags.NewEnvManager("FEATURE_")

	cache, closer := buildCache(cfg.Cache, logger)
	if closer != nil {
		defer closer.Close()
	}

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout,
		stdhttp.WithUserAgent(cfg.Fetch.UserAgent),
		stdhttp.WithMaxBodyBytes(cfg.Fetch.MaxBodyBytes),
		stdhttp.WithLogger(logger),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Flags:      flags,
	}

	service := normalizer.NewNormalizerService(deps, cfg.Cache.TTL)

	apiConfig := api.APIConfig{
		Logger:      logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.RateLimit
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewNormalizeHandler(service).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(flags).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend. Redis and SQLite failures
// fall back to memory. The closer is nil for the memory cache.
func buildCache(cfg config.CacheConfig, logger interfaces.Logger) (interfaces.Cache, io.Closer) {
	switch cfg.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Redis.Address,
			})
			return redisCache, redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.SQLite, logger)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.SQLite.Path,
			})
			return sqliteCache, sqliteCache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithExpiration(
		time.Duration(cfg.Memory.DefaultExpiration)*time.Second,
		time.Duration(cfg.Memory.CleanupInterval)*time.Second,
	), nil
}
