// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"content-normalizer-api/api/middleware"
	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/pkg/config"
)

const (
	apiTitle       = "Content Normalizer API"
	apiVersion     = "1.0.0"
	apiDescription = "Fetches remote documents and converts JSON, XML and HTML into a uniform JSON tree"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit enables per-client limiting when RequestsPerSecond > 0
	RateLimit config.RateLimitConfig

	// CORSOrigins lists allowed origins; empty allows all
	CORSOrigins []string
}

// NewAPI creates and configures a new Huma API instance without logging or
// rate limiting
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be the first middleware
	router.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))
	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	humaConfig := huma.DefaultConfig(apiTitle, apiVersion)
	humaConfig.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	api := humachi.New(router, humaConfig)

	return api, router
}

func corsOptions(origins []string) cors.Options {
	allowCredentials := true
	if len(origins) == 0 {
		origins = []string{"*"}
		// Browsers reject credentials with a wildcard origin
		allowCredentials = false
	}
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: allowCredentials,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}
