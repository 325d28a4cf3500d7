// Package api provides the HTTP API layer for the Content Normalizer.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	GET    /normalize?url=...        normalize one URL
//	POST   /normalize                normalize up to 50 URLs
//	DELETE /normalize/cache?url=...  evict a cached result
//	GET    /health                   liveness and feature flags
//
// The OpenAPI spec is available at /openapi.json and the docs UI at /docs.
//
// # Middleware
//
// - CORS handling
// - Panic recovery
// - Request logging with a request ID stored in the request context
// - Token bucket rate limiting per client IP
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:    logger,
//	    RateLimit: cfg.RateLimit,
//	})
//
//	handlers.NewNormalizeHandler(service).RegisterRoutes(humaAPI)
//	handlers.NewHealthHandler(flags).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 502,
//	    "title": "Bad Gateway",
//	    "detail": "Upstream server error (503)"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
