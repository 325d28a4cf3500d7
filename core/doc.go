// Package core contains the business logic for the Content Normalizer.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Remote documents, normalized results and batch items
// - normalizer: Classification and JSON/XML/HTML normalization
// - errors: Typed errors for invalid URLs, network, HTTP and parse failures
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// All external dependencies are injected via interfaces.Dependencies, so
// the normalizer is testable without a network.
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      memory.NewMemoryCache(),
//	    HTTPClient: standard.NewStandardHTTPClient(30 * time.Second),
//	    Logger:     structured.NewDefault(),
//	}
//
//	service := normalizer.NewNormalizerService(deps, time.Hour)
//	result, err := service.FetchAndNormalize(ctx, "https://example.com/feed.xml")
package core
