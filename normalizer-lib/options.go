// ABOUTME: Configuration options for the normalizer library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package normalizer

import (
	"errors"
	"io"
	"time"

	"content-normalizer-api/core/interfaces"
	"content-normalizer-api/pkg/featureflags"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Flags      featureflags.Manager

	// Timeout bounds each fetch made by the default HTTP client
	Timeout time.Duration

	// CacheTTL is how long normalized results are cached
	CacheTTL time.Duration

	// closers are released by Client.Close
	closers []io.Closer
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTimeout sets the fetch timeout used when no HTTP client is supplied
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeConfiguration, "timeout must be positive").
				WithContext("timeout", timeout.String())
		}
		c.Timeout = timeout
		return nil
	}
}

// WithFlags sets the feature flag manager
func WithFlags(flags featureflags.Manager) Option {
	return func(c *Config) error {
		c.Flags = flags
		return nil
	}
}

// WithCacheTTL sets the TTL for cached results
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Config) error {
		if ttl < 0 {
			return NewError(ErrorTypeConfiguration, "cache TTL cannot be negative")
		}
		c.CacheTTL = ttl
		return nil
	}
}

// WithoutCache disables result caching
func WithoutCache() Option {
	return func(c *Config) error {
		c.Cache = nil
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:    DefaultMemoryCache(),
		Logger:   QuietLogger(),
		Timeout:  DefaultTimeout,
		CacheTTL: time.Hour,
	}
}

func validateConfig(c *Config) error {
	if c.Timeout <= 0 {
		return NewError(ErrorTypeConfiguration, "timeout must be positive")
	}
	if c.Logger == nil {
		return NewError(ErrorTypeConfiguration, "logger cannot be nil").
			WithCause(errors.New("use WithQuietMode to discard logs"))
	}
	return nil
}
