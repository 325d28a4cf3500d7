// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads defaults, an optional YAML file and .env, then applies environment overrides

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `yaml:"server"`

	// Fetch controls outgoing requests to remote documents
	Fetch FetchConfig `yaml:"fetch"`

	// Cache contains cache configuration
	Cache CacheConfig `yaml:"cache"`

	// Log controls the structured logger
	Log LogConfig `yaml:"log"`

	// RateLimit controls per-client request limiting
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `yaml:"port"`

	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// CORSOrigins lists allowed origins; empty allows all
	CORSOrigins []string `yaml:"cors_origins"`
}

// FetchConfig holds settings for the outgoing HTTP client
type FetchConfig struct {
	// Timeout bounds a single fetch
	Timeout time.Duration `yaml:"timeout"`

	// MaxBodyBytes caps a response body
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// UserAgent is sent with every fetch
	UserAgent string `yaml:"user_agent"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `yaml:"type"`

	// TTL is how long normalized results are cached
	TTL time.Duration `yaml:"ttl"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig `yaml:"redis"`

	// Memory contains in-memory cache configuration
	Memory MemoryConfig `yaml:"memory"`

	// SQLite contains file cache configuration
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `yaml:"address"`

	// Password is the Redis authentication password
	Password string `yaml:"password"`

	// DB is the Redis database number
	DB int `yaml:"db"`
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int `yaml:"default_expiration"`

	// CleanupInterval is how often expired entries are purged, in seconds
	CleanupInterval int `yaml:"cleanup_interval"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path            string        `yaml:"path"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// RateLimitConfig holds per-client token bucket settings
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Fetch: FetchConfig{
			Timeout:      30 * time.Second,
			MaxBodyBytes: 10 << 20,
			UserAgent:    "ContentNormalizer/1.0",
		},
		Cache: CacheConfig{
			Type: "memory",
			TTL:  1 * time.Hour,
			Redis: RedisConfig{
				Address: "localhost:6379",
			},
			Memory: MemoryConfig{
				DefaultExpiration: 3600,
				CleanupInterval:   600,
			},
			SQLite: SQLiteConfig{
				Path:            "normalizer-cache.db",
				CleanupInterval: 10 * time.Minute,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

// LoadFromEnv loads configuration from environment variables. A .env file in
// the working directory is read first when present, and CONFIG_FILE may name
// a YAML file whose values sit between the defaults and the environment.
func LoadFromEnv() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.MergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// MergeFile overlays values from a YAML file onto cfg
func (c *Config) MergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnvOrDefault("PORT", c.Server.Port)
	c.Server.ReadTimeout = getEnvAsDurationOrDefault("SERVER_READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsDurationOrDefault("SERVER_WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = getEnvAsDurationOrDefault("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = splitList(origins)
	}

	c.Fetch.Timeout = getEnvAsDurationOrDefault("FETCH_TIMEOUT", c.Fetch.Timeout)
	c.Fetch.MaxBodyBytes = int64(getEnvAsIntOrDefault("FETCH_MAX_BODY_BYTES", int(c.Fetch.MaxBodyBytes)))
	c.Fetch.UserAgent = getEnvOrDefault("FETCH_USER_AGENT", c.Fetch.UserAgent)

	c.Cache.Type = getEnvOrDefault("CACHE_TYPE", c.Cache.Type)
	c.Cache.TTL = getEnvAsDurationOrDefault("CACHE_TTL", c.Cache.TTL)
	c.Cache.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Cache.Redis.Address)
	c.Cache.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Cache.Redis.Password)
	c.Cache.Redis.DB = getEnvAsIntOrDefault("REDIS_DB", c.Cache.Redis.DB)
	c.Cache.Memory.DefaultExpiration = getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", c.Cache.Memory.DefaultExpiration)
	c.Cache.Memory.CleanupInterval = getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP", c.Cache.Memory.CleanupInterval)
	c.Cache.SQLite.Path = getEnvOrDefault("SQLITE_PATH", c.Cache.SQLite.Path)
	c.Cache.SQLite.CleanupInterval = getEnvAsDurationOrDefault("SQLITE_CLEANUP_INTERVAL", c.Cache.SQLite.CleanupInterval)

	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnvOrDefault("LOG_FILE", c.Log.File)

	c.RateLimit.RequestsPerSecond = getEnvAsFloatOrDefault("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = getEnvAsIntOrDefault("RATE_LIMIT_BURST", c.RateLimit.Burst)
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getEnvAsDurationOrDefault accepts Go durations ("30s") or whole seconds
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Fetch.Timeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}

	if c.Fetch.MaxBodyBytes < 0 {
		return errors.New("fetch max body bytes cannot be negative")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache TTL cannot be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("rate limit must be positive")
	}

	if c.RateLimit.Burst < 1 {
		return errors.New("rate limit burst must be at least 1")
	}

	return nil
}
