// ABOUTME: Configuration management for the game portal API with environment variable support
// ABOUTME: Defines configuration structures for server, CMS, cache, logging and the site

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// CMS contains the headless CMS connection settings
	CMS CMSConfig

	// Cache contains transport cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig

	// Site contains public site identity used for SEO documents
	Site SiteConfig

	// GamesConfigPath points to a YAML game catalog. Empty uses the built-in catalog.
	GamesConfigPath string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// Environment is "development" or "production"
	Environment string

	// RevalidationSecret guards the cache revalidation endpoint
	RevalidationSecret string

	// RateLimitRPS is the sustained per-IP request rate. Zero disables rate limiting.
	RateLimitRPS float64

	// RateLimitBurst is the per-IP burst size
	RateLimitBurst int
}

// CMSConfig holds the GraphQL endpoint settings
type CMSConfig struct {
	// Endpoint is the WPGraphQL URL
	Endpoint string

	// Timeout bounds every query
	Timeout time.Duration
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite/none)
	Type string

	// DefaultTTL is the revalidation window for cached CMS responses
	DefaultTTL time.Duration

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged
	CleanupInterval time.Duration
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is one of debug/info/warn/error
	Level string

	// Format is json or text
	Format string

	// File enables rotating file output when set
	File string
}

// SiteConfig describes the public site
type SiteConfig struct {
	Name               string
	URL                string
	DefaultTitle       string
	DefaultDescription string
	DefaultLocale      string
	LogoPath           string
	ThemeColor         string
	ContactEmail       string
}

// LoadFromEnv loads configuration from environment variables. A .env file in the working
// directory is read first; variables already set in the environment win.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnvOrDefault("PORT", "8000"),
			Environment:        getEnvOrDefault("APP_ENV", "production"),
			RevalidationSecret: os.Getenv("REVALIDATION_SECRET"),
			RateLimitRPS:       getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 10),
			RateLimitBurst:     getEnvAsIntOrDefault("RATE_LIMIT_BURST", 20),
		},
		CMS: CMSConfig{
			Endpoint: getEnvOrDefault("WP_GRAPHQL_URL", os.Getenv("NEXT_PUBLIC_WP_GRAPHQL_URL")),
			Timeout:  time.Duration(getEnvAsIntOrDefault("CMS_TIMEOUT_MS", 10000)) * time.Millisecond,
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			DefaultTTL: time.Duration(getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 3600)) * time.Second,
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: time.Duration(getEnvAsIntOrDefault("MEMORY_CACHE_CLEANUP_SECONDS", 600)) * time.Second,
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cms-cache.db"),
			},
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
			File:   os.Getenv("LOG_FILE"),
		},
		Site:            defaultSite(),
		GamesConfigPath: os.Getenv("GAMES_CONFIG_PATH"),
	}

	cfg.Site.URL = strings.TrimRight(getEnvOrDefault("PRIMARY_SITE_URL", cfg.Site.URL), "/")

	return cfg, nil
}

// IsDevelopment reports whether diagnostics may be exposed to clients
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.CMS.Endpoint == "" {
		return errors.New("WP_GRAPHQL_URL cannot be empty")
	}

	if c.CMS.Timeout <= 0 {
		return errors.New("CMS timeout must be positive")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite", "none":
	default:
		return errors.New("cache type must be 'memory', 'redis', 'sqlite' or 'none'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Server.RateLimitRPS < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if !strings.HasPrefix(c.Site.URL, "http://") && !strings.HasPrefix(c.Site.URL, "https://") {
		return errors.New("PRIMARY_SITE_URL must be an absolute http(s) URL")
	}

	return nil
}
