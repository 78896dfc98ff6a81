// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as the CMS, caching, HTTP communication, logging and metrics.
//
// The infrastructure package is organized by technical concern:
//
// - cms: WPGraphQL client and the tag-invalidated response cache in front of it
// - cache/memory: In-memory cache using go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite cache that survives restarts
// - http/standard: Standard library HTTP client with a pluggable transport
// - logger/structured: logrus logger with optional rotating file output
// - metrics: Prometheus collectors for CMS queries, dropped records and web vitals
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	    DB:      0,
//	})
//
// # CMS Client
//
//	httpClient := standard.NewStandardHTTPClient(30 * time.Second)
//	client := cms.NewClient(endpoint, httpClient, logger, cms.WithTimeout(10*time.Second))
//	executor := cms.NewCachingExecutor(client, cache, time.Hour, logger)
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := structured.NewLogger(structured.Config{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "slug": "polytrack",
//	})
package infrastructure
