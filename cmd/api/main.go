// ABOUTME: Main entry point for the game portal API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gameportal-api/api"
	"gameportal-api/api/handlers"
	"gameportal-api/api/middleware"
	"gameportal-api/core/domain"
	"gameportal-api/core/game"
	"gameportal-api/core/interfaces"
	"gameportal-api/core/seo"
	"gameportal-api/core/workers"
	"gameportal-api/infrastructure/cache/memory"
	"gameportal-api/infrastructure/cache/redis"
	"gameportal-api/infrastructure/cache/sqlite"
	"gameportal-api/infrastructure/cms"
	stdhttp "gameportal-api/infrastructure/http/standard"
	"gameportal-api/infrastructure/logger/structured"
	"gameportal-api/infrastructure/metrics"
	"gameportal-api/pkg/config"
	"gameportal-api/pkg/featureflags"
)

const (
	rateLimitSweepInterval = time.Minute
	shutdownTimeout        = 30 * time.Second
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

	logger := structured.NewLogger(structured.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})

	catalog, err := config.LoadGameCatalog(cfg.GamesConfigPath, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to load game catalog: %v", err)
	}

	logger.Info("Starting game portal API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"environment": cfg.Server.Environment,
		"cache_type":  cfg.Cache.Type,
		"main_game":   catalog.MainSlug(),
		"secondary":   catalog.SecondarySlugs(),
	})

	flags := featureflags.NewEnvManager("FEATURE_")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(registry)

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.CMS.Timeout+5*time.Second,
		stdhttp.WithTransport(middleware.NewLoggingRoundTripper(http.DefaultTransport, logger)),
	)

	cmsClient := cms.NewClient(cfg.CMS.Endpoint, httpClient, logger,
		cms.WithTimeout(cfg.CMS.Timeout),
		cms.WithObserver(appMetrics),
	)

	var (
		executor    interfaces.GraphQLExecutor = cmsClient
		invalidator handlers.Invalidator
	)
	startupCtx := context.Background()
	cachingEnabled := flags.IsEnabled(startupCtx, featureflags.CacheEnabled)
	if cache, closeCache := newCache(cfg, cachingEnabled, logger); cache != nil {
		defer closeCache()
		caching := cms.NewCachingExecutor(cmsClient, cache, cfg.Cache.DefaultTTL, logger,
			cms.WithCacheObserver(appMetrics),
		)
		executor = caching
		invalidator = caching
	}

	service := game.NewService(interfaces.Dependencies{
		CMS:     executor,
		Assets:  catalog,
		Logger:  logger,
		Metrics: appMetrics,
	})
	portal := game.NewPortal(service, catalog, logger)
	schema := seo.NewSchemaBuilder(cfg.Site, seo.NewFAQParser(logger))

	var limiter *middleware.RateLimiter
	stopLimiter := make(chan struct{})
	if cfg.Server.RateLimitRPS > 0 && flags.IsEnabled(startupCtx, featureflags.RateLimitEnabled) {
		limiter = middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
		go limiter.Run(rateLimitSweepInterval, stopLimiter)
	}

	var metricsHandler http.Handler
	if flags.IsEnabled(startupCtx, featureflags.MetricsEnabled) {
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:         logger,
		RateLimiter:    limiter,
		Flags:          flags,
		MetricsHandler: metricsHandler,
	})

	queryOpts := domain.QueryOptions{
		CacheTTL: time.Duration(catalog.Settings.DefaultCacheTTL) * time.Second,
	}

	var revalidateOpts []handlers.RevalidateOption
	if invalidator != nil {
		warmer := workers.NewPageWarmer(portal, queryOpts, logger, workers.DefaultWorkerConfig())
		if err := warmer.Start(); err != nil {
			log.Fatalf("Failed to start page warmer: %v", err)
		}
		defer func() { _ = warmer.Stop() }()

		revalidateOpts = append(revalidateOpts, handlers.WithWarmer(warmer))
		warmer.WarmPaths(handlers.PagePaths(catalog)...)
	}

	handlers.NewGameHandler(portal, schema, cfg.Site, queryOpts, cfg.IsDevelopment()).RegisterRoutes(humaAPI)
	handlers.NewRevalidateHandler(cfg.Server.RevalidationSecret, invalidator, catalog, logger, revalidateOpts...).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(cmsClient, cfg.Server.Environment).RegisterRoutes(humaAPI)
	handlers.NewWebVitalsHandler(appMetrics, logger).RegisterRoutes(humaAPI)
	handlers.NewSiteHandler(catalog, cfg.Site).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CMS.Timeout + 15*time.Second,
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
	close(stopLimiter)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured CMS response cache. It returns nil when caching is
// disabled. Redis and SQLite fall back to memory when they cannot be opened.
func newCache(cfg *config.Config, enabled bool, logger interfaces.Logger) (interfaces.Cache, func()) {
	nop := func() {}

	if !enabled {
		logger.Info("CMS response cache disabled by feature flag", nil)
		return nil, nop
	}

	switch cfg.Cache.Type {
	case "none":
		logger.Info("CMS response cache disabled", nil)
		return nil, nop
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, func() { _ = redisCache.Close() }
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return sqliteCache, func() { _ = sqliteCache.Close() }
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.Cache.Memory.CleanupInterval), nop
}
