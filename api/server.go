// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation, CORS, request logging, rate limiting and /metrics

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"gameportal-api/api/middleware"
	"gameportal-api/core/interfaces"
	"gameportal-api/pkg/featureflags"
)

const (
	apiTitle       = "Game Portal API"
	apiVersion     = "1.0.0"
	apiDescription = "Serves CMS-backed game pages, their SEO documents and crawler files"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimiter throttles requests per client IP. Nil disables rate limiting.
	RateLimiter *middleware.RateLimiter

	// Flags is injected into every request context
	Flags featureflags.Manager

	// MetricsHandler is mounted at /metrics when set
	MetricsHandler http.Handler

	// AllowedOrigins defaults to all origins
	AllowedOrigins []string
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})
}

func humaConfig() huma.Config {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription
	return config
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(corsHandler(nil))

	// The OpenAPI spec is automatically available at /openapi.json
	// The Swagger UI is automatically available at /docs
	api := humachi.New(router, humaConfig())

	return api, router
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS should be first so preflight requests are never throttled
	router.Use(corsHandler(cfg.AllowedOrigins))

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimiter != nil {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimiter))
	}

	if cfg.MetricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	api := humachi.New(router, humaConfig())

	return api, router
}
