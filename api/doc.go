// Package api provides the HTTP API layer for the game portal.
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
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Middleware Support
//
// The API includes middleware for:
// - CORS handling
// - Feature flags injected into the request context
// - Request logging with unique request IDs
// - Rate limiting per IP address
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:      logger,
//	    RateLimiter: middleware.NewRateLimiter(10, 20),
//	    Flags:       featureflags.NewEnvManager("FEATURE_"),
//	})
//
//	handlers.NewGameHandler(portal, schema, site, opts, false).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format. Pipeline error codes map to statuses:
// NOT_FOUND is 404, VALIDATION_ERROR is 422, GRAPHQL_ERROR is 502 and
// NETWORK_ERROR is 503, or 504 when the CMS timed out. Error details are only
// included when the server runs in development.
package api
