// Package core contains the business logic for the game portal.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Game records, processed views, the Result envelope and CMS wire shapes
// - game: The fetch, map, validate and process pipeline plus page-level queries
// - seo: Page metadata, schema.org JSON-LD and FAQ parsing
// - site: Sitemap, robots rules and the web app manifest
// - errors: The four pipeline error codes
// - interfaces: Contracts for external dependencies (CMS, cache, HTTP, logger, metrics)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Operations return a domain.Result instead of panicking or partially failing
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    CMS:     cmsClient, // implements interfaces.GraphQLExecutor
//	    Assets:  catalog,   // implements interfaces.AssetLookup
//	    Logger:  logger,    // implements interfaces.Logger
//	    Metrics: metrics,   // implements interfaces.PipelineMetrics, may be nil
//	}
//
//	portal := game.NewPortal(game.NewService(deps), catalog, logger)
//
//	result := portal.HomePage(ctx, domain.QueryOptions{CacheTTL: time.Hour})
//	if !result.Success {
//	    return result.Error
//	}
package core
