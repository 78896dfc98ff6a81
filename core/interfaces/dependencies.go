// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// CMS executes GraphQL queries against the content source
	CMS GraphQLExecutor

	// Assets supplies locally configured image paths per slug
	Assets AssetLookup

	// Logger provides structured logging
	Logger Logger

	// Metrics records pipeline outcomes. May be nil.
	Metrics PipelineMetrics
}
