// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the CMS executor, asset lookup and pipeline metrics

package interfaces

import (
	"context"
	"encoding/json"

	"gameportal-api/core/domain"
)

// GraphQLRequest is one query against the CMS
type GraphQLRequest struct {
	// Name labels the query in logs and metrics
	Name string

	Query     string
	Variables map[string]interface{}
	Options   domain.QueryOptions
}

// GraphQLExecutor runs a query and returns the raw "data" member of the response.
// Failures are reported as *errors.APIError with a NETWORK_ERROR or GRAPHQL_ERROR code.
type GraphQLExecutor interface {
	Execute(ctx context.Context, req GraphQLRequest) (json.RawMessage, error)
}

// AssetLookup resolves the locally configured images for a game
type AssetLookup interface {
	Assets(slug string) (thumbnail, ogImage string, ok bool)
}

// PipelineMetrics receives pipeline events worth counting
type PipelineMetrics interface {
	// RecordDropped counts a batch record rejected by validation
	RecordDropped(field string)
}
