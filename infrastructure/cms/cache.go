// ABOUTME: Response cache in front of the CMS client, keyed by query variables
// ABOUTME: Entries live for the revalidation window and can be invalidated by tag

package cms

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gameportal-api/core/interfaces"
)

// DefaultCacheTTL is the revalidation window when neither the executor nor the request sets one
const DefaultCacheTTL = time.Hour

// CachingExecutor decorates a GraphQLExecutor with a read-through cache. Only successful
// responses are stored.
type CachingExecutor struct {
	next     interfaces.GraphQLExecutor
	cache    interfaces.Cache
	ttl      time.Duration
	logger   interfaces.Logger
	observer QueryObserver
}

// CacheOption configures a CachingExecutor
type CacheOption func(*CachingExecutor)

// WithCacheObserver reports cache hits
func WithCacheObserver(o QueryObserver) CacheOption {
	return func(e *CachingExecutor) {
		e.observer = o
	}
}

// NewCachingExecutor wraps next. A non-positive ttl uses DefaultCacheTTL.
func NewCachingExecutor(next interfaces.GraphQLExecutor, cache interfaces.Cache, ttl time.Duration, logger interfaces.Logger, opts ...CacheOption) *CachingExecutor {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	e := &CachingExecutor{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute serves req from the cache when possible
func (e *CachingExecutor) Execute(ctx context.Context, req interfaces.GraphQLRequest) (json.RawMessage, error) {
	if req.Options.NoCache {
		return e.next.Execute(ctx, req)
	}

	tag := Tag(req.Variables)

	if cached, err := e.cache.Get(ctx, tag); err == nil {
		if e.observer != nil {
			e.observer.ObserveQuery(req.Name, "cached", 0)
		}
		e.logger.Debug("CMS cache hit", map[string]interface{}{
			"query": req.Name,
			"tag":   tag,
		})
		return cached, nil
	}

	data, err := e.next.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	ttl := e.ttl
	if req.Options.CacheTTL > 0 {
		ttl = req.Options.CacheTTL
	}

	if err := e.cache.Set(ctx, tag, data, ttl); err != nil {
		e.logger.Warn("Failed to cache CMS response", map[string]interface{}{
			"query": req.Name,
			"tag":   tag,
			"error": err.Error(),
		})
	}

	return data, nil
}

// Invalidate drops the cached responses for tags so the next query refetches
func (e *CachingExecutor) Invalidate(ctx context.Context, tags ...string) error {
	var errs []error
	for _, tag := range tags {
		if err := e.cache.Delete(ctx, tag); err != nil {
			errs = append(errs, err)
			continue
		}
		e.logger.Info("Invalidated CMS cache entry", map[string]interface{}{
			"tag": tag,
		})
	}
	return errors.Join(errs...)
}

// Tag is the cache key for a query: "game-" followed by the JSON-encoded variables
func Tag(variables map[string]interface{}) string {
	if variables == nil {
		variables = map[string]interface{}{}
	}
	encoded, err := json.Marshal(variables)
	if err != nil {
		return "game-{}"
	}
	return "game-" + string(encoded)
}

// TagForSlug is the tag of the single-game query for slug
func TagForSlug(slug string) string {
	return Tag(map[string]interface{}{"slug": slug})
}

// TagForSlugs is the tag of the games-by-slugs query for slugs, in the given order
func TagForSlugs(slugs []string) string {
	return Tag(map[string]interface{}{"slugs": slugs})
}
