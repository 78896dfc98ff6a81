// ABOUTME: Cache revalidation endpoint called by the CMS after content changes
// ABOUTME: Guarded by a shared bearer secret; maps page paths to CMS cache tags

package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"gameportal-api/api/dto/requests"
	"gameportal-api/api/dto/responses"
	"gameportal-api/core/interfaces"
	"gameportal-api/infrastructure/cms"
	"gameportal-api/pkg/featureflags"
)

const gamePathPrefix = "/game/"

// Invalidator drops cached CMS responses by tag
type Invalidator interface {
	Invalidate(ctx context.Context, tags ...string) error
}

// RevalidationCatalog is the part of the game catalog needed to map paths to tags
type RevalidationCatalog interface {
	MainSlug() string
	SecondarySlugs() []string
	AllActiveSlugs() []string
}

// Warmer re-renders pages in the background after their cache entries were dropped
type Warmer interface {
	WarmPaths(paths ...string)
}

// RevalidateHandler handles cache revalidation requests
type RevalidateHandler struct {
	secret      string
	invalidator Invalidator
	catalog     RevalidationCatalog
	warmer      Warmer
	logger      interfaces.Logger
	now         func() time.Time
}

// RevalidateOption configures a RevalidateHandler
type RevalidateOption func(*RevalidateHandler)

// WithWarmer re-renders revalidated pages so the next visitor is served from the cache
func WithWarmer(w Warmer) RevalidateOption {
	return func(h *RevalidateHandler) {
		h.warmer = w
	}
}

// NewRevalidateHandler creates a revalidation handler. A nil invalidator accepts requests
// without dropping anything, which is the case when caching is disabled.
func NewRevalidateHandler(secret string, invalidator Invalidator, catalog RevalidationCatalog, logger interfaces.Logger, opts ...RevalidateOption) *RevalidateHandler {
	h := &RevalidateHandler{
		secret:      secret,
		invalidator: invalidator,
		catalog:     catalog,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes registers the revalidation route
func (h *RevalidateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "revalidate",
		Method:      http.MethodPost,
		Path:        "/api/revalidate",
		Summary:     "Revalidate cached content",
		Description: "Drops cached CMS responses for a page path, a list of cache tags, or all pages",
		Tags:        []string{"Operations"},
	}, h.Revalidate)
}

// RevalidateInput is the revalidation request
type RevalidateInput struct {
	Authorization string `header:"Authorization" doc:"Bearer <REVALIDATION_SECRET>"`
	Body          requests.RevalidateRequest
}

// RevalidateOutput confirms the revalidation
type RevalidateOutput struct {
	Body responses.RevalidateResponse
}

// Revalidate handles POST /api/revalidate
func (h *RevalidateHandler) Revalidate(ctx context.Context, input *RevalidateInput) (*RevalidateOutput, error) {
	if !featureflags.IsEnabled(ctx, featureflags.RevalidateEnabled) {
		return nil, huma.Error404NotFound("Revalidation is disabled")
	}

	if !h.authorized(input.Authorization) {
		h.logger.Warn("Unauthorized revalidation attempt", nil)
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	req := input.Body
	if err := req.Validate(); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	tags := h.tagsFor(req)

	h.logger.Info("Revalidation request", map[string]interface{}{
		"type": req.Type,
		"path": req.Path,
		"tags": tags,
	})

	if h.invalidator != nil && len(tags) > 0 {
		if err := h.invalidator.Invalidate(ctx, tags...); err != nil {
			h.logger.Error("Revalidation error", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, huma.Error500InternalServerError("Internal server error")
		}

		if paths := h.pathsFor(req); h.warmer != nil && len(paths) > 0 {
			go h.warmer.WarmPaths(paths...)
		}
	}

	return &RevalidateOutput{Body: responses.RevalidateResponse{
		Message:   "Revalidation successful",
		Timestamp: h.now().UTC(),
		Type:      req.Type,
		Path:      req.Path,
		Tags:      tags,
	}}, nil
}

func (h *RevalidateHandler) authorized(header string) bool {
	token := strings.TrimPrefix(header, "Bearer ")
	if h.secret == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}

// tagsFor maps a request to the cache tags it invalidates
func (h *RevalidateHandler) tagsFor(req requests.RevalidateRequest) []string {
	switch req.Type {
	case requests.RevalidateTag:
		return req.Tags
	case requests.RevalidateAll:
		tags := make([]string, 0, len(h.catalog.AllActiveSlugs())+1)
		for _, slug := range h.catalog.AllActiveSlugs() {
			tags = append(tags, cms.TagForSlug(slug))
		}
		return append(tags, cms.TagForSlugs(h.catalog.SecondarySlugs()))
	default:
		return h.tagsForPath(req.Path)
	}
}

// tagsForPath maps a page path to the queries that page renders from. A secondary game also
// appears in the secondary batch. Paths that render no CMS content map to nothing.
func (h *RevalidateHandler) tagsForPath(path string) []string {
	path = strings.TrimSuffix(path, "/")

	switch {
	case path == "":
		return []string{
			cms.TagForSlug(h.catalog.MainSlug()),
			cms.TagForSlugs(h.catalog.SecondarySlugs()),
		}
	case strings.HasPrefix(path, gamePathPrefix):
		slug := strings.TrimPrefix(path, gamePathPrefix)
		if slug == "" || strings.Contains(slug, "/") {
			return []string{}
		}
		if slices.Contains(h.catalog.SecondarySlugs(), slug) {
			return []string{cms.TagForSlug(slug), cms.TagForSlugs(h.catalog.SecondarySlugs())}
		}
		return []string{cms.TagForSlug(slug)}
	default:
		return []string{}
	}
}

// pathsFor lists the pages to re-render after req. Raw tags cannot be mapped back to
// pages, so tag revalidation re-renders nothing.
func (h *RevalidateHandler) pathsFor(req requests.RevalidateRequest) []string {
	switch req.Type {
	case requests.RevalidateAll:
		return PagePaths(h.catalog)
	case requests.RevalidatePath:
		path := strings.TrimSuffix(req.Path, "/")
		if path == "" {
			return []string{"/"}
		}
		return []string{path}
	default:
		return nil
	}
}

// PagePaths lists every CMS-backed page: the root followed by each secondary game page
func PagePaths(catalog RevalidationCatalog) []string {
	paths := []string{"/"}
	for _, slug := range catalog.SecondarySlugs() {
		paths = append(paths, gamePathPrefix+slug)
	}
	return paths
}
