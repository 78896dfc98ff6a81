// ABOUTME: Crawler-facing documents: sitemap.xml, robots.txt and the web app manifest
// ABOUTME: Rendered per request from the game catalog and site configuration

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"gameportal-api/core/site"
	"gameportal-api/pkg/config"
)

// SiteHandler serves site documents
type SiteHandler struct {
	catalog site.Catalog
	site    config.SiteConfig
	now     func() time.Time
}

// NewSiteHandler creates a site document handler
func NewSiteHandler(catalog site.Catalog, siteConfig config.SiteConfig) *SiteHandler {
	return &SiteHandler{
		catalog: catalog,
		site:    siteConfig,
		now:     time.Now,
	}
}

// RegisterRoutes registers the site document routes
func (h *SiteHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "sitemap",
		Method:      http.MethodGet,
		Path:        "/sitemap.xml",
		Summary:     "Sitemap",
		Tags:        []string{"Site"},
	}, h.Sitemap)

	huma.Register(api, huma.Operation{
		OperationID: "robots",
		Method:      http.MethodGet,
		Path:        "/robots.txt",
		Summary:     "Robots rules",
		Tags:        []string{"Site"},
	}, h.Robots)

	huma.Register(api, huma.Operation{
		OperationID: "manifest",
		Method:      http.MethodGet,
		Path:        "/manifest.webmanifest",
		Summary:     "Web app manifest",
		Tags:        []string{"Site"},
	}, h.Manifest)
}

// DocumentOutput is a pre-rendered document written as-is
type DocumentOutput struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// Sitemap handles GET /sitemap.xml
func (h *SiteHandler) Sitemap(ctx context.Context, _ *struct{}) (*DocumentOutput, error) {
	body, err := site.MarshalSitemap(site.Sitemap(h.catalog, h.site, h.now()))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to render sitemap")
	}
	return &DocumentOutput{ContentType: "application/xml; charset=utf-8", Body: body}, nil
}

// Robots handles GET /robots.txt
func (h *SiteHandler) Robots(ctx context.Context, _ *struct{}) (*DocumentOutput, error) {
	return &DocumentOutput{
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(site.Robots(h.site)),
	}, nil
}

// Manifest handles GET /manifest.webmanifest
func (h *SiteHandler) Manifest(ctx context.Context, _ *struct{}) (*DocumentOutput, error) {
	body, err := json.Marshal(site.NewManifest(h.site))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to render manifest")
	}
	return &DocumentOutput{ContentType: "application/manifest+json", Body: body}, nil
}
