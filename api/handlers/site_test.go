package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameportal-api/core/site"
)

func newTestSiteAPI(t *testing.T) humatest.TestAPI {
	h := NewSiteHandler(&mockCatalog{main: "polytrack", secondary: []string{"moto-x3m", "drift-boss"}}, testSite())
	h.now = func() time.Time { return time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC) }
	_, api := humatest.New(t)
	h.RegisterRoutes(api)
	return api
}

func TestSiteHandler_Sitemap(t *testing.T) {
	api := newTestSiteAPI(t)

	resp := api.Get("/sitemap.xml")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/xml; charset=utf-8", resp.Header().Get("Content-Type"))
	body := resp.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Equal(t, 6, strings.Count(body, "<url>"))
	assert.Contains(t, body, "<loc>https://polytrack.example/game/drift-boss</loc>")
}

func TestSiteHandler_Robots(t *testing.T) {
	api := newTestSiteAPI(t)

	resp := api.Get("/robots.txt")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header().Get("Content-Type"))
	assert.Contains(t, resp.Body.String(), "Sitemap: https://polytrack.example/sitemap.xml")
}

func TestSiteHandler_Manifest(t *testing.T) {
	api := newTestSiteAPI(t)

	resp := api.Get("/manifest.webmanifest")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "application/manifest+json", resp.Header().Get("Content-Type"))

	var manifest site.Manifest
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &manifest))
	assert.Equal(t, "Polytrack", manifest.Name)
	assert.Equal(t, "#FE2E36", manifest.ThemeColor)
}
