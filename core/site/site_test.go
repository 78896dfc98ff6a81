package site

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"gameportal-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCatalog []string

func (c staticCatalog) SecondarySlugs() []string {
	return c
}

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:               "Polytrack",
		URL:                "https://polytrack.example",
		DefaultDescription: "Play Polytrack in your browser.",
		DefaultLocale:      "en",
		ThemeColor:         "#FE2E36",
	}
}

func TestSitemap(t *testing.T) {
	now := time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC)

	set := Sitemap(staticCatalog{"moto-x3m", "drift-boss"}, testSite(), now)

	require.Len(t, set.URLs, 6)

	home := set.URLs[0]
	assert.Equal(t, "https://polytrack.example", home.Loc)
	assert.Equal(t, "daily", home.ChangeFrequency)
	assert.Equal(t, "1.0", home.PriorityText)
	assert.Equal(t, "2025-10-01T12:00:00Z", home.LastModified)

	assert.Equal(t, "https://polytrack.example/game/moto-x3m", set.URLs[1].Loc)
	assert.Equal(t, "weekly", set.URLs[1].ChangeFrequency)
	assert.Equal(t, 0.8, set.URLs[2].Priority)

	last := set.URLs[5]
	assert.Equal(t, "https://polytrack.example/privacy-policy", last.Loc)
	assert.Equal(t, "yearly", last.ChangeFrequency)
	assert.Equal(t, "2025-09-01T00:00:00Z", last.LastModified)
}

func TestMarshalSitemap(t *testing.T) {
	set := Sitemap(staticCatalog{}, testSite(), time.Now())

	data, err := MarshalSitemap(set)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://polytrack.example/about</loc>")
	assert.Contains(t, out, "<priority>0.5</priority>")

	assert.Equal(t, 4, strings.Count(out, "<url>"))
}

func TestRobots(t *testing.T) {
	out := Robots(testSite())

	assert.True(t, strings.HasPrefix(out, "User-Agent: *\nAllow: /\nDisallow: /api/\n"))
	assert.Contains(t, out, "User-Agent: Googlebot\n")
	assert.Contains(t, out, "User-Agent: Bingbot\nAllow: /\nDisallow: /api/\nDisallow: /test-api/\nDisallow: /admin/\nDisallow: /private/\nCrawl-delay: 1\n")
	assert.Contains(t, out, "Disallow: /*.json$\n")
	assert.Contains(t, out, "Host: https://polytrack.example\n")
	assert.True(t, strings.HasSuffix(out, "Sitemap: https://polytrack.example/sitemap.xml\n"))
}

func TestNewManifest(t *testing.T) {
	m := NewManifest(testSite())

	assert.Equal(t, "Polytrack", m.Name)
	assert.Equal(t, "Polytrack", m.ShortName)
	assert.Equal(t, "#FE2E36", m.ThemeColor)
	assert.Equal(t, "standalone", m.Display)
	assert.Equal(t, "en", m.Lang)
	require.Len(t, m.Icons, 4)
	assert.Equal(t, "maskable", m.Icons[0].Purpose)
	assert.Equal(t, []string{"games", "entertainment"}, m.Categories)
}
