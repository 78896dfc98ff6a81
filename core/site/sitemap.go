// ABOUTME: Crawler-facing site documents: sitemap.xml, robots.txt and the web app manifest
// ABOUTME: Built from the game catalog and site configuration on every request

package site

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"gameportal-api/pkg/config"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// gameUpdateLag backdates game pages so crawlers see them as settled content
const gameUpdateLag = 24 * time.Hour

// staticContentUpdated is when the static pages last changed
var staticContentUpdated = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

// Catalog lists the games that get their own page
type Catalog interface {
	SecondarySlugs() []string
}

// URLSet is the sitemap root element
type URLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// SitemapURL is one sitemap entry
type SitemapURL struct {
	Loc             string  `xml:"loc"`
	LastModified    string  `xml:"lastmod"`
	ChangeFrequency string  `xml:"changefreq"`
	Priority        float64 `xml:"-"`
	PriorityText    string  `xml:"priority"`
}

func entry(loc string, modified time.Time, freq string, priority float64) SitemapURL {
	return SitemapURL{
		Loc:             loc,
		LastModified:    modified.UTC().Format(time.RFC3339),
		ChangeFrequency: freq,
		Priority:        priority,
		PriorityText:    strconv.FormatFloat(priority, 'f', 1, 64),
	}
}

// Sitemap lists the home page, every active secondary game and the static pages
func Sitemap(catalog Catalog, site config.SiteConfig, now time.Time) URLSet {
	gameUpdated := now.Add(-gameUpdateLag)
	slugs := catalog.SecondarySlugs()

	urls := make([]SitemapURL, 0, len(slugs)+4)
	urls = append(urls, entry(site.URL, gameUpdated, "daily", 1.0))
	for _, slug := range slugs {
		urls = append(urls, entry(site.URL+"/game/"+slug, gameUpdated, "weekly", 0.8))
	}
	urls = append(urls,
		entry(site.URL+"/about", staticContentUpdated, "monthly", 0.5),
		entry(site.URL+"/contact", staticContentUpdated, "monthly", 0.4),
		entry(site.URL+"/privacy-policy", staticContentUpdated, "yearly", 0.3),
	)

	return URLSet{XMLNS: sitemapNamespace, URLs: urls}
}

// MarshalSitemap renders set as an XML document with declaration
func MarshalSitemap(set URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
