package site

import (
	"strconv"
	"strings"

	"gameportal-api/pkg/config"
)

// RobotsRule is a user-agent group in robots.txt
type RobotsRule struct {
	UserAgent  string
	Allow      []string
	Disallow   []string
	CrawlDelay int
}

var (
	defaultDisallow = []string{"/api/", "/test-api/", "/_next/", "/admin/", "/*.json$", "/private/"}
	searchDisallow  = []string{"/api/", "/test-api/", "/admin/", "/private/"}
)

// RobotsRules returns the crawl rules for all agents and the major search engines
func RobotsRules() []RobotsRule {
	return []RobotsRule{
		{UserAgent: "*", Allow: []string{"/"}, Disallow: defaultDisallow},
		{UserAgent: "Googlebot", Allow: []string{"/"}, Disallow: searchDisallow},
		{UserAgent: "Bingbot", Allow: []string{"/"}, Disallow: searchDisallow, CrawlDelay: 1},
	}
}

// Robots renders robots.txt for site
func Robots(site config.SiteConfig) string {
	var b strings.Builder

	for i, rule := range RobotsRules() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("User-Agent: " + rule.UserAgent + "\n")
		for _, path := range rule.Allow {
			b.WriteString("Allow: " + path + "\n")
		}
		for _, path := range rule.Disallow {
			b.WriteString("Disallow: " + path + "\n")
		}
		if rule.CrawlDelay > 0 {
			b.WriteString("Crawl-delay: " + strconv.Itoa(rule.CrawlDelay) + "\n")
		}
	}

	b.WriteString("\nHost: " + site.URL + "\n")
	b.WriteString("Sitemap: " + site.URL + "/sitemap.xml\n")

	return b.String()
}
