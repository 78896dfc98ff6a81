// ABOUTME: Page metadata (title, description, canonical, OpenGraph, Twitter, robots)
// ABOUTME: Consumed by the frontend to render <head> for game pages and the site root

package seo

import (
	"gameportal-api/core/domain"
	"gameportal-api/pkg/config"
)

const (
	ogImageWidth  = 1200
	ogImageHeight = 630

	defaultThemeColor = "#000000"
)

// Metadata describes the <head> of a page
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Authors     []string          `json:"authors,omitempty"`
	Creator     string            `json:"creator,omitempty"`
	Publisher   string            `json:"publisher,omitempty"`
	Canonical   string            `json:"canonical"`
	OpenGraph   OpenGraph         `json:"open_graph"`
	Twitter     Twitter           `json:"twitter"`
	Robots      Robots            `json:"robots"`
	Other       map[string]string `json:"other,omitempty"`
}

// OpenGraph is the og:* block
type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	SiteName    string    `json:"site_name"`
	Locale      string    `json:"locale"`
	Type        string    `json:"type,omitempty"`
	Images      []OGImage `json:"images,omitempty"`
}

// OGImage is one og:image entry
type OGImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alt    string `json:"alt"`
}

// Twitter is the twitter:* block
type Twitter struct {
	Card        string   `json:"card"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
}

// Robots holds crawler directives
type Robots struct {
	Index     bool      `json:"index"`
	Follow    bool      `json:"follow"`
	GoogleBot GoogleBot `json:"google_bot"`
}

// GoogleBot holds Googlebot-specific directives. -1 means no limit.
type GoogleBot struct {
	Index           bool   `json:"index"`
	Follow          bool   `json:"follow"`
	MaxVideoPreview int    `json:"max-video-preview"`
	MaxImagePreview string `json:"max-image-preview"`
	MaxSnippet      int    `json:"max-snippet"`
}

func indexAll() Robots {
	return Robots{
		Index:  true,
		Follow: true,
		GoogleBot: GoogleBot{
			Index:           true,
			Follow:          true,
			MaxVideoPreview: -1,
			MaxImagePreview: "large",
			MaxSnippet:      -1,
		},
	}
}

// GamePageMetadata builds the metadata of a game page
func GamePageMetadata(view domain.ProcessedGameView, site config.SiteConfig) Metadata {
	canonical := site.URL + view.URLPath
	title := firstNonEmpty(view.MetaTitle, view.Title+" - Play Online Free")
	description := CleanDescription(firstNonEmpty(view.MetaDescription, view.ShortDescription, view.Excerpt), DescriptionLength)
	social := CleanDescription(firstNonEmpty(view.SocialDescription, description), DescriptionLength)

	md := Metadata{
		Title:       title,
		Description: description,
		Publisher:   site.Name,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: social,
			URL:         canonical,
			SiteName:    site.Name,
			Locale:      site.DefaultLocale,
			Type:        "website",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       title,
			Description: social,
		},
		Robots: indexAll(),
		Other: map[string]string{
			"theme-color":      firstNonEmpty(site.ThemeColor, defaultThemeColor),
			"color-scheme":     "light dark",
			"format-detection": "telephone=no",
		},
	}

	if view.Developer != "" {
		md.Authors = []string{view.Developer}
		md.Creator = view.Developer
	}

	if view.OGImagePath != "" {
		md.OpenGraph.Images = []OGImage{{
			URL:    view.OGImagePath,
			Width:  ogImageWidth,
			Height: ogImageHeight,
			Alt:    view.Title + " - Game Preview",
		}}
		md.Twitter.Images = []string{view.OGImagePath}
	}

	return md
}

// DefaultMetadata builds the fallback metadata of the site root
func DefaultMetadata(site config.SiteConfig) Metadata {
	return Metadata{
		Title:       site.DefaultTitle,
		Description: site.DefaultDescription,
		Authors:     []string{site.Name},
		Creator:     site.Name,
		Publisher:   site.Name,
		Canonical:   site.URL,
		OpenGraph: OpenGraph{
			Title:       site.DefaultTitle,
			Description: site.DefaultDescription,
			URL:         site.URL,
			SiteName:    site.Name,
			Locale:      site.DefaultLocale,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       site.DefaultTitle,
			Description: site.DefaultDescription,
		},
		Robots: indexAll(),
	}
}
