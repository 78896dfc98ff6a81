// ABOUTME: schema.org JSON-LD graph for game pages
// ABOUTME: Organization, SoftwareApplication, WebSite or ItemPage, and an optional FAQPage

package seo

import (
	"strconv"

	"gameportal-api/core/domain"
	"gameportal-api/pkg/config"
)

const (
	schemaContext    = "https://schema.org"
	fallbackImage    = "/og-image.jpg"
	operatingSystems = "Windows, Chrome OS, Linux, MacOS, Android, iOS"
)

// Graph is a JSON-LD document with several top-level nodes
type Graph struct {
	Context string        `json:"@context"`
	Graph   []interface{} `json:"@graph"`
}

// Ref points at another node by @id
type Ref struct {
	ID string `json:"@id"`
}

// Organization is the publisher of the site
type Organization struct {
	Context      string       `json:"@context,omitempty"`
	Type         string       `json:"@type"`
	ID           string       `json:"@id"`
	Name         string       `json:"name"`
	URL          string       `json:"url"`
	Logo         string       `json:"logo"`
	ContactPoint ContactPoint `json:"contactPoint"`
	SameAs       []string     `json:"sameAs"`
}

// ContactPoint is the organization's support contact
type ContactPoint struct {
	Type              string   `json:"@type"`
	Email             string   `json:"email"`
	ContactType       string   `json:"contactType"`
	AvailableLanguage []string `json:"availableLanguage"`
}

// SoftwareApplication describes the game itself
type SoftwareApplication struct {
	Type                   string           `json:"@type"`
	ID                     string           `json:"@id"`
	Name                   string           `json:"name"`
	Description            string           `json:"description"`
	URL                    string           `json:"url"`
	Image                  string           `json:"image"`
	ApplicationCategory    string           `json:"applicationCategory"`
	ApplicationSubCategory string           `json:"applicationSubCategory,omitempty"`
	OperatingSystem        string           `json:"operatingSystem"`
	Author                 Ref              `json:"author"`
	Publisher              Ref              `json:"publisher"`
	Offers                 Offer            `json:"offers"`
	PotentialAction        PlayAction       `json:"potentialAction"`
	AggregateRating        *AggregateRating `json:"aggregateRating,omitempty"`
}

// Offer marks the game as free
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	Description   string `json:"description"`
}

// PlayAction links to the playable page
type PlayAction struct {
	Type   string     `json:"@type"`
	Target EntryPoint `json:"target"`
}

// EntryPoint is the target of a PlayAction
type EntryPoint struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

// AggregateRating summarizes player ratings. RatingValue has one decimal.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	RatingCount int    `json:"ratingCount"`
	BestRating  string `json:"bestRating"`
	WorstRating string `json:"worstRating"`
}

// WebSite is emitted on the main game page
type WebSite struct {
	Type        string `json:"@type"`
	ID          string `json:"@id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Publisher   Ref    `json:"publisher"`
	Author      Ref    `json:"author"`
	MainEntity  Ref    `json:"mainEntity"`
}

// ItemPage is emitted on secondary game pages
type ItemPage struct {
	Type        string         `json:"@type"`
	ID          string         `json:"@id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	IsPartOf    Ref            `json:"isPartOf"`
	MainEntity  Ref            `json:"mainEntity"`
	Breadcrumb  BreadcrumbList `json:"breadcrumb"`
}

// BreadcrumbList is the navigation trail of a page
type BreadcrumbList struct {
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one breadcrumb
type ListItem struct {
	Type     string         `json:"@type"`
	Position int            `json:"position"`
	Item     BreadcrumbItem `json:"item"`
}

// BreadcrumbItem names a breadcrumb target
type BreadcrumbItem struct {
	ID   string `json:"@id"`
	Name string `json:"name"`
}

// Crumb is a breadcrumb input
type Crumb struct {
	Name string
	URL  string
}

// SchemaBuilder assembles JSON-LD graphs for one site
type SchemaBuilder struct {
	site config.SiteConfig
	faq  *FAQParser
}

// NewSchemaBuilder creates a builder for site
func NewSchemaBuilder(site config.SiteConfig, faq *FAQParser) *SchemaBuilder {
	return &SchemaBuilder{site: site, faq: faq}
}

func (b *SchemaBuilder) organizationID() string {
	return b.site.URL + "#organization"
}

func (b *SchemaBuilder) websiteID() string {
	return b.site.URL + "#website"
}

func (b *SchemaBuilder) gameURL(view domain.ProcessedGameView) string {
	return b.site.URL + view.URLPath
}

// Organization returns the site publisher node
func (b *SchemaBuilder) Organization() Organization {
	return Organization{
		Type: "Organization",
		ID:   b.organizationID(),
		Name: b.site.Name,
		URL:  b.site.URL,
		Logo: b.site.URL + b.site.LogoPath,
		ContactPoint: ContactPoint{
			Type:              "ContactPoint",
			Email:             b.site.ContactEmail,
			ContactType:       "customer service",
			AvailableLanguage: []string{"English"},
		},
		SameAs: []string{},
	}
}

// GameSchema returns the JSON-LD graph of a game page. The main game is described as the
// WebSite's main entity, other games as an ItemPage with breadcrumbs.
func (b *SchemaBuilder) GameSchema(view domain.ProcessedGameView) Graph {
	org := b.Organization()
	org.Context = schemaContext

	graph := []interface{}{org, b.application(view)}

	if view.IsMainGame {
		graph = append(graph, b.website(view))
	} else {
		graph = append(graph, b.itemPage(view))
	}

	if view.FAQPayload != "" && b.faq != nil {
		if faq := b.faq.Parse(view.FAQPayload); faq != nil {
			graph = append(graph, faq)
		}
	}

	return Graph{Context: schemaContext, Graph: graph}
}

func (b *SchemaBuilder) application(view domain.ProcessedGameView) SoftwareApplication {
	url := b.gameURL(view)

	app := SoftwareApplication{
		Type:                "SoftwareApplication",
		ID:                  url + "#game",
		Name:                view.Title,
		Description:         CleanDescription(firstNonEmpty(view.Excerpt, view.ShortDescription), SchemaDescriptionLength),
		URL:                 url,
		Image:               firstNonEmpty(view.OGImagePath, view.ThumbnailPath, fallbackImage),
		ApplicationCategory: "Game",
		OperatingSystem:     operatingSystems,
		Author:              Ref{ID: b.organizationID()},
		Publisher:           Ref{ID: b.organizationID()},
		Offers: Offer{
			Type:          "Offer",
			Price:         "0",
			PriceCurrency: "USD",
			Availability:  "https://schema.org/InStock",
			Description:   "Play this game for free in your browser",
		},
		PotentialAction: PlayAction{
			Type:   "PlayAction",
			Target: EntryPoint{Type: "EntryPoint", URLTemplate: url},
		},
	}

	if len(view.Genres) > 0 {
		app.ApplicationSubCategory = view.Genres[0]
	}

	if view.HasRatings() {
		app.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: strconv.FormatFloat(view.Rating, 'f', 1, 64),
			RatingCount: view.RatingCount,
			BestRating:  "5",
			WorstRating: "1",
		}
	}

	return app
}

func (b *SchemaBuilder) website(view domain.ProcessedGameView) WebSite {
	return WebSite{
		Type:        "WebSite",
		ID:          b.websiteID(),
		Name:        firstNonEmpty(view.MetaTitle, view.Title),
		Description: firstNonEmpty(view.MetaDescription, view.Excerpt),
		URL:         b.site.URL,
		Publisher:   Ref{ID: b.organizationID()},
		Author:      Ref{ID: b.organizationID()},
		MainEntity:  Ref{ID: b.gameURL(view) + "#game"},
	}
}

func (b *SchemaBuilder) itemPage(view domain.ProcessedGameView) ItemPage {
	url := b.gameURL(view)

	return ItemPage{
		Type:        "ItemPage",
		ID:          url + "#page",
		Name:        view.Title,
		Description: CleanDescription(firstNonEmpty(view.Excerpt, view.ShortDescription), SchemaDescriptionLength),
		URL:         url,
		IsPartOf:    Ref{ID: b.websiteID()},
		MainEntity:  Ref{ID: url + "#game"},
		Breadcrumb: Breadcrumbs([]Crumb{
			{Name: "Home", URL: b.site.URL},
			{Name: view.Title, URL: url},
		}),
	}
}

// Breadcrumbs numbers crumbs from 1
func Breadcrumbs(crumbs []Crumb) BreadcrumbList {
	items := make([]ListItem, len(crumbs))
	for i, c := range crumbs {
		items[i] = ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Item:     BreadcrumbItem{ID: c.URL, Name: c.Name},
		}
	}
	return BreadcrumbList{Type: "BreadcrumbList", ItemListElement: items}
}
