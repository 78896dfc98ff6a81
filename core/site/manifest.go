package site

import "gameportal-api/pkg/config"

// Manifest is a web app manifest
type Manifest struct {
	Name            string     `json:"name"`
	ShortName       string     `json:"short_name"`
	Description     string     `json:"description"`
	StartURL        string     `json:"start_url"`
	Display         string     `json:"display"`
	BackgroundColor string     `json:"background_color"`
	ThemeColor      string     `json:"theme_color"`
	Orientation     string     `json:"orientation"`
	Scope           string     `json:"scope"`
	Lang            string     `json:"lang"`
	Icons           []Icon     `json:"icons"`
	Categories      []string   `json:"categories"`
	Shortcuts       []Shortcut `json:"shortcuts"`
}

// Icon is a manifest icon
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type,omitempty"`
	Purpose string `json:"purpose,omitempty"`
}

// Shortcut is a manifest app shortcut
type Shortcut struct {
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icons       []Icon `json:"icons"`
}

// NewManifest builds the manifest for site
func NewManifest(site config.SiteConfig) Manifest {
	lang := site.DefaultLocale
	if lang == "" {
		lang = "en"
	}

	return Manifest{
		Name:            site.Name,
		ShortName:       site.Name,
		Description:     site.DefaultDescription,
		StartURL:        "/",
		Display:         "standalone",
		BackgroundColor: "#ffffff",
		ThemeColor:      site.ThemeColor,
		Orientation:     "portrait",
		Scope:           "/",
		Lang:            lang,
		Icons: []Icon{
			{Src: "/images/icon-192x192.png", Sizes: "192x192", Type: "image/png", Purpose: "maskable"},
			{Src: "/images/icon-256x256.png", Sizes: "256x256", Type: "image/png"},
			{Src: "/images/icon-384x384.png", Sizes: "384x384", Type: "image/png"},
			{Src: "/images/icon-512x512.png", Sizes: "512x512", Type: "image/png", Purpose: "any"},
		},
		Categories: []string{"games", "entertainment"},
		Shortcuts: []Shortcut{{
			Name:        "Play Games",
			ShortName:   "Games",
			Description: "Browse and play games",
			URL:         "/",
			Icons:       []Icon{{Src: "/images/icon-192x192.png", Sizes: "192x192"}},
		}},
	}
}
