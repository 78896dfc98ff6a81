package seo

import (
	"sync"

	"gameportal-api/core/domain"
	"gameportal-api/pkg/config"
)

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:               "Polytrack",
		URL:                "https://polytrack.example",
		DefaultTitle:       "Polytrack - Play Now",
		DefaultDescription: "Play Polytrack in your browser.",
		DefaultLocale:      "en",
		LogoPath:           "/images/logo.png",
		ThemeColor:         "#FE2E36",
		ContactEmail:       "support@polytrack.example",
	}
}

func testView(slug string, main bool) domain.ProcessedGameView {
	urlPath := "/game/" + slug
	if main {
		urlPath = "/"
	}
	return domain.ProcessedGameView{
		GameRecord: domain.GameRecord{
			Slug:             slug,
			Title:            "Polytrack",
			ShortDescription: "A low-poly racing game.",
			IframeURL:        "https://app.example.com/polytrack",
			Genres:           []string{"Racing", "3D"},
			MetaTitle:        "Polytrack - Play Online",
			MetaDescription:  "Race <b>low-poly</b> cars.",
			Developer:        "Kodub",
			OGImagePath:      "/images/polytrack-og.jpg",
			ThumbnailPath:    "/images/polytrack-thumbnail.jpg",
		},
		Excerpt:            "Build tracks and race.",
		ReadingTimeMinutes: 1,
		IsMainGame:         main,
		URLPath:            urlPath,
	}
}
