package handlers

import (
	"context"
	"sync"
	"time"

	"gameportal-api/core/domain"
	"gameportal-api/core/game"
	"gameportal-api/pkg/config"
)

// mockPortal is a mock implementation of the GamePortal interface
type mockPortal struct {
	mainFunc      func(ctx context.Context, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView]
	secondaryFunc func(ctx context.Context, opts domain.QueryOptions) domain.Result[[]domain.ProcessedGameView]
	bySlugFunc    func(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView]
	pageFunc      func(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[game.GamePageView]
	homeFunc      func(ctx context.Context, opts domain.QueryOptions) domain.Result[game.HomePageView]
}

func (m *mockPortal) MainGame(ctx context.Context, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView] {
	if m.mainFunc != nil {
		return m.mainFunc(ctx, opts)
	}
	return domain.Ok(testView("polytrack", true))
}

func (m *mockPortal) SecondaryGames(ctx context.Context, opts domain.QueryOptions) domain.Result[[]domain.ProcessedGameView] {
	if m.secondaryFunc != nil {
		return m.secondaryFunc(ctx, opts)
	}
	return domain.Ok([]domain.ProcessedGameView{})
}

func (m *mockPortal) GameBySlug(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView] {
	if m.bySlugFunc != nil {
		return m.bySlugFunc(ctx, slug, opts)
	}
	return domain.Ok(testView(slug, false))
}

func (m *mockPortal) GamePage(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[game.GamePageView] {
	if m.pageFunc != nil {
		return m.pageFunc(ctx, slug, opts)
	}
	return domain.Ok(game.GamePageView{Game: testView(slug, false), RelatedGames: []domain.ProcessedGameView{}})
}

func (m *mockPortal) HomePage(ctx context.Context, opts domain.QueryOptions) domain.Result[game.HomePageView] {
	if m.homeFunc != nil {
		return m.homeFunc(ctx, opts)
	}
	return domain.Ok(game.HomePageView{MainGame: testView("polytrack", true), SecondaryGames: []domain.ProcessedGameView{}})
}

// mockInvalidator records invalidated tags
type mockInvalidator struct {
	tags []string
	err  error
}

func (m *mockInvalidator) Invalidate(ctx context.Context, tags ...string) error {
	m.tags = append(m.tags, tags...)
	return m.err
}

// mockCatalog is a mock implementation of the catalog interfaces
type mockCatalog struct {
	main      string
	secondary []string
}

func (c *mockCatalog) MainSlug() string {
	return c.main
}

func (c *mockCatalog) SecondarySlugs() []string {
	return c.secondary
}

func (c *mockCatalog) AllActiveSlugs() []string {
	return append([]string{c.main}, c.secondary...)
}

// mockProber is a mock implementation of the Prober interface
type mockProber struct {
	elapsed time.Duration
	err     error
}

func (m *mockProber) Probe(ctx context.Context) (time.Duration, error) {
	return m.elapsed, m.err
}

// mockRecorder records web vitals
type mockRecorder struct {
	observed map[string]float64
}

func (m *mockRecorder) ObserveWebVital(name string, value float64) {
	if m.observed == nil {
		m.observed = map[string]float64{}
	}
	m.observed[name] = value
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) record(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record(msg) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record(msg) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record(msg) }

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:          "Polytrack",
		URL:           "https://polytrack.example",
		DefaultTitle:  "Polytrack - Play Now",
		DefaultLocale: "en",
		LogoPath:      "/images/logo.png",
		ThemeColor:    "#FE2E36",
	}
}

func testView(slug string, main bool) domain.ProcessedGameView {
	urlPath := "/game/" + slug
	if main {
		urlPath = "/"
	}
	return domain.ProcessedGameView{
		GameRecord: domain.GameRecord{
			Slug:      slug,
			Title:     "Polytrack",
			IframeURL: "https://app.example.com/" + slug,
			Genres:    []string{"Racing"},
		},
		SanitizedContentHTML: "<p>Race</p>",
		Excerpt:              "Race",
		ReadingTimeMinutes:   1,
		IsMainGame:           main,
		URLPath:              urlPath,
	}
}

// mockWarmer records warmed paths. A non-nil release holds WarmPaths until it is closed.
type mockWarmer struct {
	mu      sync.Mutex
	paths   []string
	release chan struct{}
}

func (m *mockWarmer) WarmPaths(paths ...string) {
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, paths...)
}

func (m *mockWarmer) warmed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paths
}
