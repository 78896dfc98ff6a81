package game

import (
	"context"
	"encoding/json"
	"sync"

	"gameportal-api/core/domain"
	"gameportal-api/core/interfaces"
)

// mockExecutor is a mock implementation of the GraphQLExecutor interface
type mockExecutor struct {
	mu          sync.Mutex
	requests    []interfaces.GraphQLRequest
	executeFunc func(ctx context.Context, req interfaces.GraphQLRequest) (json.RawMessage, error)
}

func (m *mockExecutor) Execute(ctx context.Context, req interfaces.GraphQLRequest) (json.RawMessage, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.executeFunc != nil {
		return m.executeFunc(ctx, req)
	}
	return json.RawMessage("null"), nil
}

func (m *mockExecutor) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// mockAssets is a mock implementation of the AssetLookup interface
type mockAssets map[string][2]string

func (m mockAssets) Assets(slug string) (string, string, bool) {
	a, ok := m[slug]
	return a[0], a[1], ok
}

// mockMetrics is a mock implementation of the PipelineMetrics interface
type mockMetrics struct {
	dropped []string
}

func (m *mockMetrics) RecordDropped(field string) {
	m.dropped = append(m.dropped, field)
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	mu       sync.Mutex
	warnings []map[string]interface{}
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, fields)
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockCatalog is a mock implementation of the Catalog interface
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

func (c *mockCatalog) IsValidSlug(slug string) bool {
	if slug == c.main {
		return true
	}
	for _, s := range c.secondary {
		if s == slug {
			return true
		}
	}
	return false
}

// gameNode builds a CMS node JSON object for slug
func gameNode(slug, title, iframeURL string) map[string]interface{} {
	return map[string]interface{}{
		"seo": map[string]interface{}{
			"title":    title + " - Play Online",
			"metaDesc": "Play " + title,
		},
		"gameContent": map[string]interface{}{
			"title":           title,
			"slug":            slug,
			"genre":           []string{"Racing"},
			"publishedAt":     "2024-05-01T10:00:00",
			"longDescription": "<p>" + title + " is a game.</p>",
		},
		"gameFields": map[string]interface{}{
			"iframeUrl":        iframeURL,
			"developer":        "Kodub",
			"shortDescription": "Short " + title,
		},
	}
}

func mustJSON(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func singleGame(node interface{}) json.RawMessage {
	return mustJSON(map[string]interface{}{"game": node})
}

func gamesList(nodes ...interface{}) json.RawMessage {
	return mustJSON(map[string]interface{}{"games": map[string]interface{}{"nodes": nodes}})
}

func newTestService(exec *mockExecutor) (*Service, *mockLogger, *mockMetrics) {
	logger := &mockLogger{}
	metrics := &mockMetrics{}
	svc := NewService(interfaces.Dependencies{
		CMS: exec,
		Assets: mockAssets{
			"polytrack":  {"/images/polytrack-thumbnail.jpg", "/images/polytrack-og.jpg"},
			"drift-boss": {"/images/drift-boss.jpg", ""},
		},
		Logger:  logger,
		Metrics: metrics,
	})
	return svc, logger, metrics
}

func validRecord(slug string) domain.GameRecord {
	return domain.GameRecord{
		Slug:                slug,
		Title:               "Polytrack",
		IframeURL:           "https://app.example.com/polytrack",
		LongDescriptionHTML: "<p>Race <strong>fast</strong>.</p>",
		Genres:              []string{},
	}
}
