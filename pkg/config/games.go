// ABOUTME: Game catalog: which games the portal shows and their local image assets
// ABOUTME: Loaded once at startup from YAML or the built-in default, read-only afterwards

package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

const (
	defaultMaxSecondaryGames = 4
	defaultCatalogCacheTTL   = 3600
	unsetPriority            = 999
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// GameConfig is one catalog entry
type GameConfig struct {
	// Slug matches the CMS post slug
	Slug string `yaml:"slug"`

	// DisplayName optionally overrides the title in navigation
	DisplayName string `yaml:"display_name"`

	// IsActive hides a game without deleting its entry
	IsActive bool `yaml:"active"`

	// Priority orders secondary games, lower first. Zero means unset.
	Priority int `yaml:"priority"`

	// Thumbnail is the 16:9 listing image path
	Thumbnail string `yaml:"thumbnail"`

	// OGImage is the 1200x630 social preview image path
	OGImage string `yaml:"og_image"`
}

// Validate checks a single entry
func (g GameConfig) Validate() error {
	return validation.ValidateStruct(&g,
		validation.Field(&g.Slug, validation.Required, validation.Match(slugPattern)),
		validation.Field(&g.Priority, validation.Min(0)),
	)
}

// CatalogSettings holds catalog-wide knobs
type CatalogSettings struct {
	MaxSecondaryGames int  `yaml:"max_secondary_games"`
	ShowInactiveInDev bool `yaml:"show_inactive_in_dev"`

	// DefaultCacheTTL is in seconds
	DefaultCacheTTL int `yaml:"default_cache_ttl"`
}

// GameCatalog is the slug-keyed lookup table handed to the content pipeline
type GameCatalog struct {
	MainGame       GameConfig      `yaml:"main_game"`
	SecondaryGames []GameConfig    `yaml:"secondary_games"`
	Settings       CatalogSettings `yaml:"settings"`

	development bool
}

// DefaultGameCatalog returns the built-in catalog
func DefaultGameCatalog(development bool) *GameCatalog {
	return &GameCatalog{
		MainGame: GameConfig{
			Slug:        "polytrack",
			DisplayName: "Polytrack",
			IsActive:    true,
			Priority:    1,
			Thumbnail:   "/images/polytrack-thumbnail.jpg",
			OGImage:     "/images/polytrack-og.jpg",
		},
		SecondaryGames: []GameConfig{},
		Settings: CatalogSettings{
			MaxSecondaryGames: defaultMaxSecondaryGames,
			ShowInactiveInDev: true,
			DefaultCacheTTL:   defaultCatalogCacheTTL,
		},
		development: development,
	}
}

// LoadGameCatalog reads a YAML catalog from path. An empty path returns the default.
func LoadGameCatalog(path string, development bool) (*GameCatalog, error) {
	if path == "" {
		return DefaultGameCatalog(development), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game catalog: %w", err)
	}

	return ParseGameCatalog(data, development)
}

// ParseGameCatalog decodes and validates a YAML catalog
func ParseGameCatalog(data []byte, development bool) (*GameCatalog, error) {
	catalog := &GameCatalog{}
	if err := yaml.Unmarshal(data, catalog); err != nil {
		return nil, fmt.Errorf("failed to parse game catalog: %w", err)
	}

	if catalog.Settings.MaxSecondaryGames == 0 {
		catalog.Settings.MaxSecondaryGames = defaultMaxSecondaryGames
	}
	if catalog.Settings.DefaultCacheTTL == 0 {
		catalog.Settings.DefaultCacheTTL = defaultCatalogCacheTTL
	}
	catalog.development = development

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game catalog: %w", err)
	}

	return catalog, nil
}

// Validate checks every entry and rejects duplicate slugs
func (c *GameCatalog) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.MainGame),
		validation.Field(&c.SecondaryGames),
		validation.Field(&c.Settings.MaxSecondaryGames, validation.Min(1)),
		validation.Field(&c.Settings.DefaultCacheTTL, validation.Min(0)),
	)
	if err != nil {
		return err
	}

	seen := map[string]bool{c.MainGame.Slug: true}
	for _, g := range c.SecondaryGames {
		if seen[g.Slug] {
			return fmt.Errorf("duplicate game slug %q", g.Slug)
		}
		seen[g.Slug] = true
	}

	return nil
}

// MainGameConfig returns the game served at "/"
func (c *GameCatalog) MainGameConfig() GameConfig {
	return c.MainGame
}

// MainSlug returns the slug of the game served at "/"
func (c *GameCatalog) MainSlug() string {
	return c.MainGame.Slug
}

func (c *GameCatalog) visible(g GameConfig) bool {
	return g.IsActive || (c.development && c.Settings.ShowInactiveInDev)
}

// ActiveSecondaryGames returns the visible secondary games ordered by priority and capped
// at MaxSecondaryGames
func (c *GameCatalog) ActiveSecondaryGames() []GameConfig {
	games := make([]GameConfig, 0, len(c.SecondaryGames))
	for _, g := range c.SecondaryGames {
		if c.visible(g) {
			games = append(games, g)
		}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return effectivePriority(games[i]) < effectivePriority(games[j])
	})

	if len(games) > c.Settings.MaxSecondaryGames {
		games = games[:c.Settings.MaxSecondaryGames]
	}
	return games
}

func effectivePriority(g GameConfig) int {
	if g.Priority == 0 {
		return unsetPriority
	}
	return g.Priority
}

// SecondarySlugs returns the slugs of ActiveSecondaryGames
func (c *GameCatalog) SecondarySlugs() []string {
	games := c.ActiveSecondaryGames()
	slugs := make([]string, len(games))
	for i, g := range games {
		slugs[i] = g.Slug
	}
	return slugs
}

// AllActiveSlugs returns the main slug followed by the active secondary slugs
func (c *GameCatalog) AllActiveSlugs() []string {
	return append([]string{c.MainGame.Slug}, c.SecondarySlugs()...)
}

// IsValidSlug reports whether slug names a game the portal may serve
func (c *GameCatalog) IsValidSlug(slug string) bool {
	if c.MainGame.Slug == slug && c.MainGame.IsActive {
		return true
	}
	for _, g := range c.SecondaryGames {
		if g.Slug == slug && c.visible(g) {
			return true
		}
	}
	return false
}

// BySlug looks up a catalog entry regardless of its active state
func (c *GameCatalog) BySlug(slug string) (GameConfig, bool) {
	if c.MainGame.Slug == slug {
		return c.MainGame, true
	}
	for _, g := range c.SecondaryGames {
		if g.Slug == slug {
			return g, true
		}
	}
	return GameConfig{}, false
}

// Assets returns the local thumbnail and social image paths for slug
func (c *GameCatalog) Assets(slug string) (thumbnail, ogImage string, ok bool) {
	g, ok := c.BySlug(slug)
	if !ok {
		return "", "", false
	}
	return g.Thumbnail, g.OGImage, true
}

// IsMainGame reports whether slug is the main game
func (c *GameCatalog) IsMainGame(slug string) bool {
	return c.MainGame.Slug == slug
}
