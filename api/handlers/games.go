// ABOUTME: Game handlers for the Huma API
// ABOUTME: Serves processed games, page bundles and their SEO documents

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"gameportal-api/api/dto/mappers"
	"gameportal-api/api/dto/responses"
	"gameportal-api/core/domain"
	"gameportal-api/core/game"
	"gameportal-api/core/seo"
	"gameportal-api/pkg/config"
)

// GamePortal is the page-level game service
type GamePortal interface {
	MainGame(ctx context.Context, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView]
	SecondaryGames(ctx context.Context, opts domain.QueryOptions) domain.Result[[]domain.ProcessedGameView]
	GameBySlug(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView]
	GamePage(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[game.GamePageView]
	HomePage(ctx context.Context, opts domain.QueryOptions) domain.Result[game.HomePageView]
}

// GameHandler handles game-related HTTP requests
type GameHandler struct {
	portal      GamePortal
	schema      *seo.SchemaBuilder
	site        config.SiteConfig
	opts        domain.QueryOptions
	development bool
}

// NewGameHandler creates a new game handler. opts is applied to every CMS query.
func NewGameHandler(portal GamePortal, schema *seo.SchemaBuilder, site config.SiteConfig, opts domain.QueryOptions, development bool) *GameHandler {
	return &GameHandler{
		portal:      portal,
		schema:      schema,
		site:        site,
		opts:        opts,
		development: development,
	}
}

// RegisterRoutes registers all game-related routes
func (h *GameHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getMainGame",
		Method:      http.MethodGet,
		Path:        "/api/games/main",
		Summary:     "Get the main game",
		Description: "Returns the processed main game served at the site root",
		Tags:        []string{"Games"},
	}, h.GetMainGame)

	huma.Register(api, huma.Operation{
		OperationID: "getSecondaryGames",
		Method:      http.MethodGet,
		Path:        "/api/games/secondary",
		Summary:     "Get secondary games",
		Description: "Returns the active secondary games in catalog order. Invalid CMS records are skipped.",
		Tags:        []string{"Games"},
	}, h.GetSecondaryGames)

	huma.Register(api, huma.Operation{
		OperationID: "getGamePage",
		Method:      http.MethodGet,
		Path:        "/api/games/{slug}",
		Summary:     "Get a game page",
		Description: "Returns a game with up to three related games",
		Tags:        []string{"Games"},
	}, h.GetGamePage)

	huma.Register(api, huma.Operation{
		OperationID: "getGameSEO",
		Method:      http.MethodGet,
		Path:        "/api/games/{slug}/seo",
		Summary:     "Get game page SEO",
		Description: "Returns page metadata and the schema.org JSON-LD graph for a game page",
		Tags:        []string{"SEO"},
	}, h.GetGameSEO)

	huma.Register(api, huma.Operation{
		OperationID: "getHomePage",
		Method:      http.MethodGet,
		Path:        "/api/home",
		Summary:     "Get the home page",
		Description: "Returns the main game, the secondary games and the root page SEO in one call",
		Tags:        []string{"Games"},
	}, h.GetHomePage)
}

// SlugInput identifies a game by slug
type SlugInput struct {
	Slug string `path:"slug" maxLength:"100" doc:"Game slug"`
}

// GameOutput is a single game
type GameOutput struct {
	Body responses.GameResponse
}

// GameListOutput is a list of games
type GameListOutput struct {
	Body responses.GameListResponse
}

// GamePageOutput is a game with related games
type GamePageOutput struct {
	Body responses.GamePageResponse
}

// SEOOutput is a page's metadata and JSON-LD
type SEOOutput struct {
	Body responses.SEOResponse
}

// HomeOutput is the home page bundle
type HomeOutput struct {
	Body responses.HomeResponse
}

// GetMainGame handles GET /api/games/main
func (h *GameHandler) GetMainGame(ctx context.Context, _ *struct{}) (*GameOutput, error) {
	result := h.portal.MainGame(ctx, h.opts)
	if !result.Success {
		return nil, toHumaError(result.Error, h.development)
	}

	return &GameOutput{Body: mappers.ToGameResponse(result.Data)}, nil
}

// GetSecondaryGames handles GET /api/games/secondary
func (h *GameHandler) GetSecondaryGames(ctx context.Context, _ *struct{}) (*GameListOutput, error) {
	result := h.portal.SecondaryGames(ctx, h.opts)
	if !result.Success {
		return nil, toHumaError(result.Error, h.development)
	}

	games := mappers.ToGameResponses(result.Data)
	return &GameListOutput{Body: responses.GameListResponse{Games: games, Total: len(games)}}, nil
}

// GetGamePage handles GET /api/games/{slug}
func (h *GameHandler) GetGamePage(ctx context.Context, input *SlugInput) (*GamePageOutput, error) {
	result := h.portal.GamePage(ctx, input.Slug, h.opts)
	if !result.Success {
		return nil, toHumaError(result.Error, h.development)
	}

	return &GamePageOutput{Body: mappers.ToGamePageResponse(result.Data)}, nil
}

// GetGameSEO handles GET /api/games/{slug}/seo
func (h *GameHandler) GetGameSEO(ctx context.Context, input *SlugInput) (*SEOOutput, error) {
	result := h.portal.GameBySlug(ctx, input.Slug, h.opts)
	if !result.Success {
		return nil, toHumaError(result.Error, h.development)
	}

	return &SEOOutput{Body: h.seoFor(result.Data)}, nil
}

// GetHomePage handles GET /api/home
func (h *GameHandler) GetHomePage(ctx context.Context, _ *struct{}) (*HomeOutput, error) {
	result := h.portal.HomePage(ctx, h.opts)
	if !result.Success {
		return nil, toHumaError(result.Error, h.development)
	}

	return &HomeOutput{Body: responses.HomeResponse{
		MainGame:       mappers.ToGameResponse(result.Data.MainGame),
		SecondaryGames: mappers.ToGameResponses(result.Data.SecondaryGames),
		SEO:            h.seoFor(result.Data.MainGame),
	}}, nil
}

func (h *GameHandler) seoFor(view domain.ProcessedGameView) responses.SEOResponse {
	return responses.SEOResponse{
		Metadata: seo.GamePageMetadata(view, h.site),
		JSONLD:   h.schema.GameSchema(view),
	}
}
