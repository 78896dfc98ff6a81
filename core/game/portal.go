// ABOUTME: Page-level game queries: main game, secondary games, a game page and the home page
// ABOUTME: Composes the pipeline with the game catalog and returns processed views

package game

import (
	"context"
	"sync"

	"gameportal-api/core/domain"
	apperrors "gameportal-api/core/errors"
	"gameportal-api/core/interfaces"
)

// MaxRelatedGames caps the related games shown on a game page
const MaxRelatedGames = 3

// Catalog is the read-only view of the configured games the portal needs
type Catalog interface {
	MainSlug() string
	SecondarySlugs() []string
	IsValidSlug(slug string) bool
}

// Fetcher is the part of Service the portal depends on
type Fetcher interface {
	FetchBySlug(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[*domain.GameRecord]
	FetchBySlugs(ctx context.Context, slugs []string, opts domain.QueryOptions) domain.Result[[]domain.GameRecord]
}

// HomePageView is everything the site root renders
type HomePageView struct {
	MainGame       domain.ProcessedGameView   `json:"main_game"`
	SecondaryGames []domain.ProcessedGameView `json:"secondary_games"`
}

// GamePageView is everything a game page renders
type GamePageView struct {
	Game         domain.ProcessedGameView   `json:"game"`
	RelatedGames []domain.ProcessedGameView `json:"related_games"`
}

// Portal answers page-level queries
type Portal struct {
	fetcher Fetcher
	catalog Catalog
	logger  interfaces.Logger
}

// NewPortal creates a portal over fetcher and catalog
func NewPortal(fetcher Fetcher, catalog Catalog, logger interfaces.Logger) *Portal {
	return &Portal{
		fetcher: fetcher,
		catalog: catalog,
		logger:  logger,
	}
}

// MainGame returns the processed main game
func (p *Portal) MainGame(ctx context.Context, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView] {
	slug := p.catalog.MainSlug()

	result := p.fetcher.FetchBySlug(ctx, slug, opts)
	if !result.Success {
		return domain.Fail[domain.ProcessedGameView](result.Error)
	}
	if result.Data == nil {
		return domain.Fail[domain.ProcessedGameView](apperrors.NotFound(slug, "Main game"))
	}

	return domain.Ok(ToProcessedView(*result.Data, true))
}

// SecondaryGames returns the processed active secondary games in catalog order
func (p *Portal) SecondaryGames(ctx context.Context, opts domain.QueryOptions) domain.Result[[]domain.ProcessedGameView] {
	slugs := p.catalog.SecondarySlugs()

	result := p.fetcher.FetchBySlugs(ctx, slugs, opts)
	if !result.Success {
		return domain.Fail[[]domain.ProcessedGameView](result.Error)
	}

	byslug := make(map[string]domain.GameRecord, len(result.Data))
	for _, record := range result.Data {
		byslug[record.Slug] = record
	}

	views := make([]domain.ProcessedGameView, 0, len(result.Data))
	for _, slug := range slugs {
		if record, ok := byslug[slug]; ok {
			views = append(views, ToProcessedView(record, false))
		}
	}

	return domain.Ok(views)
}

// GameBySlug returns the processed game for slug. Unknown or inactive catalog slugs are
// NOT_FOUND without querying the CMS.
func (p *Portal) GameBySlug(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[domain.ProcessedGameView] {
	if !p.catalog.IsValidSlug(slug) {
		return domain.Fail[domain.ProcessedGameView](apperrors.NotFound(slug, ""))
	}

	result := p.fetcher.FetchBySlug(ctx, slug, opts)
	if !result.Success {
		return domain.Fail[domain.ProcessedGameView](result.Error)
	}
	if result.Data == nil {
		return domain.Fail[domain.ProcessedGameView](apperrors.NotFound(slug, ""))
	}

	return domain.Ok(ToProcessedView(*result.Data, slug == p.catalog.MainSlug()))
}

// HomePage fetches the main and secondary games concurrently. A failed secondary fetch
// degrades to an empty list; a failed main game fails the page.
func (p *Portal) HomePage(ctx context.Context, opts domain.QueryOptions) domain.Result[HomePageView] {
	var (
		wg        sync.WaitGroup
		main      domain.Result[domain.ProcessedGameView]
		secondary domain.Result[[]domain.ProcessedGameView]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		main = p.MainGame(ctx, opts)
	}()
	go func() {
		defer wg.Done()
		secondary = p.SecondaryGames(ctx, opts)
	}()
	wg.Wait()

	if !main.Success {
		return domain.Fail[HomePageView](main.Error)
	}

	return domain.Ok(HomePageView{
		MainGame:       main.Data,
		SecondaryGames: p.secondaryOrEmpty(secondary),
	})
}

// GamePage fetches a game with up to MaxRelatedGames other games: the main game first when
// it is not the requested one, then the secondary games.
func (p *Portal) GamePage(ctx context.Context, slug string, opts domain.QueryOptions) domain.Result[GamePageView] {
	if !p.catalog.IsValidSlug(slug) {
		return domain.Fail[GamePageView](apperrors.NotFound(slug, ""))
	}

	var (
		wg        sync.WaitGroup
		game      domain.Result[domain.ProcessedGameView]
		main      domain.Result[domain.ProcessedGameView]
		secondary domain.Result[[]domain.ProcessedGameView]
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		game = p.GameBySlug(ctx, slug, opts)
	}()
	go func() {
		defer wg.Done()
		main = p.MainGame(ctx, opts)
	}()
	go func() {
		defer wg.Done()
		secondary = p.SecondaryGames(ctx, opts)
	}()
	wg.Wait()

	if !game.Success {
		return domain.Fail[GamePageView](game.Error)
	}

	related := make([]domain.ProcessedGameView, 0, MaxRelatedGames)
	if main.Success && main.Data.Slug != slug {
		related = append(related, main.Data)
	}
	for _, view := range p.secondaryOrEmpty(secondary) {
		if view.Slug != slug {
			related = append(related, view)
		}
	}
	if len(related) > MaxRelatedGames {
		related = related[:MaxRelatedGames]
	}

	return domain.Ok(GamePageView{Game: game.Data, RelatedGames: related})
}

func (p *Portal) secondaryOrEmpty(result domain.Result[[]domain.ProcessedGameView]) []domain.ProcessedGameView {
	if result.Success {
		return result.Data
	}
	p.logger.Warn("Secondary games unavailable", map[string]interface{}{
		"code":  result.Error.Code,
		"error": result.Error.Message,
	})
	return []domain.ProcessedGameView{}
}
