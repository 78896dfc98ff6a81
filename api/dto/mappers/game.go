// ABOUTME: Mappers from processed game views to API response DTOs
// ABOUTME: Nil slices become empty arrays on the wire

package mappers

import (
	"gameportal-api/api/dto/responses"
	"gameportal-api/core/domain"
	"gameportal-api/core/game"
	"gameportal-api/pkg/utils/html"
)

// ToGameResponse converts a processed view to its response DTO
func ToGameResponse(v domain.ProcessedGameView) responses.GameResponse {
	genres := v.Genres
	if genres == nil {
		genres = []string{}
	}

	return responses.GameResponse{
		Slug:              v.Slug,
		Title:             v.Title,
		ShortDescription:  v.ShortDescription,
		SanitizedContent:  v.SanitizedContentHTML,
		Excerpt:           v.Excerpt,
		ReadingTime:       v.ReadingTimeMinutes,
		IframeURL:         v.IframeURL,
		Thumbnail:         v.ThumbnailPath,
		OGImage:           v.OGImagePath,
		Genres:            genres,
		Developer:         v.Developer,
		PublishedAt:       v.PublishedAt,
		MetaTitle:         v.MetaTitle,
		MetaDescription:   v.MetaDescription,
		SocialDescription: v.SocialDescription,
		Rating:            v.Rating,
		RatingCount:       v.RatingCount,
		IsMainGame:        v.IsMainGame,
		URLPath:           v.URLPath,
	}
}

// ToGameResponses converts a list of views, never returning nil
func ToGameResponses(views []domain.ProcessedGameView) []responses.GameResponse {
	out := make([]responses.GameResponse, len(views))
	for i, v := range views {
		out[i] = ToGameResponse(v)
	}
	return out
}

// ToGamePageResponse converts a game page bundle and derives the content outline
func ToGamePageResponse(page game.GamePageView) responses.GamePageResponse {
	return responses.GamePageResponse{
		Game:         ToGameResponse(page.Game),
		RelatedGames: ToGameResponses(page.RelatedGames),
		Outline:      html.Outline(page.Game.SanitizedContentHTML),
	}
}
