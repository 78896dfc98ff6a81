// ABOUTME: Response DTOs for game endpoints
// ABOUTME: The wire shape is independent of the domain structs

package responses

import (
	"time"

	"gameportal-api/core/seo"
	"gameportal-api/pkg/utils/html"
)

// GameResponse is a processed game as served to the frontend
type GameResponse struct {
	Slug              string     `json:"slug" doc:"Unique game slug"`
	Title             string     `json:"title" doc:"Display title"`
	ShortDescription  string     `json:"short_description" doc:"One-line summary"`
	SanitizedContent  string     `json:"sanitized_content" doc:"Long description, safe HTML"`
	Excerpt           string     `json:"excerpt" doc:"Plain-text preview"`
	ReadingTime       int        `json:"reading_time" doc:"Estimated minutes to read, at least 1"`
	IframeURL         string     `json:"iframe_url" doc:"HTTPS URL of the playable game"`
	Thumbnail         string     `json:"thumbnail,omitempty" doc:"16:9 listing image path"`
	OGImage           string     `json:"og_image,omitempty" doc:"1200x630 social image path"`
	Genres            []string   `json:"genre" doc:"Genres in CMS order"`
	Developer         string     `json:"developer,omitempty" doc:"Game developer"`
	PublishedAt       *time.Time `json:"published_at,omitempty" doc:"Publication date"`
	MetaTitle         string     `json:"meta_title" doc:"SEO title"`
	MetaDescription   string     `json:"meta_description" doc:"SEO description"`
	SocialDescription string     `json:"social_description,omitempty" doc:"Description for social cards"`
	Rating            float64    `json:"rating" doc:"Average player rating, 0 when unrated"`
	RatingCount       int        `json:"rating_count" doc:"Number of ratings"`
	IsMainGame        bool       `json:"is_main_game" doc:"Whether this is the game served at /"`
	URLPath           string     `json:"url_path" doc:"Canonical page path"`
}

// GameListResponse is a list of games
type GameListResponse struct {
	Games []GameResponse `json:"games" doc:"Games in catalog order"`
	Total int            `json:"total" doc:"Number of games"`
}

// GamePageResponse is everything a game page renders
type GamePageResponse struct {
	Game         GameResponse   `json:"game" doc:"The requested game"`
	RelatedGames []GameResponse `json:"related_games" doc:"Other games to suggest, at most 3"`
	Outline      []html.Heading `json:"outline" doc:"h2 and h3 headings of the game content, in order"`
}

// HomeResponse is everything the site root renders
type HomeResponse struct {
	MainGame       GameResponse   `json:"main_game" doc:"The main game"`
	SecondaryGames []GameResponse `json:"secondary_games" doc:"Active secondary games, possibly empty"`
	SEO            SEOResponse    `json:"seo" doc:"Metadata and structured data for the root page"`
}

// SEOResponse bundles page metadata with its JSON-LD graph
type SEOResponse struct {
	Metadata seo.Metadata `json:"metadata" doc:"Page metadata"`
	JSONLD   seo.Graph    `json:"json_ld" doc:"schema.org JSON-LD graph"`
}
