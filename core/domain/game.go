// ABOUTME: Game domain models: the validated record and its presentation-ready view
// ABOUTME: Records are built fresh per fetch and never mutated afterwards

package domain

import "time"

// GameRecord is the normalized representation of one game, independent of the CMS wire format
type GameRecord struct {
	// Slug is the unique identifier within a content source
	Slug string `json:"slug"`

	// Title is the display title
	Title string `json:"title"`

	ShortDescription string `json:"short_description"`

	// LongDescriptionHTML is raw, untrusted rich text as authored in the CMS
	LongDescriptionHTML string `json:"long_description"`

	// IframeURL must use the https scheme
	IframeURL string `json:"iframe_url"`

	// ThumbnailPath and OGImagePath come from the local game catalog, never the CMS
	ThumbnailPath string `json:"thumbnail,omitempty"`
	OGImagePath   string `json:"og_image,omitempty"`

	// Genres keeps CMS order and may be empty
	Genres []string `json:"genre"`

	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`

	Developer         string     `json:"developer,omitempty"`
	PublishedAt       *time.Time `json:"published_at,omitempty"`
	SocialDescription string     `json:"social_description,omitempty"`

	// FAQPayload is the serialized FAQ list as stored in the CMS
	FAQPayload string `json:"faq_jsonld,omitempty"`

	// Rating and RatingCount are 0 when the CMS has no ratings
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
}

// ProcessedGameView is a GameRecord enriched with derived, presentation-ready fields
type ProcessedGameView struct {
	GameRecord

	// SanitizedContentHTML is safe for direct injection into a page
	SanitizedContentHTML string `json:"sanitized_content"`

	// Excerpt is plain text bounded by the excerpt budget
	Excerpt string `json:"excerpt"`

	// ReadingTimeMinutes is always >= 1
	ReadingTimeMinutes int `json:"reading_time"`

	IsMainGame bool `json:"is_main_game"`

	// URLPath is "/" for the main game and "/game/{slug}" otherwise
	URLPath string `json:"url_path"`
}

// HasRatings reports whether an aggregate rating may be published for the game
func (v *ProcessedGameView) HasRatings() bool {
	return v.RatingCount > 0 && v.Rating > 0
}
