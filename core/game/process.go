package game

import (
	"gameportal-api/core/domain"
	"gameportal-api/pkg/utils/html"
)

const (
	// MaxContentLength caps sanitized long descriptions regardless of CMS content size
	MaxContentLength = 50000

	wordsPerMinute = 200
)

// ToProcessedView enriches a validated record with presentation-ready fields. It is pure
// and cannot fail.
func ToProcessedView(record domain.GameRecord, isMainGame bool) domain.ProcessedGameView {
	urlPath := "/game/" + record.Slug
	if isMainGame {
		urlPath = "/"
	}

	return domain.ProcessedGameView{
		GameRecord:           record,
		SanitizedContentHTML: html.SanitizeHTML(record.LongDescriptionHTML, html.WithMaxLength(MaxContentLength)),
		Excerpt:              html.CreateExcerpt(record.LongDescriptionHTML, html.DefaultExcerptLength),
		ReadingTimeMinutes:   ReadingTime(record.LongDescriptionHTML),
		IsMainGame:           isMainGame,
		URLPath:              urlPath,
	}
}

// ReadingTime estimates minutes to read text at 200 words per minute, never less than 1.
// Words are counted on the raw text, markup included.
func ReadingTime(text string) int {
	words := html.WordCount(text)
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
