// ABOUTME: Text helpers shared by metadata and JSON-LD generation
// ABOUTME: Descriptions are plain text cut at a word boundary

package seo

import (
	"gameportal-api/pkg/utils/html"
)

const (
	// DescriptionLength is the budget for meta descriptions
	DescriptionLength = html.DefaultExcerptLength

	// SchemaDescriptionLength is the budget for JSON-LD descriptions
	SchemaDescriptionLength = 300
)

// CleanDescription strips markup from text, collapses whitespace and truncates at the last
// word boundary within maxLength. A maxLength of zero or less uses DescriptionLength.
func CleanDescription(text string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DescriptionLength
	}
	return html.CreateExcerpt(text, maxLength)
}

// firstNonEmpty returns the first non-empty value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
