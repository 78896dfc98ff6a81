// ABOUTME: Plain-text derivation from HTML: tag stripping and word-boundary excerpts
// ABOUTME: Used for meta descriptions and listing previews

package html

import (
	"regexp"
	"strings"
)

// DefaultExcerptLength is the excerpt budget used for meta descriptions
const DefaultExcerptLength = 160

var (
	anyTag         = regexp.MustCompile(`<[^>]*>`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// ExtractPlainText removes every tag, collapses whitespace and trims
func ExtractPlainText(html string) string {
	if html == "" {
		return ""
	}

	text := anyTag.ReplaceAllString(html, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CreateExcerpt returns the plain text of html cut at the last word boundary within
// maxLength runes, followed by an ellipsis when anything was cut. A maxLength of zero or
// less uses DefaultExcerptLength.
func CreateExcerpt(html string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultExcerptLength
	}

	text := ExtractPlainText(html)
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	truncated := string(runes[:maxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		return truncated[:lastSpace] + ellipsis
	}
	return truncated + ellipsis
}

// WordCount counts whitespace-delimited tokens in s
func WordCount(s string) int {
	return len(strings.Fields(s))
}
