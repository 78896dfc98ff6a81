// ABOUTME: Heading outline of sanitized rich text for in-page navigation
// ABOUTME: Uses a DOM parse because heading text may span nested inline tags

package html

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one entry of a content outline
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id,omitempty"`
}

// Outline lists the h2 and h3 headings of content in document order. content should
// already be sanitized. Headings without text are skipped.
func Outline(content string) []Heading {
	headings := []Heading{}
	if strings.TrimSpace(content) == "" {
		return headings
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return headings
	}

	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}

		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}

		id, _ := s.Attr("id")
		headings = append(headings, Heading{Level: level, Text: text, ID: id})
	})

	return headings
}
