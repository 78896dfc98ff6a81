// ABOUTME: Parses the CMS FAQ payload into a schema.org FAQPage
// ABOUTME: Question and answer text is reduced to plain text with a strict bluemonday policy

package seo

import (
	"encoding/json"
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"gameportal-api/core/interfaces"
)

// FAQItem is one entry of the CMS FAQ payload
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQPage is the schema.org FAQPage node
type FAQPage struct {
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a schema.org Question with its accepted answer
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org Answer
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// FAQParser turns CMS FAQ payloads into FAQPage nodes. It is safe for concurrent use.
type FAQParser struct {
	policy *bluemonday.Policy
	logger interfaces.Logger
}

// NewFAQParser creates a parser that logs malformed payloads to logger
func NewFAQParser(logger interfaces.Logger) *FAQParser {
	return &FAQParser{
		policy: bluemonday.StrictPolicy(),
		logger: logger,
	}
}

// Parse decodes payload, a JSON array of {question, answer} objects. It returns nil when the
// payload is empty, not an array, invalid JSON, or has no complete entries.
func (p *FAQParser) Parse(payload string) *FAQPage {
	if strings.TrimSpace(payload) == "" {
		return nil
	}

	var raw interface{}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		p.logger.Error("Failed to parse FAQ JSON-LD", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if _, ok := raw.([]interface{}); !ok {
		p.logger.Error("FAQ JSON-LD must be an array", nil)
		return nil
	}

	var items []FAQItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		p.logger.Error("Failed to parse FAQ JSON-LD", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	questions := make([]Question, 0, len(items))
	for _, item := range items {
		q := p.plain(item.Question)
		a := p.plain(item.Answer)
		if q == "" || a == "" {
			continue
		}
		questions = append(questions, Question{
			Type:           "Question",
			Name:           q,
			AcceptedAnswer: Answer{Type: "Answer", Text: a},
		})
	}

	if len(questions) == 0 {
		return nil
	}

	return &FAQPage{Type: "FAQPage", MainEntity: questions}
}

// plain strips all markup. bluemonday escapes entities; JSON encoding escapes again, so
// they are unescaped here.
func (p *FAQParser) plain(s string) string {
	return strings.TrimSpace(stdhtml.UnescapeString(p.policy.Sanitize(s)))
}
