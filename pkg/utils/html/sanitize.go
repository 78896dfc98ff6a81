// ABOUTME: Allow-list HTML sanitizer for CMS rich text
// ABOUTME: Regex passes over the whole string, not a DOM parse; see the package doc for limits

// Package html cleans untrusted rich-text HTML and derives plain-text artifacts from it.
//
// SanitizeHTML is a sequence of regular-expression passes, each over the full string:
//
//  1. remove dangerous constructs (script/style/form blocks, embeds, meta/link tags,
//     inline event handlers, javascript:/data:/vbscript:/file: URLs in href/src)
//  2. drop opening and closing tag markers whose name is not allow-listed, keeping inner text
//  3. rebuild every remaining tag with only its allow-listed attributes
//  4. re-validate every href/src value against the URL scheme allow-list
//  5. normalize whitespace
//  6. truncate to the requested length without cutting inside a tag
//
// It is not an HTML parser. Malformed or adversarially nested markup can get past the
// allow-list; callers that need a hard guarantee must parse.
package html

import (
	"regexp"
	"strings"
)

const ellipsis = "..."

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
	regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`),
	regexp.MustCompile(`(?i)(?:href|src)\s*=\s*["']\s*(?:javascript|data|vbscript|file):[^"']*["']`),
	regexp.MustCompile(`(?is)<form[^>]*>.*?</form>`),
	regexp.MustCompile(`(?i)<input[^>]*/?>`),
	regexp.MustCompile(`(?is)<textarea[^>]*>.*?</textarea>`),
	regexp.MustCompile(`(?is)<select[^>]*>.*?</select>`),
	regexp.MustCompile(`(?is)<object[^>]*>.*?</object>`),
	regexp.MustCompile(`(?i)<embed[^>]*/?>`),
	regexp.MustCompile(`(?is)<applet[^>]*>.*?</applet>`),
	regexp.MustCompile(`(?i)<meta[^>]*/?>`),
	regexp.MustCompile(`(?i)<link[^>]*/?>`),
	regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
}

var (
	tagPattern      = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)
	tagAttrsPattern = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\s+([^>]*)>`)
	attrPattern     = regexp.MustCompile(`(\w+)\s*=\s*["']([^"']*)["']`)
	urlAttrPattern  = regexp.MustCompile(`(?i)(href|src)\s*=\s*["']([^"']*)["']`)

	classChars = regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	idChars    = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	plainChars = regexp.MustCompile(`[<>"']`)

	newlineRuns    = regexp.MustCompile(`\n{3,}`)
	horizontalRuns = regexp.MustCompile(`[ \t]+`)
)

var styleScrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)-moz-binding`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)behavior\s*:`),
	regexp.MustCompile(`(?i)@import`),
}

var blockedSchemes = []string{"javascript:", "data:", "vbscript:", "file:"}

var allowedURLPrefixes = []string{"/", "./", "../", "http://", "https://", "mailto:", "#"}

var allowedTargets = map[string]bool{
	"_blank":  true,
	"_self":   true,
	"_parent": true,
	"_top":    true,
}

var allowedRels = map[string]bool{
	"nofollow":   true,
	"noopener":   true,
	"noreferrer": true,
	"prev":       true,
	"next":       true,
}

// SanitizeHTML returns input reduced to the allow-listed tags and attributes.
// Empty input yields an empty string.
func SanitizeHTML(input string, opts ...Option) string {
	if input == "" {
		return ""
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cleaned := input
	for _, pattern := range dangerousPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	if o.stripDisallowed {
		cleaned = stripDisallowedTags(cleaned, o.policy)
	}

	cleaned = sanitizeAttributes(cleaned, o.policy)
	cleaned = sanitizeURLs(cleaned)
	cleaned = normalizeWhitespace(cleaned)

	if o.maxLength > 0 {
		cleaned = truncateHTML(cleaned, o.maxLength)
	}

	return cleaned
}

func stripDisallowedTags(s string, policy Policy) string {
	return replaceAllSubmatchFunc(tagPattern, s, func(m []string) string {
		if policy.AllowsTag(m[1]) {
			return m[0]
		}
		return ""
	})
}

func sanitizeAttributes(s string, policy Policy) string {
	return replaceAllSubmatchFunc(tagAttrsPattern, s, func(m []string) string {
		tagName, attrs := m[1], m[2]
		if !policy.AllowsTag(tagName) {
			return "<" + tagName + ">"
		}

		kept := filterAttributes(tagName, attrs, policy)
		if kept == "" {
			return "<" + tagName + ">"
		}
		return "<" + tagName + " " + kept + ">"
	})
}

func filterAttributes(tagName, attrs string, policy Policy) string {
	var kept []string
	for _, m := range attrPattern.FindAllStringSubmatch(attrs, -1) {
		name, value := m[1], m[2]
		if !policy.AllowsAttr(tagName, name) {
			continue
		}
		if clean, ok := sanitizeAttributeValue(name, value); ok {
			kept = append(kept, name+`="`+clean+`"`)
		}
	}
	return strings.Join(kept, " ")
}

// sanitizeAttributeValue returns the cleaned value and false when the attribute must be dropped
func sanitizeAttributeValue(name, value string) (string, bool) {
	switch strings.ToLower(name) {
	case "href", "src":
		return sanitizeURL(value)
	case "class":
		return strings.TrimSpace(classChars.ReplaceAllString(value, "")), true
	case "id":
		return strings.TrimSpace(idChars.ReplaceAllString(value, "")), true
	case "style":
		return sanitizeInlineStyle(value)
	case "target":
		if allowedTargets[value] {
			return value, true
		}
		return "", false
	case "rel":
		return sanitizeRel(value)
	default:
		return strings.TrimSpace(plainChars.ReplaceAllString(value, "")), true
	}
}

func sanitizeURL(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	normalized := strings.ToLower(strings.TrimSpace(raw))
	for _, scheme := range blockedSchemes {
		if strings.HasPrefix(normalized, scheme) {
			return "", false
		}
	}
	for _, prefix := range allowedURLPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return raw, true
		}
	}
	return "", false
}

func sanitizeURLs(s string) string {
	return replaceAllSubmatchFunc(urlAttrPattern, s, func(m []string) string {
		if clean, ok := sanitizeURL(m[2]); ok {
			return m[1] + `="` + clean + `"`
		}
		return ""
	})
}

// sanitizeInlineStyle drops the attribute when nothing survives the scrub, so a second
// pass over the output is a no-op
func sanitizeInlineStyle(style string) (string, bool) {
	for _, pattern := range styleScrubPatterns {
		style = pattern.ReplaceAllString(style, "")
	}
	style = strings.TrimSpace(style)
	if style == "" {
		return "", false
	}
	return style, true
}

func sanitizeRel(rel string) (string, bool) {
	var kept []string
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if allowedRels[token] {
			kept = append(kept, token)
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, " "), true
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	s = horizontalRuns.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncateHTML cuts s to maxLength runes. If the cut lands inside a tag the partial tag
// is dropped. An ellipsis marks the cut.
func truncateHTML(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	truncated := runes[:maxLength]
	lastOpen, lastClose := -1, -1
	for i, r := range truncated {
		switch r {
		case '<':
			lastOpen = i
		case '>':
			lastClose = i
		}
	}
	if lastOpen > lastClose {
		truncated = truncated[:lastOpen]
	}

	return string(truncated) + ellipsis
}

// replaceAllSubmatchFunc is ReplaceAllStringFunc with access to capture groups
func replaceAllSubmatchFunc(re *regexp.Regexp, s string, fn func([]string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, loc := range matches {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(fn(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
