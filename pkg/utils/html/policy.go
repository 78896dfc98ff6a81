// ABOUTME: Allow-list policy for rich-text HTML coming from the CMS
// ABOUTME: Maps permitted tag names to the attribute names each tag may keep

package html

import "strings"

// Policy maps lowercase tag names to their permitted lowercase attribute names.
// A tag listed with no attributes is allowed bare.
type Policy map[string][]string

var defaultPolicy = Policy{
	"p":          {"class", "id"},
	"br":         {},
	"strong":     {"class"},
	"b":          {"class"},
	"em":         {"class"},
	"i":          {"class"},
	"u":          {"class"},
	"span":       {"class", "style"},
	"h1":         {"class", "id"},
	"h2":         {"class", "id"},
	"h3":         {"class", "id"},
	"h4":         {"class", "id"},
	"h5":         {"class", "id"},
	"h6":         {"class", "id"},
	"ul":         {"class"},
	"ol":         {"class"},
	"li":         {"class"},
	"a":          {"href", "title", "class", "target", "rel"},
	"img":        {"src", "alt", "title", "width", "height", "class"},
	"table":      {"class"},
	"thead":      {"class"},
	"tbody":      {"class"},
	"tr":         {"class"},
	"th":         {"class", "scope"},
	"td":         {"class"},
	"div":        {"class", "id"},
	"section":    {"class", "id"},
	"article":    {"class", "id"},
	"blockquote": {"class", "cite"},
	"cite":       {"class"},
	"code":       {"class"},
	"pre":        {"class"},
}

// DefaultPolicy returns a copy of the built-in allow-list
func DefaultPolicy() Policy {
	p := make(Policy, len(defaultPolicy))
	for tag, attrs := range defaultPolicy {
		p[tag] = append([]string{}, attrs...)
	}
	return p
}

// AllowsTag reports whether the tag may appear in sanitized output
func (p Policy) AllowsTag(tag string) bool {
	_, ok := p[strings.ToLower(tag)]
	return ok
}

// AllowsAttr reports whether attr may be kept on tag
func (p Policy) AllowsAttr(tag, attr string) bool {
	attrs, ok := p[strings.ToLower(tag)]
	if !ok {
		return false
	}
	attr = strings.ToLower(attr)
	for _, a := range attrs {
		if a == attr {
			return true
		}
	}
	return false
}
