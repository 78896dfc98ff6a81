// ABOUTME: Time parsing for CMS timestamps
// ABOUTME: WordPress emits several layouts depending on plugin and field type

package time

import (
	"strings"
	"time"
)

// Layouts seen in CMS date fields, most specific first
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"20060102",
	"01/02/2006",
	"January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// ParseFlexibleTime attempts to parse a time string using the known layouts.
// Returns the zero time when nothing matches.
func ParseFlexibleTime(timeStr string) time.Time {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return time.Time{}
	}

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseOptional is ParseFlexibleTime for optional fields: nil when absent or unparseable
func ParseOptional(timeStr string) *time.Time {
	t := ParseFlexibleTime(timeStr)
	if t.IsZero() {
		return nil
	}
	return &t
}
