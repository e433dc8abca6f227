// Package dates converts between the backend's date strings and the two
// UI-facing date shapes: the YYYY-MM-DD value a date input expects and the
// MM/DD/YYYY string list views display.
package dates

import (
	"strings"
	"time"
)

// layouts lists the timestamp shapes the backend emits, most specific first.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse interprets value as a backend date string. The boolean result is
// false for empty or unparsable input.
func Parse(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// FormatForInput renders the calendar date in YYYY-MM-DD form, truncating the
// instant in UTC. Empty or unparsable input yields the empty string so forms
// can bind the result directly.
func FormatForInput(value string) string {
	parsed, ok := Parse(value)
	if !ok {
		return ""
	}
	return parsed.UTC().Format("2006-01-02")
}

// FormatForDisplay renders the calendar date in the US numeric MM/DD/YYYY
// form. Empty or unparsable input yields the empty string.
func FormatForDisplay(value string) string {
	parsed, ok := Parse(value)
	if !ok {
		return ""
	}
	return parsed.UTC().Format("01/02/2006")
}
