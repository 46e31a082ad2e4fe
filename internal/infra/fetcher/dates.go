package fetcher

import (
	"strings"
	"time"
)

// fallbackLayouts are tried in order after RFC 3339. The day-first layouts
// come last so "2026-01-02" style dates are never read as day/month/year.
var fallbackLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006",
}

// NormalizeDate converts a raw date string from an upstream source into a
// publication timestamp.
//
// An empty string means the source genuinely has no date and maps to nil.
// A non-empty string that no layout can parse maps to the current time:
// the article demonstrably exists now, so it sorts as fresh rather than
// disappearing from date-ordered views.
func NormalizeDate(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	now := time.Now().UTC()
	return &now
}
