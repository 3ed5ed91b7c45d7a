// Package dates parses the free-form date strings carried on container
// records. Upstream feeds them in several layouts, so every comparison goes
// through the cascade here instead of assuming one format; an unparseable
// value is an expected outcome, reported as ok=false rather than an error.
package dates

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var dateLayouts = []string{
	DateLayout,
	"02/01/2006",
	"2006/01/02",
	DateTimeLayout,
}

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04:05",
	DateLayout,
}

// ParseDate resolves text to a calendar date, dropping any time-of-day part.
func ParseDate(text string) (time.Time, bool) {
	ts, ok := parseCascade(text, dateLayouts)
	if !ok {
		return time.Time{}, false
	}
	year, month, day := ts.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, ts.Location()), true
}

// ParseDateTime resolves text to a full timestamp.
func ParseDateTime(text string) (time.Time, bool) {
	return parseCascade(text, dateTimeLayouts)
}

func parseCascade(text string, layouts []string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return ts, true
		}
	}
	if ts, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

// FormatDate renders the canonical date form used on the wire.
func FormatDate(ts time.Time) string {
	return ts.Format(DateLayout)
}

// FormatDateTime renders the canonical timestamp form used on the wire.
func FormatDateTime(ts time.Time) string {
	return ts.Format(DateTimeLayout)
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
