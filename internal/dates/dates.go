// ABOUTME: Date-only parsing, formatting and comparison helpers
// ABOUTME: Storage form is YYYY-MM-DD, display form is DD/MM/YYYY

package dates

import (
	"fmt"
	"time"
)

const (
	// StorageLayout is the wire/storage form used by every entity date field.
	StorageLayout = "2006-01-02"
	// DisplayLayout is the human-readable form shown by the console.
	DisplayLayout = "02/01/2006"
)

// FormatYMD renders a date in storage form. The zero time renders as "",
// matching the "no date" representation on the wire.
func FormatYMD(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(StorageLayout)
}

// ParseYMD parses a storage-form date string into a date-only time.
// The result carries the exact calendar date regardless of the local
// time zone (midnight UTC), so a round-trip through FormatYMD always
// yields the same day/month/year.
func ParseYMD(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(StorageLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// FormatDisplay renders a date as DD/MM/YYYY, or "" for the zero time.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DisplayLayout)
}

// StripTime truncates a time to its calendar date (midnight UTC).
func StripTime(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BeforeDay reports whether a falls strictly before b, comparing dates only.
func BeforeDay(a, b time.Time) bool {
	return StripTime(a).Before(StripTime(b))
}

// AfterDay reports whether a falls strictly after b, comparing dates only.
func AfterDay(a, b time.Time) bool {
	return StripTime(a).After(StripTime(b))
}
