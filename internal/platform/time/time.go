// Package time holds time helpers, mostly around the business day a
// slip belongs to
package time

import "time"

// DayFormat is the wire and storage form of a business day
const DayFormat = "2006-01-02"

// Ptr returns a pointer to t, nil when t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Day truncates t to its date in UTC
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay reads a YYYY-MM-DD business day
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DayFormat, s)
}

// FormatDay writes a business day as YYYY-MM-DD
func FormatDay(t time.Time) string { return t.UTC().Format(DayFormat) }
