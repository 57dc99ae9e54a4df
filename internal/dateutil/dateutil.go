// Package dateutil holds the calendar helpers shared by the workflow and the
// reporting views. Parse failures never propagate: every helper degrades to a
// zero value so stored data of any shape stays reportable.
package dateutil

import "time"

// DateLayout is the plain calendar-date form used on all record date fields.
const DateLayout = "2006-01-02"

// ToDate adds days calendar days to a YYYY-MM-DD date. Returns "" when
// fromDate is missing or unparseable. Composition holds:
// ToDate(ToDate(d, n), m) == ToDate(d, n+m).
func ToDate(fromDate string, days int) string {
	t, err := time.Parse(DateLayout, fromDate)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, days).Format(DateLayout)
}

// ParseDate parses a record date field, reporting ok=false on any failure.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	return t, err == nil
}

// ParseTimestamp parses a createdAt value. Submissions write RFC3339, but
// snapshots written by older builds may carry bare dates.
func ParseTimestamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// EndOfDay pins a date to 23:59:59.999 so "to" bounds are inclusive.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
