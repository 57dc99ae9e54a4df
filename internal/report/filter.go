package report

import (
	"strings"

	"github.com/kirubhashini2006-coder/internship-portal/internal/dateutil"
	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// Filter combines the free-text search with an optional submission date
// range. Zero-value fields are inactive, so the zero Filter passes everything.
type Filter struct {
	Term string
	// From and To bound createdAt, both YYYY-MM-DD, both inclusive.
	From string
	To   string
}

// MatchesText reports whether the term occurs in the record's gate-pass id,
// application number or student name, case-insensitively. The empty term
// matches every record.
func MatchesText(rec model.ApplicationRecord, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(rec.ID), term) ||
		strings.Contains(strings.ToLower(rec.ApplicationNo), term) ||
		strings.Contains(strings.ToLower(rec.StudentName), term)
}

// MatchesDateRange reports whether the record's createdAt falls inside
// [from, to], with to pinned to end-of-day. Records whose createdAt cannot be
// parsed always pass: undated records are never hidden by a date filter.
func MatchesDateRange(rec model.ApplicationRecord, from, to string) bool {
	created, ok := dateutil.ParseTimestamp(rec.CreatedAt)
	if !ok {
		return true
	}
	if f, ok := dateutil.ParseDate(from); ok && created.Before(f) {
		return false
	}
	if t, ok := dateutil.ParseDate(to); ok && created.After(dateutil.EndOfDay(t)) {
		return false
	}
	return true
}

// Apply keeps the records matching both predicates, preserving order.
// Filtering an already-filtered set with the same filter is a no-op.
func Apply(records []model.ApplicationRecord, f Filter) []model.ApplicationRecord {
	out := make([]model.ApplicationRecord, 0, len(records))
	for _, rec := range records {
		if MatchesText(rec, f.Term) && MatchesDateRange(rec, f.From, f.To) {
			out = append(out, rec)
		}
	}
	return out
}
