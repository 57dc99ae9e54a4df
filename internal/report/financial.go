package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/kirubhashini2006-coder/internship-portal/internal/dateutil"
	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// Default buckets for records missing a department or fee category.
const (
	DefaultDepartment = "General"
	DefaultCategory   = "Unspecified"
)

// GroupTotal is one (key, running sum) pair of a grouped breakdown.
type GroupTotal struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// FinancialSummary is the audit ledger header: counts by training type, the
// consolidated total, breakdowns by department and category (descending by
// sum) and the per-student average.
type FinancialSummary struct {
	InternshipCount  int          `json:"internship_count"`
	ProjectCount     int          `json:"project_count"`
	RecordCount      int          `json:"record_count"`
	Total            float64      `json:"total"`
	ByDepartment     []GroupTotal `json:"by_department"`
	ByCategory       []GroupTotal `json:"by_category"`
	AveragePerRecord float64      `json:"average_per_record"`
}

// Amount reads a record's fee amount; anything non-numeric contributes zero.
func Amount(rec model.ApplicationRecord) float64 {
	v, err := strconv.ParseFloat(rec.Amount, 64)
	if err != nil {
		return 0
	}
	return v
}

// Aggregate folds the given records into the financial summary. Total is a
// plain sum over every record, so the department and category breakdowns each
// add back up to it whenever every record carries the field.
func Aggregate(records []model.ApplicationRecord) FinancialSummary {
	summary := FinancialSummary{RecordCount: len(records)}
	byDept := map[string]float64{}
	byCat := map[string]float64{}

	for _, rec := range records {
		switch rec.TrainingType {
		case model.TrainingInternship:
			summary.InternshipCount++
		case model.TrainingProject:
			summary.ProjectCount++
		}

		amt := Amount(rec)
		summary.Total += amt

		dept := rec.DeptIPT
		if dept == "" {
			dept = DefaultDepartment
		}
		byDept[dept] += amt

		cat := rec.Category
		if cat == "" {
			cat = DefaultCategory
		}
		byCat[cat] += amt
	}

	summary.ByDepartment = sortedTotals(byDept)
	summary.ByCategory = sortedTotals(byCat)
	if len(records) > 0 {
		summary.AveragePerRecord = summary.Total / float64(len(records))
	}
	return summary
}

// Stats are the dashboard head-count tiles.
type Stats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	// Ongoing counts approved trainees whose training period covers today.
	Ongoing int `json:"ongoing"`
}

// Count tallies the dashboard stats for the given clock reading.
func Count(records []model.ApplicationRecord, now time.Time) Stats {
	stats := Stats{Total: len(records)}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, rec := range records {
		switch rec.Status {
		case model.StatusPending:
			stats.Pending++
		case model.StatusApproved:
			stats.Approved++
			start, okStart := dateutil.ParseDate(rec.FromDate)
			end, okEnd := dateutil.ParseDate(rec.ToDate)
			if okStart && okEnd && !today.Before(start) && !today.After(dateutil.EndOfDay(end)) {
				stats.Ongoing++
			}
		}
	}
	return stats
}

func sortedTotals(m map[string]float64) []GroupTotal {
	out := make([]GroupTotal, 0, len(m))
	for k, v := range m {
		out = append(out, GroupTotal{Key: k, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Key < out[j].Key
	})
	return out
}
