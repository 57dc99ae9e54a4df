package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

func TestAggregate_CategoryTotals(t *testing.T) {
	records := []model.ApplicationRecord{
		{ID: "SP000001", TrainingType: model.TrainingInternship, Category: "UR", Amount: "100"},
		{ID: "SP000002", TrainingType: model.TrainingInternship, Category: "UR", Amount: "50"},
	}

	summary := Aggregate(records)
	assert.Equal(t, 150.0, summary.Total)
	require.Len(t, summary.ByCategory, 1)
	assert.Equal(t, GroupTotal{Key: "UR", Total: 150}, summary.ByCategory[0])
	assert.Equal(t, 2, summary.InternshipCount)
	assert.Equal(t, 0, summary.ProjectCount)
}

func TestAggregate_BreakdownsSumToTotal(t *testing.T) {
	records := []model.ApplicationRecord{
		{TrainingType: model.TrainingInternship, DeptIPT: "HRM", Category: "UR", Amount: "1200"},
		{TrainingType: model.TrainingProject, DeptIPT: "CRM", Category: "SC[25% DISCOUNT]", Amount: "900"},
		{TrainingType: model.TrainingProject, DeptIPT: "HRM", Category: "UR", Amount: "300.50"},
	}

	summary := Aggregate(records)

	var deptSum, catSum float64
	for _, g := range summary.ByDepartment {
		deptSum += g.Total
	}
	for _, g := range summary.ByCategory {
		catSum += g.Total
	}
	assert.InDelta(t, summary.Total, deptSum, 1e-9)
	assert.InDelta(t, summary.Total, catSum, 1e-9)
	assert.Equal(t, 1, summary.InternshipCount)
	assert.Equal(t, 2, summary.ProjectCount)
}

func TestAggregate_SortedByDescendingSum(t *testing.T) {
	records := []model.ApplicationRecord{
		{DeptIPT: "HRM", Amount: "100"},
		{DeptIPT: "CRM", Amount: "500"},
		{DeptIPT: "ADMN", Amount: "250"},
	}

	summary := Aggregate(records)
	require.Len(t, summary.ByDepartment, 3)
	assert.Equal(t, "CRM", summary.ByDepartment[0].Key)
	assert.Equal(t, "ADMN", summary.ByDepartment[1].Key)
	assert.Equal(t, "HRM", summary.ByDepartment[2].Key)
}

func TestAggregate_DefaultBuckets(t *testing.T) {
	records := []model.ApplicationRecord{{Amount: "75"}}

	summary := Aggregate(records)
	require.Len(t, summary.ByDepartment, 1)
	require.Len(t, summary.ByCategory, 1)
	assert.Equal(t, DefaultDepartment, summary.ByDepartment[0].Key)
	assert.Equal(t, DefaultCategory, summary.ByCategory[0].Key)
}

func TestAggregate_MalformedAmountsContributeZero(t *testing.T) {
	records := []model.ApplicationRecord{
		{Category: "UR", Amount: "abc"},
		{Category: "UR", Amount: ""},
		{Category: "UR", Amount: "40"},
	}

	summary := Aggregate(records)
	assert.Equal(t, 40.0, summary.Total)
	assert.Equal(t, 3, summary.RecordCount)
}

func TestAggregate_EmptyInput(t *testing.T) {
	summary := Aggregate(nil)
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, 0.0, summary.AveragePerRecord, "no division fault on empty input")
	assert.Empty(t, summary.ByDepartment)
	assert.Empty(t, summary.ByCategory)
}

func TestAggregate_AveragePerRecord(t *testing.T) {
	records := []model.ApplicationRecord{
		{Amount: "100"},
		{Amount: "50"},
	}
	assert.Equal(t, 75.0, Aggregate(records).AveragePerRecord)
}

func TestCount(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	records := []model.ApplicationRecord{
		{Status: model.StatusPending},
		{Status: model.StatusRejected},
		{Status: model.StatusApproved, FromDate: "2024-05-01", ToDate: "2024-05-20"}, // ongoing
		{Status: model.StatusApproved, FromDate: "2024-04-01", ToDate: "2024-04-10"}, // finished
		{Status: model.StatusApproved, FromDate: "2024-05-10", ToDate: "2024-05-15"}, // starts today
	}

	stats := Count(records, now)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 3, stats.Approved)
	assert.Equal(t, 2, stats.Ongoing)
}
