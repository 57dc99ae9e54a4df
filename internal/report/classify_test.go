package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

var classifyNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func stamped(id string, createdAt string) model.ApplicationRecord {
	return model.ApplicationRecord{ID: id, CreatedAt: createdAt}
}

func TestClassify_Partition(t *testing.T) {
	records := []model.ApplicationRecord{
		stamped("SP000001", "2024-05-09T10:00:00Z"), // yesterday
		stamped("SP000002", "2024-04-01T10:00:00Z"), // weeks ago
		stamped("SP000003", "2024-05-03T12:00:00Z"), // exactly 7 days, inclusive
		stamped("SP000004", ""),                     // undated
	}

	recent, archived := Classify(records, classifyNow)

	assert.Len(t, recent, 2)
	assert.Len(t, archived, 2)
	assert.Equal(t, len(records), len(recent)+len(archived), "partition covers every record once")

	seen := map[string]bool{}
	for _, r := range append(recent, archived...) {
		assert.False(t, seen[r.ID], "record %s classified twice", r.ID)
		seen[r.ID] = true
	}
}

func TestClassify_WindowBoundary(t *testing.T) {
	inside := stamped("SP000001", "2024-05-03T12:00:00Z")
	outside := stamped("SP000002", "2024-05-03T11:59:59Z")

	recent, archived := Classify([]model.ApplicationRecord{inside, outside}, classifyNow)
	require.Len(t, recent, 1)
	require.Len(t, archived, 1)
	assert.Equal(t, "SP000001", recent[0].ID)
	assert.Equal(t, "SP000002", archived[0].ID)
}

func TestClassify_UnparseableCreatedAtIsArchived(t *testing.T) {
	records := []model.ApplicationRecord{
		stamped("SP000001", "garbage"),
		stamped("SP000002", ""),
	}

	recent, archived := Classify(records, classifyNow)
	assert.Empty(t, recent)
	assert.Len(t, archived, 2)
}

func TestClassify_Empty(t *testing.T) {
	recent, archived := Classify(nil, classifyNow)
	assert.Empty(t, recent)
	assert.Empty(t, archived)
}
