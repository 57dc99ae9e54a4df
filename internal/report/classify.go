// Package report builds the derived views the admin dashboard reads: the
// recency partition, filtered listings and the financial audit summary. All
// functions are pure and total over whatever the store holds.
package report

import (
	"time"

	"github.com/kirubhashini2006-coder/internship-portal/internal/dateutil"
	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// RecencyWindow separates new registrations from the old data archive.
const RecencyWindow = 7 * 24 * time.Hour

// Classify partitions records into recent (createdAt within the trailing
// window of now) and archived. A missing or unparseable createdAt counts as
// epoch-zero creation, so the record always lands in the archive. Every input
// record ends up in exactly one of the two slices.
func Classify(records []model.ApplicationRecord, now time.Time) (recent, archived []model.ApplicationRecord) {
	recent = make([]model.ApplicationRecord, 0, len(records))
	archived = make([]model.ApplicationRecord, 0)
	for _, rec := range records {
		created, ok := dateutil.ParseTimestamp(rec.CreatedAt)
		if ok && now.Sub(created) <= RecencyWindow {
			recent = append(recent, rec)
		} else {
			archived = append(archived, rec)
		}
	}
	return recent, archived
}
