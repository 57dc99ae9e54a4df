// Package store owns the ordered application record set. Every consumer
// (workflow, reporting, admin handlers) holds a reference to the one store
// instance; nobody keeps a private copy of the records.
package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/storage"
)

var (
	// ErrDuplicateID is returned by Append when the gate-pass id is already
	// on file. Recoverable: the caller picks the next free identifier.
	ErrDuplicateID = errors.New("gate pass number already entered")
	// ErrNotFound is returned by Update and Remove when no record matches
	// the id. Callers that want the old silent no-op behavior ignore it.
	ErrNotFound = errors.New("no record with this gate pass id")
)

// RecordStore is the single owner of the in-memory record set, persisting the
// whole set through its backend on every mutation. Insertion order is the
// canonical display order.
//
// The duplicate check in Append is the uniqueness backstop when several
// submissions race on the same snapshot, so it runs under the same lock as
// the insert.
type RecordStore struct {
	mu      sync.RWMutex
	records []model.ApplicationRecord
	persist storage.Persistence
	log     *zap.Logger
}

// New loads the persisted record set and returns the store. An empty or
// missing snapshot is a fresh office, not an error.
func New(ctx context.Context, persist storage.Persistence, log *zap.Logger) (*RecordStore, error) {
	if log == nil {
		log = zap.NewNop()
	}
	records, err := persist.Load(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("record store loaded", zap.Int("records", len(records)))
	return &RecordStore{records: records, persist: persist, log: log}, nil
}

// CanonicalID trims and upper-cases a gate-pass id so comparisons and storage
// agree on one case.
func CanonicalID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// Append inserts the record at the end of the set. The id is canonicalized
// first; a case-insensitive collision with any stored id rejects the whole
// insert and leaves the store unchanged.
func (s *RecordStore) Append(ctx context.Context, rec model.ApplicationRecord) error {
	rec = rec.Clone()
	rec.ID = CanonicalID(rec.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(rec.ID) >= 0 {
		return ErrDuplicateID
	}

	s.records = append(s.records, rec)
	if err := s.save(ctx); err != nil {
		return err
	}
	s.log.Info("record appended",
		zap.String("id", rec.ID),
		zap.String("application_no", rec.ApplicationNo),
		zap.String("group_id", rec.GroupID))
	return nil
}

// Update replaces the stored record whose id matches the incoming one.
func (s *RecordStore) Update(ctx context.Context, rec model.ApplicationRecord) error {
	rec = rec.Clone()
	rec.ID = CanonicalID(rec.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(rec.ID)
	if i < 0 {
		return ErrNotFound
	}

	// createdAt is immutable after creation
	rec.CreatedAt = s.records[i].CreatedAt
	s.records[i] = rec
	return s.save(ctx)
}

// Remove deletes the record with the matching id. Removing an id twice is
// safe: the second call reports ErrNotFound and changes nothing.
func (s *RecordStore) Remove(ctx context.Context, id string) error {
	id = CanonicalID(id)

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	s.records = append(s.records[:i], s.records[i+1:]...)
	return s.save(ctx)
}

// All enumerates every record in insertion order. The returned slice is a
// copy; mutating it does not touch the store.
func (s *RecordStore) All() []model.ApplicationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ApplicationRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Get looks a record up by id, case-insensitively.
func (s *RecordStore) Get(id string) (model.ApplicationRecord, bool) {
	id = CanonicalID(id)

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.ApplicationRecord{}, false
	}
	return s.records[i].Clone(), true
}

// IDs returns the current gate-pass ids, the snapshot the allocator works on.
func (s *RecordStore) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.ID
	}
	return out
}

// ApplicationNos returns the application numbers currently on file.
func (s *RecordStore) ApplicationNos() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.ApplicationNo
	}
	return out
}

// indexOf must be called with the lock held. Ids appended through this store
// are already canonical; the ToUpper on the stored side keeps older
// snapshots with mixed-case ids comparable too.
func (s *RecordStore) indexOf(canonicalID string) int {
	for i, rec := range s.records {
		if strings.ToUpper(strings.TrimSpace(rec.ID)) == canonicalID {
			return i
		}
	}
	return -1
}

func (s *RecordStore) save(ctx context.Context) error {
	if err := s.persist.Save(ctx, s.records); err != nil {
		s.log.Error("snapshot save failed", zap.Error(err))
		return err
	}
	return nil
}
