// Package workflow drives the multi-stage submission of application records,
// including the grouped "add another student" path where several students
// share one batch of training and referral details.
package workflow

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/dateutil"
	"github.com/kirubhashini2006-coder/internship-portal/internal/idgen"
	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

// Stage of an in-progress submission session.
type Stage string

var (
	// StageForm collects personal, academic, training and referral details.
	StageForm Stage = "form"
	// StageUndertaking shows the undertaking for review before submission.
	StageUndertaking Stage = "undertaking"
	// StageConfirmed follows a successful submission; from here the student
	// adds another group member or starts a new group.
	StageConfirmed Stage = "confirmed"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("submission session not found")

// ErrWrongStage is returned when an action is not legal from the session's
// current stage, e.g. submitting before the undertaking was reviewed.
var ErrWrongStage = errors.New("action not available at this stage")

// Session is one in-progress submission. Draft carries the assembled record;
// Grouped marks a sibling add whose training and referral fields are locked
// to the group's values.
type Session struct {
	ID      string                  `json:"id"`
	Stage   Stage                   `json:"stage"`
	Grouped bool                    `json:"grouped"`
	Draft   model.ApplicationRecord `json:"draft"`
}

// Manager owns the live sessions and hands finished records to the store.
type Manager struct {
	store *store.RecordStore
	log   *zap.Logger
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a session manager over the given record store.
func NewManager(st *store.RecordStore, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:    st,
		log:      log,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Start opens a fresh session: a new group token is minted and a gate-pass
// id / application number pair is allocated from the store's current
// snapshot. Cross-session uniqueness is ultimately enforced by the store's
// duplicate check at submission.
func (m *Manager) Start() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:    uuid.NewString(),
		Stage: StageForm,
		Draft: m.freshDraft(idgen.NewGroupID()),
	}
	m.sessions[s.ID] = s
	m.log.Info("submission session started",
		zap.String("session_id", s.ID),
		zap.String("group_id", s.Draft.GroupID),
		zap.String("gate_pass_id", s.Draft.ID))
	return *s
}

// Get returns a snapshot of the session.
func (m *Manager) Get(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return *s, nil
}

// Update merges the non-empty fields of patch into the session draft.
// Identifier and status fields are never writable through the form, and on a
// grouped add the training and referral block stays locked to the group's
// values. ToDate is recomputed from fromDate and days on every update, never
// taken from the patch.
func (m *Manager) Update(id string, patch model.ApplicationRecord) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Stage == StageConfirmed {
		return Session{}, ErrWrongStage
	}

	locked := s.Draft
	utilities.MergeNonEmpty(&s.Draft, &patch)

	// system-owned fields
	s.Draft.ID = locked.ID
	s.Draft.ApplicationNo = locked.ApplicationNo
	s.Draft.GroupID = locked.GroupID
	s.Draft.CreatedAt = locked.CreatedAt
	s.Draft.Status = locked.Status
	s.Draft.Documents = locked.Documents

	if s.Grouped {
		restoreGroupFields(&s.Draft, locked)
	}

	s.Draft.ToDate = dateutil.ToDate(s.Draft.FromDate, s.Draft.Days)
	return *s, nil
}

// Advance moves the session from the form to the undertaking stage. The
// validation gate fails closed: the first failing rule is surfaced and the
// session does not move.
func (m *Manager) Advance(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Stage != StageForm {
		return Session{}, ErrWrongStage
	}
	if err := ValidateDraft(s.Draft); err != nil {
		return Session{}, err
	}
	s.Stage = StageUndertaking
	return *s, nil
}

// Back returns from the undertaking to the form stage.
func (m *Manager) Back(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Stage != StageUndertaking {
		return Session{}, ErrWrongStage
	}
	s.Stage = StageForm
	return *s, nil
}

// Submit hands the assembled record to the store. A duplicate gate-pass id
// refuses the whole submission; the caller resolves the identifier and
// retries explicitly. On success the session reaches the confirmation stage.
func (m *Manager) Submit(ctx context.Context, id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Stage != StageUndertaking {
		return Session{}, ErrWrongStage
	}

	s.Draft.ToDate = dateutil.ToDate(s.Draft.FromDate, s.Draft.Days)
	if err := m.store.Append(ctx, s.Draft); err != nil {
		return Session{}, err
	}

	s.Stage = StageConfirmed
	m.log.Info("application submitted",
		zap.String("session_id", s.ID),
		zap.String("gate_pass_id", s.Draft.ID),
		zap.String("group_id", s.Draft.GroupID))
	return *s, nil
}

// AddAnother prepares the session for the next student of the same group:
// personal and academic fields are blanked, the group's training and referral
// details stay pre-filled and locked, and a fresh id / application number
// pair is allocated.
func (m *Manager) AddAnother(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if s.Stage != StageConfirmed {
		return Session{}, ErrWrongStage
	}

	next := m.freshDraft(s.Draft.GroupID)
	restoreGroupFields(&next, s.Draft)
	next.ToDate = dateutil.ToDate(next.FromDate, next.Days)

	s.Draft = next
	s.Grouped = true
	s.Stage = StageForm
	return *s, nil
}

// NewGroup resets the session to a blank record under a fresh group token.
func (m *Manager) NewGroup(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	s.Draft = m.freshDraft(idgen.NewGroupID())
	s.Grouped = false
	s.Stage = StageForm
	return *s, nil
}

// freshDraft allocates identifiers against the current store snapshot and
// fills the form defaults. Callers hold m.mu.
func (m *Manager) freshDraft(groupID string) model.ApplicationRecord {
	return model.ApplicationRecord{
		ID:            idgen.NextGatePassID(m.store.IDs()),
		ApplicationNo: idgen.NextApplicationNo(m.store.ApplicationNos()),
		GroupID:       groupID,
		Gender:        "Male",
		TrainingType:  model.TrainingInternship,
		IOMTraining:   "IOM to respective dept",
		Status:        model.StatusPending,
		CreatedAt:     m.now().Format(time.RFC3339),
	}
}

// restoreGroupFields copies the group-shared training and referral block
// from src onto dst.
func restoreGroupFields(dst *model.ApplicationRecord, src model.ApplicationRecord) {
	dst.TrainingType = src.TrainingType
	dst.DeptIPT = src.DeptIPT
	dst.FromDate = src.FromDate
	dst.Days = src.Days
	dst.ToDate = src.ToDate
	dst.IOMTraining = src.IOMTraining
	dst.PassNo = src.PassNo
	dst.SPNOEmployee = src.SPNOEmployee
	dst.ReferralNo = src.ReferralNo
	dst.ReferralDesignation = src.ReferralDesignation
	dst.ReferralDepartment = src.ReferralDepartment
	dst.ReferralPersonContact = src.ReferralPersonContact
}
