package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/storage"
)

func newTestStore(t *testing.T) *RecordStore {
	s, err := New(context.Background(), storage.NewMemory(), nil)
	require.NoError(t, err)
	return s
}

func TestAppendAndAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	rec := model.ApplicationRecord{ID: "SP000001", ApplicationNo: "A1B2C3", StudentName: "Priya"}
	require.NoError(t, s.Append(ctx, rec))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "SP000001", all[0].ID)
	assert.Equal(t, "A1B2C3", all[0].ApplicationNo)
}

func TestAppend_DuplicateIDCaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000012", StudentName: "Priya"}))

	err := s.Append(ctx, model.ApplicationRecord{ID: "sp000012", StudentName: "Arun"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	all := s.All()
	require.Len(t, all, 1, "rejected insert leaves the store unchanged")
	assert.Equal(t, "Priya", all[0].StudentName)
}

func TestAppend_CanonicalizesID(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Append(context.Background(), model.ApplicationRecord{ID: " sp000004 "}))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "SP000004", all[0].ID)
}

func TestAppend_PreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"SP000003", "SP000001", "SP000002"} {
		require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: id}))
	}

	all := s.All()
	assert.Equal(t, "SP000003", all[0].ID)
	assert.Equal(t, "SP000001", all[1].ID)
	assert.Equal(t, "SP000002", all[2].ID)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{
		ID: "SP000001", Status: model.StatusPending, CreatedAt: "2024-05-01T10:00:00Z",
	}))

	updated := model.ApplicationRecord{ID: "SP000001", Status: model.StatusApproved, CreatedAt: "2030-01-01T00:00:00Z"}
	require.NoError(t, s.Update(ctx, updated))

	got, ok := s.Get("sp000001")
	require.True(t, ok)
	assert.Equal(t, model.StatusApproved, got.Status)
	assert.Equal(t, "2024-05-01T10:00:00Z", got.CreatedAt, "createdAt is immutable")
}

func TestUpdate_NotFoundLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000001"}))

	err := s.Update(ctx, model.ApplicationRecord{ID: "SP000099", Status: model.StatusApproved})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, s.All(), 1)
}

func TestRemove_Idempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000001"}))

	assert.NoError(t, s.Remove(ctx, "SP000001"))
	assert.Empty(t, s.All())

	// removing twice is safe
	assert.ErrorIs(t, s.Remove(ctx, "SP000001"), ErrNotFound)
	assert.Empty(t, s.All())
}

func TestPersistenceRoundTrip(t *testing.T) {
	mem := storage.NewMemory()
	ctx := context.Background()

	s, err := New(ctx, mem, nil)
	require.NoError(t, err)
	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000001", ApplicationNo: "A1B2C3"}))
	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000002", ApplicationNo: "D4E5F6"}))
	require.NoError(t, s.Remove(ctx, "SP000001"))

	// a second store over the same backend sees the mutations
	reloaded, err := New(ctx, mem, nil)
	require.NoError(t, err)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, "SP000002", all[0].ID)
}

func TestAllReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{
		ID: "SP000001", Documents: map[string]string{"doc_safety": "blob"},
	}))

	all := s.All()
	all[0].StudentName = "tampered"
	all[0].Documents["doc_safety"] = "tampered"

	got, _ := s.Get("SP000001")
	assert.Empty(t, got.StudentName)
	assert.Equal(t, "blob", got.Documents["doc_safety"])
}

func TestIDsAndApplicationNos(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000001", ApplicationNo: "A1B2C3"}))
	require.NoError(t, s.Append(ctx, model.ApplicationRecord{ID: "SP000002", ApplicationNo: "D4E5F6"}))

	assert.Equal(t, []string{"SP000001", "SP000002"}, s.IDs())
	assert.Equal(t, []string{"A1B2C3", "D4E5F6"}, s.ApplicationNos())
}
