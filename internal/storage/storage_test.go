package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []model.ApplicationRecord{
		{ID: "SP000001", ApplicationNo: "A1B2C3", StudentName: "Priya", Documents: map[string]string{"doc_rate_chart": "data:image/png;base64,xyz"}},
		{ID: "SP000002", ApplicationNo: "Z9Y8X7", StudentName: "Arun"},
	}

	payload, err := Encode(records)
	require.NoError(t, err)

	got, err := Decode(payload)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestDecode_Empty(t *testing.T) {
	got, err := Decode(nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_LegacyBareArray(t *testing.T) {
	// snapshots written before the envelope existed are a bare array
	payload := []byte(`[{"id":"SP000005","application_no":"Q1W2E3","student_name":"Kavya"}]`)
	got, err := Decode(payload)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "SP000005", got[0].ID)
}

func TestDecode_NewerSchemaRejected(t *testing.T) {
	payload := []byte(`{"schema_version":99,"records":[]}`)
	_, err := Decode(payload)
	assert.Error(t, err)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("not json at all"))
	assert.Error(t, err)
}

func TestMemoryRoundTrip(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	got, err := mem.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "fresh backend starts empty")

	records := []model.ApplicationRecord{{ID: "SP000001", ApplicationNo: "A1B2C3"}}
	require.NoError(t, mem.Save(ctx, records))

	got, err = mem.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}
