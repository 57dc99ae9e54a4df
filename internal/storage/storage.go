// Package storage implement the persistence collaborator behind the record
// store: one fixed key holding a serialization of the entire ordered record
// set. Backends only move the blob; ordering and uniqueness rules live in the
// store itself.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// DefaultKey is the store name snapshots have always been persisted under;
// kept stable so existing data remains loadable.
const DefaultKey = "ssp_applications"

// SchemaVersion tags every written snapshot. Version 0 is the legacy bare
// record array written before the envelope existed.
const SchemaVersion = 1

// Persistence loads and saves the full ordered record sequence. Load returns
// an empty slice when nothing has been persisted yet; that is not an error.
type Persistence interface {
	Load(ctx context.Context) ([]model.ApplicationRecord, error)
	Save(ctx context.Context, records []model.ApplicationRecord) error
}

type envelope struct {
	SchemaVersion int                       `json:"schema_version"`
	Records       []model.ApplicationRecord `json:"records"`
}

// Encode wraps the record set in the versioned envelope.
func Encode(records []model.ApplicationRecord) ([]byte, error) {
	return json.Marshal(envelope{SchemaVersion: SchemaVersion, Records: records})
}

// Decode reads a snapshot payload, accepting both the versioned envelope and
// the legacy bare-array form.
func Decode(payload []byte) ([]model.ApplicationRecord, error) {
	if len(payload) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Records != nil {
		if env.SchemaVersion > SchemaVersion {
			return nil, fmt.Errorf("snapshot schema version %d is newer than supported %d", env.SchemaVersion, SchemaVersion)
		}
		return env.Records, nil
	}

	var legacy []model.ApplicationRecord
	if err := json.Unmarshal(payload, &legacy); err != nil {
		return nil, fmt.Errorf("undecodable snapshot payload: %w", err)
	}
	return legacy, nil
}
