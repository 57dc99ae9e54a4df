package storage

import (
	"context"
	"sync"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// Memory keeps the snapshot in process. Default backend for tests and local
// runs without Redis or Postgres configured.
type Memory struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemory returns an empty in-process backend.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Persistence.
func (m *Memory) Load(_ context.Context) ([]model.ApplicationRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Decode(m.payload)
}

// Save implements Persistence.
func (m *Memory) Save(_ context.Context, records []model.ApplicationRecord) error {
	payload, err := Encode(records)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.payload = payload
	m.mu.Unlock()
	return nil
}
