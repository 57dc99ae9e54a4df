package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
)

// Snapshot is the single-row table a Postgres-backed portal keeps its record
// set in. One row per store key, whole payload replaced on every save.
type Snapshot struct {
	Key           string    `gorm:"primaryKey;type:text"`
	SchemaVersion int       `gorm:"not null"`
	Payload       []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

// PostgresStore satisfies the whole-blob persistence contract on top of GORM.
type PostgresStore struct {
	db  *gorm.DB
	key string
}

// OpenPostgres dials the database and returns a migrated snapshot backend.
func OpenPostgres(dsn, key string) (*PostgresStore, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	store := NewPostgresWithDB(gdb, key)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}

// NewPostgresWithDB wraps an existing GORM handle without migrating, mainly
// for tests.
func NewPostgresWithDB(db *gorm.DB, key string) *PostgresStore {
	if key == "" {
		key = DefaultKey
	}
	return &PostgresStore{db: db, key: key}
}

// Migrate creates the snapshot table when missing.
func (s *PostgresStore) Migrate() error {
	return s.db.AutoMigrate(&Snapshot{})
}

// Load implements Persistence. No row yet means no records yet.
func (s *PostgresStore) Load(ctx context.Context) ([]model.ApplicationRecord, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).Where("key = ?", s.key).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot %q: %w", s.key, err)
	}
	return Decode(snap.Payload)
}

// Save implements Persistence via a single-row upsert.
func (s *PostgresStore) Save(ctx context.Context, records []model.ApplicationRecord) error {
	payload, err := Encode(records)
	if err != nil {
		return err
	}
	snap := Snapshot{Key: s.key, SchemaVersion: SchemaVersion, Payload: payload, UpdatedAt: time.Now()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"schema_version", "payload", "updated_at"}),
		}).
		Create(&snap).Error
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", s.key, err)
	}
	return nil
}
