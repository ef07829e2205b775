package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/couplefin/backend/internal/snapshot"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is the latest serialized state stored under a key.
type Snapshot struct {
	Key  string `gorm:"primaryKey"`
	Data []byte
	Timestamps
}

// QuarantinedSnapshot is a snapshot that could not be decoded.
// It is kept so that it can be inspected and restored manually.
type QuarantinedSnapshot struct {
	DefaultModel
	Key    string `gorm:"index"`
	Data   []byte
	Reason string
}

// SnapshotStore implements snapshot.Store on top of the database.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore returns a SnapshotStore using db.
func NewSnapshotStore(db *gorm.DB) SnapshotStore {
	return SnapshotStore{db: db}
}

func (s SnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var row Snapshot
	err := s.db.WithContext(ctx).Where(&Snapshot{Key: key}).First(&row).Error
	if errors.Is(err, ErrResourceNotFound) {
		return nil, fmt.Errorf("%w: %s", snapshot.ErrNotFound, key)
	}

	if err != nil {
		return nil, err
	}

	return row.Data, nil
}

func (s SnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&Snapshot{Key: key, Data: data}).Error
}

func (s SnapshotStore) Quarantine(ctx context.Context, key string, data []byte, reason string) error {
	return s.db.WithContext(ctx).Create(&QuarantinedSnapshot{
		DefaultModel: DefaultModel{ID: uuid.New()},
		Key:          key,
		Data:         data,
		Reason:       reason,
	}).Error
}

// Quarantined returns all quarantined snapshots for a key, oldest first.
func (s SnapshotStore) Quarantined(ctx context.Context, key string) ([]QuarantinedSnapshot, error) {
	var rows []QuarantinedSnapshot
	err := s.db.WithContext(ctx).Where(&QuarantinedSnapshot{Key: key}).Order("created_at").Find(&rows).Error
	return rows, err
}
