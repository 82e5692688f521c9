// Package kv implements the persistent local key-value store that backs all
// application state. The store holds a small number of named records whose
// values are JSON blobs; every caller does a full read-modify-write of the
// record it owns, so there is no versioning and the last writer wins.
package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skillconnect/internal/middleware"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store record keys.
const (
	UsersKey   = "sc_users"
	PostsKey   = "sc_posts"
	CurrentKey = "sc_current"
)

// Record is a single named record in the store.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"type:text"`
}

// Store is a persistent key-value store over a single sqlite file.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the store at the given sqlite path.
// Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	// A single writer at a time keeps sqlite happy with the full
	// read-modify-write access pattern.
	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	middleware.Logger.Info("Store opened", "path", path)
	return &Store{db: db}, nil
}

// Get returns the value for key. The second result is false when the record
// is absent; absence is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var rec Record
	err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

// Set writes the value for key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: value}).Error
	if err == nil {
		middleware.StoreWrites.WithLabelValues(key).Inc()
	}
	return err
}

// Delete removes the record for key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "key = ?", key).Error
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
