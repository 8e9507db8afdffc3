// Package kvstore is a durable string-keyed, string-valued store over the
// kv_entries table.
//
// # Usage
//
//	kv := kvstore.New(db)
//	err := kv.Set(ctx, "bookmarks_2", `[{"surahId":2,"ayahIndex":5}]`)
//	value, ok, err := kv.Get(ctx, "bookmarks_2")
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quran-tui/internal/entities"
)

// UpdateFunc receives the current value (ok is false when the key is absent)
// and returns the value to store. Returning remove=true deletes the key.
type UpdateFunc func(current string, ok bool) (next string, remove bool, err error)

// Store is a string-keyed table of string values.
type Store struct {
	db *gorm.DB
}

// New returns a Store over the kv_entries table of db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	return get(s.db.WithContext(ctx), key)
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return set(s.db.WithContext(ctx), key, value)
}

// Delete removes key. Deleting a missing key succeeds.
func (s *Store) Delete(ctx context.Context, key string) error {
	return del(s.db.WithContext(ctx), key)
}

// Update applies fn to the value under key inside one transaction, so a
// failed write leaves the previous value in place.
func (s *Store) Update(ctx context.Context, key string, fn UpdateFunc) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, ok, err := get(tx, key)
		if err != nil {
			return err
		}
		next, remove, err := fn(current, ok)
		if err != nil {
			return err
		}
		if remove {
			return del(tx, key)
		}
		return set(tx, key, next)
	})
}

// Keys lists every key starting with prefix, sorted.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&entities.KeyValue{}).
		Where("`key` LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("`key` ASC").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list keys with prefix %q: %w", prefix, err)
	}
	return keys, nil
}

func get(db *gorm.DB, key string) (string, bool, error) {
	var kv entities.KeyValue
	err := db.Where("`key` = ?", key).First(&kv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return kv.Value, true, nil
}

func set(db *gorm.DB, key, value string) error {
	kv := entities.KeyValue{Key: key, Value: value, UpdatedAt: time.Now()}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func del(db *gorm.DB, key string) error {
	if err := db.Where("`key` = ?", key).Delete(&entities.KeyValue{}).Error; err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
