// Package bookmarks persists the per-chapter bookmark sets.
//
// Each chapter owns one key, bookmarks_<chapterID>, whose value is a JSON
// array of {"surahId", "ayahIndex"} objects. Missing or corrupt values read
// as an empty set.
package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"quran-tui/internal/entities"
	"quran-tui/internal/kvstore"
)

// KeyPrefix namespaces bookmark entries in the key-value store.
const KeyPrefix = "bookmarks_"

// KV is the slice of the key-value store bookmarks need.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Update(ctx context.Context, key string, fn kvstore.UpdateFunc) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

var _ KV = (*kvstore.Store)(nil)

// Store reads and writes bookmark sets through a key-value store.
type Store struct {
	kv  KV
	log logrus.FieldLogger
}

// NewStore returns a Store over kv.
func NewStore(kv KV, log logrus.FieldLogger) *Store {
	return &Store{kv: kv, log: log}
}

// Key returns the storage key of a chapter's bookmarks.
func Key(chapterID int) string {
	return KeyPrefix + strconv.Itoa(chapterID)
}

// Load returns the chapter's bookmarks. Absent or corrupt data yields an
// empty set and no error; a storage failure yields an empty set and the error.
func (s *Store) Load(ctx context.Context, chapterID int) (Set, error) {
	raw, ok, err := s.kv.Get(ctx, Key(chapterID))
	if err != nil {
		return Set{}, fmt.Errorf("failed to load bookmarks for chapter %d: %w", chapterID, err)
	}
	if !ok {
		return Set{}, nil
	}
	return s.decode(chapterID, raw), nil
}

// Save replaces the chapter's persisted bookmarks with set.
func (s *Store) Save(ctx context.Context, chapterID int, set Set) error {
	key := Key(chapterID)
	if len(set) == 0 {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to save bookmarks for chapter %d: %w", chapterID, err)
		}
		return nil
	}

	data, err := encode(chapterID, set)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save bookmarks for chapter %d: %w", chapterID, err)
	}
	return nil
}

// Toggle adds the bookmark at index or removes it if present, as a single
// read-modify-write. It returns the set now persisted.
func (s *Store) Toggle(ctx context.Context, chapterID, index int) (Set, error) {
	set, err := s.update(ctx, chapterID, func(set Set) { set.Toggle(index) })
	if err != nil {
		return nil, fmt.Errorf("failed to toggle bookmark %d of chapter %d: %w", index, chapterID, err)
	}
	return set, nil
}

// Remove deletes the bookmark at index if present.
func (s *Store) Remove(ctx context.Context, chapterID, index int) (Set, error) {
	set, err := s.update(ctx, chapterID, func(set Set) { set.Remove(index) })
	if err != nil {
		return nil, fmt.Errorf("failed to remove bookmark %d of chapter %d: %w", index, chapterID, err)
	}
	return set, nil
}

func (s *Store) update(ctx context.Context, chapterID int, mutate func(Set)) (Set, error) {
	var result Set
	err := s.kv.Update(ctx, Key(chapterID), func(current string, ok bool) (string, bool, error) {
		set := Set{}
		if ok {
			set = s.decode(chapterID, current)
		}
		mutate(set)
		result = set
		if len(set) == 0 {
			return "", true, nil
		}
		data, err := encode(chapterID, set)
		return data, false, err
	})
	return result, err
}

// AnyAcrossChapters returns the chapters among ids that hold at least one
// bookmark. Unreadable or corrupt entries are skipped.
func (s *Store) AnyAcrossChapters(ctx context.Context, ids []int) map[int]bool {
	out := make(map[int]bool)
	for _, id := range ids {
		set, err := s.Load(ctx, id)
		if err != nil {
			s.log.WithError(err).WithField("chapter_id", id).Warn("skipping chapter bookmarks")
			continue
		}
		if len(set) > 0 {
			out[id] = true
		}
	}
	return out
}

// All returns every bookmark, ordered by chapter then verse index.
func (s *Store) All(ctx context.Context) ([]entities.Bookmark, error) {
	keys, err := s.kv.Keys(ctx, KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	var out []entities.Bookmark
	for _, key := range keys {
		chapterID, err := strconv.Atoi(strings.TrimPrefix(key, KeyPrefix))
		if err != nil {
			s.log.WithField("key", key).Warn("ignoring malformed bookmark key")
			continue
		}
		set, err := s.Load(ctx, chapterID)
		if err != nil {
			s.log.WithError(err).WithField("chapter_id", chapterID).Warn("skipping chapter bookmarks")
			continue
		}
		for _, i := range set.Indexes() {
			out = append(out, entities.Bookmark{ChapterID: chapterID, VerseIndex: i})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ChapterID != out[j].ChapterID {
			return out[i].ChapterID < out[j].ChapterID
		}
		return out[i].VerseIndex < out[j].VerseIndex
	})
	return out, nil
}

func (s *Store) decode(chapterID int, raw string) Set {
	var entries []entities.Bookmark
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.log.WithError(err).WithField("chapter_id", chapterID).Warn("treating corrupt bookmarks as empty")
		return Set{}
	}
	set := make(Set, len(entries))
	for _, e := range entries {
		set.Add(e.VerseIndex)
	}
	return set
}

func encode(chapterID int, set Set) (string, error) {
	indexes := set.Indexes()
	entries := make([]entities.Bookmark, 0, len(indexes))
	for _, i := range indexes {
		entries = append(entries, entities.Bookmark{ChapterID: chapterID, VerseIndex: i})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("failed to encode bookmarks for chapter %d: %w", chapterID, err)
	}
	return string(data), nil
}
