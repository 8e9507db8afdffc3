package ui

import (
	"context"

	"github.com/sirupsen/logrus"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/database"
	"quran-tui/internal/entities"
	"quran-tui/internal/theme"
	"quran-tui/internal/zoom"
)

// ContentStore reads the seeded chapters and verses.
type ContentStore interface {
	ListChapters(ctx context.Context) ([]entities.Chapter, error)
	ListVerses(ctx context.Context, chapterID int) ([]entities.Verse, error)
}

// BookmarkStore persists per-chapter bookmark sets.
type BookmarkStore interface {
	Load(ctx context.Context, chapterID int) (bookmarks.Set, error)
	Save(ctx context.Context, chapterID int, set bookmarks.Set) error
	Remove(ctx context.Context, chapterID, index int) (bookmarks.Set, error)
	AnyAcrossChapters(ctx context.Context, ids []int) map[int]bool
	All(ctx context.Context) ([]entities.Bookmark, error)
}

var (
	_ ContentStore  = (*database.Store)(nil)
	_ BookmarkStore = (*bookmarks.Store)(nil)
)

// Deps are the collaborators shared by every screen.
type Deps struct {
	Content   ContentStore
	Bookmarks BookmarkStore
	Log       logrus.FieldLogger
	Theme     theme.Theme
	Zoom      *zoom.Controller
	// LastChapter is preselected in the chapter list, 0 for none.
	LastChapter int
}

// Route is everything the list screens hand to a detail screen.
type Route struct {
	ChapterID   int
	ChapterName string
	// Target is the verse index to scroll to; nil defers to bookmarks.
	Target *int
}
