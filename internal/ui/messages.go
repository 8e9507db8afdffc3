package ui

import (
	"quran-tui/internal/bookmarks"
	"quran-tui/internal/entities"
)

// chaptersLoadedMsg carries the chapter list or the error that prevented it.
type chaptersLoadedMsg struct {
	chapters []entities.Chapter
	err      error
}

// badgesLoadedMsg carries the chapters that hold at least one bookmark.
type badgesLoadedMsg struct {
	badges map[int]bool
}

// versesLoadedMsg is the verse half of a detail session's loads.
type versesLoadedMsg struct {
	session int
	verses  []entities.Verse
	err     error
}

// bookmarksLoadedMsg is the bookmark half of a detail session's loads.
type bookmarksLoadedMsg struct {
	session int
	set     bookmarks.Set
	err     error
}

// bookmarksSavedMsg reports the outcome of persisting a session's bookmarks.
type bookmarksSavedMsg struct {
	session int
	err     error
}

type allBookmarksLoadedMsg struct {
	bookmarks []entities.Bookmark
	err       error
}

type bookmarkRemovedMsg struct {
	err error
}

// openChapterMsg starts a detail session.
type openChapterMsg struct {
	route Route
}

type showBookmarksMsg struct{}

// backMsg leaves the current screen.
type backMsg struct{}
