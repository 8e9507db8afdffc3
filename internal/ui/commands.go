package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"quran-tui/internal/bookmarks"
)

func loadChaptersCmd(content ContentStore) tea.Cmd {
	return func() tea.Msg {
		chapters, err := content.ListChapters(context.Background())
		return chaptersLoadedMsg{chapters: chapters, err: err}
	}
}

func loadBadgesCmd(store BookmarkStore, ids []int) tea.Cmd {
	return func() tea.Msg {
		return badgesLoadedMsg{badges: store.AnyAcrossChapters(context.Background(), ids)}
	}
}

func loadVersesCmd(ctx context.Context, content ContentStore, session, chapterID int) tea.Cmd {
	return func() tea.Msg {
		verses, err := content.ListVerses(ctx, chapterID)
		return versesLoadedMsg{session: session, verses: verses, err: err}
	}
}

func loadBookmarksCmd(ctx context.Context, store BookmarkStore, session, chapterID int) tea.Cmd {
	return func() tea.Msg {
		set, err := store.Load(ctx, chapterID)
		return bookmarksLoadedMsg{session: session, set: set, err: err}
	}
}

// saveBookmarksCmd is not bound to the session context: a toggle made just
// before leaving the screen must still reach storage.
func saveBookmarksCmd(store BookmarkStore, session, chapterID int, set bookmarks.Set) tea.Cmd {
	return func() tea.Msg {
		err := store.Save(context.Background(), chapterID, set)
		return bookmarksSavedMsg{session: session, err: err}
	}
}

func loadAllBookmarksCmd(store BookmarkStore) tea.Cmd {
	return func() tea.Msg {
		all, err := store.All(context.Background())
		return allBookmarksLoadedMsg{bookmarks: all, err: err}
	}
}

func removeBookmarkCmd(store BookmarkStore, chapterID, index int) tea.Cmd {
	return func() tea.Msg {
		_, err := store.Remove(context.Background(), chapterID, index)
		return bookmarkRemovedMsg{err: err}
	}
}

func navigate(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
