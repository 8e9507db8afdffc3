package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/entities"
)

func TestMarks_ListOpenAndRemove(t *testing.T) {
	marks := newFakeBookmarks()
	marks.sets[2] = bookmarks.NewSet(0, 3)
	m := startModel(t, testDeps(newFakeContent(3, 5), marks), 80, 30)

	m = send(t, m, keyRunes("b"))
	require.Equal(t, screenBookmarks, m.screen)
	assert.Equal(t, []entities.Bookmark{
		{ChapterID: 2, VerseIndex: 0},
		{ChapterID: 2, VerseIndex: 3},
	}, m.marks.bookmarks)
	assert.Contains(t, m.View(), "Chapter 2")

	m = send(t, m, keyType(tea.KeyDown))
	m = send(t, m, keyType(tea.KeyEnter))
	require.NotNil(t, m.detail)
	assert.Equal(t, 2, m.detail.route.ChapterID)
	assert.Equal(t, 3, m.detail.scrolledTo)

	m = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenBookmarks, m.screen)

	m = send(t, m, keyRunes("x"))
	assert.Equal(t, []entities.Bookmark{{ChapterID: 2, VerseIndex: 0}}, m.marks.bookmarks)
	assert.Equal(t, 0, m.marks.cursor)

	m = send(t, m, keyRunes("x"))
	assert.Empty(t, m.marks.bookmarks)
	assert.Contains(t, m.View(), "No bookmarks yet.")

	m = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenList, m.screen)
	assert.Empty(t, m.list.badges)
}
