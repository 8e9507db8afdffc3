package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/entities"
	"quran-tui/internal/theme"
)

func TestList_LoadsChaptersAndBadges(t *testing.T) {
	marks := newFakeBookmarks()
	marks.sets[2] = bookmarks.NewSet(0)
	m := startModel(t, testDeps(newFakeContent(3, 2), marks), 80, 30)

	assert.False(t, m.list.loading)
	assert.Len(t, m.list.filtered, 3)
	assert.Equal(t, map[int]bool{2: true}, m.list.badges)
	assert.Contains(t, m.View(), "Surah-3")
}

func TestList_LoadFailure(t *testing.T) {
	content := newFakeContent(2, 2)
	content.err = errStorage
	m := startModel(t, testDeps(content, newFakeBookmarks()), 80, 30)

	require.Error(t, m.list.err)
	assert.Contains(t, m.View(), "Could not load chapters")
}

func TestList_EmptyStore(t *testing.T) {
	m := startModel(t, testDeps(&fakeContent{}, newFakeBookmarks()), 80, 30)
	assert.Contains(t, m.View(), "No chapters have been seeded.")
}

func TestList_Search(t *testing.T) {
	l := newList(testDeps(&fakeContent{}, newFakeBookmarks()), theme.Midnight.Styles())
	l, _ = l.update(chaptersLoadedMsg{chapters: []entities.Chapter{
		{ID: 1, Name: "الفاتحة", Transliteration: "Al-Fatihah"},
		{ID: 112, Name: "الإخلاص", Transliteration: "Al-Ikhlas"},
		{ID: 114, Name: "الناس", Transliteration: "An-Nas"},
	}})
	l.cursor = 2

	l.search.SetValue("ikh")
	l.applyFilter()
	require.Len(t, l.filtered, 1)
	assert.Equal(t, 112, l.filtered[0].ID)
	assert.Equal(t, 0, l.cursor)

	// alef with hamza folds to bare alef
	l.search.SetValue("الاخلاص")
	l.applyFilter()
	require.Len(t, l.filtered, 1)
	assert.Equal(t, 112, l.filtered[0].ID)

	l.search.SetValue("zzz")
	l.applyFilter()
	assert.Empty(t, l.filtered)
	assert.Contains(t, l.view(), "No chapter matches your search.")

	l.searching = true
	l, _ = l.update(keyType(tea.KeyEsc))
	assert.False(t, l.searching)
	assert.Len(t, l.filtered, 3)
}

func TestList_Navigation(t *testing.T) {
	m := startModel(t, testDeps(newFakeContent(20, 1), newFakeBookmarks()), 80, 10)

	for range 10 {
		m = send(t, m, keyType(tea.KeyDown))
	}
	assert.Equal(t, 10, m.list.cursor)
	assert.LessOrEqual(t, m.list.offset, m.list.cursor)
	assert.Greater(t, m.list.offset+m.list.visibleRows(), m.list.cursor)

	m = send(t, m, keyType(tea.KeyEnter))
	require.NotNil(t, m.detail)
	assert.Equal(t, 11, m.detail.route.ChapterID)
	assert.Nil(t, m.detail.route.Target)
	assert.Equal(t, 11, m.LastChapter())
}

func TestList_Quit(t *testing.T) {
	m := startModel(t, testDeps(newFakeContent(1, 1), newFakeBookmarks()), 80, 30)

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(keyType(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestList_PreselectsLastChapter(t *testing.T) {
	deps := testDeps(newFakeContent(5, 1), newFakeBookmarks())
	deps.LastChapter = 4
	m := startModel(t, deps, 80, 30)

	assert.Equal(t, 3, m.list.cursor)
	assert.Equal(t, 4, m.LastChapter())
}
