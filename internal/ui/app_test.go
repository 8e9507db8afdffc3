package ui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/database"
	"quran-tui/internal/dataset"
	"quran-tui/internal/kvstore"
	"quran-tui/internal/logging"
	"quran-tui/internal/theme"
	"quran-tui/internal/zoom"
)

func setupStores(t *testing.T) (*database.Store, *kvstore.Store, *bookmarks.Store) {
	t.Helper()
	log := logging.Discard()
	store, err := database.Open(filepath.Join(t.TempDir(), "quran.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	kv := kvstore.New(store.DB)
	return store, kv, bookmarks.NewStore(kv, log)
}

func TestApp_BookmarkRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, kv, marks := setupStores(t)

	require.NoError(t, store.Seed(ctx, []dataset.Chapter{
		{ID: 1, Name: "First", Transliteration: "first", TotalVerses: 3, Verses: []dataset.Verse{
			{ID: 1, Text: "one"}, {ID: 2, Text: "two"}, {ID: 3, Text: "three"},
		}},
		{ID: 2, Name: "Second", Transliteration: "second", TotalVerses: 3, Verses: []dataset.Verse{
			{ID: 1, Text: "uno"}, {ID: 2, Text: "dos"}, {ID: 3, Text: "tres"},
		}},
	}))

	deps := Deps{
		Content:   store,
		Bookmarks: marks,
		Log:       logging.Discard(),
		Theme:     theme.Midnight,
		Zoom:      zoom.New(),
	}
	m := startModel(t, deps, 80, 30)
	require.Len(t, m.list.filtered, 2)

	// first visit: nothing bookmarked, nothing to scroll to
	m = send(t, m, keyType(tea.KeyEnter))
	require.NotNil(t, m.detail)
	require.Equal(t, stateReady, m.detail.state)
	assert.Equal(t, 1, m.detail.route.ChapterID)
	assert.Equal(t, -1, m.detail.scrolledTo)
	require.NotNil(t, m.detail.rendered[0].LeadingPhrase)

	m = send(t, m, keyType(tea.KeyDown))
	m = send(t, m, keyType(tea.KeySpace))

	set, err := marks.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, bookmarks.NewSet(1), set)
	raw, ok, err := kv.Get(ctx, "bookmarks_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"surahId":1,"ayahIndex":1}]`, raw)

	m = send(t, m, keyType(tea.KeyEsc))
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, map[int]bool{1: true}, m.list.badges)

	// second visit lands on the bookmark
	m = send(t, m, keyType(tea.KeyEnter))
	require.Equal(t, stateReady, m.detail.state)
	assert.Equal(t, 1, m.detail.scrolledTo)
	assert.Equal(t, 1, m.detail.cursor)
	assert.True(t, m.detail.marks.Has(1))

	// untoggling removes the key
	m = send(t, m, keyType(tea.KeySpace))
	_, ok, err = kv.Get(ctx, "bookmarks_1")
	require.NoError(t, err)
	assert.False(t, ok)

	m = send(t, m, keyType(tea.KeyEsc))
	assert.Empty(t, m.list.badges)
}
