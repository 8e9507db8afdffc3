package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/entities"
	"quran-tui/internal/logging"
	"quran-tui/internal/theme"
	"quran-tui/internal/zoom"
)

var errStorage = errors.New("storage unavailable")

type fakeContent struct {
	chapters []entities.Chapter
	verses   map[int][]entities.Verse
	err      error
}

func (f *fakeContent) ListChapters(ctx context.Context) ([]entities.Chapter, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chapters, nil
}

func (f *fakeContent) ListVerses(ctx context.Context, chapterID int) ([]entities.Verse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.verses[chapterID], nil
}

// newFakeContent builds chapters 1..n with the given number of verses each.
func newFakeContent(chapters, verses int) *fakeContent {
	f := &fakeContent{verses: map[int][]entities.Verse{}}
	for c := 1; c <= chapters; c++ {
		f.chapters = append(f.chapters, entities.Chapter{
			ID:              c,
			Name:            fmt.Sprintf("Chapter %d", c),
			Transliteration: fmt.Sprintf("Surah-%d", c),
			TotalVerses:     verses,
		})
		for v := 1; v <= verses; v++ {
			f.verses[c] = append(f.verses[c], entities.Verse{
				ID:        entities.VerseID(c, v),
				ChapterID: c,
				Text:      fmt.Sprintf("verse %d of %d", v, c),
			})
		}
	}
	return f
}

type fakeBookmarks struct {
	sets    map[int]bookmarks.Set
	saves   int
	loadErr error
	saveErr error
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{sets: map[int]bookmarks.Set{}}
}

func (f *fakeBookmarks) Load(ctx context.Context, chapterID int) (bookmarks.Set, error) {
	if f.loadErr != nil {
		return bookmarks.Set{}, f.loadErr
	}
	if s, ok := f.sets[chapterID]; ok {
		return s.Clone(), nil
	}
	return bookmarks.Set{}, nil
}

func (f *fakeBookmarks) Save(ctx context.Context, chapterID int, set bookmarks.Set) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sets[chapterID] = set.Clone()
	return nil
}

func (f *fakeBookmarks) Remove(ctx context.Context, chapterID, index int) (bookmarks.Set, error) {
	s := f.sets[chapterID]
	if s == nil {
		return bookmarks.Set{}, nil
	}
	s.Remove(index)
	return s.Clone(), nil
}

func (f *fakeBookmarks) AnyAcrossChapters(ctx context.Context, ids []int) map[int]bool {
	out := map[int]bool{}
	for _, id := range ids {
		if len(f.sets[id]) > 0 {
			out[id] = true
		}
	}
	return out
}

func (f *fakeBookmarks) All(ctx context.Context) ([]entities.Bookmark, error) {
	var all []entities.Bookmark
	for id := 1; id <= 114; id++ {
		for _, i := range f.sets[id].Indexes() {
			all = append(all, entities.Bookmark{ChapterID: id, VerseIndex: i})
		}
	}
	return all, nil
}

func testDeps(content ContentStore, marks BookmarkStore) Deps {
	return Deps{
		Content:   content,
		Bookmarks: marks,
		Log:       logging.Discard(),
		Theme:     theme.Midnight,
		Zoom:      zoom.New(),
	}
}

// drain runs cmd and feeds every resulting message back into m until no
// commands remain.
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		require.Less(t, steps, 200, "command loop did not settle")
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
		default:
			updated, c := m.Update(msg)
			m = updated.(Model)
			queue = append(queue, c)
		}
	}
	return m
}

// send delivers msg and settles every command it produces.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, cmd := m.Update(msg)
	return drain(t, updated.(Model), cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// startModel builds a sized model with its chapter list loaded.
func startModel(t *testing.T, deps Deps, width, height int) Model {
	t.Helper()
	m := New(deps)
	m = drain(t, m, m.Init())
	return send(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

func intPtr(i int) *int { return &i }
