package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"quran-tui/internal/entities"
	"quran-tui/internal/theme"
	"quran-tui/internal/verse"
)

// marksModel lists every bookmark across chapters.
type marksModel struct {
	deps   Deps
	styles theme.Styles

	bookmarks []entities.Bookmark
	loading   bool
	err       error
	cursor    int
}

func newMarks(deps Deps, styles theme.Styles) marksModel {
	return marksModel{deps: deps, styles: styles}
}

func (m marksModel) reload() (marksModel, tea.Cmd) {
	m.loading = true
	return m, loadAllBookmarksCmd(m.deps.Bookmarks)
}

func (m marksModel) update(msg tea.Msg, names func(int) string) (marksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case allBookmarksLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.deps.Log.WithError(msg.err).Warn("failed to list bookmarks")
			m.bookmarks = nil
		} else {
			m.bookmarks = msg.bookmarks
		}
		if m.cursor >= len(m.bookmarks) {
			m.cursor = max(len(m.bookmarks)-1, 0)
		}

	case bookmarkRemovedMsg:
		if msg.err != nil {
			m.deps.Log.WithError(msg.err).Error("failed to remove bookmark")
			m.err = msg.err
			return m, nil
		}
		return m.reload()

	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit:
			return m, tea.Quit
		case KeyEsc, KeyBackspace:
			return m, navigate(backMsg{})
		case KeyUp, KeyK:
			if m.cursor > 0 {
				m.cursor--
			}
		case KeyDown, KeyJ:
			if m.cursor < len(m.bookmarks)-1 {
				m.cursor++
			}
		case KeyEnter:
			if m.cursor < len(m.bookmarks) {
				b := m.bookmarks[m.cursor]
				index := b.VerseIndex
				return m, navigate(openChapterMsg{route: Route{
					ChapterID:   b.ChapterID,
					ChapterName: names(b.ChapterID),
					Target:      &index,
				}})
			}
		case KeyRemove:
			if m.cursor < len(m.bookmarks) {
				b := m.bookmarks[m.cursor]
				return m, removeBookmarkCmd(m.deps.Bookmarks, b.ChapterID, b.VerseIndex)
			}
		}
	}
	return m, nil
}

func (m marksModel) view(names func(int) string) string {
	header := m.styles.Header.Render(m.styles.Title.Render("Bookmarks"))

	var sb strings.Builder
	switch {
	case m.loading:
		sb.WriteString(m.styles.Help.Render("Loading..."))
	case m.err != nil:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf("Could not read bookmarks: %v", m.err)))
	case len(m.bookmarks) == 0:
		sb.WriteString(m.styles.Help.Render("No bookmarks yet."))
	default:
		for i, b := range m.bookmarks {
			row := fmt.Sprintf("%s  %s",
				m.styles.Text.Render(names(b.ChapterID)),
				m.styles.Marker.Render("Ayah "+verse.NumberGlyph(b.VerseIndex+1)),
			)
			if i == m.cursor {
				sb.WriteString(m.styles.Selected.Render("› " + row))
			} else {
				sb.WriteString("  " + row)
			}
			sb.WriteString("\n")
		}
	}

	help := m.styles.Help.Render("enter: open | x: remove | esc: back | q: quit")
	return fmt.Sprintf("%s\n%s\n%s", header, strings.TrimRight(sb.String(), "\n"), help)
}
