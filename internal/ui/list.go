package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quran-tui/internal/entities"
	"quran-tui/internal/theme"
	"quran-tui/internal/verse"
)

// listModel is the chapter list with search and bookmark badges.
type listModel struct {
	deps   Deps
	styles theme.Styles

	chapters []entities.Chapter
	filtered []entities.Chapter
	badges   map[int]bool
	loading  bool
	err      error

	search    textinput.Model
	searching bool

	cursor int
	offset int
	width  int
	height int
}

func newList(deps Deps, styles theme.Styles) listModel {
	ti := textinput.New()
	ti.Placeholder = "Search chapter..."
	ti.CharLimit = 40
	ti.Width = 40

	return listModel{
		deps:    deps,
		styles:  styles,
		search:  ti,
		badges:  map[int]bool{},
		loading: true,
	}
}

func (l listModel) init() tea.Cmd {
	return loadChaptersCmd(l.deps.Content)
}

// refreshBadges reloads which chapters hold bookmarks.
func (l listModel) refreshBadges() tea.Cmd {
	if len(l.chapters) == 0 {
		return nil
	}
	ids := make([]int, len(l.chapters))
	for i, c := range l.chapters {
		ids[i] = c.ID
	}
	return loadBadgesCmd(l.deps.Bookmarks, ids)
}

func (l listModel) update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case chaptersLoadedMsg:
		l.loading = false
		if msg.err != nil {
			l.deps.Log.WithError(msg.err).Error("failed to load chapters")
			l.err = msg.err
			return l, nil
		}
		first := l.chapters == nil
		l.err = nil
		l.chapters = msg.chapters
		if first {
			l.preselect(l.deps.LastChapter)
		}
		l.applyFilter()
		return l, l.refreshBadges()

	case badgesLoadedMsg:
		l.badges = msg.badges

	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		l.clampOffset()

	case tea.KeyMsg:
		if l.searching {
			return l.updateSearch(msg)
		}
		return l.handleKey(msg)
	}
	return l, nil
}

func (l listModel) updateSearch(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		l.searching = false
		l.search.SetValue("")
		l.search.Blur()
		l.applyFilter()
		return l, nil
	case KeyEnter:
		l.searching = false
		l.search.Blur()
		return l, nil
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.applyFilter()
	return l, cmd
}

func (l listModel) handleKey(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch msg.String() {
	case KeyQuit:
		return l, tea.Quit
	case KeySearch:
		l.searching = true
		return l, l.search.Focus()
	case KeyBookmarks:
		return l, navigate(showBookmarksMsg{})
	case KeyUp, KeyK:
		if l.cursor > 0 {
			l.cursor--
		}
	case KeyDown, KeyJ:
		if l.cursor < len(l.filtered)-1 {
			l.cursor++
		}
	case KeyEnter:
		if l.cursor < len(l.filtered) {
			c := l.filtered[l.cursor]
			return l, navigate(openChapterMsg{route: Route{ChapterID: c.ID, ChapterName: c.Name}})
		}
	}
	l.clampOffset()
	return l, nil
}

func (l *listModel) preselect(chapterID int) {
	for i, c := range l.chapters {
		if c.ID == chapterID {
			l.cursor = i
			return
		}
	}
}

// applyFilter matches the query against the Arabic name and transliteration.
func (l *listModel) applyFilter() {
	query := l.search.Value()
	filtered := make([]entities.Chapter, 0, len(l.chapters))
	for _, c := range l.chapters {
		if verse.Matches(c.Name, query) || verse.Matches(c.Transliteration, query) {
			filtered = append(filtered, c)
		}
	}
	l.filtered = filtered
	if l.cursor >= len(l.filtered) {
		l.cursor = max(len(l.filtered)-1, 0)
	}
	l.clampOffset()
}

func (l *listModel) visibleRows() int {
	return max(l.height-chromeHeight-1, 1)
}

func (l *listModel) clampOffset() {
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// chapterName returns the display name of a loaded chapter.
func (l listModel) chapterName(id int) string {
	for _, c := range l.chapters {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Chapter %d", id)
}

func (l listModel) view() string {
	header := l.styles.Header.Render(l.styles.Title.Render("Surah List"))

	var sb strings.Builder
	if l.searching || l.search.Value() != "" {
		sb.WriteString(l.search.View())
		sb.WriteString("\n")
	}

	switch {
	case l.loading:
		sb.WriteString(l.styles.Help.Render("Loading..."))
	case l.err != nil:
		sb.WriteString(l.styles.Error.Render(fmt.Sprintf("Could not load chapters: %v", l.err)))
	case len(l.chapters) == 0:
		sb.WriteString(l.styles.Help.Render("No chapters have been seeded."))
	case len(l.filtered) == 0:
		sb.WriteString(l.styles.Help.Render("No chapter matches your search."))
	default:
		end := min(l.offset+l.visibleRows(), len(l.filtered))
		for i := l.offset; i < end; i++ {
			sb.WriteString(l.renderRow(i))
			sb.WriteString("\n")
		}
	}

	help := l.styles.Help.Render("/: search | enter: open | b: bookmarks | q: quit")
	return fmt.Sprintf("%s\n%s\n%s", header, strings.TrimRight(sb.String(), "\n"), help)
}

func (l listModel) renderRow(i int) string {
	c := l.filtered[i]

	star := l.styles.Help.Render("☆")
	if l.badges[c.ID] {
		star = l.styles.Bookmark.Render("★")
	}
	row := fmt.Sprintf("%s %3d  %s  %s  %s",
		star,
		c.ID,
		l.styles.Text.Render(c.Name),
		l.styles.Subtitle.Render(c.Transliteration),
		l.styles.Help.Render(fmt.Sprintf("(%d)", c.TotalVerses)),
	)
	if i == l.cursor {
		return l.styles.Selected.Render("› " + row)
	}
	return "  " + row
}
