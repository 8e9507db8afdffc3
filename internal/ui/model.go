package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"quran-tui/internal/theme"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenBookmarks
)

// Model is the root bubbletea model. It routes messages to the active
// screen and owns the detail session lifecycle.
type Model struct {
	deps   Deps
	styles theme.Styles

	screen   screen
	returnTo screen
	list     listModel
	marks    marksModel
	detail   *detailModel
	// draining holds closed sessions whose bookmark writes are still in flight.
	draining map[int]*detailModel

	session     int
	lastChapter int
	width       int
	height      int
}

func New(deps Deps) Model {
	styles := deps.Theme.Styles()
	return Model{
		deps:     deps,
		styles:   styles,
		screen:   screenList,
		list:     newList(deps, styles),
		marks:    newMarks(deps, styles),
		draining: map[int]*detailModel{},

		lastChapter: deps.LastChapter,
	}
}

func (m Model) Init() tea.Cmd {
	return m.list.init()
}

// LastChapter is the most recently opened chapter, 0 if none.
func (m Model) LastChapter() int {
	return m.lastChapter
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenList:
			m.list, cmd = m.list.update(msg)
		case screenBookmarks:
			m.marks, cmd = m.marks.update(msg, m.list.chapterName)
		case screenDetail:
			cmd = m.detail.update(msg)
		}
		return m, cmd

	case tea.MouseMsg:
		if m.screen == screenDetail {
			cmd = m.detail.update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list, cmd = m.list.update(msg)
		if m.detail != nil {
			m.detail.update(msg)
		}
		return m, cmd

	case chaptersLoadedMsg, badgesLoadedMsg:
		m.list, cmd = m.list.update(msg)
		return m, cmd

	case allBookmarksLoadedMsg, bookmarkRemovedMsg:
		m.marks, cmd = m.marks.update(msg, m.list.chapterName)
		return m, cmd

	case versesLoadedMsg:
		return m, m.toSession(msg.session, msg)
	case bookmarksLoadedMsg:
		return m, m.toSession(msg.session, msg)
	case bookmarksSavedMsg:
		if d, ok := m.draining[msg.session]; ok {
			cmd = d.update(msg)
			if !d.saving {
				delete(m.draining, msg.session)
				cmd = tea.Batch(cmd, m.list.refreshBadges(), m.releaseMarks(d.route.ChapterID))
			}
			return m, cmd
		}
		return m, m.toSession(msg.session, msg)

	case openChapterMsg:
		return m.openChapter(msg.route)

	case showBookmarksMsg:
		m.screen = screenBookmarks
		m.marks, cmd = m.marks.reload()
		return m, cmd

	case backMsg:
		return m.back()
	}

	return m, nil
}

// toSession delivers a detail message only to the session that asked for it;
// results for a closed session are dropped.
func (m Model) toSession(session int, msg tea.Msg) tea.Cmd {
	if m.detail == nil || m.detail.session != session {
		m.deps.Log.WithField("session", session).Debug("dropping result for closed session")
		return nil
	}
	return m.detail.update(msg)
}

// closeDetail ends the current session, keeping it reachable while its last
// bookmark write completes.
func (m *Model) closeDetail() {
	if m.detail == nil {
		return
	}
	if m.detail.close() {
		m.draining[m.detail.session] = m.detail
	}
	m.detail = nil
}

func (m Model) openChapter(route Route) (Model, tea.Cmd) {
	if m.detail != nil {
		m.closeDetail()
	} else {
		m.returnTo = m.screen
	}

	m.session++
	m.detail = newDetail(m.deps, m.styles, route, m.session, m.width, m.height)
	m.screen = screenDetail
	m.lastChapter = route.ChapterID

	m.deps.Log.WithField("chapter_id", route.ChapterID).WithField("session", m.session).Info("opening chapter")
	return m, m.detail.init(m.drainingChapter(route.ChapterID))
}

// drainingChapter reports whether a closed session still has a bookmark
// write in flight for chapterID.
func (m Model) drainingChapter(chapterID int) bool {
	for _, d := range m.draining {
		if d.route.ChapterID == chapterID {
			return true
		}
	}
	return false
}

// releaseMarks starts the held bookmark load of the current session once no
// earlier write to its chapter is pending.
func (m Model) releaseMarks(chapterID int) tea.Cmd {
	if m.detail == nil || !m.detail.marksHeld || m.detail.route.ChapterID != chapterID {
		return nil
	}
	if m.drainingChapter(chapterID) {
		return nil
	}
	return m.detail.loadMarks()
}

func (m Model) back() (Model, tea.Cmd) {
	switch m.screen {
	case screenDetail:
		m.closeDetail()
		m.screen = m.returnTo
		if m.screen == screenBookmarks {
			var reload tea.Cmd
			m.marks, reload = m.marks.reload()
			return m, tea.Batch(reload, m.list.refreshBadges())
		}
		return m, m.list.refreshBadges()
	case screenBookmarks:
		m.screen = screenList
		return m, m.list.refreshBadges()
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenDetail:
		return m.detail.view()
	case screenBookmarks:
		return m.marks.view(m.list.chapterName)
	default:
		return m.list.view()
	}
}
