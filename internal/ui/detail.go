package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quran-tui/internal/bookmarks"
	"quran-tui/internal/entities"
	"quran-tui/internal/gate"
	"quran-tui/internal/theme"
	"quran-tui/internal/verse"
)

type detailState int

const (
	stateLoading detailState = iota
	stateReady
	stateFailed
)

const (
	gutterWidth  = 4
	minWrapWidth = 12
	chromeHeight = 4 // header with border, blank line, footer
)

// detailModel is one chapter-view session. It owns its verses, bookmark set
// and row positions. After close() only its pending bookmark write survives.
type detailModel struct {
	deps    Deps
	styles  theme.Styles
	route   Route
	session int
	ctx     context.Context
	cancel  context.CancelFunc

	state      detailState
	err        error
	verses     []entities.Verse
	versesDone bool
	marks      bookmarks.Set
	marksDone  bool
	marksHeld  bool

	rendered   []verse.Rendered
	positions  []int
	measured   *gate.Gate
	scrolledTo int
	cursor     int

	saving bool
	dirty  bool
	status string

	viewport viewport.Model
	width    int
	height   int
}

func newDetail(deps Deps, styles theme.Styles, route Route, session, width, height int) *detailModel {
	ctx, cancel := context.WithCancel(context.Background())
	d := &detailModel{
		deps:       deps,
		styles:     styles,
		route:      route,
		session:    session,
		ctx:        ctx,
		cancel:     cancel,
		marks:      bookmarks.Set{},
		scrolledTo: -1,
		viewport:   viewport.New(width, max(height-chromeHeight, 1)),
		width:      width,
		height:     height,
	}
	return d
}

// init starts both loads; they may complete in either order. With holdMarks
// the bookmark load waits for loadMarks, issued once an earlier session's
// write to the same chapter has landed.
func (d *detailModel) init(holdMarks bool) tea.Cmd {
	verses := loadVersesCmd(d.ctx, d.deps.Content, d.session, d.route.ChapterID)
	if holdMarks {
		d.marksHeld = true
		return verses
	}
	return tea.Batch(verses, d.loadMarks())
}

func (d *detailModel) loadMarks() tea.Cmd {
	d.marksHeld = false
	return loadBookmarksCmd(d.ctx, d.deps.Bookmarks, d.session, d.route.ChapterID)
}

// close ends the session. In-flight loads are cancelled; it reports whether a
// bookmark write is still in flight, in which case the caller keeps routing
// save results here until any queued change has been written.
func (d *detailModel) close() bool {
	d.cancel()
	return d.saving
}

func (d *detailModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case versesLoadedMsg:
		if msg.err != nil {
			d.deps.Log.WithError(msg.err).WithField("chapter_id", d.route.ChapterID).Error("failed to load verses")
			d.state = stateFailed
			d.err = msg.err
			return nil
		}
		d.verses = msg.verses
		d.versesDone = true
		d.rendered = make([]verse.Rendered, len(msg.verses))
		for i, v := range msg.verses {
			d.rendered[i] = verse.Render(d.route.ChapterID, i, v.Text)
		}
		d.maybeReady()

	case bookmarksLoadedMsg:
		if msg.err != nil {
			d.deps.Log.WithError(msg.err).WithField("chapter_id", d.route.ChapterID).Warn("failed to load bookmarks")
		}
		d.marks = msg.set
		if d.marks == nil {
			d.marks = bookmarks.Set{}
		}
		d.marksDone = true
		d.maybeReady()

	case bookmarksSavedMsg:
		d.saving = false
		if msg.err != nil {
			d.deps.Log.WithError(msg.err).WithField("chapter_id", d.route.ChapterID).Error("failed to save bookmarks")
			d.status = "Bookmark not saved"
		} else {
			d.status = ""
		}
		if d.dirty {
			return d.persist()
		}

	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.viewport.Width = msg.Width
		d.viewport.Height = max(msg.Height-chromeHeight, 1)
		if d.state == stateReady {
			d.layout()
		}

	case tea.MouseMsg:
		if d.state == stateReady {
			var cmd tea.Cmd
			d.viewport, cmd = d.viewport.Update(msg)
			return cmd
		}

	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return nil
}

func (d *detailModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case KeyEsc, KeyBackspace:
		return navigate(backMsg{})
	case KeyQuit:
		return tea.Quit
	}

	if d.state != stateReady {
		return nil
	}

	switch msg.String() {
	case KeyUp, KeyK:
		d.moveCursor(-1)
	case KeyDown, KeyJ:
		d.moveCursor(1)
	case KeyToggle, KeyToggleAlt, KeyEnter:
		return d.toggleBookmark(d.cursor)
	case KeyZoomIn, KeyZoomInAlt:
		d.deps.Zoom.PinchBy(pinchStep)
		d.layout()
	case KeyZoomOut:
		d.deps.Zoom.PinchBy(1 / pinchStep)
		d.layout()
	case KeyZoomReset:
		d.deps.Zoom.Reset()
		d.layout()
	case KeyDoubleTap:
		d.deps.Zoom.DoubleTap()
		d.layout()
	case KeyPanLeft, KeyLeft:
		d.pan(-panStep)
	case KeyPanRight, KeyRight:
		d.pan(panStep)
	default:
		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return cmd
	}
	return nil
}

// maybeReady lays out the rows once both loads have resolved. Every row then
// reports its position and the completed gate triggers the single scroll.
func (d *detailModel) maybeReady() {
	if d.state != stateLoading || !d.versesDone || !d.marksDone {
		return
	}
	d.state = stateReady
	d.measured = gate.New(len(d.verses))
	d.positions = make([]int, len(d.verses))
	d.layout()
}

// toggleBookmark flips index in the visible set at once and persists the
// whole set afterwards. A failed write is reported but not rolled back;
// storage is authoritative when the chapter is next opened.
func (d *detailModel) toggleBookmark(index int) tea.Cmd {
	if index < 0 || index >= len(d.verses) {
		return nil
	}
	d.marks.Toggle(index)
	d.layout()
	return d.persist()
}

// persist keeps at most one write in flight so that writes land in order.
func (d *detailModel) persist() tea.Cmd {
	if d.saving {
		d.dirty = true
		return nil
	}
	d.saving = true
	d.dirty = false
	return saveBookmarksCmd(d.deps.Bookmarks, d.session, d.route.ChapterID, d.marks.Clone())
}

func (d *detailModel) onAllMeasured() {
	target, ok := resolveScrollTarget(d.route.Target, d.marks)
	if !ok || target >= len(d.positions) {
		return
	}
	d.cursor = target
	d.scrolledTo = target
	d.viewport.SetYOffset(d.positions[target])
	d.deps.Log.WithField("chapter_id", d.route.ChapterID).WithField("verse_index", target).Debug("scrolled to verse")
}

// resolveScrollTarget prefers an explicit target, then the lowest bookmark.
func resolveScrollTarget(target *int, marks bookmarks.Set) (int, bool) {
	if target != nil {
		if *target < 0 {
			return 0, false
		}
		return *target, true
	}
	return marks.Lowest()
}

func (d *detailModel) moveCursor(delta int) {
	next := d.cursor + delta
	if next < 0 || next >= len(d.verses) {
		return
	}
	d.cursor = next
	d.layout()

	top := d.positions[d.cursor]
	switch {
	case top < d.viewport.YOffset:
		d.viewport.SetYOffset(top)
	case top >= d.viewport.YOffset+d.viewport.Height:
		d.viewport.SetYOffset(top)
	}
}

func (d *detailModel) pan(delta int) {
	if !d.deps.Zoom.Zoomed() {
		return
	}
	x, _ := d.deps.Zoom.Translate()
	_, maxIndent := d.columns()
	if x+delta < 0 || x+delta > maxIndent {
		return
	}
	d.deps.Zoom.PanBy(delta, 0)
	d.layout()
}

// columns returns the wrap width at the current scale and how far the
// column can be shifted sideways.
func (d *detailModel) columns() (wrap, maxIndent int) {
	avail := max(d.width-gutterWidth, minWrapWidth)
	wrap = int(float64(avail) / d.deps.Zoom.Scale())
	wrap = min(max(wrap, minWrapWidth), avail)
	return wrap, avail - wrap
}

// layout renders every row and reports each row's first line to the gate.
func (d *detailModel) layout() {
	wrap, maxIndent := d.columns()
	x, _ := d.deps.Zoom.Translate()
	indent := min(max(x, 0), maxIndent)

	rows := make([]string, len(d.rendered))
	line := 0
	fired := false
	for i := range d.rendered {
		rows[i] = d.renderRow(i, wrap, indent)
		d.positions[i] = line
		line += lipgloss.Height(rows[i]) + 1
		if d.measured.Signal(i) {
			fired = true
		}
	}
	d.viewport.SetContent(strings.Join(rows, "\n\n"))

	if fired {
		d.onAllMeasured()
	}
}

func (d *detailModel) renderRow(i, wrap, indent int) string {
	r := d.rendered[i]

	var lines []string
	if r.LeadingPhrase != nil {
		lines = append(lines, d.styles.Invocation.Render(*r.LeadingPhrase))
	}
	var parts []string
	if r.Body != "" {
		parts = append(parts, d.styles.Text.Render(r.Body))
	}
	parts = append(parts, d.styles.Marker.Render(r.NumberGlyph))
	lines = append(lines, strings.Join(parts, " "))

	block := lipgloss.NewStyle().Width(wrap).Render(strings.Join(lines, "\n"))

	star := d.styles.Help.Render("☆")
	if d.marks.Has(i) {
		star = d.styles.Bookmark.Render("★")
	}
	pointer := " "
	if i == d.cursor {
		pointer = d.styles.Title.Render("›")
	}
	gutter := lipgloss.NewStyle().Width(gutterWidth).Render(pointer + " " + star)

	row := lipgloss.JoinHorizontal(lipgloss.Top, gutter, lipgloss.NewStyle().MarginLeft(indent).Render(block))
	if i == d.cursor {
		row = d.styles.Selected.Render(row)
	}
	return row
}

func (d *detailModel) view() string {
	title := d.styles.Title.Render(d.route.ChapterName)
	info := d.styles.Help.Render(fmt.Sprintf("  %d verses · zoom %.0f%%", len(d.verses), d.deps.Zoom.Scale()*100))
	header := d.styles.Header.Render(title + info)

	var body string
	switch d.state {
	case stateLoading:
		body = d.styles.Help.Render("Loading...")
	case stateFailed:
		body = d.styles.Error.Render(fmt.Sprintf("Could not load this chapter: %v", d.err))
	default:
		body = d.viewport.View()
	}

	footer := d.styles.Help.Render("↑/↓: move | space: bookmark | +/-: zoom | z: toggle zoom | h/l: pan | esc: back | q: quit")
	if d.status != "" {
		footer = d.styles.Error.Render(d.status)
	}

	return fmt.Sprintf("%s\n%s\n%s", header, body, footer)
}
