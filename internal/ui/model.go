package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/gubarz/lessonmd/internal/catalog"
	"github.com/gubarz/lessonmd/internal/clipboard"
	"github.com/gubarz/lessonmd/internal/nav"
	"github.com/gubarz/lessonmd/internal/render"
)

// Options configures the browser
type Options struct {
	Clipboard    clipboard.Clipboard
	Logger       *zap.Logger
	Styles       *render.Styles
	SidebarWidth int
	WrapWidth    int
	CopyReset    time.Duration
	Language     string
}

func (o *Options) setDefaults() {
	if o.Clipboard == nil {
		o.Clipboard = clipboard.System()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Styles == nil {
		o.Styles = render.DefaultStyles()
	}
	if o.SidebarWidth <= 0 {
		o.SidebarWidth = 32
	}
	if o.WrapWidth <= 0 {
		o.WrapWidth = 100
	}
	if o.CopyReset <= 0 {
		o.CopyReset = 2 * time.Second
	}
	if o.Language == "" {
		o.Language = "javascript"
	}
}

// uiPhase represents which phase the TUI is in
type uiPhase int

const (
	phaseBrowse uiPhase = iota // Browsing topics and lessons
	phaseSearch                // Search input open
)

// focusArea is the pane that receives movement keys
type focusArea int

const (
	focusSidebar focusArea = iota
	focusContent
)

// rowKind identifies a sidebar row
type rowKind int

const (
	rowHome rowKind = iota
	rowModule
	rowLesson
)

// sidebarRow is one visible line of the sidebar
type sidebarRow struct {
	kind   rowKind
	module *catalog.Module
	sub    *catalog.SubModule
}

// copiedMsg reports the result of a clipboard write
type copiedMsg struct {
	gen int
	err error
}

// copyResetMsg clears the copy feedback of generation gen
type copyResetMsg struct {
	gen int
}

// mainModel is the Bubble Tea model for the lesson browser
type mainModel struct {
	width    int
	height   int
	phase    uiPhase
	focus    focusArea
	quitting bool
	status   string

	state    *nav.State
	opts     Options
	log      *zap.Logger
	renderer *render.Renderer
	help     help.Model
	year     int

	// Sidebar
	rows   []sidebarRow
	cursor int
	offset int

	// Content
	viewport  viewport.Model
	page      render.Page
	codeFocus int
	copyState render.CopyState
	copyGen   int

	// Search
	textInput    textinput.Model
	lessons      []lessonItem
	filtered     []lessonItem
	searchCursor int
	searchOffset int
}

// newMainModel creates a browser over state
func newMainModel(state *nav.State, opts Options) mainModel {
	opts.setDefaults()

	ti := textinput.New()
	ti.Placeholder = "Search lessons..."
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Width = 50

	var items []lessonItem
	for _, l := range state.Catalog().Lessons() {
		items = append(items, newLessonItem(l))
	}

	m := mainModel{
		state:     state,
		opts:      opts,
		log:       opts.Logger.Named("ui"),
		help:      help.New(),
		year:      time.Now().Year(),
		viewport:  viewport.New(80, 20),
		textInput: ti,
		lessons:   items,
		filtered:  items,
		codeFocus: -1,
		width:     80,
		height:    24,
	}
	m.rebuildRows()
	m.resetCodeFocus()
	m.layout()
	m.viewport.GotoTop()
	return m
}

// Init implements tea.Model
func (m mainModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = max(msg.Width-4, 10)
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	case copiedMsg:
		return m.handleCopied(msg)
	case copyResetMsg:
		if msg.gen == m.copyGen && m.copyState != render.CopyIdle {
			m.copyState = render.CopyIdle
			m.refreshContent()
		}
		return m, nil
	}

	switch m.phase {
	case phaseSearch:
		return m.updateSearch(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// updateBrowse handles updates while browsing
func (m mainModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.status = ""
	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.search):
		m.openSearch()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.sidebar):
		m.state.ToggleSidebarCollapse()
		if m.state.SidebarCollapsed() {
			m.focus = focusContent
		}
		m.layout()
		return m, nil
	case key.Matches(keyMsg, keys.focus):
		if m.focus == focusSidebar || m.state.SidebarCollapsed() {
			m.focus = focusContent
		} else {
			m.focus = focusSidebar
		}
		return m, nil
	case key.Matches(keyMsg, keys.prevTopic):
		m.shiftTopic(-1)
		return m, nil
	case key.Matches(keyMsg, keys.nextTopic):
		m.shiftTopic(1)
		return m, nil
	case key.Matches(keyMsg, keys.topicN):
		m.selectTopicIndex(int(keyMsg.Runes[0] - '1'))
		return m, nil
	case key.Matches(keyMsg, keys.nextCode):
		m.moveCodeFocus(1)
		return m, nil
	case key.Matches(keyMsg, keys.prevCode):
		m.moveCodeFocus(-1)
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		cmd := m.copyFocused()
		return m, cmd
	}

	if m.focus == focusSidebar {
		m.handleSidebarKey(keyMsg)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleSidebarKey processes movement and activation in the sidebar
func (m *mainModel) handleSidebarKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
	case key.Matches(msg, keys.home):
		m.moveCursor(-len(m.rows))
	case key.Matches(msg, keys.end):
		m.moveCursor(len(m.rows))
	case key.Matches(msg, keys.open):
		m.activateRow()
	}
}

// moveCursor moves the sidebar cursor by delta, clamping to valid range
func (m *mainModel) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, 0, max(0, len(m.rows)-1))
}

// activateRow opens the welcome view, toggles a module or opens a lesson
func (m *mainModel) activateRow() {
	if m.cursor >= len(m.rows) {
		return
	}
	row := m.rows[m.cursor]
	switch row.kind {
	case rowHome:
		m.openLesson(nil)
	case rowModule:
		m.state.ToggleModuleExpansion(row.module.ID)
		m.rebuildRows()
	case rowLesson:
		m.openLesson(row.sub)
	}
}

// openLesson selects sub (nil for the welcome view) and redraws from the top
func (m *mainModel) openLesson(sub *catalog.SubModule) {
	if err := m.state.SelectSubModule(sub); err != nil {
		m.log.Warn("lesson rejected", zap.Error(err))
		m.status = err.Error()
	} else if sub != nil {
		m.log.Debug("lesson opened", zap.String("lesson", sub.ID), zap.String("topic", m.state.Topic().ID))
	}
	m.resetCodeFocus()
	m.refreshContent()
	m.viewport.GotoTop()
}

// shiftTopic moves to the previous or next topic, wrapping around
func (m *mainModel) shiftTopic(delta int) {
	c := m.state.Catalog()
	n := len(c.Topics())
	i := c.TopicIndex(m.state.Topic())
	m.selectTopicIndex(((i+delta)%n + n) % n)
}

// selectTopicIndex switches to the i-th topic; out of range is ignored
func (m *mainModel) selectTopicIndex(i int) {
	topics := m.state.Catalog().Topics()
	if i < 0 || i >= len(topics) {
		return
	}
	t := &topics[i]
	if t == m.state.Topic() {
		return
	}
	m.state.SelectTopic(t)
	m.log.Debug("topic selected", zap.String("topic", t.ID))
	m.cursor = 0
	m.offset = 0
	m.rebuildRows()
	m.resetCodeFocus()
	m.refreshContent()
	m.viewport.GotoTop()
}

// rebuildRows recomputes the visible sidebar rows from the expanded set
func (m *mainModel) rebuildRows() {
	t := m.state.Topic()
	rows := make([]sidebarRow, 0, 1+len(t.Modules))
	rows = append(rows, sidebarRow{kind: rowHome})
	for i := range t.Modules {
		mod := &t.Modules[i]
		rows = append(rows, sidebarRow{kind: rowModule, module: mod})
		if !m.state.IsExpanded(mod.ID) {
			continue
		}
		for j := range mod.SubModules {
			rows = append(rows, sidebarRow{kind: rowLesson, module: mod, sub: &mod.SubModules[j]})
		}
	}
	m.rows = rows
	m.moveCursor(0)
}

// cursorToLesson places the sidebar cursor on sub's row
func (m *mainModel) cursorToLesson(sub *catalog.SubModule) {
	for i, row := range m.rows {
		if row.sub == sub {
			m.cursor = i
			return
		}
	}
}

// ============================================================================
// Code Blocks
// ============================================================================

// codeExamples returns the open lesson's code examples
func (m *mainModel) codeExamples() []string {
	if sub := m.state.SubModule(); sub != nil {
		return sub.CodeExamples()
	}
	return nil
}

// resetCodeFocus focuses the first code block and drops pending copy feedback
func (m *mainModel) resetCodeFocus() {
	m.codeFocus = -1
	if len(m.codeExamples()) > 0 {
		m.codeFocus = 0
	}
	m.copyState = render.CopyIdle
	m.copyGen++
}

// moveCodeFocus cycles the focused code block and scrolls it into view
func (m *mainModel) moveCodeFocus(delta int) {
	n := len(m.codeExamples())
	if n == 0 {
		return
	}
	m.codeFocus = ((m.codeFocus+delta)%n + n) % n
	m.copyState = render.CopyIdle
	m.copyGen++
	m.refreshContent()
	if m.codeFocus < len(m.page.CodeLines) {
		m.viewport.SetYOffset(m.page.CodeLines[m.codeFocus])
	}
}

// copyFocused writes the focused code example to the clipboard
func (m *mainModel) copyFocused() tea.Cmd {
	codes := m.codeExamples()
	if m.codeFocus < 0 || m.codeFocus >= len(codes) {
		return nil
	}
	m.copyGen++
	gen, text, clip := m.copyGen, codes[m.codeFocus], m.opts.Clipboard
	return func() tea.Msg {
		return copiedMsg{gen: gen, err: clip.Copy(text)}
	}
}

// handleCopied shows the copy result and schedules its reset
func (m mainModel) handleCopied(msg copiedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.copyGen {
		return m, nil
	}
	if msg.err != nil {
		m.log.Warn("copy failed", zap.Error(msg.err))
		m.copyState = render.CopyFailed
		if errors.Is(msg.err, clipboard.ErrUnsupported) {
			m.status = "no clipboard utility found"
		}
	} else {
		m.copyState = render.CopyDone
	}
	m.refreshContent()

	gen := msg.gen
	return m, tea.Tick(m.opts.CopyReset, func(time.Time) tea.Msg {
		return copyResetMsg{gen: gen}
	})
}

// ============================================================================
// Search Phase
// ============================================================================

// openSearch switches to the search phase with an empty query
func (m *mainModel) openSearch() {
	m.phase = phaseSearch
	m.textInput.SetValue("")
	m.textInput.Focus()
	m.filtered = filterLessons(m.lessons, "")
	m.searchCursor = 0
	m.searchOffset = 0
}

// closeSearch returns to browsing
func (m *mainModel) closeSearch() {
	m.phase = phaseBrowse
	m.textInput.Blur()
}

// updateSearch handles updates during the search phase
func (m mainModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.cancel):
			m.closeSearch()
			return m, nil
		case msg.String() == "enter":
			m.acceptSearch()
			return m, nil
		case msg.String() == "up", msg.String() == "ctrl+p":
			m.searchCursor = clamp(m.searchCursor-1, 0, max(0, len(m.filtered)-1))
			return m, nil
		case msg.String() == "down", msg.String() == "ctrl+n":
			m.searchCursor = clamp(m.searchCursor+1, 0, max(0, len(m.filtered)-1))
			return m, nil
		}
	case filterMsg:
		m.filterLessons()
		return m, nil
	}

	prevQuery := m.textInput.Value()
	var cmds []tea.Cmd
	var tiCmd tea.Cmd
	m.textInput, tiCmd = m.textInput.Update(msg)
	cmds = append(cmds, tiCmd)

	// Only trigger debounced filter if query changed
	if m.textInput.Value() != prevQuery {
		cmds = append(cmds, debounceFilter())
	}
	return m, tea.Batch(cmds...)
}

// filterLessons filters the lesson list based on the search query
func (m *mainModel) filterLessons() {
	m.filtered = filterLessons(m.lessons, m.textInput.Value())
	m.searchCursor = clamp(m.searchCursor, 0, max(0, len(m.filtered)-1))
}

// acceptSearch opens the highlighted result
func (m *mainModel) acceptSearch() {
	m.filterLessons()
	if m.searchCursor >= len(m.filtered) {
		return
	}
	l := m.filtered[m.searchCursor].lesson
	m.closeSearch()
	if err := m.state.SelectLesson(l.Topic.ID, l.Module.ID, l.SubModule.ID); err != nil {
		m.log.Warn("search result rejected", zap.Error(err))
		m.status = err.Error()
		return
	}
	m.rebuildRows()
	m.cursorToLesson(m.state.SubModule())
	m.focus = focusContent
	m.resetCodeFocus()
	m.refreshContent()
	m.viewport.GotoTop()
}
