package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/lessonmd/internal/render"
)

// chromeHeight is the number of lines outside the body: topic bar, two
// dividers and the status line
const chromeHeight = 4

// bodyHeight returns the number of lines available to sidebar and content
func (m *mainModel) bodyHeight() int {
	return max(m.height-chromeHeight, 3)
}

// sidebarWidth returns the sidebar width, excluding its border
func (m *mainModel) sidebarWidth() int {
	return max(min(m.opts.SidebarWidth, m.width/2), 12)
}

// layout sizes the viewport and renderer for the current window
func (m *mainModel) layout() {
	contentWidth := m.width
	if !m.state.SidebarCollapsed() {
		contentWidth -= m.sidebarWidth() + 1
	}
	contentWidth = max(contentWidth, 20)

	m.viewport.Width = contentWidth
	m.viewport.Height = m.bodyHeight()
	textWidth := min(contentWidth-2, m.opts.WrapWidth)
	m.renderer = render.New(m.opts.Styles, textWidth).WithLanguage(m.opts.Language)
	m.refreshContent()
}

// refreshContent re-renders the open lesson or the welcome view. Lesson text
// is parsed again on every call.
func (m *mainModel) refreshContent() {
	if sub := m.state.SubModule(); sub != nil {
		m.page = m.renderer.Lesson(sub, render.LessonView{Focus: m.codeFocus, Copy: m.copyState})
	} else {
		m.page = render.Page{Content: m.renderer.Welcome(m.state.Topic())}
	}
	m.viewport.SetContent(m.page.Content + "\n\n" + m.renderer.Footer(m.year))
}

// View implements tea.Model
func (m mainModel) View() string {
	if m.quitting {
		return ""
	}
	styles := m.opts.Styles
	width := max(m.width, 20)

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(m.renderTopicBar(width))
	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")

	if m.phase == phaseSearch {
		b.WriteString(m.renderSearch(m.bodyHeight()))
	} else {
		b.WriteString(m.renderBody())
	}

	b.WriteString("\n")
	b.WriteString(styles.Divider.Render(strings.Repeat("─", width)))
	b.WriteString("\n")
	b.WriteString(m.renderStatus(width))
	return b.String()
}

// renderTopicBar renders one tab per topic with the selected topic highlighted
func (m mainModel) renderTopicBar(width int) string {
	styles := m.opts.Styles
	c := m.state.Catalog()
	tabs := make([]string, 0, len(c.Topics()))
	for i := range c.Topics() {
		t := &c.Topics()[i]
		label := fmt.Sprintf(" %d %s %s ", i+1, t.Icon, t.Title)
		if t.Icon == "" {
			label = fmt.Sprintf(" %d %s ", i+1, t.Title)
		}
		if t == m.state.Topic() {
			tabs = append(tabs, styles.Selected.Render(label))
		} else {
			tabs = append(tabs, styles.Dim.Render(label))
		}
	}
	return truncate(strings.Join(tabs, styles.Divider.Render("│")), width)
}

// renderBody lays out the sidebar next to the content viewport
func (m mainModel) renderBody() string {
	if m.state.SidebarCollapsed() {
		return m.viewport.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(m.bodyHeight()), m.viewport.View())
}

// renderSidebar renders the scrollable module tree
func (m *mainModel) renderSidebar(height int) string {
	styles := m.opts.Styles
	width := m.sidebarWidth()
	start, end := scrollWindow(m.cursor, len(m.rows), height, &m.offset)

	b := getBuilder()
	defer putBuilder(b)
	for i := start; i < end; i++ {
		if i > start {
			b.WriteString("\n")
		}
		b.WriteString(m.renderRow(m.rows[i], i == m.cursor, width))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(styles.BorderColor).
		Render(b.String())
}

// renderRow renders a single sidebar row
func (m *mainModel) renderRow(row sidebarRow, atCursor bool, width int) string {
	styles := m.opts.Styles

	var text string
	style := lipgloss.NewStyle()
	switch row.kind {
	case rowHome:
		text = "⌂ Home"
		if m.state.SubModule() == nil {
			style = styles.Selected
		}
	case rowModule:
		arrow := "▸"
		if m.state.IsExpanded(row.module.ID) {
			arrow = "▾"
		}
		text = arrow + " " + row.module.Title
		if row.module.Icon != "" {
			text = arrow + " " + row.module.Icon + " " + row.module.Title
		}
		style = styles.H3
	case rowLesson:
		text = "   " + row.sub.Title
		if row.sub == m.state.SubModule() {
			style = styles.Selected
		}
	}

	prefix := "  "
	if atCursor && m.focus == focusSidebar {
		prefix = styles.Cursor.Render("▶ ")
	}
	return prefix + style.Render(truncate(text, width-2))
}

// renderSearch renders the search input and the matching lessons
func (m *mainModel) renderSearch(height int) string {
	styles := m.opts.Styles

	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(m.textInput.View())
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render(fmt.Sprintf("  %d/%d lessons", len(m.filtered), len(m.lessons))))

	listHeight := max(height-2, 1)
	start, end := scrollWindow(m.searchCursor, len(m.filtered), listHeight, &m.searchOffset)
	for i := start; i < end; i++ {
		b.WriteString("\n")
		title := truncate(m.filtered[i].title(), m.width-2)
		if i == m.searchCursor {
			b.WriteString(styles.Cursor.Render("▶ ") + styles.Selected.Render(title))
		} else {
			b.WriteString("  " + title)
		}
	}
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(b.String())
}

// renderStatus renders key help, or the last error
func (m mainModel) renderStatus(width int) string {
	switch {
	case m.status != "":
		return truncate(m.opts.Styles.CopyFailed.Render(m.status), width)
	case m.phase == phaseSearch:
		return m.help.View(searchKeys{})
	default:
		return m.help.View(keys)
	}
}
