package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/lessonmd/internal/catalog"
)

// CopyState is the feedback shown on the focused code block
type CopyState int

const (
	CopyIdle CopyState = iota
	CopyDone
	CopyFailed
)

// Label returns the text of the copy button
func (c CopyState) Label() string {
	switch c {
	case CopyDone:
		return "Copied!"
	case CopyFailed:
		return "Copy failed"
	default:
		return "Copy"
	}
}

// LessonView carries the interactive state drawn on top of a lesson
type LessonView struct {
	Focus int // index of the focused code block, -1 for none
	Copy  CopyState
}

// Page is a rendered lesson
type Page struct {
	Content string
	// CodeLines holds the line offset of each code block in Content
	CodeLines []int
}

// Lesson renders the title bar, every section and its code example
func (r *Renderer) Lesson(sub *catalog.SubModule, view LessonView) Page {
	b := getBuilder()
	defer putBuilder(b)

	b.WriteString(r.styles.Title.Render(sub.Title))
	b.WriteString("\n")
	b.WriteString(r.styles.Divider.Render(strings.Repeat("─", r.ruleWidth(lipgloss.Width(sub.Title)))))

	total := len(sub.CodeExamples())
	var page Page
	for _, sec := range sub.Sections {
		b.WriteString("\n\n")
		if sec.Heading != "" {
			b.WriteString(r.styles.SectionHeading.Render(sec.Heading))
			b.WriteString("\n\n")
		}
		b.WriteString(r.Markdown(sec.Content))

		if strings.TrimSpace(sec.CodeExample) == "" {
			continue
		}
		b.WriteString("\n\n")
		n := len(page.CodeLines)
		page.CodeLines = append(page.CodeLines, strings.Count(b.String(), "\n"))
		state := CopyIdle
		if n == view.Focus {
			state = view.Copy
		}
		b.WriteString(r.CodeBlock(sec.CodeExample, n, total, n == view.Focus, state))
	}

	page.Content = b.String()
	return page
}

// CodeBlock draws a boxed code example with its language, position and copy button
func (r *Renderer) CodeBlock(code string, index, total int, focused bool, state CopyState) string {
	box := r.styles.CodeBox
	if focused {
		box = r.styles.CodeBoxFocused
	}
	if r.width > 4 {
		box = box.Width(r.width - 2)
	}

	left := r.styles.CodeLabel.Render(fmt.Sprintf("</> %s  %d/%d", r.language, index+1, total))
	var right string
	switch {
	case !focused:
		right = r.styles.Copy.Render("Copy")
	case state == CopyDone:
		right = r.styles.Copied.Render("✓ " + state.Label())
	case state == CopyFailed:
		right = r.styles.CopyFailed.Render("✗ " + state.Label())
	default:
		right = r.styles.Accent.Render("[c] " + state.Label())
	}

	gap := 1
	if r.width > 4 {
		gap = max(1, r.width-lipgloss.Width(left)-lipgloss.Width(right))
	}
	label := left + strings.Repeat(" ", gap) + right
	return label + "\n" + box.Render(strings.TrimRight(code, "\n"))
}

// Welcome renders the view shown when no lesson is selected
func (r *Renderer) Welcome(t *catalog.Topic) string {
	b := getBuilder()
	defer putBuilder(b)

	title := "Welcome to " + t.Title
	if t.Icon != "" {
		title = t.Icon + "  " + title
	}
	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(r.styles.Divider.Render(strings.Repeat("─", r.ruleWidth(lipgloss.Width(title)))))
	b.WriteString("\n\n")
	if t.Description != "" {
		b.WriteString(r.wrap(r.styles.Body.Render(t.Description), r.width))
		b.WriteString("\n\n")
	}
	b.WriteString(r.wrap(r.styles.Dim.Render("Select a lesson from the sidebar to start learning. "+
		"Each module contains explanations, time complexity analysis, and practical code examples."), r.width))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Accent.Render(plural(len(t.Modules), "module") + " · " + plural(t.LessonCount(), "lesson")))
	return b.String()
}

// Footer renders the copyright line
func (r *Renderer) Footer(year int) string {
	return r.styles.Dim.Render(fmt.Sprintf("© %d DSA with JavaScript. All rights reserved.", year))
}

func (r *Renderer) ruleWidth(fallback int) int {
	if r.width > 0 {
		return r.width
	}
	return fallback
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
