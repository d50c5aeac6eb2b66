// Package render turns parsed lesson text into styled terminal output.
package render

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gubarz/lessonmd/internal/markdown"
)

var builderPool = sync.Pool{
	New: func() interface{} {
		return &strings.Builder{}
	},
}

func getBuilder() *strings.Builder {
	b := builderPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func putBuilder(b *strings.Builder) {
	if b.Cap() < 64*1024 { // Don't pool huge builders
		builderPool.Put(b)
	}
}

// Renderer draws blocks, lessons and the welcome view at a fixed width
type Renderer struct {
	styles   *Styles
	width    int
	language string
}

// New returns a renderer. A width of 0 or less disables wrapping.
func New(styles *Styles, width int) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles, width: width, language: "javascript"}
}

// WithLanguage sets the label shown on code blocks
func (r *Renderer) WithLanguage(lang string) *Renderer {
	r.language = lang
	return r
}

// Width returns the wrap width
func (r *Renderer) Width() int {
	return r.width
}

// Markdown parses raw lesson text and renders it
func (r *Renderer) Markdown(raw string) string {
	return r.Blocks(markdown.Parse(raw))
}

// Blocks renders blocks separated by a blank line
func (r *Renderer) Blocks(blocks []markdown.Block) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, r.Block(b))
	}
	return strings.Join(out, "\n\n")
}

// Block renders a single block
func (r *Renderer) Block(b markdown.Block) string {
	switch b := b.(type) {
	case markdown.Heading:
		return r.heading(b)
	case markdown.Paragraph:
		return r.wrap(r.Spans(b.Spans), r.width)
	case markdown.List:
		return r.list(b)
	case markdown.Table:
		return r.table(b)
	default:
		panic("render: unknown block type")
	}
}

func (r *Renderer) heading(h markdown.Heading) string {
	switch h.Level {
	case 1:
		return r.styles.H1.Render(h.Text)
	case 2:
		return r.styles.H2.Render(h.Text)
	default:
		return r.styles.H3.Render(h.Text)
	}
}

// Spans renders inline spans on one line
func (r *Renderer) Spans(spans []markdown.Span) string {
	b := getBuilder()
	defer putBuilder(b)
	for _, s := range spans {
		switch s.Kind {
		case markdown.Bold:
			b.WriteString(r.styles.Bold.Render(s.Text))
		case markdown.Code:
			b.WriteString(r.styles.Code.Render(s.Text))
		default:
			b.WriteString(r.styles.Body.Render(s.Text))
		}
	}
	return b.String()
}

func (r *Renderer) list(l markdown.List) string {
	lines := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		marker := "• "
		if l.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		text := r.wrap(r.Spans(item), r.width-ansi.StringWidth(marker))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, r.styles.ListMarker.Render(marker), text))
	}
	return strings.Join(lines, "\n")
}

// table draws headers, a rule and the body rows. Column widths cover every
// cell present; short rows draw only the cells they have.
func (r *Renderer) table(t markdown.Table) string {
	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = r.styles.TableHeader.Render(h)
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = r.Spans(markdown.FormatInline(cell))
		}
	}

	var widths []int
	measure := func(cells []string) {
		for i, c := range cells {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}
	measure(header)
	for _, row := range rows {
		measure(row)
	}

	sep := r.styles.TableRule.Render(" │ ")
	b := getBuilder()
	defer putBuilder(b)
	b.WriteString(joinCells(header, widths, sep))
	b.WriteString("\n")
	rule := make([]string, len(header))
	for i := range header {
		rule[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(r.styles.TableRule.Render(strings.Join(rule, "─┼─")))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(joinCells(row, widths, sep))
	}
	return b.String()
}

// joinCells pads every cell but the last to its column width
func joinCells(cells []string, widths []int, sep string) string {
	b := getBuilder()
	defer putBuilder(b)
	for i, c := range cells {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(c)
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(c)))
		}
	}
	return b.String()
}

// wrap word-wraps styled text, breaking long words when it must
func (r *Renderer) wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wrap(s, width, "")
}
