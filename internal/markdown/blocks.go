// Package markdown parses the small markdown subset used by lesson text.
//
// Only four block kinds exist: headings (levels 1-3), single-line paragraphs,
// lists and pipe tables. Inside paragraphs, list items and table cells the
// inline formatter recognises **bold** and `code` runs. Everything else is
// rendered literally.
package markdown

// Block is one parsed structural unit of lesson text.
// The concrete types are Heading, Paragraph, List and Table.
type Block interface {
	block()
}

// Heading is a "# ", "## " or "### " line. Text is kept raw: headings are
// never inline-formatted.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a single non-blank line that matched no other rule.
type Paragraph struct {
	Spans []Span
}

// List is a run of "- " or "N." lines. Ordered is decided by the first line.
type List struct {
	Ordered bool
	Items   [][]Span
}

// Table is a pipe table. Rows may be shorter or longer than Headers.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (List) block()      {}
func (Table) block()     {}

// SpanKind identifies the style of an inline span
type SpanKind int

const (
	Plain SpanKind = iota
	Bold
	Code
)

func (k SpanKind) String() string {
	switch k {
	case Bold:
		return "bold"
	case Code:
		return "code"
	default:
		return "plain"
	}
}

// Span is a run of text with a single inline style. Delimiters are stripped.
type Span struct {
	Kind SpanKind
	Text string
}
