package markdown

import (
	"regexp"
	"strings"
)

var orderedMarker = regexp.MustCompile(`^\d+\.`)

// rule classifies the line at the cursor. consume returns the block to emit
// (nil for none) and the index of the next unconsumed line.
type rule struct {
	name    string
	match   func(lines []string, i int) bool
	consume func(lines []string, i int) (Block, int)
}

// rules are evaluated top to bottom; the first match wins.
// The paragraph rule matches everything and must stay last.
var rules = []rule{
	{name: "heading", match: isHeading, consume: parseHeading},
	{name: "table", match: isTableStart, consume: parseTable},
	{name: "list", match: isListLine, consume: parseList},
	{name: "blank", match: isBlank, consume: skipLine},
	{name: "paragraph", match: func([]string, int) bool { return true }, consume: parseParagraph},
}

// headingPrefixes are checked longest first so "### " is never read as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// Parse converts raw lesson text into blocks, one line at a time with a
// single line of lookahead. It never fails: unrecognised lines become
// paragraphs.
func Parse(raw string) []Block {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if raw == "" {
		return nil
	}
	lines := strings.Split(raw, "\n")

	var blocks []Block
	for i := 0; i < len(lines); {
		for _, r := range rules {
			if !r.match(lines, i) {
				continue
			}
			b, next := r.consume(lines, i)
			if b != nil {
				blocks = append(blocks, b)
			}
			i = next
			break
		}
	}
	return blocks
}

func isHeading(lines []string, i int) bool {
	_, _, ok := headingLevel(lines[i])
	return ok
}

func headingLevel(line string) (int, string, bool) {
	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return h.level, line[len(h.prefix):], true
		}
	}
	return 0, "", false
}

func parseHeading(lines []string, i int) (Block, int) {
	level, text, _ := headingLevel(lines[i])
	return Heading{Level: level, Text: text}, i + 1
}

func isTableStart(lines []string, i int) bool {
	return strings.Contains(lines[i], "|") &&
		i+1 < len(lines) && strings.Contains(lines[i+1], "---")
}

func parseTable(lines []string, i int) (Block, int) {
	t := Table{Headers: splitRow(lines[i])}
	i += 2 // header and separator
	for i < len(lines) && strings.Contains(lines[i], "|") {
		t.Rows = append(t.Rows, splitRow(lines[i]))
		i++
	}
	return t, i
}

// splitRow splits on pipes and keeps only non-blank cells, trimmed
func splitRow(line string) []string {
	var cells []string
	for _, cell := range strings.Split(line, "|") {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func isListLine(lines []string, i int) bool {
	return strings.HasPrefix(lines[i], "- ") || orderedMarker.MatchString(lines[i])
}

// isListContinuation also accepts indented lines. Each one still becomes a
// separate item rather than being merged into the previous item.
func isListContinuation(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		orderedMarker.MatchString(line) ||
		strings.HasPrefix(line, "  ")
}

func parseList(lines []string, i int) (Block, int) {
	l := List{Ordered: orderedMarker.MatchString(lines[i])}
	for i < len(lines) && isListContinuation(lines[i]) {
		l.Items = append(l.Items, FormatInline(listItemText(lines[i])))
		i++
	}
	return l, i
}

func listItemText(line string) string {
	switch {
	case strings.HasPrefix(line, "- "):
		line = line[2:]
	case orderedMarker.MatchString(line):
		line = orderedMarker.ReplaceAllString(line, "")
	}
	return strings.TrimSpace(line)
}

func isBlank(lines []string, i int) bool {
	return strings.TrimSpace(lines[i]) == ""
}

func skipLine(_ []string, i int) (Block, int) {
	return nil, i + 1
}

func parseParagraph(lines []string, i int) (Block, int) {
	return Paragraph{Spans: FormatInline(lines[i])}, i + 1
}
