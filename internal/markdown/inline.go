package markdown

import (
	"regexp"
	"strings"
)

var (
	boldRun = regexp.MustCompile(`\*\*[^*]+\*\*`)
	codeRun = regexp.MustCompile("`[^`]+`")
)

// FormatInline splits text into plain, bold and inline-code spans.
//
// Bold runs are found first. Only the text between them is searched for
// code runs, so a backtick inside a bold run stays literal. Empty plain
// fragments are dropped.
func FormatInline(text string) []Span {
	var spans []Span
	last := 0
	for _, loc := range boldRun.FindAllStringIndex(text, -1) {
		spans = appendCode(spans, text[last:loc[0]])
		spans = append(spans, Span{Kind: Bold, Text: text[loc[0]+2 : loc[1]-2]})
		last = loc[1]
	}
	return appendCode(spans, text[last:])
}

// appendCode runs the second pass over a fragment the bold pass left alone
func appendCode(spans []Span, fragment string) []Span {
	last := 0
	for _, loc := range codeRun.FindAllStringIndex(fragment, -1) {
		spans = appendPlain(spans, fragment[last:loc[0]])
		spans = append(spans, Span{Kind: Code, Text: fragment[loc[0]+1 : loc[1]-1]})
		last = loc[1]
	}
	return appendPlain(spans, fragment[last:])
}

func appendPlain(spans []Span, s string) []Span {
	if s == "" {
		return spans
	}
	return append(spans, Span{Kind: Plain, Text: s})
}

// PlainText concatenates span texts without delimiters
func PlainText(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
