package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Heading
	}{
		{"level one", "# Arrays", Heading{Level: 1, Text: "Arrays"}},
		{"level two", "## Key Concepts", Heading{Level: 2, Text: "Key Concepts"}},
		{"level three", "### Title", Heading{Level: 3, Text: "Title"}},
		{"text kept raw", "## Use **bold**", Heading{Level: 2, Text: "Use **bold**"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Parse(tt.input)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0])
		})
	}
}

func TestParseHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks := Parse("#hashtag")
	require.Len(t, blocks, 1)
	assert.IsType(t, Paragraph{}, blocks[0])
}

func TestParseTable(t *testing.T) {
	blocks := Parse("A | B\n--- | ---\n1 | 2")
	require.Len(t, blocks, 1)
	assert.Equal(t, Table{
		Headers: []string{"A", "B"},
		Rows:    [][]string{{"1", "2"}},
	}, blocks[0])
}

func TestParseTableStopsAtLineWithoutPipe(t *testing.T) {
	input := "| Op | Cost |\n|----|------|\n| Access | O(1) |\n| Search | O(n) |\nAfter the table"
	blocks := Parse(input)
	require.Len(t, blocks, 2)

	table, ok := blocks[0].(Table)
	require.True(t, ok)
	assert.Equal(t, []string{"Op", "Cost"}, table.Headers)
	assert.Equal(t, [][]string{{"Access", "O(1)"}, {"Search", "O(n)"}}, table.Rows)
	assert.Equal(t, Paragraph{Spans: []Span{{Kind: Plain, Text: "After the table"}}}, blocks[1])
}

func TestParseTableKeepsUnevenRows(t *testing.T) {
	blocks := Parse("| A | B | C |\n|---|---|---|\n| 1 |\n| 1 | 2 | 3 | 4 |")
	require.Len(t, blocks, 1)
	table := blocks[0].(Table)
	assert.Equal(t, [][]string{{"1"}, {"1", "2", "3", "4"}}, table.Rows)
}

func TestParsePipeWithoutSeparatorIsParagraph(t *testing.T) {
	blocks := Parse("a | b\nc | d")
	require.Len(t, blocks, 2)
	assert.IsType(t, Paragraph{}, blocks[0])
	assert.IsType(t, Paragraph{}, blocks[1])
}

func TestParseListOrderedness(t *testing.T) {
	ordered := Parse("1. First\n2. Second")
	unordered := Parse("- First\n- Second")
	require.Len(t, ordered, 1)
	require.Len(t, unordered, 1)

	ol := ordered[0].(List)
	ul := unordered[0].(List)
	assert.True(t, ol.Ordered)
	assert.False(t, ul.Ordered)

	want := [][]Span{{{Kind: Plain, Text: "First"}}, {{Kind: Plain, Text: "Second"}}}
	assert.Equal(t, want, ol.Items)
	assert.Equal(t, want, ul.Items)
}

func TestParseListOrderednessFixedByFirstLine(t *testing.T) {
	blocks := Parse("- dash\n2. number")
	require.Len(t, blocks, 1)
	l := blocks[0].(List)
	assert.False(t, l.Ordered)
	assert.Len(t, l.Items, 2)
}

func TestParseListIndentedLineBecomesNewItem(t *testing.T) {
	blocks := Parse("- first\n  continued here\n- second")
	require.Len(t, blocks, 1)
	l := blocks[0].(List)
	require.Len(t, l.Items, 3)
	assert.Equal(t, "continued here", PlainText(l.Items[1]))
}

func TestParseListItemsAreInlineFormatted(t *testing.T) {
	blocks := Parse("- **Fixed-size** arrays")
	require.Len(t, blocks, 1)
	l := blocks[0].(List)
	assert.Equal(t, []Span{{Kind: Bold, Text: "Fixed-size"}, {Kind: Plain, Text: " arrays"}}, l.Items[0])
}

func TestParseBlankLinesEmitNothing(t *testing.T) {
	blocks := Parse("\n\n  first  \n\n\n   \nsecond\n\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, "first  ", PlainText(blocks[0].(Paragraph).Spans))
	assert.Equal(t, "second", PlainText(blocks[1].(Paragraph).Spans))
}

func TestParseEmpty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   \n\t\n"))
}

func TestParseCRLF(t *testing.T) {
	blocks := Parse("# Title\r\nbody\r\n")
	require.Len(t, blocks, 2)
	assert.Equal(t, Heading{Level: 1, Text: "Title"}, blocks[0])
}

func TestParseBlockCountBound(t *testing.T) {
	inputs := []string{
		"# a\n\nb\n- c\n- d\n\n| x | y |\n|---|---|\n| 1 | 2 |",
		"1. one\n  two\n3. three\n\n## four",
		"|\n---\n|\n|\n",
		"- \n- \n",
		strings.Repeat("line\n\n", 50),
	}

	for _, in := range inputs {
		nonBlank := 0
		for _, line := range strings.Split(in, "\n") {
			if strings.TrimSpace(line) != "" {
				nonBlank++
			}
		}
		assert.LessOrEqual(t, len(Parse(in)), nonBlank, "input %q", in)
	}
}

func TestParseParagraphIdempotence(t *testing.T) {
	first := Parse("Arrays are **fast** and `cheap`.")
	require.Len(t, first, 1)
	p := first[0].(Paragraph)

	again := Parse(PlainText(p.Spans))
	require.Len(t, again, 1)
	assert.IsType(t, Paragraph{}, again[0])
	assert.Equal(t, PlainText(p.Spans), PlainText(again[0].(Paragraph).Spans))
}

func TestParseMixedLesson(t *testing.T) {
	input := `
# Arrays

Arrays are **fast**.

| Op | Cost |
|---|---|
| Access | O(1) |`

	blocks := Parse(input)
	require.Len(t, blocks, 3)
	assert.Equal(t, Heading{Level: 1, Text: "Arrays"}, blocks[0])
	assert.Equal(t, Paragraph{Spans: []Span{
		{Kind: Plain, Text: "Arrays are "},
		{Kind: Bold, Text: "fast"},
		{Kind: Plain, Text: "."},
	}}, blocks[1])
	assert.Equal(t, Table{
		Headers: []string{"Op", "Cost"},
		Rows:    [][]string{{"Access", "O(1)"}},
	}, blocks[2])
}
