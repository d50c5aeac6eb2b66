package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Span
	}{
		{
			name:  "bold and code",
			input: "Use **bold** and `code`",
			want: []Span{
				{Kind: Plain, Text: "Use "},
				{Kind: Bold, Text: "bold"},
				{Kind: Plain, Text: " and "},
				{Kind: Code, Text: "code"},
			},
		},
		{
			name:  "plain only",
			input: "nothing special",
			want:  []Span{{Kind: Plain, Text: "nothing special"}},
		},
		{
			name:  "whole string bold",
			input: "**all**",
			want:  []Span{{Kind: Bold, Text: "all"}},
		},
		{
			name:  "code inside bold stays literal",
			input: "**bold `code` text**",
			want:  []Span{{Kind: Bold, Text: "bold `code` text"}},
		},
		{
			name:  "unclosed delimiters",
			input: "a **b and `c",
			want:  []Span{{Kind: Plain, Text: "a **b and `c"}},
		},
		{
			name:  "empty delimiters are literal",
			input: "**** and ``",
			want:  []Span{{Kind: Plain, Text: "**** and ``"}},
		},
		{
			name:  "adjacent runs",
			input: "**a**`b`**c**",
			want: []Span{
				{Kind: Bold, Text: "a"},
				{Kind: Code, Text: "b"},
				{Kind: Bold, Text: "c"},
			},
		},
		{
			name:  "star inside bold breaks the run",
			input: "**a*b**",
			want:  []Span{{Kind: Plain, Text: "**a*b**"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInline(tt.input))
		})
	}
}

func TestFormatInlineEmpty(t *testing.T) {
	assert.Empty(t, FormatInline(""))
}

func TestFormatInlineCoversNonDelimiterText(t *testing.T) {
	inputs := []string{
		"Use **bold** and `code`",
		"`arr[i]` is **O(1)** time, `push` is amortized",
		"**a** `b` **c** d",
		"no markup at all",
	}

	for _, in := range inputs {
		spans := FormatInline(in)
		stripped := strings.ReplaceAll(strings.ReplaceAll(in, "**", ""), "`", "")
		assert.Equal(t, stripped, PlainText(spans), "input %q", in)
	}
}

func TestSpanKindString(t *testing.T) {
	assert.Equal(t, "plain", Plain.String())
	assert.Equal(t, "bold", Bold.String())
	assert.Equal(t, "code", Code.String())
}
