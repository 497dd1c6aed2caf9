package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpans(t *testing.T) {
	text := "Some people argues that it is dangerous. This claims is wrong."

	tests := []struct {
		name  string
		spans []Span
		want  string
	}{
		{
			name:  "Zero spans returns text unchanged",
			spans: nil,
			want:  text,
		},
		{
			name:  "Single span wraps the matched segment",
			spans: []Span{{Offset: 12, Length: 6}},
			want:  `Some people <span class="grammar-error">argues</span> that it is dangerous. This claims is wrong.`,
		},
		{
			name: "Out of bounds spans are dropped",
			spans: []Span{
				{Offset: -1, Length: 3},
				{Offset: 12, Length: 6},
				{Offset: len(text) - 2, Length: 10},
				{Offset: 5, Length: 0},
			},
			want: `Some people <span class="grammar-error">argues</span> that it is dangerous. This claims is wrong.`,
		},
		{
			name: "Overlapping spans keep the lowest offset",
			spans: []Span{
				{Offset: 12, Length: 6},
				{Offset: 14, Length: 8},
			},
			want: `Some people <span class="grammar-error">argues</span> that it is dangerous. This claims is wrong.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Spans(text, tt.spans))
		})
	}
}

func TestSpans_InputOrderInvariant(t *testing.T) {
	text := "aaaa bbbb cccc dddd eeee"
	ascending := []Span{{Offset: 0, Length: 4}, {Offset: 10, Length: 4}, {Offset: 20, Length: 4}}
	descending := []Span{{Offset: 20, Length: 4}, {Offset: 10, Length: 4}, {Offset: 0, Length: 4}}
	shuffled := []Span{{Offset: 10, Length: 4}, {Offset: 20, Length: 4}, {Offset: 0, Length: 4}}

	want := Spans(text, ascending)
	assert.Equal(t, want, Spans(text, descending))
	assert.Equal(t, want, Spans(text, shuffled))
}

// Splicing only inserts markup: the output length grows by exactly the
// markup overhead per span and stripping the markup restores the input.
func TestSpans_PreservesOriginalText(t *testing.T) {
	text := "However, some people argues that it is dangerous.\nThis claims is inaccurate."
	spans := []Span{
		{Offset: 21, Length: 6},
		{Offset: 56, Length: 6},
		{Offset: 9, Length: 4},
	}

	marked := Spans(text, spans)

	require.Len(t, marked, len(text)+len(spans)*Overhead)
	assert.Equal(t, text, Strip(marked))
}

func TestHTML(t *testing.T) {
	t.Run("Newlines become breaks even with zero spans", func(t *testing.T) {
		assert.Equal(t, "line one<br>line two", HTML("line one\nline two", nil))
	})

	t.Run("Highlighting and newline conversion compose", func(t *testing.T) {
		got := HTML("bad\ngood", []Span{{Offset: 0, Length: 3}})
		assert.Equal(t, `<span class="grammar-error">bad</span><br>good`, got)
	})
}
