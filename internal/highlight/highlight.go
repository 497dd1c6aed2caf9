// Package highlight splices error markup into essay text by byte offset.
package highlight

import (
	"sort"
	"strings"
)

// Span identifies one error region within a text.
type Span struct {
	Offset int
	Length int
}

const (
	openTag  = `<span class="grammar-error">`
	closeTag = `</span>`
)

// Overhead is the number of bytes the markup adds per highlighted span.
var Overhead = len(openTag) + len(closeTag)

// Spans wraps every span of text in an error marker and returns the marked
// copy. Input spans may arrive in any order. Splicing happens in descending
// offset order so that an insertion never shifts a span that has not been
// processed yet. Spans that fall outside the text are dropped, and when two
// spans overlap only the one with the lower offset is kept.
func Spans(text string, spans []Span) string {
	kept := sanitize(text, spans)

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Offset > kept[j].Offset
	})

	for _, span := range kept {
		end := span.Offset + span.Length
		text = text[:span.Offset] + openTag + text[span.Offset:end] + closeTag + text[end:]
	}
	return text
}

// HTML renders text with spans highlighted and newlines converted to <br>.
// The newline conversion applies even with zero spans so that rendering
// stays consistent for clean essays.
func HTML(text string, spans []Span) string {
	return strings.ReplaceAll(Spans(text, spans), "\n", "<br>")
}

// sanitize drops spans that are out of bounds and resolves overlaps by
// keeping the lowest-offset span of any overlapping group.
func sanitize(text string, spans []Span) []Span {
	ordered := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Offset < 0 || span.Length <= 0 || span.Offset+span.Length > len(text) {
			continue
		}
		ordered = append(ordered, span)
	}

	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].Offset == ordered[j].Offset {
			return ordered[i].Length < ordered[j].Length
		}
		return ordered[i].Offset < ordered[j].Offset
	})

	kept := ordered[:0]
	prevEnd := -1
	for _, span := range ordered {
		if span.Offset < prevEnd {
			continue
		}
		kept = append(kept, span)
		prevEnd = span.Offset + span.Length
	}
	return kept
}

// Strip removes every error marker from marked text, reconstructing the
// text that was highlighted.
func Strip(marked string) string {
	marked = strings.ReplaceAll(marked, openTag, "")
	return strings.ReplaceAll(marked, closeTag, "")
}
