package tui

import "github.com/rivo/uniseg"

// Span is a run of text sharing a single Style.
type Span struct {
	Content string
	Style   Style
}

// NewSpan wraps content in the zero Style.
func NewSpan(content string) Span { return Span{Content: content} }

// Width returns the span's display width in terminal columns, computed
// grapheme-cluster by grapheme-cluster so that wide CJK glyphs count as
// 2 and zero-width joiners/combining marks count as 0, matching what the
// buffer's wide-glyph skip-cell convention (cell.go) expects.
func (s Span) Width() int {
	return stringWidth(s.Content)
}

func stringWidth(s string) int {
	width := 0
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		var w int
		cluster, remaining, w, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		width += w
	}
	return width
}

// Line is a sequence of Spans rendered on one row.
type Line struct {
	Spans     []Span
	Alignment Alignment
}

// NewLine builds a Line from a plain string as a single unstyled Span.
func NewLine(content string) Line {
	return Line{Spans: []Span{NewSpan(content)}}
}

// Width returns the sum of the widths of the line's spans.
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// Text is a block of Lines, rendered top to bottom.
type Text struct {
	Lines []Line
}

// NewText splits content on "\n" into unstyled Lines.
func NewText(content string) Text {
	var t Text
	start := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			t.Lines = append(t.Lines, NewLine(content[start:i]))
			start = i + 1
		}
	}
	return t
}

// Width returns the widest line's width.
func (t Text) Width() int {
	w := 0
	for _, l := range t.Lines {
		w = max(w, l.Width())
	}
	return w
}

// Height returns the number of lines.
func (t Text) Height() int { return len(t.Lines) }
