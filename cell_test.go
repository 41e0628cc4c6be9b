package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func redOnBlack() Style {
	return NewStyle().Foreground(Named("red")).Background(Named("black"))
}

// Scenario A from the render-pipeline testable properties: a 3x1 buffer
// gets "AB" written at (0,0); diffing against an empty baseline should
// report exactly the two changed cells.
func TestDiffBasic(t *testing.T) {
	area := NewRect(0, 0, 3, 1)
	previous := NewBuffer(area)
	current := NewBuffer(area)
	current.SetText(0, 0, NewLine("AB"), 3)
	updates, err := Diff(previous, current)
	assert.NoError(t, err)
	assert.Len(t, updates, 2)
	assert.Equal(t, CellUpdate{X: 0, Y: 0, Cell: Cell{Symbol: "A"}}, updates[0])
	assert.Equal(t, CellUpdate{X: 1, Y: 0, Cell: Cell{Symbol: "B"}}, updates[1])
}

// Scenario B: a wide CJK glyph claims two columns, marking the second as
// a skip cell; replacing it with a narrow glyph clears the skip flag.
func TestDiffWideGlyph(t *testing.T) {
	area := NewRect(0, 0, 3, 1)
	buf := NewBuffer(area)
	buf.SetSymbol(0, 0, "漢", NewStyle())

	c0, _ := buf.Get(0, 0)
	c1, _ := buf.Get(1, 0)
	c2, _ := buf.Get(2, 0)
	assert.Equal(t, "漢", c0.Symbol)
	assert.False(t, c0.Skip)
	assert.Equal(t, "", c1.Symbol)
	assert.True(t, c1.Skip)
	assert.Equal(t, emptyCell, c2)

	buf.SetSymbol(0, 0, "X", NewStyle())
	c0, _ = buf.Get(0, 0)
	c1, _ = buf.Get(1, 0)
	assert.Equal(t, "X", c0.Symbol)
	assert.Equal(t, " ", c1.Symbol)
	assert.False(t, c1.Skip)
}

func TestDiffMismatchedAreas(t *testing.T) {
	a := NewBuffer(NewRect(0, 0, 3, 3))
	b := NewBuffer(NewRect(0, 0, 4, 3))
	_, err := Diff(a, b)
	assert.Error(t, err)
	var mismatch *BufferMismatch
	assert.ErrorAs(t, err, &mismatch)
}

// Invariant 1: writes followed by Reset yield an empty buffer.
func TestBufferResetIsEmpty(t *testing.T) {
	area := NewRect(0, 0, 5, 5)
	buf := NewBuffer(area)
	buf.SetText(0, 0, NewLine("hello"), 5)
	buf.Reset()
	empty := NewBuffer(area)
	for y := range area.Height {
		for x := range area.Width {
			a, _ := buf.Get(x, y)
			b, _ := empty.Get(x, y)
			assert.Equal(t, b, a)
		}
	}
}

// Invariant 2: applying diff(P, C) onto a copy of P yields C.
func TestDiffApplyRoundTrip(t *testing.T) {
	area := NewRect(0, 0, 6, 2)
	previous := NewBuffer(area)
	current := NewBuffer(area)
	current.SetText(0, 0, NewLine("abcdef"), 6)
	current.SetText(0, 1, Line{Spans: []Span{{Content: "zz", Style: redOnBlack()}}}, 6)

	updates, err := Diff(previous, current)
	assert.NoError(t, err)

	applied := NewBuffer(area)
	for _, u := range updates {
		applied.Set(u.X, u.Y, u.Cell)
	}
	for y := range area.Height {
		for x := range area.Width {
			want, _ := current.Get(x, y)
			got, _ := applied.Get(x, y)
			assert.Equal(t, want, got)
		}
	}
}
