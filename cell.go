package tui

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// Cell is a single terminal grid position: the grapheme cluster it
// displays, the Style it is painted with, and whether it is a
// continuation ("skip") cell trailing a wide glyph in the column to its
// left. A skip cell carries no symbol of its own; the renderer must
// never write directly into one, since its content is owned by the wide
// glyph that produced it.
type Cell struct {
	Symbol string
	Style  Style
	Skip   bool
}

// emptyCell is what Buffer.Reset fills every position with: a single
// space in the zero Style.
var emptyCell = Cell{Symbol: " "}

// Buffer is a rectangular grid of Cells addressed by absolute screen
// coordinates matching its Area. It holds no diff state of its own;
// Terminal keeps a previous/current pair and diffs between them.
type Buffer struct {
	Area  Rect
	cells []Cell
}

// NewBuffer allocates a Buffer for area, filled with emptyCell.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{Area: area}
	b.Resize(area)
	return b
}

// Resize reallocates the buffer for a new area and clears it. Existing
// content is not preserved; callers that need to preserve content across
// a resize (none currently do — a resize is always followed by a full
// redraw) would need to copy the overlapping region themselves.
func (b *Buffer) Resize(area Rect) {
	b.Area = area
	b.cells = make([]Cell, area.Width*area.Height)
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
}

// Reset fills every cell back to emptyCell without reallocating.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
}

func (b *Buffer) index(x, y int) (int, bool) {
	if x < b.Area.X || y < b.Area.Y || x >= b.Area.Right() || y >= b.Area.Bottom() {
		return 0, false
	}
	row := y - b.Area.Y
	col := x - b.Area.X
	return row*b.Area.Width + col, true
}

// Get returns the cell at (x, y) and whether that position is within
// the buffer's area.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Set writes a cell at (x, y). Out-of-bounds writes are silently
// dropped: a widget rendering past its allotted rect should be clipped
// by the caller, but Set itself never panics over it.
func (b *Buffer) Set(x, y int, cell Cell) {
	i, ok := b.index(x, y)
	if !ok {
		return
	}
	b.cells[i] = cell
}

// SetSymbol writes a single grapheme cluster at (x, y) with the given
// style. If the glyph is double-width, the column to the right is marked
// as a Skip continuation cell, per the wide-glyph buffer convention.
// Combining marks and zero-width joiners are appended to the existing
// symbol at (x, y) rather than starting a new cell, so that a base rune
// followed by ZWJ sequences renders as one grapheme cluster.
func (b *Buffer) SetSymbol(x, y int, symbol string, style Style) {
	width := stringWidth(symbol)
	if width == 0 {
		if cell, ok := b.Get(x, y); ok {
			cell.Symbol += symbol
			b.Set(x, y, cell)
		}
		return
	}

	if old, ok := b.Get(x, y); ok {
		if old.Skip {
			// x held the trailing half of a wide glyph; writing here
			// clears that glyph's head back to a space.
			b.Set(x-1, y, emptyCell)
		} else if stringWidth(old.Symbol) > 1 {
			// x held the head of a wide glyph being overwritten by a
			// narrower one; its stale trailing skip cell must go too.
			b.Set(x+1, y, emptyCell)
		}
	}

	b.Set(x, y, Cell{Symbol: symbol, Style: style})
	if width > 1 {
		b.Set(x+1, y, Cell{Symbol: "", Style: style, Skip: true})
	}
}

// SetText writes a Line starting at (x, y), clipped to maxWidth columns.
// It returns the number of columns actually consumed.
func (b *Buffer) SetText(x, y int, line Line, maxWidth int) int {
	col := 0
	for _, span := range line.Spans {
		for _, g := range graphemes(span.Content) {
			w := stringWidth(g)
			if col+w > maxWidth {
				return col
			}
			b.SetSymbol(x+col, y, g, span.Style)
			col += w
		}
	}
	return col
}

func graphemes(s string) []string {
	var out []string
	state := -1
	remaining := s
	for len(remaining) > 0 {
		var cluster string
		cluster, remaining, _, state = uniseg.FirstGraphemeClusterInString(remaining, state)
		if cluster == "" {
			break
		}
		out = append(out, cluster)
	}
	return out
}

// CellUpdate is one position that changed between two Buffers: the
// coordinate and the new cell content to write there.
type CellUpdate struct {
	X, Y int
	Cell Cell
}

// BufferMismatch is returned by Diff when the two buffers do not cover
// the same Area; a diff is only meaningful between buffers of identical
// shape.
type BufferMismatch struct {
	Previous, Current Rect
}

func (e *BufferMismatch) Error() string {
	return fmt.Sprintf("tui: cannot diff buffers of different areas: %s vs %s", e.Previous, e.Current)
}

// Diff compares previous against current cell by cell and returns the
// minimal set of CellUpdates needed to turn previous's on-screen content
// into current's. Cells that compare equal are omitted entirely, which
// is what lets Terminal.Draw only write the part of the screen that
// actually changed. Grounded on the buffer-to-buffer comparison loop a
// double-buffered screen renderer runs once per frame before flushing.
func Diff(previous, current *Buffer) ([]CellUpdate, error) {
	if previous.Area != current.Area {
		return nil, &BufferMismatch{Previous: previous.Area, Current: current.Area}
	}
	var updates []CellUpdate
	area := current.Area
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			prev, _ := previous.Get(x, y)
			next, _ := current.Get(x, y)
			if prev == next {
				continue
			}
			updates = append(updates, CellUpdate{X: x, Y: y, Cell: next})
		}
	}
	return updates, nil
}
