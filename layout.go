package tui

// Dock arranges up to four fixed-size bands (top, bottom by height,
// left, right by width) around a filling center area, as a reduction
// onto two Layout.Split calls: first vertical [top, fill, bottom], then
// horizontal [left, fill, right] on the resulting middle band. A zero
// size omits that side entirely (it contributes no constraint).
type Dock struct {
	Top, Bottom, Left, Right int
}

// DockAreas is the five named regions a Dock produces: the four fixed
// bands (zero Rects when that side's size is zero) and the remaining
// Center.
type DockAreas struct {
	Top, Bottom, Left, Right, Center Rect
}

func (d Dock) Split(rect Rect) DockAreas {
	var vConstraints []Constraint
	hasTop, hasBottom := d.Top > 0, d.Bottom > 0
	if hasTop {
		vConstraints = append(vConstraints, Length(d.Top))
	}
	vConstraints = append(vConstraints, Fill(1))
	if hasBottom {
		vConstraints = append(vConstraints, Length(d.Bottom))
	}
	vRects := NewLayout(Vertical, vConstraints...).Split(rect)

	var areas DockAreas
	idx := 0
	if hasTop {
		areas.Top = vRects[idx]
		idx++
	}
	middle := vRects[idx]
	idx++
	if hasBottom {
		areas.Bottom = vRects[idx]
	}

	var hConstraints []Constraint
	hasLeft, hasRight := d.Left > 0, d.Right > 0
	if hasLeft {
		hConstraints = append(hConstraints, Length(d.Left))
	}
	hConstraints = append(hConstraints, Fill(1))
	if hasRight {
		hConstraints = append(hConstraints, Length(d.Right))
	}
	hRects := NewLayout(Horizontal, hConstraints...).Split(middle)

	idx = 0
	if hasLeft {
		areas.Left = hRects[idx]
		idx++
	}
	areas.Center = hRects[idx]
	idx++
	if hasRight {
		areas.Right = hRects[idx]
	}
	return areas
}

// StackLayout is painter's-algorithm order: every layer renders into the
// full area, later layers drawn last win visually, and (per the popup
// layer convention in runner.go) hit-testing walks layers top-down.
type StackLayout struct{}

// Split returns n copies of rect: a Stack has no geometric partitioning
// of its own, every layer occupies the same area.
func (StackLayout) Split(rect Rect, n int) []Rect {
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = rect
	}
	return rects
}

// Order controls how a linear child index maps onto (row, column) in a
// Grid/Columns layout.
type Order int

const (
	RowFirst Order = iota
	ColumnFirst
)

// Resolve maps child index i onto a (row, col) pair for a grid of the
// given row/column count.
func (o Order) Resolve(i, rows, cols int) (row, col int) {
	if o == ColumnFirst {
		return i % rows, i / rows
	}
	return i / cols, i % cols
}

// Grid lays out a fixed number of rows and columns, with optional
// explicit row-height/column-width constraints (Fill(1) for any row or
// column left unspecified), as a reduction onto one vertical Split for
// rows and one horizontal Split per row for columns.
type Grid struct {
	Rows, Columns     int
	RowSizes          []Constraint
	ColumnSizes       []Constraint
	Order             Order
}

// CellSpan places a child at (row, col) spanning rowSpan x colSpan grid
// cells; the returned Rect is the union of the spanned grid cells.
type CellSpan struct {
	Row, Col, RowSpan, ColSpan int
}

func fillTo(sizes []Constraint, n int) []Constraint {
	if len(sizes) >= n {
		return sizes[:n]
	}
	out := make([]Constraint, n)
	copy(out, sizes)
	for i := len(sizes); i < n; i++ {
		out[i] = Fill(1)
	}
	return out
}

// Split computes the Rect for every cell in the grid, then unions the
// spanned cells for each requested CellSpan, in the order given.
func (g Grid) Split(rect Rect, spans []CellSpan) []Rect {
	rowConstraints := fillTo(g.RowSizes, g.Rows)
	colConstraints := fillTo(g.ColumnSizes, g.Columns)

	rowRects := NewLayout(Vertical, rowConstraints...).Split(rect)
	cellRects := make([][]Rect, g.Rows)
	for r, rowRect := range rowRects {
		cellRects[r] = NewLayout(Horizontal, colConstraints...).Split(rowRect)
	}

	out := make([]Rect, len(spans))
	for i, s := range spans {
		var area Rect
		for r := s.Row; r < s.Row+s.RowSpan && r < g.Rows; r++ {
			for c := s.Col; c < s.Col+s.ColSpan && c < g.Columns; c++ {
				area = area.Union(cellRects[r][c])
			}
		}
		out[i] = area
	}
	return out
}

// FlowItem is one element placed by a Flow layout: its preferred size
// in cells.
type FlowItem struct {
	Width, Height int
}

// Flow lays items left-to-right, wrapping to a new row (advanced by the
// tallest item seen on the current row, plus Gap) whenever the next item
// would cross the right edge and the cursor is not already at the row
// start.
type Flow struct {
	Gap int
}

func (f Flow) Split(rect Rect, items []FlowItem) []Rect {
	out := make([]Rect, len(items))
	x, y := rect.X, rect.Y
	rowHeight := 0
	atRowStart := true
	for i, item := range items {
		if !atRowStart && x+item.Width > rect.Right() {
			y += rowHeight + f.Gap
			x = rect.X
			rowHeight = 0
			atRowStart = true
		}
		out[i] = NewRect(x, y, item.Width, item.Height)
		x += item.Width + f.Gap
		rowHeight = max(rowHeight, item.Height)
		atRowStart = false
	}
	return out
}
