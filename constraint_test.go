package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Scenario C: horizontal [Length(3), Fill(1), Length(5)] against a
// 20-wide rect yields widths 3, 12, 5 at x 0, 3, 15.
func TestLayoutSplitScenarioC(t *testing.T) {
	layout := NewLayout(Horizontal, Length(3), Fill(1), Length(5))
	rects := layout.Split(NewRect(0, 0, 20, 1))
	assert.Equal(t, []Rect{
		NewRect(0, 0, 3, 1),
		NewRect(3, 0, 12, 1),
		NewRect(15, 0, 5, 1),
	}, rects)
}

// Scenario D: [Length(4), Length(4)] with Flex=Center against width 10
// centers the pair with a 1-cell pad on each side.
func TestLayoutSplitScenarioDFlexCenter(t *testing.T) {
	layout := NewLayout(Horizontal, Length(4), Length(4)).WithFlex(FlexCenter)
	rects := layout.Split(NewRect(0, 0, 10, 1))
	assert.Equal(t, []Rect{
		NewRect(1, 0, 4, 1),
		NewRect(5, 0, 4, 1),
	}, rects)
}

// Invariant 4: segment sizes plus spacing sum to the total length.
func TestLayoutSplitSumEqualsTotal(t *testing.T) {
	layout := NewLayout(Horizontal, Length(3), Fill(2), Fill(1), Min(2))
	rects := layout.Split(NewRect(0, 0, 37, 1))
	sum := 0
	for _, r := range rects {
		sum += r.Width
	}
	assert.Equal(t, 37, sum)
}

// Invariant 3: sub-rects tile the rect without overlap and preserve the
// orthogonal dimension.
func TestLayoutSplitTilesWithoutOverlap(t *testing.T) {
	layout := NewLayout(Vertical, Length(2), Fill(1), Length(3))
	rects := layout.Split(NewRect(5, 5, 9, 20))
	for _, r := range rects {
		assert.Equal(t, 9, r.Width)
		assert.Equal(t, 5, r.X)
	}
	assert.Equal(t, 5, rects[0].Y)
	assert.Equal(t, rects[0].Bottom(), rects[1].Y)
	assert.Equal(t, rects[1].Bottom(), rects[2].Y)
	assert.Equal(t, 25, rects[2].Bottom())
}

// Round-trip law: solving the same Layout against the same rect twice
// yields identical partitions.
func TestLayoutSplitIsDeterministic(t *testing.T) {
	layout := NewLayout(Horizontal, Length(3), Fill(1), Percentage(20), Min(2), Max(8)).WithSpacing(SpaceOf(1))
	rect := NewRect(0, 0, 50, 1)
	assert.Equal(t, layout.Split(rect), layout.Split(rect))
}

func TestConstraintMinMaxAllocationShrinksProportionally(t *testing.T) {
	layout := NewLayout(Horizontal, Length(10), Length(10), Length(10))
	rects := layout.Split(NewRect(0, 0, 15, 1))
	sum := 0
	for _, r := range rects {
		sum += r.Width
	}
	assert.Equal(t, 15, sum)
}

func TestNewLayoutEmptyConstraintsPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLayout(Horizontal)
	})
}

func TestGridCellSpan(t *testing.T) {
	g := Grid{Rows: 2, Columns: 2}
	rects := g.Split(NewRect(0, 0, 10, 10), []CellSpan{
		{Row: 0, Col: 0, RowSpan: 1, ColSpan: 2},
		{Row: 1, Col: 0, RowSpan: 1, ColSpan: 1},
	})
	assert.Equal(t, 10, rects[0].Width)
	assert.Equal(t, 5, rects[1].Width)
}

func TestDockSplit(t *testing.T) {
	d := Dock{Top: 1, Bottom: 1, Left: 2, Right: 2}
	areas := d.Split(NewRect(0, 0, 20, 10))
	assert.Equal(t, 1, areas.Top.Height)
	assert.Equal(t, 1, areas.Bottom.Height)
	assert.Equal(t, 2, areas.Left.Width)
	assert.Equal(t, 2, areas.Right.Width)
	assert.Equal(t, 16, areas.Center.Width)
	assert.Equal(t, 8, areas.Center.Height)
}

func TestFlowWraps(t *testing.T) {
	f := Flow{Gap: 1}
	rects := f.Split(NewRect(0, 0, 10, 100), []FlowItem{
		{Width: 4, Height: 2},
		{Width: 4, Height: 2},
		{Width: 4, Height: 2},
	})
	assert.Equal(t, 0, rects[0].X)
	assert.Equal(t, 5, rects[1].X)
	assert.Equal(t, 0, rects[2].X)
	assert.Equal(t, rects[0].Bottom()+1, rects[2].Y)
}
