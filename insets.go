package tui

// Insets is the shared shape behind the CSS-like box model: a widget's
// outer bounds are carved up as Margin, then Border (0 or 1 cell per
// edge), then Padding, down to its content area. Margin and Padding are
// both Insets; Border is tracked separately since it also draws glyphs.
type Insets struct {
	Top, Right, Bottom, Left int
}

// NewInsets builds an Insets from 1, 2 or 4 values, following the CSS
// shorthand convention:
//
//	NewInsets(n)             -> all four edges n
//	NewInsets(v, h)          -> top/bottom v, left/right h
//	NewInsets(t, r, b, l)    -> each edge explicit
//
// Any other argument count panics; it indicates a programming error at
// the call site, not a runtime condition callers should recover from.
func NewInsets(values ...int) Insets {
	switch len(values) {
	case 1:
		return Insets{values[0], values[0], values[0], values[0]}
	case 2:
		return Insets{values[0], values[1], values[0], values[1]}
	case 4:
		return Insets{values[0], values[1], values[2], values[3]}
	default:
		panic("tui: Insets shorthand takes 1, 2 or 4 values")
	}
}

// Horizontal is the combined left+right inset.
func (i Insets) Horizontal() int { return i.Left + i.Right }

// Vertical is the combined top+bottom inset.
func (i Insets) Vertical() int { return i.Top + i.Bottom }

// IsZero reports whether the insets are all zero.
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}

// Add returns the element-wise sum of two Insets, used to combine
// margin+border+padding into a single deduction from an outer rect.
func (i Insets) Add(other Insets) Insets {
	return Insets{
		Top:    i.Top + other.Top,
		Right:  i.Right + other.Right,
		Bottom: i.Bottom + other.Bottom,
		Left:   i.Left + other.Left,
	}
}
