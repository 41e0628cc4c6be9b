package tui

import "fmt"

// ConstraintKind discriminates the Constraint sum type.
type ConstraintKind int

const (
	ConstraintLength ConstraintKind = iota
	ConstraintPercentage
	ConstraintRatio
	ConstraintMin
	ConstraintMax
	ConstraintFill
)

// Constraint is one segment's sizing rule against a total length, used
// by the 1-D solver in Layout.Split.
type Constraint struct {
	Kind ConstraintKind
	// N is the value for Length, Percentage, Min, Max and the weight for
	// Fill. RatioNum/RatioDen are used only by ConstraintRatio.
	N                  int
	RatioNum, RatioDen int
}

func Length(n int) Constraint     { return Constraint{Kind: ConstraintLength, N: n} }
func Percentage(p int) Constraint { return Constraint{Kind: ConstraintPercentage, N: p} }
func Ratio(num, den int) Constraint {
	return Constraint{Kind: ConstraintRatio, RatioNum: num, RatioDen: den}
}
func Min(n int) Constraint  { return Constraint{Kind: ConstraintMin, N: n} }
func Max(n int) Constraint  { return Constraint{Kind: ConstraintMax, N: n} }
func Fill(weight int) Constraint { return Constraint{Kind: ConstraintFill, N: weight} }

// minMax computes a constraint's (min, max) bound against total length l.
func (c Constraint) minMax(l int) (int, int) {
	switch c.Kind {
	case ConstraintLength:
		return c.N, c.N
	case ConstraintPercentage:
		v := l * c.N / 100
		return v, v
	case ConstraintRatio:
		v := l * c.RatioNum / c.RatioDen
		return v, v
	case ConstraintMin:
		return c.N, l
	case ConstraintMax:
		return 0, c.N
	case ConstraintFill:
		return 0, l
	default:
		return 0, l
	}
}

// Flex is the leftover-space distribution mode applied after Fill
// constraints have claimed their proportional share.
type Flex int

const (
	FlexStart Flex = iota
	FlexCenter
	FlexEnd
	FlexSpaceBetween
	FlexSpaceAround
	FlexSpaceEvenly
	FlexLegacy
)

// Spacing is the inter-segment gap: a positive Space inserts that many
// cells between segments; a negative Overlap pulls each following
// segment back by that many cells (never past zero length).
type Spacing struct {
	Space, Overlap int
}

// SpaceOf returns a Spacing that inserts n cells between segments.
func SpaceOf(n int) Spacing { return Spacing{Space: n} }

// OverlapOf returns a Spacing that overlaps segments by n cells.
func OverlapOf(n int) Spacing { return Spacing{Overlap: n} }

// segment is one resolved output of the solver: offset and length along
// the solved dimension.
type segment struct {
	start, length int
}

// solve runs the 1-D constraint solver described for Layout.Split:
// compute bounds, allocate minimums (shrinking proportionally if they
// overflow l), distribute the Fill-weighted remainder, then apply Flex
// padding and Spacing gaps. Returns the resolved (start, length) pairs in
// constraint order. Panics if constraints is empty; NewLayout and
// Layout.Split both reject that case before reaching here.
func solve(constraints []Constraint, l int, flex Flex, spacing Spacing) []segment {
	n := len(constraints)
	if n == 0 {
		panic("tui: solve requires at least one constraint")
	}

	// Step 5 (gap budget first): positive spacing is removed from the
	// available length before allocation; negative spacing (overlap) is
	// applied after, by pulling segment starts back.
	gapBudget := 0
	if spacing.Space > 0 {
		gapBudget = spacing.Space * (n - 1)
	}
	available := l - gapBudget
	if available < 0 {
		available = 0
	}

	// Step 1: bounds.
	mins := make([]int, n)
	maxs := make([]int, n)
	for i, c := range constraints {
		mins[i], maxs[i] = c.minMax(available)
	}

	// Step 2: allocate minimums; shrink proportionally in declaration
	// order if they overflow the available length.
	sizes := make([]int, n)
	copy(sizes, mins)
	sum := 0
	for _, m := range mins {
		sum += m
	}
	if sum > available && sum > 0 {
		excess := sum - available
		for i := range sizes {
			if excess <= 0 {
				break
			}
			share := sizes[i] * excess / sum
			if share > sizes[i] {
				share = sizes[i]
			}
			sizes[i] -= share
		}
		// Any remainder left by integer rounding is trimmed from the
		// segments in declaration order until the sum matches exactly.
		total := 0
		for _, s := range sizes {
			total += s
		}
		over := total - available
		for i := 0; over > 0 && i < n; i++ {
			if sizes[i] == 0 {
				continue
			}
			cut := min(over, sizes[i])
			sizes[i] -= cut
			over -= cut
		}
	}

	// Step 3: distribute the remainder across Fill constraints by
	// weight, ties (and rounding remainders) broken by declaration order.
	used := 0
	for _, s := range sizes {
		used += s
	}
	leftover := available - used
	if leftover > 0 {
		totalWeight := 0
		var fillIdx []int
		for i, c := range constraints {
			if c.Kind == ConstraintFill {
				w := c.N
				if w < 1 {
					w = 1
				}
				totalWeight += w
				fillIdx = append(fillIdx, i)
			}
		}
		if totalWeight > 0 {
			distributed := 0
			shares := make([]int, len(fillIdx))
			for j, i := range fillIdx {
				w := constraints[i].N
				if w < 1 {
					w = 1
				}
				share := leftover * w / totalWeight
				cap := maxs[i] - sizes[i]
				if share > cap {
					share = cap
				}
				shares[j] = share
				distributed += share
			}
			remainder := leftover - distributed
			for j := 0; remainder > 0 && j < len(fillIdx); j++ {
				i := fillIdx[j]
				cap := maxs[i] - sizes[i] - shares[j]
				if cap <= 0 {
					continue
				}
				shares[j]++
				remainder--
			}
			for j, i := range fillIdx {
				sizes[i] += shares[j]
			}
			used = 0
			for _, s := range sizes {
				used += s
			}
			leftover = available - used
		}
	}

	// Step 4: apply Flex to whatever leftover remains (e.g. no Fill
	// constraints present, or Fill maxed out below its weighted share).
	gaps := make([]int, n+1) // gaps[i] precedes segment i; gaps[n] is the trailing gap
	switch flex {
	case FlexStart, FlexLegacy:
		// no extra padding
	case FlexEnd:
		gaps[0] = leftover
	case FlexCenter:
		gaps[0] = leftover / 2
		gaps[n] = leftover - gaps[0]
	case FlexSpaceBetween:
		if n > 1 {
			each := leftover / (n - 1)
			rem := leftover - each*(n-1)
			for i := 1; i < n; i++ {
				gaps[i] = each
				if i <= rem {
					gaps[i]++
				}
			}
		} else {
			gaps[0] = leftover
		}
	case FlexSpaceAround:
		each := leftover / n
		rem := leftover - each*n
		gaps[0] = each / 2
		for i := 1; i < n; i++ {
			gaps[i] = each
		}
		gaps[n] = each - gaps[0] + rem
	case FlexSpaceEvenly:
		each := leftover / (n + 1)
		rem := leftover - each*(n+1)
		for i := 0; i <= n; i++ {
			gaps[i] = each
			if i < rem {
				gaps[i]++
			}
		}
	}

	// Assemble segments: running offset, positive Space between
	// segments, negative Overlap pulling each start back (never below
	// the previous segment's own start plus zero length).
	result := make([]segment, n)
	offset := gaps[0]
	for i := 0; i < n; i++ {
		if i > 0 {
			offset += gaps[i]
			if spacing.Space > 0 {
				offset += spacing.Space
			} else if spacing.Overlap > 0 {
				offset -= spacing.Overlap
				if offset < result[i-1].start {
					offset = result[i-1].start
				}
			}
		}
		result[i] = segment{start: offset, length: sizes[i]}
		offset += sizes[i]
	}
	return result
}

// Layout describes a 1-D (and, composed, 2-D) arrangement: a direction,
// the per-segment constraints, a Flex mode, inter-segment Spacing and an
// outer Margin applied before solving.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Flex        Flex
	Spacing     Spacing
	Margin      Insets
}

// NewLayout builds a Layout for dir with the given constraints. It
// panics if constraints is empty: per the error-handling design, an
// invalid Layout is rejected at construction, not deep inside Split.
func NewLayout(dir Direction, constraints ...Constraint) Layout {
	if len(constraints) == 0 {
		panic("tui: Layout requires at least one constraint")
	}
	return Layout{Direction: dir, Constraints: constraints}
}

func (l Layout) WithFlex(f Flex) Layout         { l.Flex = f; return l }
func (l Layout) WithSpacing(s Spacing) Layout    { l.Spacing = s; return l }
func (l Layout) WithMargin(m Insets) Layout      { l.Margin = m; return l }

// Split partitions rect along l.Direction using the 1-D solver; the
// orthogonal dimension passes through unchanged. Returns one Rect per
// constraint, in constraint-declaration order.
func (l Layout) Split(rect Rect) []Rect {
	if len(l.Constraints) == 0 {
		panic("tui: Layout.Split requires at least one constraint")
	}
	inner := rect.Inset(l.Margin)

	var total int
	if l.Direction == Horizontal {
		total = inner.Width
	} else {
		total = inner.Height
	}

	segments := solve(l.Constraints, total, l.Flex, l.Spacing)

	rects := make([]Rect, len(segments))
	for i, seg := range segments {
		if l.Direction == Horizontal {
			rects[i] = NewRect(inner.X+seg.start, inner.Y, seg.length, inner.Height)
		} else {
			rects[i] = NewRect(inner.X, inner.Y+seg.start, inner.Width, seg.length)
		}
	}
	return rects
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout(%s, %d constraints)", l.Direction, len(l.Constraints))
}
