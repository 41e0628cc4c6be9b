package tui

// Modifier is a bitset of text attributes layered on top of a Style's
// colors: bold, italic, underline and so on. Backends map it onto
// whatever SGR codes the terminal understands.
type Modifier uint16

const (
	ModifierBold Modifier = 1 << iota
	ModifierDim
	ModifierItalic
	ModifierUnderlined
	ModifierSlowBlink
	ModifierRapidBlink
	ModifierReversed
	ModifierHidden
	ModifierCrossedOut
)

// Has reports whether every bit set in other is also set in m.
func (m Modifier) Has(other Modifier) bool { return m&other == other }

// Style describes how a cell or span of text is painted: an optional
// foreground, background and underline color, plus a set of modifiers to
// turn on and a set to explicitly turn back off. The "unset" zero value
// of Style means "inherit everything from whatever it is patched onto".
//
// Every field is a plain value, not a pointer, so two Styles built from
// equal inputs compare equal with ==. That matters: Cell embeds a Style,
// and Diff relies on Cell equality to decide which screen positions
// actually changed between frames. A pointer-based "is this channel set"
// representation would make every cell rebuilt on a new frame compare as
// changed even when nothing about it actually changed.
type Style struct {
	fg, bg, underline    Color
	fgSet, bgSet, ulSet  bool
	addModifier          Modifier
	subModifier          Modifier
}

// NewStyle returns the zero Style: no colors, no modifiers, a neutral
// element for Patch.
func NewStyle() Style { return Style{} }

// Foreground, Background and UnderlineColor return new Styles with the
// given color channel set. Style values are immutable from the caller's
// point of view; every setter returns a modified copy.
func (s Style) Foreground(c Color) Style     { s.fg = c; s.fgSet = true; return s }
func (s Style) Background(c Color) Style     { s.bg = c; s.bgSet = true; return s }
func (s Style) UnderlineColor(c Color) Style { s.underline = c; s.ulSet = true; return s }

// AddModifier returns a Style that additionally turns on m, clearing any
// pending removal of the same bits.
func (s Style) AddModifier(m Modifier) Style {
	s.addModifier |= m
	s.subModifier &^= m
	return s
}

// RemoveModifier returns a Style that explicitly turns off m, clearing
// any pending addition of the same bits. This is what lets a patch
// disable a modifier inherited from a less specific style.
func (s Style) RemoveModifier(m Modifier) Style {
	s.subModifier |= m
	s.addModifier &^= m
	return s
}

// Patch layers other on top of s: any channel other sets overrides s's
// value for that channel, and other's modifier add/remove bits are
// applied after s's. Channels other leaves unset fall through from s
// unchanged. This is the single primitive the cascading resolution in
// theme.go is built from: cascading a selector chain is just folding
// Patch over the chain's styles from least to most specific.
func (s Style) Patch(other Style) Style {
	result := s
	if other.fgSet {
		result.fg, result.fgSet = other.fg, true
	}
	if other.bgSet {
		result.bg, result.bgSet = other.bg, true
	}
	if other.ulSet {
		result.underline, result.ulSet = other.underline, true
	}
	result.addModifier = (result.addModifier &^ other.subModifier) | other.addModifier
	result.subModifier = (result.subModifier &^ other.addModifier) | other.subModifier
	return result
}

// Fg, Bg and UnderlineColorValue return the resolved color for a channel,
// defaulting to Reset when the channel was never set.
func (s Style) Fg() Color {
	if !s.fgSet {
		return Reset
	}
	return s.fg
}

func (s Style) Bg() Color {
	if !s.bgSet {
		return Reset
	}
	return s.bg
}

func (s Style) UnderlineColorValue() Color {
	if !s.ulSet {
		return Reset
	}
	return s.underline
}

// Modifiers returns the final resolved modifier bitset: everything added
// that was not also removed.
func (s Style) Modifiers() Modifier {
	return s.addModifier &^ s.subModifier
}
