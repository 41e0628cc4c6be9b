package tui

import (
	"sort"
	"strings"
)

// BorderKind names a border glyph set a theme can resolve a selector
// to. The zero value, BorderNone, draws nothing.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderSingle
	BorderDouble
	BorderRounded
	BorderThick
)

// BorderSet is the eight glyphs a border drawer needs: four edges and
// four corners.
type BorderSet struct {
	Top, Bottom, Left, Right                       string
	TopLeft, TopRight, BottomLeft, BottomRight      string
}

// Glyphs returns the concrete glyph set for k. BorderNone returns the
// zero BorderSet (all empty strings); a drawer checks IsZero-style
// before painting.
func (k BorderKind) Glyphs() BorderSet {
	switch k {
	case BorderSingle:
		return BorderSet{Top: "─", Bottom: "─", Left: "│", Right: "│",
			TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘"}
	case BorderDouble:
		return BorderSet{Top: "═", Bottom: "═", Left: "║", Right: "║",
			TopLeft: "╔", TopRight: "╗", BottomLeft: "╚", BottomRight: "╝"}
	case BorderRounded:
		return BorderSet{Top: "─", Bottom: "─", Left: "│", Right: "│",
			TopLeft: "╭", TopRight: "╮", BottomLeft: "╰", BottomRight: "╯"}
	case BorderThick:
		return BorderSet{Top: "━", Bottom: "━", Left: "┃", Right: "┃",
			TopLeft: "┏", TopRight: "┓", BottomLeft: "┗", BottomRight: "┛"}
	default:
		return BorderSet{}
	}
}

// Theme resolves a selector — a space-separated list of tokens such as
// an element's id and its classes, e.g. "button primary" — to the
// Style and BorderKind that should paint it.
type Theme interface {
	Style(selector string) Style
	Border(selector string) BorderKind
}

// themeRule is one cascade entry: it applies to any selector whose
// token set is a superset of Tokens. Rules are sorted by specificity
// (token count, then declaration order) before folding, the same
// precedence convention CSS cascades use: more specific, or declared
// later, wins.
type themeRule struct {
	tokens []string
	order  int
	style  Style
	border BorderKind
	hasBorder bool
}

// MapTheme is a Theme built by declaring rules in any order and having
// them cascade by specificity at lookup time, folding matching Styles
// with Style.Patch so a later, more specific rule overrides only the
// channels it sets.
type MapTheme struct {
	rules []themeRule
}

// NewMapTheme returns a theme with no rules; every selector resolves to
// the zero Style and BorderNone until rules are declared.
func NewMapTheme() *MapTheme { return &MapTheme{} }

// Declare adds a style rule matching any selector containing every
// token in selector.
func (t *MapTheme) Declare(selector string, style Style) *MapTheme {
	t.rules = append(t.rules, themeRule{tokens: tokenize(selector), order: len(t.rules), style: style})
	return t
}

// DeclareBorder adds a border rule the same way Declare adds a style
// rule.
func (t *MapTheme) DeclareBorder(selector string, border BorderKind) *MapTheme {
	t.rules = append(t.rules, themeRule{tokens: tokenize(selector), order: len(t.rules), border: border, hasBorder: true})
	return t
}

func tokenize(selector string) []string {
	fields := strings.Fields(selector)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "*" {
			continue // "*" matches everything; an empty token set is a superset check vacuously true
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func matches(tokens []string, querySet map[string]bool) bool {
	for _, tok := range tokens {
		if !querySet[tok] {
			return false
		}
	}
	return true
}

func (t *MapTheme) matching(selector string) []themeRule {
	querySet := make(map[string]bool)
	for _, tok := range strings.Fields(selector) {
		querySet[tok] = true
	}
	var out []themeRule
	for _, r := range t.rules {
		if matches(r.tokens, querySet) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].tokens) != len(out[j].tokens) {
			return len(out[i].tokens) < len(out[j].tokens)
		}
		return out[i].order < out[j].order
	})
	return out
}

// Style folds every rule matching selector, in specificity order, with
// Style.Patch, so a rule for "button" sets the defaults and a later
// rule for "button primary" overrides only what it declares.
func (t *MapTheme) Style(selector string) Style {
	style := NewStyle()
	for _, r := range t.matching(selector) {
		style = style.Patch(r.style)
	}
	return style
}

// Border returns the border of the most specific matching rule that
// declares one, or BorderNone if none does.
func (t *MapTheme) Border(selector string) BorderKind {
	border := BorderNone
	for _, r := range t.matching(selector) {
		if r.hasBorder {
			border = r.border
		}
	}
	return border
}
