package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStylePatchIdentity(t *testing.T) {
	s := NewStyle().Foreground(Named("red")).AddModifier(ModifierBold)
	assert.Equal(t, s, s.Patch(NewStyle()))
	assert.Equal(t, s, NewStyle().Patch(s))
}

func TestStylePatchOverride(t *testing.T) {
	base := NewStyle().Foreground(Named("red")).Background(Named("black"))
	patch := NewStyle().Foreground(Named("blue"))
	result := base.Patch(patch)
	assert.Equal(t, Named("blue"), result.Fg())
	assert.Equal(t, Named("black"), result.Bg())
}

func TestStyleModifiersDisjointAfterPatch(t *testing.T) {
	base := NewStyle().AddModifier(ModifierBold | ModifierItalic)
	patch := NewStyle().RemoveModifier(ModifierBold)
	result := base.Patch(patch)
	assert.Equal(t, ModifierItalic, result.Modifiers())
	assert.Zero(t, result.addModifier&result.subModifier)
}

func TestStyleUnsetChannelsDefaultReset(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, Reset, s.Fg())
	assert.Equal(t, Reset, s.Bg())
	assert.Equal(t, Reset, s.UnderlineColorValue())
}

func TestCellEqualityIsByValue(t *testing.T) {
	a := Cell{Symbol: "x", Style: NewStyle().Foreground(Named("red"))}
	b := Cell{Symbol: "x", Style: NewStyle().Foreground(Named("red"))}
	assert.Equal(t, a, b)
	assert.True(t, a == b)
}
