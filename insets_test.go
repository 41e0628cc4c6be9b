package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInsetsShorthand(t *testing.T) {
	assert.Equal(t, Insets{1, 1, 1, 1}, NewInsets(1))
	assert.Equal(t, Insets{2, 3, 2, 3}, NewInsets(2, 3))
	assert.Equal(t, Insets{1, 2, 3, 4}, NewInsets(1, 2, 3, 4))
}

func TestNewInsetsInvalidCount(t *testing.T) {
	assert.Panics(t, func() { NewInsets(1, 2, 3) })
}

func TestInsetsHorizontalVertical(t *testing.T) {
	i := NewInsets(1, 2, 3, 4)
	assert.Equal(t, 6, i.Horizontal())
	assert.Equal(t, 4, i.Vertical())
}

func TestInsetsAdd(t *testing.T) {
	a := NewInsets(1)
	b := NewInsets(2)
	assert.Equal(t, Insets{3, 3, 3, 3}, a.Add(b))
}

func TestInsetsIsZero(t *testing.T) {
	assert.True(t, Insets{}.IsZero())
	assert.False(t, NewInsets(1).IsZero())
}
