package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	assert.Equal(t, 2, r.Left())
	assert.Equal(t, 3, r.Top())
	assert.Equal(t, 12, r.Right())
	assert.Equal(t, 8, r.Bottom())
	assert.Equal(t, 50, r.Area())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.True(t, r.Contains(Position{X: 0, Y: 0}))
	assert.True(t, r.Contains(Position{X: 9, Y: 9}))
	assert.False(t, r.Contains(Position{X: 10, Y: 0}))
	assert.False(t, r.Contains(Position{X: -1, Y: 0}))
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)
	i := a.Intersection(b)
	assert.Equal(t, NewRect(5, 5, 5, 5), i)

	c := NewRect(20, 20, 5, 5)
	assert.True(t, a.Intersection(c).IsEmpty())
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	inner := r.Inset(NewInsets(1))
	assert.Equal(t, NewRect(1, 1, 8, 8), inner)
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(5, 5, 2, 2)
	assert.Equal(t, NewRect(0, 0, 7, 7), a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
}

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(0, 0, -5, -5)
	assert.True(t, r.IsEmpty())
}
