package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadlessBackendDrawAndSnapshot(t *testing.T) {
	b := NewHeadlessBackend(5, 2)
	err := b.Draw([]CellUpdate{{X: 1, Y: 0, Cell: Cell{Symbol: "A"}}})
	require.NoError(t, err)

	snap := b.Snapshot()
	assert.Equal(t, "A", snap[1].Symbol)
}

func TestHeadlessBackendDefaultsSizeWhenNonPositive(t *testing.T) {
	b := NewHeadlessBackend(0, 0)
	w, h, err := b.Size()
	require.NoError(t, err)
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
}

func TestHeadlessBackendPollEventReturnsPushedEvent(t *testing.T) {
	b := NewHeadlessBackend(10, 5)
	b.PushEvent(KeyEvent{Code: KeyEnter})

	ev, ok, err := b.PollEvent(time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, KeyEvent{Code: KeyEnter}, ev)
}

func TestHeadlessBackendPollEventTimesOutWithoutEvent(t *testing.T) {
	b := NewHeadlessBackend(10, 5)
	_, ok, err := b.PollEvent(10 * time.Millisecond)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHeadlessBackendWithTerminal(t *testing.T) {
	b := NewHeadlessBackend(6, 2)
	term, err := NewTerminal(b)
	require.NoError(t, err)

	el := writerElement{BaseElement: NewBaseElement("w"), text: "hi"}
	_, renderErr := term.Draw(false, func(f *Frame) {
		f.RenderWidget(el, f.Area())
	})
	require.Nil(t, renderErr)

	snap := b.Snapshot()
	assert.Equal(t, "h", snap[0].Symbol)
	assert.Equal(t, "i", snap[1].Symbol)
}
