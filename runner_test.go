package tui

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedBackend struct {
	fakeBackend
	events   []Event
	i        int
}

func (s *scriptedBackend) PollEvent(timeout time.Duration) (Event, bool, error) {
	if s.i >= len(s.events) {
		return nil, false, nil
	}
	e := s.events[s.i]
	s.i++
	return e, true, nil
}

// Escape no longer quits the runner on its own — nothing in this
// package binds it to Quit. With no popup open and nothing focused, an
// Escape key event is simply unhandled by the router and the loop
// keeps running until the context is cancelled.
func TestRunnerEscapeWithoutPopupOrFocusDoesNotQuit(t *testing.T) {
	backend := &scriptedBackend{
		fakeBackend: fakeBackend{width: 20, height: 5},
		events:      []Event{KeyEvent{Code: KeyEscape}},
	}
	root := writerElement{BaseElement: NewBaseElement("root"), text: "hi"}
	runner, err := NewTuiRunner(backend, root, NewTuiConfig().WithPollTimeout(time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	runErr := runner.Run(ctx)
	assert.NoError(t, runErr)
	assert.Equal(t, StateTerminated, runner.State())
}

func TestRunnerEscapeClosesPopupThenIsNoop(t *testing.T) {
	backend := &scriptedBackend{
		fakeBackend: fakeBackend{width: 20, height: 5},
		events: []Event{
			KeyEvent{Code: KeyEscape},
			KeyEvent{Code: KeyEscape},
		},
	}
	root := writerElement{BaseElement: NewBaseElement("root"), text: "hi"}
	runner, err := NewTuiRunner(backend, root, NewTuiConfig().WithPollTimeout(time.Millisecond))
	require.NoError(t, err)
	popup := writerElement{BaseElement: NewBaseElement("popup"), text: "popup"}
	runner.PushPopup(CenteredLayer(popup, 10, 3))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	runErr := runner.Run(ctx)
	assert.NoError(t, runErr)
	assert.Equal(t, StateTerminated, runner.State())
	assert.Equal(t, 0, runner.popups.Len(), "first escape should have popped the popup")
}

func TestRunnerTeardownIsIdempotent(t *testing.T) {
	backend := &scriptedBackend{fakeBackend: fakeBackend{width: 20, height: 5}}
	root := writerElement{BaseElement: NewBaseElement("root"), text: "hi"}
	runner, err := NewTuiRunner(backend, root, NewTuiConfig().WithPollTimeout(time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.NoError(t, runner.Run(ctx))
	assert.NotPanics(t, func() { runner.teardown() })
}

func TestRunnerContextCancelStopsLoop(t *testing.T) {
	backend := &scriptedBackend{fakeBackend: fakeBackend{width: 20, height: 5}}
	root := writerElement{BaseElement: NewBaseElement("root"), text: "hi"}
	runner, err := NewTuiRunner(backend, root, NewTuiConfig().WithPollTimeout(time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	runErr := runner.Run(ctx)
	assert.NoError(t, runErr)
	assert.Equal(t, StateTerminated, runner.State())
}

func TestRunnerDebugOverlayPaintsBottomRow(t *testing.T) {
	backend := NewHeadlessBackend(20, 4)
	root := writerElement{BaseElement: NewBaseElement("root"), text: "hi"}
	runner, err := NewTuiRunner(backend, root, NewTuiConfig().WithDebugOverlay(true))
	require.NoError(t, err)

	renderErr := runner.renderFrame()
	require.Nil(t, renderErr)

	snap := backend.Snapshot()
	lastRowStart := 3 * 20
	assert.Equal(t, " ", snap[lastRowStart].Symbol)
	found := false
	for i := lastRowStart; i < len(snap); i++ {
		if snap[i].Symbol == "f" {
			found = true
		}
	}
	assert.True(t, found, "expected the debug overlay's \"frame=\" text on the bottom row")
}

func TestRunnerCentersPopupLayer(t *testing.T) {
	popup := writerElement{BaseElement: NewBaseElement("popup"), text: "x"}
	layer := CenteredLayer(popup, 10, 4)
	area := layer.Area(NewRect(0, 0, 40, 20))
	assert.Equal(t, NewRect(15, 8, 10, 4), area)
}
