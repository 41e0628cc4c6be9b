package tui

import (
	"fmt"
)

// CompletedFrame is what Terminal.Draw returns on success: the area that
// was rendered and the set of cell updates actually written to the
// backend, useful for diagnostics and tests that want to assert on the
// minimal diff rather than the whole screen.
type CompletedFrame struct {
	Area    Rect
	Updates []CellUpdate
}

// Terminal owns a Backend plus the double buffer pair (current/previous)
// that Diff compares each draw. It is the only thing that calls Backend
// directly; everything above it (TuiRunner, Frame, Element) goes through
// Terminal.Draw.
type Terminal struct {
	backend  Backend
	current  *Buffer
	previous *Buffer
	cursor   *Position
}

// NewTerminal queries backend for its current size and allocates the
// buffer pair to match.
func NewTerminal(backend Backend) (*Terminal, error) {
	w, h, err := backend.Size()
	if err != nil {
		return nil, err
	}
	area := NewRect(0, 0, w, h)
	return &Terminal{
		backend:  backend,
		current:  NewBuffer(area),
		previous: NewBuffer(area),
	}, nil
}

// Area returns the terminal's current drawing area.
func (t *Terminal) Area() Rect { return t.current.Area }

// Resize reallocates both buffers for a new size and clears the
// backend itself. The clear matters beyond the in-memory buffers: Diff
// only ever compares the two buffer's overlapping new area, so without
// it glyphs left over from outside a shrunk area would never be
// overwritten on the physical screen.
func (t *Terminal) Resize(width, height int) error {
	area := NewRect(0, 0, width, height)
	t.current.Resize(area)
	t.previous.Resize(area)
	return t.backend.Clear()
}

// Draw runs one render pass: construct a Frame over the current buffer,
// invoke render against it, diff against the previous buffer, write the
// minimal set of changes to the backend, position the cursor, and
// flush. On success current and previous are swapped so the next Draw
// diffs against what is now on screen.
//
// Mirrors the core redraw cycle: query size, clear the working buffer,
// render into it, diff against what was last flushed, write only the
// difference, place the cursor, flush, then swap buffers for next time.
func (t *Terminal) Draw(faultTolerant bool, render func(*Frame)) (*CompletedFrame, *RenderError) {
	w, h, err := t.backend.Size()
	if err != nil {
		return nil, newRenderError("<terminal>", err)
	}
	if NewRect(0, 0, w, h) != t.current.Area {
		if err := t.Resize(w, h); err != nil {
			return nil, newRenderError("<terminal>", err)
		}
	}

	t.current.Reset()
	frame := newFrame(t.current, faultTolerant)

	var renderErr *RenderError
	func() {
		defer func() {
			if r := recover(); r != nil {
				if re, ok := r.(*RenderError); ok {
					// already carries the failing element's id via
					// renderChild/RenderStatefulWidget's own recover;
					// wrapping it again here would lose that identity.
					renderErr = re
					return
				}
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("%v", r)
				}
				renderErr = newRenderError("<root>", err)
			}
		}()
		render(frame)
	}()
	if renderErr != nil {
		return nil, renderErr
	}

	updates, err := Diff(t.previous, t.current)
	if err != nil {
		return nil, newRenderError("<terminal>", err)
	}

	if len(updates) > 0 {
		if err := t.backend.Draw(updates); err != nil {
			return nil, newRenderError("<terminal>", err)
		}
	}

	if frame.cursor != nil {
		if err := t.backend.SetCursorPosition(*frame.cursor); err != nil {
			return nil, newRenderError("<terminal>", err)
		}
		if err := t.backend.ShowCursor(); err != nil {
			return nil, newRenderError("<terminal>", err)
		}
	} else {
		if err := t.backend.HideCursor(); err != nil {
			return nil, newRenderError("<terminal>", err)
		}
	}

	if err := t.backend.Flush(); err != nil {
		return nil, newRenderError("<terminal>", err)
	}

	t.cursor = frame.cursor
	t.current, t.previous = t.previous, t.current

	return &CompletedFrame{Area: t.previous.Area, Updates: updates}, nil
}

// Cursor reports the position last requested by SetCursor, or ok=false
// if the cursor is currently hidden.
func (t *Terminal) Cursor() (Position, bool) {
	if t.cursor == nil {
		return Position{}, false
	}
	return *t.cursor, true
}
