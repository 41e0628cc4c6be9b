package tui

import (
	"os"
	"time"

	"golang.org/x/term"
)

// HeadlessBackend is a Backend with no real terminal behind it: cell
// writes land in an in-memory grid inspectable via Snapshot, and
// events are whatever the caller pushes with PushEvent. It backs
// cmd/demo's --headless mode and any test that wants a real Terminal
// without a tty.
type HeadlessBackend struct {
	width, height int
	cells         []Cell
	cursor        Position
	cursorVisible bool
	events        chan Event
	closed        bool
}

// NewHeadlessBackend returns a backend of the given size. A
// non-positive width or height falls back to the real controlling
// terminal's size via golang.org/x/term, and failing that to 80x24 —
// the same default a detached CI runner would see.
func NewHeadlessBackend(width, height int) *HeadlessBackend {
	if width <= 0 || height <= 0 {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		} else {
			width, height = 80, 24
		}
	}
	b := &HeadlessBackend{width: width, height: height, events: make(chan Event, 16)}
	b.cells = make([]Cell, width*height)
	return b
}

// PushEvent queues an event for the next PollEvent call, letting a
// test or the replay tool drive the backend without real input.
func (b *HeadlessBackend) PushEvent(e Event) { b.events <- e }

// Snapshot returns a copy of the backend's current cell grid, useful
// for asserting on what a render pass actually produced without
// reaching into Terminal's private buffers.
func (b *HeadlessBackend) Snapshot() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

func (b *HeadlessBackend) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0, false
	}
	return y*b.width + x, true
}

func (b *HeadlessBackend) Draw(updates []CellUpdate) error {
	for _, u := range updates {
		if i, ok := b.index(u.X, u.Y); ok {
			b.cells[i] = u.Cell
		}
	}
	return nil
}

func (b *HeadlessBackend) Flush() error { return nil }

func (b *HeadlessBackend) Clear() error {
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
	return nil
}

func (b *HeadlessBackend) Size() (int, int, error) { return b.width, b.height, nil }

func (b *HeadlessBackend) ShowCursor() error                  { b.cursorVisible = true; return nil }
func (b *HeadlessBackend) HideCursor() error                  { b.cursorVisible = false; return nil }
func (b *HeadlessBackend) CursorPosition() (Position, error)  { return b.cursor, nil }
func (b *HeadlessBackend) SetCursorPosition(p Position) error { b.cursor = p; return nil }

func (b *HeadlessBackend) EnterAlternateScreen() error { return nil }
func (b *HeadlessBackend) LeaveAlternateScreen() error { return nil }
func (b *HeadlessBackend) EnableRawMode() error        { return nil }
func (b *HeadlessBackend) DisableRawMode() error       { return nil }
func (b *HeadlessBackend) EnableMouseCapture() error   { return nil }
func (b *HeadlessBackend) DisableMouseCapture() error  { return nil }
func (b *HeadlessBackend) ScrollUp(n int) error        { return nil }
func (b *HeadlessBackend) ScrollDown(n int) error      { return nil }

func (b *HeadlessBackend) PollEvent(timeout time.Duration) (Event, bool, error) {
	select {
	case e := <-b.events:
		return e, true, nil
	case <-time.After(timeout):
		return nil, false, nil
	}
}

func (b *HeadlessBackend) Close() error {
	b.closed = true
	return nil
}

var _ Backend = (*HeadlessBackend)(nil)
