package tui

import (
	"fmt"
	"time"
)

// TerminalIOException wraps any failure a Backend operation reports,
// whether it came from a syscall, a tcell internal, or a headless
// backend's own bookkeeping.
type TerminalIOException struct {
	Op    string
	cause error
}

func (e *TerminalIOException) Error() string {
	return fmt.Sprintf("tui: terminal I/O failure during %s: %v", e.Op, e.cause)
}

func (e *TerminalIOException) Unwrap() error { return e.cause }

func ioError(op string, cause error) error {
	if cause == nil {
		return nil
	}
	return &TerminalIOException{Op: op, cause: cause}
}

// Backend is the abstract terminal the core renders through. Every
// operation can fail with a *TerminalIOException. Terminal owns exactly
// one Backend; TuiRunner is responsible for the raw-mode/alt-screen/
// mouse-capture/cursor-hide acquisition and teardown around its use.
type Backend interface {
	// Draw writes the given cell updates to the terminal's internal
	// buffer; nothing is visible until Flush.
	Draw(updates []CellUpdate) error
	Flush() error
	Clear() error
	Size() (width, height int, err error)

	ShowCursor() error
	HideCursor() error
	CursorPosition() (Position, error)
	SetCursorPosition(Position) error

	EnterAlternateScreen() error
	LeaveAlternateScreen() error
	EnableRawMode() error
	DisableRawMode() error
	EnableMouseCapture() error
	DisableMouseCapture() error

	ScrollUp(n int) error
	ScrollDown(n int) error

	// PollEvent blocks up to timeout for the next Event. ok is false on
	// a plain timeout with no event to report.
	PollEvent(timeout time.Duration) (event Event, ok bool, err error)

	// Close releases any resources the backend holds. Idempotent.
	Close() error
}
