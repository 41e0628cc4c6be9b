package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// ErrorAction is what a RenderErrorHandler decides to do with a
// RenderError that escaped fault-tolerant containment.
type ErrorAction int

const (
	// QuitImmediately tears the terminal down, logs the error to the
	// configured error output, and exits the run loop.
	QuitImmediately ErrorAction = iota
	// DisplayAndQuit writes the error to the configured error output and
	// exits the run loop, returning the error from Run. It paints no
	// in-terminal error panel: TuiRunner handles it exactly like
	// QuitImmediately.
	DisplayAndQuit
	// Suppress logs a one-line warning and continues the loop, keeping
	// the most recent valid buffer as the diff baseline.
	Suppress
)

// RenderError wraps a failure that occurred while rendering, carrying a
// stack captured at the point of failure via github.com/pkg/errors,
// available through Trace.
type RenderError struct {
	ElementID string
	cause     error
}

func newRenderError(elementID string, cause error) *RenderError {
	return &RenderError{ElementID: elementID, cause: errors.WithStack(cause)}
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render error in %q: %v", e.ElementID, e.cause)
}

func (e *RenderError) Unwrap() error { return e.cause }

// Trace renders the captured stack as a multi-line string.
func (e *RenderError) Trace() string {
	return fmt.Sprintf("%+v", e.cause)
}

// CopyTraceToClipboard places the error's trace on the system clipboard.
// No key binding in this package calls it.
func (e *RenderError) CopyTraceToClipboard() error {
	return clipboard.WriteAll(e.Trace())
}

// RenderErrorHandler decides what to do with a RenderError that was not
// contained at a fault-tolerant boundary.
type RenderErrorHandler func(*RenderError) ErrorAction

// DefaultErrorHandler implements the config default: DisplayAndQuit.
func DefaultErrorHandler(*RenderError) ErrorAction { return DisplayAndQuit }

// RenderContext is threaded through a render pass: FaultTolerant governs
// whether RenderContext.RenderChild contains a child's failure into a
// placeholder or lets it propagate, and Styled records which element
// owns which screen rect for the current frame.
type RenderContext struct {
	FaultTolerant bool
	Styled        *StyledAreaRegistry
}

// StyledAreaRegistry tracks, per render, which element id a screen rect
// was attributed to. Frame populates it from RenderWidget calls; it
// exists so fault-tolerant rendering can avoid re-attributing a failed
// child's cells to that child's id once a placeholder has been painted
// over them.
type StyledAreaRegistry struct {
	entries []styledEntry
}

type styledEntry struct {
	id   string
	area Rect
}

func (r *StyledAreaRegistry) record(id string, area Rect) {
	r.entries = append(r.entries, styledEntry{id: id, area: area})
}

// Owner returns the id of the most recently recorded element whose area
// contains p, or "" if none does.
func (r *StyledAreaRegistry) Owner(p Position) string {
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].area.Contains(p) {
			return r.entries[i].id
		}
	}
	return ""
}

// renderChild renders el into area under ctx's fault-tolerance policy. A
// panic raised by el.Render (the Go stand-in for the source's render
// exception, since this core does not use exceptions for control flow
// elsewhere) is recovered here rather than at the top of draw, so one
// bad child cannot take down an otherwise-healthy frame when fault
// tolerance is enabled. When it is not enabled, the failure is
// re-panicked as its *RenderError so it keeps unwinding to
// Terminal.Draw's own recover, which surfaces it to the caller instead
// of letting a discarded return value swallow it.
func renderChild(el Element, area Rect, buf *Buffer, ctx *RenderContext) (renderErr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}
			wrapped := newRenderError(el.ID(), err)
			if ctx.FaultTolerant {
				drawErrorPlaceholder(area, buf)
				renderErr = nil
				return
			}
			panic(wrapped)
		}
	}()
	el.Render(area, buf, ctx)
	if ctx.Styled != nil {
		ctx.Styled.record(el.ID(), area)
	}
	return nil
}

// drawErrorPlaceholder paints a minimal bordered box labeled "Error"
// into area, the fault-tolerant stand-in for a failed child's content.
func drawErrorPlaceholder(area Rect, buf *Buffer) {
	if area.IsEmpty() {
		return
	}
	style := NewStyle().Foreground(Named("red"))
	for x := area.X; x < area.Right(); x++ {
		buf.SetSymbol(x, area.Y, "─", style)
		if area.Height > 1 {
			buf.SetSymbol(x, area.Bottom()-1, "─", style)
		}
	}
	for y := area.Y; y < area.Bottom(); y++ {
		buf.SetSymbol(area.X, y, "│", style)
		if area.Width > 1 {
			buf.SetSymbol(area.Right()-1, y, "│", style)
		}
	}
	label := " Error "
	if area.Width > len(label)+2 {
		buf.SetText(area.X+2, area.Y, NewLine(label), area.Width-4)
	}
}
