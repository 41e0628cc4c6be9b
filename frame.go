package tui

// Frame is the per-draw scoped handle widgets render into. It wraps the
// terminal's current buffer, the render context (fault tolerance +
// styled-area registry) for this pass, and whatever cursor position the
// render left behind.
type Frame struct {
	area    Rect
	buffer  *Buffer
	ctx     *RenderContext
	cursor  *Position
}

func newFrame(buffer *Buffer, faultTolerant bool) *Frame {
	return &Frame{
		area:   buffer.Area,
		buffer: buffer,
		ctx:    &RenderContext{FaultTolerant: faultTolerant, Styled: &StyledAreaRegistry{}},
	}
}

// Area returns the full area this frame covers.
func (f *Frame) Area() Rect { return f.area }

// Buffer returns the mutable buffer backing this frame. Widgets that
// need direct cell access (rather than going through RenderWidget) use
// this, e.g. to paint a background or border around a child.
func (f *Frame) Buffer() *Buffer { return f.buffer }

// StyledAreaRegistry returns the registry tracking which element owns
// which rect for this frame.
func (f *Frame) StyledAreaRegistry() *StyledAreaRegistry { return f.ctx.Styled }

// SetCursor requests the cursor be shown at p after this frame is
// flushed; if it is called more than once, the last call wins. Not
// calling it leaves the cursor hidden.
func (f *Frame) SetCursor(p Position) { f.cursor = &p }

// RenderWidget renders el into area, honoring the frame's fault
// tolerance policy: a failure is either contained as a placeholder
// (returning nil) or re-panicked as a *RenderError that unwinds to
// Terminal.Draw's recover, which is what ultimately surfaces it to the
// configured RenderErrorHandler. The nil return in the fault-tolerant
// case is the only value callers ever see back from here.
func (f *Frame) RenderWidget(el Element, area Rect) *RenderError {
	return renderChild(el, area, f.buffer, f.ctx)
}

// StatefulElement is an Element variant that also receives a pointer to
// external state it may read or mutate while rendering (e.g. a scroll
// offset). Defined as a standalone generic type rather than a method on
// Frame because Go methods cannot carry their own type parameters.
type StatefulElement[S any] interface {
	ID() string
	Render(area Rect, buf *Buffer, ctx *RenderContext, state *S)
}

// RenderStatefulWidget renders el into area with state, under the same
// fault-tolerance policy as RenderWidget: contained as a placeholder
// when fault-tolerant, otherwise re-panicked as a *RenderError so it
// reaches Terminal.Draw's recover instead of being silently dropped.
func RenderStatefulWidget[S any](f *Frame, el StatefulElement[S], area Rect, state *S) (renderErr *RenderError) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = renderPanicError{r}
			}
			wrapped := newRenderError(el.ID(), err)
			if f.ctx.FaultTolerant {
				drawErrorPlaceholder(area, f.buffer)
				renderErr = nil
				return
			}
			panic(wrapped)
		}
	}()
	el.Render(area, f.buffer, f.ctx, state)
	f.ctx.Styled.record(el.ID(), area)
	return nil
}

type renderPanicError struct{ value any }

func (e renderPanicError) Error() string { return "panic during render" }
