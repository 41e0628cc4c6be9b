package tui

import (
	"context"
	"fmt"
	"time"
)

// RunState is where a TuiRunner sits in its Idle → Running → Quitting →
// Terminated lifecycle. Quitting and Terminated are both terminal from
// the caller's perspective but kept distinct so teardown itself can be
// interrupted-and-retried without re-entering Running.
type RunState int

const (
	StateIdle RunState = iota
	StateRunning
	StateQuitting
	StateTerminated
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateQuitting:
		return "quitting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Layer is one entry in the runner's popup stack: an Element plus a
// function resolving its area against the terminal's current full
// area. Layers render bottom-to-top over the root element, each
// getting its own entry in the event router so the topmost layer wins
// hit-testing ties, matching the styled-area registry's own
// most-recent-wins convention.
type Layer struct {
	Element Element
	Area    func(full Rect) Rect
}

// CenteredLayer returns a Layer occupying a width x height box centered
// within the terminal's area.
func CenteredLayer(el Element, width, height int) Layer {
	return Layer{
		Element: el,
		Area: func(full Rect) Rect {
			w, h := width, height
			if w > full.Width {
				w = full.Width
			}
			if h > full.Height {
				h = full.Height
			}
			x := full.X + (full.Width-w)/2
			y := full.Y + (full.Height-h)/2
			return NewRect(x, y, w, h)
		},
	}
}

// TuiRunner drives the single-threaded event loop: it owns the
// Terminal, the FocusManager and EventRouter built from it, the popup
// layer stack, and the root element rendered beneath those popups.
type TuiRunner struct {
	config   TuiConfig
	backend  Backend
	terminal *Terminal
	focus    *FocusManager
	router   *EventRouter
	popups   Stack[Layer]
	root     Element

	state      RunState
	frameCount int
	lastTick   time.Time
}

// NewTuiRunner builds a runner around backend, ready to render root.
// The terminal is sized immediately from the backend so an early
// Quit before the first Run still has a consistent Area to report.
func NewTuiRunner(backend Backend, root Element, config TuiConfig) (*TuiRunner, error) {
	terminal, err := NewTerminal(backend)
	if err != nil {
		return nil, err
	}
	focus := NewFocusManager()
	return &TuiRunner{
		config:   config,
		backend:  backend,
		terminal: terminal,
		focus:    focus,
		router:   NewEventRouter(focus),
		root:     root,
		state:    StateIdle,
	}, nil
}

// State reports the runner's current lifecycle state.
func (r *TuiRunner) State() RunState { return r.state }

// PushPopup adds layer to the top of the popup stack, rendered and
// hit-tested above everything below it starting from the next frame.
func (r *TuiRunner) PushPopup(layer Layer) { r.popups.Push(layer) }

// PopPopup removes and returns the topmost popup, if any.
func (r *TuiRunner) PopPopup() (Layer, bool) {
	if r.popups.IsEmpty() {
		return Layer{}, false
	}
	return r.popups.Pop(), true
}

// Quit requests the loop stop at its next iteration boundary. Calling
// it more than once, or after the loop has already stopped, is a
// no-op: only a StateRunning runner transitions to StateQuitting.
func (r *TuiRunner) Quit() {
	if r.state == StateRunning {
		r.state = StateQuitting
	}
}

// Run acquires the terminal per config, then loops polling for events
// and rendering until Quit is called, ctx is cancelled, or an
// unrecovered render error's handler says to stop. Teardown always
// runs exactly once, whichever of those ends the loop.
func (r *TuiRunner) Run(ctx context.Context) error {
	if r.state != StateIdle {
		return fmt.Errorf("tui: Run called in state %s, expected idle", r.state)
	}
	if err := r.acquire(); err != nil {
		return err
	}
	r.state = StateRunning
	r.lastTick = nowFunc()

	var loopErr error
loop:
	for r.state == StateRunning {
		select {
		case <-ctx.Done():
			r.state = StateQuitting
			break loop
		default:
		}

		event, ok, err := r.backend.PollEvent(r.config.PollTimeout)
		if err != nil {
			loopErr = err
			r.state = StateQuitting
			break loop
		}

		if ok {
			r.handleEvent(event)
		}
		if r.config.TickRate > 0 {
			now := nowFunc()
			if now.Sub(r.lastTick) >= r.config.TickRate {
				r.frameCount++
				elapsed := now.Sub(r.lastTick)
				r.lastTick = now
				r.router.Dispatch(TickEvent{FrameCount: r.frameCount, Elapsed: elapsed})
			}
		}

		if r.state != StateRunning {
			break
		}

		if renderErr := r.renderFrame(); renderErr != nil {
			action := r.config.ErrorHandler(renderErr)
			if r.config.ErrorOutput != nil {
				fmt.Fprintln(r.config.ErrorOutput, renderErr.Error())
			}
			switch action {
			case Suppress:
				// keep running; previous buffer remains the diff baseline
			case QuitImmediately, DisplayAndQuit:
				loopErr = renderErr
				r.state = StateQuitting
			}
		}
	}

	r.teardown()
	return loopErr
}

// handleEvent dispatches one polled event. Escape closes the topmost
// popup, if any, before anything else sees it; with no popup open it
// falls through to the router, where it cancels an in-progress drag or
// clears focus (see EventRouter.dispatchKey) rather than quitting the
// runner outright — nothing in this package binds Escape to Quit.
func (r *TuiRunner) handleEvent(event Event) {
	switch ev := event.(type) {
	case KeyEvent:
		if ev.Code == KeyEscape {
			if _, hasPopup := r.PopPopup(); hasPopup {
				return
			}
		}
	case ResizeEvent:
		if err := r.terminal.Resize(ev.Width, ev.Height); err != nil && r.config.ErrorOutput != nil {
			fmt.Fprintln(r.config.ErrorOutput, err.Error())
		}
	}
	r.router.Dispatch(event)
}

func (r *TuiRunner) renderFrame() *RenderError {
	r.router.Reset()
	started := nowFunc()
	completed, renderErr := r.terminal.Draw(r.config.FaultTolerant, func(f *Frame) {
		f.RenderWidget(r.root, f.Area())
		r.router.Register(r.root, f.Area())

		for i := 0; i < r.popups.Len(); i++ {
			layer := r.popups[i]
			area := layer.Area(f.Area())
			f.RenderWidget(layer.Element, area)
			r.router.Register(layer.Element, area)
		}

		if r.config.DebugOverlay {
			r.renderDebugOverlay(f)
		}
	})

	if r.config.Recorder != nil {
		area := r.terminal.Area()
		updates := 0
		var asErr error
		if completed != nil {
			updates = len(completed.Updates)
		}
		if renderErr != nil {
			asErr = renderErr
		}
		r.config.Recorder.RecordFrame(area.Width, area.Height, updates, nowFunc().Sub(started), asErr)
	}

	return renderErr
}

// renderDebugOverlay paints a one-line status bar along the bottom row
// of the frame: frame count, the focused element id, and popup depth.
// Generalizes the teacher's ShowDebug bottom bar; painted through the
// same Frame/Buffer API every other renderer uses rather than reaching
// into the backend directly.
func (r *TuiRunner) renderDebugOverlay(f *Frame) {
	area := f.Area()
	if area.Height == 0 {
		return
	}
	focused := r.focus.Current()
	if focused == "" {
		focused = "-"
	}
	line := fmt.Sprintf(" frame=%d focus=%s popups=%d ", r.frameCount, focused, r.popups.Len())
	style := NewStyle().Foreground(Named("black")).Background(Named("white"))
	y := area.Bottom() - 1
	for x := area.X; x < area.Right(); x++ {
		f.Buffer().SetSymbol(x, y, " ", style)
	}
	f.Buffer().SetText(area.X, y, Line{Spans: []Span{{Content: line, Style: style}}}, area.Width)
}

func (r *TuiRunner) acquire() error {
	if r.config.RawMode {
		if err := r.backend.EnableRawMode(); err != nil {
			return err
		}
	}
	if r.config.AlternateScreen {
		if err := r.backend.EnterAlternateScreen(); err != nil {
			return err
		}
	}
	if r.config.MouseCapture {
		if err := r.backend.EnableMouseCapture(); err != nil {
			return err
		}
	}
	if r.config.HideCursor {
		if err := r.backend.HideCursor(); err != nil {
			return err
		}
	}
	return nil
}

// teardown reverses acquire and runs the shutdown hook, exactly once:
// a second call after Terminated is a no-op so Run can defer-call it
// safely even if the loop already tore down on an earlier break path.
func (r *TuiRunner) teardown() {
	if r.state == StateTerminated {
		return
	}
	if r.config.MouseCapture {
		r.backend.DisableMouseCapture()
	}
	if r.config.AlternateScreen {
		r.backend.LeaveAlternateScreen()
	}
	if r.config.RawMode {
		r.backend.DisableRawMode()
	}
	r.backend.ShowCursor()
	r.backend.Close()
	if r.config.ShutdownHook != nil {
		r.config.ShutdownHook()
	}
	r.state = StateTerminated
}

// nowFunc is a seam for tests to control tick timing deterministically.
var nowFunc = time.Now
