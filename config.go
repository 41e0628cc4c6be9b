package tui

import (
	"io"
	"os"
	"time"
)

const defaultPollTimeout = 20 * time.Millisecond

// TuiConfig collects the knobs TuiRunner needs to acquire and tear down
// the terminal, and how it reacts to a render failure that escapes
// fault-tolerant containment. Built with a fluent With* chain rather
// than exported struct literals, the way the teacher's own config
// builders compose options one call at a time.
type TuiConfig struct {
	RawMode         bool
	AlternateScreen bool
	HideCursor      bool
	MouseCapture    bool
	FaultTolerant   bool
	PollTimeout     time.Duration
	TickRate        time.Duration // zero disables tick synthesis
	ShutdownHook    func()
	ErrorOutput     io.Writer
	ErrorHandler    RenderErrorHandler
	Recorder        FrameRecorder
	DebugOverlay    bool
}

// FrameRecorder receives one entry per draw when set on a TuiConfig.
// diagnostics.Recorder satisfies this structurally, without this
// package importing that one.
type FrameRecorder interface {
	RecordFrame(width, height, updates int, duration time.Duration, renderErr error) error
}

// NewTuiConfig returns the defaults: raw mode, alternate screen, hidden
// cursor and mouse capture all on, fault tolerance on, a 20ms poll
// timeout, no tick synthesis, errors written to stderr and handled by
// DefaultErrorHandler.
func NewTuiConfig() TuiConfig {
	return TuiConfig{
		RawMode:         true,
		AlternateScreen: true,
		HideCursor:      true,
		MouseCapture:    true,
		FaultTolerant:   true,
		PollTimeout:     defaultPollTimeout,
		ErrorOutput:     os.Stderr,
		ErrorHandler:    DefaultErrorHandler,
	}
}

func (c TuiConfig) WithRawMode(v bool) TuiConfig         { c.RawMode = v; return c }
func (c TuiConfig) WithAlternateScreen(v bool) TuiConfig { c.AlternateScreen = v; return c }
func (c TuiConfig) WithHideCursor(v bool) TuiConfig      { c.HideCursor = v; return c }
func (c TuiConfig) WithMouseCapture(v bool) TuiConfig    { c.MouseCapture = v; return c }
func (c TuiConfig) WithFaultTolerant(v bool) TuiConfig   { c.FaultTolerant = v; return c }

// WithPollTimeout overrides the backend poll timeout. A non-positive
// value is replaced with the default rather than blocking PollEvent
// forever, since a zero or negative timeout would otherwise stall tick
// synthesis and resize detection indefinitely.
func (c TuiConfig) WithPollTimeout(d time.Duration) TuiConfig {
	if d <= 0 {
		d = defaultPollTimeout
	}
	c.PollTimeout = d
	return c
}

func (c TuiConfig) WithTickRate(d time.Duration) TuiConfig { c.TickRate = d; return c }
func (c TuiConfig) WithShutdownHook(f func()) TuiConfig    { c.ShutdownHook = f; return c }
func (c TuiConfig) WithErrorOutput(w io.Writer) TuiConfig  { c.ErrorOutput = w; return c }
func (c TuiConfig) WithErrorHandler(h RenderErrorHandler) TuiConfig {
	if h == nil {
		h = DefaultErrorHandler
	}
	c.ErrorHandler = h
	return c
}

func (c TuiConfig) WithRecorder(r FrameRecorder) TuiConfig { c.Recorder = r; return c }

// WithDebugOverlay toggles a one-line status bar (frame count, focused
// element id, popup depth) painted along the bottom row of every
// frame, the generalized form of the teacher's ShowDebug bottom bar.
func (c TuiConfig) WithDebugOverlay(v bool) TuiConfig { c.DebugOverlay = v; return c }
