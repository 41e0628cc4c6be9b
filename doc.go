// Package tui implements the retained-mode rendering core of a terminal
// user interface toolkit: a cell buffer with diffing, a constraint-based
// layout solver, a double-buffered render pipeline and a single-threaded
// event loop with focus management and z-ordered routing.
//
// # Layers
//
// Buffer and Cell hold the diffable screen state. Constraint and Layout
// turn a Rect into child Rects. Frame is the per-redraw handle widgets
// render into; Terminal owns the previous/current buffer pair and the
// Backend that actually talks to the terminal. TuiRunner drives the
// event loop, dispatching through FocusManager and EventRouter.
//
// # Backends
//
// Backend is implemented by backend_tcell.go (the terminal backend, via
// github.com/gdamore/tcell/v3) and backend_headless.go (an in-memory
// backend for tests and for environments without a tty).
//
// # Errors
//
// Rendering failures are reported as *RenderError and handled according
// to a RenderErrorHandler, which chooses one of QuitImmediately,
// DisplayAndQuit or Suppress. See errors.go.
package tui
