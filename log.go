package tui

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/lmittmann/tint"
)

// Log is a ring buffer of the last N formatted log lines, fed by a
// standard log/slog.Logger writing through a tint handler (the colored,
// single-line format the teacher's own tooling favors over slog's
// default multi-line text handler). Lines() returns the buffered lines
// so a caller can paint log output inside the UI itself; TuiRunner holds
// no Log, and its debug overlay does not show these lines.
type Log struct {
	mu     sync.Mutex
	lines  []string
	cap    int
	next   int
	filled bool
	logger *slog.Logger
}

// NewLog returns a Log keeping at most capacity lines, additionally
// mirroring everything to out (e.g. a file, for a session's full
// record) in the tint format.
func NewLog(capacity int, out io.Writer) *Log {
	if capacity <= 0 {
		capacity = 1
	}
	l := &Log{lines: make([]string, capacity), cap: capacity}
	writer := io.MultiWriter(&ringWriter{log: l}, out)
	handler := tint.NewHandler(writer, &tint.Options{TimeFormat: time.RFC3339})
	l.logger = slog.New(handler)
	return l
}

// Logger returns the slog.Logger callers should use; its output is
// mirrored into this Log's ring buffer as a side effect of writing.
func (l *Log) Logger() *slog.Logger { return l.logger }

// Lines returns the buffered lines, oldest first, newest last.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.filled {
		out := make([]string, l.next)
		copy(out, l.lines[:l.next])
		return out
	}
	out := make([]string, l.cap)
	copy(out, l.lines[l.next:])
	copy(out[l.cap-l.next:], l.lines[:l.next])
	return out
}

func (l *Log) append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines[l.next] = line
	l.next++
	if l.next == l.cap {
		l.next = 0
		l.filled = true
	}
}

// ringWriter adapts Log.append to io.Writer so it can sit in an
// io.MultiWriter alongside the real sink tint writes to.
type ringWriter struct{ log *Log }

func (w *ringWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte("\n")) {
		if len(line) > 0 {
			w.log.append(string(line))
		}
	}
	return len(p), nil
}
