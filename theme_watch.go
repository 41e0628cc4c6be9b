package tui

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

// ThemeWatcher watches a directory for writes to files matching a glob
// pattern (e.g. "themes/*.json") and invokes a callback with the
// changed path, letting a long-running TuiRunner pick up theme edits
// without a restart.
type ThemeWatcher struct {
	watcher *fsnotify.Watcher
	pattern string
	done    chan struct{}
}

// WatchTheme starts watching dir for changes to files matching
// pattern, calling onChange for each one on its own goroutine. Callers
// must call Close to stop it.
func WatchTheme(dir, pattern string, onChange func(path string)) (*ThemeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	tw := &ThemeWatcher{watcher: watcher, pattern: pattern, done: make(chan struct{})}
	go tw.loop(onChange)
	return tw, nil
}

func (w *ThemeWatcher) loop(onChange func(path string)) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			matched, err := doublestar.Match(w.pattern, event.Name)
			if err != nil || !matched {
				continue
			}
			onChange(event.Name)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watch goroutine and releases the underlying fsnotify
// watcher. Idempotent.
func (w *ThemeWatcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
