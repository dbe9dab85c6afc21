// Package watch re-runs a callback whenever one of a set of source files
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDelay is how long Run waits for further events before calling back.
// Editors often write a file in several steps.
const DefaultDelay = 100 * time.Millisecond

// Watcher reports changes to a fixed set of files.
type Watcher struct {
	w      *fsnotify.Watcher
	files  map[string]bool
	delay  time.Duration
	logger *slog.Logger
}

// New watches paths. The parent directories are watched rather than the
// files themselves, so files that are replaced on save keep being seen.
func New(paths []string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	watcher := &Watcher{w: w, files: make(map[string]bool), delay: DefaultDelay, logger: logger}
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		watcher.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	return watcher, nil
}

// SetDelay changes the debounce delay.
func (w *Watcher) SetDelay(d time.Duration) {
	w.delay = d
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}

// Run calls fn with the changed file every time a watched file is written or
// created, after the debounce delay. It returns when ctx is done or the
// underlying watcher fails.
func (w *Watcher) Run(ctx context.Context, fn func(path string)) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.delay)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			w.logger.Debug("file changed", "file", ev.Name, "op", ev.Op.String())
			pending[abs] = true
			timer.Reset(w.delay)

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching files: %w", err)

		case <-timer.C:
			for path := range pending {
				fn(path)
				delete(pending, path)
			}
		}
	}
}
