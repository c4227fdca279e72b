// Package watch re-runs a callback when watched files change. The demo
// binary uses it to re-check a suite on save, the way test watchers do.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last event
// before firing, so one save producing several fs events triggers one run.
const DefaultDebounce = 250 * time.Millisecond

// Watcher triggers a callback on changes under a set of paths.
type Watcher struct {
	paths    []string
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a watcher over the given files or directories. A zero
// debounce means DefaultDebounce; a nil logger falls back to
// slog.Default().
func New(paths []string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{paths: paths, debounce: debounce, logger: logger}
}

// Run blocks, invoking fn after each debounced burst of change events,
// until ctx is canceled. fn runs on the watcher's goroutine; a slow fn
// delays (but does not lose) the next trigger.
func (w *Watcher) Run(ctx context.Context, fn func()) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fw.Close()

	for _, p := range w.paths {
		if err := fw.Add(p); err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("change_detected", "path", ev.Name, "op", ev.Op.String())
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch_error", "error", err)

		case <-timer.C:
			fn()
		}
	}
}
