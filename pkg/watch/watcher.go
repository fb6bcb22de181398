// Package watch reports debounced changes to key script files.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for edits to settle.
const DefaultDebounce = 150 * time.Millisecond

// ChangeEvent represents a single filesystem change to a watched script.
type ChangeEvent struct {
	Path string
	Op   fsnotify.Op
}

// Removed reports whether the script is gone after this event.
func (e ChangeEvent) Removed() bool {
	return e.Op&(fsnotify.Remove|fsnotify.Rename) != 0
}

// Watcher watches a set of script files and emits debounced batches.
type Watcher struct {
	paths    map[string]bool
	debounce time.Duration
	logger   *slog.Logger
	fsw      *fsnotify.Watcher
}

// NewWatcher creates a Watcher for the given script paths. The parent
// directory of each path is watched so that editors which replace the file
// on save are still followed.
func NewWatcher(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("watch: no paths")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		paths:    make(map[string]bool, len(paths)),
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fsw.Close()
			return nil, err
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	return w, nil
}

// Run is the main event loop. It reads fsnotify events for the watched
// scripts, debounces rapid edits, and sends batched ChangeEvents to out.
// It blocks until ctx is cancelled or the fsnotify watcher is closed.
func (w *Watcher) Run(ctx context.Context, out chan<- []ChangeEvent) error {
	pending := make(map[string]fsnotify.Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.accept(ev) {
				pending[filepath.Clean(ev.Name)] |= ev.Op
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("fsnotify error", "err", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			batch := make([]ChangeEvent, 0, len(pending))
			for p, op := range pending {
				batch = append(batch, ChangeEvent{Path: p, Op: op})
			}
			pending = make(map[string]fsnotify.Op)
			w.logger.Debug("script change batch", "files", len(batch))

			select {
			case out <- batch:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Close shuts down the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// accept returns true if the event is for a watched script and carries a
// relevant op.
func (w *Watcher) accept(ev fsnotify.Event) bool {
	abs, err := filepath.Abs(ev.Name)
	if err != nil || !w.paths[abs] {
		return false
	}
	return ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}
