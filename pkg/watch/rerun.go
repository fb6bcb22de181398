package watch

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/types"
)

// Result is the outcome of evaluating a key script once.
type Result struct {
	Path    string               `json:"path"`
	Lines   []calc.LineResult    `json:"lines,omitempty"`
	History []types.HistoryEntry `json:"history,omitempty"`
	Err     error                `json:"-"`
}

// Rerunner evaluates a key script on a fresh engine every time it changes.
type Rerunner struct {
	path   string
	report func(Result)
	logger *slog.Logger
}

// NewRerunner creates a Rerunner that passes each evaluation to report. A
// nil logger discards output.
func NewRerunner(path string, report func(Result), logger *slog.Logger) *Rerunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Rerunner{
		path:   path,
		report: report,
		logger: logger,
	}
}

// Evaluate loads the script and runs it once on a fresh engine.
func (r *Rerunner) Evaluate() Result {
	start := time.Now()
	res := Result{Path: r.path}

	lines, err := calc.LoadScript(r.path)
	if err != nil {
		res.Err = err
		r.logger.Warn("script not evaluated", "path", r.path, "err", err)
		return res
	}

	engine := calc.NewEngine(r.logger)
	res.Lines = calc.RunScript(engine, lines)
	res.History = engine.History().Entries()

	r.logger.Info("script evaluated",
		"path", r.path,
		"lines", len(lines),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return res
}

// HandleChanges re-evaluates the script for a batch of change events.
// A batch that leaves the script missing is logged and skipped; editors
// that save by rename recreate it within the same batch.
func (r *Rerunner) HandleChanges(events []ChangeEvent) {
	for _, ev := range events {
		if !ev.Removed() {
			continue
		}
		if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("script removed, waiting for it to return", "path", ev.Path)
			return
		}
	}
	r.report(r.Evaluate())
}

// Follow reports the current evaluation, then re-evaluates on every batch
// from the watcher until ctx is cancelled.
func (r *Rerunner) Follow(ctx context.Context, w *Watcher) error {
	r.report(r.Evaluate())

	batches := make(chan []ChangeEvent, 1)
	errc := make(chan error, 1)
	go func() { errc <- w.Run(ctx, batches) }()

	for {
		select {
		case batch := <-batches:
			r.HandleChanges(batch)
		case err := <-errc:
			return err
		}
	}
}
