// Package session shares one calculator between request handlers. Every
// call runs to completion under the session lock, so a batch of keys is
// never interleaved with another request.
package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/display"
	"github.com/mamaar/gocalc/pkg/types"
)

// Snapshot is the state of the calculator after a request.
type Snapshot struct {
	View  display.View      `json:"view"`
	State types.EngineState `json:"state"`
	// Ignored counts keys of the request that did not apply.
	Ignored int `json:"ignored,omitempty"`
}

// Session owns a calculator engine.
type Session struct {
	mu     sync.Mutex
	engine *calc.Engine
	logger *slog.Logger
}

// New creates a session with a fresh engine. A nil logger discards output.
func New(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		engine: calc.NewEngine(logger),
		logger: logger,
	}
}

// Press parses keys and applies them in order.
func (s *Session) Press(keys string) (Snapshot, error) {
	toks, err := calc.ParseKeys(keys)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parse keys: %w", err)
	}
	return s.PressTokens(toks), nil
}

// PressTokens applies toks in order.
func (s *Session) PressTokens(toks []types.Token) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ignored := 0
	for _, tok := range toks {
		if s.engine.Apply(tok).Outcome == calc.Ignored {
			ignored++
		}
	}
	s.logger.Info("keys handled", "count", len(toks), "ignored", ignored, "display", s.engine.State().Display())

	snap := s.snapshotLocked()
	snap.Ignored = ignored
	return snap
}

// Snapshot returns the current state without changing it.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// History returns the history entries, newest first.
func (s *Session) History() []types.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.History().Entries()
}

// Recall loads the history result at index into the current operand.
func (s *Session) Recall(index int) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.engine.Recall(index); err != nil {
		return Snapshot{}, err
	}
	s.logger.Info("history recalled", "index", index)
	return s.snapshotLocked(), nil
}

// ClearHistory empties the history.
func (s *Session) ClearHistory() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.ClearHistory()
	return s.snapshotLocked()
}

// Reset presses clear-all. History is kept.
func (s *Session) Reset() Snapshot {
	return s.PressTokens([]types.Token{types.ClearAll()})
}

func (s *Session) snapshotLocked() Snapshot {
	state := s.engine.State()
	return Snapshot{
		View:  display.Build(state, s.engine.History().Entries()),
		State: state,
	}
}
