package calc

import (
	"io"
	"log/slog"

	"github.com/mamaar/gocalc/pkg/types"
)

// Engine owns one calculator state and its history. It is not safe for
// concurrent use; front-ends that share an Engine serialise access.
type Engine struct {
	state   types.EngineState
	history *History
	logger  *slog.Logger
}

// NewEngine creates an engine in the startup state. A nil logger discards
// output.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		state:   types.NewEngineState(),
		history: NewHistory(),
		logger:  logger,
	}
}

// Handle applies tok and returns the resulting state.
func (e *Engine) Handle(tok types.Token) types.EngineState {
	return e.Apply(tok).State
}

// HandleAll applies each token in order and returns the final state.
func (e *Engine) HandleAll(toks []types.Token) types.EngineState {
	for _, tok := range toks {
		e.Apply(tok)
	}
	return e.state
}

// Apply handles tok and reports the full transition, recording any
// completed calculation in the history.
func (e *Engine) Apply(tok types.Token) Transition {
	switch tok.Kind {
	case types.HistorySelectToken:
		state, err := e.Recall(tok.Index)
		if err != nil {
			e.logger.Debug("recall ignored", "index", tok.Index, "err", err)
			return Transition{State: e.state, Outcome: Ignored}
		}
		return Transition{State: state, Outcome: Applied}
	case types.HistoryClearToken:
		e.ClearHistory()
		return Transition{State: e.state, Outcome: Applied}
	}

	t := Step(e.state, tok)
	e.state = t.State
	if t.Entry != nil {
		e.history.Append(*t.Entry)
		e.logger.Debug("calculation recorded", "expression", t.Entry.Expression, "result", t.Entry.Result)
	}
	switch t.Outcome {
	case Ignored:
		e.logger.Debug("token ignored", "token", tok.String(), "kind", tok.Kind.String())
	case DivisionByZero, Overflow:
		e.logger.Info("calculation failed", "token", tok.String(), "outcome", t.Outcome.String())
	}
	return t
}

// Recall loads the result at history index into the current operand. The
// next digit typed replaces it.
func (e *Engine) Recall(index int) (types.EngineState, error) {
	result, err := e.history.Select(index)
	if err != nil {
		return e.state, err
	}
	e.state.CurrentOperand = result
	e.state.AwaitingFreshInput = true
	e.state.Error = false
	return e.state, nil
}

// ClearHistory empties the history without touching the input state.
func (e *Engine) ClearHistory() {
	e.history.Clear()
	e.logger.Debug("history cleared")
}

// State returns a copy of the current state.
func (e *Engine) State() types.EngineState {
	return e.state
}

// History returns the engine's history log.
func (e *Engine) History() *History {
	return e.history
}
