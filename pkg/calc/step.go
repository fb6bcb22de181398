package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/mamaar/gocalc/pkg/types"
)

// Outcome describes what a token did to the state.
type Outcome int

const (
	// Applied means the token changed the calculation.
	Applied Outcome = iota
	// Ignored means the token does not apply in the current state.
	Ignored
	// DivisionByZero means a calculation divided by exactly zero.
	DivisionByZero
	// Overflow means a calculation left the finite float64 range.
	Overflow
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	case DivisionByZero:
		return "division by zero"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Failed reports whether the outcome is an error step.
func (o Outcome) Failed() bool {
	return o == DivisionByZero || o == Overflow
}

// Transition is the result of handling one token.
type Transition struct {
	State types.EngineState
	// Entry is the completed calculation to record, if any.
	Entry   *types.HistoryEntry
	Outcome Outcome
}

// Step computes the state that follows s after tok. It does not touch any
// history; the caller records Transition.Entry. History tokens are not
// engine transitions and come back Ignored.
func Step(s types.EngineState, tok types.Token) Transition {
	// The error sentinel lasts for exactly one step.
	s.Error = false

	switch tok.Kind {
	case types.DigitToken:
		if tok.Digit < '0' || tok.Digit > '9' {
			return ignored(s)
		}
		return appendInput(s, string(tok.Digit))
	case types.DecimalPointToken:
		return appendInput(s, ".")
	case types.SignToggleToken:
		return mapOperand(s, func(v float64) float64 { return v * -1 })
	case types.PercentToken:
		return mapOperand(s, func(v float64) float64 { return v / 100 })
	case types.ClearAllToken:
		return applied(types.NewEngineState())
	case types.BackspaceToken:
		return deleteLast(s)
	case types.OperatorToken:
		return chooseOperator(s, tok.Operator)
	case types.EqualsToken:
		return calculate(s)
	}
	return ignored(s)
}

func applied(s types.EngineState) Transition {
	return Transition{State: s, Outcome: Applied}
}

func ignored(s types.EngineState) Transition {
	return Transition{State: s, Outcome: Ignored}
}

func failed(outcome Outcome) Transition {
	return Transition{
		State: types.EngineState{
			CurrentOperand:     types.DefaultOperand,
			AwaitingFreshInput: true,
			Error:              true,
		},
		Outcome: outcome,
	}
}

func appendInput(s types.EngineState, in string) Transition {
	if s.AwaitingFreshInput {
		s.CurrentOperand = types.DefaultOperand
		s.AwaitingFreshInput = false
	}

	cur := s.CurrentOperand
	if in == "." && strings.ContainsAny(cur, ".eE") {
		return ignored(s)
	}

	switch {
	case in != "." && cur == "0":
		s.CurrentOperand = in
	case in != "." && cur == "-0":
		s.CurrentOperand = "-" + in
	default:
		s.CurrentOperand = cur + in
	}
	return applied(s)
}

func mapOperand(s types.EngineState, fn func(float64) float64) Transition {
	v, ok := ParseNumber(s.CurrentOperand)
	if !ok {
		return ignored(s)
	}
	r := fn(v)
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return ignored(s)
	}
	s.CurrentOperand = FormatNumber(r)
	return applied(s)
}

func deleteLast(s types.EngineState) Transition {
	cur := s.CurrentOperand
	if len(cur) <= 1 {
		s.CurrentOperand = types.DefaultOperand
		return applied(s)
	}
	trimmed := cur[:len(cur)-1]
	// A lone sign or a dangling exponent is not a numeral.
	if _, ok := ParseNumber(trimmed); !ok {
		trimmed = types.DefaultOperand
	}
	s.CurrentOperand = trimmed
	return applied(s)
}

func chooseOperator(s types.EngineState, op types.Operator) Transition {
	if op == types.NoOperator {
		return ignored(s)
	}
	if s.PendingOperand == "" && s.CurrentOperand == types.DefaultOperand {
		return ignored(s)
	}

	var entry *types.HistoryEntry
	if s.PendingOperand != "" {
		t := calculate(s)
		if t.Outcome.Failed() {
			return t
		}
		s, entry = t.State, t.Entry
	}

	s.PendingOperand = s.CurrentOperand
	s.PendingOperator = op
	s.AwaitingFreshInput = true
	return Transition{State: s, Entry: entry, Outcome: Applied}
}

func calculate(s types.EngineState) Transition {
	prev, ok := ParseNumber(s.PendingOperand)
	if !ok {
		return ignored(s)
	}
	cur, ok := ParseNumber(s.CurrentOperand)
	if !ok {
		return ignored(s)
	}

	var result float64
	switch s.PendingOperator {
	case types.Add:
		result = prev + cur
	case types.Subtract:
		result = prev - cur
	case types.Multiply:
		result = prev * cur
	case types.Divide:
		if cur == 0 {
			return failed(DivisionByZero)
		}
		result = prev / cur
	default:
		return ignored(s)
	}
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return failed(Overflow)
	}

	entry := &types.HistoryEntry{
		Expression: fmt.Sprintf("%s %s %s", s.PendingOperand, s.PendingOperator.Glyph(), s.CurrentOperand),
		Result:     FormatNumber(result),
	}
	return Transition{
		State: types.EngineState{
			CurrentOperand:     entry.Result,
			AwaitingFreshInput: true,
		},
		Entry:   entry,
		Outcome: Applied,
	}
}
