package calc

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/mamaar/gocalc/pkg/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// press parses keys and feeds them to e.
func press(t *testing.T, e *Engine, keys string) types.EngineState {
	t.Helper()
	toks, err := ParseKeys(keys)
	if err != nil {
		t.Fatalf("ParseKeys(%q): %v", keys, err)
	}
	return e.HandleAll(toks)
}

func TestEngine_Sequences(t *testing.T) {
	tests := []struct {
		name      string
		keys      string
		display   string
		operation types.Operator
		pending   string
	}{
		{"blank", "", "0", types.NoOperator, ""},
		{"leading zero suppressed", "0 5", "5", types.NoOperator, ""},
		{"many zeros", "0 0 0", "0", types.NoOperator, ""},
		{"digits concatenate", "1 2 3 4", "1234", types.NoOperator, ""},
		{"decimal from zero", ". 5", "0.5", types.NoOperator, ""},
		{"second decimal ignored", "1 . 2 . 3", "1.23", types.NoOperator, ""},
		{"addition", "1 2 + 3 =", "15", types.NoOperator, ""},
		{"subtraction", "3 - 1 0 =", "-7", types.NoOperator, ""},
		{"multiplication", "6 * 7 =", "42", types.NoOperator, ""},
		{"division", "7 / 2 =", "3.5", types.NoOperator, ""},
		{"float addition", "0.1 + 0.2 =", "0.30000000000000004", types.NoOperator, ""},
		{"pending operator", "3 +", "3", types.Add, "3"},
		{"second operand typed", "3 + 4", "4", types.Add, "3"},
		{"chained operator", "3 + 4 ×", "7", types.Multiply, "7"},
		{"chain to equals", "3 + 4 + 2 =", "9", types.NoOperator, ""},
		{"operator on blank ignored", "+", "0", types.NoOperator, ""},
		{"minus on blank ignored", "- 5", "5", types.NoOperator, ""},
		{"equals without operator", "5 =", "5", types.NoOperator, ""},
		{"percent", "5 0 %", "0.5", types.NoOperator, ""},
		{"percent of percent", "5 0 0 % %", "0.05", types.NoOperator, ""},
		{"sign toggle", "5 neg", "-5", types.NoOperator, ""},
		{"sign toggle twice", "5 neg neg", "5", types.NoOperator, ""},
		{"sign toggle drops trailing zero", "2 . 5 0 neg", "-2.5", types.NoOperator, ""},
		{"sign toggle on zero", "neg", "0", types.NoOperator, ""},
		{"backspace", "1 2 3 Backspace", "12", types.NoOperator, ""},
		{"backspace last digit", "7 Backspace", "0", types.NoOperator, ""},
		{"backspace lone sign", "5 neg Backspace", "0", types.NoOperator, ""},
		{"backspace decimal point", "5 . Backspace", "5", types.NoOperator, ""},
		{"clear all", "1 2 + 3 C", "0", types.NoOperator, ""},
		{"result replaced by digit", "2 + 2 = 9", "9", types.NoOperator, ""},
		{"operator on result", "2 + 2 = × 3 =", "12", types.NoOperator, ""},
		{"negative operand", "5 neg × 3 =", "-15", types.NoOperator, ""},
		{"overflow to exponent form", "1 0 0 0 0 0 0 0 0 0 0 × 1 0 0 0 0 0 0 0 0 0 0 0 =", "1e+21", types.NoOperator, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			s := press(t, e, tt.keys)
			if s.Display() != tt.display {
				t.Errorf("display = %q, want %q", s.Display(), tt.display)
			}
			if s.PendingOperator != tt.operation {
				t.Errorf("pending operator = %v, want %v", s.PendingOperator, tt.operation)
			}
			if s.PendingOperand != tt.pending {
				t.Errorf("pending operand = %q, want %q", s.PendingOperand, tt.pending)
			}
		})
	}
}

func TestEngine_ClearAllIdempotent(t *testing.T) {
	once := newTestEngine(t)
	press(t, once, "4 × 5 = 6 + 1 C")

	many := newTestEngine(t)
	press(t, many, "4 × 5 = 6 + 1 C C C")

	if once.State() != many.State() {
		t.Errorf("states differ: %+v vs %+v", once.State(), many.State())
	}
	if once.State() != types.NewEngineState() {
		t.Errorf("clear-all did not restore defaults: %+v", once.State())
	}
	if once.History().Len() != 1 || many.History().Len() != 1 {
		t.Errorf("clear-all must not touch history, got %d and %d entries", once.History().Len(), many.History().Len())
	}
}

func TestEngine_ChainHistoryPerStep(t *testing.T) {
	e := newTestEngine(t)
	s := press(t, e, "3 + 4 + 2 =")
	if s.CurrentOperand != "9" {
		t.Fatalf("result = %q, want 9", s.CurrentOperand)
	}

	got := e.History().Entries()
	want := []types.HistoryEntry{
		{Expression: "7 + 2", Result: "9"},
		{Expression: "3 + 4", Result: "7"},
	}
	if len(got) != len(want) {
		t.Fatalf("history has %d entries, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEngine_HistoryUsesGlyphs(t *testing.T) {
	e := newTestEngine(t)
	press(t, e, "9 - 4 =")
	press(t, e, "8 / 2 =")
	press(t, e, "3 * 3 =")

	entries := e.History().Entries()
	wantExpr := []string{"3 × 3", "8 ÷ 2", "9 − 4"}
	for i, want := range wantExpr {
		if entries[i].Expression != want {
			t.Errorf("entry %d expression = %q, want %q", i, entries[i].Expression, want)
		}
	}
}

func TestEngine_DivisionByZero(t *testing.T) {
	e := newTestEngine(t)
	s := press(t, e, "5 ÷ 0 =")

	if s.Display() != types.ErrorDisplay {
		t.Errorf("display = %q, want %q", s.Display(), types.ErrorDisplay)
	}
	if s.CurrentOperand == types.ErrorDisplay {
		t.Error("the sentinel must not become the current operand")
	}
	if e.History().Len() != 0 {
		t.Errorf("division by zero must not be recorded, got %d entries", e.History().Len())
	}
	if s.HasPending() {
		t.Error("pending calculation should be cleared")
	}

	s = press(t, e, "7")
	if s.Display() != "7" {
		t.Errorf("next digit should start fresh input, display = %q", s.Display())
	}
	if s.Error {
		t.Error("error flag should last a single step")
	}
}

func TestEngine_DivisionByZeroInChain(t *testing.T) {
	e := newTestEngine(t)
	s := press(t, e, "5 ÷ 0 +")

	if !s.Error {
		t.Fatal("expected error step")
	}
	if s.PendingOperator != types.NoOperator {
		t.Errorf("operator must not be pended after a failed chain, got %v", s.PendingOperator)
	}
	if e.History().Len() != 0 {
		t.Errorf("history should be empty, got %d", e.History().Len())
	}
}

func TestEngine_DivideByNegativeZero(t *testing.T) {
	e := newTestEngine(t)
	s := press(t, e, "5 ÷ 0 neg =")
	if !s.Error {
		t.Errorf("dividing by -0 is dividing by zero, got %+v", s)
	}
}

func TestEngine_Recall(t *testing.T) {
	e := newTestEngine(t)
	press(t, e, "1 . 5 + 1 =")
	press(t, e, "2 × 8 =")

	s, err := e.Recall(1)
	if err != nil {
		t.Fatalf("Recall: %v", err)
	}
	if s.CurrentOperand != "2.5" {
		t.Errorf("recalled operand = %q, want 2.5", s.CurrentOperand)
	}
	if !s.AwaitingFreshInput {
		t.Error("recall must set fresh input")
	}

	s = press(t, e, "4")
	if s.CurrentOperand != "4" {
		t.Errorf("digit after recall should replace the operand, got %q", s.CurrentOperand)
	}
}

func TestEngine_RecallIntoPendingCalculation(t *testing.T) {
	e := newTestEngine(t)
	press(t, e, "6 × 7 =")
	press(t, e, "1 0 + recall:0 =")

	if got := e.State().CurrentOperand; got != "52" {
		t.Errorf("10 + recalled 42 = %q, want 52", got)
	}
}

func TestEngine_RecallOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	press(t, e, "8")

	_, err := e.Recall(0)
	var calcErr *types.CalcError
	if !errors.As(err, &calcErr) || calcErr.Type != types.HistoryIndexOutOfRange {
		t.Fatalf("expected HistoryIndexOutOfRange, got %v", err)
	}

	// Through Handle the bad recall is a no-op.
	tr := e.Apply(types.HistorySelect(3))
	if tr.Outcome != Ignored {
		t.Errorf("outcome = %v, want ignored", tr.Outcome)
	}
	if e.State().CurrentOperand != "8" {
		t.Errorf("state changed on ignored recall: %+v", e.State())
	}
}

func TestEngine_ClearHistory(t *testing.T) {
	e := newTestEngine(t)
	press(t, e, "1 + 1 = 2 + 2 =")
	if e.History().Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", e.History().Len())
	}

	before := e.State()
	press(t, e, "clear-history")
	if e.History().Len() != 0 {
		t.Errorf("history not cleared, %d entries left", e.History().Len())
	}
	if e.State() != before {
		t.Errorf("clear-history changed input state: %+v -> %+v", before, e.State())
	}
}

func TestEngine_NilLogger(t *testing.T) {
	e := NewEngine(nil)
	if got := e.Handle(types.Digit('3')).CurrentOperand; got != "3" {
		t.Errorf("got %q, want 3", got)
	}
}
