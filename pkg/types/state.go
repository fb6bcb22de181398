package types

// DefaultOperand is the operand shown on a blank calculator.
const DefaultOperand = "0"

// ErrorDisplay is the sentinel shown for the step that divided by zero.
const ErrorDisplay = "Error"

// EngineState is the complete input state of the calculator.
//
// CurrentOperand is always a decimal numeral (optionally signed, at most
// one decimal point) or "0". PendingOperand is empty when no binary
// calculation is in progress.
type EngineState struct {
	CurrentOperand     string   `json:"current_operand"`
	PendingOperand     string   `json:"pending_operand,omitempty"`
	PendingOperator    Operator `json:"pending_operator"`
	AwaitingFreshInput bool     `json:"awaiting_fresh_input"`
	// Error marks the single step that produced a division by zero.
	Error bool `json:"error,omitempty"`
}

// NewEngineState returns the startup state.
func NewEngineState() EngineState {
	return EngineState{CurrentOperand: DefaultOperand}
}

// HasPending reports whether a binary calculation is waiting for its
// second operand.
func (s EngineState) HasPending() bool {
	return s.PendingOperand != "" && s.PendingOperator != NoOperator
}

// Display returns the text of the result line.
func (s EngineState) Display() string {
	if s.Error {
		return ErrorDisplay
	}
	return s.CurrentOperand
}

// HistoryEntry records one completed calculation.
type HistoryEntry struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}
