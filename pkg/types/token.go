package types

import "fmt"

// Operator is the binary operation held between two operands.
type Operator int

const (
	NoOperator Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Symbol returns the input symbol recorded for the operator.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

// Glyph returns the typographic form used in labels and history.
// Only subtraction differs from the input symbol.
func (o Operator) Glyph() string {
	if o == Subtract {
		return "−"
	}
	return o.Symbol()
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return "none"
	}
}

// MarshalText encodes the operator by name.
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes an operator name written by MarshalText.
func (o *Operator) UnmarshalText(b []byte) error {
	for _, op := range []Operator{NoOperator, Add, Subtract, Multiply, Divide} {
		if op.String() == string(b) {
			*o = op
			return nil
		}
	}
	return fmt.Errorf("unknown operator %q", b)
}

// ParseOperator maps an input symbol to an Operator. The ASCII forms
// "*" and "/" are accepted alongside "×" and "÷", and the display minus
// alongside "-".
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return Add, true
	case "-", "−":
		return Subtract, true
	case "×", "*", "x":
		return Multiply, true
	case "÷", "/":
		return Divide, true
	}
	return NoOperator, false
}

// TokenKind classifies an input token.
type TokenKind int

const (
	DigitToken TokenKind = iota
	DecimalPointToken
	OperatorToken
	PercentToken
	SignToggleToken
	ClearAllToken
	BackspaceToken
	EqualsToken
	HistorySelectToken
	HistoryClearToken
)

func (k TokenKind) String() string {
	switch k {
	case DigitToken:
		return "digit"
	case DecimalPointToken:
		return "decimal-point"
	case OperatorToken:
		return "operator"
	case PercentToken:
		return "percent"
	case SignToggleToken:
		return "sign-toggle"
	case ClearAllToken:
		return "clear-all"
	case BackspaceToken:
		return "backspace"
	case EqualsToken:
		return "equals"
	case HistorySelectToken:
		return "history-select"
	case HistoryClearToken:
		return "clear-history"
	default:
		return "unknown"
	}
}

// Token is one discrete input event.
type Token struct {
	Kind TokenKind
	// Digit is set for DigitToken, '0' through '9'.
	Digit byte
	// Operator is set for OperatorToken.
	Operator Operator
	// Index is set for HistorySelectToken, 0 being the newest entry.
	Index int
}

// Constructors for each token class.
func Digit(d byte) Token { return Token{Kind: DigitToken, Digit: d} }
func DecimalPoint() Token { return Token{Kind: DecimalPointToken} }
func OperatorKey(op Operator) Token { return Token{Kind: OperatorToken, Operator: op} }
func Percent() Token { return Token{Kind: PercentToken} }
func SignToggle() Token { return Token{Kind: SignToggleToken} }
func ClearAll() Token { return Token{Kind: ClearAllToken} }
func Backspace() Token { return Token{Kind: BackspaceToken} }
func Equals() Token { return Token{Kind: EqualsToken} }
func HistorySelect(index int) Token { return Token{Kind: HistorySelectToken, Index: index} }
func HistoryClear() Token { return Token{Kind: HistoryClearToken} }

func (t Token) String() string {
	switch t.Kind {
	case DigitToken:
		return string(t.Digit)
	case DecimalPointToken:
		return "."
	case OperatorToken:
		return t.Operator.Symbol()
	case PercentToken:
		return "%"
	case SignToggleToken:
		return "±"
	case ClearAllToken:
		return "C"
	case BackspaceToken:
		return "Backspace"
	case EqualsToken:
		return "="
	case HistorySelectToken:
		return fmt.Sprintf("recall:%d", t.Index)
	case HistoryClearToken:
		return "clear-history"
	default:
		return "?"
	}
}
