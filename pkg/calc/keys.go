package calc

import (
	"strconv"
	"strings"

	"github.com/mamaar/gocalc/pkg/types"
)

const recallPrefix = "recall:"

// namedKeys maps key names, including browser-style keyboard names, to
// tokens. Digits and operator symbols are handled separately.
var namedKeys = map[string]types.Token{
	".":             types.DecimalPoint(),
	"%":             types.Percent(),
	"=":             types.Equals(),
	"Enter":         types.Equals(),
	"enter":         types.Equals(),
	"C":             types.ClearAll(),
	"c":             types.ClearAll(),
	"AC":            types.ClearAll(),
	"Escape":        types.ClearAll(),
	"Esc":           types.ClearAll(),
	"clear":         types.ClearAll(),
	"Backspace":     types.Backspace(),
	"back":          types.Backspace(),
	"⌫":             types.Backspace(),
	"_":             types.SignToggle(),
	"±":             types.SignToggle(),
	"neg":           types.SignToggle(),
	"clear-history": types.HistoryClear(),
}

// ParseKey converts a single key name into a token.
func ParseKey(name string) (types.Token, error) {
	if tok, ok := namedKeys[name]; ok {
		return tok, nil
	}
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return types.Digit(name[0]), nil
	}
	if op, ok := types.ParseOperator(name); ok {
		return types.OperatorKey(op), nil
	}
	if rest, ok := strings.CutPrefix(name, recallPrefix); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return types.Token{}, &types.CalcError{
				Type:    types.InvalidKey,
				Message: "recall needs a non-negative history index",
				Key:     name,
				Cause:   err,
			}
		}
		return types.HistorySelect(n), nil
	}
	return types.Token{}, &types.CalcError{
		Type:    types.InvalidKey,
		Message: "unknown key",
		Key:     name,
	}
}

// ParseKeys splits input on whitespace. A word that names a key becomes
// that key; any other word is read one character at a time, so "12+3="
// yields the keys 1 2 + 3 =.
func ParseKeys(input string) ([]types.Token, error) {
	var toks []types.Token
	for _, word := range strings.Fields(input) {
		if strings.HasPrefix(word, recallPrefix) {
			tok, err := ParseKey(word)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			continue
		}
		if tok, err := ParseKey(word); err == nil {
			toks = append(toks, tok)
			continue
		}
		for _, r := range word {
			tok, err := ParseKey(string(r))
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		}
	}
	return toks, nil
}

// Binding describes the keys that produce one kind of token.
type Binding struct {
	Kind types.TokenKind
	Keys []string
}

// Bindings lists the accepted key names per token kind, in keypad order.
func Bindings() []Binding {
	return []Binding{
		{Kind: types.DigitToken, Keys: []string{"0-9"}},
		{Kind: types.DecimalPointToken, Keys: []string{"."}},
		{Kind: types.OperatorToken, Keys: []string{"+", "-", "−", "*", "×", "x", "/", "÷"}},
		{Kind: types.PercentToken, Keys: []string{"%"}},
		{Kind: types.SignToggleToken, Keys: []string{"_", "±", "neg"}},
		{Kind: types.EqualsToken, Keys: []string{"=", "Enter", "enter"}},
		{Kind: types.BackspaceToken, Keys: []string{"Backspace", "back", "⌫"}},
		{Kind: types.ClearAllToken, Keys: []string{"C", "c", "AC", "Escape", "Esc", "clear"}},
		{Kind: types.HistorySelectToken, Keys: []string{"recall:<n>"}},
		{Kind: types.HistoryClearToken, Keys: []string{"clear-history"}},
	}
}
