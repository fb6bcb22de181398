package types

import "fmt"

// CalcError represents errors raised around the engine: unreadable keys,
// bad history positions, broken key scripts. Transitions that do not apply
// to the current state are never errors; they are ignored by the engine.
type CalcError struct {
	Type    ErrorType
	Message string
	Key     string
	Line    int
	Cause   error
}

func (e *CalcError) Error() string {
	switch {
	case e.Line > 0 && e.Key != "":
		return fmt.Sprintf("line %d: %q: %s", e.Line, e.Key, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	case e.Key != "":
		return fmt.Sprintf("%q: %s", e.Key, e.Message)
	}
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

type ErrorType int

const (
	InvalidKey ErrorType = iota
	HistoryIndexOutOfRange
	InvalidScript
	WatchError
)

func (t ErrorType) String() string {
	switch t {
	case InvalidKey:
		return "invalid key"
	case HistoryIndexOutOfRange:
		return "history index out of range"
	case InvalidScript:
		return "invalid script"
	case WatchError:
		return "watch error"
	default:
		return "unknown"
	}
}

// ScriptError collects every unreadable line of a key script.
type ScriptError struct {
	Path   string
	Issues []*CalcError
}

func (e *ScriptError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("%s: %v", e.Path, e.Issues[0])
	}
	return fmt.Sprintf("%s: %d invalid lines", e.Path, len(e.Issues))
}
