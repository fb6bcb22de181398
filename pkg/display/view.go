// Package display turns engine state into the text a front-end shows: the
// result line, the pending-operation label and the history list.
package display

import (
	"github.com/mamaar/gocalc/pkg/types"
)

// Item is one rendered history entry.
type Item struct {
	Index      int    `json:"index"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// View is a snapshot of everything a front-end renders.
type View struct {
	Result    string `json:"result"`
	Operation string `json:"operation"`
	History   []Item `json:"history"`
}

// OperationLabel returns "<pending> <glyph>" while an operator is pending
// and "" otherwise.
func OperationLabel(s types.EngineState) string {
	if s.PendingOperator == types.NoOperator {
		return ""
	}
	return s.PendingOperand + " " + s.PendingOperator.Glyph()
}

// Build assembles a View from the engine state and its history, newest
// entry first.
func Build(s types.EngineState, entries []types.HistoryEntry) View {
	v := View{
		Result:    s.Display(),
		Operation: OperationLabel(s),
		History:   make([]Item, 0, len(entries)),
	}
	for i, e := range entries {
		v.History = append(v.History, Item{
			Index:      i,
			Expression: e.Expression,
			Result:     "= " + e.Result,
		})
	}
	return v
}
