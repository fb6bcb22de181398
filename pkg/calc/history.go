package calc

import (
	"fmt"

	"github.com/mamaar/gocalc/pkg/types"
)

// History is the log of completed calculations, read newest first.
// It has no size bound.
type History struct {
	// entries are stored oldest first so Append stays O(1).
	entries []types.HistoryEntry
}

// NewHistory returns an empty log.
func NewHistory() *History {
	return &History{}
}

// Append records entry as the most recent calculation.
func (h *History) Append(entry types.HistoryEntry) {
	h.entries = append(h.entries, entry)
}

// Clear empties the log.
func (h *History) Clear() {
	h.entries = nil
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Select returns the result stored at index, 0 being the newest entry.
func (h *History) Select(index int) (string, error) {
	entry, err := h.At(index)
	if err != nil {
		return "", err
	}
	return entry.Result, nil
}

// At returns the entry at index, 0 being the newest entry.
func (h *History) At(index int) (types.HistoryEntry, error) {
	if index < 0 || index >= len(h.entries) {
		return types.HistoryEntry{}, &types.CalcError{
			Type:    types.HistoryIndexOutOfRange,
			Message: fmt.Sprintf("no history entry at %d (have %d)", index, len(h.entries)),
		}
	}
	return h.entries[len(h.entries)-1-index], nil
}

// Entries returns a copy of the log, newest first.
func (h *History) Entries() []types.HistoryEntry {
	out := make([]types.HistoryEntry, len(h.entries))
	for i, e := range h.entries {
		out[len(h.entries)-1-i] = e
	}
	return out
}
