package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/pkg/display"
	"github.com/mamaar/gocalc/pkg/types"
)

// --- list_history ---

type ListHistoryInput struct{}

// --- recall_history ---

type RecallHistoryInput struct {
	Index int `json:"index" jsonschema:"position in the history, 0 is the newest entry"`
}

// --- clear_history ---

type ClearHistoryInput struct{}

func registerHistoryTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "list_history",
		Description: "List completed calculations, newest first. The index of an entry is what recall_history expects.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ListHistoryInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(historyResult(state.session.History())), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "recall_history",
		Description: "Load the result of a history entry into the display. A pending operation is kept so the value can be used as its second operand.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in RecallHistoryInput) (*mcpsdk.CallToolResult, any, error) {
		snap, err := state.session.Recall(in.Index)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(snap), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "clear_history",
		Description: "Remove every history entry. The display and pending operation are not changed.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ClearHistoryInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.session.ClearHistory()), nil, nil
	})
}

func historyResult(entries []types.HistoryEntry) HistoryResult {
	v := display.Build(types.NewEngineState(), entries)
	return HistoryResult{Count: len(v.History), Entries: v.History}
}
