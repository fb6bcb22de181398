package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// --- press_keys ---

type PressKeysInput struct {
	Keys string `json:"keys" jsonschema:"keys to press in order, e.g. \"12+30=\" or \"5 . 2 ± Backspace\""`
}

// --- calculator_state ---

type CalculatorStateInput struct{}

// --- reset ---

type ResetInput struct{}

func registerKeyTools(s *mcpsdk.Server, state *MCPServer) {
	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "press_keys",
		Description: "Press calculator keys in order and return the display, the pending operation and the history. Keys that do not apply in the current state are ignored and counted.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in PressKeysInput) (*mcpsdk.CallToolResult, any, error) {
		snap, err := state.session.Press(in.Keys)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(snap), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "calculator_state",
		Description: "Return the current display, pending operation, history and raw engine state without pressing any key.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in CalculatorStateInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.session.Snapshot()), nil, nil
	})

	mcpsdk.AddTool(s, &mcpsdk.Tool{
		Name:        "reset",
		Description: "Press clear-all: the display returns to 0 and any pending operation is dropped. History is kept.",
	}, func(ctx context.Context, req *mcpsdk.CallToolRequest, in ResetInput) (*mcpsdk.CallToolResult, any, error) {
		return textResult(state.session.Reset()), nil, nil
	})
}
