package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/internal/session"
	"github.com/mamaar/gocalc/pkg/display"
	"github.com/mamaar/gocalc/pkg/types"
)

func addKeyTools(s *server.MCPServer, sess *session.Session) {
	pressKeysTool := mcp.NewTool("press_keys",
		mcp.WithDescription("Press calculator keys in order and return the display, the pending operation and the history"),
		mcp.WithString("keys",
			mcp.Required(),
			mcp.Description("Keys to press, e.g. '12+30=' or '5 . 2 ± Backspace'"),
		),
	)
	s.AddTool(pressKeysTool, pressKeysHandler(sess))

	stateTool := mcp.NewTool("calculator_state",
		mcp.WithDescription("Return the current display, pending operation, history and raw engine state"),
	)
	s.AddTool(stateTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(sess.Snapshot())
	})

	resetTool := mcp.NewTool("reset",
		mcp.WithDescription("Press clear-all. History is kept"),
	)
	s.AddTool(resetTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(sess.Reset())
	})
}

func pressKeysHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		keys, ok := args["keys"].(string)
		if !ok {
			return mcp.NewToolResultError("keys is required"), nil
		}

		snap, err := sess.Press(keys)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error pressing keys: %v", err)), nil
		}
		return jsonResult(snap)
	}
}

func addHistoryTools(s *server.MCPServer, sess *session.Session) {
	listTool := mcp.NewTool("list_history",
		mcp.WithDescription("List completed calculations, newest first"),
	)
	s.AddTool(listTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(historyItems(sess.History()))
	})

	recallTool := mcp.NewTool("recall_history",
		mcp.WithDescription("Load the result of a history entry into the display"),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("Position in the history, 0 is the newest entry"),
		),
	)
	s.AddTool(recallTool, recallHandler(sess))

	clearTool := mcp.NewTool("clear_history",
		mcp.WithDescription("Remove every history entry"),
	)
	s.AddTool(clearTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(sess.ClearHistory())
	})
}

func recallHandler(sess *session.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()

		// JSON numbers arrive as float64
		index, ok := args["index"].(float64)
		if !ok || index != float64(int(index)) {
			return mcp.NewToolResultError("index must be a whole number"), nil
		}

		snap, err := sess.Recall(int(index))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error recalling history: %v", err)), nil
		}
		return jsonResult(snap)
	}
}

func historyItems(entries []types.HistoryEntry) []display.Item {
	return display.Build(types.NewEngineState(), entries).History
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
