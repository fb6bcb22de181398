package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func addExplainPrompt(s *server.MCPServer) {
	explainPrompt := mcp.NewPrompt("explain_calculation",
		mcp.WithPromptDescription("Walk through how the calculator evaluates a key sequence"),
		mcp.WithArgument("expression",
			mcp.ArgumentDescription("Keys to explain, e.g. '2 + 3 × 4 ='"),
			mcp.RequiredArgument(),
		),
	)
	s.AddPrompt(explainPrompt, explainHandler)
}

func explainHandler(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	expression, ok := request.Params.Arguments["expression"]
	if !ok || expression == "" {
		return nil, fmt.Errorf("expression is required")
	}

	prompt := fmt.Sprintf(`Explain step by step how a basic four-function calculator evaluates these keys:

Keys: %s

The calculator has no operator precedence. Pressing an operator while a
calculation is pending completes it first, so "2 + 3 × 4 =" computes
(2 + 3) × 4. Every completed calculation is added to the history.
Division by zero shows "Error" and records nothing.

Use the press_keys tool to check the final display, then describe:
1. The display after each key
2. Each calculation that completes and its history entry
3. Any key that was ignored and why`, expression)

	return &mcp.GetPromptResult{
		Description: "Calculator evaluation walkthrough",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: prompt,
				},
			},
		},
	}, nil
}
