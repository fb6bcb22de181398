package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/internal/session"
)

const (
	displayURI = "calculator://display"
	historyURI = "calculator://history"
)

func addDisplayResource(s *server.MCPServer, sess *session.Session) {
	displayResource := mcp.NewResource(
		displayURI,
		"Calculator display",
		mcp.WithResourceDescription("Result line, pending operation and raw engine state"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(displayResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		snap := sess.Snapshot()
		return jsonResource(displayURI, map[string]any{
			"result":    snap.View.Result,
			"operation": snap.View.Operation,
			"state":     snap.State,
		})
	})
}

func addHistoryResource(s *server.MCPServer, sess *session.Session) {
	historyResource := mcp.NewResource(
		historyURI,
		"Calculator history",
		mcp.WithResourceDescription("Completed calculations, newest first"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(historyResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return jsonResource(historyURI, historyItems(sess.History()))
	})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
