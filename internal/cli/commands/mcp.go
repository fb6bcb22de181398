package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/cli"
	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// MCPCommand serves the calculator tools over stdio until the client
// disconnects or the process is interrupted.
func MCPCommand(args []string) error {
	if len(args) > 0 {
		return usageError("mcp", "gocalc mcp")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state := internalmcp.NewMCPServer(cli.Logger)
	server := internalmcp.NewServer(state, cli.Version)

	cli.Logger.Info("serving mcp over stdio")
	err := server.Run(ctx, &mcpsdk.StdioTransport{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
