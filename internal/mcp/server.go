package mcp

import (
	"io"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mamaar/gocalc/internal/session"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "gocalc"

// MCPServer holds the shared state for the MCP tool handlers: one
// calculator session that every client request acts on.
type MCPServer struct {
	session *session.Session
	logger  *slog.Logger
}

// NewMCPServer creates a new MCPServer with the given logger. A nil logger
// discards output.
func NewMCPServer(logger *slog.Logger) *MCPServer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &MCPServer{
		session: session.New(logger),
		logger:  logger,
	}
}

// Session returns the calculator session behind the tools.
func (s *MCPServer) Session() *session.Session {
	return s.session
}

// NewServer builds a go-sdk MCP server with every calculator tool
// registered against state.
func NewServer(state *MCPServer, version string) *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: ServerName, Version: version}, nil)
	RegisterAllTools(server, state)
	state.logger.Debug("mcp server ready", "name", ServerName, "version", version)
	return server
}
