package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/internal/session"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	var (
		portFlag    = flag.Int("port", cfg.MCPPort, "TCP port to listen on (0 for stdio, GOCALC_MCP_PORT)")
		debugFlag   = flag.Bool("debug", false, "Enable debug logging")
		versionFlag = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *versionFlag {
		fmt.Printf("gocalc-mcp v%s\n", version)
		fmt.Println("Model Context Protocol server for a four-function calculator")
		os.Exit(0)
	}

	// stdout carries the protocol in stdio mode
	log.SetOutput(os.Stderr)
	logger := cfg.NewLogger(os.Stderr, *debugFlag)
	slog.SetDefault(logger)

	mcpServer := newServer(session.New(logger))

	if *portFlag == 0 {
		logger.Info("serving mcp over stdio")
		if err := server.ServeStdio(mcpServer); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer)
	logger.Info("serving mcp over http", "port", *portFlag)
	if err := httpServer.Start(fmt.Sprintf(":%d", *portFlag)); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// newServer builds the MCP server with every tool, resource and prompt
// acting on sess.
func newServer(sess *session.Session) *server.MCPServer {
	s := server.NewMCPServer(
		"gocalc-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	addKeyTools(s, sess)
	addHistoryTools(s, sess)
	addDisplayResource(s, sess)
	addHistoryResource(s, sess)
	addExplainPrompt(s)
	return s
}
