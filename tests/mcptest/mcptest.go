// Package mcptest provides test helpers for invoking gocalc MCP tools
// with swappable transports: in-process (fast) or subprocess (full binary).
package mcptest

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"

	internalmcp "github.com/mamaar/gocalc/internal/mcp"
)

// Session wraps an MCP ClientSession with cleanup logic.
type Session struct {
	*mcpsdk.ClientSession
	cancel context.CancelFunc
}

// Close tears down the session.
func (s *Session) Close() {
	_ = s.ClientSession.Close()
	if s.cancel != nil {
		s.cancel()
	}
}

// Transport selects how the MCP server is reached.
type Transport interface {
	connect(ctx context.Context, t testing.TB) (*Session, error)
}

// Dial connects to an MCP server using the given transport and checks that
// the calculator starts blank.
func Dial(ctx context.Context, t testing.TB, transport Transport) *Session {
	t.Helper()
	sess, err := transport.connect(ctx, t)
	if err != nil {
		t.Fatalf("mcptest.Dial: connect: %v", err)
	}
	result := Call(ctx, t, sess, "calculator_state", nil)
	if got := result.Get("view.result").String(); got != "0" {
		sess.Close()
		t.Fatalf("mcptest.Dial: calculator not blank, display %q", got)
	}
	return sess
}

// Result is the JSON text of a tool result.
type Result struct {
	IsError bool
	Text    string
}

// Get returns the value at a gjson path in the result text.
func (r Result) Get(path string) gjson.Result {
	return gjson.Get(r.Text, path)
}

// Call invokes a tool and returns its text content. Transport failures
// fail the test; tool errors are reported through Result.IsError.
func Call(ctx context.Context, t testing.TB, sess *Session, tool string, args map[string]any) Result {
	t.Helper()
	res, err := sess.CallTool(ctx, &mcpsdk.CallToolParams{Name: tool, Arguments: args})
	if err != nil {
		t.Fatalf("mcptest.Call %s: %v", tool, err)
	}
	out := Result{IsError: res.IsError}
	for _, c := range res.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			out.Text += tc.Text
		}
	}
	return out
}

// inProcess is the in-process transport using NewInMemoryTransports.
type inProcess struct{}

// InProcess returns a transport that runs the MCP server in-process.
func InProcess() Transport { return inProcess{} }

func (inProcess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := internalmcp.NewMCPServer(logger)
	server := internalmcp.NewServer(state, "test")

	serverT, clientT := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(ctx)
	go server.Run(ctx, serverT)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}

// subprocess is the subprocess transport using CommandTransport.
type subprocess struct {
	binPath string
	args    []string
}

// Subprocess returns a transport that shells out to the given binary, e.g.
// Subprocess("./gocalc", "mcp").
func Subprocess(bin string, args ...string) Transport {
	return subprocess{binPath: bin, args: args}
}

func (sp subprocess) connect(ctx context.Context, t testing.TB) (*Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, sp.binPath, sp.args...)

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0"}, nil)
	session, err := client.Connect(ctx, &mcpsdk.CommandTransport{Command: cmd}, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Session{ClientSession: session, cancel: cancel}, nil
}
