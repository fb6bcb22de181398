package tests_test

import (
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamaar/gocalc/tests/mcptest"
)

var transportFlag = flag.String("transport", "inprocess", "MCP transport: inprocess or process")
var binFlag = flag.String("bin", "./gocalc", "path to gocalc binary (used with -transport=process)")

func mcpTransport() mcptest.Transport {
	switch *transportFlag {
	case "process":
		return mcptest.Subprocess(*binFlag, "mcp")
	default:
		return mcptest.InProcess()
	}
}

func TestMCPSequences(t *testing.T) {
	for _, tc := range loadSequences(t) {
		t.Run(tc.Name, func(t *testing.T) {
			ctx := context.Background()
			sess := mcptest.Dial(ctx, t, mcpTransport())
			defer sess.Close()

			res := mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": tc.Keys})
			require.False(t, res.IsError, res.Text)

			assert.Equal(t, tc.Display, res.Get("view.result").String(), "display")
			assert.Equal(t, tc.Operation, res.Get("view.operation").String(), "operation")
			assert.Equal(t, int64(tc.Ignored), res.Get("ignored").Int(), "ignored keys")

			hist := mcptest.Call(ctx, t, sess, "list_history", nil)
			require.False(t, hist.IsError, hist.Text)
			require.Equal(t, int64(len(tc.History)), hist.Get("count").Int(), hist.Text)
			for i, want := range tc.History {
				entry := hist.Get("entries").Array()[i]
				assert.Equal(t, int64(i), entry.Get("index").Int())
				assert.Equal(t, want.Expression, entry.Get("expression").String())
				assert.Equal(t, want.Result, strings.TrimPrefix(entry.Get("result").String(), "= "))
			}
		})
	}
}

func TestMCPSessionPersistsAcrossCalls(t *testing.T) {
	ctx := context.Background()
	sess := mcptest.Dial(ctx, t, mcpTransport())
	defer sess.Close()

	mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "12 +"})
	res := mcptest.Call(ctx, t, sess, "calculator_state", nil)
	assert.Equal(t, "12 +", res.Get("view.operation").String())
	assert.Equal(t, "add", res.Get("state.pending_operator").String())
	assert.True(t, res.Get("state.awaiting_fresh_input").Bool())

	res = mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "30="})
	assert.Equal(t, "42", res.Get("view.result").String())
	assert.Equal(t, "12 + 30", res.Get("view.history.0.expression").String())
}

func TestMCPRecallAndClear(t *testing.T) {
	ctx := context.Background()
	sess := mcptest.Dial(ctx, t, mcpTransport())
	defer sess.Close()

	mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "6 × 7 = 2 + 2 = ×"})

	res := mcptest.Call(ctx, t, sess, "recall_history", map[string]any{"index": 1})
	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "42", res.Get("view.result").String())
	assert.Equal(t, "4 ×", res.Get("view.operation").String(), "recall keeps the pending operation")

	res = mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "="})
	assert.Equal(t, "168", res.Get("view.result").String())

	res = mcptest.Call(ctx, t, sess, "recall_history", map[string]any{"index": 7})
	assert.True(t, res.IsError, "out of range recall should fail")

	res = mcptest.Call(ctx, t, sess, "clear_history", nil)
	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "168", res.Get("view.result").String())
	assert.Equal(t, int64(0), res.Get("view.history.#").Int())
}

func TestMCPResetKeepsHistory(t *testing.T) {
	ctx := context.Background()
	sess := mcptest.Dial(ctx, t, mcpTransport())
	defer sess.Close()

	mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "1 + 1 = 5 +"})
	res := mcptest.Call(ctx, t, sess, "reset", nil)
	require.False(t, res.IsError, res.Text)
	assert.Equal(t, "0", res.Get("view.result").String())
	assert.Empty(t, res.Get("view.operation").String())
	assert.Equal(t, int64(1), res.Get("view.history.#").Int())
}

func TestMCPInvalidKeys(t *testing.T) {
	ctx := context.Background()
	sess := mcptest.Dial(ctx, t, mcpTransport())
	defer sess.Close()

	res := mcptest.Call(ctx, t, sess, "press_keys", map[string]any{"keys": "7 + ?"})
	assert.True(t, res.IsError)

	state := mcptest.Call(ctx, t, sess, "calculator_state", nil)
	assert.Equal(t, "0", state.Get("view.result").String(), "a rejected batch applies no keys")
}
