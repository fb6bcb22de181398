package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/session"
	"github.com/mamaar/gocalc/pkg/display"
	"github.com/mamaar/gocalc/pkg/types"
)

// printSnapshot writes the snapshot as JSON, or as the boxed display
// followed by the history.
func printSnapshot(snap session.Snapshot) error {
	if cli.JSONOutput() {
		return cli.OutputJSON(snap)
	}
	if snap.Ignored > 0 {
		cli.Logger.Info("keys ignored", "count", snap.Ignored)
	}
	return cli.NewRenderer().Render(cli.Stdout, snap.View)
}

// printHistory writes the history list only.
func printHistory(entries []types.HistoryEntry) error {
	v := display.Build(types.NewEngineState(), entries)
	if cli.JSONOutput() {
		return cli.OutputJSON(v.History)
	}
	return cli.NewRenderer().RenderHistory(cli.Stdout, v.History)
}

// usageError reports a command invoked with the wrong arguments.
func usageError(command, usage string) error {
	return fmt.Errorf("%s: invalid arguments\nUsage: %s", command, usage)
}

// encodeLine writes v as a single line of JSON.
func encodeLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
