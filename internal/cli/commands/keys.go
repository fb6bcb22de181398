package commands

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/pkg/calc"
	"github.com/mamaar/gocalc/pkg/display"
)

type keyBinding struct {
	Action string   `json:"action"`
	Keys   []string `json:"keys"`
}

// KeysCommand lists the accepted key names.
func KeysCommand(args []string) error {
	if len(args) > 0 {
		return usageError("keys", "gocalc keys")
	}
	if !cli.JSONOutput() {
		return display.KeyTable(cli.Stdout)
	}

	var out []keyBinding
	for _, b := range calc.Bindings() {
		out = append(out, keyBinding{Action: b.Kind.String(), Keys: b.Keys})
	}
	return cli.OutputJSON(out)
}
