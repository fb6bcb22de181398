package commands

import (
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

var helpTexts = map[string]string{
	"eval": `Eval Command - Press keys on a fresh calculator

Usage: gocalc eval <keys...>

Keys are read left to right. A word that is not a key name is read one
character at a time, so "12+30=" and "1 2 + 3 0 =" press the same keys.
Keys that do not apply in the current state are ignored.

Examples:
  gocalc eval 12+30=
  gocalc eval 9 ÷ 0 =
  gocalc -json eval 2 + 3 × 4 =`,

	"repl": `Repl Command - Interactive calculator

Usage: gocalc repl

Every input line is pressed on the same calculator and the display is
printed after it. History accumulates for the whole session.

Meta commands:
  :history         Show the history, newest first
  :recall N        Load history entry N into the display
  :clear-history   Remove every history entry
  :keys            List the key names
  :quit            Leave the repl`,

	"run": `Run Command - Evaluate a key script

Usage: ` + runUsage + `

A key script holds one line of keys per line. Blank lines are skipped and
'#' starts a comment. Every line runs on the same calculator and the
display after each line is printed, followed by the final history.

Options:
  -watch        Keep running and evaluate again whenever the script changes
  -debounce d   Quiet period before a change is evaluated (default 150ms)

Examples:
  gocalc run totals.calc
  gocalc run -watch totals.calc`,

	"keys": `Keys Command - List key names

Usage: gocalc keys

Prints every key name accepted by eval, repl and run, grouped by action.`,

	"mcp": `MCP Command - Serve the calculator over MCP

Usage: gocalc mcp

Serves the tools press_keys, calculator_state, reset, list_history,
recall_history and clear_history over stdio. All clients share one
calculator.`,

	"version": `Version Command - Show application version

Usage: gocalc version`,
}

// HelpCommand handles help requests for specific commands
func HelpCommand(args []string) error {
	if len(args) == 0 {
		cli.Usage()
		return nil
	}
	text, ok := helpTexts[args[0]]
	if !ok {
		fmt.Fprintf(cli.Stderr, "Unknown command: %s\n\n", args[0])
		cli.Usage()
		return nil
	}
	fmt.Fprintln(cli.Stdout, text)
	return nil
}
