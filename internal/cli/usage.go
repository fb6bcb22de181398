package cli

import (
	"flag"
	"fmt"
)

// Usage prints the usage information for the gocalc command
func Usage() {
	fmt.Fprintf(Stderr, `gocalc - four-function calculator

Usage: gocalc [options] <command> [arguments]

Commands:
  eval <keys...>
    Press keys on a fresh calculator and print the display

  repl
    Read key lines from stdin and print the display after each line
    Meta commands: :history, :recall N, :clear-history, :keys, :quit

  run [-watch] [-debounce d] <script>
    Evaluate a key script, one line of keys per line, '#' starts a comment

  keys
    List the key names accepted by eval, repl and run

  mcp
    Serve the calculator as an MCP server over stdio

  version
    Show the current version

  help [command]
    Show help for a specific command

Options:
`)
	flag.PrintDefaults()
	fmt.Fprintf(Stderr, `
Environment:
  GOCALC_WIDTH, GOCALC_JSON, GOCALC_HISTORY_SHOWN set option defaults
  GOCALC_LOG_LEVEL sets the log level (debug, info, warn, error)

Examples:
  # Add two numbers
  gocalc eval 12+30=

  # Keys may be separated by spaces; named keys need them
  gocalc eval 5 . 2 ± Backspace

  # Chain operations; every completed step is kept in the history
  gocalc eval 2 + 3 × 4 =

  # Re-run a script whenever it is saved
  gocalc run -watch totals.calc

  # JSON output for scripting
  gocalc -json eval 7 ÷ 0 =
`)
}
