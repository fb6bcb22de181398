package commands

import (
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/session"
)

// EvalCommand presses the given keys on a fresh calculator and prints the
// display.
func EvalCommand(args []string) error {
	if len(args) == 0 {
		return usageError("eval", "gocalc eval <keys...>")
	}

	s := session.New(cli.Logger)
	snap, err := s.Press(strings.Join(args, " "))
	if err != nil {
		return err
	}
	return printSnapshot(snap)
}
