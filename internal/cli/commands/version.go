package commands

import (
	"fmt"

	"github.com/mamaar/gocalc/internal/cli"
)

// VersionCommand handles the version command
func VersionCommand(args []string) error {
	if len(args) > 0 {
		fmt.Fprintln(cli.Stdout, `Version Command - Show application version

Usage: gocalc version

Shows the current version of gocalc.`)
		return nil
	}

	cli.ShowVersion()
	return nil
}
