package main

import (
	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/cli/commands"
)

func main() {
	app := cli.NewApp()
	app.Initialize()

	runner := cli.NewRunner()
	registerCommands(runner)
	app.Run(runner)
}

func registerCommands(r *cli.Runner) {
	r.RegisterCommand("eval", commands.EvalCommand)
	r.RegisterCommand("repl", commands.ReplCommand)
	r.RegisterCommand("run", commands.RunCommand)
	r.RegisterCommand("keys", commands.KeysCommand)
	r.RegisterCommand("mcp", commands.MCPCommand)
	r.RegisterCommand("version", commands.VersionCommand)
	r.RegisterCommand("help", commands.HelpCommand)
}
