package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/session"
	"github.com/mamaar/gocalc/pkg/display"
)

const prompt = "> "

// ReplCommand reads key lines from stdin and prints the display after
// each one. Lines starting with ':' are meta commands.
func ReplCommand(args []string) error {
	if len(args) > 0 {
		return usageError("repl", "gocalc repl")
	}
	return repl(session.New(cli.Logger), cli.Stdin, cli.Stdout)
}

func repl(s *session.Session, in io.Reader, out io.Writer) error {
	interactive := !cli.JSONOutput()
	if interactive {
		fmt.Fprint(out, prompt)
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		quit, err := replLine(s, line, out)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		if interactive {
			fmt.Fprint(out, prompt)
		}
	}
	if interactive {
		fmt.Fprintln(out)
	}
	return sc.Err()
}

// replLine handles one input line and reports whether the loop should stop.
func replLine(s *session.Session, line string, out io.Writer) (bool, error) {
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		snap, err := s.Press(line)
		if err != nil {
			return false, err
		}
		return false, writeScreen(snap, out)
	}

	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true, nil
	case ":history":
		v := display.Build(s.Snapshot().State, s.History())
		if cli.JSONOutput() {
			return false, encodeLine(out, v.History)
		}
		return false, cli.NewRenderer().RenderHistory(out, v.History)
	case ":recall":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: :recall <index>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("recall: %q is not an index", fields[1])
		}
		snap, err := s.Recall(n)
		if err != nil {
			return false, err
		}
		return false, writeScreen(snap, out)
	case ":clear-history":
		return false, writeScreen(s.ClearHistory(), out)
	case ":keys":
		return false, display.KeyTable(out)
	default:
		return false, fmt.Errorf("unknown command %s", fields[0])
	}
}

func writeScreen(snap session.Snapshot, out io.Writer) error {
	if cli.JSONOutput() {
		return encodeLine(out, snap)
	}
	return cli.NewRenderer().RenderScreen(out, snap.View)
}
