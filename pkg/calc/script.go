package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mamaar/gocalc/pkg/types"
)

// ScriptLine is one non-empty line of a key script.
type ScriptLine struct {
	Line   int
	Keys   string
	Tokens []types.Token
}

// ParseScript reads a key script: one line of keys per line, blank lines
// and text after '#' ignored. Every unreadable line is reported in a
// single *types.ScriptError.
func ParseScript(r io.Reader, path string) ([]ScriptLine, error) {
	var (
		lines  []ScriptLine
		issues []*types.CalcError
	)

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text, _, _ := strings.Cut(sc.Text(), "#")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		toks, err := ParseKeys(text)
		if err != nil {
			var calcErr *types.CalcError
			if errors.As(err, &calcErr) {
				issue := *calcErr
				issue.Type = types.InvalidScript
				issue.Line = n
				issue.Cause = err
				issues = append(issues, &issue)
				continue
			}
			return nil, err
		}
		lines = append(lines, ScriptLine{Line: n, Keys: text, Tokens: toks})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(issues) > 0 {
		return nil, &types.ScriptError{Path: path, Issues: issues}
	}
	return lines, nil
}

// LoadScript opens and parses the key script at path.
func LoadScript(path string) ([]ScriptLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f, path)
}

// LineResult is the engine state after one script line.
type LineResult struct {
	Line  int               `json:"line"`
	Keys  string            `json:"keys"`
	State types.EngineState `json:"state"`
}

// RunScript presses the keys of each line on e in order and records the
// state reached after every line.
func RunScript(e *Engine, lines []ScriptLine) []LineResult {
	results := make([]LineResult, 0, len(lines))
	for _, l := range lines {
		results = append(results, LineResult{
			Line:  l.Line,
			Keys:  l.Keys,
			State: e.HandleAll(l.Tokens),
		})
	}
	return results
}
