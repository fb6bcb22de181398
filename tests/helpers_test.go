package tests_test

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mamaar/gocalc/internal/cli"
	"github.com/mamaar/gocalc/internal/config"
	"github.com/mamaar/gocalc/pkg/types"
)

var update = flag.Bool("update", false, "update golden files")

// sequenceCase is one entry of testdata/sequences.yaml.
type sequenceCase struct {
	Name      string               `yaml:"name"`
	Keys      string               `yaml:"keys"`
	Display   string               `yaml:"display"`
	Operation string               `yaml:"operation"`
	Ignored   int                  `yaml:"ignored"`
	History   []types.HistoryEntry `yaml:"history"`
}

func loadSequences(t *testing.T) []sequenceCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "sequences.yaml"))
	if err != nil {
		t.Fatalf("read sequences: %v", err)
	}
	var cases []sequenceCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parse sequences: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no sequences found")
	}
	return cases
}

// copyScript copies a fixture script into a temp dir and returns its path.
func copyScript(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "scripts", name+".calc"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), name+".calc")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("copy fixture: %v", err)
	}
	return path
}

// captureCLI points the cli output at a buffer with fixed flags for the
// duration of the test.
func captureCLI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var out bytes.Buffer
	oldOut, oldErr, oldFlags := cli.Stdout, cli.Stderr, cli.GlobalFlags
	t.Cleanup(func() {
		cli.Stdout, cli.Stderr, cli.GlobalFlags = oldOut, oldErr, oldFlags
	})
	cli.Stdout = &out
	cli.Stderr = &out
	cli.GlobalFlags = cli.InitFlags(flag.NewFlagSet("golden", flag.ContinueOnError), config.Config{
		Width:        20,
		HistoryShown: 10,
	})
	return &out
}

// compareGolden compares actual against testdata/scripts/<name>.golden. If
// -update is set, it writes actual to the golden file instead.
func compareGolden(t *testing.T, name, actual, tmpDir string) {
	t.Helper()
	goldenPath := filepath.Join("testdata", "scripts", name+".golden")
	actual = normalizeTempPaths(actual, tmpDir)

	if *update {
		if err := os.WriteFile(goldenPath, []byte(actual), 0o644); err != nil {
			t.Errorf("failed to update golden file %s: %v", goldenPath, err)
		}
		return
	}

	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("cannot read golden file %s: %v", goldenPath, err)
	}
	if actual != string(golden) {
		t.Errorf("mismatch for %s:\n%s", name, unifiedDiff(string(golden), actual))
	}
}

// normalizeTempPaths replaces occurrences of the temp directory path with a
// stable placeholder, so golden files don't depend on the host or
// run-specific paths.
func normalizeTempPaths(s, tmpDir string) string {
	if tmpDir != "" {
		s = strings.ReplaceAll(s, tmpDir, "$TMPDIR")
	}
	return s
}

// unifiedDiff produces a simple line-by-line diff between two strings.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := len(expectedLines)
	if len(actualLines) > maxLen {
		maxLen = len(actualLines)
	}

	for i := 0; i < maxLen; i++ {
		var eLine, aLine string
		haveE, haveA := i < len(expectedLines), i < len(actualLines)
		if haveE {
			eLine = expectedLines[i]
		}
		if haveA {
			aLine = actualLines[i]
		}

		if haveE && haveA && eLine == aLine {
			fmt.Fprintf(&buf, " %s\n", eLine)
		} else {
			if haveE {
				fmt.Fprintf(&buf, "-%s\n", eLine)
			}
			if haveA {
				fmt.Fprintf(&buf, "+%s\n", aLine)
			}
		}
	}
	return buf.String()
}
