package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/mamaar/gocalc/pkg/calc"
)

const (
	minWidth     = 8
	DefaultWidth = 24
)

// Renderer draws a View as a boxed fixed-width screen followed by the
// history list.
type Renderer struct {
	// Width is the number of terminal cells inside the box.
	Width int
	// MaxHistory limits how many entries are drawn; 0 draws all of them.
	MaxHistory int
}

// NewRenderer returns a renderer with the given inner width, clamped to a
// usable minimum.
func NewRenderer(innerWidth, maxHistory int) *Renderer {
	if innerWidth < minWidth {
		innerWidth = minWidth
	}
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &Renderer{Width: innerWidth, MaxHistory: maxHistory}
}

// Render writes the screen and history for v.
func (r *Renderer) Render(w io.Writer, v View) error {
	if err := r.RenderScreen(w, v); err != nil {
		return err
	}
	return r.RenderHistory(w, v.History)
}

// RenderScreen writes only the boxed operation and result lines.
func (r *Renderer) RenderScreen(w io.Writer, v View) error {
	border := strings.Repeat("─", r.Width+2)
	lines := []string{
		"┌" + border + "┐",
		"│ " + r.alignRight(v.Operation) + " │",
		"│ " + r.alignRight(v.Result) + " │",
		"└" + border + "┘",
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// RenderHistory writes the history list numbered with recall indexes.
func (r *Renderer) RenderHistory(w io.Writer, items []Item) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No history")
		return err
	}
	shown := items
	if r.MaxHistory > 0 && len(shown) > r.MaxHistory {
		shown = shown[:r.MaxHistory]
	}

	var b strings.Builder
	b.WriteString("History\n")
	for _, it := range shown {
		fmt.Fprintf(&b, "  [%d] %s\n", it.Index, it.Expression)
		fmt.Fprintf(&b, "      %s\n", it.Result)
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		fmt.Fprintf(&b, "  … %d older\n", hidden)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// alignRight pads s on the left to the box width, or keeps its rightmost
// cells behind an ellipsis when it does not fit.
func (r *Renderer) alignRight(s string) string {
	n := CellWidth(s)
	if n <= r.Width {
		return strings.Repeat(" ", r.Width-n) + s
	}

	runes := []rune(s)
	kept := 0
	i := len(runes)
	for i > 0 {
		cw := runeCells(runes[i-1])
		if kept+cw > r.Width-1 {
			break
		}
		kept += cw
		i--
	}
	return strings.Repeat(" ", r.Width-1-kept) + "…" + string(runes[i:])
}

// CellWidth returns the number of terminal cells s occupies. East Asian
// wide and fullwidth runes take two cells; ambiguous runes such as × and ÷
// take one.
func CellWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

func runeCells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// KeyTable writes the key bindings as an aligned two-column table.
func KeyTable(w io.Writer) error {
	title := cases.Title(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tKEYS")
	for _, b := range calc.Bindings() {
		action := title.String(strings.ReplaceAll(b.Kind.String(), "-", " "))
		fmt.Fprintf(tw, "%s\t%s\n", action, strings.Join(b.Keys, "  "))
	}
	return tw.Flush()
}
