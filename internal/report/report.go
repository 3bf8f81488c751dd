// Package report aggregates per-extension line counts and renders the final
// summary.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/c1ph3rc4t/clc/internal/filelock"
)

// Tally accumulates line counts per extension. Rows keep the order the
// extensions were resolved in, and every resolved extension gets a row even
// at zero.
type Tally struct {
	order  []string
	counts map[string]uint64
}

// NewTally creates a tally pre-seeded with zero rows for exts.
func NewTally(exts []string) *Tally {
	t := &Tally{counts: make(map[string]uint64, len(exts))}
	for _, ext := range exts {
		if _, ok := t.counts[ext]; ok {
			continue
		}
		t.counts[ext] = 0
		t.order = append(t.order, ext)
	}
	return t
}

// Add accumulates lines onto the row for ext, creating the row if the
// extension was not pre-seeded.
func (t *Tally) Add(ext string, lines uint64) {
	if _, ok := t.counts[ext]; !ok {
		t.order = append(t.order, ext)
	}
	t.counts[ext] += lines
}

// Count returns the accumulated count for ext.
func (t *Tally) Count(ext string) uint64 {
	return t.counts[ext]
}

// Total returns the sum across all rows.
func (t *Tally) Total() uint64 {
	var total uint64
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Render formats the summary as aligned rows, one per extension, with a
// total row last. Extensionless files render under the "(none)" label.
func (t *Tally) Render(colorize bool) string {
	label := func(s string) string { return s }
	number := func(s string) string { return s }
	totalLabel := func(s string) string { return s }
	if colorize {
		label = func(s string) string { return color.New(color.FgCyan).Sprint(s) }
		number = func(s string) string { return color.New(color.FgGreen).Sprint(s) }
		totalLabel = func(s string) string { return color.New(color.Bold).Sprint(s) }
	}

	width := len("total")
	for _, ext := range t.order {
		if len(rowLabel(ext)) > width {
			width = len(rowLabel(ext))
		}
	}

	var b strings.Builder
	for _, ext := range t.order {
		name := rowLabel(ext)
		pad := strings.Repeat(" ", width-len(name))
		fmt.Fprintf(&b, "%s%s  %s\n", label(name), pad, number(fmt.Sprintf("%d", t.counts[ext])))
	}
	pad := strings.Repeat(" ", width-len("total"))
	fmt.Fprintf(&b, "%s%s  %s\n", totalLabel("total"), pad, number(fmt.Sprintf("%d", t.Total())))
	return b.String()
}

func rowLabel(ext string) string {
	if ext == "" {
		return "(none)"
	}
	return ext
}

// Fprint renders the report to w, colorized when w is a terminal.
func (t *Tally) Fprint(w io.Writer) {
	colorize := false
	if f, ok := w.(*os.File); ok {
		colorize = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	fmt.Fprint(w, t.Render(colorize))
}

// WriteFile writes the plain rendering to path under a file lock, so two
// concurrent runs pointed at the same output file cannot interleave.
func (t *Tally) WriteFile(path string) error {
	if err := filelock.LockAndWrite(path, []byte(t.Render(false))); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	return nil
}
