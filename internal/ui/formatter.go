package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/fatih/color"

	"qat/internal/coverage"
	"qat/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintCoverageSummary prints the per-file coverage table and totals
func (f *Formatter) PrintCoverageSummary(summaries []domain.FileSummary, output string) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                     Test Coverage Summary                     ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	width := len("File")
	for _, s := range summaries {
		if len(s.Path) > width {
			width = len(s.Path)
		}
	}

	fmt.Fprintf(f.out, "%-*s  %8s  %8s  %8s  %8s\n", width, "File", "% Stmts", "% Branch", "% Funcs", "% Lines")
	fmt.Fprintln(f.out, strings.Repeat("─", width+40))
	for _, s := range summaries {
		fmt.Fprintf(f.out, "%-*s", width, s.Path)
		for _, m := range []domain.Metric{s.Statements, s.Branches, s.Functions, s.Lines} {
			fmt.Fprint(f.out, "  ")
			percentColor(m).Fprintf(f.out, "%8s", coverage.FormatPercent(m.Percent()))
		}
		fmt.Fprintln(f.out)
	}

	if len(summaries) > 0 {
		total := coverage.Totals(summaries)
		fmt.Fprintln(f.out, strings.Repeat("─", width+40))
		fmt.Fprintf(f.out, "%-*s", width, total.Path)
		for _, m := range []domain.Metric{total.Statements, total.Branches, total.Functions, total.Lines} {
			fmt.Fprint(f.out, "  ")
			percentColor(m).Fprintf(f.out, "%8s", coverage.FormatPercent(m.Percent()))
		}
		fmt.Fprintln(f.out)
	}

	fmt.Fprintln(f.out)
	color.New(color.FgGreen).Fprintf(f.out, "✓ Coverage report for %d file(s) written to %s\n", len(summaries), output)
}

// PrintCoverageChange compares the totals of the previous summary with the current ones
func (f *Formatter) PrintCoverageChange(previous domain.CoverageMeta, current domain.FileEntry) {
	fmt.Fprintf(f.out, "Change since last summary (%s):\n", previous.Timestamp)

	rows := []struct {
		name     string
		from, to domain.MetricEntry
	}{
		{"Statements", previous.Totals.Statements, current.Statements},
		{"Branches", previous.Totals.Branches, current.Branches},
		{"Functions", previous.Totals.Functions, current.Functions},
		{"Lines", previous.Totals.Lines, current.Lines},
	}
	for _, r := range rows {
		delta := r.to.Percent - r.from.Percent
		c := color.New(color.FgWhite)
		switch {
		case delta > 0:
			c = color.New(color.FgGreen)
		case delta < 0:
			c = color.New(color.FgRed)
		}
		fmt.Fprintf(f.out, "  %-10s  %8s → %-8s ", r.name, coverage.FormatPercent(r.from.Percent), coverage.FormatPercent(r.to.Percent))
		c.Fprintf(f.out, "(%+.2f)\n", delta)
	}
}

// percentColor picks green for full coverage, yellow for partial, red for none
func percentColor(m domain.Metric) *color.Color {
	switch {
	case m.Total == 0:
		return color.New(color.FgWhite)
	case m.Covered == m.Total:
		return color.New(color.FgGreen)
	case m.Covered == 0:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgYellow)
	}
}

// PrintTestCases prints extracted test cases as a tree, with their steps and expected results
func (f *Formatter) PrintTestCases(cases []domain.TestCase) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d test case(s):\n\n", len(cases))

	for i, tc := range cases {
		isLast := i == len(cases)-1
		branch, indent := "├── ", "│   "
		if isLast {
			branch, indent = "└── ", "    "
		}

		color.New(color.FgCyan).Fprintf(f.out, "%s%s\n", branch, strings.ReplaceAll(tc.Title, "\n", " "))
		if tc.HasSteps() {
			fmt.Fprintf(f.out, "%s├── %s %s\n", indent, color.YellowString("Steps:"), tc.Steps)
		} else {
			fmt.Fprintf(f.out, "%s├── %s\n", indent, color.RedString("(no steps)"))
		}
		fmt.Fprintf(f.out, "%s└── %s %s\n", indent, color.YellowString("Expected:"), tc.ExpectedResult)
	}
}

// PrintMoves prints the outcome of each move
func (f *Formatter) PrintMoves(results []domain.MoveResult, dryRun bool) {
	for _, r := range results {
		from := filepath.ToSlash(r.Move.Source)
		to := filepath.ToSlash(r.Move.Destination)
		switch {
		case r.Error != nil:
			color.New(color.FgRed).Fprintf(f.out, "✗ %s → %s: %v\n", from, to, r.Error)
		case dryRun:
			color.New(color.FgYellow).Fprintf(f.out, "• %s → %s\n", from, to)
		default:
			color.New(color.FgGreen).Fprintf(f.out, "✓ %s → %s\n", from, to)
		}
	}
}

// PrintLayout prints the destination layout of the moved files as a tree
func (f *Formatter) PrintLayout(root string, results []domain.MoveResult) error {
	tree := gtree.NewRoot(root)
	nodes := make(map[string]*gtree.Node)

	for _, r := range results {
		if !r.Moved {
			continue
		}
		parent := tree
		key := ""
		for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(r.Move.Destination)), "/") {
			key += "/" + part
			node, ok := nodes[key]
			if !ok {
				node = parent.Add(part)
				nodes[key] = node
			}
			parent = node
		}
	}

	if err := gtree.OutputProgrammably(f.out, tree); err != nil {
		return fmt.Errorf("print layout: %w", err)
	}
	return nil
}
