// Package report renders coverage summaries as a Markdown document.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"qat/internal/coverage"
	"qat/internal/domain"
)

// DefaultHTMLReport is where the detailed HTML report is expected
const DefaultHTMLReport = "contracts/coverage/index.html"

const tableHeader = "| File | % Stmts | Stmts | % Branch | Branch | % Funcs | Funcs | % Lines | Lines |\n" +
	"|---|---|---|---|---|---|---|---|---|\n"

// MarkdownWriter writes the coverage report
type MarkdownWriter struct {
	// IncludeTotals appends an "All files" row after the per-file rows
	IncludeTotals bool
	// HTMLReport is the path mentioned in the detailed report section
	HTMLReport string
}

// NewMarkdownWriter creates a new MarkdownWriter
func NewMarkdownWriter() *MarkdownWriter {
	return &MarkdownWriter{HTMLReport: DefaultHTMLReport}
}

// Write renders the full report for the given summaries
func (mw *MarkdownWriter) Write(w io.Writer, summaries []domain.FileSummary) error {
	bw := bufio.NewWriter(w)

	mw.writeIntro(bw)

	bw.WriteString(tableHeader)
	for _, s := range summaries {
		bw.WriteString(Row(s))
	}
	if mw.IncludeTotals {
		bw.WriteString(Row(coverage.Totals(summaries)))
	}

	mw.writeDetails(bw)

	return bw.Flush()
}

// WriteFile renders the report to path, replacing any existing file
func (mw *MarkdownWriter) WriteFile(path string, summaries []domain.FileSummary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if err := mw.Write(f, summaries); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	return f.Close()
}

// Row renders one table row
func Row(s domain.FileSummary) string {
	return fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
		s.Path,
		coverage.FormatPercent(s.Statements.Percent()), fraction(s.Statements),
		coverage.FormatPercent(s.Branches.Percent()), fraction(s.Branches),
		coverage.FormatPercent(s.Functions.Percent()), fraction(s.Functions),
		coverage.FormatPercent(s.Lines.Percent()), fraction(s.Lines),
	)
}

func fraction(m domain.Metric) string {
	return fmt.Sprintf("%d/%d", m.Covered, m.Total)
}

func (mw *MarkdownWriter) writeIntro(w *bufio.Writer) {
	w.WriteString("# Test Coverage Report\n\n")
	w.WriteString("This report provides an overview of the test coverage for your smart contracts.\n\n")

	w.WriteString("## Summary Report\n\n")
	w.WriteString("The summary report provides a high-level overview of the test coverage for your smart contracts. It includes the following information:\n\n")
	w.WriteString("*   **File:** The name of the smart contract file.\n")
	w.WriteString("*   **% Stmts:** The percentage of statements (lines of code) in the contract that are covered by your tests. A statement is a piece of code that performs an action.\n")
	w.WriteString("*   **% Branch:** The percentage of branches (decision points, like `if` statements) in the contract that are covered by your tests. Branch coverage is important for ensuring that all possible execution paths in your code are tested.\n")
	w.WriteString("*   **% Funcs:** The percentage of functions in the contract that are called by your tests.\n")
	w.WriteString("*   **% Lines:** The percentage of executable lines in the contract that are covered by your tests. This is similar to statement coverage but excludes things like comments and blank lines.\n\n")
}

func (mw *MarkdownWriter) writeDetails(w *bufio.Writer) {
	htmlReport := mw.HTMLReport
	if htmlReport == "" {
		htmlReport = DefaultHTMLReport
	}
	htmlDir := filepath.ToSlash(filepath.Dir(htmlReport))

	w.WriteString("\n## Detailed HTML Report\n\n")
	w.WriteString("The detailed HTML report provides a much more granular view of the test coverage. It includes the following features:\n\n")
	w.WriteString("*   **Drill-Down by File:** You can click on each contract file to see a detailed breakdown of the coverage.\n")
	w.WriteString("*   **Color-Coded Source Code:** The source code of your contract is displayed with color-coding to indicate which lines are covered, partially covered, or not covered by tests:\n")
	w.WriteString("    *   **Green:** Covered lines.\n")
	w.WriteString("    *   **Yellow:** Partially covered lines (e.g., a branch was taken but not the other).\n")
	w.WriteString("    *   **Red:** Uncovered lines.\n")
	w.WriteString("*   **Clickable Branch Markers:** For uncovered branches, you can often click on a marker to see more information about why the branch was not taken.\n\n")
	fmt.Fprintf(w, "To view the detailed HTML report, please refer to the `%s` file. You can view this report by serving the `%s` directory using a web server (e.g., `python -m http.server` in the `contracts` directory and then opening `http://localhost:8000` in your browser).\n", filepath.ToSlash(htmlReport), htmlDir)
}
