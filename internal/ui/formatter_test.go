package ui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qat/internal/domain"
)

func init() {
	color.NoColor = true
}

func TestFormatter_PrintCoverageSummary(t *testing.T) {
	var buf bytes.Buffer
	summaries := []domain.FileSummary{
		{
			Path:       "contracts/Payment.sol",
			Statements: domain.Metric{Covered: 8, Total: 10},
			Branches:   domain.Metric{Covered: 3, Total: 4},
			Functions:  domain.Metric{Covered: 2, Total: 2},
			Lines:      domain.Metric{Covered: 9, Total: 10},
		},
	}

	NewFormatter(&buf).PrintCoverageSummary(summaries, "coverage_report.md")
	out := buf.String()

	assert.Contains(t, out, "contracts/Payment.sol")
	assert.Contains(t, out, "80.0")
	assert.Contains(t, out, "75.0")
	assert.Contains(t, out, "100.0")
	assert.Contains(t, out, "All files")
	assert.Contains(t, out, "written to coverage_report.md")
}

func TestFormatter_PrintCoverageChange(t *testing.T) {
	var buf bytes.Buffer
	previous := domain.CoverageMeta{
		Timestamp: "2026-10-01T10:00:00Z",
		Totals: domain.FileEntry{
			Statements: domain.MetricEntry{Covered: 8, Total: 10, Percent: 80},
			Branches:   domain.MetricEntry{Covered: 3, Total: 4, Percent: 75},
		},
	}
	current := domain.FileEntry{
		Statements: domain.MetricEntry{Covered: 9, Total: 10, Percent: 90},
		Branches:   domain.MetricEntry{Covered: 1, Total: 4, Percent: 25},
	}

	NewFormatter(&buf).PrintCoverageChange(previous, current)
	out := buf.String()

	assert.Contains(t, out, "Change since last summary (2026-10-01T10:00:00Z)")
	assert.Contains(t, out, "80.0 → 90.0")
	assert.Contains(t, out, "(+10.00)")
	assert.Contains(t, out, "(-50.00)")
	assert.Contains(t, out, "(+0.00)")
}

func TestFormatter_PrintTestCases(t *testing.T) {
	var buf bytes.Buffer
	cases := []domain.TestCase{
		{Title: "1: Connect wallet", Steps: "Open app; Click connect", ExpectedResult: "Address shown"},
		{Title: "2: View proposals", ExpectedResult: "Proposals listed"},
	}

	NewFormatter(&buf).PrintTestCases(cases)
	out := buf.String()

	assert.Contains(t, out, "Found 2 test case(s)")
	assert.Contains(t, out, "├── 1: Connect wallet")
	assert.Contains(t, out, "└── 2: View proposals")
	assert.Contains(t, out, "Steps: Open app; Click connect")
	assert.Contains(t, out, "(no steps)")
	assert.Contains(t, out, "Expected: Proposals listed")
}

func TestFormatter_PrintMoves(t *testing.T) {
	var buf bytes.Buffer
	results := []domain.MoveResult{
		{Move: domain.Move{Source: "a.md", Destination: "dir/a.md"}, Moved: true},
		{Move: domain.Move{Source: "b.md", Destination: "dir/b.md"}, Error: errors.New("boom")},
	}

	NewFormatter(&buf).PrintMoves(results, false)
	out := buf.String()

	assert.Contains(t, out, "✓ a.md → dir/a.md")
	assert.Contains(t, out, "✗ b.md → dir/b.md: boom")
}

func TestFormatter_PrintLayout(t *testing.T) {
	var buf bytes.Buffer
	results := []domain.MoveResult{
		{Move: domain.Move{Source: "plan.md", Destination: filepath.Join("front_end_testing", "plan.md")}, Moved: true},
		{Move: domain.Move{Source: "plan.csv", Destination: filepath.Join("front_end_testing", "plan.csv")}, Moved: true},
		{Move: domain.Move{Source: "report.md", Destination: filepath.Join("backend_testing", "report.md")}, Moved: false},
	}

	require.NoError(t, NewFormatter(&buf).PrintLayout(".", results))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "front_end_testing"))
	assert.Contains(t, out, "plan.md")
	assert.Contains(t, out, "plan.csv")
	assert.NotContains(t, out, "report.md")
}

func TestFormatTestCase(t *testing.T) {
	tc := domain.TestCase{Title: "Vote [admin]", Steps: "Open; Vote", ExpectedResult: "Counted"}

	out := formatTestCase(tc, 3)
	assert.Contains(t, out, "Test Case 3:")
	assert.Contains(t, out, "  Open\n  Vote\n")
	assert.Contains(t, out, "Expected Result:")
	assert.NotContains(t, out, "(none)")

	assert.Contains(t, formatTestCase(domain.TestCase{ExpectedResult: "ok"}, 1), "(none)")
	assert.Contains(t, listItemText(0, domain.TestCase{Title: "first\nsecond"}), "first")
	assert.NotContains(t, listItemText(0, domain.TestCase{Title: "first\nsecond"}), "second")
}
