package commands

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qat/internal/cli"
	"qat/internal/config"
	"qat/internal/organizer"
)

const coverageJSON = `{
  "contracts/Payment.sol": {
    "s": {"1": 1, "2": 1, "3": 1, "4": 1, "5": 1, "6": 1, "7": 1, "8": 1, "9": 0, "10": 0},
    "b": {"1": [1, 0], "2": [1, 1], "3": [0, 1], "4": [0, 0]},
    "f": {"1": 1, "2": 3},
    "l": {"1": 1, "2": 1, "3": 1, "4": 1, "5": 1, "6": 1, "7": 1, "8": 1, "9": 1, "10": 0}
  },
  "contracts/Empty.sol": {"s": {}, "b": {}, "f": {}, "l": {}}
}`

var testPlanMD = dedent.Dedent(`
	# Frontend Manual Test Plan

	### Test Case 1: Create proposal
	**Steps:**
	1. Open **Proposals**
	2. Submit the form

	**Expected Result:**
	The proposal appears in the list.

	### Test Case 2: Vote
	**Expected Result:**
	The vote is counted.
`)

func init() {
	color.NoColor = true
}

func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "contracts", "coverage"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultCoverageJSON), []byte(coverageJSON), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultTestPlanMarkdown), []byte(testPlanMD), 0644))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "qat", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCoverageCommand(t *testing.T) {
	t.Run("writes default report", func(t *testing.T) {
		dir := newProject(t)

		out, err := execute(t, "coverage", "-C", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "Coverage report for 2 file(s)")

		report := readFile(t, filepath.Join(dir, config.DefaultCoverageMarkdown))
		assert.Contains(t, report, "| contracts/Payment.sol | 80.0 | 8/10 | 75.0 | 3/4 | 100.0 | 2/2 | 90.0 | 9/10 |\n")
		assert.Contains(t, report, "| contracts/Empty.sol | 0 | 0/0 | 0 | 0/0 | 0 | 0/0 | 0 | 0/0 |\n")
		assert.Less(t, strings.Index(report, "Payment.sol"), strings.Index(report, "Empty.sol"))
	})

	t.Run("custom paths and totals", func(t *testing.T) {
		dir := newProject(t)

		_, err := execute(t, "coverage", "-C", dir, "-i", config.DefaultCoverageJSON, "-o", "out/report.md", "--totals", "-q")
		require.NoError(t, err)
		assert.Contains(t, readFile(t, filepath.Join(dir, "out", "report.md")), "| All files |")
	})

	t.Run("filter and json summary", func(t *testing.T) {
		dir := newProject(t)

		_, err := execute(t, "coverage", "-C", dir, "--filter", "*Payment*", "--json", "-q")
		require.NoError(t, err)

		report := readFile(t, filepath.Join(dir, config.DefaultCoverageMarkdown))
		assert.Contains(t, report, "contracts/Payment.sol")
		assert.NotContains(t, report, "contracts/Empty.sol")

		summary := readFile(t, filepath.Join(dir, config.DefaultSummaryDir, config.DefaultSummaryFile))
		assert.Contains(t, summary, `"path": "contracts/Payment.sol"`)
		assert.Contains(t, summary, `"files": 1`)
	})

	t.Run("json reports change since last summary", func(t *testing.T) {
		dir := newProject(t)

		out, err := execute(t, "coverage", "-C", dir, "--json")
		require.NoError(t, err)
		assert.NotContains(t, out, "Change since last summary")

		out, err = execute(t, "coverage", "-C", dir, "--json")
		require.NoError(t, err)
		assert.Contains(t, out, "Change since last summary")
		assert.Contains(t, out, "80.0 → 80.0")
	})

	t.Run("missing input", func(t *testing.T) {
		_, err := execute(t, "coverage", "-C", t.TempDir())
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, "coverage", "-C", t.TempDir(), "extra")
		require.Error(t, err)
	})
}

func TestTestPlanCommand(t *testing.T) {
	t.Run("writes csv", func(t *testing.T) {
		dir := newProject(t)

		out, err := execute(t, "testplan", "-C", dir, "--list")
		require.NoError(t, err)
		assert.Contains(t, out, "Extracted 2 test case(s)")
		assert.Contains(t, out, "1: Create proposal")

		expected := "Test Case Title,Steps,Expected Result\r\n" +
			"1: Create proposal,1. Open Proposals; 2. Submit the form,The proposal appears in the list.\r\n" +
			"2: Vote,,The vote is counted.\r\n"
		assert.Equal(t, expected, readFile(t, filepath.Join(dir, config.DefaultTestPlanCSV)))
	})

	t.Run("empty plan writes header only", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultTestPlanMarkdown), []byte("# Plan\n"), 0644))

		out, err := execute(t, "testplan", "-C", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "No test cases found")
		assert.Equal(t, "Test Case Title,Steps,Expected Result\r\n", readFile(t, filepath.Join(dir, config.DefaultTestPlanCSV)))
	})

	t.Run("strict empty plan fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultTestPlanMarkdown), []byte("# Plan\n"), 0644))

		_, err := execute(t, "testplan", "-C", dir, "--strict")
		require.Error(t, err)
	})
}

func TestOrganizeCommand(t *testing.T) {
	t.Run("dry run leaves files in place", func(t *testing.T) {
		dir := newProject(t)

		out, err := execute(t, "organize", "-C", dir, "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "frontend-manual-test-plan.md → front_end_testing/frontend-manual-test-plan.md")
		assert.Contains(t, out, "source file missing")
		assert.FileExists(t, filepath.Join(dir, config.DefaultTestPlanMarkdown))
	})

	t.Run("fails on missing file", func(t *testing.T) {
		dir := newProject(t)

		_, err := execute(t, "organize", "-C", dir)
		require.Error(t, err)
		assert.True(t, errors.Is(err, organizer.ErrSourceMissing))
		assert.FileExists(t, filepath.Join(dir, "front_end_testing", config.DefaultTestPlanMarkdown))
	})
}

func TestAllCommand(t *testing.T) {
	dir := newProject(t)

	out, err := execute(t, "all", "--project", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[1/3] coverage")
	assert.Contains(t, out, "[3/3] organize")
	assert.Contains(t, out, "Moved 3 file(s)")

	assert.FileExists(t, filepath.Join(dir, "backend_testing", config.DefaultCoverageMarkdown))
	assert.FileExists(t, filepath.Join(dir, "front_end_testing", config.DefaultTestPlanMarkdown))
	assert.FileExists(t, filepath.Join(dir, "front_end_testing", config.DefaultTestPlanCSV))
	assert.NoFileExists(t, filepath.Join(dir, config.DefaultCoverageMarkdown))
}
