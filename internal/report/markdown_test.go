package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qat/internal/domain"
)

func summary(path string, s, b, f, l [2]int) domain.FileSummary {
	return domain.FileSummary{
		Path:       path,
		Statements: domain.Metric{Covered: s[0], Total: s[1]},
		Branches:   domain.Metric{Covered: b[0], Total: b[1]},
		Functions:  domain.Metric{Covered: f[0], Total: f[1]},
		Lines:      domain.Metric{Covered: l[0], Total: l[1]},
	}
}

func TestRow(t *testing.T) {
	t.Run("mixed coverage", func(t *testing.T) {
		row := Row(summary("contracts/Payment.sol", [2]int{8, 10}, [2]int{3, 4}, [2]int{2, 2}, [2]int{9, 10}))
		assert.Equal(t, "| contracts/Payment.sol | 80.0 | 8/10 | 75.0 | 3/4 | 100.0 | 2/2 | 90.0 | 9/10 |\n", row)
	})

	t.Run("zero totals", func(t *testing.T) {
		row := Row(summary("contracts/Empty.sol", [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}))
		assert.Equal(t, "| contracts/Empty.sol | 0 | 0/0 | 0 | 0/0 | 0 | 0/0 | 0 | 0/0 |\n", row)
	})
}

func TestMarkdownWriter_Write(t *testing.T) {
	summaries := []domain.FileSummary{
		summary("contracts/Membership.sol", [2]int{8, 10}, [2]int{3, 4}, [2]int{2, 2}, [2]int{9, 10}),
		summary("contracts/Governance.sol", [2]int{1, 3}, [2]int{0, 2}, [2]int{1, 1}, [2]int{1, 3}),
	}

	t.Run("document structure", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewMarkdownWriter().Write(&buf, summaries))
		out := buf.String()

		assert.True(t, strings.HasPrefix(out, "# Test Coverage Report\n\n"))
		assert.Contains(t, out, "## Summary Report\n\n")
		assert.Contains(t, out, tableHeader)
		assert.Contains(t, out, "\n## Detailed HTML Report\n\n")
		assert.Contains(t, out, "please refer to the `contracts/coverage/index.html` file")
		assert.Contains(t, out, "serving the `contracts/coverage` directory")
		assert.NotContains(t, out, "All files")

		first := strings.Index(out, "contracts/Membership.sol")
		second := strings.Index(out, "contracts/Governance.sol")
		assert.True(t, first > 0 && second > first, "rows should keep input order")
		assert.Contains(t, out, "| contracts/Governance.sol | 33.33 | 1/3 | 0 | 0/2 | 100.0 | 1/1 | 33.33 | 1/3 |\n")
	})

	t.Run("one row per file", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewMarkdownWriter().Write(&buf, summaries))

		rows := 0
		for _, line := range strings.Split(buf.String(), "\n") {
			if strings.HasPrefix(line, "| contracts/") {
				rows++
			}
		}
		assert.Equal(t, 2, rows)
	})

	t.Run("totals row", func(t *testing.T) {
		var buf bytes.Buffer
		mw := NewMarkdownWriter()
		mw.IncludeTotals = true
		require.NoError(t, mw.Write(&buf, summaries))
		assert.Contains(t, buf.String(), "| All files | 69.23 | 9/13 | 50.0 | 3/6 | 100.0 | 3/3 | 76.92 | 10/13 |\n")
	})

	t.Run("no files still renders the table header", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewMarkdownWriter().Write(&buf, nil))
		assert.Contains(t, buf.String(), tableHeader+"\n## Detailed HTML Report")
	})
}

func TestMarkdownWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage_report.md")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 500)), 0644))

	mw := NewMarkdownWriter()
	require.NoError(t, mw.WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")

	rendered, err := mw.Render(nil)
	require.NoError(t, err)
	assert.Equal(t, rendered, string(data))
}
