// Package testplan scrapes test cases out of a Markdown manual test plan
// and writes them as CSV.
package testplan

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"qat/internal/domain"
)

// ErrNoTestCases is returned by strict extraction when the plan holds no test case
var ErrNoTestCases = errors.New("no test cases found")

// headPattern matches everything of a test case up to its expected result:
// a "### Test Case <title>" heading, an optional Steps block and the
// Expected Result marker. The expected result itself runs until the next
// "\n###" or the end of the document.
var headPattern = regexp.MustCompile(`(?s)### Test Case (.*?)\n(\*\*Steps:\*\*\n(.*?))?\*\*Expected Result:\*\*\n`)

const nextHeading = "\n###"

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Extractor extracts test cases from test plans
type Extractor struct{}

// NewExtractor creates a new Extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFile reads the test plan at path and extracts its test cases
func (e *Extractor) ExtractFile(path string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test plan: %w", err)
	}
	return e.Extract(newlines.Replace(string(content))), nil
}

// ExtractFileStrict is ExtractFile but fails when nothing was found
func (e *Extractor) ExtractFileStrict(path string) ([]domain.TestCase, error) {
	cases, err := e.ExtractFile(path)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTestCases)
	}
	return cases, nil
}

// Extract returns the test cases of content in document order
func (e *Extractor) Extract(content string) []domain.TestCase {
	var cases []domain.TestCase

	pos := 0
	for pos < len(content) {
		loc := headPattern.FindStringSubmatchIndex(content[pos:])
		if loc == nil {
			break
		}

		headEnd := pos + loc[1]
		end := len(content)
		if i := strings.Index(content[headEnd:], nextHeading); i >= 0 {
			end = headEnd + i
		}

		tc := domain.TestCase{
			Title:          strings.TrimSpace(content[pos+loc[2] : pos+loc[3]]),
			ExpectedResult: normalize(content[headEnd:end]),
		}
		// group 2 is the whole Steps block, group 3 its body
		if loc[4] >= 0 {
			tc.Steps = normalize(content[pos+loc[6] : pos+loc[7]])
		}
		cases = append(cases, tc)

		pos = end
	}

	return cases
}

// normalize flattens a block onto one line and drops emphasis markers
func normalize(block string) string {
	block = strings.TrimSpace(block)
	block = strings.ReplaceAll(block, "\n", "; ")
	block = strings.ReplaceAll(block, "*", "")
	return strings.TrimSpace(block)
}
