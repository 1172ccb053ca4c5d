package domain

import "strconv"

// FileCoverage is one entry of a coverage-final.json report
type FileCoverage struct {
	Path       string           `json:"path"`
	Statements map[string]int   `json:"s"`
	Branches   map[string][]int `json:"b"`
	Functions  map[string]int   `json:"f"`
	Lines      map[string]int   `json:"l"`
}

// Metric counts covered units out of a total
type Metric struct {
	Covered int
	Total   int
}

// Percent returns covered/total*100 rounded to two decimals, or 0 when there is nothing to cover.
// Rounding goes through the exact binary value, so ties such as 1/32 (3.125) round half to even.
func (m Metric) Percent() float64 {
	if m.Total == 0 {
		return 0
	}
	p, _ := strconv.ParseFloat(strconv.FormatFloat(float64(m.Covered)/float64(m.Total)*100, 'f', 2, 64), 64)
	return p
}

// Add returns the sum of two metrics
func (m Metric) Add(other Metric) Metric {
	return Metric{Covered: m.Covered + other.Covered, Total: m.Total + other.Total}
}

// FileSummary holds the four coverage metrics of a single file
type FileSummary struct {
	Path       string
	Statements Metric
	Branches   Metric
	Functions  Metric
	Lines      Metric
}

// MetricEntry is the JSON form of a Metric
type MetricEntry struct {
	Covered int     `json:"covered"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// FileEntry is the JSON form of a FileSummary
type FileEntry struct {
	Path       string      `json:"path"`
	Statements MetricEntry `json:"statements"`
	Branches   MetricEntry `json:"branches"`
	Functions  MetricEntry `json:"functions"`
	Lines      MetricEntry `json:"lines"`
}

// NewFileEntry converts a summary to its JSON form
func NewFileEntry(s FileSummary) FileEntry {
	entry := func(m Metric) MetricEntry {
		return MetricEntry{Covered: m.Covered, Total: m.Total, Percent: m.Percent()}
	}
	return FileEntry{
		Path:       s.Path,
		Statements: entry(s.Statements),
		Branches:   entry(s.Branches),
		Functions:  entry(s.Functions),
		Lines:      entry(s.Lines),
	}
}

// CoverageMeta contains metadata about a summarized report
type CoverageMeta struct {
	Source    string    `json:"source"`
	Files     int       `json:"files"`
	Totals    FileEntry `json:"totals"`
	Timestamp string    `json:"timestamp"`
}

// CoverageOutput is the complete summary written next to the Markdown report
type CoverageOutput struct {
	Meta    CoverageMeta `json:"meta"`
	Details []FileEntry  `json:"details"`
}
