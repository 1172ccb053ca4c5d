package coverage

import "qat/internal/domain"

// Summarize computes the four coverage metrics of a file. A unit counts as
// covered once it was hit at least once; a branch counts as covered when any
// of its outcomes was taken.
func Summarize(fc domain.FileCoverage) domain.FileSummary {
	return domain.FileSummary{
		Path:       fc.Path,
		Statements: countHits(fc.Statements),
		Branches:   countBranches(fc.Branches),
		Functions:  countHits(fc.Functions),
		Lines:      countHits(fc.Lines),
	}
}

// SummarizeAll summarizes every file, keeping the input order
func SummarizeAll(files []domain.FileCoverage) []domain.FileSummary {
	summaries := make([]domain.FileSummary, 0, len(files))
	for _, fc := range files {
		summaries = append(summaries, Summarize(fc))
	}
	return summaries
}

// Totals aggregates the metrics of all files
func Totals(summaries []domain.FileSummary) domain.FileSummary {
	total := domain.FileSummary{Path: "All files"}
	for _, s := range summaries {
		total.Statements = total.Statements.Add(s.Statements)
		total.Branches = total.Branches.Add(s.Branches)
		total.Functions = total.Functions.Add(s.Functions)
		total.Lines = total.Lines.Add(s.Lines)
	}
	return total
}

func countHits(counters map[string]int) domain.Metric {
	m := domain.Metric{Total: len(counters)}
	for _, hits := range counters {
		if hits > 0 {
			m.Covered++
		}
	}
	return m
}

func countBranches(branches map[string][]int) domain.Metric {
	m := domain.Metric{Total: len(branches)}
	for _, outcomes := range branches {
		sum := 0
		for _, hits := range outcomes {
			sum += hits
		}
		if sum > 0 {
			m.Covered++
		}
	}
	return m
}
