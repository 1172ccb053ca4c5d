package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"qat/internal/coverage"
	"qat/internal/domain"
)

// Save writes the summaries and their totals to the configured JSON file.
func (s *JSONStorage) Save(source string, summaries []domain.FileSummary) error {
	output := domain.CoverageOutput{
		Meta: domain.CoverageMeta{
			Source:    source,
			Files:     len(summaries),
			Totals:    domain.NewFileEntry(coverage.Totals(summaries)),
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Details: make([]domain.FileEntry, 0, len(summaries)),
	}
	for _, summary := range summaries {
		output.Details = append(output.Details, domain.NewFileEntry(summary))
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	path := s.cfg.GetSummaryPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

// Load reads the last summary from the configured JSON file.
func (s *JSONStorage) Load() (*domain.CoverageOutput, error) {
	path := s.cfg.GetSummaryPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary file: %w", err)
	}
	var output domain.CoverageOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	return &output, nil
}
