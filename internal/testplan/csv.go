package testplan

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"qat/internal/domain"
)

// Header is the first CSV row
var Header = []string{"Test Case Title", "Steps", "Expected Result"}

// CSVWriter writes test cases as CSV
type CSVWriter struct{}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter() *CSVWriter {
	return &CSVWriter{}
}

// Write writes the header and one record per test case
func (cw *CSVWriter) Write(w io.Writer, cases []domain.TestCase) error {
	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, tc := range cases {
		if err := writer.Write(tc.Record()); err != nil {
			return fmt.Errorf("write test case %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile writes the CSV to path, replacing any existing file
func (cw *CSVWriter) WriteFile(path string, cases []domain.TestCase) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create csv dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}

	if err := cw.Write(f, cases); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	return f.Close()
}
