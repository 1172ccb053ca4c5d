// Package coverage reads Istanbul coverage-final.json reports and
// summarizes them per file.
package coverage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"qat/internal/domain"
)

// ErrMalformedReport is returned when the report is not a JSON object of file entries
var ErrMalformedReport = errors.New("malformed coverage report")

// Loader decodes coverage reports
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads the report at path
func (l *Loader) Load(path string) ([]domain.FileCoverage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coverage report: %w", err)
	}

	files, err := l.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse coverage report %s: %w", path, err)
	}

	l.logger.Debug("loaded coverage report", zap.String("path", path), zap.Int("files", len(files)))
	return files, nil
}

// Decode reads a report from r. File entries are returned in document order.
func (l *Loader) Decode(r io.Reader) ([]domain.FileCoverage, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected an object of file entries", ErrMalformedReport)
	}

	var files []domain.FileCoverage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
		}
		path, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformedReport, tok)
		}

		var raw map[string]json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", ErrMalformedReport, path, err)
		}

		fc, err := l.decodeEntry(path, raw)
		if err != nil {
			return nil, err
		}
		files = append(files, fc)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	if tok, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
		}
		return nil, fmt.Errorf("%w: extra data after report: %v", ErrMalformedReport, tok)
	}
	return files, nil
}

// decodeEntry fills the four counters of a file entry. Missing or null
// counters are left empty.
func (l *Loader) decodeEntry(path string, raw map[string]json.RawMessage) (domain.FileCoverage, error) {
	fc := domain.FileCoverage{Path: path}

	fields := []struct {
		key    string
		target any
	}{
		{"s", &fc.Statements},
		{"b", &fc.Branches},
		{"f", &fc.Functions},
		{"l", &fc.Lines},
	}

	for _, field := range fields {
		value, ok := raw[field.key]
		if !ok {
			l.logger.Debug("coverage counter missing, treating as empty",
				zap.String("file", path), zap.String("key", field.key))
			continue
		}
		if err := json.Unmarshal(value, field.target); err != nil {
			return fc, fmt.Errorf("%w: entry %q key %q: %v", ErrMalformedReport, path, field.key, err)
		}
	}

	return fc, nil
}
