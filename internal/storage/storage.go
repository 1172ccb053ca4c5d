package storage

import (
	"qat/internal/config"
	"qat/internal/domain"
)

// Storage persists and loads coverage summaries (e.g. for CI dashboards).
type Storage interface {
	Save(source string, summaries []domain.FileSummary) error
	Load() (*domain.CoverageOutput, error)
}

// JSONStorage stores summaries in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's summary JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
