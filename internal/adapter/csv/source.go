package csvadapter

import (
	"context"
	"fmt"
	"os"

	"campaign-analytics/internal/core/domain"
)

// FileSource loads the campaign table from a CSV file on disk.
type FileSource struct {
	Path string
}

// NewFileSource returns a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// LoadDataset reads and parses the whole file. The context is only
// checked before opening it; parsing is a single in-memory pass.
func (s *FileSource) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Load(f, s.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return ds, nil
}
