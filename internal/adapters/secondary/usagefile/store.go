package usagefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/norce-drilling/field-service/internal/core/domain"
	ports "github.com/norce-drilling/field-service/internal/core/ports/output"
)

type fileStore struct {
	path string
}

// NewStore creates a usage snapshot store writing one JSON file at path.
func NewStore(path string) ports.UsageSnapshotStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (*domain.UsageStatistics, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read usage snapshot: %w", err)
	}

	var stats domain.UsageStatistics
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decode usage snapshot: %w", err)
	}
	return &stats, nil
}

// Save overwrites the snapshot. The file is replaced atomically so a crash never
// leaves a truncated snapshot behind.
func (s *fileStore) Save(stats *domain.UsageStatistics) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encode usage snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create usage directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create usage temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write usage snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close usage snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace usage snapshot: %w", err)
	}
	return nil
}
