package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store defines the interface for baseline snapshot storage.
type Store interface {
	Exists() bool
	Load() ([]MetricRecord, error)
	Lookup(testName, metric string) string
	Rebuild(records []MetricRecord) error
}

// FileStore implements Store using a single JSON file holding a flat array
// of MetricRecord. The snapshot is not versioned; Rebuild overwrites it.
type FileStore struct {
	path    string
	records []MetricRecord
	loaded  bool
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Exists reports whether a baseline snapshot is present on disk.
func (s *FileStore) Exists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load reads the snapshot and caches it for lookups. A missing file is not
// an error; it loads as an empty baseline.
func (s *FileStore) Load() ([]MetricRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = []MetricRecord{}
			s.loaded = true
			return s.records, nil
		}
		return nil, fmt.Errorf("failed to read baseline %s: %w", s.path, err)
	}

	records := []MetricRecord{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal baseline %s: %w", s.path, err)
		}
	}

	s.records = records
	s.loaded = true
	return records, nil
}

// Lookup returns the baseline value for (testName, metric), or the empty
// string when no entry matches. When the snapshot contains duplicate keys
// the last matching entry wins.
func (s *FileStore) Lookup(testName, metric string) string {
	if !s.loaded {
		if _, err := s.Load(); err != nil {
			return ""
		}
	}

	value := ""
	for _, r := range s.records {
		if r.TestName == testName && r.Metric == metric {
			value = r.Value
		}
	}
	return value
}

// Rebuild replaces the snapshot with the given records, creating parent
// directories as needed. Used for the initial bootstrap and for the
// explicit create-baseline operation.
func (s *FileStore) Rebuild(records []MetricRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if records == nil {
		records = []MetricRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal baseline: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write baseline %s: %w", s.path, err)
	}

	s.records = records
	s.loaded = true
	return nil
}
