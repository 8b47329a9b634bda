package benchmark

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Loader reads benchmark result files from a directory. Each file holds the
// measurements of one test and is named <test_name>.json. A file may be a
// single JSON object, a JSON array of objects, or newline-delimited JSON
// objects; the loader accepts all three shapes.
type Loader struct {
	dir string
}

func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ListResultFiles returns the paths of all result files in the directory,
// sorted by name. A missing directory is not an error; it simply yields no
// files.
func (l *Loader) ListResultFiles() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read results directory %s: %w", l.dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(l.dir, e.Name()))
	}
	return files, nil
}

// Records parses one result file into records, stamping each with the test
// name derived from the file name. Absent or malformed files yield no
// records rather than an error; analysis treats the gap as missing data and
// keeps going.
func (l *Loader) Records(path string) []MetricRecord {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to read result file", "file", path, "error", err)
		return nil
	}

	test := TestNameFromPath(path)
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	var records []MetricRecord
	switch {
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &records); err != nil {
			slog.Warn("failed to parse result array", "file", path, "error", err)
			return nil
		}
	default:
		var single MetricRecord
		if err := json.Unmarshal(trimmed, &single); err == nil {
			records = []MetricRecord{single}
			break
		}
		// Fall back to newline-delimited objects, skipping lines that do
		// not parse so one bad record cannot sink the rest of the file.
		scanner := bufio.NewScanner(bytes.NewReader(trimmed))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			var rec MetricRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				slog.Debug("skipping malformed result line", "file", path, "error", err)
				continue
			}
			records = append(records, rec)
		}
	}

	for i := range records {
		records[i].TestName = test
	}
	return records
}

// LoadAll flattens every result file into a single record slice, in file
// order. This is the input to baseline rebuilds.
func (l *Loader) LoadAll() ([]MetricRecord, error) {
	files, err := l.ListResultFiles()
	if err != nil {
		return nil, err
	}

	var all []MetricRecord
	for _, path := range files {
		all = append(all, l.Records(path)...)
	}
	return all, nil
}

// TestNameFromPath derives the test identity from a result file path. The
// file name, not any embedded field, names the test.
func TestNameFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}

// MetricNames returns the distinct metric names present in the records, in
// first-seen order. Records without a metric name are ignored.
func MetricNames(records []MetricRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range records {
		if r.Metric == "" || seen[r.Metric] {
			continue
		}
		seen[r.Metric] = true
		names = append(names, r.Metric)
	}
	return names
}

// LastValue returns the value of the last record matching the metric name,
// or the empty string when no record matches. Later records shadow earlier
// ones for the same metric.
func LastValue(records []MetricRecord, metric string) string {
	value := ""
	for _, r := range records {
		if r.Metric == metric {
			value = r.Value
		}
	}
	return value
}
