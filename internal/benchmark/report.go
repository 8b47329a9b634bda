package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is the durable record of one analysis run. It is built once, after
// the scan completes, and never mutated after being written.
type Report struct {
	RunID                string    `json:"run_id"`
	Timestamp            time.Time `json:"timestamp"`
	BaselineSource       string    `json:"baseline_source"`
	ResultsSource        string    `json:"results_source"`
	RegressionThreshold  float64   `json:"regression_threshold"`
	ImprovementThreshold float64   `json:"improvement_threshold"`
	Snapshot
}

func NewReport(opts Options, snap Snapshot) *Report {
	return &Report{
		RunID:                uuid.New().String(),
		Timestamp:            time.Now().UTC(),
		BaselineSource:       opts.BaselinePath,
		ResultsSource:        opts.ResultsDir,
		RegressionThreshold:  opts.RegressionThreshold,
		ImprovementThreshold: opts.ImprovementThreshold,
		Snapshot:             snap,
	}
}

// WriteReport persists the report as indented JSON, creating parent
// directories as needed. Callers treat a failure here as fatal: the report
// file is the durable source of truth for the run.
func WriteReport(path string, report *Report) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

// TextSummary renders the human-readable summary: totals per category plus
// itemized regression and improvement lists. It is plain text, suitable for
// CI logs and notification bodies.
func (r *Report) TextSummary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Benchmark Analysis Summary\n")
	fmt.Fprintf(&b, "==========================\n")
	fmt.Fprintf(&b, "Metrics analyzed: %d\n", r.Summary.Total)
	fmt.Fprintf(&b, "Regressions:      %d\n", r.Summary.Regressions)
	fmt.Fprintf(&b, "Improvements:     %d\n", r.Summary.Improvements)
	fmt.Fprintf(&b, "Stable:           %d\n", r.Summary.Stable)
	fmt.Fprintf(&b, "Missing data:     %d\n", r.Summary.MissingData)
	fmt.Fprintf(&b, "Invalid data:     %d\n", r.Summary.InvalidData)

	if len(r.Regressions) > 0 {
		fmt.Fprintf(&b, "\nRegressions:\n")
		for _, line := range r.Regressions {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}
	if len(r.Improvements) > 0 {
		fmt.Fprintf(&b, "\nImprovements:\n")
		for _, line := range r.Improvements {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}
	return b.String()
}

// Markdown renders the report as a markdown document, used for the optional
// summary artifact and for terminal rendering.
func (r *Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Benchmark Gate Report\n\n")
	fmt.Fprintf(&b, "- **Run**: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- **Generated**: %s\n", r.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **Baseline**: `%s`\n", r.BaselineSource)
	fmt.Fprintf(&b, "- **Results**: `%s`\n", r.ResultsSource)
	fmt.Fprintf(&b, "- **Thresholds**: regression %.2f%%, improvement %.2f%%\n\n",
		r.RegressionThreshold*100, r.ImprovementThreshold*100)

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Category | Count |\n")
	fmt.Fprintf(&b, "|----------|-------|\n")
	fmt.Fprintf(&b, "| Analyzed | %d |\n", r.Summary.Total)
	fmt.Fprintf(&b, "| Regressions | %d |\n", r.Summary.Regressions)
	fmt.Fprintf(&b, "| Improvements | %d |\n", r.Summary.Improvements)
	fmt.Fprintf(&b, "| Stable | %d |\n", r.Summary.Stable)
	fmt.Fprintf(&b, "| Missing data | %d |\n", r.Summary.MissingData)
	fmt.Fprintf(&b, "| Invalid data | %d |\n", r.Summary.InvalidData)

	if len(r.Regressions) > 0 {
		fmt.Fprintf(&b, "\n## Regressions\n\n")
		for _, line := range r.Regressions {
			fmt.Fprintf(&b, "- ❌ `%s`\n", line)
		}
	}
	if len(r.Improvements) > 0 {
		fmt.Fprintf(&b, "\n## Improvements\n\n")
		for _, line := range r.Improvements {
			fmt.Fprintf(&b, "- 🟢 `%s`\n", line)
		}
	}
	return b.String()
}
