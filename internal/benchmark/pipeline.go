package benchmark

import (
	"fmt"
	"log/slog"
	"math"
)

// Options carries the run configuration resolved by the caller. Thresholds
// are fractions of the baseline value, not percentages.
type Options struct {
	BaselinePath         string
	ResultsDir           string
	ReportPath           string
	RegressionThreshold  float64
	ImprovementThreshold float64
}

// Validate rejects options that cannot produce a meaningful run. It runs
// before any file is touched, so a misconfiguration aborts cleanly instead
// of surfacing halfway through a scan.
func (o Options) Validate() error {
	if o.BaselinePath == "" {
		return fmt.Errorf("baseline path is not configured")
	}
	if o.ResultsDir == "" {
		return fmt.Errorf("results directory is not configured")
	}
	if math.IsNaN(o.RegressionThreshold) || o.RegressionThreshold < 0 {
		return fmt.Errorf("regression threshold must be non-negative, got: %v", o.RegressionThreshold)
	}
	if math.IsNaN(o.ImprovementThreshold) || o.ImprovementThreshold < 0 {
		return fmt.Errorf("improvement threshold must be non-negative, got: %v", o.ImprovementThreshold)
	}
	return nil
}

// Analysis is the result of one analyze run. When Bootstrapped is true no
// comparison happened; the run snapshotted the current results as the
// initial baseline and Report is nil.
type Analysis struct {
	Report          *Report
	Bootstrapped    bool
	BaselineRecords int
}

// Pipeline wires the loader, the baseline store and the comparator into the
// sequential analyze/create-baseline flows. It is single-threaded; the data
// volume is one file per test, once per CI invocation.
type Pipeline struct {
	opts   Options
	loader *Loader
	store  Store
	comp   *Comparator
}

func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{
		opts:   opts,
		loader: NewLoader(opts.ResultsDir),
		store:  NewFileStore(opts.BaselinePath),
		comp:   NewComparator(opts.RegressionThreshold, opts.ImprovementThreshold),
	}
}

// BaselineExists reports whether a baseline snapshot is already present.
func (p *Pipeline) BaselineExists() bool {
	return p.store.Exists()
}

// Analyze compares the current results against the baseline and persists
// the report. With no baseline present it bootstraps instead: the current
// results become the initial snapshot and no comparison takes place.
//
// Per-metric problems (missing or invalid data points) are recorded and
// logged but never abort the scan; only configuration and I/O failures
// return an error.
func (p *Pipeline) Analyze() (*Analysis, error) {
	if err := p.opts.Validate(); err != nil {
		return nil, err
	}
	if p.opts.ReportPath == "" {
		return nil, fmt.Errorf("report path is not configured")
	}

	if !p.store.Exists() {
		n, err := p.snapshot()
		if err != nil {
			return nil, err
		}
		slog.Info("no baseline found, bootstrapped initial snapshot",
			"baseline", p.opts.BaselinePath, "records", n)
		return &Analysis{Bootstrapped: true, BaselineRecords: n}, nil
	}

	if _, err := p.store.Load(); err != nil {
		// A corrupt baseline degrades to missing data for every pair; the
		// run still completes and the report records the gap.
		slog.Warn("failed to load baseline, treating all lookups as missing", "error", err)
	}

	files, err := p.loader.ListResultFiles()
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no result files found in %s", p.opts.ResultsDir)
	}

	agg := NewAggregator()
	for _, path := range files {
		test := TestNameFromPath(path)
		records := p.loader.Records(path)
		if len(records) == 0 {
			slog.Warn("result file yielded no records", "test", test, "file", path)
			continue
		}

		for _, metric := range MetricNames(records) {
			current := LastValue(records, metric)
			baseline := p.store.Lookup(test, metric)

			outcome := p.comp.Compare(test, metric, baseline, current)
			switch outcome.Classification {
			case ClassMissingData:
				slog.Warn("missing data point", "test", test, "metric", metric)
			case ClassInvalidData:
				slog.Warn("invalid numeric data", "test", test, "metric", metric,
					"baseline", baseline, "current", current)
			}
			agg.Record(outcome)
		}
	}

	report := NewReport(p.opts, agg.Finalize())
	if err := WriteReport(p.opts.ReportPath, report); err != nil {
		return nil, err
	}

	slog.Info("analysis complete",
		"run_id", report.RunID,
		"total", report.Summary.Total,
		"regressions", report.Summary.Regressions,
		"improvements", report.Summary.Improvements)
	return &Analysis{Report: report}, nil
}

// CreateBaseline snapshots the current results as the new baseline,
// overwriting any existing snapshot. It returns the number of records
// written.
func (p *Pipeline) CreateBaseline() (int, error) {
	if err := p.opts.Validate(); err != nil {
		return 0, err
	}
	n, err := p.snapshot()
	if err != nil {
		return 0, err
	}
	slog.Info("baseline created", "baseline", p.opts.BaselinePath, "records", n)
	return n, nil
}

func (p *Pipeline) snapshot() (int, error) {
	records, err := p.loader.LoadAll()
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		slog.Warn("no benchmark records found, baseline will be empty", "results", p.opts.ResultsDir)
	}
	if err := p.store.Rebuild(records); err != nil {
		return 0, err
	}
	return len(records), nil
}
