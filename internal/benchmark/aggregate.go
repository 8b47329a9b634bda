package benchmark

// Summary holds the per-classification counts for one run.
type Summary struct {
	Total        int `json:"total"`
	Regressions  int `json:"regressions"`
	Improvements int `json:"improvements"`
	Stable       int `json:"stable"`
	MissingData  int `json:"missing_data"`
	InvalidData  int `json:"invalid_data"`
}

// Snapshot is the finalized view of an aggregation: counts plus the
// formatted detail lines per category. Missing and invalid data points are
// counted but not itemized; they surface as warnings during the scan.
type Snapshot struct {
	Summary      Summary  `json:"summary"`
	Regressions  []string `json:"regressions"`
	Improvements []string `json:"improvements"`
	Stable       []string `json:"stable"`
}

// Failed reports the gate decision: the run fails iff at least one
// regression was recorded. Missing or invalid data never fails the gate on
// its own.
func (s Snapshot) Failed() bool {
	return s.Summary.Regressions > 0
}

// Aggregator accumulates outcomes during the scan. It owns its collections
// exclusively until Finalize, which hands out an independent snapshot.
type Aggregator struct {
	summary      Summary
	regressions  []string
	improvements []string
	stable       []string
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Record counts one outcome and, for the compared categories, captures its
// formatted detail line.
func (a *Aggregator) Record(o Outcome) {
	a.summary.Total++
	switch o.Classification {
	case ClassRegression:
		a.summary.Regressions++
		a.regressions = append(a.regressions, o.String())
	case ClassImprovement:
		a.summary.Improvements++
		a.improvements = append(a.improvements, o.String())
	case ClassStable:
		a.summary.Stable++
		a.stable = append(a.stable, o.String())
	case ClassMissingData:
		a.summary.MissingData++
	case ClassInvalidData:
		a.summary.InvalidData++
	}
}

// Finalize returns an immutable snapshot of the aggregation. The returned
// slices are copies, so later Record calls cannot mutate a snapshot already
// handed to the report generator.
func (a *Aggregator) Finalize() Snapshot {
	return Snapshot{
		Summary:      a.summary,
		Regressions:  append([]string{}, a.regressions...),
		Improvements: append([]string{}, a.improvements...),
		Stable:       append([]string{}, a.stable...),
	}
}
