package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MetricRecord is a single measurement of one metric within one test.
// Result files and the baseline snapshot are both collections of these.
type MetricRecord struct {
	TestName string `json:"test_name"`
	Metric   string `json:"metric"`
	Value    string `json:"value"`
}

// UnmarshalJSON accepts the value field as either a JSON string or a bare
// number and keeps its raw text, so validation later sees exactly what the
// benchmark run recorded (including forms like "1e3" that are rejected).
func (r *MetricRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		TestName string          `json:"test_name"`
		Metric   string          `json:"metric"`
		Value    json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.TestName = raw.TestName
	r.Metric = raw.Metric
	r.Value = rawValueText(raw.Value)
	return nil
}

// rawValueText converts the raw JSON value into its textual form. A missing
// field and an explicit null both come back empty, which downstream code
// treats as an absent measurement.
func rawValueText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return string(trimmed)
		}
		return s
	}
	return string(trimmed)
}

// Classification is the verdict for one (test, metric) pair.
type Classification string

const (
	ClassRegression  Classification = "regression"
	ClassImprovement Classification = "improvement"
	ClassStable      Classification = "stable"
	ClassMissingData Classification = "missing_data"
	ClassInvalidData Classification = "invalid_data"
)

// Outcome is the immutable result of comparing one metric against the
// baseline. PercentChange is only meaningful when both values were present
// and numeric; for missing_data and invalid_data it stays zero.
type Outcome struct {
	TestName       string         `json:"test_name"`
	Metric         string         `json:"metric"`
	BaselineValue  string         `json:"baseline_value,omitempty"`
	CurrentValue   string         `json:"current_value,omitempty"`
	PercentChange  float64        `json:"percent_change"`
	Classification Classification `json:"classification"`
}

// String renders the outcome in the form used by report detail lists, with
// the change shown as a percentage rounded to two decimals.
func (o Outcome) String() string {
	return fmt.Sprintf("%s.%s: %s -> %s (%.2f%% change)",
		o.TestName, o.Metric, o.BaselineValue, o.CurrentValue, o.PercentChange*100)
}
