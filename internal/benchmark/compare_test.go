package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_LatencyRegression(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	// duration_ms is lower-is-better; +15% exceeds the 10% tolerance.
	out := c.Compare("ingest", "duration_ms", "100", "115")

	assert.Equal(t, ClassRegression, out.Classification)
	assert.InDelta(t, 0.15, out.PercentChange, 1e-9)
}

func TestCompare_LatencyStable(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	out := c.Compare("ingest", "duration_ms", "100", "104")

	assert.Equal(t, ClassStable, out.Classification)
	assert.InDelta(t, 0.04, out.PercentChange, 1e-9)
}

func TestCompare_LatencyImprovement(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	out := c.Compare("ingest", "query_time", "200", "180")

	assert.Equal(t, ClassImprovement, out.Classification)
	assert.InDelta(t, -0.10, out.PercentChange, 1e-9)
}

func TestCompare_ThroughputRegression(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	// requests_per_sec is higher-is-better; -12% exceeds the tolerance.
	out := c.Compare("api", "requests_per_sec", "100", "88")

	assert.Equal(t, ClassRegression, out.Classification)
	assert.InDelta(t, -0.12, out.PercentChange, 1e-9)
}

func TestCompare_ThroughputImprovement(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	out := c.Compare("api", "requests_per_sec", "100", "106")

	assert.Equal(t, ClassImprovement, out.Classification)
	assert.InDelta(t, 0.06, out.PercentChange, 1e-9)
}

func TestCompare_StrictThresholdBoundaries(t *testing.T) {
	c := NewComparator(0.10, 0.05)

	// Changes landing exactly on a threshold are stable, not regressed or
	// improved; only strict inequality crosses.
	tests := []struct {
		name     string
		metric   string
		baseline string
		current  string
		want     Classification
	}{
		{"latency exactly +10%", "duration_ms", "100", "110", ClassStable},
		{"latency just above +10%", "duration_ms", "1000", "1101", ClassRegression},
		{"latency exactly -5%", "duration_ms", "100", "95", ClassStable},
		{"throughput exactly -10%", "ops_per_sec", "100", "90", ClassStable},
		{"throughput exactly +5%", "ops_per_sec", "100", "105", ClassStable},
		{"throughput just above +5%", "ops_per_sec", "1000", "1051", ClassImprovement},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := c.Compare("t", tc.metric, tc.baseline, tc.current)
			assert.Equal(t, tc.want, out.Classification)
		})
	}
}

func TestCompare_ZeroBaselineIsStable(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	// Division by zero is sidestepped by forcing the change to 0, so a zero
	// baseline is always stable regardless of the current value.
	out := c.Compare("ingest", "duration_ms", "0", "5000")

	assert.Equal(t, ClassStable, out.Classification)
	assert.Zero(t, out.PercentChange)
}

func TestCompare_MissingData(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	assert.Equal(t, ClassMissingData, c.Compare("t", "duration_ms", "", "100").Classification)
	assert.Equal(t, ClassMissingData, c.Compare("t", "duration_ms", "100", "").Classification)
	assert.Equal(t, ClassMissingData, c.Compare("t", "duration_ms", "", "").Classification)
}

func TestCompare_InvalidData(t *testing.T) {
	c := NewComparator(DefaultRegressionThreshold, DefaultImprovementThreshold)

	invalid := []string{"-3", "1e3", "abc", "12.", ".5", "1.2.3", "1 0", "NaN"}
	for _, v := range invalid {
		out := c.Compare("t", "duration_ms", v, "100")
		assert.Equal(t, ClassInvalidData, out.Classification, "baseline %q", v)
		assert.Zero(t, out.PercentChange, "baseline %q", v)

		out = c.Compare("t", "duration_ms", "100", v)
		assert.Equal(t, ClassInvalidData, out.Classification, "current %q", v)
	}
}

func TestLowerIsBetter(t *testing.T) {
	assert.True(t, LowerIsBetter("duration_ms"))
	assert.True(t, LowerIsBetter("query_time"))
	assert.True(t, LowerIsBetter("runtime_seconds"))
	assert.False(t, LowerIsBetter("requests_per_sec"))
	assert.False(t, LowerIsBetter("throughput"))
	// The substring match is case-sensitive.
	assert.False(t, LowerIsBetter("Time_total"))
	assert.False(t, LowerIsBetter("Duration"))
}

func TestOutcome_String(t *testing.T) {
	out := Outcome{
		TestName:      "ingest",
		Metric:        "duration_ms",
		BaselineValue: "100",
		CurrentValue:  "115",
		PercentChange: 0.15,
	}
	assert.Equal(t, "ingest.duration_ms: 100 -> 115 (15.00% change)", out.String())
}
