package benchmark

import (
	"regexp"
	"strconv"
	"strings"
)

// Default tolerances, expressed as fractions of the baseline value.
const (
	DefaultRegressionThreshold  = 0.10
	DefaultImprovementThreshold = 0.05
)

// numericPattern accepts non-negative decimals only. Negative numbers and
// exponent notation are deliberately rejected and classify as invalid_data.
var numericPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// LowerIsBetter reports the directionality of a metric. Names containing
// "time" or "duration" (case-sensitive substring match) measure latency, so
// an increase is a degradation; everything else is treated as throughput,
// where a decrease is a degradation. This is a naming convention, not a
// declared schema.
func LowerIsBetter(metricName string) bool {
	return strings.Contains(metricName, "time") || strings.Contains(metricName, "duration")
}

// Comparator classifies metric pairs against thresholds fixed for the run.
type Comparator struct {
	RegressionThreshold  float64
	ImprovementThreshold float64
}

func NewComparator(regressionThreshold, improvementThreshold float64) *Comparator {
	return &Comparator{
		RegressionThreshold:  regressionThreshold,
		ImprovementThreshold: improvementThreshold,
	}
}

// Compare classifies a single (test, metric) pair. The empty string marks an
// absent value. The function is pure: the outcome depends only on the metric
// name, the two values, and the comparator's thresholds.
//
// percent_change = (current - baseline) / baseline, forced to 0 when the
// baseline is <= 0 to avoid division by zero. A zero baseline therefore
// always classifies as stable, a documented limitation of the measurement.
// Threshold checks are strict inequalities; a change landing exactly on a
// threshold is stable.
func (c *Comparator) Compare(testName, metricName, baseline, current string) Outcome {
	out := Outcome{
		TestName:      testName,
		Metric:        metricName,
		BaselineValue: baseline,
		CurrentValue:  current,
	}

	if baseline == "" || current == "" {
		out.Classification = ClassMissingData
		return out
	}
	if !numericPattern.MatchString(baseline) || !numericPattern.MatchString(current) {
		out.Classification = ClassInvalidData
		return out
	}

	base, _ := strconv.ParseFloat(baseline, 64)
	curr, _ := strconv.ParseFloat(current, 64)

	if base > 0 {
		out.PercentChange = (curr - base) / base
	}

	if LowerIsBetter(metricName) {
		switch {
		case out.PercentChange > c.RegressionThreshold:
			out.Classification = ClassRegression
		case out.PercentChange < -c.ImprovementThreshold:
			out.Classification = ClassImprovement
		default:
			out.Classification = ClassStable
		}
		return out
	}

	switch {
	case out.PercentChange < -c.RegressionThreshold:
		out.Classification = ClassRegression
	case out.PercentChange > c.ImprovementThreshold:
		out.Classification = ClassImprovement
	default:
		out.Classification = ClassStable
	}
	return out
}
