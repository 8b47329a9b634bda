package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// GateMetrics represents the collection of all Prometheus metrics for a gate
// run. The process is short-lived, so instead of serving /metrics over HTTP
// the gauges are dumped to a textfile that a node_exporter textfile
// collector can scrape.
type GateMetrics struct {
	registry *prometheus.Registry

	MetricsAnalyzed prometheus.Gauge
	Regressions     prometheus.Gauge
	Improvements    prometheus.Gauge
	Stable          prometheus.Gauge
	MissingData     prometheus.Gauge
	InvalidData     prometheus.Gauge
	GatePassed      prometheus.Gauge
	LastRunTime     prometheus.Gauge
}

// NewGateMetrics creates and registers all gate metrics on a private
// registry so repeated runs in one process never collide.
func NewGateMetrics() *GateMetrics {
	m := &GateMetrics{registry: prometheus.NewRegistry()}

	m.MetricsAnalyzed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_metrics_analyzed",
			Help: "Number of (test, metric) pairs analyzed in the last run",
		},
	)

	m.Regressions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_regressions",
			Help: "Number of metrics classified as regressions in the last run",
		},
	)

	m.Improvements = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_improvements",
			Help: "Number of metrics classified as improvements in the last run",
		},
	)

	m.Stable = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_stable",
			Help: "Number of metrics classified as stable in the last run",
		},
	)

	m.MissingData = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_missing_data",
			Help: "Number of metrics with no baseline or current value",
		},
	)

	m.InvalidData = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_invalid_data",
			Help: "Number of metrics with non-numeric values",
		},
	)

	m.GatePassed = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_gate_passed",
			Help: "Whether the last gate run passed (1=passed, 0=failed)",
		},
	)

	m.LastRunTime = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "benchgate_last_run_timestamp_seconds",
			Help: "Unix timestamp of the last gate run",
		},
	)

	// Register all metrics
	m.registry.MustRegister(
		m.MetricsAnalyzed,
		m.Regressions,
		m.Improvements,
		m.Stable,
		m.MissingData,
		m.InvalidData,
		m.GatePassed,
		m.LastRunTime,
	)

	return m
}

// Record captures the counts of a completed gate run.
func (m *GateMetrics) Record(total, regressions, improvements, stable, missing, invalid int, passed bool) {
	m.MetricsAnalyzed.Set(float64(total))
	m.Regressions.Set(float64(regressions))
	m.Improvements.Set(float64(improvements))
	m.Stable.Set(float64(stable))
	m.MissingData.Set(float64(missing))
	m.InvalidData.Set(float64(invalid))
	if passed {
		m.GatePassed.Set(1)
	} else {
		m.GatePassed.Set(0)
	}
	m.LastRunTime.SetToCurrentTime()
}

// WriteTextfile writes all registered metrics to path in the Prometheus text
// exposition format. Parent directories are created as needed.
func (m *GateMetrics) WriteTextfile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory %s: %w", dir, err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
