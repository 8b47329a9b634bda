package main

import (
	"fmt"
	"os"
	"path/filepath"

	"benchgate/internal/benchmark"
	"benchgate/internal/notify"
	"benchgate/internal/telemetry"
	"benchgate/internal/ui"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Seams for tests.
var (
	newPipelineFunc = benchmark.NewPipeline
	newNotifierFunc = func(webhookURL string) notify.Notifier {
		return notify.NewSlackNotifier(webhookURL)
	}
	stdoutIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare current benchmark results against the baseline",
		Long: `Loads the benchmark result files, compares every metric against the
stored baseline and writes a JSON report. The command fails when any metric
regresses beyond the regression threshold, which makes it usable as a CI
gate. With no baseline present the current results become the initial
baseline and no comparison takes place.`,
		RunE:         runAnalyze,
		SilenceUsage: true,
	}

	addAnalyzeFlags(cmd)

	return cmd
}

var analyzeCmd = NewAnalyzeCmd()

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func addAnalyzeFlags(cmd *cobra.Command) {
	cmd.Flags().String("baseline", "", "Baseline file path")
	cmd.Flags().String("results", "", "Directory containing benchmark result files")
	cmd.Flags().String("report", "", "Report output path")
	cmd.Flags().Float64("regression-threshold", benchmark.DefaultRegressionThreshold, "Fractional slowdown that fails the gate (0.10 = 10%)")
	cmd.Flags().Float64("improvement-threshold", benchmark.DefaultImprovementThreshold, "Fractional speedup reported as an improvement (0.05 = 5%)")
	cmd.Flags().String("markdown", "", "Also write a markdown summary to this file")
	cmd.Flags().String("metrics-file", "", "Also write Prometheus textfile metrics to this file")
	cmd.Flags().Bool("notify", false, "Send the verdict to the configured Slack webhook")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	opts := benchmark.Options{
		BaselinePath:         flagString(flags, "baseline", "baseline_file"),
		ResultsDir:           flagString(flags, "results", "results_dir"),
		ReportPath:           flagString(flags, "report", "report_file"),
		RegressionThreshold:  flagFloat(flags, "regression-threshold", "regression_threshold"),
		ImprovementThreshold: flagFloat(flags, "improvement-threshold", "improvement_threshold"),
	}
	quiet := viper.GetBool("quiet")
	out := cmd.OutOrStdout()

	if !quiet {
		fmt.Fprintf(out, "🔍 Analyzing benchmark results in %s\n", opts.ResultsDir)
	}

	p := newPipelineFunc(opts)
	analysis, err := p.Analyze()
	if err != nil {
		return err
	}

	if analysis.Bootstrapped {
		fmt.Fprintln(out, ui.Success(fmt.Sprintf("✅ No baseline found. Snapshotted %d records to %s", analysis.BaselineRecords, opts.BaselinePath)))
		return nil
	}

	report := analysis.Report

	if !quiet {
		if stdoutIsTTY() {
			ui.RenderMarkdown(out, report.Markdown())
		} else {
			fmt.Fprint(out, report.TextSummary())
		}
		fmt.Fprintf(out, "💾 Report written to %s\n", opts.ReportPath)
	}

	if path := flagString(flags, "markdown", "markdown_file"); path != "" {
		if err := writeMarkdownFile(path, report); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(out, "📝 Markdown summary written to %s\n", path)
		}
	}

	// The metrics textfile and the notification are conveniences on top of
	// the gate; failures there must not mask the analysis verdict.
	if path := flagString(flags, "metrics-file", "metrics_file"); path != "" {
		gm := telemetry.NewGateMetrics()
		s := report.Summary
		gm.Record(s.Total, s.Regressions, s.Improvements, s.Stable, s.MissingData, s.InvalidData, !report.Failed())
		if err := gm.WriteTextfile(path); err != nil {
			telemetry.LogWarn("failed to write metrics textfile", "path", path, "error", err)
			fmt.Fprintln(out, ui.Warning("⚠️ Failed to write metrics: "+err.Error()))
		} else if !quiet {
			fmt.Fprintf(out, "📈 Metrics written to %s\n", path)
		}
	}

	if flagBool(flags, "notify", "notify") {
		notifier := newNotifierFunc(viper.GetString("slack_webhook_url"))
		if err := notifier.Notify(cmd.Context(), notificationText(report)); err != nil {
			telemetry.LogWarn("failed to send notification", "error", err)
			fmt.Fprintln(out, ui.Warning("⚠️ Failed to send notification: "+err.Error()))
		} else if !quiet {
			fmt.Fprintln(out, "📣 Notification sent")
		}
	}

	if report.Failed() {
		return fmt.Errorf("performance regression detected: %d metric(s) regressed beyond threshold", report.Summary.Regressions)
	}

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("✅ Benchmark gate passed: %d metrics analyzed", report.Summary.Total)))
	return nil
}

func writeMarkdownFile(path string, report *benchmark.Report) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create markdown directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(report.Markdown()), 0644); err != nil {
		return fmt.Errorf("failed to write markdown summary %s: %w", path, err)
	}
	return nil
}

func notificationText(report *benchmark.Report) string {
	s := report.Summary
	if report.Failed() {
		return fmt.Sprintf("❌ Benchmark gate failed: %d of %d metrics regressed beyond threshold", s.Regressions, s.Total)
	}
	return fmt.Sprintf("✅ Benchmark gate passed: %d metrics analyzed (%d improvements, %d stable)", s.Total, s.Improvements, s.Stable)
}
