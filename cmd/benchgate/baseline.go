package main

import (
	"fmt"
	"os"

	"benchgate/internal/benchmark"
	"benchgate/internal/ui"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	askOneFunc = survey.AskOne
	stdinIsTTY = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
)

func NewCreateBaselineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-baseline",
		Short: "Snapshot the current benchmark results as the new baseline",
		Long: `Rebuilds the baseline from the current result files, overwriting any
existing snapshot. Run it after an intentional performance change so that
later analyze runs compare against the new expected values.`,
		RunE:         runCreateBaseline,
		SilenceUsage: true,
	}

	cmd.Flags().String("baseline", "", "Baseline file path")
	cmd.Flags().String("results", "", "Directory containing benchmark result files")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing baseline without prompting")

	return cmd
}

var createBaselineCmd = NewCreateBaselineCmd()

func init() {
	rootCmd.AddCommand(createBaselineCmd)
}

func runCreateBaseline(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	opts := benchmark.Options{
		BaselinePath:         flagString(flags, "baseline", "baseline_file"),
		ResultsDir:           flagString(flags, "results", "results_dir"),
		RegressionThreshold:  viper.GetFloat64("regression_threshold"),
		ImprovementThreshold: viper.GetFloat64("improvement_threshold"),
	}
	force, _ := flags.GetBool("force")
	out := cmd.OutOrStdout()

	p := newPipelineFunc(opts)

	// Prompt before overwriting an existing baseline, but only when a human
	// is attached. CI runs overwrite without ceremony.
	if p.BaselineExists() && !force && stdinIsTTY() {
		overwrite := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Baseline already exists at %s. Overwrite?", opts.BaselinePath),
			Default: false,
		}
		if err := askOneFunc(prompt, &overwrite); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !overwrite {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	n, err := p.CreateBaseline()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.Success(fmt.Sprintf("✅ Baseline created at %s (%d records)", opts.BaselinePath, n)))
	return nil
}
