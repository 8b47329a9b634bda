package main

import (
	"fmt"
	"os"

	"benchgate/internal/config"
	"benchgate/internal/telemetry"
	"benchgate/internal/ui"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands.
// Running it bare is equivalent to running the analyze subcommand.
var rootCmd = &cobra.Command{
	Use:   "benchgate",
	Short: "Benchmark regression gate for CI pipelines",
	Long: `benchgate compares the current benchmark results against a stored
baseline and fails the build when any metric regresses beyond the configured
threshold. Without a subcommand it runs the analysis.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runAnalyze,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Wrap Execute in panic recovery for graceful shutdown
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.benchgate.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress progress output, print only the verdict")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	// The bare invocation runs the analysis, so the root carries the same
	// flags as the analyze subcommand.
	addAnalyzeFlags(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
		exit(1)
	}

	telemetry.InitLogger(viper.GetBool("verbose"), viper.GetString("log_file"))
}

// flagString resolves a setting from an explicitly set flag first and the
// viper config second. Flags are per-command, so the usual BindPFlag approach
// would leave the binding pointing at whichever command registered last.
func flagString(flags *pflag.FlagSet, name, key string) string {
	if flags.Changed(name) {
		v, _ := flags.GetString(name)
		return v
	}
	return viper.GetString(key)
}

func flagFloat(flags *pflag.FlagSet, name, key string) float64 {
	if flags.Changed(name) {
		v, _ := flags.GetFloat64(name)
		return v
	}
	return viper.GetFloat64(key)
}

func flagBool(flags *pflag.FlagSet, name, key string) bool {
	if flags.Changed(name) {
		v, _ := flags.GetBool(name)
		return v
	}
	return viper.GetBool(key)
}
