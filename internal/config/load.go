package config

import (
	"fmt"
	"os"
	"strings"

	"benchgate/internal/benchmark"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default locations, all relative to the working directory the gate runs
// in. CI jobs usually override them via BENCHGATE_* environment variables.
const (
	DefaultBaselineFile = ".benchgate/baseline.json"
	DefaultResultsDir   = ".benchgate/results"
	DefaultReportFile   = ".benchgate/report.json"
)

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env file is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search the working directory for a .benchgate.yaml.
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".benchgate")
	}

	viper.SetEnvPrefix("BENCHGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// Honor a bare SLACK_WEBHOOK_URL when the prefixed variant is not set,
	// since CI secrets are commonly exported under the plain name.
	if os.Getenv("BENCHGATE_SLACK_WEBHOOK_URL") == "" && os.Getenv("SLACK_WEBHOOK_URL") != "" {
		viper.SetDefault("slack_webhook_url", os.Getenv("SLACK_WEBHOOK_URL"))
	}

	// Set defaults
	viper.SetDefault("baseline_file", DefaultBaselineFile)
	viper.SetDefault("results_dir", DefaultResultsDir)
	viper.SetDefault("report_file", DefaultReportFile)
	viper.SetDefault("regression_threshold", benchmark.DefaultRegressionThreshold)
	viper.SetDefault("improvement_threshold", benchmark.DefaultImprovementThreshold)
	viper.SetDefault("markdown_file", "")
	viper.SetDefault("metrics_file", "")
	viper.SetDefault("slack_webhook_url", "")
	viper.SetDefault("notify", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("log_file", "")

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
