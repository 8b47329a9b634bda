package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any
// are invalid. It runs after viper has loaded the configuration and before
// any analysis starts, so a broken setup aborts the run up front.
func ValidateConfig() error {
	var errors []string

	// Thresholds must parse as non-negative numbers. They are validated via
	// their string form so a typo like "0.1x" is reported instead of being
	// silently read as zero.
	for _, key := range []string{"regression_threshold", "improvement_threshold"} {
		if !viper.IsSet(key) {
			continue
		}
		raw := viper.GetString(key)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s must be a number, got: %q", key, raw))
			continue
		}
		if value < 0 {
			errors = append(errors, fmt.Sprintf("%s must be non-negative, got: %v", key, value))
		}
	}

	// Paths must not be blanked out; the pipeline has nowhere to fall back to.
	for _, key := range []string{"baseline_file", "results_dir", "report_file"} {
		if viper.IsSet(key) && viper.GetString(key) == "" {
			errors = append(errors, fmt.Sprintf("%s must not be empty", key))
		}
	}

	// Notifications need a destination.
	if viper.GetBool("notify") && viper.GetString("slack_webhook_url") == "" {
		errors = append(errors, "notify is enabled but slack_webhook_url is not set")
	}

	// If there are any errors, return them
	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}

// ValidateAndExit validates the configuration and exits with a non-zero code
// if validation fails. This is a convenience function that prints errors to
// stderr and exits.
func ValidateAndExit() {
	if err := ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
