package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/leakage"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration for syntax and semantic correctness.

This includes:
- Schema version compatibility
- Output format and precision names
- The default scenario (every input must be a finite number)
- Log level`,
		Example: `  # Validate current configuration
  leakcalc config validate

  # Validate and show detailed information
  leakcalc config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.LoadError(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Precision: %s\n", cfg.Precision())
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	d := cfg.Calculation.Defaults.Raw()
	cmd.Println("  Default scenario:")
	cmd.Printf("    diameter: %s m\n", d.Diameter)
	cmd.Printf("    temperature: %s °C\n", d.Temperature)
	cmd.Printf("    duration: %s s\n", d.Duration)
	cmd.Printf("    pressure: %s kgf/cm²\n", d.Pressure)
	cmd.Printf("    density: %s kg/m³\n", d.Density)
	cmd.Printf("    n2_percent: %s %%\n", d.N2Percent)

	cmd.Printf("  Critical regime above: %s kgf/cm² gauge\n",
		leakage.FormatFixed(leakage.CriticalGaugeThreshold(), leakage.CriticalPlaces))
}
