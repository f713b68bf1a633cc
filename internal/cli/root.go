package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the leakcalc CLI.
// It loads configuration, wires up logging and tracing, and registers the
// calc, interactive, watch, config and version subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "leakcalc",
		Short: "Gas leakage calculator for small orifices",
		Long: `leakcalc estimates the volume of natural gas escaping through a small
circular orifice (a pipeline defect) over a given time, and classifies the
outflow as critical (sonic) or subcritical (subsonic).`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging, including the calculation trace")
	cmd.PersistentFlags().String("config", "", "path to a config file (default $LEAKCALC_HOME/config.yaml)")
	cmd.PersistentFlags().StringSlice("overlay", nil,
		"YAML files whose top-level sections replace those of the config, applied in order")
	cmd.AddCommand(
		NewCalcCmd(),
		NewInteractiveCmd(),
		NewWatchCmd(),
		newConfigCmd(),
		NewVersionCmd(ver),
	)

	return cmd
}

// loadConfig installs the global configuration, from --config when given,
// and applies any --overlay files on top of it.
func loadConfig(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		config.InitGlobalConfig()
		if err := config.GetGlobalConfig().LoadError(); err != nil {
			cmd.PrintErrf("Warning: ignoring config file: %v\n", err)
		}
	} else {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		config.SetGlobalConfig(cfg)
	}

	overlays, _ := cmd.Flags().GetStringSlice("overlay")
	cfg := config.GetGlobalConfig()
	for _, overlay := range overlays {
		if err := config.ShallowMergeYAML(cfg, overlay); err != nil {
			return fmt.Errorf("applying overlay: %w", err)
		}
	}
	return nil
}

const rootCmdExample = `  # Calculate the default scenario
  leakcalc calc

  # 10 mm orifice at 12 kgf/cm² leaking for 30 minutes
  leakcalc calc --diameter 0.01 --pressure 12 --duration 1800

  # Emit Prometheus gauges for the node_exporter textfile collector
  leakcalc calc --scenario leak.yaml --output prometheus > leak.prom

  # Edit the inputs interactively
  leakcalc interactive

  # Recalculate every time a scenario file is saved
  leakcalc watch --scenario leak.yaml

  # Swap in a site-specific default scenario
  leakcalc calc --overlay site-a.yaml

  # Initialize configuration
  leakcalc config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
