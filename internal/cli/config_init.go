package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates $LEAKCALC_HOME/config.yaml (default ~/.leakcalc/config.yaml) with the
built-in defaults, including the default leak scenario.`,
		Example: `  # Create configuration
  leakcalc config init

  # Create configuration, overwriting existing
  leakcalc config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// initConfig writes the default configuration to the config directory.
func initConfig(cmd *cobra.Command, force bool) error {
	cfg := config.New()

	// Check if config already exists and force isn't set
	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	// Write defaults, not whatever a broken file left behind.
	fresh := config.Default()
	fresh.SetConfigPath(cfg.ConfigPath())
	if err := fresh.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", fresh.ConfigPath())

	return nil
}
