package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/tui"
)

// NewInteractiveCmd creates the interactive command, which opens the leak
// form and recalculates on every keystroke.
func NewInteractiveCmd() *cobra.Command {
	var precision string

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"ui"},
		Short:   "Edit the inputs in a live terminal form",
		Long: `Opens a terminal form with the six inputs seeded from calculation.defaults.
Every change is recalculated immediately. While a field does not hold a number
the last result stays on screen.

Keys: tab/shift+tab or ↑/↓ move between fields, ctrl+r restores the defaults,
q, esc or ctrl+c quits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()

			calc, err := newCalculator(ctx, cfg, precision)
			if err != nil {
				return err
			}

			if tui.DetectOutputModeFor(cmd.OutOrStdout(), false, false, false) != tui.OutputModeInteractive {
				logger.Warn().Ctx(ctx).Msg("stdout is not an interactive terminal, printing the default scenario")
				res, calcErr := calc.Compute(ctx, cfg.Calculation.Defaults)
				if calcErr != nil {
					return skipOnInvalid(ctx, calcErr)
				}
				return RenderResult(ctx, cmd.OutOrStdout(), config.FormatTable, res)
			}

			p := tea.NewProgram(
				tui.NewLeakModel(ctx, calc, cfg.Calculation.Defaults),
				tea.WithContext(ctx),
				tea.WithAltScreen(),
			)
			if _, err = p.Run(); err != nil {
				return fmt.Errorf("failed to run interactive TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&precision, "precision", "", "intermediate precision: raw or rounded (default from config)")
	return cmd
}
