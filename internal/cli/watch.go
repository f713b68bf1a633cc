package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/leakage"
)

// NewWatchCmd creates the watch command, which recalculates a scenario file
// every time it is saved.
func NewWatchCmd() *cobra.Command {
	var (
		scenario  string
		output    string
		precision string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recalculate a scenario file on every save",
		Long: `Calculates the scenario file once, then again every time it is written,
until interrupted. A save that leaves the file invalid is logged and skipped,
so the last printed result stays current.`,
		Example: `  # Print a fresh NDJSON line on every save
  leakcalc watch --scenario leak.yaml --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			format, err := resolveOutputFormat(cfg, output)
			if err != nil {
				return err
			}
			calc, err := newCalculator(cmd.Context(), cfg, precision)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runWatch(ctx, cmd.OutOrStdout(), scenario, format, calc)
		},
	}

	cmd.Flags().StringVar(&scenario, "scenario", "", "YAML scenario file to watch (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json, ndjson, prometheus (default from config)")
	cmd.Flags().StringVar(&precision, "precision", "", "intermediate precision: raw or rounded (default from config)")
	_ = cmd.MarkFlagRequired("scenario")

	return cmd
}

// runWatch renders the scenario at path, then re-renders it on every change
// until ctx is cancelled. The file watcher and the renderer run as separate
// goroutines joined by an errgroup.
func runWatch(ctx context.Context, w io.Writer, path, format string, calc *leakage.Calculator) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scenario file: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	updates := make(chan leakage.Inputs, 1)

	g.Go(func() error {
		return config.WatchScenario(gctx, path, func(in leakage.Inputs) {
			select {
			case updates <- in:
			case <-gctx.Done():
			}
		})
	})

	g.Go(func() error {
		if in, err := config.LoadScenario(path); err != nil {
			logger.Warn().Ctx(gctx).Err(err).Msg("initial scenario is invalid, waiting for a valid save")
		} else if err = renderUpdate(gctx, w, format, calc, in); err != nil {
			return err
		}

		for {
			select {
			case <-gctx.Done():
				return nil
			case in := <-updates:
				if err := renderUpdate(gctx, w, format, calc, in); err != nil {
					return err
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// renderUpdate computes and renders one scenario version. Invalid input is
// skipped, leaving the previous output in place.
func renderUpdate(ctx context.Context, w io.Writer, format string, calc *leakage.Calculator, in leakage.Inputs) error {
	res, err := calc.Compute(ctx, in)
	if err != nil {
		return skipOnInvalid(ctx, err)
	}
	if format == config.FormatTable {
		fmt.Fprintln(w)
	}
	return RenderResult(ctx, w, format, res)
}
