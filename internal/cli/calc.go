package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sergeyya18/leakcalc/internal/config"
	"github.com/sergeyya18/leakcalc/internal/leakage"
	"github.com/sergeyya18/leakcalc/internal/logging"
)

// inputFlags holds the raw text of the six input flags.
type inputFlags struct {
	diameter    string
	temperature string
	duration    string
	pressure    string
	density     string
	n2          string
}

// register adds the input flags to cmd. Unset flags fall back to the
// scenario file, then to calculation.defaults from the config.
func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.diameter, "diameter", "", "orifice diameter d, m")
	cmd.Flags().StringVar(&f.temperature, "temperature", "", "gas temperature t, °C")
	cmd.Flags().StringVar(&f.duration, "duration", "", "leak duration τ, s")
	cmd.Flags().StringVar(&f.pressure, "pressure", "", "gauge pressure in the pipe Pт, kgf/cm²")
	cmd.Flags().StringVar(&f.density, "density", "", "gas density at standard conditions ρ, kg/m³ (informational)")
	cmd.Flags().StringVar(&f.n2, "n2", "", "nitrogen content N₂, % (informational)")
}

// overlay replaces the fields of base whose flag was set on the command line.
func (f *inputFlags) overlay(cmd *cobra.Command, base leakage.RawInputs) leakage.RawInputs {
	set := func(name, value string, dst *string) {
		if cmd.Flags().Changed(name) {
			*dst = value
		}
	}
	set("diameter", f.diameter, &base.Diameter)
	set("temperature", f.temperature, &base.Temperature)
	set("duration", f.duration, &base.Duration)
	set("pressure", f.pressure, &base.Pressure)
	set("density", f.density, &base.Density)
	set("n2", f.n2, &base.N2Percent)
	return base
}

// calcOptions holds the calc command flags.
type calcOptions struct {
	inputs    inputFlags
	precision string
	output    string
	scenario  string
}

// NewCalcCmd creates the calc command, which evaluates one leak scenario.
func NewCalcCmd() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate the gas leak volume for one scenario",
		Long: `Calculates the leaked gas volume, the critical pressure and the outflow
regime for one set of inputs.

Inputs are taken from the flags, then from --scenario, then from
calculation.defaults in the config file. A comma is accepted as the decimal
separator. When an input is not a finite number nothing is printed and the
command exits successfully; the reason is logged at warn level.`,
		Example: `  # Default scenario as a table
  leakcalc calc

  # 20 mm rupture at 50 kgf/cm² and -10 °C over a day, as JSON
  leakcalc calc --diameter 0.02 --pressure 50 --temperature -10 --duration 86400 --output json

  # Feed display-rounded Pa and Ta into the later steps
  leakcalc calc --precision rounded`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalc(cmd, &opts)
		},
	}

	opts.inputs.register(cmd)
	cmd.Flags().StringVar(&opts.precision, "precision", "", "intermediate precision: raw or rounded (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: table, json, ndjson, prometheus (default from config)")
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "YAML scenario file with the six inputs")

	return cmd
}

func runCalc(cmd *cobra.Command, opts *calcOptions) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	format, err := resolveOutputFormat(cfg, opts.output)
	if err != nil {
		return err
	}
	calc, err := newCalculator(ctx, cfg, opts.precision)
	if err != nil {
		return err
	}

	base := cfg.Calculation.Defaults
	if opts.scenario != "" {
		base, err = config.LoadScenario(opts.scenario)
		if err != nil {
			return skipOnInvalid(ctx, err)
		}
	}

	in, err := leakage.ParseInputs(opts.inputs.overlay(cmd, base.Raw()))
	if err != nil {
		return skipOnInvalid(ctx, err)
	}

	res, err := calc.Compute(ctx, in)
	if err != nil {
		return skipOnInvalid(ctx, err)
	}

	return RenderResult(ctx, cmd.OutOrStdout(), format, res)
}

// skipOnInvalid implements the skip-silently policy: invalid input is logged
// and swallowed, anything else is returned.
func skipOnInvalid(ctx context.Context, err error) error {
	if errors.Is(err, leakage.ErrInvalidInput) || errors.Is(err, leakage.ErrCalculationFailed) {
		logger.Warn().Ctx(ctx).Err(err).Msg("calculation skipped")
		return nil
	}
	return err
}

// resolveOutputFormat returns the --output value or the configured default.
func resolveOutputFormat(cfg *config.Config, flag string) (string, error) {
	format := flag
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if !config.IsValidOutputFormat(format) {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return format, nil
}

// newCalculator builds a Calculator for the --precision value or the
// configured precision, logging through the logger carried by ctx.
func newCalculator(ctx context.Context, cfg *config.Config, precisionFlag string) (*leakage.Calculator, error) {
	precision := cfg.Precision()
	if precisionFlag != "" {
		p, err := leakage.ParsePrecision(precisionFlag)
		if err != nil {
			return nil, err
		}
		precision = p
	}
	return leakage.NewCalculator(
		leakage.WithPrecision(precision),
		leakage.WithLogger(*logging.FromContext(ctx)),
	), nil
}
