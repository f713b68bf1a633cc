package leakage

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Compute evaluates the leak formula for in using raw intermediates.
//
// It returns ErrInvalidInput, wrapped with the name of the offending field,
// when any input is NaN or infinite, or when a derived value is not finite
// (an overflowing diameter, a temperature at or below absolute zero). No
// partial result is produced in that case. Compute has no side effects; identical inputs yield identical results.
func Compute(in Inputs) (Result, error) {
	return compute(in, PrecisionRaw)
}

// CriticalPressureRatio returns (2/(k+1))^(k/(k-1)) for the fixed adiabatic
// index: the ratio of critical pressure to absolute pressure.
func CriticalPressureRatio() float64 {
	k := KAdiabatic
	return math.Pow(2/(k+1), k/(k-1))
}

// CriticalGaugeThreshold returns the gauge pressure above which the flow is
// critical. Below it the flow is subcritical. It is exact for PrecisionRaw;
// PrecisionRounded shifts the switch point by at most half a display unit of
// the absolute pressure.
func CriticalGaugeThreshold() float64 {
	return (PSurround/CriticalPressureRatio() - PAtmMPa) / PGaugeToMPa
}

// validate rejects inputs that are not finite numbers.
func validate(in Inputs) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"diameter", in.Diameter},
		{"temperature", in.Temperature},
		{"duration", in.Duration},
		{"pressure", in.Pressure},
		{"density", in.Density},
		{"n2_percent", in.N2Percent},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, f.name)
		}
	}
	return nil
}

// checkFinite rejects a derived value that overflowed or left the domain of
// the formula, such as a temperature at or below absolute zero.
func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not finite", ErrInvalidInput, name)
	}
	return nil
}

// compute runs the derivation chain. The order of the steps and the points
// where values are rounded determine the displayed strings exactly.
func compute(in Inputs, precision Precision) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	k := KAdiabatic
	z := ZCompressibility

	paRaw := in.Pressure*PGaugeToMPa + PAtmMPa
	taRaw := in.Temperature + CelsiusToKelvin
	area := math.Pi * (in.Diameter * in.Diameter) / 4

	// Pressure and temperature read by the critical-pressure and flow steps.
	pa, ta := paRaw, taRaw
	if precision == PrecisionRounded {
		pa = Round(paRaw, PressurePlaces)
		ta = Round(taRaw, TemperaturePlaces)
	}

	pcrit := pa * CriticalPressureRatio()
	regime := RegimeSubcritical
	if PSurround < pcrit {
		regime = RegimeCritical
	}

	// The same integral is used in both regimes.
	cFlow := math.Sqrt(2 / (k + 1))
	kFlow := math.Sqrt((2 * k * TStd) / ((k + 1) * PAtmMPa * ta * z))
	qBase := area * cFlow * kFlow * pa * in.Duration
	volume := qBase * KDoc
	thousands := volume / cubicMetersPerThousand

	derived := []struct {
		name  string
		value float64
	}{
		{"orifice area", area},
		{"critical pressure", pcrit},
		{"volume", volume},
		{"volume in thousand m3", thousands},
	}
	for _, d := range derived {
		if err := checkFinite(d.name, d.value); err != nil {
			return Result{}, err
		}
	}

	return Result{
		Inputs:               in,
		AbsolutePressureMPa:  paRaw,
		AbsoluteTemperatureK: taRaw,
		OrificeAreaM2:        area,
		AdiabaticIndex:       k,
		Compressibility:      z,
		CriticalPressureMPa:  pcrit,
		Regime:               regime,
		VolumeM3:             volume,
		VolumeThousandM3:     thousands,
		Display:              newDisplay(paRaw, taRaw, area, k, z, pcrit, regime, thousands),
	}, nil
}

// newDisplay formats the display slots.
func newDisplay(pa, ta, area, k, z, pcrit float64, regime Regime, thousands float64) Display {
	pcritText := FormatFixed(pcrit, CriticalPlaces)
	return Display{
		AbsolutePressure:    FormatFixed(pa, PressurePlaces) + " " + UnitMPa,
		AbsoluteTemperature: FormatFixed(ta, TemperaturePlaces) + " " + UnitKelvin,
		OrificeArea:         FormatFixed(area, AreaPlaces) + " " + UnitSquareMeter,
		AdiabaticIndex:      FormatFixed(k, AdiabaticIndexPlaces),
		Compressibility:     FormatFixed(z, CompressibilityPlaces),
		CriticalPressure:    pcritText + " " + UnitMPa,
		RegimeClass:         regime.String(),
		RegimeTitle:         "Режим истечения: " + regime.Label(),
		RegimeDescription:   regimeDescription(regime, pcritText),
		Volume:              FormatFixed(thousands, VolumePlaces),
		VolumeUnit:          UnitThousandM3,
	}
}

// regimeDescription explains the regime in terms of the surrounding and
// critical pressures.
func regimeDescription(regime Regime, pcritText string) string {
	surround := formatShortest(PSurround)
	if regime == RegimeCritical {
		return fmt.Sprintf(
			"Давление окружающей среды (%s %s) ниже критического давления (%s %s). Газ истекает со скоростью звука.",
			surround, UnitMPa, pcritText, UnitMPa)
	}
	return fmt.Sprintf(
		"Давление окружающей среды (%s %s) не ниже критического давления (%s %s). Газ истекает с дозвуковой скоростью.",
		surround, UnitMPa, pcritText, UnitMPa)
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithPrecision selects which intermediates the later formula steps read.
func WithPrecision(p Precision) Option {
	return func(c *Calculator) { c.precision = p }
}

// WithLogger sets the logger that receives the calculation trace.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Calculator) { c.logger = logger }
}

// Calculator is the boundary between a UI and the formula. It emits the
// diagnostic trace and never lets a failure in the pipeline escape as a panic.
// A Calculator holds no per-call state and is safe for concurrent use.
type Calculator struct {
	precision Precision
	logger    zerolog.Logger
	eval      func(Inputs, Precision) (Result, error)
}

// NewCalculator returns a Calculator using raw intermediates and a no-op
// logger unless overridden by opts.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{precision: PrecisionRaw, logger: zerolog.Nop(), eval: compute}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Precision returns the configured precision mode.
func (c *Calculator) Precision() Precision { return c.precision }

// Compute evaluates the formula for in.
//
// Invalid input returns ErrInvalidInput and is logged at debug level only,
// since callers are expected to skip silently. A panic inside the pipeline is
// recovered, logged at error level and returned as ErrCalculationFailed.
func (c *Calculator) Compute(ctx context.Context, in Inputs) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Ctx(ctx).
				Str("component", "leakage").
				Interface("panic", r).
				Msg("leak calculation failed")
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrCalculationFailed, r)
		}
	}()

	res, err = c.eval(in, c.precision)
	if err != nil {
		c.logger.Debug().Ctx(ctx).
			Str("component", "leakage").
			Err(err).
			Msg("skipping calculation")
		return Result{}, err
	}

	c.logger.Debug().Ctx(ctx).
		Str("component", "leakage").
		Str("orifice_area", res.Display.OrificeArea).
		Msg("orifice area")
	c.logger.Debug().Ctx(ctx).
		Str("component", "leakage").
		Str("precision", c.precision.String()).
		Str("regime", res.Regime.String()).
		Str("volume_thousand_m3", res.Display.Volume).
		Msg("leak volume")

	return res, nil
}
