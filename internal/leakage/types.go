// Package leakage computes the volume of gas leaking through a small circular
// orifice, such as a pipeline defect.
//
// The model is a single closed-form compressible-orifice formula. Six scalar
// inputs go in; the absolute pressure and temperature, the orifice area, the
// critical pressure, the flow regime and the leaked volume come out, each in
// a raw form and as a rounded display string. Nothing is cached between calls.
package leakage

import (
	"fmt"
	"strings"
)

// Inputs are the operator-supplied parameters of one leak scenario.
type Inputs struct {
	// Diameter is the orifice diameter in metres.
	Diameter float64 `json:"diameter" yaml:"diameter"`

	// Temperature is the gas temperature in degrees Celsius.
	Temperature float64 `json:"temperature" yaml:"temperature"`

	// Duration is the leak duration in seconds.
	Duration float64 `json:"duration" yaml:"duration"`

	// Pressure is the gauge pressure in kgf/cm².
	Pressure float64 `json:"pressure" yaml:"pressure"`

	// Density is the gas density at standard conditions, kg/m³.
	// Accepted for interface compatibility; the formula does not use it.
	Density float64 `json:"density" yaml:"density"`

	// N2Percent is the nitrogen content in percent.
	// Accepted for interface compatibility; the formula does not use it.
	N2Percent float64 `json:"n2_percent" yaml:"n2_percent"`
}

// RawInputs holds the six inputs as the text a UI collected them in.
type RawInputs struct {
	Diameter    string
	Temperature string
	Duration    string
	Pressure    string
	Density     string
	N2Percent   string
}

// Regime is the orifice flow regime.
type Regime int

const (
	// RegimeSubcritical is subsonic flow: the surrounding pressure still
	// influences the flow rate.
	RegimeSubcritical Regime = iota

	// RegimeCritical is sonic flow: the exit velocity reaches the local speed
	// of sound.
	RegimeCritical
)

// String returns the style key of the regime.
func (r Regime) String() string {
	switch r {
	case RegimeSubcritical:
		return "subcritical"
	case RegimeCritical:
		return "critical"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// Label returns the display text of the regime.
func (r Regime) Label() string {
	if r == RegimeCritical {
		return "Критический (звуковой)"
	}
	return "Докритический (дозвуковой)"
}

// MarshalText encodes the regime as its style key.
func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Precision selects which intermediates the later formula steps read.
type Precision int

const (
	// PrecisionRaw feeds the unrounded absolute pressure and temperature into
	// the critical-pressure and flow formulas.
	PrecisionRaw Precision = iota

	// PrecisionRounded feeds the display-rounded absolute pressure and
	// temperature into the later formulas.
	PrecisionRounded
)

// String returns the configuration name of the precision mode.
func (p Precision) String() string {
	switch p {
	case PrecisionRaw:
		return "raw"
	case PrecisionRounded:
		return "rounded"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// ParsePrecision parses a precision mode name. The empty string means raw.
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return PrecisionRaw, nil
	case "rounded":
		return PrecisionRounded, nil
	default:
		return PrecisionRaw, fmt.Errorf("unknown precision %q (want raw or rounded)", s)
	}
}

// Result is the outcome of one computation.
type Result struct {
	Inputs Inputs `json:"inputs"`

	AbsolutePressureMPa  float64 `json:"absolute_pressure_mpa"`
	AbsoluteTemperatureK float64 `json:"absolute_temperature_k"`
	OrificeAreaM2        float64 `json:"orifice_area_m2"`
	AdiabaticIndex       float64 `json:"adiabatic_index"`
	Compressibility      float64 `json:"compressibility"`
	CriticalPressureMPa  float64 `json:"critical_pressure_mpa"`
	Regime               Regime  `json:"regime"`
	VolumeM3             float64 `json:"volume_m3"`
	VolumeThousandM3     float64 `json:"volume_thousand_m3"`

	// Display holds the formatted strings, one per display slot.
	Display Display `json:"display"`
}

// Critical reports whether the flow is sonic.
func (r Result) Critical() bool { return r.Regime == RegimeCritical }

// Display holds one formatted string per display slot.
type Display struct {
	AbsolutePressure    string `json:"absolute_pressure"`
	AbsoluteTemperature string `json:"absolute_temperature"`
	OrificeArea         string `json:"orifice_area"`
	AdiabaticIndex      string `json:"adiabatic_index"`
	Compressibility     string `json:"compressibility"`
	CriticalPressure    string `json:"critical_pressure"`
	RegimeClass         string `json:"regime_class"`
	RegimeTitle         string `json:"regime_title"`
	RegimeDescription   string `json:"regime_description"`
	Volume              string `json:"volume"`
	VolumeUnit          string `json:"volume_unit"`
}
