package leakage

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseInputs converts the text a UI collected into Inputs.
//
// Surrounding whitespace is ignored and a comma is accepted as the decimal
// separator. Empty, non-numeric or non-finite text yields ErrInvalidInput
// wrapped with the name of the field.
func ParseInputs(raw RawInputs) (Inputs, error) {
	var in Inputs
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"diameter", raw.Diameter, &in.Diameter},
		{"temperature", raw.Temperature, &in.Temperature},
		{"duration", raw.Duration, &in.Duration},
		{"pressure", raw.Pressure, &in.Pressure},
		{"density", raw.Density, &in.Density},
		{"n2_percent", raw.N2Percent, &in.N2Percent},
	}
	for _, f := range fields {
		v, err := ParseNumber(f.text)
		if err != nil {
			return Inputs{}, fmt.Errorf("%w: %s: %w", ErrInvalidInput, f.name, err)
		}
		*f.dst = v
	}
	return in, nil
}

// ParseNumber parses a single finite number.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty value")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}

// Raw returns the inputs formatted the way ParseInputs reads them back.
func (in Inputs) Raw() RawInputs {
	return RawInputs{
		Diameter:    formatShortest(in.Diameter),
		Temperature: formatShortest(in.Temperature),
		Duration:    formatShortest(in.Duration),
		Pressure:    formatShortest(in.Pressure),
		Density:     formatShortest(in.Density),
		N2Percent:   formatShortest(in.N2Percent),
	}
}
