package leakage

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Round rounds v half away from zero to the given number of decimal places.
//
// Rounding operates on the shortest decimal representation of v, so 293.15
// rounds to 293.2 even though its binary value is slightly below 293.15.
// v must be finite.
func Round(v float64, places int) float64 {
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64() //nolint:gosec // places is a small display precision
}

// FormatFixed formats v with exactly places decimals, rounding half away from
// zero the same way Round does. v must be finite.
//
// Example: FormatFixed(0.000019634954, 8) returns "0.00001963".
func FormatFixed(v float64, places int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(places)) //nolint:gosec // places is a small display precision
}

// formatShortest formats v with the fewest digits that round-trip, so 0.1 is
// rendered as "0.1".
func formatShortest(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
