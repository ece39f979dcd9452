// Package output provides formatting helpers shared by the CLI response
// renderers. Impact values are rounded before display so json, yaml, and
// human output agree on the same numbers.
package output

import (
	"math"
	"strconv"
)

// impactPrecision is the number of decimal places kept for impact values
const impactPrecision = 6

// RoundFloat rounds a float to the display precision
func RoundFloat(f float64) float64 {
	shift := math.Pow(10, impactPrecision)
	return math.Round(f*shift) / shift
}

// FormatFloat formats a float with no trailing zeros
func FormatFloat(f float64) string {
	return strconv.FormatFloat(RoundFloat(f), 'f', -1, 64)
}
