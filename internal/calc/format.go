package calc

import (
	"math"
	"strconv"
	"strings"
)

const (
	valueWidth    = 20
	valueDecimals = 8
	valueFill     = "."
)

// FormatValue renders a register the way the stack pane shows it: eight
// decimals, right aligned to twenty columns and filled with dots. Very small
// and very large magnitudes switch to scientific notation such as
// "1.50000000e-5".
func FormatValue(v float64) string {
	s := formatNumber(v)
	if n := len(s); n < valueWidth {
		s = strings.Repeat(valueFill, valueWidth-n) + s
	}
	return s
}

func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e11) {
		return scientific(v)
	}
	return strconv.FormatFloat(v, 'f', valueDecimals, 64)
}

// scientific writes the exponent without a plus sign or zero padding.
func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', valueDecimals, 64)
	mantissa, exp, ok := strings.Cut(s, "e")
	if !ok {
		return s
	}
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}

// formatCompact is used where alignment does not matter.
func formatCompact(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
