package catplot

import (
	"math"
	"strconv"
	"strings"
)

// delog converts a decimal logarithm back to the linear domain.
func delog(v float64) float64 { return math.Pow(10, v) }

// relog is the inverse of delog. Non positive values have no logarithm.
func relog(v float64) float64 {
	if !(v > 0) {
		return math.NaN()
	}
	return math.Log10(v)
}

// linear returns v in the linear domain of the axis.
func linear(v float64, log bool) float64 {
	if log {
		return delog(v)
	}
	return v
}

// FormatSignificant formats v with the given number of significant
// digits. Trailing zeros of the fraction are dropped, very large and
// very small magnitudes use exponent notation. Positive infinity, the
// marker of an undefined statistic, is printed as "Infinity".
func FormatSignificant(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, +1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if digits < 1 {
		digits = 1
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	if exp < -6 || exp >= digits+6 {
		return strconv.FormatFloat(v, 'g', digits, 64)
	}
	decimals := digits - 1 - exp
	if decimals <= 0 {
		p := math.Pow(10, float64(-decimals))
		return strconv.FormatFloat(math.Round(v/p)*p, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
