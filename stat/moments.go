package stat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Z95 is the two sided 95% quantile of the standard normal distribution.
const Z95 = 1.96

// Summary holds the moments of a sample.
type Summary struct {
	N      int
	Sum    float64
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64 // sample standard deviation, +Inf for N <= 1
	Margin float64 // half width of the 95% confidence interval of the mean, +Inf for N <= 1
}

// Summarize computes the moments of xs. NaNs must have been removed.
// Standard deviation and error margin of samples with less than two
// elements are undefined and reported as +Inf.
func Summarize(xs []float64) Summary {
	s := Summary{N: len(xs)}
	if s.N == 0 {
		nan := math.NaN()
		s.Mean, s.Min, s.Max = nan, nan, nan
		s.StdDev, s.Margin = math.Inf(+1), math.Inf(+1)
		return s
	}

	sample := stats.Sample{Xs: xs}
	s.Sum = sample.Sum()
	s.Mean = sample.Mean()
	s.Min, s.Max = sample.Bounds()
	if s.N <= 1 {
		s.StdDev, s.Margin = math.Inf(+1), math.Inf(+1)
		return s
	}
	s.StdDev = sample.StdDev()
	s.Margin = Z95 * s.StdDev / math.Sqrt(float64(s.N))
	return s
}
