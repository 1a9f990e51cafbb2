package stat

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Log2Of10 converts a difference of decimal logarithms into a
// difference of binary logarithms.
const Log2Of10 = 3.321928

// PValue returns the two sided p-value of Welch's t-test comparing the
// means of xs and ref. Degenerate input (too few samples, zero variance
// in both samples) yields NaN instead of an error.
func PValue(xs, ref []float64) float64 {
	if len(xs) == 0 || len(ref) == 0 {
		return math.NaN()
	}
	res, err := stats.TwoSampleWelchTTest(stats.Sample{Xs: xs}, stats.Sample{Xs: ref}, stats.LocationDiffers)
	if err != nil || math.IsNaN(res.P) || math.IsInf(res.T, 0) {
		return math.NaN()
	}
	return res.P
}

// FoldChange compares mean to refMean. On a logarithmic column the
// means are decimal logarithms and the result is log2 of the fold
// change; on a linear column it is the ratio of the means. A zero
// reference mean on a linear column yields NaN.
func FoldChange(mean, refMean float64, logarithmic bool) float64 {
	if math.IsNaN(mean) || math.IsNaN(refMean) {
		return math.NaN()
	}
	if logarithmic {
		return Log2Of10 * (mean - refMean)
	}
	if refMean == 0 {
		return math.NaN()
	}
	return mean / refMean
}
