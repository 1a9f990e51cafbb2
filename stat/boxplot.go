// Package stat provides the numerical building blocks of the chart
// statistics: quartiles and adjacent values, moments, t-tests and
// kernel smoothed densities.
package stat

import (
	"math"
	"sort"
)

// Coef is the default multiple of the interquartile range beyond the
// quartiles at which a sample is regarded as an outlier.
const Coef = 1.5

// BoxPlotData are the components of a box and whisker plot.
type BoxPlotData struct {
	N          int
	Q1, Median float64
	Q3         float64
	Low, High  float64 // lower and upper adjacent value
	Outliers   []float64
	Retained   int // number of samples between the fences

	LowFence, HighFence float64
}

// IQR is the interquartile range.
func (b BoxPlotData) IQR() float64 { return b.Q3 - b.Q1 }

// IsOutlier reports whether y lies strictly outside the fences of b.
// A value exactly on a fence is an adjacent value, not an outlier.
func (b BoxPlotData) IsOutlier(y float64) bool {
	return y < b.LowFence || y > b.HighFence
}

// BoxPlot calculates the components of a box and whisker plot of data.
// Data is sorted in place, NaNs must have been removed by the caller.
// Fences are placed coef times the interquartile range beyond the
// quartiles. An empty data slice yields a zero BoxPlotData with NaN
// quartiles.
func BoxPlot(data []float64, coef float64) BoxPlotData {
	n := len(data)
	if n == 0 {
		nan := math.NaN()
		return BoxPlotData{Q1: nan, Median: nan, Q3: nan, Low: nan, High: nan,
			LowFence: nan, HighFence: nan}
	}
	sort.Float64s(data)

	b := BoxPlotData{N: n}
	b.Q1, b.Median, b.Q3 = Quartiles(data)

	iqr := b.Q3 - b.Q1
	b.LowFence, b.HighFence = b.Q1-coef*iqr, b.Q3+coef*iqr
	b.Low, b.High = math.Inf(+1), math.Inf(-1)
	for _, y := range data {
		if b.IsOutlier(y) {
			b.Outliers = append(b.Outliers, y)
			continue
		}
		b.Retained++
		if y < b.Low {
			b.Low = y
		}
		if y > b.High {
			b.High = y
		}
	}

	return b
}

// Quartiles returns the first quartile, the median and the third
// quartile of the sorted slice d.
//
// The quartile p (p = 1, 2, 3) is located at the position p*n/4 of the
// empirical distribution. If this position falls exactly on the boundary
// between two samples (n*p divisible by 4) the two neighbouring samples
// are averaged, otherwise the sample covering the position is taken:
//
//	n%4 == 0:  q1 = (d[n/4-1] + d[n/4]) / 2
//	n%4 == 1:  q1 = d[n/4],        median = d[n/2]
//	n%4 == 2:  q1 = d[n/4],        median = (d[n/2-1] + d[n/2]) / 2
//	n%4 == 3:  q1 = d[n/4],        median = d[n/2]
//
// and symmetrically for q3. A single sample is its own quartiles.
//
// This is not a 1:3 / 3:1 weighted average of neighbours for n%4 == 1
// and n%4 == 3: such weights would give q1 = 1.5 for 1..5, whereas the
// quartiles of 1..5 must be 2, 3 and 4.
func Quartiles(d []float64) (q1, median, q3 float64) {
	n := len(d)
	switch n {
	case 0:
		nan := math.NaN()
		return nan, nan, nan
	case 1:
		return d[0], d[0], d[0]
	}
	return quantile(d, 1), quantile(d, 2), quantile(d, 3)
}

// quantile returns the p'th quartile of the sorted d.
func quantile(d []float64, p int) float64 {
	n := len(d)
	pos := p * n
	i := pos / 4
	if pos%4 == 0 {
		return (d[i-1] + d[i]) / 2
	}
	return d[i]
}
