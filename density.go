package catplot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vdobler/catplot/stat"
)

// DensityBin is the smoothed distribution of one bin.
type DensityBin struct {
	Key     BinKey
	Density stat.Density
}

// DensityResult is the outcome of smoothing a violin or ridgeline chart.
type DensityResult struct {
	*DistributionResult
	Grid      stat.Grid
	Densities []DensityBin // parallel to Bins
	MaxWidth  float64      // largest accumulated width of all bins
}

// WidthFactor scales accumulated widths to pixels so that the widest
// violin of the chart covers 95% of barWidth times the marker size
// setting.
func (r *DensityResult) WidthFactor(barWidth, markerSize float64) float64 {
	if r.MaxWidth == 0 {
		return 0
	}
	return 0.95 * barWidth / r.MaxWidth * markerSize
}

// Smooth computes the distribution statistics and the color stacked
// densities of a violin or ridgeline chart. The visible axis range is
// divided into a number of fractions depending on the smoothing
// setting of ct and the zoom state of the axis.
func Smooth(ct ChartType, src Source, opts Options) (*DensityResult, error) {
	if !ct.IsDensity() {
		return nil, fmt.Errorf("smooth %s: %w", ct, ErrKindMismatch)
	}
	dist, err := Distribute(ct, src, opts)
	if err != nil {
		return nil, err
	}

	res := &DensityResult{
		DistributionResult: dist,
		Grid: stat.Grid{
			Min:       opts.Axis.Min,
			Max:       opts.Axis.Max,
			Fractions: stat.FractionCount(ct.Smoothing, opts.Axis.VisibleFraction()),
		},
		Densities: make([]DensityBin, len(dist.Bins)),
	}
	kernel := stat.NewKernel(stat.KernelRadius)

	densities := make([]stat.Density, len(dist.Bins))
	for i, bin := range dist.Bins {
		values := make([]float64, len(bin.Members))
		slots := make([]int, len(bin.Members))
		for j, m := range bin.Members {
			values[j] = src.Record(m).Value
			slots[j] = dist.Slots.Order(dist.Placements[m].Slot)
		}
		densities[i] = stat.Smooth(res.Grid, kernel, values, slots, dist.Slots.Len())
		res.Densities[i] = DensityBin{Key: bin.Key, Density: densities[i]}
	}
	res.MaxWidth = stat.MaxWidth(densities)
	opts.logger().Debug("smoothed",
		zap.Stringer("chart", ct),
		zap.Int("bins", len(res.Bins)),
		zap.Int("fractions", res.Grid.Fractions),
		zap.Float64("maxWidth", res.MaxWidth))
	return res, nil
}
