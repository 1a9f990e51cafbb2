package catplot

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/vdobler/catplot/stat"
)

// DistributionBin holds the statistics of the values of one bin of a
// box, whisker, violin or ridgeline chart.
type DistributionBin struct {
	Key     BinKey
	Values  []float64 // sorted, without NaNs
	Box     stat.BoxPlotData
	Summary stat.Summary

	// ColorCounts are the records per color slot not being outliers.
	// Outliers + sum(ColorCounts) == len(Values).
	ColorCounts []int
	Outliers    int

	PValue     float64 // NaN if there is no valid reference
	FoldChange float64 // log2 fold change on logarithmic axes

	Members        []int // counted records in stacking order
	OutlierMembers []int
}

// DistributionResult is the outcome of the statistics stage.
type DistributionResult struct {
	Type       ChartType
	Slots      ColorSlots
	Log        bool
	Bins       []DistributionBin
	Placements []Placement

	index map[BinKey]int
}

// Bin returns the bin with key k.
func (r *DistributionResult) Bin(k BinKey) (*DistributionBin, bool) {
	i, ok := r.index[k]
	if !ok {
		return nil, false
	}
	return &r.Bins[i], true
}

// Distribute computes order statistics, moments and the comparison with
// the reference bin for every non-empty bin. Records with a NaN value
// are excluded and marked as such.
func Distribute(ct ChartType, src Source, opts Options) (*DistributionResult, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if !ct.IsDistribution() {
		return nil, fmt.Errorf("distribute %s: %w", ct, ErrKindMismatch)
	}

	slots := opts.Slots()
	b := group(src, opts, true)
	res := &DistributionResult{
		Type:  ct,
		Slots: slots,
		Log:   opts.Axis.Log,
		Bins:  make([]DistributionBin, 0, len(b.keys)),
		index: make(map[BinKey]int, len(b.keys)),
	}

	for _, key := range b.keys {
		members := b.members[key]
		values := make([]float64, len(members))
		for j, i := range members {
			values[j] = src.Record(i).Value
		}
		bin := DistributionBin{
			Key:         key,
			Summary:     stat.Summarize(values),
			Box:         stat.BoxPlot(values, stat.Coef),
			Values:      values,
			ColorCounts: make([]int, slots.Len()),
			PValue:      math.NaN(),
			FoldChange:  math.NaN(),
		}

		counted := make([]int, 0, len(members))
		for _, i := range members {
			if ct.SupportsOutliers() && bin.Box.IsOutlier(src.Record(i).Value) {
				b.placements[i].Status = Outlier
				bin.OutlierMembers = append(bin.OutlierMembers, i)
				continue
			}
			counted = append(counted, i)
			bin.ColorCounts[slots.Order(b.placements[i].Slot)]++
		}
		bin.Outliers = len(bin.OutlierMembers)
		bin.Members = b.stack(counted, slots)

		res.index[key] = len(res.Bins)
		res.Bins = append(res.Bins, bin)
	}

	if opts.Reference != nil {
		for i := range res.Bins {
			compare(res, &res.Bins[i], opts)
		}
	}
	res.Placements = b.placements

	outliers := 0
	for _, bin := range res.Bins {
		outliers += bin.Outliers
	}
	opts.logger().Debug("distributed",
		zap.Stringer("chart", ct),
		zap.Int("bins", len(res.Bins)),
		zap.Int("outliers", outliers),
		zap.Bool("reference", opts.Reference != nil))
	return res, nil
}

// compare sets p-value and fold change of bin relative to its
// reference bin. A bin being its own reference is not compared.
func compare(res *DistributionResult, bin *DistributionBin, opts Options) {
	key, ok := opts.Reference.Reference(bin.Key)
	if !ok || key == bin.Key {
		return
	}
	ref, ok := res.Bin(key)
	if !ok || len(ref.Values) == 0 {
		return
	}
	bin.PValue = stat.PValue(bin.Values, ref.Values)
	bin.FoldChange = stat.FoldChange(bin.Summary.Mean, ref.Summary.Mean, opts.Axis.Log)
}
