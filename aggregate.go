package catplot

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// BarPieBin is the aggregate of the records of one bar or pie bin.
type BarPieBin struct {
	Key         BinKey
	Count       int
	Weight      float64   // sum of record weights, equals Count unless size weighted
	ColorCounts []int     // records per color slot, in slot order
	Magnitudes  []float64 // stacking magnitude per color slot
	Value       float64   // aggregated value as displayed on the axis
	AbsSum      float64   // sum of weighted absolute linear values
	Members     []int     // record indices in stacking order
}

// Fractions is the share of each color slot in the bin. If no slot has
// a magnitude the shares follow the color counts.
func (b BarPieBin) Fractions() []float64 {
	f := make([]float64, len(b.Magnitudes))
	total := floats.Sum(b.Magnitudes)
	if total > 0 {
		floats.ScaleTo(f, 1/total, b.Magnitudes)
		return f
	}
	if b.Count == 0 {
		return f
	}
	for i, c := range b.ColorCounts {
		f[i] = float64(c) / float64(b.Count)
	}
	return f
}

// Edges returns the boundaries of the color slots of a bar growing from
// base to the bin value. The result has one more element than there are
// slots, starts at base and ends at Value.
func (b BarPieBin) Edges(base float64) []float64 {
	f := b.Fractions()
	edges := make([]float64, len(f)+1)
	edges[0] = base
	cum := 0.0
	for i, x := range f {
		cum += x
		edges[i+1] = base + cum*(b.Value-base)
	}
	edges[len(f)] = b.Value
	return edges
}

// Angles returns the boundaries of the color slots of a pie in degrees,
// from 0 to 360.
func (b BarPieBin) Angles() []float64 {
	f := b.Fractions()
	angles := make([]float64, len(f)+1)
	cum := 0.0
	for i, x := range f {
		cum += x
		angles[i+1] = 360 * cum
	}
	if floats.Sum(f) > 0 {
		angles[len(f)] = 360
	}
	return angles
}

// BarPieResult is the outcome of aggregating a bar or pie chart.
type BarPieResult struct {
	Type       ChartType
	Slots      ColorSlots
	Log        bool
	Bins       []BarPieBin
	Total      float64 // weight of all visible records
	Range      AxisRange
	Placements []Placement

	index map[BinKey]int
}

// Bin returns the bin with key k.
func (r *BarPieResult) Bin(k BinKey) (*BarPieBin, bool) {
	i, ok := r.index[k]
	if !ok {
		return nil, false
	}
	return &r.Bins[i], true
}

// magnitude of a bin in the linear domain, used for pie sizes.
func (r *BarPieResult) magnitude(b BarPieBin) float64 {
	if math.IsNaN(b.Value) {
		return 0
	}
	if r.Log && r.Type.Mode.NeedsValue() {
		return delog(b.Value)
	}
	return math.Abs(b.Value)
}

// PieRadius is the radius of the pie of bin k. The area of a pie, not
// its radius, is proportional to its magnitude; the largest pie gets
// maxRadius.
func (r *BarPieResult) PieRadius(k BinKey, maxRadius float64) float64 {
	b, ok := r.Bin(k)
	if !ok {
		return 0
	}
	largest := 0.0
	for _, o := range r.Bins {
		largest = math.Max(largest, r.magnitude(o))
	}
	if largest == 0 {
		return 0
	}
	return maxRadius * math.Sqrt(r.magnitude(*b)/largest)
}

// Aggregate accumulates the visible records of src per bin according to
// the aggregation mode of ct and derives the value axis range.
func Aggregate(ct ChartType, src Source, opts Options) (*BarPieResult, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if !ct.IsBarOrPie() {
		return nil, fmt.Errorf("aggregate %s: %w", ct, ErrKindMismatch)
	}

	res := aggregate(ct, src, opts)
	if opts.Axis.Static {
		all := aggregate(ct, allVisible{src}, opts)
		res.Range = res.Range.Union(all.Range, res.Log && ct.Mode.NeedsValue())
	}
	opts.logger().Debug("aggregated",
		zap.Stringer("chart", ct),
		zap.Int("bins", len(res.Bins)),
		zap.Float64("total", res.Total),
		zap.Float64("axisMin", res.Range.Min),
		zap.Float64("axisMax", res.Range.Max))
	return res, nil
}

func aggregate(ct ChartType, src Source, opts Options) *BarPieResult {
	slots := opts.Slots()
	log := opts.Axis.Log && ct.Mode.NeedsValue()
	b := group(src, opts, ct.Mode.NeedsValue())
	res := &BarPieResult{
		Type:  ct,
		Slots: slots,
		Log:   opts.Axis.Log,
		Bins:  make([]BarPieBin, 0, len(b.keys)),
		index: make(map[BinKey]int, len(b.keys)),
	}

	for _, key := range b.keys {
		members := b.stack(b.members[key], slots)
		bin := BarPieBin{
			Key:         key,
			Count:       len(members),
			ColorCounts: make([]int, slots.Len()),
			Magnitudes:  make([]float64, slots.Len()),
			Members:     members,
		}
		sum, lo, hi := 0.0, math.Inf(+1), math.Inf(-1)
		for _, i := range members {
			r := src.Record(i)
			w := opts.weight(r)
			s := slots.Order(b.placements[i].Slot)
			bin.Weight += w
			bin.ColorCounts[s]++
			if !ct.Mode.NeedsValue() {
				bin.Magnitudes[s] += w
				continue
			}
			lin := linear(r.Value, log)
			bin.AbsSum += w * math.Abs(lin)
			switch ct.Mode {
			case Sum:
				sum += w * lin
				bin.Magnitudes[s] += w * math.Abs(lin)
			case Mean:
				sum += w * r.Value
				bin.Magnitudes[s] += w * math.Abs(lin)
			case Min, Max:
				lo = math.Min(lo, r.Value)
				hi = math.Max(hi, r.Value)
				bin.Magnitudes[s] += w
			}
		}

		switch ct.Mode {
		case Count, Percent:
			bin.Value = bin.Weight
		case Sum:
			bin.Value = sum
			if log {
				bin.Value = relog(sum)
			}
		case Mean:
			bin.Value = math.NaN()
			if bin.Weight > 0 {
				bin.Value = sum / bin.Weight
			}
		case Min:
			bin.Value = lo
		case Max:
			bin.Value = hi
		}
		res.Total += bin.Weight
		res.index[key] = len(res.Bins)
		res.Bins = append(res.Bins, bin)
	}

	if ct.Mode == Percent {
		for i := range res.Bins {
			if res.Total > 0 {
				res.Bins[i].Value = 100 * res.Bins[i].Weight / res.Total
			} else {
				res.Bins[i].Value = 0
			}
		}
	}

	d := newDomain()
	for _, bin := range res.Bins {
		d.train(bin.Value)
	}
	if ct.Mode.NeedsValue() {
		res.Range = valueRange(d, log)
	} else {
		res.Range = countRange(d)
	}
	res.Placements = b.placements
	return res
}

// allVisible presents every record of a source as visible.
type allVisible struct {
	Source
}

func (a allVisible) Record(i int) Record {
	r := a.Source.Record(i)
	r.Visible = true
	return r
}
