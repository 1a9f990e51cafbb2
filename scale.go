package catplot

import "math"

const (
	headroom  = 0.08 // added beyond the largest bar
	centerPad = 0.05 // padding of axes centered at zero
	logStub   = 0.10 // base of logarithmic bars below the smallest one
)

// AxisRange is the range of the value axis of a bar chart and the
// value bars grow from.
type AxisRange struct {
	Min, Max float64
	Base     float64
	Centered bool // values straddle zero
}

// domain collects the extent of values.
type domain struct {
	min, max float64
}

func newDomain() domain { return domain{min: math.Inf(+1), max: math.Inf(-1)} }

// train updates the domain with v, NaNs are ignored.
func (d *domain) train(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < d.min {
		d.min = v
	}
	if v > d.max {
		d.max = v
	}
}

func (d domain) empty() bool { return d.min > d.max }

// countRange is the axis of count and percent bars: anchored at zero
// with some headroom above the largest bar.
func countRange(d domain) AxisRange {
	r := AxisRange{Max: 1}
	if !d.empty() && d.max > 0 {
		r.Max = d.max * (1 + headroom)
	}
	return r
}

// valueRange is the axis of bars showing aggregated values. On linear
// axes bars of equal sign grow from zero, bars of mixed sign are
// centered at zero. On logarithmic axes bars grow from a base below the
// smallest value, so no bar has zero length.
func valueRange(d domain, log bool) AxisRange {
	if d.empty() {
		if log {
			return AxisRange{Min: 0, Max: 1}
		}
		return AxisRange{Max: 1}
	}
	if log {
		span := d.max - d.min
		if span == 0 {
			span = 1
		}
		r := AxisRange{Min: d.min - logStub*span, Max: d.max + headroom*span}
		r.Base = r.Min
		return r
	}
	switch {
	case d.min >= 0:
		r := AxisRange{Max: d.max * (1 + headroom)}
		if r.Max == 0 {
			r.Max = 1
		}
		return r
	case d.max <= 0:
		return AxisRange{Min: d.min * (1 + headroom)}
	}
	pad := centerPad * (d.max - d.min)
	return AxisRange{Min: d.min - pad, Max: d.max + pad, Centered: true}
}

// Union extends r to cover o as well.
func (r AxisRange) Union(o AxisRange, log bool) AxisRange {
	u := AxisRange{Min: math.Min(r.Min, o.Min), Max: math.Max(r.Max, o.Max)}
	if log {
		u.Base = u.Min
		return u
	}
	u.Centered = u.Min < 0 && u.Max > 0
	return u
}

// Contains reports whether v lies within r.
func (r AxisRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }
