package catplot

import (
	"math"

	"go.uber.org/zap"
)

// Record is the view of one data row the chart works on. The host
// resolves the category, color and split assignment; the engine never
// discovers bins itself.
type Record struct {
	Visible  bool
	Value    float64 // value on the numeric axis, NaN if missing
	Weight   float64 // size weight, used if Options.SizeWeighted
	Split    int     // split view tile
	Category int     // encoded by Categories.Index
	Color    int     // index into the base colors
	Selected bool
	Filtered bool // marked by a filter
	InFocus  bool // only relevant if Options.Highlight
}

// Source provides the records of one redraw.
type Source interface {
	Len() int
	Record(i int) Record
}

// Records is a Source backed by a slice.
type Records []Record

func (r Records) Len() int            { return len(r) }
func (r Records) Record(i int) Record { return r[i] }

// Axis describes the numeric axis of the chart.
type Axis struct {
	Min, Max         float64 // visible range
	FullMin, FullMax float64 // range when fully zoomed out
	Log              bool    // values are decimal logarithms
	Integer          bool    // values are integral
	Static           bool    // range must not shrink when rows get hidden
}

// VisibleFraction is the share of the full range that is visible.
func (a Axis) VisibleFraction() float64 {
	full := a.FullMax - a.FullMin
	if !(full > 0) {
		return 1
	}
	f := (a.Max - a.Min) / full
	if !(f > 0) || f > 1 {
		return 1
	}
	return f
}

// Categories describes the categorical axis. A category index encodes
// up to two category axes and the case separation sub-category as
// mixed radix number:
//
//	index = c0 + Counts[0]*(c1 + Counts[1]*case)
type Categories struct {
	Counts      [2]int  // levels per category axis, 0 for an unused axis
	Cases       int     // case separation levels, 0 if not separated
	CaseSpacing float64 // distance of case separated glyphs in cell widths
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Cells is the number of positions on the category axis.
func (c Categories) Cells() int { return atLeastOne(c.Counts[0]) * atLeastOne(c.Counts[1]) }

// Len is the number of distinct category indices.
func (c Categories) Len() int { return c.Cells() * atLeastOne(c.Cases) }

// Index encodes the category coordinates.
func (c Categories) Index(c0, c1, cs int) int {
	return c0 + atLeastOne(c.Counts[0])*(c1+atLeastOne(c.Counts[1])*cs)
}

// Decode splits a category index into its coordinates.
func (c Categories) Decode(i int) (c0, c1, cs int) {
	n0, n1 := atLeastOne(c.Counts[0]), atLeastOne(c.Counts[1])
	c0 = i % n0
	i /= n0
	c1 = i % n1
	cs = i / n1
	return c0, c1, cs
}

// Cell is the position of category index i on the category axis; the
// second axis is nested in the first one.
func (c Categories) Cell(i int) int {
	c0, c1, _ := c.Decode(i)
	return c0*atLeastOne(c.Counts[1]) + c1
}

// SplitView is the grid of tiles the chart is split into.
type SplitView struct {
	Rows, Cols int
}

// Tiles is the number of tiles.
func (s SplitView) Tiles() int { return atLeastOne(s.Rows) * atLeastOne(s.Cols) }

// StatisticsOptions selects the statistics printed per bin.
type StatisticsOptions struct {
	Count              bool
	Mean               bool
	Median             bool
	StdDev             bool
	ConfidenceInterval bool
	PValue             bool
	FoldChange         bool
}

// Any reports whether at least one statistic is enabled.
func (s StatisticsOptions) Any() bool {
	return s.Count || s.Mean || s.Median || s.StdDev || s.ConfidenceInterval || s.PValue || s.FoldChange
}

// ReferenceResolver returns the bin a bin is compared against in
// t-tests and fold changes.
type ReferenceResolver interface {
	Reference(key BinKey) (BinKey, bool)
}

// CategoryReference compares every bin with the bin that has the
// category Level on the category dimension Dim (0 and 1 are the
// category axes, 2 is the case separation) and agrees on all other
// dimensions and the split tile.
type CategoryReference struct {
	Categories Categories
	Dim        int
	Level      int
}

func (r CategoryReference) Reference(key BinKey) (BinKey, bool) {
	c := [3]int{}
	c[0], c[1], c[2] = r.Categories.Decode(key.Category)
	if r.Dim < 0 || r.Dim > 2 || r.Level < 0 {
		return BinKey{}, false
	}
	limit := [3]int{atLeastOne(r.Categories.Counts[0]), atLeastOne(r.Categories.Counts[1]), atLeastOne(r.Categories.Cases)}
	if r.Level >= limit[r.Dim] {
		return BinKey{}, false
	}
	c[r.Dim] = r.Level
	return BinKey{Split: key.Split, Category: r.Categories.Index(c[0], c[1], c[2])}, true
}

// Options is the host provided configuration of one pipeline run.
type Options struct {
	Axis         Axis
	Categories   Categories
	Split        SplitView
	Colors       int  // number of base colors
	Highlight    bool // dim records not in focus
	SizeWeighted bool
	Statistics   StatisticsOptions
	Reference    ReferenceResolver // nil disables p-values and fold changes
	Logger       *zap.Logger       // debug output of the stages, nil for none
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// weight is the contribution of r to counts and sums.
func (o Options) weight(r Record) float64 {
	if !o.SizeWeighted {
		return 1
	}
	if math.IsNaN(r.Weight) || math.IsInf(r.Weight, 0) || r.Weight < 0 {
		return 0
	}
	return r.Weight
}

// Slots is the color slot order of o.
func (o Options) Slots() ColorSlots {
	return ColorSlots{Colors: o.Colors, Highlight: o.Highlight}
}
