package catplot

import (
	"fmt"
	"math"

	"github.com/vdobler/catplot/geom"
)

// PointGeometry is the pixel space placement of one record. For bars
// Width and Height are the extent of the record's slice along x and y,
// for pies they are the start angle and sweep of its slice in degrees.
// Hidden records and records of skipped bins have an Outside position.
type PointGeometry struct {
	Position      geom.Point
	Width, Height float64
	Status        PointStatus
	Slot          ColorSlot
}

// BarGeometry is a bar and its color segments.
type BarGeometry struct {
	Key    BinKey
	Rect   geom.Rect
	Slots  []ColorSlot
	Slices []geom.Rect // parallel to Slots
	Edges  []float64   // pixel positions of the segment boundaries along the value axis
}

// PieGeometry is a pie and its color wedges.
type PieGeometry struct {
	Key    BinKey
	Center geom.Point
	Radius float64
	Slots  []ColorSlot
	Wedges []geom.Wedge // parallel to Slots, empty wedges omitted
}

// BoxGeometry is a box and whisker glyph. Whisker charts have a
// degenerated box at the mean.
type BoxGeometry struct {
	Key      BinKey
	Box      geom.Box
	Mean     float64 // pixel position of the mean along the value axis
	Whisker  bool
	Outliers []geom.Point
}

// BandGeometry is the area of one color slot of a violin or ridge.
type BandGeometry struct {
	Slot     ColorSlot
	Polygons []geom.Polygon
}

// ViolinGeometry is a violin or ridge. Bands are ordered from the
// outermost envelope to the innermost color, the order they are painted.
type ViolinGeometry struct {
	Key      BinKey
	Center   float64 // violin axis or ridge baseline
	Vertical bool
	Bands    []BandGeometry
}

// Label is the text attached to a bin.
type Label struct {
	Key    BinKey
	Anchor geom.Point
	Lines  []string
}

// Tile is one panel of a split view.
type Tile struct {
	Area       geom.Rect
	Values     geom.Transform // value axis
	Categories geom.Band      // category axis
}

// Geometry is the outcome of the layout stage.
type Geometry struct {
	Type        ChartType
	Orientation Orientation
	Tiles       []Tile
	Points      []PointGeometry // one per record
	Bars        []BarGeometry
	Pies        []PieGeometry
	Boxes       []BoxGeometry
	Violins     []ViolinGeometry
	Labels      []Label
}

// layout carries the state shared by the layout functions.
type layout struct {
	res   *Result
	opts  Options
	theme Theme
	g     *Geometry
}

// Layout maps the statistics of res into pixel space. The chart fills
// area, which is divided into the tiles of the split view. Bins that
// have no records, or belong to a tile that does not exist, produce no
// geometry.
func Layout(res *Result, opts Options, theme Theme, area geom.Rect) (*Geometry, error) {
	if res == nil || res.source == nil {
		return nil, ErrNoSource
	}
	ct := res.Type
	l := &layout{
		res:   res,
		opts:  opts,
		theme: theme,
		g: &Geometry{
			Type:        ct,
			Orientation: ct.EffectiveOrientation(),
			Points:      make([]PointGeometry, len(res.Placements)),
		},
	}
	for i, p := range res.Placements {
		l.g.Points[i] = PointGeometry{Position: outside, Status: p.Status, Slot: p.Slot}
	}

	lo, hi := opts.Axis.Min, opts.Axis.Max
	if res.BarPie != nil {
		lo, hi = res.BarPie.Range.Min, res.BarPie.Range.Max
	}
	l.tiles(area, lo, hi)

	switch ct.Kind {
	case Bar:
		if res.BarPie == nil {
			return nil, fmt.Errorf("layout %s: %w", ct, ErrKindMismatch)
		}
		l.bars()
	case Pie:
		if res.BarPie == nil {
			return nil, fmt.Errorf("layout %s: %w", ct, ErrKindMismatch)
		}
		l.pies()
	case Box, Whisker:
		if res.Distribution == nil {
			return nil, fmt.Errorf("layout %s: %w", ct, ErrKindMismatch)
		}
		l.boxes()
	case Violin, Ridgeline:
		if res.Density == nil {
			return nil, fmt.Errorf("layout %s: %w", ct, ErrKindMismatch)
		}
		l.violins()
	case Scatter:
		l.scatter()
	}
	return l.g, nil
}

var outside = geom.Point{X: math.NaN(), Y: math.NaN()}

func (l *layout) vertical() bool { return l.g.Orientation == Vertical }

func (l *layout) tiles(area geom.Rect, lo, hi float64) {
	rows, cols := atLeastOne(l.opts.Split.Rows), atLeastOne(l.opts.Split.Cols)
	cells := l.opts.Categories.Cells()
	for _, r := range geom.Tiles(area, rows, cols, l.theme.TileGap) {
		t := Tile{Area: r}
		if l.vertical() || l.res.Type.Kind == Pie {
			t.Categories = geom.Band{From: r.XMin, To: r.XMax, N: cells}
			t.Values = geom.NewTransform(lo, hi, r.YMin, r.YMax)
		} else {
			t.Categories = geom.Band{From: r.YMax, To: r.YMin, N: cells}
			t.Values = geom.NewTransform(lo, hi, r.XMin, r.XMax)
		}
		l.g.Tiles = append(l.g.Tiles, t)
	}
}

// tile returns the tile of bin k.
func (l *layout) tile(k BinKey) (Tile, bool) {
	if k.Split < 0 || k.Split >= len(l.g.Tiles) {
		return Tile{}, false
	}
	return l.g.Tiles[k.Split], true
}

// place returns the center of bin k across the value axis and the half
// width of its glyph, taking case separation into account. Without a
// case spacing the cases share the glyph width of their cell.
func (l *layout) place(t Tile, k BinKey) (center, halfWidth float64) {
	cats := l.opts.Categories
	_, _, cs := cats.Decode(k.Category)
	step := t.Categories.Step()
	cell := math.Abs(step)
	center = t.Categories.Center(cats.Cell(k.Category))
	switch {
	case cats.Cases <= 1:
	case cats.CaseSpacing > 0:
		center += math.Copysign(geom.CaseOffset(cs, cats.Cases, cats.CaseSpacing, cell), step)
		cell *= math.Min(cats.CaseSpacing, 1)
	default:
		if step < 0 {
			cs = cats.Cases - 1 - cs
		}
		return geom.Dodge(center, l.theme.BarWidth*cell/2, cs, cats.Cases)
	}
	return center, l.theme.BarWidth * cell / 2
}

// point builds a pixel position from coordinates along and across the
// value axis.
func (l *layout) point(along, across float64) geom.Point {
	if l.vertical() {
		return geom.Point{X: across, Y: along}
	}
	return geom.Point{X: along, Y: across}
}

// rect builds a rectangle from ranges along and across the value axis.
func (l *layout) rect(a0, a1, c0, c1 float64) geom.Rect {
	if l.vertical() {
		return geom.Rect{XMin: c0, YMin: a0, XMax: c1, YMax: a1}.Canonic()
	}
	return geom.Rect{XMin: a0, YMin: c0, XMax: a1, YMax: c1}.Canonic()
}

// nanPositions puts records without value just outside the value axis
// of their tile.
func (l *layout) nanPositions() {
	for i, p := range l.res.Placements {
		if p.Status != NaN {
			continue
		}
		t, ok := l.tile(p.Bin)
		if !ok {
			continue
		}
		c, _ := l.place(t, p.Bin)
		l.g.Points[i].Position = l.point(l.nanAlong(t), c)
	}
}

// nanAlong is the position of records without value along the value
// axis of t.
func (l *layout) nanAlong(t Tile) float64 {
	return t.Values.From - math.Copysign(l.theme.NaNMargin, t.Values.To-t.Values.From)
}

// scatter places every visible record at its value in the center of its
// category.
func (l *layout) scatter() {
	for i, p := range l.res.Placements {
		if p.Status == Hidden {
			continue
		}
		t, ok := l.tile(p.Bin)
		if !ok {
			continue
		}
		c, _ := l.place(t, p.Bin)
		along := l.nanAlong(t)
		if v := l.res.source.Record(i).Value; !math.IsNaN(v) {
			along = t.Values.Map(v)
		}
		l.g.Points[i].Position = l.point(along, c)
	}
}

func (l *layout) bars() {
	res := l.res.BarPie
	base := res.Range.Base
	proportional := l.res.Type.Proportional()
	for _, bin := range res.Bins {
		t, ok := l.tile(bin.Key)
		if !ok || bin.Count == 0 || math.IsNaN(bin.Value) {
			continue
		}
		c, hw := l.place(t, bin.Key)
		p0, p1 := t.Values.Map(base), t.Values.Map(bin.Value)

		bar := BarGeometry{Key: bin.Key, Rect: l.rect(p0, p1, c-hw, c+hw)}
		for s, e := range bin.Edges(base) {
			bar.Edges = append(bar.Edges, t.Values.Map(e))
			if s == 0 {
				continue
			}
			if bin.ColorCounts[s-1] == 0 {
				continue
			}
			bar.Slots = append(bar.Slots, res.Slots.Slot(s-1))
			bar.Slices = append(bar.Slices, l.rect(bar.Edges[s-1], bar.Edges[s], c-hw, c+hw))
		}
		l.g.Bars = append(l.g.Bars, bar)

		// Slices of the individual records in stacking order.
		length := p1 - p0
		pos := p0
		for _, i := range bin.Members {
			var h float64
			r := l.res.source.Record(i)
			switch {
			case proportional && bin.AbsSum > 0:
				h = l.opts.weight(r) * math.Abs(linear(r.Value, res.Log)) * length / bin.AbsSum
			case bin.Weight > 0:
				h = l.opts.weight(r) * length / bin.Weight
			}
			slice := l.rect(pos, pos+h, c-hw, c+hw)
			l.g.Points[i].Position = slice.Center()
			l.g.Points[i].Width, l.g.Points[i].Height = slice.Width(), slice.Height()
			pos += h
		}

		l.g.Labels = append(l.g.Labels, Label{
			Key:    bin.Key,
			Anchor: l.point(p1, c),
			Lines:  BarLabel(bin, l.res.Type, l.opts.Axis),
		})
	}
	l.nanPositions()
}

func (l *layout) pies() {
	res := l.res.BarPie
	proportional := l.res.Type.Mode == Sum || l.res.Type.Mode == Mean
	for _, bin := range res.Bins {
		t, ok := l.tile(bin.Key)
		if !ok || bin.Count == 0 {
			continue
		}
		c, _ := l.place(t, bin.Key)
		cell := math.Min(math.Abs(t.Categories.Step()), t.Area.Height())
		center := geom.Point{X: c, Y: t.Area.Center().Y}
		pie := PieGeometry{
			Key:    bin.Key,
			Center: center,
			Radius: res.PieRadius(bin.Key, l.theme.MaxPieRadius*cell/2),
		}
		if pie.Radius == 0 {
			continue
		}
		angles := bin.Angles()
		for s := 0; s+1 < len(angles); s++ {
			if bin.ColorCounts[s] == 0 {
				continue
			}
			pie.Slots = append(pie.Slots, res.Slots.Slot(s))
			pie.Wedges = append(pie.Wedges, geom.Wedge{
				Center: center,
				Radius: pie.Radius,
				Start:  angles[s],
				Sweep:  angles[s+1] - angles[s],
			})
		}
		l.g.Pies = append(l.g.Pies, pie)

		start := 0.0
		for _, i := range bin.Members {
			r := l.res.source.Record(i)
			var sweep float64
			switch {
			case proportional && bin.AbsSum > 0:
				sweep = 360 * l.opts.weight(r) * math.Abs(linear(r.Value, res.Log)) / bin.AbsSum
			case bin.Weight > 0:
				sweep = 360 * l.opts.weight(r) / bin.Weight
			}
			mid := (start + sweep/2) * math.Pi / 180
			l.g.Points[i].Position = geom.Point{
				X: center.X + pie.Radius/2*math.Cos(mid),
				Y: center.Y + pie.Radius/2*math.Sin(mid),
			}
			l.g.Points[i].Width, l.g.Points[i].Height = start, sweep
			start += sweep
		}

		l.g.Labels = append(l.g.Labels, Label{
			Key:    bin.Key,
			Anchor: geom.Point{X: center.X, Y: center.Y + pie.Radius},
			Lines:  BarLabel(bin, l.res.Type, l.opts.Axis),
		})
	}
	l.nanPositions()
}

func (l *layout) boxes() {
	res := l.res.Distribution
	whisker := l.res.Type.Kind == Whisker
	for _, bin := range res.Bins {
		t, ok := l.tile(bin.Key)
		if !ok || len(bin.Values) == 0 {
			continue
		}
		c, hw := l.place(t, bin.Key)
		vt := t.Values
		box := BoxGeometry{
			Key:     bin.Key,
			Mean:    vt.Map(bin.Summary.Mean),
			Whisker: whisker,
		}
		if whisker {
			m := bin.Summary.Mean
			e := bin.Summary.StdDev
			if l.res.Type.Whisker == WhiskerConfidence {
				e = bin.Summary.Margin
			}
			if math.IsInf(e, 0) || math.IsNaN(e) {
				e = 0
			}
			box.Box = geom.Box{
				Center: c, HalfWidth: hw,
				Q1: vt.Map(m), Median: vt.Map(m), Q3: vt.Map(m),
				Low: vt.Map(m - e), High: vt.Map(m + e),
				Vertical: l.vertical(),
			}
		} else {
			box.Box = geom.Box{
				Center: c, HalfWidth: hw,
				Q1: vt.Map(bin.Box.Q1), Median: vt.Map(bin.Box.Median), Q3: vt.Map(bin.Box.Q3),
				Low: vt.Map(bin.Box.Low), High: vt.Map(bin.Box.High),
				Vertical: l.vertical(),
			}
		}
		for _, i := range bin.OutlierMembers {
			p := l.point(vt.Map(l.res.source.Record(i).Value), c)
			box.Outliers = append(box.Outliers, p)
			l.g.Points[i].Position = p
		}
		for _, i := range bin.Members {
			l.g.Points[i].Position = l.point(vt.Map(l.res.source.Record(i).Value), c)
		}
		l.g.Boxes = append(l.g.Boxes, box)
		l.statisticLabel(t, bin, c)
	}
	l.nanPositions()
}

func (l *layout) violins() {
	res := l.res.Density
	ridge := l.res.Type.Kind == Ridgeline
	pos := res.Grid.Values()
	for i, bin := range res.Bins {
		t, ok := l.tile(bin.Key)
		if !ok || len(bin.Values) == 0 {
			continue
		}
		d := res.Densities[i].Density
		if d.Empty() {
			continue
		}
		c, hw := l.place(t, bin.Key)
		vt := t.Values
		along := make([]float64, len(pos))
		for j, v := range pos {
			along[j] = vt.Map(v)
		}

		v := ViolinGeometry{Key: bin.Key, Center: c, Vertical: l.vertical()}
		if ridge {
			// The ridge grows from the lower edge of its cell upwards.
			v.Center = c - hw
		}
		wf := res.WidthFactor(2*hw, l.theme.MarkerSize)

		for s := len(d.Stack) - 1; s >= 0; s-- {
			if bin.ColorCounts[s] == 0 {
				continue
			}
			lower := make([]float64, len(along))
			upper := make([]float64, len(along))
			for j, w := range d.Stack[s] {
				if ridge {
					lower[j], upper[j] = v.Center, v.Center+w*wf
				} else {
					lower[j], upper[j] = c-w*wf/2, c+w*wf/2
				}
			}
			v.Bands = append(v.Bands, BandGeometry{
				Slot:     res.Slots.Slot(s),
				Polygons: geom.Outline(along, lower, upper, l.vertical()),
			})
		}
		l.g.Violins = append(l.g.Violins, v)

		for _, m := range bin.Members {
			l.g.Points[m].Position = l.point(vt.Map(l.res.source.Record(m).Value), c)
		}
		l.statisticLabel(t, bin, c)
	}
	l.nanPositions()
}

// statisticLabel attaches the enabled statistics to the far end of the
// value axis above bin.
func (l *layout) statisticLabel(t Tile, bin DistributionBin, c float64) {
	if !l.opts.Statistics.Any() {
		return
	}
	lines := StatisticLabels(bin, l.opts.Statistics, l.opts.Axis)
	if len(lines) == 0 {
		return
	}
	l.g.Labels = append(l.g.Labels, Label{Key: bin.Key, Anchor: l.point(t.Values.To, c), Lines: lines})
}
