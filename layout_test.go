package catplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/catplot/geom"
)

var area = geom.Rect{XMin: 0, YMin: 0, XMax: 200, YMax: 100}

func draw(t *testing.T, ct ChartType, opts Options, theme Theme, a geom.Rect, src Source) (*Result, *Geometry) {
	t.Helper()
	c := New(ct, opts, nil)
	c.Theme = theme
	res, g, err := c.Draw(src, a)
	require.NoError(t, err)
	return res, g
}

func TestLayoutBars(t *testing.T) {
	src := Records{rec(0, 0, 1), rec(0, 0, 1), rec(1, 0, 1), rec(1, 0, 1), rec(1, 0, 1), rec(1, 0, 1)}
	_, g := draw(t, ChartType{Kind: Bar, Mode: Count}, barOptions(2, 1), DefaultTheme, area, src)

	require.Len(t, g.Bars, 2)
	bar := g.Bars[0]
	assert.InDelta(t, 10, bar.Rect.XMin, 1e-9)
	assert.InDelta(t, 90, bar.Rect.XMax, 1e-9)
	assert.InDelta(t, 0, bar.Rect.YMin, 1e-9)
	assert.InDelta(t, 200/4.32, bar.Rect.YMax, 1e-9)
	assert.InDelta(t, 150, g.Bars[1].Rect.Center().X, 1e-9)
	assert.Equal(t, []ColorSlot{Base(0)}, bar.Slots)

	// Equal slices for every record.
	for _, i := range []int{0, 1} {
		p := g.Points[i]
		assert.InDelta(t, bar.Rect.Height()/2, p.Height, 1e-9)
		assert.InDelta(t, 80, p.Width, 1e-9)
	}
	assert.InDelta(t, bar.Rect.Height()/4, g.Points[0].Position.Y, 1e-9)
	assert.InDelta(t, 3*bar.Rect.Height()/4, g.Points[1].Position.Y, 1e-9)

	require.Len(t, g.Labels, 2)
	assert.Equal(t, []string{"2"}, g.Labels[0].Lines)
	assert.Equal(t, []string{"4"}, g.Labels[1].Lines)
}

func TestLayoutBarsWithoutColors(t *testing.T) {
	selected := rec(0, 0, 1)
	selected.Selected = true
	opts := Options{Categories: Categories{Counts: [2]int{1, 0}}}

	_, g := draw(t, ChartType{Kind: Bar, Mode: Count}, opts, DefaultTheme, area, Records{rec(0, 0, 1), rec(0, 0, 1)})
	require.Len(t, g.Bars, 1)
	assert.Equal(t, []ColorSlot{Base(0)}, g.Bars[0].Slots)

	_, g = draw(t, ChartType{Kind: Bar, Mode: Count}, opts, DefaultTheme, area, Records{rec(0, 0, 1), selected})
	require.Len(t, g.Bars, 1)
	assert.Equal(t, []ColorSlot{Base(0), Selected()}, g.Bars[0].Slots)
}

func TestLayoutProportionalSlices(t *testing.T) {
	src := Records{rec(0, 0, 1), rec(0, 1, 3)}
	_, g := draw(t, ChartType{Kind: Bar, Mode: Sum}, barOptions(1, 2), DefaultTheme, area, src)

	require.Len(t, g.Bars, 1)
	length := g.Bars[0].Rect.Height()
	assert.InDelta(t, 400/4.32, length, 1e-9)
	assert.InDelta(t, length/4, g.Points[0].Height, 1e-9)
	assert.InDelta(t, 3*length/4, g.Points[1].Height, 1e-9)

	require.Len(t, g.Bars[0].Slices, 2)
	assert.InDelta(t, g.Points[0].Height, g.Bars[0].Slices[0].Height(), 1e-9)
	assert.Equal(t, g.Bars[0].Rect.YMax, g.Bars[0].Edges[len(g.Bars[0].Edges)-1])
}

func TestLayoutCaseSeparation(t *testing.T) {
	opts := Options{Categories: Categories{Counts: [2]int{1, 0}, Cases: 2, CaseSpacing: 0.5}, Colors: 1}
	src := Records{
		rec(opts.Categories.Index(0, 0, 0), 0, 1),
		rec(opts.Categories.Index(0, 0, 1), 0, 1),
	}
	_, g := draw(t, ChartType{Kind: Bar, Mode: Count}, opts, DefaultTheme, area, src)

	require.Len(t, g.Bars, 2)
	for i, want := range []float64{50, 150} {
		r := g.Bars[i].Rect
		if got := r.Center().X; math.Abs(got-want) > 1e-9 {
			t.Errorf("case %d: Got center %g, want %g", i, got, want)
		}
		assert.InDelta(t, 80, r.Width(), 1e-9)
	}

	// Without spacing the cases share the bar width.
	opts.Categories.CaseSpacing = 0
	_, g = draw(t, ChartType{Kind: Bar, Mode: Count}, opts, DefaultTheme, area, src)
	require.Len(t, g.Bars, 2)
	assert.InDelta(t, 60, g.Bars[0].Rect.Center().X, 1e-9)
	assert.InDelta(t, 140, g.Bars[1].Rect.Center().X, 1e-9)
	assert.InDelta(t, 80, g.Bars[0].Rect.Width(), 1e-9)
}

func TestLayoutSplitTiles(t *testing.T) {
	opts := barOptions(1, 1)
	opts.Split = SplitView{Rows: 1, Cols: 2}
	theme := DefaultTheme
	theme.TileGap = 10

	second := rec(0, 0, 1)
	second.Split = 1
	lost := rec(0, 0, 1)
	lost.Split = 5
	src := Records{rec(0, 0, 1), second, lost}

	_, g := draw(t, ChartType{Kind: Bar, Mode: Count}, opts, theme, geom.Rect{XMax: 210, YMax: 100}, src)
	require.Len(t, g.Tiles, 2)
	assert.Equal(t, geom.Rect{XMin: 0, YMin: 0, XMax: 100, YMax: 100}, g.Tiles[0].Area)
	assert.Equal(t, geom.Rect{XMin: 110, YMin: 0, XMax: 210, YMax: 100}, g.Tiles[1].Area)

	require.Len(t, g.Bars, 2, "the bin of a missing tile is skipped")
	assert.InDelta(t, 50, g.Bars[0].Rect.Center().X, 1e-9)
	assert.InDelta(t, 160, g.Bars[1].Rect.Center().X, 1e-9)
	assert.True(t, g.Points[2].Position.Outside())
}

func TestLayoutNaNRecords(t *testing.T) {
	src := Records{rec(0, 0, 1), rec(0, 0, math.NaN()), rec(1, 0, math.NaN())}
	hidden := rec(0, 0, 2)
	hidden.Visible = false
	src = append(src, hidden)

	_, g := draw(t, ChartType{Kind: Bar, Mode: Mean}, barOptions(2, 1), DefaultTheme, area, src)
	require.Len(t, g.Bars, 1, "bins without values produce no bar")

	assert.Equal(t, NaN, g.Points[1].Status)
	assert.Equal(t, geom.Point{X: 50, Y: -8}, g.Points[1].Position)
	assert.Equal(t, geom.Point{X: 150, Y: -8}, g.Points[2].Position)
	assert.Equal(t, Hidden, g.Points[3].Status)
	assert.True(t, g.Points[3].Position.Outside())
}

func TestLayoutHorizontal(t *testing.T) {
	src := Records{rec(0, 0, 1), rec(1, 0, 1)}
	ct := ChartType{Kind: Bar, Mode: Count, Orientation: Horizontal}
	_, g := draw(t, ct, barOptions(2, 1), DefaultTheme, area, src)

	require.Len(t, g.Bars, 2)
	assert.Equal(t, Horizontal, g.Orientation)
	assert.InDelta(t, 75, g.Bars[0].Rect.Center().Y, 1e-9, "first category at the top")
	assert.InDelta(t, 25, g.Bars[1].Rect.Center().Y, 1e-9)
	assert.InDelta(t, 0, g.Bars[0].Rect.XMin, 1e-9)
	assert.InDelta(t, 200/1.08, g.Bars[0].Rect.XMax, 1e-9)
}

func TestLayoutPies(t *testing.T) {
	src := Records{rec(0, 0, 1), rec(1, 0, 1), rec(1, 1, 1), rec(1, 1, 1), rec(1, 0, 1)}
	_, g := draw(t, ChartType{Kind: Pie, Mode: Count}, barOptions(2, 2), DefaultTheme, area, src)

	require.Len(t, g.Pies, 2)
	assert.InDelta(t, 22.5, g.Pies[0].Radius, 1e-9)
	assert.InDelta(t, 45, g.Pies[1].Radius, 1e-9)
	assert.Equal(t, geom.Point{X: 150, Y: 50}, g.Pies[1].Center)

	wedges := g.Pies[1].Wedges
	require.Len(t, wedges, 2)
	assert.InDelta(t, 180, wedges[0].Sweep, 1e-9)
	assert.InDelta(t, 360, wedges[1].End(), 1e-9)
	assert.Equal(t, []ColorSlot{Base(0), Base(1)}, g.Pies[1].Slots)

	// Record slices in stacking order: 1, 4, 2, 3.
	assert.InDelta(t, 0, g.Points[1].Width, 1e-9)
	assert.InDelta(t, 90, g.Points[4].Width, 1e-9)
	assert.InDelta(t, 270, g.Points[3].Width, 1e-9)
	assert.InDelta(t, 90, g.Points[3].Height, 1e-9)
}

func TestLayoutBoxes(t *testing.T) {
	opts := barOptions(1, 1)
	opts.Axis = Axis{Min: 0, Max: 10, FullMin: 0, FullMax: 10}
	src := Records{rec(0, 0, 4), rec(0, 0, 1), rec(0, 0, 3), rec(0, 0, 2), rec(0, 0, 9.5), rec(0, 0, math.NaN())}

	_, g := draw(t, ChartType{Kind: Box}, opts, DefaultTheme, area, src)
	require.Len(t, g.Boxes, 1)
	b := g.Boxes[0].Box
	assert.InDelta(t, 100, b.Center, 1e-9)
	assert.InDelta(t, 80, b.HalfWidth, 1e-9)
	assert.InDelta(t, 20, b.Q1, 1e-9)
	assert.InDelta(t, 30, b.Median, 1e-9)
	assert.InDelta(t, 40, b.Q3, 1e-9)
	assert.InDelta(t, 10, b.Low, 1e-9)
	assert.InDelta(t, 40, b.High, 1e-9)
	assert.Equal(t, []geom.Point{{X: 100, Y: 95}}, g.Boxes[0].Outliers)
	assert.Equal(t, Outlier, g.Points[4].Status)
	assert.Equal(t, geom.Point{X: 100, Y: -8}, g.Points[5].Position)
	assert.Empty(t, g.Labels, "no statistics enabled")

	opts.Statistics = StatisticsOptions{Count: true, Median: true}
	_, g = draw(t, ChartType{Kind: Box}, opts, DefaultTheme, area, src)
	require.Len(t, g.Labels, 1)
	assert.Equal(t, []string{"n=5", "median=3"}, g.Labels[0].Lines)
	assert.Equal(t, geom.Point{X: 100, Y: 100}, g.Labels[0].Anchor)
}

func TestLayoutWhiskers(t *testing.T) {
	opts := barOptions(1, 1)
	opts.Axis = Axis{Min: 0, Max: 10}
	src := Records{rec(0, 0, 2), rec(0, 0, 4), rec(0, 0, 3)}

	_, g := draw(t, ChartType{Kind: Whisker}, opts, DefaultTheme, area, src)
	require.Len(t, g.Boxes, 1)
	b := g.Boxes[0]
	assert.True(t, b.Whisker)
	assert.InDelta(t, 30, b.Mean, 1e-9)
	assert.InDelta(t, 20, b.Box.Low, 1e-9)
	assert.InDelta(t, 40, b.Box.High, 1e-9)

	_, g = draw(t, ChartType{Kind: Whisker, Whisker: WhiskerConfidence}, opts, DefaultTheme, area, src)
	margin := 1.96 / math.Sqrt(3) * 10
	assert.InDelta(t, 30+margin, g.Boxes[0].Box.High, 1e-9)

	_, g = draw(t, ChartType{Kind: Whisker}, opts, DefaultTheme, area, Records{rec(0, 0, 5)})
	assert.Equal(t, g.Boxes[0].Box.Low, g.Boxes[0].Box.High, "undefined deviation draws no whisker")
}

func TestLayoutViolins(t *testing.T) {
	opts := barOptions(2, 2)
	opts.Axis = Axis{Min: 0, Max: 10, FullMin: 0, FullMax: 10}
	src := Records{rec(0, 0, 2), rec(0, 1, 3), rec(0, 0, 3.5), rec(1, 1, 8)}

	res, g := draw(t, ChartType{Kind: Violin, Smoothing: 0.5}, opts, DefaultTheme, area, src)
	require.Len(t, g.Violins, 2)
	v := g.Violins[0]
	assert.True(t, v.Vertical)
	assert.InDelta(t, 50, v.Center, 1e-9)
	require.Len(t, v.Bands, 2)
	assert.Equal(t, Base(1), v.Bands[0].Slot, "outer envelope first")
	assert.Equal(t, Base(0), v.Bands[1].Slot)
	require.NotEmpty(t, v.Bands[0].Polygons)

	// The widest violin covers 95% of the bar width.
	widest := 0.0
	for _, vg := range g.Violins {
		for _, poly := range vg.Bands[0].Polygons {
			for _, p := range poly {
				widest = math.Max(widest, 2*math.Abs(p.X-vg.Center))
			}
		}
	}
	assert.InDelta(t, 0.95*80, widest, 1e-9)
	assert.Equal(t, geom.Point{X: 50, Y: 20}, g.Points[0].Position)
	require.Len(t, g.Violins[1].Bands, 1)
	assert.NotNil(t, res.Density)

	_, g = draw(t, ChartType{Kind: Ridgeline, Smoothing: 0.5}, opts, DefaultTheme, area, src)
	require.Len(t, g.Violins, 2)
	ridge := g.Violins[0]
	assert.False(t, ridge.Vertical)
	assert.InDelta(t, 75-20, ridge.Center, 1e-9, "ridges grow from the lower edge of their cell")
	for _, poly := range ridge.Bands[0].Polygons {
		for _, p := range poly {
			assert.GreaterOrEqual(t, p.Y, ridge.Center-1e-9)
		}
	}
}

func TestLayoutMismatch(t *testing.T) {
	c := New(ChartType{Kind: Bar, Mode: Count}, barOptions(1, 1), nil)
	res, err := c.Calculate(Records{rec(0, 0, 1)})
	require.NoError(t, err)

	other := New(ChartType{Kind: Box}, barOptions(1, 1), nil)
	_, err = other.CalculateCoordinates(res, area)
	assert.ErrorIs(t, err, ErrKindMismatch)
	_, err = Layout(nil, Options{}, DefaultTheme, area)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestScatterPassThrough(t *testing.T) {
	hidden := rec(0, 0, 1)
	hidden.Visible = false
	res, g := draw(t, ChartType{Kind: Scatter}, barOptions(1, 1), DefaultTheme, area, Records{rec(0, 0, 1), hidden})
	assert.Nil(t, res.BarPie)
	assert.Nil(t, res.Distribution)
	assert.Equal(t, []PointStatus{Counted, Hidden}, []PointStatus{res.Placements[0].Status, res.Placements[1].Status})
	assert.Empty(t, g.Bars)
	assert.Len(t, g.Points, 2)
}

func TestLayoutScatter(t *testing.T) {
	hidden := rec(1, 0, 4)
	hidden.Visible = false
	opts := barOptions(2, 1)
	opts.Axis = Axis{Min: 0, Max: 10}
	src := Records{rec(0, 0, 5), rec(1, 0, 10), rec(1, 0, math.NaN()), hidden}
	_, g := draw(t, ChartType{Kind: Scatter}, opts, DefaultTheme, area, src)

	require.Len(t, g.Points, 4)
	for i, want := range []geom.Point{{X: 50, Y: 50}, {X: 150, Y: 100}, {X: 150, Y: -DefaultTheme.NaNMargin}} {
		got := g.Points[i].Position
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("%d: Got %v, want %v", i, got, want)
		}
	}
	assert.True(t, g.Points[3].Position.Outside())
}
