// Package render paints the geometry of a chart onto a gonum/plot
// vector graphics canvas.
//
// Geometry is measured in points with the origin in the lower left
// corner, the unit and orientation of vg, so no conversion other than
// the offset of the canvas is needed.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/catplot"
	"github.com/vdobler/catplot/geom"
)

// Margin is the space around the chart area left for axis labels.
var Margin = vg.Points(36)

// FontSize of labels and tick marks.
var FontSize = vg.Points(8)

// Area is the chart area inside a canvas of the given size.
func Area(w, h vg.Length) geom.Rect {
	m := float64(Margin)
	return geom.Rect{XMin: m, YMin: m, XMax: float64(w) - m/2, YMax: float64(h) - m/2}
}

// painter draws the parts of one geometry.
type painter struct {
	c     draw.Canvas
	theme catplot.Theme
	text  draw.TextStyle
}

func (p *painter) pt(q geom.Point) vg.Point {
	return vg.Point{X: p.c.Min.X + vg.Length(q.X), Y: p.c.Min.Y + vg.Length(q.Y)}
}

func (p *painter) line(l geom.Line) []vg.Point {
	return []vg.Point{p.pt(geom.Point{X: l.X0, Y: l.Y0}), p.pt(geom.Point{X: l.X1, Y: l.Y1})}
}

func (p *painter) rect(r geom.Rect) []vg.Point {
	return []vg.Point{
		p.pt(geom.Point{X: r.XMin, Y: r.YMin}),
		p.pt(geom.Point{X: r.XMax, Y: r.YMin}),
		p.pt(geom.Point{X: r.XMax, Y: r.YMax}),
		p.pt(geom.Point{X: r.XMin, Y: r.YMax}),
	}
}

func (p *painter) color(s catplot.ColorSlot) color.Color {
	return p.theme.Palette.Color(s)
}

func (p *painter) stroke(c color.Color) draw.LineStyle {
	return draw.LineStyle{Color: c, Width: vg.Points(p.theme.LineWidth)}
}

// Draw paints g onto c.
func Draw(c draw.Canvas, g *catplot.Geometry, theme catplot.Theme) {
	p := &painter{
		c:     c,
		theme: theme,
		text: draw.TextStyle{
			Color:   theme.AxisColor,
			Font:    font.From(plot.DefaultFont, FontSize),
			XAlign:  draw.XCenter,
			YAlign:  draw.YBottom,
			Handler: plot.DefaultTextHandler,
		},
	}
	if theme.Background != nil {
		c.FillPolygon(theme.Background, []vg.Point{
			c.Min, {X: c.Max.X, Y: c.Min.Y}, c.Max, {X: c.Min.X, Y: c.Max.Y},
		})
	}
	if g.Type.Kind != catplot.Pie {
		for _, t := range g.Tiles {
			p.axis(t, g.Orientation == catplot.Vertical)
		}
	}
	for _, b := range g.Bars {
		p.bar(b)
	}
	for _, pie := range g.Pies {
		p.pie(pie)
	}
	for _, v := range g.Violins {
		p.violin(v)
	}
	for _, b := range g.Boxes {
		p.box(b)
	}
	if g.Type.IsDistribution() || g.Type.Kind == catplot.Scatter {
		p.points(g.Points)
	}
	for _, l := range g.Labels {
		p.label(l)
	}
}

// axis draws the value axis of tile t along its left or bottom edge.
func (p *painter) axis(t catplot.Tile, vertical bool) {
	sty := p.stroke(p.theme.AxisColor)
	tick := p.text
	var axis geom.Line
	if vertical {
		axis = geom.Line{X0: t.Area.XMin, Y0: t.Area.YMin, X1: t.Area.XMin, Y1: t.Area.YMax}
		tick.XAlign, tick.YAlign = draw.XRight, draw.YCenter
	} else {
		axis = geom.Line{X0: t.Area.XMin, Y0: t.Area.YMin, X1: t.Area.XMax, Y1: t.Area.YMin}
		tick.YAlign = draw.YTop
	}
	p.c.StrokeLines(sty, p.line(axis))

	for _, v := range t.Values.Ticks(max(2, int(t.Values.Pixels()/40))) {
		at := t.Values.Map(v)
		var mark geom.Line
		var anchor geom.Point
		if vertical {
			mark = geom.Line{X0: axis.X0 - 3, Y0: at, X1: axis.X0, Y1: at}
			anchor = geom.Point{X: axis.X0 - 4, Y: at}
		} else {
			mark = geom.Line{X0: at, Y0: axis.Y0 - 3, X1: at, Y1: axis.Y0}
			anchor = geom.Point{X: at, Y: axis.Y0 - 4}
		}
		p.c.StrokeLines(sty, p.line(mark))
		p.c.FillText(tick, p.pt(anchor), catplot.FormatSignificant(v, 4))
	}
}

func (p *painter) bar(b catplot.BarGeometry) {
	for i, s := range b.Slices {
		p.c.FillPolygon(p.color(b.Slots[i]), p.rect(s))
	}
	outline := p.rect(b.Rect)
	p.c.StrokeLines(p.stroke(p.theme.AxisColor), append(outline, outline[0]))
}

func (p *painter) pie(g catplot.PieGeometry) {
	for i, w := range g.Wedges {
		p.c.SetColor(p.color(g.Slots[i]))
		p.c.Fill(p.wedge(w))
	}
	p.c.SetLineStyle(p.stroke(p.theme.AxisColor))
	circle := make(vg.Path, 0, 3)
	center := p.pt(g.Center)
	circle.Move(vg.Point{X: center.X + vg.Length(g.Radius), Y: center.Y})
	circle.Arc(center, vg.Length(g.Radius), 0, 2*math.Pi)
	circle.Close()
	p.c.Stroke(circle)
}

// wedge is the closed path of a circular sector.
func (p *painter) wedge(w geom.Wedge) vg.Path {
	center := p.pt(w.Center)
	start := w.Start * math.Pi / 180
	path := make(vg.Path, 0, 4)
	path.Move(center)
	path.Line(vg.Point{
		X: center.X + vg.Length(w.Radius*math.Cos(start)),
		Y: center.Y + vg.Length(w.Radius*math.Sin(start)),
	})
	path.Arc(center, vg.Length(w.Radius), start, w.Sweep*math.Pi/180)
	path.Close()
	return path
}

func (p *painter) box(b catplot.BoxGeometry) {
	sty := p.stroke(p.theme.AxisColor)
	sty.Dashes = Dashes(p.theme.WhiskerLine)
	for _, l := range b.Box.Lines() {
		p.c.StrokeLines(sty, p.line(l))
	}
	if !b.Whisker {
		r := p.rect(b.Box.Rect())
		p.c.StrokeLines(p.stroke(p.theme.AxisColor), append(r, r[0]))
	}
}

func (p *painter) violin(v catplot.ViolinGeometry) {
	for _, band := range v.Bands {
		for _, poly := range band.Polygons {
			pts := make([]vg.Point, len(poly))
			for i, q := range poly {
				pts[i] = p.pt(q)
			}
			p.c.FillPolygon(p.color(band.Slot), pts)
		}
	}
}

// points draws the record markers of distribution and scatter charts. Outliers use
// the outlier shape, records without value are drawn in the filter
// color outside the plot area.
func (p *painter) points(points []catplot.PointGeometry) {
	r := vg.Points(p.theme.PointSize * p.theme.MarkerSize)
	for _, q := range points {
		if q.Position.Outside() {
			continue
		}
		sty := draw.GlyphStyle{Color: p.color(q.Slot), Radius: r, Shape: Glyph(catplot.SolidCirclePoint)}
		switch q.Status {
		case catplot.Outlier:
			sty.Shape = Glyph(p.theme.OutlierShape)
		case catplot.NaN:
			sty.Color = p.theme.Palette.Filtered
		case catplot.Hidden:
			continue
		}
		p.c.DrawGlyphNoClip(sty, p.pt(q.Position))
	}
}

func (p *painter) label(l catplot.Label) {
	if len(l.Lines) == 0 || l.Anchor.Outside() {
		return
	}
	at := p.pt(l.Anchor)
	at.Y += 2
	p.c.FillText(p.text, at, strings.Join(l.Lines, "\n"))
}

// Glyph returns the glyph drawer of shape, nil for BlankPoint.
func Glyph(shape catplot.PointShape) draw.GlyphDrawer {
	switch shape {
	case catplot.CirclePoint:
		return draw.RingGlyph{}
	case catplot.SquarePoint:
		return draw.SquareGlyph{}
	case catplot.DiamondPoint:
		return diamondGlyph{}
	case catplot.DeltaPoint:
		return draw.TriangleGlyph{}
	case catplot.NablaPoint:
		return draw.PyramidGlyph{}
	case catplot.SolidCirclePoint:
		return draw.CircleGlyph{}
	case catplot.SolidSquarePoint:
		return draw.BoxGlyph{}
	case catplot.CrossPoint:
		return draw.CrossGlyph{}
	case catplot.PlusPoint:
		return draw.PlusGlyph{}
	case catplot.StarPoint:
		return starGlyph{}
	}
	return nil
}

// diamondGlyph is the outline of a square standing on a corner.
type diamondGlyph struct{}

func (diamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	r := sty.Radius
	var p vg.Path
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Stroke(p)
}

// starGlyph overlays a plus and a cross.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}

// Dashes returns the dash pattern of a line type. Solid and blank
// lines have none.
func Dashes(lt catplot.LineType) []vg.Length {
	switch lt {
	case catplot.DashedLine:
		return []vg.Length{vg.Points(4), vg.Points(2)}
	case catplot.DottedLine:
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case catplot.DotDashLine:
		return []vg.Length{vg.Points(4), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

// Write renders g in the given format ("svg", "png", "jpg", "tiff")
// to out.
func Write(out io.Writer, format string, g *catplot.Geometry, theme catplot.Theme, w, h vg.Length) error {
	cw, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return err
	}
	Draw(draw.New(cw), g, theme)
	if _, err := cw.WriteTo(out); err != nil {
		return fmt.Errorf("write %s: %w", format, err)
	}
	return nil
}

// WriteFile renders g to the file path, the format is derived from its
// extension.
func WriteFile(path string, g *catplot.Geometry, theme catplot.Theme, w, h vg.Length) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("render %s: missing file extension", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, format, g, theme, w, h); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
