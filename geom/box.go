package geom

// Rect is an axis parallel rectangle.
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// Canonic returns r with XMin <= XMax and YMin <= YMax.
func (r Rect) Canonic() Rect {
	if r.XMin > r.XMax {
		r.XMin, r.XMax = r.XMax, r.XMin
	}
	if r.YMin > r.YMax {
		r.YMin, r.YMax = r.YMax, r.YMin
	}
	return r
}

func (r Rect) Width() float64  { return r.XMax - r.XMin }
func (r Rect) Height() float64 { return r.YMax - r.YMin }

// Center of r.
func (r Rect) Center() Point {
	return Point{X: (r.XMin + r.XMax) / 2, Y: (r.YMin + r.YMax) / 2}
}

// Contains reports whether p lies inside the canonic form of r.
func (r Rect) Contains(p Point) bool {
	c := r.Canonic()
	return p.X >= c.XMin && p.X <= c.XMax && p.Y >= c.YMin && p.Y <= c.YMax
}

// Box is a box and whisker glyph in pixel space. Center and HalfWidth
// run perpendicular to the value axis, all other fields are pixel
// positions along the value axis.
type Box struct {
	Center, HalfWidth float64
	Q1, Median, Q3    float64
	Low, High         float64
	Vertical          bool // value axis is the y-axis
}

// Rect is the box spanning the quartiles.
func (b Box) Rect() Rect {
	return b.rect(b.Center-b.HalfWidth, b.Q1, b.Center+b.HalfWidth, b.Q3).Canonic()
}

// Lines returns the two whiskers, their caps and the median line.
func (b Box) Lines() []Line {
	tip := b.HalfWidth / 2
	return []Line{
		b.line(b.Center, b.Low, b.Center, b.Q1),
		b.line(b.Center, b.Q3, b.Center, b.High),
		b.line(b.Center-tip, b.Low, b.Center+tip, b.Low),
		b.line(b.Center-tip, b.High, b.Center+tip, b.High),
		b.line(b.Center-b.HalfWidth, b.Median, b.Center+b.HalfWidth, b.Median),
	}
}

// rect and line take (across, along) coordinates.
func (b Box) rect(a0, v0, a1, v1 float64) Rect {
	if b.Vertical {
		return Rect{XMin: a0, YMin: v0, XMax: a1, YMax: v1}
	}
	return Rect{XMin: v0, YMin: a0, XMax: v1, YMax: a1}
}

func (b Box) line(a0, v0, a1, v1 float64) Line {
	if b.Vertical {
		return Line{X0: a0, Y0: v0, X1: a1, Y1: v1}
	}
	return Line{X0: v0, Y0: a0, X1: v1, Y1: a1}
}
