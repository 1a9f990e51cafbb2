// Package geom contains the pixel space primitives the layout of a
// chart is made of and the helpers to place them.
package geom

import "math"

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Outside reports whether p carries no valid position.
func (p Point) Outside() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Line is a straight segment from (X0,Y0) to (X1,Y1).
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Polygon is a closed outline; the last point connects to the first.
type Polygon []Point

// Wedge is a circular sector. Angles are in degrees, counter clockwise
// starting at the positive x-axis.
type Wedge struct {
	Center Point
	Radius float64
	Start  float64
	Sweep  float64
}

// End is the angle at which w ends.
func (w Wedge) End() float64 { return w.Start + w.Sweep }
