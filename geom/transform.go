package geom

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Transform maps data values on an axis to pixel positions. The data
// range [Scale.Min,Scale.Max] is mapped affinely onto [From,To]; To may
// be smaller than From for axes growing upwards on screen.
type Transform struct {
	Scale    scale.Linear
	From, To float64
}

// NewTransform maps [min,max] onto [from,to].
func NewTransform(min, max, from, to float64) Transform {
	return Transform{Scale: scale.Linear{Min: min, Max: max}, From: from, To: to}
}

// Map returns the pixel position of v.
func (t Transform) Map(v float64) float64 {
	return t.From + t.Scale.Map(v)*(t.To-t.From)
}

// Pixels is the size of the pixel range.
func (t Transform) Pixels() float64 { return math.Abs(t.To - t.From) }

// Ticks returns at most n nicely spaced major tick values inside the
// data range.
func (t Transform) Ticks(n int) []float64 {
	major, _ := t.Scale.Ticks(scale.TickOptions{Max: n})
	return major
}
