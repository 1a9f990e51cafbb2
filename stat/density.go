package stat

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
)

const (
	// BaseFractions is the number of fractions a fully zoomed out axis
	// is divided into at medium smoothing.
	BaseFractions = 120

	// KernelRadius is the default reach of the smoothing kernel in
	// fractions.
	KernelRadius = 12

	// smoothingExponent scales the influence of the smoothing setting
	// on the fraction count: exp(0.5*k*(s-0.5)) spans about 0.53..1.87
	// for s in [0,1].
	smoothingExponent = 2.5

	minFractions = 4
)

// FractionCount returns the number of fractions the visible value range
// is divided into. The count grows with the smoothing setting s in
// [0,1] and shrinks with the visible fraction of the full axis range,
// so zoomed in views get fewer, chunkier fractions.
func FractionCount(s, visibleFraction float64) int {
	if math.IsNaN(s) {
		s = 0.5
	}
	s = math.Max(0, math.Min(1, s))
	if !(visibleFraction > 0) || visibleFraction > 1 {
		visibleFraction = 1
	}
	f := BaseFractions * math.Exp(0.5*smoothingExponent*(s-0.5)) * visibleFraction
	n := int(math.Round(f))
	if n < minFractions {
		n = minFractions
	}
	return n
}

// Grid maps the value range [Min,Max] linearly onto the fraction
// positions [0,Fractions]. A grid has Fractions+1 sample points.
type Grid struct {
	Min, Max  float64
	Fractions int
}

// Len is the number of sample points of g.
func (g Grid) Len() int { return g.Fractions + 1 }

// Position returns the fractional position of v. The second result is
// false if v is NaN or lies outside the range of g.
func (g Grid) Position(v float64) (float64, bool) {
	if math.IsNaN(v) || v < g.Min || v > g.Max {
		return 0, false
	}
	if g.Max == g.Min {
		return 0, true
	}
	return (v - g.Min) / (g.Max - g.Min) * float64(g.Fractions), true
}

// Values returns the data value at each sample point of g.
func (g Grid) Values() []float64 {
	return vec.Linspace(g.Min, g.Max, g.Len())
}

// Kernel holds the influence of a fraction on its neighbours at
// distance 0, 1, ... radius-1.
type Kernel []float64

// NewKernel returns the kernel exp(-4*d^2/(radius-1)^2).
func NewKernel(radius int) Kernel {
	if radius < 1 {
		radius = 1
	}
	k := make(Kernel, radius)
	if radius == 1 {
		k[0] = 1
		return k
	}
	r1 := float64(radius - 1)
	for d := range k {
		fd := float64(d)
		k[d] = math.Exp(-4 * fd * fd / (r1 * r1))
	}
	return k
}

// Radius of the kernel in fractions.
func (k Kernel) Radius() int { return len(k) }

// Density is the smoothed, color stacked distribution of one bin.
// Stack[c][j] is the accumulated width of the colors 0..c at sample
// point j; every row has Grid.Len() entries. Outside [Lo,Hi], the
// populated range of the bin, all widths are zero.
type Density struct {
	Grid   Grid
	Lo, Hi int
	Stack  [][]float64
	Mass   float64 // sum of the raw contributions
}

// Empty reports whether no value contributed to d.
func (d Density) Empty() bool { return d.Mass == 0 }

// Total is the envelope of all colors.
func (d Density) Total() []float64 {
	if len(d.Stack) == 0 {
		return nil
	}
	return d.Stack[len(d.Stack)-1]
}

// Max is the largest accumulated width of d.
func (d Density) Max() float64 {
	t := d.Total()
	if len(t) == 0 {
		return 0
	}
	return floats.Max(t)
}

// Smooth computes the density of values on grid g. Value i belongs to
// the color slot slots[i] in [0,nSlots). Each value's unit mass is split
// between the two nearest sample points in proportion to its distance,
// then spread by kernel k to the neighbouring points within the
// populated range of the bin. The spread of every point is normalised
// so that the total mass is conserved. Values outside g are dropped.
func Smooth(g Grid, k Kernel, values []float64, slots []int, nSlots int) Density {
	n := g.Len()
	d := Density{Grid: g, Lo: n, Hi: -1, Stack: make([][]float64, nSlots)}

	raw := make([][]float64, nSlots)
	for c := range raw {
		raw[c] = make([]float64, n)
	}
	for i, v := range values {
		pos, ok := g.Position(v)
		if !ok {
			continue
		}
		c := slots[i]
		if c < 0 || c >= nSlots {
			continue
		}
		j := int(math.Floor(pos))
		frac := pos - float64(j)
		if j >= n-1 {
			j, frac = n-1, 0
		}
		raw[c][j] += 1 - frac
		if frac > 0 {
			raw[c][j+1] += frac
		}
		lo, hi := j, j
		if frac > 0 {
			hi = j + 1
		}
		if lo < d.Lo {
			d.Lo = lo
		}
		if hi > d.Hi {
			d.Hi = hi
		}
		d.Mass++
	}

	// Normalisation of the spread from sample point j, restricted to
	// the populated range.
	var norm []float64
	if d.Hi >= d.Lo {
		norm = make([]float64, n)
		for j := d.Lo; j <= d.Hi; j++ {
			for t := max(d.Lo, j-k.Radius()+1); t <= min(d.Hi, j+k.Radius()-1); t++ {
				norm[j] += k[abs(t-j)]
			}
		}
	}

	acc := make([]float64, n)
	for c := 0; c < nSlots; c++ {
		if d.Hi >= d.Lo {
			for j := d.Lo; j <= d.Hi; j++ {
				m := raw[c][j]
				if m == 0 {
					continue
				}
				for t := max(d.Lo, j-k.Radius()+1); t <= min(d.Hi, j+k.Radius()-1); t++ {
					acc[t] += m * k[abs(t-j)] / norm[j]
				}
			}
		}
		d.Stack[c] = append([]float64(nil), acc...)
	}
	return d
}

// MaxWidth is the largest accumulated width over all densities.
func MaxWidth(ds []Density) float64 {
	m := 0.0
	for _, d := range ds {
		if w := d.Max(); w > m {
			m = w
		}
	}
	return m
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
