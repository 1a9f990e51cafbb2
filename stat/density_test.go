package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestKernel(t *testing.T) {
	k := NewKernel(KernelRadius)
	assert.Equal(t, KernelRadius, k.Radius())
	assert.Equal(t, 1.0, k[0])
	assert.InDelta(t, math.Exp(-4), k[KernelRadius-1], 1e-12)
	for d := 1; d < len(k); d++ {
		if k[d] >= k[d-1] {
			t.Errorf("kernel not decreasing at %d: %g >= %g", d, k[d], k[d-1])
		}
	}
	assert.Equal(t, Kernel{1}, NewKernel(0))
}

func TestFractionCount(t *testing.T) {
	assert.Equal(t, BaseFractions, FractionCount(0.5, 1))
	assert.Less(t, FractionCount(0, 1), FractionCount(1, 1))
	assert.Equal(t, 60, FractionCount(0.5, 0.5))
	assert.Equal(t, minFractions, FractionCount(0.5, 0.001))
	assert.Equal(t, BaseFractions, FractionCount(math.NaN(), 0))
}

func TestGridPosition(t *testing.T) {
	g := Grid{Min: 10, Max: 20, Fractions: 100}
	p, ok := g.Position(15)
	assert.True(t, ok)
	assert.InDelta(t, 50, p, 1e-12)
	_, ok = g.Position(21)
	assert.False(t, ok)
	_, ok = g.Position(math.NaN())
	assert.False(t, ok)
	v := g.Values()
	require.Len(t, v, 101)
	assert.Equal(t, 10.0, v[0])
	assert.Equal(t, 20.0, v[100])
}

func TestSmoothConservesMass(t *testing.T) {
	values := []float64{0.1, 0.15, 0.3, 0.31, 0.5, 0.52, 0.55, 0.9, 1.0, 0.0}
	slots := make([]int, len(values))
	for _, smoothing := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, visible := range []float64{0.2, 0.6, 1} {
			g := Grid{Min: 0, Max: 1, Fractions: FractionCount(smoothing, visible)}
			for _, radius := range []int{1, 3, KernelRadius} {
				d := Smooth(g, NewKernel(radius), values, slots, 1)
				got := floats.Sum(d.Total())
				if math.Abs(got-float64(len(values))) > 1e-9 {
					t.Errorf("smoothing=%.2f visible=%.1f radius=%d: Got mass %g, want %d",
						smoothing, visible, radius, got, len(values))
				}
			}
		}
	}
}

func TestSmoothStacking(t *testing.T) {
	values := []float64{1, 2, 2, 3, 3, 3, 4, 5, 2.5, 3.5}
	slots := []int{0, 0, 1, 1, 2, 2, 0, 1, 2, 0}
	g := Grid{Min: 0, Max: 10, Fractions: 100}
	d := Smooth(g, NewKernel(KernelRadius), values, slots, 3)
	require.Len(t, d.Stack, 3)
	for c := 1; c < 3; c++ {
		for j := range d.Stack[c] {
			if d.Stack[c][j] < d.Stack[c-1][j] {
				t.Fatalf("color %d below color %d at %d", c, c-1, j)
			}
		}
	}
	assert.InDelta(t, 10, floats.Sum(d.Total()), 1e-9)
	assert.Equal(t, 10, d.Lo)
	assert.Equal(t, 50, d.Hi)
	for j, w := range d.Total() {
		if (j < d.Lo || j > d.Hi) && w != 0 {
			t.Errorf("Got width %g at %d outside populated range", w, j)
		}
	}
	assert.Greater(t, d.Max(), 0.0)
	assert.Equal(t, d.Max(), MaxWidth([]Density{d, {}}))
}

func TestSmoothLinearSplit(t *testing.T) {
	g := Grid{Min: 0, Max: 4, Fractions: 4}
	d := Smooth(g, NewKernel(1), []float64{1.25}, []int{0}, 1)
	assert.InDelta(t, 0.75, d.Total()[1], 1e-12)
	assert.InDelta(t, 0.25, d.Total()[2], 1e-12)
	assert.Equal(t, 1, d.Lo)
	assert.Equal(t, 2, d.Hi)

	d = Smooth(g, NewKernel(1), []float64{7}, []int{0}, 1)
	assert.True(t, d.Empty())
}
