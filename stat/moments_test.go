package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.Equal(t, 8, s.N)
	assert.Equal(t, 40.0, s.Sum)
	assert.InDelta(t, 5.0, s.Mean, 1e-12)
	assert.Equal(t, 2.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	sd := math.Sqrt(32.0 / 7)
	assert.InDelta(t, sd, s.StdDev, 1e-12)
	assert.InDelta(t, 1.96*sd/math.Sqrt(8), s.Margin, 1e-12)
}

func TestSummarizeDegenerate(t *testing.T) {
	s := Summarize([]float64{3})
	assert.Equal(t, 3.0, s.Mean)
	assert.True(t, math.IsInf(s.StdDev, +1))
	assert.True(t, math.IsInf(s.Margin, +1))

	s = Summarize(nil)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsInf(s.StdDev, +1))
}
