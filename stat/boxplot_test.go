package stat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuartiles(t *testing.T) {
	for i, tc := range []struct {
		data        []float64
		q1, med, q3 float64
	}{
		{[]float64{5}, 5, 5, 5},
		{[]float64{1, 2, 3, 4}, 1.5, 2.5, 3.5},
		{[]float64{1, 2, 3, 4, 5}, 2, 3, 4},
		{[]float64{1, 2, 3, 4, 5, 6}, 2, 3.5, 5},
		{[]float64{1, 2, 3, 4, 5, 6, 7}, 2, 4, 6},
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2.5, 4.5, 6.5},
	} {
		q1, med, q3 := Quartiles(tc.data)
		if q1 != tc.q1 || med != tc.med || q3 != tc.q3 {
			t.Errorf("%d: Got %.2f/%.2f/%.2f, want %.2f/%.2f/%.2f",
				i, q1, med, q3, tc.q1, tc.med, tc.q3)
		}
	}

	q1, med, q3 := Quartiles(nil)
	assert.True(t, math.IsNaN(q1) && math.IsNaN(med) && math.IsNaN(q3))
}

func TestBoxPlotFences(t *testing.T) {
	b := BoxPlot([]float64{7, 2, 4, 3, 2, 4}, Coef)
	assert.Equal(t, 2.0, b.Q1)
	assert.Equal(t, 4.0, b.Q3)
	assert.Equal(t, 7.0, b.HighFence)
	assert.Empty(t, b.Outliers, "value on the fence is not an outlier")
	assert.Equal(t, 7.0, b.High)
	assert.Equal(t, 2.0, b.Low)
	assert.Equal(t, 6, b.Retained)

	b = BoxPlot([]float64{7.01, 2, 4, 3, 2, 4}, Coef)
	assert.Equal(t, []float64{7.01}, b.Outliers)
	assert.Equal(t, 4.0, b.High)
	assert.Equal(t, 5, b.Retained)
	assert.True(t, b.IsOutlier(7.01))
	assert.False(t, b.IsOutlier(7))
}

func TestBoxPlotLowOutliers(t *testing.T) {
	b := BoxPlot([]float64{-10, 1, 2, 3, 4, 5, 6, 7}, Coef)
	assert.Equal(t, []float64{-10}, b.Outliers)
	assert.Equal(t, 1.0, b.Low)
	assert.Equal(t, 7.0, b.High)
	assert.Equal(t, b.N, b.Retained+len(b.Outliers))
}

func TestBoxPlotEmpty(t *testing.T) {
	b := BoxPlot(nil, Coef)
	assert.Equal(t, 0, b.N)
	assert.True(t, math.IsNaN(b.Median))
	assert.False(t, b.IsOutlier(3))
}
