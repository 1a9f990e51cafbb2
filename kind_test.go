package catplot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	for _, k := range []ChartKind{Scatter, Bar, Pie, Box, Whisker, Violin, Ridgeline} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q): Got %v, %v, want %v", k.String(), got, err, k)
		}
	}
	got, err := ParseKind("Violin")
	assert.NoError(t, err)
	assert.Equal(t, Violin, got)

	_, err = ParseKind("heatmap")
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.Equal(t, "ChartKind(42)", ChartKind(42).String())
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Count, Percent, Mean, Min, Max, Sum} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q): Got %v, %v, want %v", m.String(), got, err, m)
		}
	}
	_, err := ParseMode("median")
	assert.True(t, errors.Is(err, ErrUnknownMode))
}

func TestCapabilities(t *testing.T) {
	for i, tc := range []struct {
		ct                           ChartType
		value, stats, outliers, prop bool
	}{
		{ChartType{Kind: Bar, Mode: Count}, false, false, false, false},
		{ChartType{Kind: Bar, Mode: Percent}, false, false, false, false},
		{ChartType{Kind: Bar, Mode: Sum}, true, false, false, true},
		{ChartType{Kind: Pie, Mode: Mean}, true, false, false, false},
		{ChartType{Kind: Box}, true, true, true, false},
		{ChartType{Kind: Whisker}, true, true, false, false},
		{ChartType{Kind: Violin}, true, true, false, false},
		{ChartType{Kind: Ridgeline}, true, true, false, false},
		{ChartType{Kind: Scatter}, false, false, false, false},
	} {
		ct := tc.ct
		if got := ct.NeedsValue(); got != tc.value {
			t.Errorf("%d %s: NeedsValue Got %t, want %t", i, ct, got, tc.value)
		}
		if got := ct.SupportsStatistics(); got != tc.stats {
			t.Errorf("%d %s: SupportsStatistics Got %t, want %t", i, ct, got, tc.stats)
		}
		if got := ct.SupportsOutliers(); got != tc.outliers {
			t.Errorf("%d %s: SupportsOutliers Got %t, want %t", i, ct, got, tc.outliers)
		}
		if got := ct.Proportional(); got != tc.prop {
			t.Errorf("%d %s: Proportional Got %t, want %t", i, ct, got, tc.prop)
		}
	}

	assert.False(t, ChartType{Kind: Scatter}.SupportsLabels())
	assert.Equal(t, Horizontal, ChartType{Kind: Ridgeline}.EffectiveOrientation())
	assert.Equal(t, Vertical, ChartType{Kind: Violin}.EffectiveOrientation())
	assert.Equal(t, "bar(sum)", ChartType{Kind: Bar, Mode: Sum}.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ChartType{Kind: Violin, Smoothing: 0.3}.Validate())
	assert.Error(t, ChartType{Kind: ChartKind(17)}.Validate())
	assert.Error(t, ChartType{Kind: Bar, Mode: Mode(-1)}.Validate())
	assert.Error(t, ChartType{Kind: Violin, Smoothing: 1.5}.Validate())
}
