package catplot

import (
	"fmt"
	"strings"
)

// ChartKind selects the pipeline that turns records into geometry.
type ChartKind int

const (
	Scatter ChartKind = iota // records at their values, no aggregation
	Bar
	Pie
	Box
	Whisker
	Violin
	Ridgeline
)

var kindNames = []string{"scatter", "bar", "pie", "box", "whisker", "violin", "ridgeline"}

func (k ChartKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ChartKind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of ChartKind.String. Case is ignored.
func ParseKind(s string) (ChartKind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return ChartKind(i), nil
		}
	}
	return Scatter, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Mode is the aggregation applied to the records of a bar or pie bin.
type Mode int

const (
	Count Mode = iota
	Percent
	Mean
	Min
	Max
	Sum
)

var modeNames = []string{"count", "percent", "mean", "min", "max", "sum"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for i, n := range modeNames {
		if strings.EqualFold(s, n) {
			return Mode(i), nil
		}
	}
	return Count, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// NeedsValue reports whether m aggregates the chart value of the
// records. Count and Percent only count them.
func (m Mode) NeedsValue() bool { return m != Count && m != Percent }

// Orientation of the value axis.
type Orientation int

const (
	Vertical   Orientation = iota // categories along x, values along y
	Horizontal                    // categories along y, values along x
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// WhiskerMode selects the extent of the whiskers of a whisker chart.
type WhiskerMode int

const (
	WhiskerStdDev     WhiskerMode = iota // mean ± standard deviation
	WhiskerConfidence                    // mean ± 95% error margin
)

// ChartType configures a chart.
type ChartType struct {
	Kind        ChartKind   `yaml:"kind"`
	Mode        Mode        `yaml:"mode"`
	Column      string      `yaml:"column"` // name of the charted column, informational
	Orientation Orientation `yaml:"orientation"`
	Whisker     WhiskerMode `yaml:"whisker"`
	Smoothing   float64     `yaml:"smoothing"` // violin and ridgeline smoothing in [0,1]
}

// IsBarOrPie reports whether ct aggregates bins into one magnitude.
func (ct ChartType) IsBarOrPie() bool { return ct.Kind == Bar || ct.Kind == Pie }

// IsDistribution reports whether ct shows the distribution of the
// values inside each bin.
func (ct ChartType) IsDistribution() bool {
	switch ct.Kind {
	case Box, Whisker, Violin, Ridgeline:
		return true
	}
	return false
}

// IsDensity reports whether ct draws smoothed densities.
func (ct ChartType) IsDensity() bool { return ct.Kind == Violin || ct.Kind == Ridgeline }

// NeedsValue reports whether ct reads the value of the records.
func (ct ChartType) NeedsValue() bool {
	return ct.IsDistribution() || (ct.IsBarOrPie() && ct.Mode.NeedsValue())
}

// SupportsStatistics reports whether per bin statistics (mean, σ,
// p-value, ...) are available.
func (ct ChartType) SupportsStatistics() bool { return ct.IsDistribution() }

// SupportsLabels reports whether bins carry label text.
func (ct ChartType) SupportsLabels() bool { return ct.Kind != Scatter }

// SupportsOutliers reports whether samples beyond the fences are
// singled out.
func (ct ChartType) SupportsOutliers() bool { return ct.Kind == Box }

// Proportional reports whether the slices of a bar are sized by the
// values of the records instead of evenly.
func (ct ChartType) Proportional() bool {
	return ct.Kind == Bar && (ct.Mode == Sum || ct.Mode == Mean)
}

// EffectiveOrientation is the orientation the layout uses. Pies have
// none, ridgelines are always horizontal.
func (ct ChartType) EffectiveOrientation() Orientation {
	if ct.Kind == Ridgeline {
		return Horizontal
	}
	return ct.Orientation
}

// Validate checks ct for settings that cannot be combined.
func (ct ChartType) Validate() error {
	if ct.Kind < Scatter || ct.Kind > Ridgeline {
		return fmt.Errorf("%w %d", ErrUnknownKind, int(ct.Kind))
	}
	if ct.Mode < Count || ct.Mode > Sum {
		return fmt.Errorf("%w %d", ErrUnknownMode, int(ct.Mode))
	}
	if ct.Smoothing < 0 || ct.Smoothing > 1 {
		return fmt.Errorf("catplot: smoothing %g outside [0,1]", ct.Smoothing)
	}
	return nil
}

func (ct ChartType) String() string {
	if ct.IsBarOrPie() {
		return fmt.Sprintf("%s(%s)", ct.Kind, ct.Mode)
	}
	return ct.Kind.String()
}
