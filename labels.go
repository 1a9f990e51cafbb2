package catplot

import (
	"math"
	"strconv"
)

const (
	floatDigits   = 4
	integerDigits = 8
)

// valueDigits is the number of significant digits of values of axis.
func valueDigits(axis Axis) int {
	if axis.Integer && !axis.Log {
		return integerDigits
	}
	return floatDigits
}

// StatisticLabels returns the enabled statistics of bin as label lines.
// Statistics that are NaN are left out. Mean and median of a
// logarithmic axis are shown in the linear domain.
func StatisticLabels(bin DistributionBin, so StatisticsOptions, axis Axis) []string {
	var lines []string
	digits := valueDigits(axis)
	add := func(name string, v float64, d int) {
		if math.IsNaN(v) {
			return
		}
		lines = append(lines, name+"="+FormatSignificant(v, d))
	}

	if so.Count {
		lines = append(lines, "n="+strconv.Itoa(len(bin.Values)))
	}
	if so.Mean {
		add("mean", linear(bin.Summary.Mean, axis.Log), digits)
	}
	if so.Median {
		add("median", linear(bin.Box.Median, axis.Log), digits)
	}
	if so.StdDev {
		add("σ", bin.Summary.StdDev, digits)
	}
	if so.ConfidenceInterval {
		add("CI95", bin.Summary.Margin, digits)
	}
	if so.PValue {
		add("p", bin.PValue, floatDigits)
	}
	if so.FoldChange {
		if axis.Log {
			add("log2FC", bin.FoldChange, floatDigits)
		} else {
			add("FC", bin.FoldChange, floatDigits)
		}
	}
	return lines
}

// BarLabel returns the value label of a bar or pie bin.
func BarLabel(bin BarPieBin, ct ChartType, axis Axis) []string {
	if math.IsNaN(bin.Value) {
		return nil
	}
	switch ct.Mode {
	case Count:
		return []string{FormatSignificant(bin.Value, integerDigits)}
	case Percent:
		return []string{FormatSignificant(bin.Value, floatDigits) + "%"}
	}
	return []string{FormatSignificant(linear(bin.Value, axis.Log), valueDigits(axis))}
}
