// Catplot computes the geometry of categorical statistics charts: bar,
// pie, box, whisker, violin and ridgeline charts.
//
// # Records and Bins
//
// The data is provided as a Source of Records. Each record carries the
// value on the numeric axis and the indices of its split view tile, its
// category and its color, all resolved by the caller:
//
//	src := catplot.Records{
//	    {Visible: true, Value: 1.2, Category: 0, Color: 1},
//	    {Visible: true, Value: 3.4, Category: 1, Color: 0},
//	}
//
// Records with the same split tile and category form a bin. Inside a
// bin the records are stacked by their ColorSlot: the base colors in
// order, then selected and filter marked records, then the dimmed
// variants of all of these if focus highlighting is on.
//
// A Frame built from a slice of structs or from CSV data turns named
// columns into records via a Mapping.
//
// # Pipeline
//
// Each redraw runs two stages:
//
//	chart := catplot.New(catplot.ChartType{Kind: catplot.Box}, opts, logger)
//	res, err := chart.Calculate(src)
//	geo, err := chart.CalculateCoordinates(res, area)
//
// Calculate dispatches on the chart kind to Aggregate (bar and pie),
// Distribute (box and whisker) or Smooth (violin and ridgeline). Each
// returns a fresh result; nothing is cached between calls.
// CalculateCoordinates maps the result into pixel space with the value
// axis growing upwards (or to the right for horizontal charts).
//
// # Undefined Statistics
//
// Standard deviation and confidence interval of bins with less than
// two values are +Inf and printed as "Infinity". P-values and fold
// changes without a usable reference bin are NaN and not printed.
package catplot
