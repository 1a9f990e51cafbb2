package catplot

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vdobler/catplot/geom"
)

// Chart runs the aggregation and layout pipeline of one chart.
type Chart struct {
	// Type selects the kind of chart and its aggregation.
	Type ChartType

	// Options is the host supplied configuration: axis, categories,
	// split view, colors and statistics toggles.
	Options Options

	// Theme controls relative glyph sizes and the palette.
	Theme Theme

	// Logger receives debug output. A nil Logger discards it.
	Logger *zap.Logger
}

// New sets up a chart with the default theme.
func New(ct ChartType, opts Options, logger *zap.Logger) *Chart {
	return &Chart{Type: ct, Options: opts, Theme: DefaultTheme, Logger: logger}
}

func (c *Chart) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Result is the outcome of Calculate. Exactly one of BarPie,
// Distribution and Density is set, depending on the chart kind;
// scatter charts only carry placements.
type Result struct {
	Type         ChartType
	BarPie       *BarPieResult
	Distribution *DistributionResult
	Density      *DensityResult
	Placements   []Placement

	source Source
}

// Calculate computes the statistics of the records in src.
func (c *Chart) Calculate(src Source) (*Result, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	if err := c.Type.Validate(); err != nil {
		return nil, err
	}
	opts := c.Options
	if opts.Logger == nil {
		opts.Logger = c.logger()
	}
	opts.Logger.Debug("calculate", zap.Stringer("chart", c.Type), zap.Int("records", src.Len()))

	res := &Result{Type: c.Type, source: src}
	switch c.Type.Kind {
	case Bar, Pie:
		bp, err := Aggregate(c.Type, src, opts)
		if err != nil {
			return nil, err
		}
		res.BarPie, res.Placements = bp, bp.Placements
	case Box, Whisker:
		d, err := Distribute(c.Type, src, opts)
		if err != nil {
			return nil, err
		}
		res.Distribution, res.Placements = d, d.Placements
	case Violin, Ridgeline:
		d, err := Smooth(c.Type, src, opts)
		if err != nil {
			return nil, err
		}
		res.Distribution, res.Density, res.Placements = d.DistributionResult, d, d.Placements
	case Scatter:
		res.Placements = group(src, opts, false).placements
	default:
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, int(c.Type.Kind))
	}
	return res, nil
}

// CalculateCoordinates lays out res inside area.
func (c *Chart) CalculateCoordinates(res *Result, area geom.Rect) (*Geometry, error) {
	if res == nil {
		return nil, ErrNoSource
	}
	if res.Type != c.Type {
		return nil, fmt.Errorf("layout %s with result of %s: %w", c.Type, res.Type, ErrKindMismatch)
	}
	g, err := Layout(res, c.Options, c.Theme, area)
	if err != nil {
		return nil, err
	}
	c.logger().Debug("layout",
		zap.Stringer("chart", c.Type),
		zap.Int("tiles", len(g.Tiles)),
		zap.Int("bars", len(g.Bars)),
		zap.Int("pies", len(g.Pies)),
		zap.Int("boxes", len(g.Boxes)),
		zap.Int("violins", len(g.Violins)))
	return g, nil
}

// Draw runs both stages.
func (c *Chart) Draw(src Source, area geom.Rect) (*Result, *Geometry, error) {
	res, err := c.Calculate(src)
	if err != nil {
		return nil, nil, err
	}
	g, err := c.CalculateCoordinates(res, area)
	if err != nil {
		return nil, nil, err
	}
	return res, g, nil
}
