package catplot

import "image/color"

// Theme holds the layout and drawing settings that are not part of the
// data: relative sizes of the glyphs, the palette and the look of
// markers and lines.
type Theme struct {
	Palette Palette

	BarWidth     float64 // share of a category cell covered by a bar, box or violin
	MaxPieRadius float64 // share of half the smaller cell size
	MarkerSize   float64 // relative marker size setting
	TileGap      float64 // pixels between split view tiles
	NaNMargin    float64 // pixels between the value axis and records without value
	PointSize    float64 // radius of record markers in pixels

	OutlierShape PointShape
	WhiskerLine  LineType
	LineWidth    float64
	Background   color.Color
	AxisColor    color.Color
}

var DefaultTheme = Theme{
	Palette:      DefaultPalette,
	BarWidth:     0.8,
	MaxPieRadius: 0.9,
	MarkerSize:   1,
	TileGap:      12,
	NaNMargin:    8,
	PointSize:    2.5,
	OutlierShape: CirclePoint,
	WhiskerLine:  SolidLine,
	LineWidth:    1,
	Background:   BuiltinColors["white"],
	AxisColor:    BuiltinColors["gray20"],
}
