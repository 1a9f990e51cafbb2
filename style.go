package catplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// String2Float parses s as a float, optionally followed by a percent
// sign, and clamps it to [low,high].
func String2Float(s string, low, high float64) (float64, error) {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as float: %w", s, err)
	}
	value /= factor

	if value < low {
		return low, nil
	} else if value > high {
		return high, nil
	}
	return value, nil
}

// SetAlpha scales the opacity of c by a.
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * a)
	return n
}

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	CrossPoint
	PlusPoint
	StarPoint
)

var pointShapeNames = map[string]PointShape{
	"blank":        BlankPoint,
	"circle":       CirclePoint,
	"square":       SquarePoint,
	"diamond":      DiamondPoint,
	"delta":        DeltaPoint,
	"nabla":        NablaPoint,
	"solid-circle": SolidCirclePoint,
	"solid-square": SolidSquarePoint,
	"cross":        CrossPoint,
	"plus":         PlusPoint,
	"star":         StarPoint,
}

// String2PointShape accepts a shape name or its number.
func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(StarPoint) + 1))
	}
	if shape, ok := pointShapeNames[s]; ok {
		return shape
	}
	return BlankPoint
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
)

// String2LineType accepts a line type name or its number.
func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(DotDashLine) + 1))
	}
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	default:
		return BlankLine
	}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// String2Color accepts "#rrggbb", "#rrggbbaa" and the names of the
// builtin colors.
func String2Color(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if len(s) == 7 {
			v = v<<8 | 0xff
		}
		return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// Palette assigns colors to color slots.
type Palette struct {
	Base     []color.Color
	Selected color.Color
	Filtered color.Color
	DimAlpha float64 // opacity of dimmed slots
}

// NewPalette builds a palette from color names.
func NewPalette(names ...string) (Palette, error) {
	p := DefaultPalette
	p.Base = make([]color.Color, len(names))
	for i, n := range names {
		c, err := String2Color(n)
		if err != nil {
			return Palette{}, err
		}
		p.Base[i] = c
	}
	return p, nil
}

// Color of slot s. Base colors repeat if the palette is shorter than
// the number of colors.
func (p Palette) Color(s ColorSlot) color.Color {
	var c color.Color
	switch s.Kind {
	case SelectedColor:
		c = p.Selected
	case FilteredColor:
		c = p.Filtered
	default:
		if len(p.Base) == 0 {
			c = BuiltinColors["gray40"]
		} else {
			i := s.Index % len(p.Base)
			if i < 0 {
				i += len(p.Base)
			}
			c = p.Base[i]
		}
	}
	if s.Dimmed {
		return SetAlpha(c, p.DimAlpha)
	}
	return c
}

var DefaultPalette = Palette{
	Base: []color.Color{
		color.RGBA{0x1f, 0x77, 0xb4, 0xff},
		color.RGBA{0xff, 0x7f, 0x0e, 0xff},
		color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
		color.RGBA{0xd6, 0x27, 0x28, 0xff},
		color.RGBA{0x94, 0x67, 0xbd, 0xff},
		color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	},
	Selected: BuiltinColors["magenta"],
	Filtered: BuiltinColors["gray60"],
	DimAlpha: 0.25,
}
