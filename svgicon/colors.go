package svgicon

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Pattern is the interface for fill and stroke paints:
// a plain color, a gradient, or a tiled pattern.
type Pattern interface {
	isPattern()
}

// PlainColor is a solid color paint.
type PlainColor struct {
	color.NRGBA
}

// NewPlainColor builds a PlainColor from its components.
func NewPlainColor(r, g, b, a uint8) PlainColor {
	return PlainColor{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}
}

func (PlainColor) isPattern()   {}
func (Gradient) isPattern()     {}
func (*TilePattern) isPattern() {}

// optionnalColor distinguishes a valid color from
// the "none" value, which disables painting entirely.
type optionnalColor struct {
	color PlainColor
	valid bool
}

func (o optionnalColor) asPattern() Pattern {
	if !o.valid {
		return nil
	}
	return o.color
}

func (o optionnalColor) asColor() color.Color {
	if !o.valid {
		return nil
	}
	return o.color.NRGBA
}

// parseSVGColorNum reads the SVG color string e.g. #FBD9BD
func parseSVGColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	if len(colorStr) != 6 {
		// SVG specs say duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	}
	var t uint64
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]},
	} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}

// parseColorValue reads a 0-255 or percentage color component.
func parseColorValue(v string) (uint8, error) {
	if v[len(v)-1] == '%' {
		n, err := strconv.Atoi(strings.TrimSpace(v[:len(v)-1]))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if n > 255 {
		n = 255
	}
	return uint8(n), err
}

// parseSVGColor parses an SVG color string in all forms,
// including all SVG1.1 names, obtained from the colornames package
func parseSVGColor(colorStr string) (optionnalColor, error) {
	v := strings.ToLower(strings.TrimSpace(colorStr))
	switch v {
	case "none", "":
		// nil signals that the function (fill or stroke) is off;
		// not the same as black
		return optionnalColor{}, nil
	case "currentcolor": // we have no color context; default to black
		return optionnalColor{color: NewPlainColor(0, 0, 0, 0xFF), valid: true}, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		return optionnalColor{color: PlainColor{NRGBA: color.NRGBA{R: cn.R, G: cn.G, B: cn.B, A: cn.A}}, valid: true}, nil
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		cStr = strings.TrimSuffix(cStr, ")")
		vals := strings.Split(cStr, ",")
		if len(vals) != 3 {
			return optionnalColor{}, errParamMismatch
		}
		var cvals [3]uint8
		var err error
		for i := range cvals {
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return optionnalColor{}, err
			}
		}
		return optionnalColor{color: NewPlainColor(cvals[0], cvals[1], cvals[2], 0xFF), valid: true}, nil
	}
	if strings.HasPrefix(v, "#") {
		r, g, b, err := parseSVGColorNum(v)
		if err != nil {
			return optionnalColor{}, err
		}
		return optionnalColor{color: NewPlainColor(r, g, b, 0xFF), valid: true}, nil
	}
	return optionnalColor{}, errParamMismatch
}
