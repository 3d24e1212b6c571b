package svgicon

import (
	"encoding/xml"
	"image/color"
	"strings"
)

// Units specifies in which coordinate space positions and
// dimensions are expressed. It is shared by gradients and patterns.
type Units byte

// SVG bounds parameter constants
const (
	// ObjectBoundingBox means relative to the bounding box of the filled shape.
	ObjectBoundingBox Units = iota
	// UserSpaceOnUse means absolute units in the coordinate
	// space the element is defined in.
	UserSpaceOnUse
)

// SpreadMethod is the type for gradient spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a description of an SVG 2.0 gradient
type Gradient struct {
	Direction gradientDirecter
	Stops     []GradStop
	Bounds    Bounds
	Matrix    Matrix2D
	Spread    SpreadMethod
	Units     Units
}

// radial or linear
type gradientDirecter interface {
	isRadial() bool
}

// Linear is a linear gradient direction: x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// Radial is a radial gradient direction: cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) isRadial() bool { return true }

// readPaintURL resolves a url(#id) reference to a gradient or a
// pattern. It returns false if `v` is not a url, letting the caller
// fall back to plain color parsing. A url referencing an unknown id
// resolves to a nil paint (nothing is drawn), not an error.
func (c *iconCursor) readPaintURL(v string, defaultPaint Pattern) (Pattern, bool) {
	if !strings.HasPrefix(v, "url(") || !strings.HasSuffix(v, ")") {
		return defaultPaint, false
	}
	urlStr := strings.TrimSpace(v[4 : len(v)-1])
	if !strings.HasPrefix(urlStr, "#") {
		return nil, true
	}
	id := urlStr[1:]
	if grad, ok := c.icon.grads[id]; ok {
		return *grad, true
	}
	if pat, ok := c.icon.patterns[id]; ok {
		return pat, true
	}
	return nil, true
}

// readGradAttr reads the gradient attributes shared by linear and
// radial gradients.
func (c *iconCursor) readGradAttr(attr xml.Attr) (err error) {
	switch attr.Name.Local {
	case "gradientTransform":
		c.grad.Matrix, err = c.parseTransform(attr.Value)
	case "gradientUnits":
		switch strings.TrimSpace(attr.Value) {
		case "userSpaceOnUse":
			c.grad.Units = UserSpaceOnUse
		case "objectBoundingBox":
			c.grad.Units = ObjectBoundingBox
		}
	case "spreadMethod":
		switch strings.TrimSpace(attr.Value) {
		case "pad":
			c.grad.Spread = PadSpread
		case "reflect":
			c.grad.Spread = ReflectSpread
		case "repeat":
			c.grad.Spread = RepeatSpread
		}
	}
	return nil
}
