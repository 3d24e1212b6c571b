package svgicon

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"
)

// pathCursor accumulates the state needed to compile
// the `d` attribute of a path element, and the point
// lists of the other shape elements.
type pathCursor struct {
	path                   Path
	points                 []float64
	placeX, placeY         float64
	curX, curY             float64 // offset set by the use element
	cntlPtX, cntlPtY       float64 // reflection control point for S and T
	pathStartX, pathStartY float64
	lastKey                byte
	inPath                 bool
	errorMode              ErrorMode
}

// ErrorMode determines how the parser reacts to
// unsupported elements or attributes.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported content silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unsupported content.
	WarnErrorMode
	// StrictErrorMode aborts parsing on unsupported content.
	StrictErrorMode
)

var (
	errParamMismatch  = errors.New("param mismatch")
	errCommandUnknown = errors.New("unknown command")
	errZeroLengthID   = errors.New("zero length id")
)

func (c *pathCursor) handleError(format string, args ...interface{}) error {
	switch c.errorMode {
	case StrictErrorMode:
		return fmt.Errorf(format, args...)
	case WarnErrorMode:
		log.Printf(format, args...)
	}
	return nil
}

// unitSuffixes are suffixes sometimes applied to the width and height attributes
// of the svg element.
var unitSuffixes = []string{"cm", "mm", "px", "pt"}

// trimSuffixes removes unitSuffixes from any number that is not just numeric
func trimSuffixes(a string) (b string) {
	if a == "" || (a[len(a)-1] >= '0' && a[len(a)-1] <= '9') {
		return a
	}
	b = a
	for _, v := range unitSuffixes {
		b = strings.TrimSuffix(b, v)
	}
	return
}

// parseFloat is a helper function that strips unit suffixes
// before passing to strconv.ParseFloat
func parseFloat(s string, bitSize int) (float64, error) {
	val := trimSuffixes(strings.TrimSpace(s))
	return strconv.ParseFloat(val, bitSize)
}

// getPoints reads a set of floating point values from the SVG format number string,
// and stores them in the pathCursor points slice.
func (c *pathCursor) getPoints(dataPoints string) error {
	lastIndex := -1
	c.points = c.points[:0]
	lr := ' '
	for i, r := range dataPoints {
		if !unicode.IsNumber(r) && r != '.' && !(r == '-' && lr == 'e') && r != 'e' {
			if lastIndex != -1 {
				value, err := strconv.ParseFloat(dataPoints[lastIndex:i], 64)
				if err != nil {
					return err
				}
				c.points = append(c.points, value)
			}
			if r == '-' {
				lastIndex = i
			} else {
				lastIndex = -1
			}
		} else if lastIndex == -1 {
			lastIndex = i
		}
		lr = r
	}
	if lastIndex != -1 && lastIndex != len(dataPoints) {
		value, err := strconv.ParseFloat(dataPoints[lastIndex:], 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, value)
	}
	return nil
}

// reflectControlQuad computes the reflection of the last control point
// about the current point, for the T command.
func (c *pathCursor) reflectControlQuad() {
	switch c.lastKey {
	case 'q', 'Q', 'T', 't':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

// reflectControlCube computes the reflection of the last control point
// about the current point, for the S command.
func (c *pathCursor) reflectControlCube() {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		c.cntlPtX, c.cntlPtY = 2*c.placeX-c.cntlPtX, 2*c.placeY-c.cntlPtY
	default:
		c.cntlPtX, c.cntlPtY = c.placeX, c.placeY
	}
}

func (c *pathCursor) pathStart(x, y float64) {
	c.path.Start(toFixedP(x, y))
	c.placeX, c.placeY = x, y
	c.pathStartX, c.pathStartY = x, y
	c.inPath = true
}

func (c *pathCursor) pathLine(x, y float64) {
	c.path.Line(toFixedP(x, y))
	c.placeX, c.placeY = x, y
}

// compilePath translates the svgPath description string into a path.
// All valid SVG 2.0 path commands are interpreted.
func (c *pathCursor) compilePath(svgPath string) error {
	c.placeX, c.placeY = 0, 0
	c.pathStartX, c.pathStartY = 0, 0
	c.lastKey = ' '
	c.inPath = false
	lastIndex := -1
	for i, v := range svgPath {
		// a letter starts a new command, except the exponent in numbers
		if unicode.IsLetter(v) && v != 'e' && v != 'E' {
			if lastIndex != -1 {
				if err := c.addSeg(svgPath[lastIndex:i]); err != nil {
					return err
				}
			}
			lastIndex = i
		}
	}
	if lastIndex != -1 {
		if err := c.addSeg(svgPath[lastIndex:]); err != nil {
			return err
		}
	}
	return nil
}

// addSeg decodes an SVG segment string into equivalent path operations.
func (c *pathCursor) addSeg(segString string) error {
	if err := c.getPoints(segString[1:]); err != nil {
		return err
	}
	l := len(c.points)
	k := segString[0]
	rel := k >= 'a' && k <= 'z'
	switch k {
	case 'z', 'Z':
		if l != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Stop(true)
			c.placeX = c.pathStartX
			c.placeY = c.pathStartY
			c.inPath = false
		}
	case 'm', 'M':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			if i == 0 {
				c.pathStart(x, y)
			} else {
				c.pathLine(x, y)
			}
		}
	case 'l', 'L':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.pathLine(x, y)
		}
	case 'h', 'H':
		if l == 0 {
			return errParamMismatch
		}
		for _, x := range c.points {
			if rel {
				x += c.placeX
			}
			c.pathLine(x, c.placeY)
		}
	case 'v', 'V':
		if l == 0 {
			return errParamMismatch
		}
		for _, y := range c.points {
			if rel {
				y += c.placeY
			}
			c.pathLine(c.placeX, y)
		}
	case 'c', 'C':
		if l == 0 || l%6 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 6 {
			x1, y1 := c.points[i], c.points[i+1]
			x2, y2 := c.points[i+2], c.points[i+3]
			x, y := c.points[i+4], c.points[i+5]
			if rel {
				x1 += c.placeX
				y1 += c.placeY
				x2 += c.placeX
				y2 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.path.CubeBezier(toFixedP(x1, y1), toFixedP(x2, y2), toFixedP(x, y))
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 's', 'S':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			x2, y2 := c.points[i], c.points[i+1]
			x, y := c.points[i+2], c.points[i+3]
			if rel {
				x2 += c.placeX
				y2 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.reflectControlCube()
			c.path.CubeBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(x2, y2), toFixedP(x, y))
			c.cntlPtX, c.cntlPtY = x2, y2
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'q', 'Q':
		if l == 0 || l%4 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 4 {
			x1, y1 := c.points[i], c.points[i+1]
			x, y := c.points[i+2], c.points[i+3]
			if rel {
				x1 += c.placeX
				y1 += c.placeY
				x += c.placeX
				y += c.placeY
			}
			c.path.QuadBezier(toFixedP(x1, y1), toFixedP(x, y))
			c.cntlPtX, c.cntlPtY = x1, y1
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 't', 'T':
		if l == 0 || l%2 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 2 {
			x, y := c.points[i], c.points[i+1]
			if rel {
				x += c.placeX
				y += c.placeY
			}
			c.reflectControlQuad()
			c.path.QuadBezier(toFixedP(c.cntlPtX, c.cntlPtY), toFixedP(x, y))
			c.placeX, c.placeY = x, y
			c.lastKey = k
		}
	case 'a', 'A':
		if l == 0 || l%7 != 0 {
			return errParamMismatch
		}
		for i := 0; i < l; i += 7 {
			seg := c.points[i : i+7]
			if rel {
				seg[5] += c.placeX
				seg[6] += c.placeY
			}
			c.addArcFromSeg(seg)
		}
	default:
		return errCommandUnknown
	}
	if k != 'c' && k != 'C' && k != 's' && k != 'S' && k != 'q' && k != 'Q' && k != 't' && k != 'T' {
		c.lastKey = k
	}
	return nil
}

// addArcFromSeg decodes an A command segment:
// rx, ry, x-axis-rotation, large-arc-flag, sweep-flag, x, y
// with x and y already made absolute.
func (c *pathCursor) addArcFromSeg(seg []float64) {
	rx, ry := seg[0], seg[1]
	if rx == 0 || ry == 0 {
		// a degenerate radius collapses the arc to a line
		c.pathLine(seg[5], seg[6])
		return
	}
	sweep := seg[4] != 0
	smallArc := seg[3] == 0
	cx, cy := findEllipseCenter(&rx, &ry, seg[2]*deg2rad, c.placeX, c.placeY, seg[5], seg[6], sweep, smallArc)
	points := []float64{rx, ry, seg[2], seg[3], seg[4], seg[5], seg[6]}
	c.placeX, c.placeY = c.path.addArc(points, cx, cy, c.placeX, c.placeY)
}
