package svgicon

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D is an affine transform:
// the point (x, y) is mapped to (A*x + C*y + E, B*x + D*y + F).
// The builder methods append the new operation, so that in a chain
// like Identity.Translate(tx, ty).Scale(sx, sy) the scaling is
// applied to a point first, then the translation.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a * b, the transform applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate appends a translation by x, y.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale appends a scaling by x, y.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate appends a rotation by `theta` radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX appends an x axis skew by `theta` radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY appends an y axis skew by `theta` radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Transform maps the point x, y through the matrix.
func (a Matrix2D) Transform(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

func (a Matrix2D) transformFixed(p fixed.Point26_6) fixed.Point26_6 {
	x, y := a.Transform(float64(p.X)/64, float64(p.Y)/64)
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (a Matrix2D) trMove(op MoveTo) fixed.Point26_6 {
	return a.transformFixed(fixed.Point26_6(op))
}

func (a Matrix2D) trLine(op LineTo) fixed.Point26_6 {
	return a.transformFixed(fixed.Point26_6(op))
}

func (a Matrix2D) trQuad(op QuadTo) (b, c fixed.Point26_6) {
	return a.transformFixed(op[0]), a.transformFixed(op[1])
}

func (a Matrix2D) trCubic(op CubicTo) (b, c, d fixed.Point26_6) {
	return a.transformFixed(op[0]), a.transformFixed(op[1]), a.transformFixed(op[2])
}
