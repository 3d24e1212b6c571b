package svgicon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtentRect(t *testing.T) {
	var p Path
	p.addRect(2, 3, 12, 8, 0)
	got := p.Extent(Identity)
	if diff := cmp.Diff(Bounds{X: 2, Y: 3, W: 10, H: 5}, got, approx); diff != "" {
		t.Errorf("rect extent: %s", diff)
	}
}

func TestExtentTransformed(t *testing.T) {
	var p Path
	p.addRect(0, 0, 10, 10, 0)
	got := p.Extent(Identity.Translate(5, 5).Scale(2, 3))
	if diff := cmp.Diff(Bounds{X: 5, Y: 5, W: 20, H: 30}, got, approx); diff != "" {
		t.Errorf("transformed extent: %s", diff)
	}
}

func TestExtentCurve(t *testing.T) {
	// a symmetric cubic arch: maximum y at t = 1/2 is 3/4 of the
	// control points height
	var p Path
	p.Start(toFixedP(0, 0))
	p.CubeBezier(toFixedP(0, 4), toFixedP(8, 4), toFixedP(8, 0))
	got := p.Extent(Identity)
	if diff := cmp.Diff(Bounds{X: 0, Y: 0, W: 8, H: 3}, got, approx); diff != "" {
		t.Errorf("cubic extent: %s", diff)
	}
}

func TestExtentEmpty(t *testing.T) {
	var p Path
	got := p.Extent(Identity)
	if diff := cmp.Diff(Bounds{}, got); diff != "" {
		t.Errorf("empty path: %s", diff)
	}
}

func TestExtentQuad(t *testing.T) {
	// apex of a symmetric quadratic is half the control point height
	var p Path
	p.Start(toFixedP(0, 0))
	p.QuadBezier(toFixedP(5, 10), toFixedP(10, 0))
	got := p.Extent(Identity)
	if diff := cmp.Diff(Bounds{X: 0, Y: 0, W: 10, H: 5}, got, approx); diff != "" {
		t.Errorf("quadratic extent: %s", diff)
	}
}
