package svgicon

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatrixTransform(t *testing.T) {
	m := Identity.Translate(10, 20).Scale(2, 3)
	// scale applies first, then the translation
	x, y := m.Transform(1, 1)
	if diff := cmp.Diff([]float64{12, 23}, []float64{x, y}, approx); diff != "" {
		t.Errorf("compose: %s", diff)
	}
}

func TestMatrixMultOrder(t *testing.T) {
	a := Identity.Translate(5, 0)
	b := Identity.Scale(2, 2)
	// a.Mult(b) applies b first
	x, y := a.Mult(b).Transform(1, 1)
	if diff := cmp.Diff([]float64{7, 2}, []float64{x, y}, approx); diff != "" {
		t.Errorf("a.Mult(b): %s", diff)
	}
	x, y = b.Mult(a).Transform(1, 1)
	if diff := cmp.Diff([]float64{12, 2}, []float64{x, y}, approx); diff != "" {
		t.Errorf("b.Mult(a): %s", diff)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Identity.Rotate(math.Pi / 2)
	x, y := m.Transform(1, 0)
	if diff := cmp.Diff([]float64{0, 1}, []float64{x, y}, approx); diff != "" {
		t.Errorf("quarter turn: %s", diff)
	}
}

func TestParseTransformAttr(t *testing.T) {
	c := &iconCursor{styleStack: []PathStyle{DefaultStyle}}
	for _, test := range []struct {
		value    string
		x, y     float64
		expected [2]float64
	}{
		{"translate(10, 5)", 1, 1, [2]float64{11, 6}},
		{"scale(2)", 3, 4, [2]float64{6, 8}},
		{"scale(2, 3)", 3, 4, [2]float64{6, 12}},
		{"matrix(1, 0, 0, 1, 7, 8)", 0, 0, [2]float64{7, 8}},
		{"translate(10, 0) scale(2, 2)", 1, 1, [2]float64{12, 2}},
	} {
		m, err := c.parseTransform(test.value)
		if err != nil {
			t.Fatalf("%s: %s", test.value, err)
		}
		x, y := m.Transform(test.x, test.y)
		if diff := cmp.Diff(test.expected[:], []float64{x, y}, approx); diff != "" {
			t.Errorf("%s: %s", test.value, diff)
		}
	}
}
