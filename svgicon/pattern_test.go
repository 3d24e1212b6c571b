package svgicon

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parsePattern(t *testing.T, doc string, id string) *TilePattern {
	t.Helper()
	icon, err := ReadIconStream(strings.NewReader(doc), WarnErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	pat, ok := icon.patterns[id]
	if !ok {
		t.Fatalf("pattern %s was not registered", id)
	}
	return pat
}

func TestPatternDefaults(t *testing.T) {
	pat := parsePattern(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p"><rect width="1" height="1" fill="red"/></pattern>
	</svg>`, "p")
	if pat.Units != ObjectBoundingBox {
		t.Errorf("patternUnits should default to objectBoundingBox, got %v", pat.Units)
	}
	if pat.ContentUnits != UserSpaceOnUse {
		t.Errorf("patternContentUnits should default to userSpaceOnUse, got %v", pat.ContentUnits)
	}
	if pat.ViewBox != nil {
		t.Errorf("viewBox should default to none, got %v", *pat.ViewBox)
	}
	if diff := cmp.Diff(Identity, pat.Matrix); diff != "" {
		t.Errorf("patternTransform should default to identity: %s", diff)
	}
	if pat.Origin != (Point{}) || pat.Size != (Size{}) {
		t.Errorf("origin and size should default to zero, got %v %v", pat.Origin, pat.Size)
	}
}

func TestPatternAttributes(t *testing.T) {
	pat := parsePattern(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" x="1" y="2" width="10" height="20"
			viewBox="0 0 4 8"
			patternUnits="userSpaceOnUse" patternContentUnits="objectBoundingBox"
			patternTransform="translate(3, 4)">
			<rect width="1" height="1" fill="red"/>
		</pattern>
	</svg>`, "p")
	if pat.Units != UserSpaceOnUse || pat.ContentUnits != ObjectBoundingBox {
		t.Errorf("units not honored: %v %v", pat.Units, pat.ContentUnits)
	}
	if diff := cmp.Diff(Point{X: 1, Y: 2}, pat.Origin, approx); diff != "" {
		t.Errorf("origin: %s", diff)
	}
	if diff := cmp.Diff(Size{W: 10, H: 20}, pat.Size, approx); diff != "" {
		t.Errorf("size: %s", diff)
	}
	if pat.ViewBox == nil {
		t.Fatal("expected a view box")
	}
	if diff := cmp.Diff(Bounds{X: 0, Y: 0, W: 4, H: 8}, *pat.ViewBox, approx); diff != "" {
		t.Errorf("view box: %s", diff)
	}
	if diff := cmp.Diff(Identity.Translate(3, 4), pat.Matrix, approx); diff != "" {
		t.Errorf("pattern transform: %s", diff)
	}
}

func TestPatternMalformedAttributes(t *testing.T) {
	// malformed values recover on the defaults, never aborting the parse
	pat := parsePattern(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" x="wat" width="-5" height="nope" patternUnits="bogus">
			<rect width="1" height="1" fill="red"/>
		</pattern>
	</svg>`, "p")
	if pat.Origin.X != 0 {
		t.Errorf("malformed x should default to 0, got %g", pat.Origin.X)
	}
	if pat.Size.W != 0 || pat.Size.H != 0 {
		t.Errorf("width and height should be clamped to 0, got %v", pat.Size)
	}
	if pat.Units != ObjectBoundingBox {
		t.Errorf("unknown units should keep the default, got %v", pat.Units)
	}
}

func TestPatternResolution(t *testing.T) {
	pat := parsePattern(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" width="4" height="4" patternUnits="userSpaceOnUse">
			<rect width="2" height="2" fill="red"/>
			<circle cx="3" cy="3" r="1" fill="#00ff00"/>
			<bogus element="true"/>
		</pattern>
	</svg>`, "p")
	nodes := pat.ResolvedNodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 resolved nodes, got %d", len(nodes))
	}
	// memoized: the exact same slice is returned
	again := pat.ResolvedNodes()
	if &nodes[0] != &again[0] {
		t.Error("resolution should happen only once")
	}
	red, ok := nodes[0].Style.FillerColor.(PlainColor)
	if !ok || red.R != 0xff || red.G != 0 || red.B != 0 {
		t.Errorf("first node fill: %v", nodes[0].Style.FillerColor)
	}
}

func TestPatternGroupedContent(t *testing.T) {
	pat := parsePattern(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" width="4" height="4" patternUnits="userSpaceOnUse">
			<g fill="blue">
				<rect width="2" height="2"/>
			</g>
			<rect x="2" y="2" width="2" height="2" fill="red"/>
		</pattern>
	</svg>`, "p")
	nodes := pat.ResolvedNodes()
	if len(nodes) != 2 {
		t.Fatalf("expected 2 resolved nodes, got %d", len(nodes))
	}
	blue, ok := nodes[0].Style.FillerColor.(PlainColor)
	if !ok || blue.B != 0xff {
		t.Errorf("group fill should apply to the rect: %v", nodes[0].Style.FillerColor)
	}
	red, ok := nodes[1].Style.FillerColor.(PlainColor)
	if !ok || red.R != 0xff {
		t.Errorf("group fill should not leak outside the group: %v", nodes[1].Style.FillerColor)
	}
}

func TestUnknownPaintURL(t *testing.T) {
	icon, err := ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<rect width="5" height="5" fill="url(#nothing)"/>
	</svg>`), WarnErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if len(icon.SVGPaths) != 1 {
		t.Fatalf("expected one path, got %d", len(icon.SVGPaths))
	}
	if c := icon.SVGPaths[0].Style.FillerColor; c != nil {
		t.Errorf("an unknown reference should paint nothing, got %v", c)
	}
}
