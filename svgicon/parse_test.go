package svgicon

import (
	"strings"
	"testing"
)

func parseIcon(t *testing.T, svg string) *SvgIcon {
	t.Helper()
	icon, err := ReadIconStream(strings.NewReader(svg), WarnErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	return icon
}

func TestParseShapes(t *testing.T) {
	icon := parseIcon(t, `<?xml version="1.0"?>
	<svg width="50" height="50" viewBox="0 0 50 50" xmlns="http://www.w3.org/2000/svg">
		<rect x="1" y="1" width="10" height="10" fill="#ff0000"/>
		<circle cx="25" cy="25" r="5" fill="green"/>
		<ellipse cx="40" cy="40" rx="5" ry="3"/>
		<line x1="0" y1="0" x2="10" y2="10" stroke="black"/>
		<polygon points="0,0 10,0 5,10"/>
		<path d="M20 20 L30 20 Q35 25 30 30 C25 35 20 35 20 30 Z"/>
	</svg>`)
	if (icon.ViewBox != Bounds{X: 0, Y: 0, W: 50, H: 50}) {
		t.Errorf("view box: %v", icon.ViewBox)
	}
	if len(icon.SVGPaths) != 6 {
		t.Errorf("expected 6 paths, got %d", len(icon.SVGPaths))
	}
	red, ok := icon.SVGPaths[0].Style.FillerColor.(PlainColor)
	if !ok || red.R != 0xff || red.G != 0 || red.B != 0 {
		t.Errorf("rect fill: %v", icon.SVGPaths[0].Style.FillerColor)
	}
}

func TestParseTitleAndDesc(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<title>a title</title>
		<desc>a description</desc>
		<rect width="5" height="5"/>
	</svg>`)
	if len(icon.Titles) != 1 || icon.Titles[0] != "a title" {
		t.Errorf("titles: %v", icon.Titles)
	}
	if len(icon.Descriptions) != 1 || icon.Descriptions[0] != "a description" {
		t.Errorf("descriptions: %v", icon.Descriptions)
	}
}

func TestParseUse(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">
		<defs>
			<rect id="unit" width="2" height="2" fill="red"/>
		</defs>
		<use href="#unit" x="5" y="5"/>
	</svg>`)
	if len(icon.SVGPaths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(icon.SVGPaths))
	}
	bounds := icon.SVGPaths[0].Path.Extent(Identity)
	if bounds.X != 5 || bounds.Y != 5 {
		t.Errorf("use offset not applied: %v", bounds)
	}
}

func TestParseGradients(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<linearGradient id="lg" x1="0" y1="0" x2="1" y2="0">
			<stop offset="0" stop-color="red"/>
			<stop offset="100%" stop-color="blue" stop-opacity="0.5"/>
		</linearGradient>
		<rect width="5" height="5" fill="url(#lg)"/>
	</svg>`)
	grad, ok := icon.SVGPaths[0].Style.FillerColor.(Gradient)
	if !ok {
		t.Fatalf("expected a gradient fill, got %v", icon.SVGPaths[0].Style.FillerColor)
	}
	if len(grad.Stops) != 2 {
		t.Fatalf("expected 2 stops, got %d", len(grad.Stops))
	}
	if grad.Stops[1].Offset != 1 || grad.Stops[1].Opacity != 0.5 {
		t.Errorf("second stop: %v", grad.Stops[1])
	}
}

func TestParseOpacityAndStroke(t *testing.T) {
	icon := parseIcon(t, `<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<rect width="5" height="5" fill="red" fill-opacity="0.25"
			stroke="blue" stroke-width="3" stroke-linejoin="round" stroke-linecap="round"/>
	</svg>`)
	style := icon.SVGPaths[0].Style
	if style.FillOpacity != 0.25 {
		t.Errorf("fill opacity: %g", style.FillOpacity)
	}
	if style.LineWidth != 3 {
		t.Errorf("stroke width: %g", style.LineWidth)
	}
	if style.Join.LineJoin != Round || style.Join.TrailLineCap != RoundCap {
		t.Errorf("stroke join options: %v", style.Join)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := ReadIconStream(strings.NewReader("not svg at all"), IgnoreErrorMode); err == nil {
		t.Error("expected an error on non xml input")
	}
	if _, err := ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10 10" xmlns="http://www.w3.org/2000/svg">
		<frob/>
	</svg>`), StrictErrorMode); err == nil {
		t.Error("expected an error on unsupported elements in strict mode")
	}
}
