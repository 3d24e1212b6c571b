package svgraster

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/benoitkugler/svgpattern/svgicon"
)

func toPngBytes(t *testing.T, m image.Image) []byte {
	t.Helper()
	var b bytes.Buffer
	if err := png.Encode(&b, m); err != nil {
		t.Fatalf("can't encode rasterized image: %s", err)
	}
	return b.Bytes()
}

func TestRasterPlainFill(t *testing.T) {
	img, err := RasterSVGIconToImage(strings.NewReader(`<svg width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">
		<rect width="10" height="10" fill="#ff0000"/>
	</svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 20, 20) {
		t.Fatalf("unexpected image size: %v", img.Bounds())
	}
	if c := img.RGBAAt(5, 5); c.R < 200 || c.A < 200 {
		t.Errorf("inside the rect should be red, got %v", c)
	}
	if c := img.RGBAAt(15, 15); c.A != 0 {
		t.Errorf("outside the rect should be transparent, got %v", c)
	}
	if b := toPngBytes(t, img); len(b) == 0 {
		t.Error("empty png output")
	}
}

func TestRasterPatternFill(t *testing.T) {
	// full red tiles: the filled shape is uniformly red,
	// the rest of the canvas stays transparent
	img, err := RasterSVGIconToImage(strings.NewReader(`<svg width="50" height="50" viewBox="0 0 50 50" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" width="10" height="10" patternUnits="userSpaceOnUse">
			<rect width="10" height="10" fill="#ff0000"/>
		</pattern>
		<path d="M0 0 H30 V30 H0 Z" fill="url(#p)"/>
	</svg>`))
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{5, 5}, {15, 15}, {25, 5}, {5, 25}} {
		if c := img.RGBAAt(pos[0], pos[1]); c.R < 200 || c.A < 200 {
			t.Errorf("pixel %v should be red, got %v", pos, c)
		}
	}
	if c := img.RGBAAt(40, 40); c.A != 0 {
		t.Errorf("outside the shape should be transparent, got %v", c)
	}
}

func TestRasterPatternClipsContent(t *testing.T) {
	// content overflowing the tile is cropped per cell, so a
	// rect larger than the tile cannot bleed over the whole shape
	img, err := RasterSVGIconToImage(strings.NewReader(`<svg width="50" height="50" viewBox="0 0 50 50" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" width="20" height="20" patternUnits="userSpaceOnUse">
			<rect width="5" height="40" fill="#0000ff"/>
		</pattern>
		<path d="M0 0 H40 V40 H0 Z" fill="url(#p)"/>
	</svg>`))
	if err != nil {
		t.Fatal(err)
	}
	if c := img.RGBAAt(2, 2); c.B < 200 || c.A < 200 {
		t.Errorf("tile content should be painted, got %v", c)
	}
	if c := img.RGBAAt(12, 12); c.A != 0 {
		t.Errorf("between tile rects should be transparent, got %v", c)
	}
}

func TestRasterDegeneratePattern(t *testing.T) {
	img, err := RasterSVGIconToImage(strings.NewReader(`<svg width="20" height="20" viewBox="0 0 20 20" xmlns="http://www.w3.org/2000/svg">
		<pattern id="p" width="0" height="10" patternUnits="userSpaceOnUse">
			<rect width="10" height="10" fill="#ff0000"/>
		</pattern>
		<rect width="20" height="20" fill="url(#p)"/>
	</svg>`))
	if err != nil {
		t.Fatal(err)
	}
	for _, pos := range [][2]int{{5, 5}, {15, 15}} {
		if c := img.RGBAAt(pos[0], pos[1]); c.A != 0 {
			t.Errorf("a degenerate pattern should paint nothing, got %v at %v", c, pos)
		}
	}
}

func TestRendererImplementsPatternDriver(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var d svgicon.Driver = NewRenderer(10, 10, img)
	if _, ok := d.(svgicon.PatternDriver); !ok {
		t.Error("the raster driver should support pattern fills")
	}
}
