// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/benoitkugler/svgpattern/svgicon"
	"github.com/srwiley/rasterx"
)

var _ svgicon.PatternDriver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	dst           *image.RGBA // needed to compose pattern layers
	width, height int
}

// NewRenderer returns a renderer writing to `dst`.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, dst *image.RGBA) *Renderer {
	scanner := rasterx.NewScannerGV(width, height, dst, dst.Bounds())
	return &Renderer{
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
		dst:    dst, width: width, height: height,
	}
}

// RasterSVGIconToImage uses a ScannerGV instance to render the
// icon into an image and returns it
func RasterSVGIconToImage(icon io.Reader) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := int(parsedIcon.ViewBox.W), int(parsedIcon.ViewBox.H)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	renderer := NewRenderer(w, h, img)
	parsedIcon.Draw(renderer, 1.0)
	return img, nil
}

// filler adapts a rasterx.Filler to the color resolution
// expected by the svgicon draw pass.
type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c svgicon.Pattern, opacity float64) {
	setColorFromPattern(c, opacity, f.Filler.Scanner)
}

// stroker is the dashing counterpart of filler.
type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c svgicon.Pattern, opacity float64) {
	setColorFromPattern(c, opacity, s.Dasher.Scanner)
}

func (s stroker) SetStrokeOptions(options svgicon.StrokeOptions) {
	s.Dasher.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgicon.Filler, svgicon.Stroker) {
	var (
		f svgicon.Filler
		s svgicon.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// FillPattern renders the tile grid into a scratch layer,
// clipping each cell to its own rectangle, then composes the
// layer over the destination through the rasterized shape mask.
func (rd *Renderer) FillPattern(fill svgicon.PatternFill, opacity float64) {
	bounds := rd.dst.Bounds()

	// the shape itself is only a mask: its alpha channel
	// selects where the tiles show through
	mask := image.NewRGBA(bounds)
	maskScanner := rasterx.NewScannerGV(rd.width, rd.height, mask, bounds)
	maskFiller := rasterx.NewFiller(rd.width, rd.height, maskScanner)
	maskScanner.SetColor(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	maskFiller.SetWinding(fill.Shape.Style.UseNonZeroWinding)
	fill.Shape.Path.AddTo(filler{maskFiller}, fill.Transform)
	maskFiller.Stop(false)
	maskFiller.Draw()

	layer := image.NewRGBA(bounds)
	layerScanner := rasterx.NewScannerGV(rd.width, rd.height, layer, bounds)
	layerFiller := filler{rasterx.NewFiller(rd.width, rd.height, layerScanner)}
	layerDasher := stroker{rasterx.NewDasher(rd.width, rd.height, layerScanner)}
	for _, tile := range fill.Tiles {
		clip := outerRect(tile.Clip).Intersect(bounds)
		if clip.Empty() {
			continue
		}
		layerScanner.SetClip(clip)
		for i := range fill.Content {
			node := &fill.Content[i]
			node.FillTo(layerFiller, tile.Transform, opacity)
			node.StrokeTo(layerDasher, tile.Transform, opacity)
		}
	}
	layerScanner.SetClip(image.Rectangle{}) // disable clipping

	draw.DrawMask(rd.dst, bounds, layer, bounds.Min, mask, bounds.Min, draw.Over)
}

// outerRect returns the smallest integer rectangle containing b.
func outerRect(b svgicon.Bounds) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.X)), int(math.Floor(b.Y)),
		int(math.Ceil(b.X+b.W)), int(math.Ceil(b.Y+b.H)),
	)
}

func toRasterxGradient(grad svgicon.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgicon.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
		isRadial = false
	case svgicon.Radial:
		points[0], points[1], points[2], points[3], points[4], _ = dir[0], dir[1], dir[2], dir[3], dir[4], dir[5] // in rasterx fr is ignored
		isRadial = true
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i := range grad.Stops {
		stops[i] = rasterx.GradStop(grad.Stops[i])
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Bounds:   grad.Bounds,
		Matrix:   rasterx.Matrix2D(grad.Matrix),
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.GradientUnits(grad.Units),
		IsRadial: isRadial,
	}
}

// resolve the rasterx color of a paint.
// Tile patterns never reach this point: they are painted
// through FillPattern, and skipped inside tiles.
func setColorFromPattern(paint svgicon.Pattern, opacity float64, scanner rasterx.Scanner) {
	switch paint := paint.(type) {
	case svgicon.PlainColor:
		scanner.SetColor(rasterx.ApplyOpacity(paint, opacity))
	case svgicon.Gradient:
		if paint.Units == svgicon.ObjectBoundingBox {
			fRect := scanner.GetPathExtent()
			mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
			mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
			paint.Bounds.X, paint.Bounds.Y = mnx, mny
			paint.Bounds.W, paint.Bounds.H = mxx-mnx, mxy-mny
		}
		rasterxGradient := toRasterxGradient(paint)
		scanner.SetColor(rasterxGradient.GetColorFunction(opacity))
	}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgicon.Round:     rasterx.Round,
		svgicon.Bevel:     rasterx.Bevel,
		svgicon.Miter:     rasterx.Miter,
		svgicon.MiterClip: rasterx.MiterClip,
		svgicon.Arc:       rasterx.Arc,
		svgicon.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgicon.NilCap:       nil,
		svgicon.ButtCap:      rasterx.ButtCap,
		svgicon.SquareCap:    rasterx.SquareCap,
		svgicon.RoundCap:     rasterx.RoundCap,
		svgicon.CubicCap:     rasterx.CubicCap,
		svgicon.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgicon.NilGap:       nil,
		svgicon.FlatGap:      rasterx.FlatGap,
		svgicon.RoundGap:     rasterx.RoundGap,
		svgicon.CubicGap:     rasterx.CubicGap,
		svgicon.QuadraticGap: rasterx.QuadraticGap,
	}
)
