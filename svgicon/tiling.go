package svgicon

import "math"

// Computes the tiling geometry of a pattern fill:
// tile size, first tile offset, grid dimensions and the
// transform mapping the tile content into each cell.

// Tile is one cell of a pattern grid.
type Tile struct {
	Row, Col int
	// Clip is the cell rectangle. The transformed content
	// is cropped to it, so overflowing content never bleeds
	// into the neighbouring cells.
	Clip Bounds
	// Transform maps the content coordinates into the cell.
	Transform Matrix2D
}

// PatternFill is the rendering plan for one shape filled by a
// pattern: the grid of tiles, the content to repeat in each of
// them, and the shape whose filled region masks the whole grid.
type PatternFill struct {
	Shape   *SvgPath  // masks the grid, not painted itself
	Content []SvgPath // resolved tile content, shared by all tiles
	Tiles   []Tile
	// Transform is the composed transform of the shape. The tile
	// clips and transforms are expressed in its output space.
	Transform Matrix2D
}

// Fill computes the rendering plan for `shape`, drawn under the
// transform `t`. The boolean is false when the pattern paints
// nothing (degenerate tile, empty content or empty shape),
// which is never an error.
func (p *TilePattern) Fill(shape *SvgPath, t Matrix2D) (PatternFill, bool) {
	content := p.ResolvedNodes()
	if len(content) == 0 {
		return PatternFill{}, false
	}
	bounds := shape.Path.Extent(t)
	if bounds.W <= 0 || bounds.H <= 0 {
		return PatternFill{}, false
	}
	ts := p.tileSize(bounds)
	if ts.W <= 0 || ts.H <= 0 {
		return PatternFill{}, false
	}
	start := p.startOffset(bounds, ts)
	cols := tileCount(bounds.W-start.X, ts.W)
	rows := tileCount(bounds.H-start.Y, ts.H)

	base := p.contentTransform(bounds, ts)
	tiles := make([]Tile, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			ox := bounds.X + start.X + float64(col)*ts.W
			oy := bounds.Y + start.Y + float64(row)*ts.H
			tiles = append(tiles, Tile{
				Row: row, Col: col,
				Clip:      Bounds{X: ox, Y: oy, W: ts.W, H: ts.H},
				Transform: Identity.Translate(ox, oy).Mult(base),
			})
		}
	}
	return PatternFill{Shape: shape, Content: content, Tiles: tiles, Transform: t}, true
}

// tileSize returns the dimension of one cell, resolving
// bounding box fractions against `bounds`.
func (p *TilePattern) tileSize(bounds Bounds) Size {
	if p.Units == UserSpaceOnUse {
		return p.Size
	}
	return Size{W: p.Size.W * bounds.W, H: p.Size.H * bounds.H}
}

// relativeOrigin returns the pattern origin expressed relative
// to the origin of `bounds`, before any grid alignment.
func (p *TilePattern) relativeOrigin(bounds Bounds) Point {
	if p.Units == UserSpaceOnUse {
		return Point{X: p.Origin.X - bounds.X, Y: p.Origin.Y - bounds.Y}
	}
	return Point{X: p.Origin.X * bounds.W, Y: p.Origin.Y * bounds.H}
}

// startOffset returns the position of the first cell,
// relative to the origin of `bounds`. Both components are <= 0,
// so the grid always covers the leading edges of the bounds.
func (p *TilePattern) startOffset(bounds Bounds, ts Size) Point {
	if p.Units == UserSpaceOnUse {
		// phase locked on the absolute grid anchored at Origin,
		// so that adjacent shapes sharing a pattern tile seamlessly
		return Point{
			X: gridStart(bounds.X, p.Origin.X, ts.W),
			Y: gridStart(bounds.Y, p.Origin.Y, ts.H),
		}
	}
	rel := p.relativeOrigin(bounds)
	return Point{
		X: normalizedStart(rel.X, ts.W),
		Y: normalizedStart(rel.Y, ts.H),
	}
}

// gridStart returns the offset, relative to frameMin, of the last
// line at or before frameMin of the grid with step `tile` anchored
// at `origin`.
func gridStart(frameMin, origin, tile float64) float64 {
	return math.Floor((frameMin-origin)/tile)*tile + origin - frameMin
}

// normalizedStart reduces v modulo `tile` into the range (-tile, 0].
func normalizedStart(v, tile float64) float64 {
	r := math.Mod(v, tile)
	if r > 0 {
		r -= tile
	}
	return r
}

// tileCount returns the number of cells of dimension `tile` needed
// to cover `length`: at least one, or zero for a degenerate tile.
func tileCount(length, tile float64) int {
	if tile <= 0 {
		return 0
	}
	if n := int(math.Ceil(length / tile)); n > 1 {
		return n
	}
	return 1
}

// contentTransform maps the content coordinates onto one cell
// anchored at the origin. The steps compose in a fixed order:
// move to the view box origin, scale the view box onto the cell,
// scale by the bounds dimensions when the content units are
// relative, and finally the explicit pattern transform.
func (p *TilePattern) contentTransform(bounds Bounds, ts Size) Matrix2D {
	m := Identity
	if vb := p.ViewBox; vb != nil && vb.W > 0 && vb.H > 0 && ts.W > 0 && ts.H > 0 {
		m = Identity.Scale(ts.W/vb.W, ts.H/vb.H).Translate(-vb.X, -vb.Y)
	}
	if p.ContentUnits == ObjectBoundingBox {
		m = Identity.Scale(bounds.W, bounds.H).Mult(m)
	}
	return p.Matrix.Mult(m)
}
