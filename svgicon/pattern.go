package svgicon

import "sync"

// Implements the pattern paint server: a tile, defined once,
// repeated over the bounding box of the shapes it fills.

// Point is a position, in user space or in bounding box fractions
// depending on the enclosing units.
type Point struct{ X, Y float64 }

// Size is a (width, height) pair. Both components are >= 0.
type Size struct{ W, H float64 }

// TilePattern is the parsed form of a pattern element.
// It is resolved against the document it was declared in,
// and may be shared by several shapes.
type TilePattern struct {
	// Origin is the position of the first tile, interpreted in Units.
	Origin Point
	// Size is the dimension of one tile, interpreted in Units.
	// A zero width or height disables the pattern.
	Size Size
	// ViewBox, when not nil, maps the tile content onto the tile
	// rectangle. A degenerate view box (zero width or height)
	// disables the pattern.
	ViewBox *Bounds
	// Matrix is the additional patternTransform, applied after
	// the content placement.
	Matrix Matrix2D

	Units        Units // placement of Origin and Size, default to ObjectBoundingBox
	ContentUnits Units // scaling of the tile content, default to UserSpaceOnUse

	icon  *SvgIcon     // scope the pattern was declared in, not owned
	nodes []definition // raw content, parsed lazily

	once    sync.Once
	content []SvgPath
}

func newTilePattern(icon *SvgIcon) *TilePattern {
	return &TilePattern{
		Units:        ObjectBoundingBox,
		ContentUnits: UserSpaceOnUse,
		Matrix:       Identity,
		icon:         icon,
	}
}

// ResolvedNodes parses the pattern content and returns the
// resulting paths, in the tile own coordinate space.
// The resolution happens once: subsequent calls return the
// same slice, which must not be mutated.
// It is safe for concurrent use.
func (p *TilePattern) ResolvedNodes() []SvgPath {
	p.once.Do(p.resolve)
	return p.content
}

// resolve replays the captured child elements through the
// normal element readers, against an isolated scope sharing
// the document definitions. Children failing to parse are
// dropped, never aborting the whole pattern.
func (p *TilePattern) resolve() {
	scope := p.icon.childScope()
	if scope == nil {
		return
	}
	c := &iconCursor{styleStack: []PathStyle{DefaultStyle}, icon: scope}
	c.errorMode = IgnoreErrorMode
	for _, def := range p.nodes {
		if def.Tag == "endg" {
			c.popStyle()
			continue
		}
		if err := c.pushStyle(def.Attrs); err != nil {
			continue // style not pushed, nothing to pop
		}
		df, ok := drawFuncs[def.Tag]
		if !ok {
			c.popStyle()
			continue
		}
		if err := df(c, def.Attrs); err != nil {
			c.path = c.path[:0]
			if def.Tag != "g" {
				c.popStyle()
			}
			continue
		}
		if len(c.path) > 0 {
			pathCopy := append(Path{}, c.path...)
			scope.SVGPaths = append(scope.SVGPaths,
				SvgPath{Path: pathCopy, Style: c.styleStack[len(c.styleStack)-1]})
			c.path = c.path[:0]
		}
		if def.Tag != "g" {
			c.popStyle()
		}
	}
	p.content = scope.SVGPaths
}

func (c *iconCursor) popStyle() {
	if len(c.styleStack) > 1 {
		c.styleStack = c.styleStack[:len(c.styleStack)-1]
	}
}
