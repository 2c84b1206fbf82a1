package fxlabel

import (
	"github.com/gogpu/fxlabel/internal/raster"
	"github.com/gogpu/fxlabel/text"
)

// ShapeProvider lays out attributed text into glyph outlines.
// maxWidth is the wrap width; 0 means no wrapping.
//
// Fit relies on the layout height never growing when every font size in s
// shrinks. text.Layouter satisfies this because its metrics are unhinted.
type ShapeProvider interface {
	Layout(s *text.AttributedString, maxWidth float64) (*text.Layout, error)
}

// DefaultShapeProvider returns the HarfBuzz based text.Layouter.
func DefaultShapeProvider() ShapeProvider {
	return text.NewLayouter()
}

// GlyphShape is one filled glyph outline and its fill color.
type GlyphShape struct {
	Path  *Path
	Color RGBA
}

// GlyphGeometry is what the compositor paints: glyph outlines in layout
// space and the text box they were laid out in.
type GlyphGeometry struct {
	// Bounds is the text box: the union of the line boxes, as wide as the
	// wrap width when that is larger than the widest line.
	Bounds Rect
	Glyphs []GlyphShape
}

// IsEmpty reports whether there is nothing to paint.
func (g GlyphGeometry) IsEmpty() bool {
	return len(g.Glyphs) == 0
}

// InkBounds returns the bounding box of all glyph outlines.
func (g GlyphGeometry) InkBounds() Rect {
	var r Rect
	for _, gs := range g.Glyphs {
		r = r.Union(gs.Path.Bounds())
	}
	return r
}

// contours flattens every glyph into one set of contours.
func (g GlyphGeometry) contours() []raster.Contour {
	var out []raster.Contour
	for _, gs := range g.Glyphs {
		out = append(out, gs.Path.contours()...)
	}
	return out
}

// GeometryFromLayout converts a layout into paintable geometry. Glyphs
// without an outline, such as spaces, are skipped.
func GeometryFromLayout(l *text.Layout) GlyphGeometry {
	if l.IsEmpty() {
		return GlyphGeometry{}
	}

	g := GlyphGeometry{
		Bounds: Rect{MaxX: l.BoxWidth(), MaxY: l.Height},
	}
	for i := range l.Lines {
		for _, glyph := range l.Lines[i].Glyphs {
			if len(glyph.Outline) == 0 {
				continue
			}
			g.Glyphs = append(g.Glyphs, GlyphShape{
				Path:  outlinePath(glyph.Outline),
				Color: FromColor(glyph.Color),
			})
		}
	}
	return g
}

// outlinePath converts glyph segments into a Path, closing every contour.
func outlinePath(segs []text.Segment) *Path {
	p := NewPath()
	open := false
	for _, s := range segs {
		switch s.Op {
		case text.SegmentMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(s.Args[0].X, s.Args[0].Y)
			open = true
		case text.SegmentLineTo:
			p.LineTo(s.Args[0].X, s.Args[0].Y)
		case text.SegmentQuadTo:
			p.QuadraticTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y)
		case text.SegmentCubeTo:
			p.CubicTo(s.Args[0].X, s.Args[0].Y, s.Args[1].X, s.Args[1].Y, s.Args[2].X, s.Args[2].Y)
		}
	}
	if open {
		p.Close()
	}
	return p
}
