package fxlabel

import (
	"math"

	"github.com/gogpu/fxlabel/internal/blend"
	"github.com/gogpu/fxlabel/internal/raster"
	"github.com/gogpu/fxlabel/internal/stroke"
)

// Composite paints g with the effects in e and returns the finished image.
//
// The canvas covers the text box and all ink, grown by half the widest
// stroke plus one pixel for antialiasing. Layers are painted back to front:
//
//  1. strokes, widest first regardless of declaration order, centered on
//     the glyph outlines with round joins;
//  2. the fill: each glyph's own color, or the gradient confined to the
//     glyphs;
//  3. inner shadows in order, each with its blend mode, confined to the
//     glyph fill mask.
//
// Empty geometry gives an empty image. Composite is pure; it returns the
// validation error of e if e is invalid.
func Composite(g GlyphGeometry, e EffectStack) (*Image, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if g.IsEmpty() {
		return newImage(0, 0, Point{}), nil
	}

	glyphs := make([][]raster.Contour, len(g.Glyphs))
	var all []raster.Contour
	for i, gs := range g.Glyphs {
		glyphs[i] = gs.Path.contours()
		all = append(all, glyphs[i]...)
	}

	area := g.Bounds
	if minX, minY, maxX, maxY, ok := raster.Bounds(all); ok {
		area = area.Union(Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY})
	}
	area = area.Inset(-(e.MaxStrokeWidth()/2 + 1))
	x0, y0 := math.Floor(area.MinX), math.Floor(area.MinY)
	width := int(math.Ceil(area.MaxX) - x0)
	height := int(math.Ceil(area.MaxY) - y0)
	origin := raster.Point{X: x0, Y: y0}

	canvas := newImage(width, height, Pt(-x0, -y0))
	log := Logger()
	log.Debug("composite canvas", "width", width, "height", height,
		"glyphs", len(g.Glyphs), "strokes", len(e.StrokeWidths), "shadows", len(e.InnerShadows))

	over := blend.Lookup(blend.SourceOver)

	for _, s := range e.PaintOrder() {
		if s.Width <= 0 || s.Color.A <= 0 {
			continue
		}
		style := stroke.DefaultStyle()
		style.Width = s.Width
		ex := stroke.NewExpander(style)
		cov := raster.Fill(ex.Expand(all), width, height, origin)
		r, gg, b, a := s.Color.premul8()
		canvas.paintMask(cov.Pix, r, gg, b, a, over)
	}

	fill := maskFromAlpha(raster.Fill(all, width, height, origin))

	if grad, ok := e.Gradient(); ok {
		shade := grad.shader(g.Bounds)
		canvas.paintFunc(fill.Data(), func(x, y int) (uint8, uint8, uint8, uint8) {
			p := Pt(float64(x)+0.5+x0, float64(y)+0.5+y0)
			return shade(p).premul8()
		}, over)
	} else {
		for _, run := range colorRuns(g.Glyphs, glyphs) {
			cov := raster.Fill(run.contours, width, height, origin)
			r, gg, b, a := run.color.premul8()
			canvas.paintMask(cov.Pix, r, gg, b, a, over)
		}
	}

	for i, layer := range e.ShadowLayers() {
		shadow := MakeInnerShadow(fill, layer.Shadow)
		canvas.blendLayer(shadow, fill.Data(), layer.BlendMode.op())
		log.Debug("inner shadow", "index", i, "mode", layer.BlendMode.String())
	}

	return canvas, nil
}

// colorRun groups the contours of glyphs sharing a fill color.
type colorRun struct {
	color    RGBA
	contours []raster.Contour
}

// colorRuns groups glyph contours by color, in order of first use. Glyphs
// of one color never overlap visibly, so one fill per color is enough.
func colorRuns(shapes []GlyphShape, contours [][]raster.Contour) []colorRun {
	var runs []colorRun
	index := make(map[RGBA]int)
	for i, gs := range shapes {
		j, ok := index[gs.Color]
		if !ok {
			j = len(runs)
			index[gs.Color] = j
			runs = append(runs, colorRun{color: gs.Color})
		}
		runs[j].contours = append(runs[j].contours, contours[i]...)
	}
	return runs
}
