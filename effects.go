package fxlabel

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Stroke is one outline stroke, centered on the glyph outlines.
type Stroke struct {
	Width float64
	Color RGBA
}

// InnerShadowLayer is an inner shadow with its blend mode.
type InnerShadowLayer struct {
	Shadow    Shadow
	BlendMode BlendMode
}

// EffectStack describes the visual effects of a label.
//
// Strokes are two parallel sequences that must have the same length.
// GradientColors is either empty (solid glyph colors) or holds at least two
// colors. InnerShadowBlendModes pairs with InnerShadows by index; shadows
// without a mode use BlendNormal.
//
// The zero value is a valid stack with no effects. Use GradientStart and
// GradientEnd only together with GradientColors; the zero vector means the
// default top-to-bottom direction.
type EffectStack struct {
	StrokeWidths []float64
	StrokeColors []RGBA

	GradientColors []RGBA
	GradientStart  Point
	GradientEnd    Point

	InnerShadows          []Shadow
	InnerShadowBlendModes []BlendMode
}

// Validate checks the invariants listed on EffectStack.
func (e *EffectStack) Validate() error {
	if len(e.StrokeWidths) != len(e.StrokeColors) {
		return &StrokeMismatchError{Widths: len(e.StrokeWidths), Colors: len(e.StrokeColors)}
	}
	for i, w := range e.StrokeWidths {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("stroke %d: %w: %v", i, ErrInvalidStrokeWidth, w)
		}
	}
	if n := len(e.GradientColors); n == 1 {
		return fmt.Errorf("%w: got %d", ErrGradientColors, n)
	}
	if !finite(e.GradientStart.X) || !finite(e.GradientStart.Y) ||
		!finite(e.GradientEnd.X) || !finite(e.GradientEnd.Y) {
		return ErrInvalidGradientPoint
	}
	for i, m := range e.InnerShadowBlendModes {
		if !m.Valid() {
			return fmt.Errorf("inner shadow %d: %w: %d", i, ErrUnsupportedBlendMode, uint8(m))
		}
	}
	for i, s := range e.InnerShadows {
		if err := s.validate(); err != nil {
			return fmt.Errorf("inner shadow %d: %w", i, err)
		}
	}
	return nil
}

// Strokes pairs widths with colors in declaration order. Extra entries of
// the longer sequence are ignored; Validate rejects such stacks.
func (e *EffectStack) Strokes() []Stroke {
	n := min(len(e.StrokeWidths), len(e.StrokeColors))
	out := make([]Stroke, n)
	for i := range n {
		out[i] = Stroke{Width: e.StrokeWidths[i], Color: e.StrokeColors[i]}
	}
	return out
}

// PaintOrder returns the strokes widest first. Strokes of equal width keep
// their declaration order.
func (e *EffectStack) PaintOrder() []Stroke {
	strokes := e.Strokes()
	sort.SliceStable(strokes, func(i, j int) bool {
		return strokes[i].Width > strokes[j].Width
	})
	return strokes
}

// MaxStrokeWidth returns the widest stroke, or 0.
func (e *EffectStack) MaxStrokeWidth() float64 {
	w := 0.0
	for _, s := range e.Strokes() {
		w = max(w, s.Width)
	}
	return w
}

// Gradient returns the fill gradient, or false when the glyphs keep their
// own colors. An unset vector resolves to the default direction.
func (e *EffectStack) Gradient() (Gradient, bool) {
	if len(e.GradientColors) < 2 {
		return Gradient{}, false
	}
	start, end := e.GradientStart, e.GradientEnd
	if start == (Point{}) && end == (Point{}) {
		start, end = DefaultGradientStart, DefaultGradientEnd
	}
	return Gradient{Colors: slices.Clone(e.GradientColors), Start: start, End: end}, true
}

// ShadowLayers pairs every inner shadow with its blend mode in paint order.
func (e *EffectStack) ShadowLayers() []InnerShadowLayer {
	out := make([]InnerShadowLayer, len(e.InnerShadows))
	for i, s := range e.InnerShadows {
		mode := BlendNormal
		if i < len(e.InnerShadowBlendModes) {
			mode = e.InnerShadowBlendModes[i]
		}
		out[i] = InnerShadowLayer{Shadow: s, BlendMode: mode}
	}
	return out
}

// StrokeWidth returns the first stroke width, or 0.
func (e *EffectStack) StrokeWidth() float64 {
	if len(e.StrokeWidths) == 0 {
		return 0
	}
	return e.StrokeWidths[0]
}

// StrokeColor returns the first stroke color, or NoColor.
func (e *EffectStack) StrokeColor() RGBA {
	if len(e.StrokeColors) == 0 {
		return NoColor
	}
	return e.StrokeColors[0]
}

// SetStrokeWidth replaces the strokes with a single stroke of width w,
// keeping the first color or Black.
func (e *EffectStack) SetStrokeWidth(w float64) {
	c := Black
	if len(e.StrokeColors) > 0 {
		c = e.StrokeColors[0]
	}
	e.StrokeWidths = []float64{w}
	e.StrokeColors = []RGBA{c}
}

// SetStrokeColor replaces the strokes with a single stroke of color c,
// keeping the first width or 0.
func (e *EffectStack) SetStrokeColor(c RGBA) {
	w := 0.0
	if len(e.StrokeWidths) > 0 {
		w = e.StrokeWidths[0]
	}
	e.StrokeWidths = []float64{w}
	e.StrokeColors = []RGBA{c}
}

// GradientStartColor returns the first gradient color, or NoColor.
func (e *EffectStack) GradientStartColor() RGBA {
	if len(e.GradientColors) == 0 {
		return NoColor
	}
	return e.GradientColors[0]
}

// GradientEndColor returns the last gradient color, or NoColor.
func (e *EffectStack) GradientEndColor() RGBA {
	if len(e.GradientColors) == 0 {
		return NoColor
	}
	return e.GradientColors[len(e.GradientColors)-1]
}

// SetGradientStartColor writes the first gradient color. An empty gradient
// becomes [c, c].
func (e *EffectStack) SetGradientStartColor(c RGBA) {
	if len(e.GradientColors) < 2 {
		e.GradientColors = []RGBA{c, c}
		return
	}
	e.GradientColors = slices.Clone(e.GradientColors)
	e.GradientColors[0] = c
}

// SetGradientEndColor writes the last gradient color. An empty gradient
// becomes [c, c].
func (e *EffectStack) SetGradientEndColor(c RGBA) {
	if len(e.GradientColors) < 2 {
		e.GradientColors = []RGBA{c, c}
		return
	}
	e.GradientColors = slices.Clone(e.GradientColors)
	e.GradientColors[len(e.GradientColors)-1] = c
}

// InnerShadow returns the first inner shadow.
func (e *EffectStack) InnerShadow() (Shadow, bool) {
	if len(e.InnerShadows) == 0 {
		return Shadow{}, false
	}
	return e.InnerShadows[0], true
}

// InnerShadowBlendMode returns the first blend mode, or BlendNormal.
func (e *EffectStack) InnerShadowBlendMode() BlendMode {
	if len(e.InnerShadowBlendModes) == 0 {
		return BlendNormal
	}
	return e.InnerShadowBlendModes[0]
}

// SetInnerShadow replaces the shadows with s.
func (e *EffectStack) SetInnerShadow(s Shadow) {
	e.InnerShadows = []Shadow{s}
}

// SetInnerShadowBlendMode replaces the blend modes with m.
func (e *EffectStack) SetInnerShadowBlendMode(m BlendMode) {
	e.InnerShadowBlendModes = []BlendMode{m}
}

// Clone returns a deep copy sharing no slices with e.
func (e *EffectStack) Clone() EffectStack {
	return EffectStack{
		StrokeWidths:          slices.Clone(e.StrokeWidths),
		StrokeColors:          slices.Clone(e.StrokeColors),
		GradientColors:        slices.Clone(e.GradientColors),
		GradientStart:         e.GradientStart,
		GradientEnd:           e.GradientEnd,
		InnerShadows:          slices.Clone(e.InnerShadows),
		InnerShadowBlendModes: slices.Clone(e.InnerShadowBlendModes),
	}
}
