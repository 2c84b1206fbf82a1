package fxlabel

import (
	"log/slog"
	"slices"

	"github.com/gogpu/fxlabel/text"
)

// Label owns the properties of one decorated text label and keeps its
// rendered image up to date.
//
// Every setter validates the would-be configuration first. An invalid change
// returns an error and leaves the label untouched; a valid one re-runs the
// pipeline (Fit, then Composite) synchronously, stores the result and calls
// the on-change hooks.
//
// Label is not safe for concurrent use.
type Label struct {
	provider ShapeProvider
	hooks    []func(*Image)
	logger   *slog.Logger

	state labelState

	image *Image
	scale float64
	fits  bool
}

// labelState is everything a render depends on.
type labelState struct {
	text    *text.AttributedString
	params  FitParameters
	effects EffectStack
}

func (s labelState) clone() labelState {
	return labelState{
		text:    s.text,
		params:  s.params,
		effects: s.effects.Clone(),
	}
}

func (s *labelState) validate() error {
	if err := s.params.Validate(); err != nil {
		return err
	}
	return s.effects.Validate()
}

// NewLabel creates an empty label with no effects.
//
// Example:
//
//	l := fxlabel.NewLabel(fxlabel.WithOnChange(show))
//	_ = l.SetMaxSize(fxlabel.Size{Width: 200, Height: 40})
//	_ = l.SetStrokes([]float64{4, 2}, []fxlabel.RGBA{fxlabel.Black, fxlabel.White})
//	_ = l.SetText("Game Over")
func NewLabel(opts ...Option) *Label {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.provider == nil {
		o.provider = DefaultShapeProvider()
	}
	return &Label{
		provider: o.provider,
		hooks:    o.hooks,
		logger:   o.logger,
		state:    labelState{text: text.Attributed("")},
		image:    newImage(0, 0, Point{}),
		scale:    1,
		fits:     true,
	}
}

func (l *Label) log() *slog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

// Image returns the last rendered image. It is never nil.
func (l *Label) Image() *Image { return l.image }

// Scale returns the font scale chosen by the last render.
func (l *Label) Scale() float64 { return l.scale }

// Fits reports whether the last render fit MaxSize.
func (l *Label) Fits() bool { return l.fits }

// Render re-runs the pipeline with the current properties.
func (l *Label) Render() error {
	return l.apply(func(*labelState) {})
}

// Clone returns a copy with the same properties and image. The copy has its
// own state and no on-change hooks.
func (l *Label) Clone() *Label {
	return &Label{
		provider: l.provider,
		logger:   l.logger,
		state:    l.state.clone(),
		image:    l.image,
		scale:    l.scale,
		fits:     l.fits,
	}
}

// apply runs mutate on a copy of the state, validates and renders it, and
// commits only if both succeed.
func (l *Label) apply(mutate func(*labelState)) error {
	next := l.state.clone()
	mutate(&next)
	if next.text == nil {
		next.text = text.Attributed("")
	}
	if err := next.validate(); err != nil {
		return err
	}

	res, err := Fit(l.provider, next.text, next.params)
	if err != nil {
		return err
	}
	img, err := Composite(GeometryFromLayout(res.Layout), next.effects)
	if err != nil {
		return err
	}

	l.state = next
	l.image, l.scale, l.fits = img, res.Scale, res.Fits
	l.log().Debug("label rendered",
		"width", img.Width(), "height", img.Height(), "scale", res.Scale, "passes", res.Passes)

	for _, hook := range l.hooks {
		hook(img)
	}
	return nil
}

// AttributedText returns the label text.
func (l *Label) AttributedText() *text.AttributedString { return l.state.text }

// SetAttributedText replaces the label text. nil clears it.
func (l *Label) SetAttributedText(s *text.AttributedString) error {
	return l.apply(func(st *labelState) { st.text = s })
}

// Text returns the plain text of the label.
func (l *Label) Text() string { return l.state.text.String() }

// SetText replaces the text with a single run that keeps the font, color
// and alignment of the current first run.
func (l *Label) SetText(s string) error {
	cur := l.state.text
	return l.apply(func(st *labelState) {
		st.text = text.AttributedWithFontColorAlignment(s, cur.Font(), cur.Color(), cur.Alignment())
	})
}

// Font returns the font of the first run.
func (l *Label) Font() text.Font { return l.state.text.Font() }

// SetFont sets the font of every run.
func (l *Label) SetFont(f text.Font) error {
	return l.apply(func(st *labelState) { st.text = st.text.WithFont(f) })
}

// TextColor returns the color of the first run.
func (l *Label) TextColor() RGBA { return FromColor(l.state.text.Color()) }

// SetTextColor sets the color of every run.
func (l *Label) SetTextColor(c RGBA) error {
	return l.apply(func(st *labelState) { st.text = st.text.WithForegroundColor(c.Color()) })
}

// TextAlignment returns the alignment of the first run.
func (l *Label) TextAlignment() text.Alignment { return l.state.text.Alignment() }

// SetTextAlignment sets the alignment of every run.
func (l *Label) SetTextAlignment(a text.Alignment) error {
	return l.apply(func(st *labelState) { st.text = st.text.WithAlignment(a) })
}

// FitParameters returns the fit constraints.
func (l *Label) FitParameters() FitParameters { return l.state.params }

// SetFitParameters replaces the fit constraints.
func (l *Label) SetFitParameters(p FitParameters) error {
	return l.apply(func(st *labelState) { st.params = p })
}

// MinimumScaleFactor returns the smallest scale the text may shrink to.
func (l *Label) MinimumScaleFactor() float64 { return l.state.params.MinimumScaleFactor }

// SetMinimumScaleFactor sets the smallest scale, in (0, 1]. Zero disables
// shrinking.
func (l *Label) SetMinimumScaleFactor(f float64) error {
	return l.apply(func(st *labelState) { st.params.MinimumScaleFactor = f })
}

// MaxSize returns the size bound.
func (l *Label) MaxSize() Size { return l.state.params.MaxSize }

// SetMaxSize sets the size bound.
func (l *Label) SetMaxSize(s Size) error {
	return l.apply(func(st *labelState) { st.params.MaxSize = s })
}

// Effects returns a copy of the effect stack.
func (l *Label) Effects() EffectStack { return l.state.effects.Clone() }

// SetEffects replaces the whole effect stack.
func (l *Label) SetEffects(e EffectStack) error {
	return l.apply(func(st *labelState) { st.effects = e.Clone() })
}

// Update applies several changes as one mutation: fn edits copies of the
// effects and fit parameters, which are then validated and rendered once.
func (l *Label) Update(fn func(e *EffectStack, p *FitParameters)) error {
	return l.apply(func(st *labelState) { fn(&st.effects, &st.params) })
}

// StrokeWidths returns a copy of the stroke widths.
func (l *Label) StrokeWidths() []float64 { return slices.Clone(l.state.effects.StrokeWidths) }

// SetStrokeWidths replaces the stroke widths. The colors must have the same
// length; use SetStrokes to change both.
func (l *Label) SetStrokeWidths(w []float64) error {
	return l.apply(func(st *labelState) { st.effects.StrokeWidths = slices.Clone(w) })
}

// StrokeColors returns a copy of the stroke colors.
func (l *Label) StrokeColors() []RGBA { return slices.Clone(l.state.effects.StrokeColors) }

// SetStrokeColors replaces the stroke colors.
func (l *Label) SetStrokeColors(c []RGBA) error {
	return l.apply(func(st *labelState) { st.effects.StrokeColors = slices.Clone(c) })
}

// SetStrokes replaces widths and colors together.
func (l *Label) SetStrokes(widths []float64, colors []RGBA) error {
	return l.apply(func(st *labelState) {
		st.effects.StrokeWidths = slices.Clone(widths)
		st.effects.StrokeColors = slices.Clone(colors)
	})
}

// StrokeWidth returns the first stroke width, or 0.
func (l *Label) StrokeWidth() float64 { return l.state.effects.StrokeWidth() }

// SetStrokeWidth replaces the strokes with one stroke of width w.
func (l *Label) SetStrokeWidth(w float64) error {
	return l.apply(func(st *labelState) { st.effects.SetStrokeWidth(w) })
}

// StrokeColor returns the first stroke color, or NoColor.
func (l *Label) StrokeColor() RGBA { return l.state.effects.StrokeColor() }

// SetStrokeColor replaces the strokes with one stroke of color c.
func (l *Label) SetStrokeColor(c RGBA) error {
	return l.apply(func(st *labelState) { st.effects.SetStrokeColor(c) })
}

// GradientColors returns a copy of the gradient colors.
func (l *Label) GradientColors() []RGBA { return slices.Clone(l.state.effects.GradientColors) }

// SetGradientColors replaces the gradient colors. Pass nil to go back to
// the glyph colors.
func (l *Label) SetGradientColors(c []RGBA) error {
	return l.apply(func(st *labelState) { st.effects.GradientColors = slices.Clone(c) })
}

// GradientStartColor returns the first gradient color, or NoColor.
func (l *Label) GradientStartColor() RGBA { return l.state.effects.GradientStartColor() }

// SetGradientStartColor sets the first gradient color.
func (l *Label) SetGradientStartColor(c RGBA) error {
	return l.apply(func(st *labelState) { st.effects.SetGradientStartColor(c) })
}

// GradientEndColor returns the last gradient color, or NoColor.
func (l *Label) GradientEndColor() RGBA { return l.state.effects.GradientEndColor() }

// SetGradientEndColor sets the last gradient color.
func (l *Label) SetGradientEndColor(c RGBA) error {
	return l.apply(func(st *labelState) { st.effects.SetGradientEndColor(c) })
}

// GradientStartPoint returns the gradient start in unit space.
func (l *Label) GradientStartPoint() Point { return l.state.effects.GradientStart }

// SetGradientStartPoint sets the gradient start in unit space.
func (l *Label) SetGradientStartPoint(p Point) error {
	return l.apply(func(st *labelState) { st.effects.GradientStart = p })
}

// GradientEndPoint returns the gradient end in unit space.
func (l *Label) GradientEndPoint() Point { return l.state.effects.GradientEnd }

// SetGradientEndPoint sets the gradient end in unit space.
func (l *Label) SetGradientEndPoint(p Point) error {
	return l.apply(func(st *labelState) { st.effects.GradientEnd = p })
}

// InnerShadows returns a copy of the inner shadows.
func (l *Label) InnerShadows() []Shadow { return slices.Clone(l.state.effects.InnerShadows) }

// SetInnerShadows replaces the inner shadows.
func (l *Label) SetInnerShadows(s []Shadow) error {
	return l.apply(func(st *labelState) { st.effects.InnerShadows = slices.Clone(s) })
}

// InnerShadowBlendModes returns a copy of the inner shadow blend modes.
func (l *Label) InnerShadowBlendModes() []BlendMode {
	return slices.Clone(l.state.effects.InnerShadowBlendModes)
}

// SetInnerShadowBlendModes replaces the inner shadow blend modes.
func (l *Label) SetInnerShadowBlendModes(m []BlendMode) error {
	return l.apply(func(st *labelState) { st.effects.InnerShadowBlendModes = slices.Clone(m) })
}

// InnerShadow returns the first inner shadow.
func (l *Label) InnerShadow() (Shadow, bool) { return l.state.effects.InnerShadow() }

// SetInnerShadow replaces the inner shadows with s.
func (l *Label) SetInnerShadow(s Shadow) error {
	return l.apply(func(st *labelState) { st.effects.SetInnerShadow(s) })
}

// InnerShadowBlendMode returns the first inner shadow blend mode, or
// BlendNormal.
func (l *Label) InnerShadowBlendMode() BlendMode { return l.state.effects.InnerShadowBlendMode() }

// SetInnerShadowBlendMode replaces the inner shadow blend modes with m.
func (l *Label) SetInnerShadowBlendMode(m BlendMode) error {
	return l.apply(func(st *labelState) { st.effects.SetInnerShadowBlendMode(m) })
}
