package style

import (
	"fmt"

	"github.com/gogpu/fxlabel"
)

// Style is a named set of effects and fit constraints.
type Style struct {
	Name    string
	Effects fxlabel.EffectStack
	Fit     fxlabel.FitParameters
}

// Validate checks the effects and fit parameters.
func (s *Style) Validate() error {
	if err := s.Effects.Validate(); err != nil {
		return fmt.Errorf("style %q: %w", s.Name, err)
	}
	if err := s.Fit.Validate(); err != nil {
		return fmt.Errorf("style %q: %w", s.Name, err)
	}
	return nil
}

// Apply sets the effects and fit parameters of l in one mutation.
// On error l is left unchanged.
func (s *Style) Apply(l *fxlabel.Label) error {
	return l.Update(func(e *fxlabel.EffectStack, p *fxlabel.FitParameters) {
		*e = s.Effects.Clone()
		*p = s.Fit
	})
}

// Merge appends the strokes and inner shadows of o to s. A gradient or fit
// value set in o replaces the one in s.
func (s *Style) Merge(o *Style) {
	e := &s.Effects
	e.StrokeWidths = append(e.StrokeWidths, o.Effects.StrokeWidths...)
	e.StrokeColors = append(e.StrokeColors, o.Effects.StrokeColors...)
	if len(o.Effects.GradientColors) > 0 {
		e.GradientColors = o.Effects.GradientColors
		e.GradientStart = o.Effects.GradientStart
		e.GradientEnd = o.Effects.GradientEnd
	}

	// Shadows earlier in s may have no explicit mode; pad before appending.
	for len(e.InnerShadowBlendModes) < len(e.InnerShadows) {
		e.InnerShadowBlendModes = append(e.InnerShadowBlendModes, fxlabel.BlendNormal)
	}
	e.InnerShadows = append(e.InnerShadows, o.Effects.InnerShadows...)
	e.InnerShadowBlendModes = append(e.InnerShadowBlendModes, o.Effects.InnerShadowBlendModes...)

	if o.Fit.MinimumScaleFactor != 0 {
		s.Fit.MinimumScaleFactor = o.Fit.MinimumScaleFactor
	}
	if o.Fit.MaxSize != (fxlabel.Size{}) {
		s.Fit.MaxSize = o.Fit.MaxSize
	}
}
