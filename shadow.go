package fxlabel

import (
	"fmt"
	"math"
)

// DefaultShadowColor is black at one third opacity, the platform default.
var DefaultShadowColor = RGBA2(0, 0, 0, 1.0/3)

// Shadow describes a shadow: where the casting silhouette is moved to, how
// much it is blurred and its color.
type Shadow struct {
	Offset     Point
	BlurRadius float64
	Color      RGBA
}

// NewShadow returns a shadow in DefaultShadowColor.
func NewShadow(dx, dy, blurRadius float64) Shadow {
	return Shadow{Offset: Pt(dx, dy), BlurRadius: blurRadius, Color: DefaultShadowColor}
}

// IsZero reports whether the shadow is the zero value.
func (s Shadow) IsZero() bool {
	return s == Shadow{}
}

// Sigma returns the Gaussian standard deviation used for the blur.
// A blur radius covers about two standard deviations.
func (s Shadow) Sigma() float64 {
	return s.BlurRadius / 2
}

func (s Shadow) validate() error {
	if math.IsNaN(s.BlurRadius) || math.IsInf(s.BlurRadius, 0) || s.BlurRadius < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidShadow, s.BlurRadius)
	}
	if !finite(s.Offset.X) || !finite(s.Offset.Y) {
		return fmt.Errorf("%w: offset %v", ErrInvalidShadow, s.Offset)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
