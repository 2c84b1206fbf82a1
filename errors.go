package fxlabel

import (
	"errors"
	"fmt"
)

var (
	// ErrStrokeMismatch is returned when stroke widths and colors differ in length.
	ErrStrokeMismatch = errors.New("fxlabel: stroke widths and colors differ in length")

	// ErrInvalidStrokeWidth is returned for negative or non-finite stroke widths.
	ErrInvalidStrokeWidth = errors.New("fxlabel: stroke width must be finite and non-negative")

	// ErrGradientColors is returned when a gradient has exactly one color.
	ErrGradientColors = errors.New("fxlabel: gradient needs at least two colors")

	// ErrInvalidGradientPoint is returned for non-finite gradient start or end points.
	ErrInvalidGradientPoint = errors.New("fxlabel: gradient points must be finite")

	// ErrUnsupportedBlendMode is returned for blend modes outside the known set.
	ErrUnsupportedBlendMode = errors.New("fxlabel: unsupported blend mode")

	// ErrInvalidShadow is returned for negative or non-finite shadow blur.
	ErrInvalidShadow = errors.New("fxlabel: shadow blur radius must be finite and non-negative")

	// ErrInvalidScaleFactor is returned when the minimum scale factor is outside (0, 1].
	ErrInvalidScaleFactor = errors.New("fxlabel: minimum scale factor must be in (0, 1]")

	// ErrInvalidMaxSize is returned for negative or non-finite maximum sizes.
	ErrInvalidMaxSize = errors.New("fxlabel: max size must be finite and non-negative")

	// ErrInvalidColor is returned when a hex color cannot be parsed.
	ErrInvalidColor = errors.New("fxlabel: invalid color")

	// ErrNoShapeProvider is returned when a fit is requested without a provider.
	ErrNoShapeProvider = errors.New("fxlabel: no shape provider")
)

// StrokeMismatchError reports the two lengths of a mismatched stroke pair.
type StrokeMismatchError struct {
	Widths int
	Colors int
}

func (e *StrokeMismatchError) Error() string {
	return fmt.Sprintf("%v: %d widths, %d colors", ErrStrokeMismatch, e.Widths, e.Colors)
}

// Unwrap makes errors.Is(err, ErrStrokeMismatch) hold.
func (e *StrokeMismatchError) Unwrap() error {
	return ErrStrokeMismatch
}
