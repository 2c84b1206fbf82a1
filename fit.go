package fxlabel

import (
	"fmt"
	"math"

	"github.com/gogpu/fxlabel/text"
)

// ScalePrecision is the step of the scale grid searched by Fit.
const ScalePrecision = 0.01

// FitParameters bound the size of a label.
type FitParameters struct {
	// MinimumScaleFactor is the smallest allowed scale, in (0, 1].
	// Zero means unset: the text is never shrunk.
	MinimumScaleFactor float64

	// MaxSize bounds the text box. A zero Width disables wrapping and a
	// zero Height disables shrinking.
	MaxSize Size
}

// Validate checks the ranges documented on FitParameters.
func (p FitParameters) Validate() error {
	f := p.MinimumScaleFactor
	if math.IsNaN(f) || f < 0 || f > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidScaleFactor, f)
	}
	w, h := p.MaxSize.Width, p.MaxSize.Height
	if !finite(w) || !finite(h) || w < 0 || h < 0 {
		return fmt.Errorf("%w: %vx%v", ErrInvalidMaxSize, w, h)
	}
	return nil
}

// MinScale returns the effective minimum scale: MinimumScaleFactor, or 1
// when it is unset.
func (p FitParameters) MinScale() float64 {
	if p.MinimumScaleFactor == 0 {
		return 1
	}
	return p.MinimumScaleFactor
}

// FitResult is the outcome of Fit.
type FitResult struct {
	// Scale is the chosen font size multiplier, in [MinScale, 1].
	Scale float64

	// Layout is the text laid out at Scale.
	Layout *text.Layout

	// Fits is false when even the minimum scale overflows MaxSize.Height.
	Fits bool

	// Passes counts the layouts requested from the provider.
	Passes int
}

// Fit finds the largest scale in [MinScale, 1] at which s, laid out by p
// with wrap width MaxSize.Width, is no taller than MaxSize.Height.
//
// Scales are searched on the grid 1 - k*ScalePrecision, plus the exact
// minimum, with a binary search that relies on layout height never growing
// as the scale shrinks. When nothing fits the minimum scale is returned with
// its overflowing layout and Fits set to false; that is not an error.
func Fit(p ShapeProvider, s *text.AttributedString, params FitParameters) (FitResult, error) {
	if p == nil {
		return FitResult{}, ErrNoShapeProvider
	}
	if err := params.Validate(); err != nil {
		return FitResult{}, err
	}

	res := FitResult{}
	layoutAt := func(scale float64) (*text.Layout, error) {
		res.Passes++
		scaled := s
		if scale != 1 {
			scaled = s.Scaled(scale)
		}
		l, err := p.Layout(scaled, params.MaxSize.Width)
		if err != nil {
			return nil, fmt.Errorf("fxlabel: layout at scale %v: %w", scale, err)
		}
		return l, nil
	}
	maxHeight := params.MaxSize.Height
	fits := func(l *text.Layout) bool {
		return maxHeight == 0 || l.Height <= maxHeight+1e-9
	}

	minScale := params.MinScale()

	full, err := layoutAt(1)
	if err != nil {
		return FitResult{}, err
	}
	if minScale >= 1 || maxHeight == 0 || fits(full) {
		res.Scale, res.Layout, res.Fits = 1, full, fits(full)
		Logger().Debug("fit resolved", "scale", 1.0, "passes", res.Passes, "fits", res.Fits)
		return res, nil
	}

	candidates := scaleGrid(minScale)
	layouts := make(map[int]*text.Layout, 8)
	check := func(i int) (bool, error) {
		l, err := layoutAt(candidates[i])
		if err != nil {
			return false, err
		}
		layouts[i] = l
		return fits(l), nil
	}

	// Smallest index, i.e. largest scale, that fits; len(candidates) if none.
	lo, hi := 0, len(candidates)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		ok, err := check(mid)
		if err != nil {
			return FitResult{}, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	if lo == len(candidates) {
		last := len(candidates) - 1
		l, ok := layouts[last]
		if !ok {
			if l, err = layoutAt(candidates[last]); err != nil {
				return FitResult{}, err
			}
		}
		res.Scale, res.Layout, res.Fits = minScale, l, false
		Logger().Warn("text overflows at minimum scale",
			"scale", minScale, "height", l.Height, "maxHeight", maxHeight)
		return res, nil
	}

	res.Scale, res.Layout, res.Fits = candidates[lo], layouts[lo], true
	Logger().Debug("fit resolved", "scale", res.Scale, "passes", res.Passes, "fits", true)
	return res, nil
}

// scaleGrid returns the candidate scales below 1 in descending order: the
// grid points strictly above minScale, then minScale itself.
func scaleGrid(minScale float64) []float64 {
	var out []float64
	for k := 1; ; k++ {
		s := gridScale(k)
		if s <= minScale+1e-9 {
			break
		}
		out = append(out, s)
	}
	return append(out, minScale)
}

// gridScale returns 1 - k*ScalePrecision as the closest float64 to the
// decimal value, so grid scales compare equal to literals like 0.7.
func gridScale(k int) float64 {
	steps := math.Round(1 / ScalePrecision)
	return (steps - float64(k)) / steps
}
