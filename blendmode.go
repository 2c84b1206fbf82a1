package fxlabel

import (
	"fmt"
	"strings"

	"github.com/gogpu/fxlabel/internal/blend"
)

// BlendMode is a compositing operator for inner shadows. The constants
// follow the CoreGraphics order and naming.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendSoftLight
	BlendHardLight
	BlendDifference
	BlendExclusion
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
	BlendClear
	BlendCopy
	BlendSourceIn
	BlendSourceOut
	BlendSourceAtop
	BlendDestinationOver
	BlendDestinationIn
	BlendDestinationOut
	BlendDestinationAtop
	BlendXOR
	BlendPlusDarker
	BlendPlusLighter

	blendModeCount
)

var blendModeNames = [blendModeCount]string{
	"normal", "multiply", "screen", "overlay", "darken", "lighten",
	"color-dodge", "color-burn", "soft-light", "hard-light", "difference",
	"exclusion", "hue", "saturation", "color", "luminosity", "clear", "copy",
	"source-in", "source-out", "source-atop", "destination-over",
	"destination-in", "destination-out", "destination-atop", "xor",
	"plus-darker", "plus-lighter",
}

var blendModeOps = [blendModeCount]blend.Mode{
	BlendNormal:          blend.SourceOver,
	BlendMultiply:        blend.Multiply,
	BlendScreen:          blend.Screen,
	BlendOverlay:         blend.Overlay,
	BlendDarken:          blend.Darken,
	BlendLighten:         blend.Lighten,
	BlendColorDodge:      blend.ColorDodge,
	BlendColorBurn:       blend.ColorBurn,
	BlendSoftLight:       blend.SoftLight,
	BlendHardLight:       blend.HardLight,
	BlendDifference:      blend.Difference,
	BlendExclusion:       blend.Exclusion,
	BlendHue:             blend.Hue,
	BlendSaturation:      blend.Saturation,
	BlendColor:           blend.Color,
	BlendLuminosity:      blend.Luminosity,
	BlendClear:           blend.Clear,
	BlendCopy:            blend.Source,
	BlendSourceIn:        blend.SourceIn,
	BlendSourceOut:       blend.SourceOut,
	BlendSourceAtop:      blend.SourceAtop,
	BlendDestinationOver: blend.DestinationOver,
	BlendDestinationIn:   blend.DestinationIn,
	BlendDestinationOut:  blend.DestinationOut,
	BlendDestinationAtop: blend.DestinationAtop,
	BlendXOR:             blend.Xor,
	BlendPlusDarker:      blend.PlusDarker,
	BlendPlusLighter:     blend.Plus,
}

// Valid reports whether m is a known blend mode.
func (m BlendMode) Valid() bool {
	return m < blendModeCount
}

// String returns the kebab-case name of the mode, e.g. "color-dodge".
func (m BlendMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
	return blendModeNames[m]
}

// ParseBlendMode parses a mode name. Matching ignores case, and '-', '_'
// and spaces are interchangeable, so "ColorDodge", "color_dodge" and
// "color-dodge" are the same mode.
func ParseBlendMode(name string) (BlendMode, error) {
	key := normalizeModeName(name)
	for m, n := range blendModeNames {
		if normalizeModeName(n) == key {
			return BlendMode(m), nil
		}
	}
	return BlendNormal, fmt.Errorf("%w: %q", ErrUnsupportedBlendMode, name)
}

func normalizeModeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// op returns the compositing function for m; unknown modes act as Normal.
func (m BlendMode) op() blend.Func {
	if !m.Valid() {
		return blend.Lookup(blend.SourceOver)
	}
	return blend.Lookup(blendModeOps[m])
}
