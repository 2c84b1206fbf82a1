package fxlabel

import (
	"fmt"
	"image/color"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]; alpha is straight, not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
// A nil color converts to NoColor.
func FromColor(c color.Color) RGBA {
	if c == nil {
		return NoColor
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string, or opaque black if it is malformed.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input as ErrInvalidColor.
func ParseHex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var digits [8]uint32
	for i := 0; i < len(s) && i < len(digits); i++ {
		v, ok := hexDigit(s[i])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(s) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// Hex formats the color as "#rrggbbaa".
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// premul8 returns the color as premultiplied 8-bit channels.
func (c RGBA) premul8() (r, g, b, a uint8) {
	p := c.Premultiply()
	return to8(p.R), to8(p.G), to8(p.B), to8(p.A)
}

// to8 maps [0, 1] to [0, 255] with rounding and clamping.
func to8(x float64) uint8 {
	if !(x > 0) {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(math.Round(x * 255))
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)

	// NoColor is what color getters return for an empty sequence.
	NoColor = Transparent
)

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}
