// Package blend implements Porter-Duff compositing operators and blend modes.
//
// All blend operations work with premultiplied alpha values in the range 0-255,
// the layout of image.RGBA pixels.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode identifies a compositing operator.
type Mode uint8

const (
	// Porter-Duff modes
	Clear           Mode = iota // Result: 0
	Source                      // Result: S
	Destination                 // Result: D
	SourceOver                  // Result: S + D*(1-Sa) [default]
	DestinationOver             // Result: S*(1-Da) + D
	SourceIn                    // Result: S*Da
	DestinationIn               // Result: D*Sa
	SourceOut                   // Result: S*(1-Da)
	DestinationOut              // Result: D*(1-Sa)
	SourceAtop                  // Result: S*Da + D*(1-Sa)
	DestinationAtop             // Result: S*(1-Da) + D*Sa
	Xor                         // Result: S*(1-Da) + D*(1-Sa)
	Plus                        // Result: min(S + D, 1)
	PlusDarker                  // Result: max(0, (Sa+Da) - ((Da-D) + (Sa-S)))

	// Separable blend modes
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes
	Hue
	Saturation
	Color
	Luminosity

	modeCount
)

// Valid reports whether m names a known operator.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Func composites one premultiplied source pixel onto a destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// Lookup returns the blend function for the given mode.
// Unknown modes fall back to SourceOver.
func Lookup(mode Mode) Func {
	switch mode {
	case Clear:
		return blendClear
	case Source:
		return blendSource
	case Destination:
		return blendDestination
	case SourceOver:
		return blendSourceOver
	case DestinationOver:
		return blendDestinationOver
	case SourceIn:
		return blendSourceIn
	case DestinationIn:
		return blendDestinationIn
	case SourceOut:
		return blendSourceOut
	case DestinationOut:
		return blendDestinationOut
	case SourceAtop:
		return blendSourceAtop
	case DestinationAtop:
		return blendDestinationAtop
	case Xor:
		return blendXor
	case Plus:
		return blendPlus
	case PlusDarker:
		return blendPlusDarker

	case Multiply:
		return blendMultiply
	case Screen:
		return blendScreen
	case Overlay:
		return blendOverlay
	case Darken:
		return blendDarken
	case Lighten:
		return blendLighten
	case ColorDodge:
		return blendColorDodge
	case ColorBurn:
		return blendColorBurn
	case HardLight:
		return blendHardLight
	case SoftLight:
		return blendSoftLight
	case Difference:
		return blendDifference
	case Exclusion:
		return blendExclusion

	case Hue:
		return blendHue
	case Saturation:
		return blendSaturation
	case Color:
		return blendColor
	case Luminosity:
		return blendLuminosity

	default:
		return blendSourceOver
	}
}

func blendClear(_, _, _, _, _, _, _, _ byte) (byte, byte, byte, byte) {
	return 0, 0, 0, 0
}

func blendSource(sr, sg, sb, sa, _, _, _, _ byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

func blendDestination(_, _, _, _, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return dr, dg, db, da
}

// blendSourceOver composites source over destination.
// Formula: S + D * (1 - Sa)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}

// blendDestinationOver composites destination over source.
// Formula: S * (1 - Da) + D
func blendDestinationOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSourceOver(dr, dg, db, da, sr, sg, sb, sa)
}

// Formula: S * Da
func blendSourceIn(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	return mulDiv255(sr, da), mulDiv255(sg, da), mulDiv255(sb, da), mulDiv255(sa, da)
}

// Formula: D * Sa
func blendDestinationIn(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return mulDiv255(dr, sa), mulDiv255(dg, sa), mulDiv255(db, sa), mulDiv255(da, sa)
}

// Formula: S * (1 - Da)
func blendSourceOut(sr, sg, sb, sa, _, _, _, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	return mulDiv255(sr, invDa), mulDiv255(sg, invDa), mulDiv255(sb, invDa), mulDiv255(sa, invDa)
}

// Formula: D * (1 - Sa)
func blendDestinationOut(_, _, _, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return mulDiv255(dr, invSa), mulDiv255(dg, invSa), mulDiv255(db, invSa), mulDiv255(da, invSa)
}

// blendSourceAtop keeps the destination alpha.
// Formula: S * Da + D * (1 - Sa)
func blendSourceAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, da), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, da), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, da), mulDiv255(db, invSa)),
		da
}

// blendDestinationAtop keeps the source alpha.
// Formula: S * (1 - Da) + D * Sa
func blendDestinationAtop(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return blendSourceAtop(dr, dg, db, da, sr, sg, sb, sa)
}

// Formula: S * (1 - Da) + D * (1 - Sa)
func blendXor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invDa := 255 - da
	invSa := 255 - sa
	return addClamp(mulDiv255(sr, invDa), mulDiv255(dr, invSa)),
		addClamp(mulDiv255(sg, invDa), mulDiv255(dg, invSa)),
		addClamp(mulDiv255(sb, invDa), mulDiv255(db, invSa)),
		addClamp(mulDiv255(sa, invDa), mulDiv255(da, invSa))
}

// Formula: min(S + D, 255)
func blendPlus(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// blendPlusDarker is the premultiplied form of R = max(0, 1 - ((1 - D) + (1 - S))).
func blendPlusDarker(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	a := addClamp(sa, da)
	channel := func(s, d byte) byte {
		v := int(a) - ((int(da) - int(d)) + (int(sa) - int(s)))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return byte(v)
	}
	return channel(sr, dr), channel(sg, dg), channel(sb, db), a
}
