package blend

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unpremultiply converts a premultiplied channel back to straight color.
// The result is clamped because rounding can leave c slightly above a.
func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

// Lerp mixes two premultiplied pixels: t=0 keeps a, t=255 gives b.
// Used to confine an operator's effect to a coverage mask.
func Lerp(ar, ag, ab, aa, br, bg, bb, ba, t byte) (byte, byte, byte, byte) {
	if t == 255 {
		return br, bg, bb, ba
	}
	if t == 0 {
		return ar, ag, ab, aa
	}
	inv := 255 - t
	return addClamp(mulDiv255(ar, inv), mulDiv255(br, t)),
		addClamp(mulDiv255(ag, inv), mulDiv255(bg, t)),
		addClamp(mulDiv255(ab, inv), mulDiv255(bb, t)),
		addClamp(mulDiv255(aa, inv), mulDiv255(ba, t))
}
