package blend

import "math"

// separableBlend applies a per-channel blend function B(s, d) on straight
// colors and composites the result with the standard formula
//
//	Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Cs, Cb)
//
// in premultiplied space.
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	br := blendChan(unpremultiply(sr, sa), unpremultiply(dr, da))
	bg := blendChan(unpremultiply(sg, sa), unpremultiply(dg, da))
	bb := blendChan(unpremultiply(sb, sa), unpremultiply(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	return addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, br)),
		addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bg)),
		addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bb)),
		addClamp(sa, mulDiv255(da, invSa))
}

// Formula: B(Cb, Cs) = Cb * Cs
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}

// Formula: B(Cb, Cs) = 1 - (1 - Cb) * (1 - Cs)
func blendScreen(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, screenChan)
}

func screenChan(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
}

// hardLightChan is Multiply or Screen depending on the source.
func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return mulDiv255(s, d) * 2
	}
	return screenChan(byte(2*uint16(s)-255), d)
}

// blendOverlay is HardLight with the layers swapped.
func blendOverlay(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		return hardLightChan(d, s)
	})
}

func blendHardLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, hardLightChan)
}

// Formula: B(Cb, Cs) = min(Cb, Cs)
func blendDarken(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, minByte)
}

// Formula: B(Cb, Cs) = max(Cb, Cs)
func blendLighten(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, maxByte)
}

// Formula: B(Cb, Cs) = if Cb == 0: 0, elif Cs == 1: 1, else min(1, Cb / (1 - Cs))
func blendColorDodge(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 0 {
			return 0
		}
		if s == 255 {
			return 255
		}
		v := (uint16(d) * 255) / uint16(255-s)
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}

// Formula: B(Cb, Cs) = if Cb == 1: 1, elif Cs == 0: 0, else 1 - min(1, (1 - Cb) / Cs)
func blendColorBurn(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if d == 255 {
			return 255
		}
		if s == 0 {
			return 0
		}
		v := (uint16(255-d) * 255) / uint16(s)
		if v > 255 {
			return 0
		}
		return 255 - byte(v)
	})
}

func blendSoftLight(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		sf := float64(s) / 255
		df := float64(d) / 255

		var result float64
		if sf <= 0.5 {
			result = df - (1-2*sf)*df*(1-df)
		} else {
			var dx float64
			if df <= 0.25 {
				dx = ((16*df-12)*df + 4) * df
			} else {
				dx = math.Sqrt(df)
			}
			result = df + (2*sf-1)*(dx-df)
		}
		return unitToByte(result)
	})
}

// Formula: B(Cb, Cs) = |Cb - Cs|
func blendDifference(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		if s > d {
			return s - d
		}
		return d - s
	})
}

// Formula: B(Cb, Cs) = Cb + Cs - 2 * Cb * Cs
func blendExclusion(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, func(s, d byte) byte {
		v := int(s) + int(d) - 2*int(mulDiv255(s, d))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return byte(v)
	})
}

func unitToByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(math.Round(v * 255))
}
