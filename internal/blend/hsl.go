package blend

// Non-separable blend modes (Hue, Saturation, Color, Luminosity) from
// W3C Compositing and Blending Level 1, section 5.8. They operate on the
// whole RGB triplet, so they cannot share separableBlend's per-channel path.

// lum returns the luminance of a color using BT.601 coefficients.
func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// sat returns max(r, g, b) - min(r, g, b).
func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor pulls out-of-range components back into [0,1] toward the luminance.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid = 0
		*hi = 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// nonSeparableBlend unpremultiplies both pixels, applies fn to the straight
// colors and composites the result like separableBlend does.
func nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da byte,
	fn func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32),
) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	norm := func(c, a byte) float32 { return float32(unpremultiply(c, a)) / 255 }
	r, g, b := fn(norm(sr, sa), norm(sg, sa), norm(sb, sa), norm(dr, da), norm(dg, da), norm(db, da))

	invSa := 255 - sa
	invDa := 255 - da
	saDa := mulDiv255(sa, da)

	return addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, unitToByte(float64(r)))),
		addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, unitToByte(float64(g)))),
		addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, unitToByte(float64(b)))),
		addClamp(sa, mulDiv255(da, invSa))
}

// Formula: SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
func blendHue(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
		return setLum(r, g, b, lum(dr, dg, db))
	})
}

// Formula: SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
func blendSaturation(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
		return setLum(r, g, b, lum(dr, dg, db))
	})
}

// Formula: SetLum(Cs, Lum(Cb))
func blendColor(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return setLum(sr, sg, sb, lum(dr, dg, db))
	})
}

// Formula: SetLum(Cb, Lum(Cs))
func blendLuminosity(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return nonSeparableBlend(sr, sg, sb, sa, dr, dg, db, da, func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
		return setLum(dr, dg, db, lum(sr, sg, sb))
	})
}
