package fxlabel

import (
	"math"

	"github.com/gogpu/fxlabel/internal/filter"
)

// MakeInnerShadow renders the inner shadow s of the shape covered by fill.
//
// The silhouette casting the shadow is everything outside the shape,
// including everything beyond the mask. It is moved by s.Offset, blurred
// with a Gaussian of sigma s.BlurRadius/2, colored with s.Color and finally
// multiplied by fill, so the result only has alpha where fill does.
//
// The returned image has the size of fill. A shadow without offset and blur
// is entirely hidden by the shape and yields a transparent image.
func MakeInnerShadow(fill *Mask, s Shadow) *Image {
	if fill == nil {
		return newImage(0, 0, Point{})
	}
	w, h := fill.Width(), fill.Height()
	out := newImage(w, h, Point{})
	if w == 0 || h == 0 || s.Color.A <= 0 {
		return out
	}
	if s.Offset == (Point{}) && s.BlurRadius <= 0 {
		return out
	}

	sigma := max(s.Sigma(), 0)
	shift := int(math.Ceil(max(math.Abs(s.Offset.X), math.Abs(s.Offset.Y))))
	pad := filter.KernelRadius(sigma) + shift + 1

	// Complement of the shape: 1 outside, 0 inside.
	outside := filter.NewPlane(w, h)
	for i, v := range fill.Data() {
		outside.Data[i] = 1 - float32(v)/255
	}

	silhouette := outside.Pad(pad, 1).Translate(s.Offset.X, s.Offset.Y, 1)
	silhouette.Blur(sigma)
	shadow := silhouette.Crop(pad, pad, w, h)

	for i, v := range fill.Data() {
		if v == 0 {
			continue
		}
		a := float64(shadow.Data[i]) * s.Color.A * float64(v) / 255
		if a <= 0 {
			continue
		}
		j := i * 4
		out.data[j+0] = to8(s.Color.R * a)
		out.data[j+1] = to8(s.Color.G * a)
		out.data[j+2] = to8(s.Color.B * a)
		out.data[j+3] = to8(a)
	}
	return out
}
