package fxlabel

import "image"

// Mask is an 8-bit coverage raster.
// Values range from 0 (outside the shape) to 255 (fully inside).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	width, height = max(width, 0), max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromAlpha creates a mask from an image's alpha channel.
func NewMaskFromAlpha(img image.Image) *Mask {
	if a, ok := img.(*image.Alpha); ok {
		return maskFromAlpha(a)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// maskFromAlpha adopts the pixels of a rasterizer output.
func maskFromAlpha(a *image.Alpha) *Mask {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	if a.Stride == w {
		return &Mask{width: w, height: h, data: a.Pix[:w*h]}
	}
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		copy(m.data[y*w:(y+1)*w], a.Pix[y*a.Stride:])
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert inverts all mask values (255 - value).
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// IsEmpty reports whether every value is 0.
func (m *Mask) IsEmpty() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice, row-major.
func (m *Mask) Data() []uint8 {
	return m.data
}
