package fxlabel

import (
	"bufio"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/fxlabel/internal/blend"
)

// Image is a rendered label: a premultiplied RGBA raster, 4 bytes per pixel.
// Images returned by Composite and Label are never modified afterwards.
type Image struct {
	width  int
	height int
	data   []uint8

	// origin is where layout-space (0,0) falls inside the image.
	origin Point
}

// newImage creates a transparent image.
func newImage(width, height int, origin Point) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		origin: origin,
	}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int {
	if img == nil {
		return 0
	}
	return img.width
}

// Height returns the height of the image in pixels.
func (img *Image) Height() int {
	if img == nil {
		return 0
	}
	return img.height
}

// IsEmpty reports whether the image has no pixels.
func (img *Image) IsEmpty() bool {
	return img.Width() == 0 || img.Height() == 0
}

// Origin returns the pixel position of layout-space (0,0). Strokes and
// glyph overhangs can extend above and left of the text box, so the origin
// is usually a few pixels in from the top-left corner.
func (img *Image) Origin() Point {
	if img == nil {
		return Point{}
	}
	return img.origin
}

// At returns the straight-alpha color of a pixel, Transparent outside.
func (img *Image) At(x, y int) RGBA {
	if img == nil || x < 0 || x >= img.width || y < 0 || y >= img.height {
		return Transparent
	}
	i := (y*img.width + x) * 4
	a := img.data[i+3]
	if a == 0 {
		return Transparent
	}
	af := float64(a)
	return RGBA{
		R: min(float64(img.data[i+0])/af, 1),
		G: min(float64(img.data[i+1])/af, 1),
		B: min(float64(img.data[i+2])/af, 1),
		A: af / 255,
	}
}

// AlphaAt returns the alpha of a pixel, 0 outside the image.
func (img *Image) AlphaAt(x, y int) uint8 {
	if img == nil || x < 0 || x >= img.width || y < 0 || y >= img.height {
		return 0
	}
	return img.data[(y*img.width+x)*4+3]
}

// Equal reports whether both images have the same size, origin and pixels.
func (img *Image) Equal(other *Image) bool {
	if img.IsEmpty() || other.IsEmpty() {
		return img.IsEmpty() == other.IsEmpty()
	}
	if img.width != other.width || img.height != other.height || img.origin != other.origin {
		return false
	}
	for i, v := range img.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// ToImage converts the image to an image.RGBA, which is also premultiplied.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width(), img.Height()))
	if img != nil {
		copy(out.Pix, img.data)
	}
	return out
}

// EncodePNG writes the image as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return png.Encode(w, img.ToImage())
}

// SavePNG saves the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	if err := img.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// paintMask composites a solid premultiplied color through coverage with
// fn. Pixels with zero coverage are left alone.
func (img *Image) paintMask(cov []uint8, r, g, b, a uint8, fn blend.Func) {
	for p, c := range cov {
		if c == 0 {
			continue
		}
		i := p * 4
		d := img.data[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fn(scale8(r, c), scale8(g, c), scale8(b, c), scale8(a, c), d[0], d[1], d[2], d[3])
	}
}

// paintFunc is paintMask with a per-pixel color. colorAt receives the pixel
// index and returns a premultiplied color.
func (img *Image) paintFunc(cov []uint8, colorAt func(x, y int) (r, g, b, a uint8), fn blend.Func) {
	for p, c := range cov {
		if c == 0 {
			continue
		}
		r, g, b, a := colorAt(p%img.width, p/img.width)
		i := p * 4
		d := img.data[i : i+4 : i+4]
		d[0], d[1], d[2], d[3] = fn(scale8(r, c), scale8(g, c), scale8(b, c), scale8(a, c), d[0], d[1], d[2], d[3])
	}
}

// blendLayer composites layer, which has the same size as img, with fn and
// confines the result to coverage: each pixel becomes a mix of the old
// pixel and the blended one, weighted by the coverage value.
func (img *Image) blendLayer(layer *Image, cov []uint8, fn blend.Func) {
	for p, c := range cov {
		if c == 0 {
			continue
		}
		i := p * 4
		s := layer.data[i : i+4 : i+4]
		d := img.data[i : i+4 : i+4]
		r, g, b, a := fn(s[0], s[1], s[2], s[3], d[0], d[1], d[2], d[3])
		d[0], d[1], d[2], d[3] = blend.Lerp(d[0], d[1], d[2], d[3], r, g, b, a, c)
	}
}

// scale8 returns v * c / 255, rounded.
func scale8(v, c uint8) uint8 {
	return uint8((uint16(v)*uint16(c) + 127) / 255)
}
