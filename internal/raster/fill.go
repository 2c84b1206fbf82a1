package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
)

// Fill rasterizes contours into an alpha mask of width×height pixels.
// Contour coordinates are shifted by -origin so origin maps to pixel (0, 0).
// Open contours are closed implicitly, as fills always are.
func Fill(contours []Contour, width, height int, origin Point) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return dst
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	drawn := false
	for _, c := range contours {
		if len(c.Points) < 3 {
			continue
		}
		p0 := c.Points[0].Sub(origin)
		z.MoveTo(float32(p0.X), float32(p0.Y))
		for _, p := range c.Points[1:] {
			p = p.Sub(origin)
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}
	return dst
}
