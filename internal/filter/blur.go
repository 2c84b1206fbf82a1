package filter

import (
	"math"
	"sync"
)

// Plane is a single-channel float32 raster, row-major.
type Plane struct {
	Width  int
	Height int
	Data   []float32
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height int) *Plane {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Plane{Width: width, Height: height, Data: make([]float32, width*height)}
}

// At returns the value at (x, y), or 0 outside the plane.
func (p *Plane) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0
	}
	return p.Data[y*p.Width+x]
}

// Set stores v at (x, y). Out-of-range writes are ignored.
func (p *Plane) Set(x, y int, v float32) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	p.Data[y*p.Width+x] = v
}

// Pad returns a copy of p with n extra pixels on every side set to fill.
func (p *Plane) Pad(n int, fill float32) *Plane {
	out := NewPlane(p.Width+2*n, p.Height+2*n)
	for i := range out.Data {
		out.Data[i] = fill
	}
	for y := 0; y < p.Height; y++ {
		copy(out.Data[(y+n)*out.Width+n:], p.Data[y*p.Width:(y+1)*p.Width])
	}
	return out
}

// Crop returns the width×height region starting at (x, y).
// Pixels outside p read as 0.
func (p *Plane) Crop(x, y, width, height int) *Plane {
	out := NewPlane(width, height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			out.Data[j*width+i] = p.At(x+i, y+j)
		}
	}
	return out
}

// Translate returns p moved by (dx, dy). Samples are bilinear so
// fractional offsets stay smooth; uncovered pixels take fill.
func (p *Plane) Translate(dx, dy float64, fill float32) *Plane {
	out := NewPlane(p.Width, p.Height)
	sample := func(x, y int) float32 {
		if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
			return fill
		}
		return p.Data[y*p.Width+x]
	}

	fx := math.Floor(dx)
	fy := math.Floor(dy)
	tx := float32(dx - fx)
	ty := float32(dy - fy)
	ix := int(fx)
	iy := int(fy)

	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			// Destination (x, y) reads source (x - dx, y - dy).
			sx := x - ix
			sy := y - iy
			v00 := sample(sx, sy)
			v10 := sample(sx-1, sy)
			v01 := sample(sx, sy-1)
			v11 := sample(sx-1, sy-1)
			top := v00*(1-tx) + v10*tx
			bottom := v01*(1-tx) + v11*tx
			out.Data[y*p.Width+x] = top*(1-ty) + bottom*ty
		}
	}
	return out
}

// Blur applies a separable Gaussian blur with standard deviation sigma
// in place. Samples past the edges repeat the nearest edge pixel.
func (p *Plane) Blur(sigma float64) {
	if sigma <= 0 || p.Width == 0 || p.Height == 0 {
		return
	}

	kernel := CachedGaussianKernel(sigma)
	temp := getTempBuffer(p.Width * p.Height)
	defer putTempBuffer(temp)

	blurHorizontal(p.Data, temp, p.Width, p.Height, kernel)
	blurVertical(temp, p.Data, p.Width, p.Height, kernel)
}

// blurHorizontal convolves each row of src into dst.
func blurHorizontal(src, dst []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		row := src[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				sum += row[kx] * weight
			}
			dst[y*width+x] = sum
		}
	}
}

// blurVertical convolves each column of src into dst.
func blurVertical(src, dst []float32, width, height int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float32
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				sum += src[ky*width+x] * weight
			}
			dst[y*width+x] = clampUnit(sum)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256)}
	},
}

// getTempBuffer returns a scratch buffer of exactly size elements.
// Contents are undefined; callers overwrite every element.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= 4*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
