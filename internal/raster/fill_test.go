package raster

import (
	"image"
	"testing"
)

func alphaAt(m *image.Alpha, x, y int) uint8 {
	return m.AlphaAt(x, y).A
}

func countCovered(m *image.Alpha) int {
	n := 0
	for _, a := range m.Pix {
		if a > 127 {
			n++
		}
	}
	return n
}

func TestFillRectangle(t *testing.T) {
	m := fillPath(square(2, 2, 8, 6), 10, 10, Point{})

	if got := alphaAt(m, 5, 4); got < 250 {
		t.Errorf("inside alpha = %d, want ~255", got)
	}
	if got := alphaAt(m, 0, 0); got > 5 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
	if got := alphaAt(m, 1, 4); got > 5 {
		t.Errorf("left of edge alpha = %d, want 0", got)
	}
	if got := countCovered(m); got != 24 {
		t.Errorf("covered pixels = %d, want 24", got)
	}
}

func TestFillOrigin(t *testing.T) {
	m := fillPath(square(102, 102, 108, 106), 10, 10, Point{X: 100, Y: 100})
	if got := countCovered(m); got != 24 {
		t.Errorf("covered pixels = %d, want 24", got)
	}
}

func TestFillHoleAndUnion(t *testing.T) {
	t.Run("opposite winding cuts a hole", func(t *testing.T) {
		outer := square(0, 0, 10, 10)
		inner := []PathElement{
			MoveTo{Point: Point{X: 3, Y: 3}},
			LineTo{Point: Point{X: 3, Y: 7}},
			LineTo{Point: Point{X: 7, Y: 7}},
			LineTo{Point: Point{X: 7, Y: 3}},
			Close{},
		}
		m := fillPath(append(outer, inner...), 10, 10, Point{})
		if got := alphaAt(m, 5, 5); got > 5 {
			t.Errorf("hole alpha = %d, want 0", got)
		}
		if got := alphaAt(m, 1, 1); got < 250 {
			t.Errorf("ring alpha = %d, want 255", got)
		}
	})

	t.Run("same winding overlaps saturate", func(t *testing.T) {
		m := fillPath(append(square(0, 0, 6, 6), square(3, 3, 9, 9)...), 10, 10, Point{})
		if got := alphaAt(m, 4, 4); got < 250 {
			t.Errorf("overlap alpha = %d, want 255", got)
		}
		if got := countCovered(m); got != 36+36-9 {
			t.Errorf("covered pixels = %d, want %d", got, 36+36-9)
		}
	})
}

func TestFillOpenContourClosesImplicitly(t *testing.T) {
	elems := []PathElement{
		MoveTo{Point: Point{X: 0, Y: 0}},
		LineTo{Point: Point{X: 4, Y: 0}},
		LineTo{Point: Point{X: 4, Y: 4}},
		LineTo{Point: Point{X: 0, Y: 4}},
	}
	m := fillPath(elems, 6, 6, Point{})
	if got := countCovered(m); got != 16 {
		t.Errorf("covered pixels = %d, want 16", got)
	}
}

func TestFillEmpty(t *testing.T) {
	m := Fill(nil, 4, 4, Point{})
	if countCovered(m) != 0 {
		t.Error("empty fill should cover nothing")
	}
	if m := Fill(nil, 0, 0, Point{}); m.Bounds().Dx() != 0 {
		t.Error("zero-size mask expected")
	}
}

func fillPath(elements []PathElement, width, height int, origin Point) *image.Alpha {
	return Fill(Flatten(elements), width, height, origin)
}
