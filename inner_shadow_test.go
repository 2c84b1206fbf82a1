package fxlabel

import "testing"

// squareMask returns a size×size mask with the square [lo, hi)² filled.
func squareMask(size, lo, hi int) *Mask {
	m := NewMask(size, size)
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			m.Set(x, y, 255)
		}
	}
	return m
}

// assertInsideMask fails if the shadow has alpha where the mask has none.
func assertInsideMask(t *testing.T, shadow *Image, fill *Mask) {
	t.Helper()
	if shadow.Width() != fill.Width() || shadow.Height() != fill.Height() {
		t.Fatalf("shadow %dx%d, mask %dx%d", shadow.Width(), shadow.Height(), fill.Width(), fill.Height())
	}
	for y := range fill.Height() {
		for x := range fill.Width() {
			if fill.At(x, y) == 0 && shadow.AlphaAt(x, y) != 0 {
				t.Fatalf("shadow alpha %d at (%d,%d) outside the mask", shadow.AlphaAt(x, y), x, y)
			}
		}
	}
}

func TestMakeInnerShadowHardBand(t *testing.T) {
	fill := squareMask(20, 5, 15)
	img := MakeInnerShadow(fill, Shadow{Offset: Pt(0, 2), Color: Black})
	assertInsideMask(t, img, fill)

	tests := []struct {
		name string
		x, y int
		want uint8
	}{
		{"first row", 10, 5, 255},
		{"second row", 10, 6, 255},
		{"below band", 10, 7, 0},
		{"bottom row", 10, 14, 0},
		{"left column", 5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.AlphaAt(tt.x, tt.y); got != tt.want {
				t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMakeInnerShadowNegativeOffset(t *testing.T) {
	fill := squareMask(20, 5, 15)
	img := MakeInnerShadow(fill, Shadow{Offset: Pt(-3, 0), Color: Black})
	assertInsideMask(t, img, fill)

	if img.AlphaAt(14, 10) != 255 || img.AlphaAt(12, 10) != 255 {
		t.Error("right band missing")
	}
	if img.AlphaAt(11, 10) != 0 || img.AlphaAt(5, 10) != 0 {
		t.Error("shadow outside the right band")
	}
}

func TestMakeInnerShadowNothing(t *testing.T) {
	fill := squareMask(20, 5, 15)

	tests := []struct {
		name   string
		shadow Shadow
	}{
		{"no offset no blur", Shadow{Color: Black}},
		{"transparent color", Shadow{Offset: Pt(0, 3), BlurRadius: 2, Color: Transparent}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := MakeInnerShadow(fill, tt.shadow)
			for y := range img.Height() {
				for x := range img.Width() {
					if img.AlphaAt(x, y) != 0 {
						t.Fatalf("alpha at (%d,%d) = %d, want 0", x, y, img.AlphaAt(x, y))
					}
				}
			}
		})
	}

	if img := MakeInnerShadow(nil, NewShadow(0, 1, 1)); !img.IsEmpty() {
		t.Error("nil mask gave a non-empty image")
	}
}

func TestMakeInnerShadowBlur(t *testing.T) {
	fill := squareMask(40, 8, 32)
	img := MakeInnerShadow(fill, Shadow{BlurRadius: 4, Color: Black})
	assertInsideMask(t, img, fill)

	edge, inner, center := img.AlphaAt(20, 8), img.AlphaAt(20, 11), img.AlphaAt(20, 20)
	if edge == 0 {
		t.Error("no shadow at the edge")
	}
	if !(edge > inner && inner > center) {
		t.Errorf("alpha should fall off inwards: edge %d, inner %d, center %d", edge, inner, center)
	}
	if center != 0 {
		t.Errorf("center alpha = %d, want 0 far from the edges", center)
	}

	// The square is symmetric, so is its shadow.
	if a, b := img.AlphaAt(8, 20), img.AlphaAt(31, 20); a != b {
		t.Errorf("left edge %d != right edge %d", a, b)
	}
}

func TestMakeInnerShadowColor(t *testing.T) {
	fill := squareMask(20, 5, 15)
	c := RGBA2(1, 0, 0, 0.5)
	img := MakeInnerShadow(fill, Shadow{Offset: Pt(0, 2), Color: c})

	got := img.At(10, 5)
	if !colorsEqual(got, c, 0.01) {
		t.Errorf("shadow color = %v, want %v", got, c)
	}
}

func TestMakeInnerShadowCanvasEdgeIsOutside(t *testing.T) {
	fill := NewMask(10, 10)
	fill.Fill(255)
	img := MakeInnerShadow(fill, Shadow{Offset: Pt(0, 2), Color: Black})

	if img.AlphaAt(5, 0) != 255 || img.AlphaAt(5, 1) != 255 {
		t.Error("space beyond the mask did not cast a shadow")
	}
	if img.AlphaAt(5, 2) != 0 {
		t.Errorf("alpha at row 2 = %d, want 0", img.AlphaAt(5, 2))
	}
}

func TestMakeInnerShadowPartialCoverage(t *testing.T) {
	fill := squareMask(20, 5, 15)
	fill.Set(10, 5, 128)
	img := MakeInnerShadow(fill, Shadow{Offset: Pt(0, 2), Color: Black})

	got := img.AlphaAt(10, 5)
	if got < 120 || got > 136 {
		t.Errorf("alpha on half-covered pixel = %d, want about 128", got)
	}
}
