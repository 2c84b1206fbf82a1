package fxlabel

import (
	"image"
	"image/color"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}
	if !mask.IsEmpty() {
		t.Error("new mask should be empty")
	}

	if m := NewMask(-5, 3); m.Width() != 0 || len(m.Data()) != 0 {
		t.Errorf("negative size gave %dx%d", m.Width(), m.Height())
	}
}

func TestMaskSetAt(t *testing.T) {
	mask := NewMask(10, 10)
	mask.Set(3, 4, 200)
	mask.Set(-1, 0, 255)
	mask.Set(10, 0, 255)

	if got := mask.At(3, 4); got != 200 {
		t.Errorf("At(3,4) = %d, want 200", got)
	}
	for _, p := range [][2]int{{-1, 0}, {10, 0}, {0, -1}, {0, 10}} {
		if got := mask.At(p[0], p[1]); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0 outside", p[0], p[1], got)
		}
	}
	if mask.IsEmpty() {
		t.Error("mask with a set pixel reported empty")
	}
}

func TestMaskFillInvertClone(t *testing.T) {
	mask := NewMask(8, 8)
	mask.Fill(100)
	mask.Invert()
	if mask.At(4, 4) != 155 {
		t.Errorf("expected 155, got %d", mask.At(4, 4))
	}

	clone := mask.Clone()
	mask.Fill(0)
	if clone.At(4, 4) != 155 {
		t.Errorf("clone should not be affected, got %d", clone.At(4, 4))
	}
}

func TestNewMaskFromAlpha(t *testing.T) {
	t.Run("alpha image", func(t *testing.T) {
		a := image.NewAlpha(image.Rect(0, 0, 4, 3))
		a.SetAlpha(2, 1, color.Alpha{A: 77})
		m := NewMaskFromAlpha(a)
		if m.Width() != 4 || m.Height() != 3 {
			t.Fatalf("size %dx%d", m.Width(), m.Height())
		}
		if m.At(2, 1) != 77 {
			t.Errorf("At(2,1) = %d, want 77", m.At(2, 1))
		}
	})

	t.Run("sub image", func(t *testing.T) {
		a := image.NewAlpha(image.Rect(0, 0, 6, 6))
		a.SetAlpha(3, 3, color.Alpha{A: 9})
		sub := a.SubImage(image.Rect(2, 2, 5, 5)).(*image.Alpha)
		m := NewMaskFromAlpha(sub)
		if m.Width() != 3 || m.At(1, 1) != 9 {
			t.Errorf("sub image mask: %dx%d, At(1,1) = %d", m.Width(), m.Height(), m.At(1, 1))
		}
	})

	t.Run("rgba image", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.Set(1, 0, color.NRGBA{R: 255, A: 128})
		m := NewMaskFromAlpha(img)
		if m.At(1, 0) != 128 || m.At(0, 0) != 0 {
			t.Errorf("At(1,0) = %d, At(0,0) = %d", m.At(1, 0), m.At(0, 0))
		}
	})
}
