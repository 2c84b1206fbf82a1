package text

import (
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestNewFontSource(t *testing.T) {
	t.Run("empty data", func(t *testing.T) {
		_, err := NewFontSource(nil)
		if !errors.Is(err, ErrEmptyFontData) {
			t.Errorf("err = %v, want ErrEmptyFontData", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := NewFontSource([]byte("not a font")); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("go bold", func(t *testing.T) {
		src, err := NewFontSource(gobold.TTF)
		if err != nil {
			t.Fatalf("NewFontSource: %v", err)
		}
		if !strings.Contains(src.Name(), "Go") {
			t.Errorf("Name() = %q", src.Name())
		}
	})

	t.Run("data is copied", func(t *testing.T) {
		data := append([]byte(nil), goregular.TTF...)
		src, err := NewFontSource(data)
		if err != nil {
			t.Fatal(err)
		}
		for i := range data {
			data[i] = 0
		}
		if m := src.Font(20).Metrics(); m.Ascent <= 0 {
			t.Errorf("ascent = %v after caller reused the buffer", m.Ascent)
		}
	})
}

func TestNewFontSourceFromFileMissing(t *testing.T) {
	_, err := NewFontSourceFromFile(filepath.Join(t.TempDir(), "missing.ttf"))
	if err == nil || !strings.Contains(err.Error(), "failed to read font file") {
		t.Errorf("err = %v", err)
	}
}

func TestDefaultFontSourceShared(t *testing.T) {
	if DefaultFontSource() != DefaultFontSource() {
		t.Error("DefaultFontSource must return the same source")
	}
	f := DefaultFont()
	if f.Source != DefaultFontSource() || f.Size != DefaultFontSize {
		t.Errorf("DefaultFont() = %+v", f)
	}
}

func TestFontSourceCopyPanics(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for copied FontSource")
		}
	}()
	cp := *src
	cp.Name()
}

func TestMetricsScaleLinearly(t *testing.T) {
	src := DefaultFontSource()
	small := src.Font(17).Metrics()
	large := src.Font(34).Metrics()

	if small.Ascent <= 0 || small.Descent <= 0 {
		t.Fatalf("metrics = %+v, want positive ascent and descent", small)
	}
	// 26.6 rounding allows one unit of error per value.
	const eps = 2.0 / 64
	if math.Abs(large.Ascent-2*small.Ascent) > eps {
		t.Errorf("ascent 34 = %v, want ~%v", large.Ascent, 2*small.Ascent)
	}
	if math.Abs(large.Descent-2*small.Descent) > eps {
		t.Errorf("descent 34 = %v, want ~%v", large.Descent, 2*small.Descent)
	}
	if small.LineHeight() < small.Ascent+small.Descent {
		t.Errorf("line height %v smaller than ascent+descent", small.LineHeight())
	}
}

func TestFontHelpers(t *testing.T) {
	f := DefaultFontSource().Font(10)
	if got := f.Scaled(2.5); got.Size != 25 || got.Source != f.Source {
		t.Errorf("Scaled = %+v", got)
	}
	if !(Font{}).IsZero() || f.IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := (Font{}).orDefault(); got != DefaultFont() {
		t.Errorf("orDefault = %+v", got)
	}
	if got := (Font{}).Metrics(); got != (Metrics{}) {
		t.Errorf("zero font metrics = %+v", got)
	}
}

func TestGlyphOutlineCached(t *testing.T) {
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	var buf sfnt.Buffer
	idx, err := src.outline.GlyphIndex(&buf, 'H')
	if err != nil || idx == 0 {
		t.Fatalf("GlyphIndex('H') = %d, %v", idx, err)
	}
	gid := font.GID(idx)

	a, err := src.glyphOutline(gid, 20, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := src.glyphOutline(gid, 20, 10, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("outline lengths %d and %d", len(a), len(b))
	}
	for i := range a {
		pa, pb := a[i].End(), b[i].End()
		if math.Abs(pb.X-pa.X-10) > 1e-9 || math.Abs(pb.Y-pa.Y-5) > 1e-9 {
			t.Fatalf("segment %d: %v is not %v moved by (10,5)", i, pb, pa)
		}
	}

	s := src.outlines.Stats()
	if s.Len != 1 || s.Hits != 1 {
		t.Errorf("outline cache stats = %+v, want one entry and one hit", s)
	}

	// A translated copy must not alias the cached outline.
	b[0].Args[0].X = -1000
	c, _ := src.glyphOutline(gid, 20, 0, 0)
	if c[0].Args[0] != a[0].Args[0] {
		t.Error("cached outline was modified through a returned copy")
	}
}
