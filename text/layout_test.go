package text

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

const eps = 1e-6

func layoutOf(t *testing.T, s *AttributedString, maxWidth float64) *Layout {
	t.Helper()
	l, err := NewLayouter().Layout(s, maxWidth)
	if err != nil {
		t.Fatalf("Layout(%q, %v): %v", s.String(), maxWidth, err)
	}
	return l
}

func regular(size float64) Font {
	return DefaultFontSource().Font(size)
}

func TestLayoutEmpty(t *testing.T) {
	l := layoutOf(t, Attributed(""), 100)
	if !l.IsEmpty() || l.Height != 0 || l.Width != 0 || l.GlyphCount() != 0 {
		t.Errorf("empty layout = %+v", l)
	}
	if l.MaxWidth != 100 {
		t.Errorf("MaxWidth = %v", l.MaxWidth)
	}
}

func TestLayoutInvalidWidth(t *testing.T) {
	for _, w := range []float64{-1, math.NaN(), math.Inf(1)} {
		if _, err := NewLayouter().Layout(Attributed("x"), w); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("width %v: err = %v", w, err)
		}
	}
}

func TestLayoutSingleLine(t *testing.T) {
	f := regular(40)
	l := layoutOf(t, AttributedWithFont("Hi", f), 0)

	if len(l.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.Lines))
	}
	line := l.Lines[0]
	if len(line.Glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(line.Glyphs))
	}

	m := f.Metrics()
	if math.Abs(line.Y-m.Ascent) > eps {
		t.Errorf("baseline = %v, want %v", line.Y, m.Ascent)
	}
	if math.Abs(l.Height-(m.Ascent+m.Descent)) > eps {
		t.Errorf("height = %v, want %v", l.Height, m.Ascent+m.Descent)
	}

	h, i := line.Glyphs[0], line.Glyphs[1]
	if h.X != 0 || math.Abs(i.X-h.Advance) > eps {
		t.Errorf("pen positions %v, %v", h.X, i.X)
	}
	if math.Abs(l.Width-(h.Advance+i.Advance)) > eps {
		t.Errorf("width = %v, want sum of advances", l.Width)
	}
	if h.Cluster != 0 || i.Cluster != 1 {
		t.Errorf("clusters = %d, %d", h.Cluster, i.Cluster)
	}

	for _, g := range line.Glyphs {
		if len(g.Outline) == 0 {
			t.Fatalf("glyph %d has no outline", g.ID)
		}
		if g.Outline[0].Op != SegmentMoveTo {
			t.Errorf("outline starts with op %d", g.Outline[0].Op)
		}
		for _, seg := range g.Outline {
			p := seg.End()
			// Ink sits between the line top and the descender.
			if p.Y < line.Top()-1 || p.Y > line.Bottom()+1 {
				t.Errorf("outline point %v outside line box", p)
			}
			if p.X < g.X-1 || p.X > g.X+g.Advance+1 {
				t.Errorf("outline point %v outside glyph advance", p)
			}
		}
	}
}

func TestLayoutWrapsAtSpaces(t *testing.T) {
	f := regular(20)
	hello := layoutOf(t, AttributedWithFont("hello", f), 0).Width
	s := AttributedWithFont("hello world", f)

	l := layoutOf(t, s, hello+1)
	if len(l.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(l.Lines))
	}
	if math.Abs(l.Lines[0].Width-hello) > eps {
		t.Errorf("first line width = %v, want %v (trailing space excluded)", l.Lines[0].Width, hello)
	}
	for i, line := range l.Lines {
		if line.Width > hello+1+eps {
			t.Errorf("line %d width %v exceeds constraint", i, line.Width)
		}
	}
	if l.Lines[1].Glyphs[0].Cluster != 6 {
		t.Errorf("second line starts at cluster %d, want 6", l.Lines[1].Glyphs[0].Cluster)
	}

	lh := f.Metrics()
	want := lh.Ascent + lh.Descent + lh.LineGap + lh.Ascent + lh.Descent
	if math.Abs(l.Height-want) > eps {
		t.Errorf("height = %v, want %v", l.Height, want)
	}
}

func TestLayoutNoWrapWithoutConstraint(t *testing.T) {
	l := layoutOf(t, Attributed("a fairly long sentence without any hard breaks"), 0)
	if len(l.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(l.Lines))
	}
}

func TestLayoutBreaksOverlongWord(t *testing.T) {
	const width = 30
	l := layoutOf(t, AttributedWithFont("abcdefghijkl", regular(20)), width)
	if len(l.Lines) < 2 {
		t.Fatalf("got %d lines, want the word split", len(l.Lines))
	}
	total := 0
	for i, line := range l.Lines {
		if len(line.Glyphs) == 0 {
			t.Fatalf("line %d is empty", i)
		}
		if len(line.Glyphs) > 1 && line.Width > width+eps {
			t.Errorf("line %d width %v exceeds %v", i, line.Width, width)
		}
		total += len(line.Glyphs)
	}
	if total != 12 {
		t.Errorf("glyph count = %d, want 12", total)
	}
}

func TestLayoutTrailingSpacesIgnored(t *testing.T) {
	f := regular(20)
	plain := layoutOf(t, AttributedWithFont("ab", f), 0)
	spaced := layoutOf(t, AttributedWithFont("ab   ", f), 0)
	if math.Abs(plain.Width-spaced.Width) > eps {
		t.Errorf("width with trailing spaces = %v, want %v", spaced.Width, plain.Width)
	}
}

func TestLayoutHardBreaks(t *testing.T) {
	tests := []struct {
		text  string
		lines int
	}{
		{"a\nb", 2},
		{"a\r\nb\rc", 3},
		{"a\n", 2},
		{"\n", 2},
		{"a\u2029b", 2},
	}
	for _, tt := range tests {
		l := layoutOf(t, Attributed(tt.text), 0)
		if len(l.Lines) != tt.lines {
			t.Errorf("%q: got %d lines, want %d", tt.text, len(l.Lines), tt.lines)
		}
		for i := 1; i < len(l.Lines); i++ {
			if l.Lines[i].Y <= l.Lines[i-1].Y {
				t.Errorf("%q: baselines not increasing", tt.text)
			}
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	const box = 300
	f := regular(20)

	tests := []struct {
		name  string
		text  string
		align Alignment
		want  func(width float64) float64
	}{
		{"left", "abc", AlignLeft, func(float64) float64 { return 0 }},
		{"natural ltr", "abc", AlignNatural, func(float64) float64 { return 0 }},
		{"justified ltr", "abc", AlignJustified, func(float64) float64 { return 0 }},
		{"center", "abc", AlignCenter, func(w float64) float64 { return (box - w) / 2 }},
		{"right", "abc", AlignRight, func(w float64) float64 { return box - w }},
		{"natural rtl", "שלום", AlignNatural, func(w float64) float64 { return box - w }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layoutOf(t, AttributedWithFontColorAlignment(tt.text, f, nil, tt.align), box)
			line := l.Lines[0]
			if want := tt.want(line.Width); math.Abs(line.X-want) > eps {
				t.Errorf("line X = %v, want %v", line.X, want)
			}
			if math.Abs(line.Glyphs[0].X-line.X) > eps {
				t.Errorf("first glyph at %v, line at %v", line.Glyphs[0].X, line.X)
			}
		})
	}
}

func TestLayoutRTLVisualOrder(t *testing.T) {
	l := layoutOf(t, Attributed("שלום"), 0)
	glyphs := l.Lines[0].Glyphs
	if !l.Lines[0].RTL {
		t.Fatal("line should be right-to-left")
	}
	// Visual order puts the last logical character first.
	if glyphs[0].Cluster < glyphs[len(glyphs)-1].Cluster {
		t.Errorf("clusters %d..%d are in logical order", glyphs[0].Cluster, glyphs[len(glyphs)-1].Cluster)
	}
}

func TestLayoutSpanAttributes(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	big := regular(40)
	s := NewAttributedString(
		Span{Text: "a", Attributes: Attributes{Font: regular(10), Color: color.Black}},
		Span{Text: "b", Attributes: Attributes{Font: big, Color: red}},
	)
	l := layoutOf(t, s, 0)
	line := l.Lines[0]
	if len(line.Glyphs) != 2 {
		t.Fatalf("got %d glyphs", len(line.Glyphs))
	}
	if !sameColor(line.Glyphs[1].Color, red) || line.Glyphs[1].Font != big {
		t.Errorf("second glyph = %+v", line.Glyphs[1])
	}
	// The tallest span drives the line metrics.
	if math.Abs(line.Ascent-big.Metrics().Ascent) > eps {
		t.Errorf("ascent = %v, want %v", line.Ascent, big.Metrics().Ascent)
	}
}

func TestLayoutNormalizesNFC(t *testing.T) {
	composed := layoutOf(t, Attributed("\u00e9"), 0)
	decomposed := layoutOf(t, Attributed("e\u0301"), 0)
	if composed.GlyphCount() != decomposed.GlyphCount() {
		t.Errorf("glyph counts %d vs %d", composed.GlyphCount(), decomposed.GlyphCount())
	}
	if math.Abs(composed.Width-decomposed.Width) > eps {
		t.Errorf("widths %v vs %v", composed.Width, decomposed.Width)
	}
}

func TestLayoutHeightMonotonicInScale(t *testing.T) {
	s := AttributedWithFont("The quick brown fox jumps over the lazy dog", regular(40))
	prev := 0.0
	for k := 30; k <= 100; k++ {
		scale := float64(k) / 100
		l := layoutOf(t, s.Scaled(scale), 300)
		if l.Height+eps < prev {
			t.Fatalf("height %v at scale %v below %v", l.Height, scale, prev)
		}
		prev = l.Height
	}
}

func TestLayoutNilSource(t *testing.T) {
	s := &AttributedString{spans: []Span{{Text: "x"}}}
	if _, err := NewLayouter().Layout(s, 0); !errors.Is(err, ErrNilFontSource) {
		t.Errorf("err = %v, want ErrNilFontSource", err)
	}
}
