package text

import (
	"image/color"
	"math"
	"slices"

	"github.com/go-text/typesetting/font"
	"golang.org/x/text/unicode/norm"
)

// Glyph is a positioned glyph of a Layout.
type Glyph struct {
	// ID is the glyph index in Font.
	ID uint32

	// Cluster is the index of the first rune of the glyph's cluster in the
	// NFC-normalized text.
	Cluster int

	// X and Y are the pen position: Y is the line baseline.
	X, Y    float64
	Advance float64

	Font  Font
	Color color.Color

	// Outline is the glyph outline in layout space. Empty for blank glyphs.
	Outline []Segment
}

// Line is a single laid-out line.
type Line struct {
	// Glyphs in visual order, left to right.
	Glyphs []Glyph

	// X is the left edge of the line after alignment.
	X float64

	// Width is the advance of the line without trailing whitespace.
	Width float64

	Ascent  float64
	Descent float64
	LineGap float64

	// Y is the baseline position.
	Y float64

	RTL bool

	align Alignment
}

// Top returns the top of the line box.
func (l *Line) Top() float64 { return l.Y - l.Ascent }

// Bottom returns the bottom of the line box.
func (l *Line) Bottom() float64 { return l.Y + l.Descent }

// Layout is the result of laying out an AttributedString.
type Layout struct {
	Lines []Line

	// Width is the width of the widest line.
	Width float64

	// Height is the bottom of the last line box.
	Height float64

	// MaxWidth is the wrap width the layout was computed for; 0 means none.
	MaxWidth float64
}

// BoxWidth returns the width lines were aligned in: MaxWidth, or the
// widest line when it is larger or when there is no constraint.
func (l *Layout) BoxWidth() float64 {
	return max(l.MaxWidth, l.Width)
}

// IsEmpty reports whether the layout has no lines.
func (l *Layout) IsEmpty() bool {
	return l == nil || len(l.Lines) == 0
}

// GlyphCount returns the number of glyphs over all lines.
func (l *Layout) GlyphCount() int {
	if l == nil {
		return 0
	}
	n := 0
	for i := range l.Lines {
		n += len(l.Lines[i].Glyphs)
	}
	return n
}

// Layouter lays out attributed strings. It is the default shape provider of
// fxlabel. A Layouter is safe for concurrent use.
type Layouter struct {
	shaper *shaper
}

// NewLayouter returns a Layouter.
func NewLayouter() *Layouter {
	return &Layouter{shaper: newShaper()}
}

// paragraph is one hard-broken block of text.
type paragraph struct {
	runes  []rune
	spans  []int // span index per rune
	offset int   // index of runes[0] in the whole text
	span   int   // span that styles the paragraph
}

// Layout shapes s and breaks it into lines no wider than maxWidth.
// maxWidth 0 disables wrapping. Words longer than maxWidth are broken
// between glyphs.
func (l *Layouter) Layout(s *AttributedString, maxWidth float64) (*Layout, error) {
	if maxWidth < 0 || math.IsNaN(maxWidth) || math.IsInf(maxWidth, 0) {
		return nil, ErrInvalidWidth
	}

	layout := &Layout{MaxWidth: maxWidth}
	if s.IsEmpty() {
		return layout, nil
	}

	spans := s.spans
	for _, sp := range spans {
		if sp.Attributes.Font.Source == nil {
			return nil, ErrNilFontSource
		}
	}

	for _, para := range splitParagraphs(spans) {
		lines := l.layoutParagraph(para, spans, maxWidth)
		layout.Lines = append(layout.Lines, lines...)
	}

	// Stack baselines.
	y := 0.0
	for i := range layout.Lines {
		line := &layout.Lines[i]
		if i > 0 {
			prev := &layout.Lines[i-1]
			y = prev.Y + prev.Descent + prev.LineGap
		}
		line.Y = y + line.Ascent
		layout.Width = max(layout.Width, line.Width)
	}
	last := &layout.Lines[len(layout.Lines)-1]
	layout.Height = last.Bottom()

	box := layout.BoxWidth()
	for i := range layout.Lines {
		if err := place(&layout.Lines[i], box); err != nil {
			return nil, err
		}
	}

	return layout, nil
}

// splitParagraphs normalizes every span to NFC and splits the text on hard
// line breaks (\n, \r\n, \r, U+2028, U+2029).
func splitParagraphs(spans []Span) []paragraph {
	var runes []rune
	var owner []int
	for i, sp := range spans {
		for _, r := range norm.NFC.String(sp.Text) {
			runes = append(runes, r)
			owner = append(owner, i)
		}
	}

	var paras []paragraph
	start := 0
	emit := func(end, sepSpan int) {
		p := paragraph{runes: runes[start:end], spans: owner[start:end], offset: start, span: sepSpan}
		if end > start {
			p.span = owner[start]
		}
		paras = append(paras, p)
	}

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			emit(i, owner[i])
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n', '\u2028', '\u2029':
			emit(i, owner[i])
			start = i + 1
		}
	}
	lastSpan := len(spans) - 1
	if len(owner) > 0 {
		lastSpan = owner[len(owner)-1]
	}
	emit(len(runes), lastSpan)
	return paras
}

// layoutParagraph shapes one paragraph and wraps it. The returned lines
// carry glyphs with X relative to the line start and no outlines yet.
func (l *Layouter) layoutParagraph(p paragraph, spans []Span, maxWidth float64) []Line {
	rtl := isRTL(p.runes)
	align := spans[p.span].Attributes.Alignment

	var clusters []cluster
	for start := 0; start < len(p.runes); {
		end := start + 1
		for end < len(p.runes) && p.spans[end] == p.spans[start] {
			end++
		}
		sp := p.spans[start]
		clusters = append(clusters, l.shaper.shapeRun(p.runes, start, end, sp, spans[sp].Attributes.Font, rtl)...)
		start = end
	}
	markBreaks(p.runes, clusters)

	if len(clusters) == 0 {
		m := spans[p.span].Attributes.Font.Metrics()
		return []Line{{Ascent: m.Ascent, Descent: m.Descent, LineGap: m.LineGap, RTL: rtl, align: align}}
	}

	var lines []Line
	for _, r := range wrapClusters(clusters, maxWidth) {
		lines = append(lines, buildLine(clusters[r.start:r.end], spans, p.offset, rtl, align))
	}
	return lines
}

// buildLine assembles glyphs for clusters, which are in logical order.
func buildLine(clusters []cluster, spans []Span, offset int, rtl bool, align Alignment) Line {
	line := Line{RTL: rtl, align: align}

	trailing := len(clusters)
	for trailing > 0 && clusters[trailing-1].space {
		trailing--
	}

	var metrics Metrics
	seen := make(map[int]bool)
	for i, c := range clusters {
		if !seen[c.span] {
			seen[c.span] = true
			metrics = metrics.max(spans[c.span].Attributes.Font.Metrics())
		}
		if i < trailing {
			line.Width += c.advance
		}
	}
	line.Ascent = metrics.Ascent
	line.Descent = metrics.Descent
	line.LineGap = metrics.LineGap

	order := clusters
	pen := 0.0
	if rtl {
		// Trailing spaces of a right-to-left line end up on its left.
		order = slices.Clone(clusters)
		slices.Reverse(order)
		for _, c := range clusters[trailing:] {
			pen -= c.advance
		}
	}

	for _, c := range order {
		attrs := spans[c.span].Attributes
		glyphs := c.glyphs
		if rtl {
			glyphs = slices.Clone(glyphs)
			slices.Reverse(glyphs)
		}
		for _, g := range glyphs {
			line.Glyphs = append(line.Glyphs, Glyph{
				ID:      uint32(g.GlyphID),
				Cluster: offset + g.TextIndex(),
				X:       pen + fromFixed(g.XOffset),
				Y:       -fromFixed(g.YOffset),
				Advance: fromFixed(g.Advance),
				Font:    attrs.Font,
				Color:   attrs.Color,
			})
			pen += fromFixed(g.Advance)
		}
	}
	return line
}

// place aligns line inside a box of the given width and loads the glyph
// outlines at their final positions.
func place(line *Line, box float64) error {
	align := line.align.resolve(line.RTL)

	var x float64
	switch align {
	case AlignCenter:
		x = (box - line.Width) / 2
	case AlignRight:
		x = box - line.Width
	}
	line.X = x

	for i := range line.Glyphs {
		g := &line.Glyphs[i]
		g.X += x
		g.Y += line.Y
		outline, err := g.Font.Source.glyphOutline(font.GID(g.ID), g.Font.Size, g.X, g.Y)
		if err != nil {
			return err
		}
		g.Outline = outline
	}
	return nil
}
