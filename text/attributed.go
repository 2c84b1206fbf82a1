package text

import (
	"image/color"
	"strings"
)

// DefaultColor is the foreground color used when none is given.
var DefaultColor color.Color = color.Black

// Attributes are the styling of one Span.
type Attributes struct {
	Font      Font
	Color     color.Color
	Alignment Alignment
}

// DefaultAttributes returns Go Regular 17, black, natural alignment.
func DefaultAttributes() Attributes {
	return Attributes{
		Font:      DefaultFont(),
		Color:     DefaultColor,
		Alignment: AlignNatural,
	}
}

func (a Attributes) orDefault() Attributes {
	a.Font = a.Font.orDefault()
	if a.Color == nil {
		a.Color = DefaultColor
	}
	return a
}

// Span is a run of text sharing one set of attributes.
type Span struct {
	Text       string
	Attributes Attributes
}

// AttributedString is an immutable sequence of styled runs.
// The zero value and nil are both the empty string.
//
// Alignment is a paragraph property: the alignment of the span that starts
// a paragraph applies to the whole paragraph.
type AttributedString struct {
	spans []Span
}

// Attributed returns s with the default attributes.
func Attributed(s string) *AttributedString {
	return AttributedWithFontColorAlignment(s, DefaultFont(), DefaultColor, AlignNatural)
}

// AttributedWithFont returns s in font f with the default color and alignment.
func AttributedWithFont(s string, f Font) *AttributedString {
	return AttributedWithFontColorAlignment(s, f, DefaultColor, AlignNatural)
}

// AttributedWithFontColor returns s in font f and color c.
func AttributedWithFontColor(s string, f Font, c color.Color) *AttributedString {
	return AttributedWithFontColorAlignment(s, f, c, AlignNatural)
}

// AttributedWithFontColorAlignment returns a single-run string.
// A zero Font or nil color falls back to the defaults.
func AttributedWithFontColorAlignment(s string, f Font, c color.Color, align Alignment) *AttributedString {
	return NewAttributedString(Span{
		Text:       s,
		Attributes: Attributes{Font: f, Color: c, Alignment: align},
	})
}

// NewAttributedString builds a multi-run string. Empty spans are dropped and
// missing attributes are filled with the defaults.
func NewAttributedString(spans ...Span) *AttributedString {
	out := make([]Span, 0, len(spans))
	for _, sp := range spans {
		if sp.Text == "" {
			continue
		}
		sp.Attributes = sp.Attributes.orDefault()
		out = append(out, sp)
	}
	return &AttributedString{spans: out}
}

// String returns the plain text.
func (s *AttributedString) String() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, sp := range s.spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Spans returns a copy of the runs.
func (s *AttributedString) Spans() []Span {
	if s == nil {
		return nil
	}
	out := make([]Span, len(s.spans))
	copy(out, s.spans)
	return out
}

// Len returns the length of the text in bytes.
func (s *AttributedString) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, sp := range s.spans {
		n += len(sp.Text)
	}
	return n
}

// IsEmpty reports whether the string has no text.
func (s *AttributedString) IsEmpty() bool {
	return s == nil || len(s.spans) == 0
}

// first returns the attributes of the first run, or the defaults.
func (s *AttributedString) first() Attributes {
	if s.IsEmpty() {
		return DefaultAttributes()
	}
	return s.spans[0].Attributes
}

// Font returns the font of the first run.
func (s *AttributedString) Font() Font { return s.first().Font }

// Color returns the color of the first run.
func (s *AttributedString) Color() color.Color { return s.first().Color }

// Alignment returns the alignment of the first run.
func (s *AttributedString) Alignment() Alignment { return s.first().Alignment }

// WithForegroundColor returns a copy whose runs all use color c.
// Every other attribute is preserved.
func (s *AttributedString) WithForegroundColor(c color.Color) *AttributedString {
	if c == nil {
		c = DefaultColor
	}
	return s.mapAttributes(func(a Attributes) Attributes {
		a.Color = c
		return a
	})
}

// WithFont returns a copy whose runs all use font f.
func (s *AttributedString) WithFont(f Font) *AttributedString {
	f = f.orDefault()
	return s.mapAttributes(func(a Attributes) Attributes {
		a.Font = f
		return a
	})
}

// WithAlignment returns a copy whose runs all use alignment align.
func (s *AttributedString) WithAlignment(align Alignment) *AttributedString {
	return s.mapAttributes(func(a Attributes) Attributes {
		a.Alignment = align
		return a
	})
}

// Scaled returns a copy with every font size multiplied by factor.
func (s *AttributedString) Scaled(factor float64) *AttributedString {
	return s.mapAttributes(func(a Attributes) Attributes {
		a.Font = a.Font.Scaled(factor)
		return a
	})
}

// Equal reports whether both strings hold the same runs.
// Colors are compared by their RGBA values.
func (s *AttributedString) Equal(o *AttributedString) bool {
	if s.IsEmpty() || o.IsEmpty() {
		return s.IsEmpty() == o.IsEmpty()
	}
	if len(s.spans) != len(o.spans) {
		return false
	}
	for i, a := range s.spans {
		b := o.spans[i]
		if a.Text != b.Text || a.Attributes.Font != b.Attributes.Font ||
			a.Attributes.Alignment != b.Attributes.Alignment ||
			!sameColor(a.Attributes.Color, b.Attributes.Color) {
			return false
		}
	}
	return true
}

func (s *AttributedString) mapAttributes(fn func(Attributes) Attributes) *AttributedString {
	if s == nil {
		return &AttributedString{}
	}
	out := make([]Span, len(s.spans))
	for i, sp := range s.spans {
		out[i] = Span{Text: sp.Text, Attributes: fn(sp.Attributes)}
	}
	return &AttributedString{spans: out}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
