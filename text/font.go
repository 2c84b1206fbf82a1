package text

// DefaultFontSize is the size used when no font is given.
const DefaultFontSize = 17.0

// Font is a FontSource at a specific size. It is a small value and is
// compared with ==.
type Font struct {
	Source *FontSource
	Size   float64
}

// DefaultFont returns Go Regular at DefaultFontSize.
func DefaultFont() Font {
	return DefaultFontSource().Font(DefaultFontSize)
}

// IsZero reports whether f carries no source.
func (f Font) IsZero() bool {
	return f.Source == nil
}

// Scaled returns f with its size multiplied by factor.
func (f Font) Scaled(factor float64) Font {
	f.Size *= factor
	return f
}

// Metrics returns the unhinted vertical metrics of f.
func (f Font) Metrics() Metrics {
	if f.Source == nil {
		return Metrics{}
	}
	return f.Source.metrics(f.Size)
}

// orDefault fills a zero Font with the default one and a non-positive size
// with DefaultFontSize.
func (f Font) orDefault() Font {
	if f.Source == nil {
		f.Source = DefaultFontSource()
	}
	if f.Size <= 0 {
		f.Size = DefaultFontSize
	}
	return f
}

// Metrics holds vertical font metrics in pixels.
// Ascent and Descent are both positive distances from the baseline.
type Metrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// LineHeight returns Ascent + Descent + LineGap.
func (m Metrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

func (m Metrics) max(o Metrics) Metrics {
	return Metrics{
		Ascent:  max(m.Ascent, o.Ascent),
		Descent: max(m.Descent, o.Descent),
		LineGap: max(m.LineGap, o.LineGap),
	}
}
