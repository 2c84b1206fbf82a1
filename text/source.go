package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/fxlabel/internal/cache"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// FontSource represents a loaded font file.
// One FontSource serves any number of Font values at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// The same bytes are parsed twice: by golang.org/x/image/font/sfnt for
// outlines and metrics, and by go-text for shaping. Both parsers agree on
// glyph indices, so shaped glyph IDs can be fed straight to LoadGlyph.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection.
	// It must point to the FontSource itself.
	addr *FontSource

	data    []byte
	outline *sfnt.Font
	shaping *font.Font
	name    string

	buffers  sync.Pool
	outlines *cache.Cache[outlineKey, []Segment]
}

// outlineCacheSize bounds the decoded outlines kept per FontSource. A fit
// search lays the same glyphs out at a handful of sizes.
const outlineCacheSize = 2048

// outlineKey identifies a glyph outline at the origin.
type outlineKey struct {
	gid  font.GID
	size float64
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outline, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	face, err := font.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		outline:  outline,
		shaping:  face.Font,
		outlines: cache.New[outlineKey, []Segment](outlineCacheSize),
	}
	s.addr = s
	s.buffers.New = func() any { return &sfnt.Buffer{} }

	var buf sfnt.Buffer
	if name, err := outline.Name(&buf, sfnt.NameIDFull); err == nil {
		s.name = name
	}

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data)
}

var (
	defaultSourceOnce sync.Once
	defaultSource     *FontSource
)

// DefaultFontSource returns the shared Go Regular font source.
func DefaultFontSource() *FontSource {
	defaultSourceOnce.Do(func() {
		src, err := NewFontSource(goregular.TTF)
		if err != nil {
			// The embedded font is known good.
			panic(err)
		}
		defaultSource = src
	})
	return defaultSource
}

// Font returns a Font of this source at the given size in pixels.
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Font(size float64) Font {
	if s == nil {
		panic("text: FontSource is nil, did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()
	return Font{Source: s, Size: size}
}

// Name returns the full font name, or "" when the font has none.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// metrics returns unhinted vertical metrics at size.
func (s *FontSource) metrics(size float64) Metrics {
	buf := s.buffers.Get().(*sfnt.Buffer)
	defer s.buffers.Put(buf)

	m, err := s.outline.Metrics(buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2}
	}

	ascent := fromFixed(m.Ascent)
	descent := fromFixed(m.Descent)
	gap := fromFixed(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{Ascent: ascent, Descent: descent, LineGap: gap}
}

// glyphOutline returns the outline of glyph gid at size, translated so the
// glyph origin sits at (x, y).
func (s *FontSource) glyphOutline(gid font.GID, size, x, y float64) ([]Segment, error) {
	key := outlineKey{gid: gid, size: size}
	segs, ok := s.outlines.Get(key)
	if !ok {
		var err error
		if segs, err = s.loadOutline(gid, size); err != nil {
			return nil, err
		}
		s.outlines.Set(key, segs)
	}
	if len(segs) == 0 {
		return nil, nil
	}

	out := make([]Segment, len(segs))
	for i, seg := range segs {
		out[i].Op = seg.Op
		for j := range seg.Op.points() {
			out[i].Args[j] = Point{X: seg.Args[j].X + x, Y: seg.Args[j].Y + y}
		}
	}
	return out, nil
}

// loadOutline decodes a glyph outline at the origin. Glyphs without an
// outline, such as color bitmaps, yield nil.
func (s *FontSource) loadOutline(gid font.GID, size float64) ([]Segment, error) {
	if gid > 0xFFFF {
		return nil, nil
	}

	buf := s.buffers.Get().(*sfnt.Buffer)
	defer s.buffers.Put(buf)

	segs, err := s.outline.LoadGlyph(buf, sfnt.GlyphIndex(gid), toFixed(size), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return nil, nil
		}
		return nil, fmt.Errorf("text: glyph %d: %w", gid, err)
	}

	out := make([]Segment, 0, len(segs))
	for _, seg := range segs {
		var o Segment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			o.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			o.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			o.Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			o.Op = SegmentCubeTo
		}
		for i := range o.Op.points() {
			o.Args[i] = Point{X: fromFixed(seg.Args[i].X), Y: fromFixed(seg.Args[i].Y)}
		}
		out = append(out, o)
	}
	return out, nil
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v*64 + 0.5)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
