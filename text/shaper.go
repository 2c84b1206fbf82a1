package text

import (
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// shaper wraps a pool of HarfBuzz shapers. HarfbuzzShaper keeps internal
// buffers and is not safe for concurrent use, so each call borrows one.
type shaper struct {
	pool sync.Pool
}

func newShaper() *shaper {
	return &shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// cluster is the smallest unbreakable unit of a shaped paragraph: the
// glyphs produced for one or more runes.
type cluster struct {
	span   int // index of the source span
	start  int // first rune, paragraph relative
	end    int // one past the last rune
	glyphs []shaping.Glyph

	advance    float64
	space      bool
	breakAfter bool
}

// shapeRun shapes para[start:end], which must use a single span, and
// returns its clusters in logical order. The whole paragraph is passed to
// HarfBuzz as context.
func (s *shaper) shapeRun(para []rune, start, end, span int, f Font, rtl bool) []cluster {
	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      para,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      font.NewFace(f.Source.shaping),
		Size:      toFixed(f.Size),
		Script:    detectScript(para[start:end]),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := output.Glyphs
	if rtl {
		// HarfBuzz returns right-to-left runs in visual order.
		glyphs = make([]shaping.Glyph, len(output.Glyphs))
		for i, g := range output.Glyphs {
			glyphs[len(glyphs)-1-i] = g
		}
	}

	var clusters []cluster
	for i := 0; i < len(glyphs); {
		j := i + 1
		for j < len(glyphs) && glyphs[j].TextIndex() == glyphs[i].TextIndex() {
			j++
		}
		c := cluster{span: span, start: glyphs[i].TextIndex(), glyphs: glyphs[i:j]}
		for _, g := range c.glyphs {
			c.advance += fromFixed(g.Advance)
		}
		clusters = append(clusters, c)
		i = j
	}

	for i := range clusters {
		if i+1 < len(clusters) {
			clusters[i].end = clusters[i+1].start
		} else {
			clusters[i].end = end
		}
		// Guard against shapers reporting non-monotonic clusters.
		if clusters[i].end <= clusters[i].start {
			clusters[i].end = min(clusters[i].start+1, end)
		}
	}
	return clusters
}

// markBreaks fills in space and breakAfter for clusters of one paragraph.
// A line may break after whitespace, after a CJK ideograph and before one.
func markBreaks(para []rune, clusters []cluster) {
	for i := range clusters {
		c := &clusters[i]
		runes := para[c.start:c.end]
		c.space = len(runes) > 0
		for _, r := range runes {
			if !unicode.IsSpace(r) {
				c.space = false
				break
			}
		}
		if len(runes) == 0 {
			continue
		}
		last := runes[len(runes)-1]
		if unicode.IsSpace(last) || isCJK(last) {
			c.breakAfter = true
		}
		if i > 0 && isCJK(runes[0]) {
			clusters[i-1].breakAfter = true
		}
	}
}

// detectScript returns the script of the first rune with a specific one.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		s := language.LookupScript(r)
		if s != language.Common && s != language.Inherited && s != language.Unknown {
			return s
		}
	}
	return language.Latin
}

// isCJK reports whether r is a CJK character that allows a line break on
// either side.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0xF900 && r <= 0xFAFF) || // CJK Compatibility Ideographs
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0x3000 && r <= 0x303F) // CJK Symbols and Punctuation
}
