package text

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Alignment specifies horizontal line alignment inside the layout box.
type Alignment uint8

const (
	// AlignNatural aligns to the start edge of the paragraph's base
	// direction: left for left-to-right text, right for right-to-left text.
	AlignNatural Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	// AlignJustified lays out like AlignNatural.
	AlignJustified
)

// DefaultAlignment is the alignment used when none is given.
const DefaultAlignment = AlignNatural

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignNatural:
		return "natural"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	default:
		return "unknown"
	}
}

// ParseAlignment parses an alignment name as returned by String.
func ParseAlignment(name string) (Alignment, bool) {
	for a := AlignNatural; a <= AlignJustified; a++ {
		if strings.EqualFold(name, a.String()) {
			return a, true
		}
	}
	return AlignNatural, false
}

// resolve maps Natural and Justified onto Left or Right.
func (a Alignment) resolve(rtl bool) Alignment {
	switch a {
	case AlignNatural, AlignJustified:
		if rtl {
			return AlignRight
		}
		return AlignLeft
	default:
		return a
	}
}

// isRTL reports whether the paragraph's base direction is right-to-left:
// the class of the first strong character decides (rule P2 of UAX #9);
// paragraphs without one are left-to-right.
func isRTL(runes []rune) bool {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return false
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}
