package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNilFontSource is returned when a Font without a source is laid out.
	ErrNilFontSource = errors.New("text: nil font source")

	// ErrInvalidWidth is returned for a negative or non-finite wrap width.
	ErrInvalidWidth = errors.New("text: invalid layout width")
)
