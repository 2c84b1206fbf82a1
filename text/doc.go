// Package text provides the attributed strings and the default line layout
// used by fxlabel.
//
// The pipeline is split the same way as in most text stacks:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Font: lightweight value pairing a FontSource with a size
//   - AttributedString: immutable runs of text, each with a font, a color
//     and an alignment
//   - Layouter: shapes runs with HarfBuzz (github.com/go-text/typesetting),
//     wraps them greedily and returns positioned glyph outlines
//
// # Example usage
//
//	src, err := text.NewFontSourceFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s := text.AttributedWithFont("Hello", src.Font(32))
//	layout, err := text.NewLayouter().Layout(s, 200)
//
// # Metrics
//
// All metrics are unhinted, so every length in a Layout scales linearly with
// the font size. Callers that search for a size (see fxlabel.Fit) rely on
// this: the layout height never decreases when the size grows.
//
// # Coordinates
//
// Layout space has its origin at the top-left corner of the first line box,
// with y growing downwards. Glyph outlines are returned in that space.
package text
