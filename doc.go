// Package fxlabel renders decorated text labels on the CPU.
//
// # Overview
//
// A label is one logical run of attributed text whose glyphs can carry
// several concentric strokes, a linear gradient fill and a stack of inner
// shadows, each composited with its own blend mode. The label shrinks its
// text uniformly, down to a minimum scale factor, until it fits a maximum
// size.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fxlabel"
//	    "github.com/gogpu/fxlabel/text"
//	)
//
//	l := fxlabel.NewLabel()
//	_ = l.SetMaxSize(fxlabel.Size{Width: 200, Height: 40})
//	_ = l.SetMinimumScaleFactor(0.5)
//	_ = l.SetStrokes([]float64{4, 2}, []fxlabel.RGBA{fxlabel.Black, fxlabel.White})
//	_ = l.SetGradientColors([]fxlabel.RGBA{fxlabel.Hex("#f80"), fxlabel.Hex("#f00")})
//	_ = l.SetAttributedText(text.Attributed("Hello"))
//	_ = l.Image().SavePNG("hello.png")
//
// # Pipeline
//
// Every mutation runs one synchronous pass:
//
//	Fit (ShapeProvider, scale search) → GeometryFromLayout → Composite
//
// Composite paints strokes widest-first, then the fill (solid or gradient,
// confined to the glyphs), then every inner shadow in order with its blend
// mode, clipped to the glyph fill mask. The pieces are exported so they can
// be driven without a Label.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Gradient start and end points are in unit space of the text bounds:
// (0,0) is the top-left corner and (1,1) the bottom-right one.
package fxlabel

// Version is the current version of the library.
const Version = "0.1.0"
