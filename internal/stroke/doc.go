// Package stroke converts flattened outlines into the filled region a stroke
// of a given width covers.
//
// The stroke is centered on the outline. Instead of tracing a single offset
// outline, the expander emits one convex piece per segment plus one piece
// per join and cap, all with positive orientation. Rasterizing the pieces
// with the nonzero winding rule yields their union, which stays correct for
// self-intersecting glyph outlines, cusps and strokes wider than a counter.
//
// # Line Caps
//
// Caps only apply to open contours:
//   - LineCapButt: Flat cap ending exactly at the endpoint
//   - LineCapRound: Semicircular cap with radius = width/2
//   - LineCapSquare: Square cap extending width/2 beyond the endpoint
//
// # Line Joins
//
//   - LineJoinMiter: Sharp corner (limited by miter limit, then bevel)
//   - LineJoinRound: Circular arc at corners
//   - LineJoinBevel: Straight line across the corner
//
// # Usage
//
//	expander := stroke.NewExpander(stroke.Style{
//	    Width: 4,
//	    Cap:   stroke.LineCapRound,
//	    Join:  stroke.LineJoinRound,
//	})
//	pieces := expander.Expand(raster.Flatten(outline))
//	mask := raster.Fill(pieces, w, h, origin)
package stroke
