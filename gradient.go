package fxlabel

import "sort"

// Default gradient vector: top to bottom through the middle of the text.
var (
	DefaultGradientStart = Pt(0.5, 0)
	DefaultGradientEnd   = Pt(0.5, 1)
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a linear gradient whose colors are spaced evenly between
// Start and End. Start and End are in unit space of the text bounds.
// Beyond the end points the edge colors extend.
type Gradient struct {
	Colors []RGBA
	Start  Point
	End    Point
}

// Stops returns the color stops: color i sits at offset i/(n-1).
func (g Gradient) Stops() []ColorStop {
	n := len(g.Colors)
	stops := make([]ColorStop, n)
	for i, c := range g.Colors {
		offset := 0.0
		if n > 1 {
			offset = float64(i) / float64(n-1)
		}
		stops[i] = ColorStop{Offset: offset, Color: c}
	}
	return stops
}

// ColorAt returns the gradient color at parameter t, clamped to [0, 1].
func (g Gradient) ColorAt(t float64) RGBA {
	return colorAtOffset(g.Stops(), t)
}

// shader resolves the gradient against the text bounds and returns a
// function mapping a layout-space point to its gradient color.
func (g Gradient) shader(bounds Rect) func(p Point) RGBA {
	stops := g.Stops()
	start := bounds.Unit(g.Start)
	end := bounds.Unit(g.End)
	d := end.Sub(start)
	lengthSq := d.Dot(d)

	return func(p Point) RGBA {
		// Handle zero-length gradient (start == end)
		if lengthSq == 0 {
			return firstStopColor(stops)
		}
		// t = dot(P - Start, End - Start) / |End - Start|^2
		t := p.Sub(start).Dot(d) / lengthSq
		return colorAtOffset(stops, t)
	}
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// colorAtOffset returns the color at offset t. Colors are interpolated
// component-wise on straight sRGB values, as platform gradients do.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})

	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	stop1 := stops[idx-1]
	stop2 := stops[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}
