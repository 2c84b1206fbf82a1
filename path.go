package fxlabel

import (
	"math"

	"github.com/gogpu/fxlabel/internal/raster"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a vector outline. Glyph paths use layout space (y down) and are
// filled with the nonzero winding rule.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	ctrl := Pt(cx, cy)
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Rectangle adds a closed axis-aligned rectangle.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Bounds returns the bounding box of the path's control polygon, which
// contains the curve. An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	if p.IsEmpty() {
		return Rect{}
	}
	r := Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	add := func(q Point) {
		r.MinX = math.Min(r.MinX, q.X)
		r.MinY = math.Min(r.MinY, q.Y)
		r.MaxX = math.Max(r.MaxX, q.X)
		r.MaxY = math.Max(r.MaxY, q.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case LineTo:
			add(e.Point)
		case QuadTo:
			add(e.Control)
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	if math.IsInf(r.MinX, 1) {
		return Rect{}
	}
	return r
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	return p.mapPoints(func(q Point) Point { return q.Add(d) })
}

// Scale returns a copy of the path scaled by (sx, sy) about the origin.
func (p *Path) Scale(sx, sy float64) *Path {
	return p.mapPoints(func(q Point) Point { return Pt(q.X*sx, q.Y*sy) })
}

func (p *Path) mapPoints(fn func(Point) Point) *Path {
	result := NewPath()
	if p == nil {
		return result
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := fn(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := fn(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			c, pt := fn(e.Control), fn(e.Point)
			result.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1, c2, pt := fn(e.Control1), fn(e.Control2), fn(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	elements := make([]PathElement, len(p.elements))
	copy(elements, p.elements)
	return &Path{
		elements: elements,
		start:    p.start,
		current:  p.current,
	}
}

// contours flattens the path into polylines for rasterization.
func (p *Path) contours() []raster.Contour {
	if p.IsEmpty() {
		return nil
	}
	rp := func(q Point) raster.Point { return raster.Point{X: q.X, Y: q.Y} }
	elements := make([]raster.PathElement, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, raster.MoveTo{Point: rp(e.Point)})
		case LineTo:
			elements = append(elements, raster.LineTo{Point: rp(e.Point)})
		case QuadTo:
			elements = append(elements, raster.QuadTo{Control: rp(e.Control), Point: rp(e.Point)})
		case CubicTo:
			elements = append(elements, raster.CubicTo{
				Control1: rp(e.Control1),
				Control2: rp(e.Control2),
				Point:    rp(e.Point),
			})
		case Close:
			elements = append(elements, raster.Close{})
		}
	}
	return raster.Flatten(elements)
}
