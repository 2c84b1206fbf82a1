// Package raster turns outlines into coverage masks.
//
// Outlines are the same move/line/quad/cubic/close vocabulary the public
// Path type uses, duplicated here to avoid an import cycle. Filling uses
// the nonzero winding rule.
package raster

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// PathElement represents an element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic curve.
type QuadTo struct{ Control, Point Point }

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the path.
type Close struct{}

func (Close) isPathElement() {}

// Contour is one flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten converts elements into polyline contours. Consecutive duplicate
// points are dropped; contours with a single point are kept so callers can
// still render dots.
func Flatten(elements []PathElement) []Contour {
	var contours []Contour
	var cur *Contour
	var current, start Point

	push := func(p Point) {
		if cur == nil {
			contours = append(contours, Contour{Points: []Point{current}})
			cur = &contours[len(contours)-1]
		}
		if last := cur.Points[len(cur.Points)-1]; last == p {
			return
		}
		cur.Points = append(cur.Points, p)
	}

	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			current = e.Point
			start = e.Point
			contours = append(contours, Contour{Points: []Point{current}})
			cur = &contours[len(contours)-1]

		case LineTo:
			push(e.Point)
			current = e.Point

		case QuadTo:
			for _, p := range flattenQuadratic(current, e.Control, e.Point, Tolerance) {
				push(p)
			}
			current = e.Point

		case CubicTo:
			for _, p := range flattenCubic(current, e.Control1, e.Control2, e.Point, Tolerance) {
				push(p)
			}
			current = e.Point

		case Close:
			if cur != nil {
				pts := cur.Points
				if len(pts) > 1 && pts[len(pts)-1] == pts[0] {
					cur.Points = pts[:len(pts)-1]
				}
				cur.Closed = true
				cur = nil
			}
			current = start
		}
	}

	return contours
}

// Bounds returns the axis-aligned bounding box of the flattened contours.
// ok is false when there are no points.
func Bounds(contours []Contour) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		for _, p := range c.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}

// Helper methods for Point
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// flattenQuadratic flattens a quadratic Bezier curve into line segments.
// The start point is not included.
func flattenQuadratic(p0, p1, p2 Point, tolerance float64) []Point {
	var points []Point
	flattenQuadraticRec(p0, p1, p2, tolerance, &points, 0)
	return points
}

// maxDepth bounds recursion for degenerate control points.
const maxDepth = 16

func flattenQuadraticRec(p0, p1, p2 Point, tolerance float64, points *[]Point, depth int) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}

	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadraticRec(p0, q0, q2, tolerance, points, depth+1)
	flattenQuadraticRec(q2, q1, p2, tolerance, points, depth+1)
}

// flattenCubic flattens a cubic Bezier curve into line segments.
// The start point is not included.
func flattenCubic(p0, p1, p2, p3 Point, tolerance float64) []Point {
	var points []Point
	flattenCubicRec(p0, p1, p2, p3, tolerance, &points, 0)
	return points
}

func flattenCubicRec(p0, p1, p2, p3 Point, tolerance float64, points *[]Point, depth int) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || dist < tolerance {
		*points = append(*points, p3)
		return
	}

	// de Casteljau split at t = 0.5
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubicRec(p0, q0, r0, s, tolerance, points, depth+1)
	flattenCubicRec(s, r1, q2, p3, tolerance, points, depth+1)
}

// distanceToLine calculates the distance from point p to segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	if t < 0 {
		return p.Distance(a)
	}
	if t > 1 {
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
