package stroke

import (
	"math"

	"github.com/gogpu/fxlabel/internal/raster"
)

// Point is the outline point type shared with the rasterizer.
type Point = raster.Point

// LineCap specifies the shape of endpoints of open contours.
type LineCap int

const (
	// LineCapButt ends the stroke exactly at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound adds a semicircle at each endpoint.
	LineCapRound
	// LineCapSquare extends the stroke by half its width.
	LineCapSquare
)

// LineJoin specifies the shape of corners.
type LineJoin int

const (
	// LineJoinMiter extends the outer edges until they meet.
	LineJoinMiter LineJoin = iota
	// LineJoinRound rounds corners with a circular arc.
	LineJoinRound
	// LineJoinBevel cuts corners with a straight line.
	LineJoinBevel
)

// Style describes the stroke.
type Style struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStyle returns a 1px round-joined stroke.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        LineCapRound,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
	}
}

// Expander converts outlines into stroke pieces.
type Expander struct {
	style Style

	// Tolerance for arc approximation.
	// Smaller values produce more accurate results but more segments.
	tolerance float64

	out []raster.Contour
}

// NewExpander creates a new stroke expander with the given style.
func NewExpander(style Style) *Expander {
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the arc approximation tolerance.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns closed, positively oriented pieces whose union is the
// stroked region of contours. A non-positive width yields nothing.
func (e *Expander) Expand(contours []raster.Contour) []raster.Contour {
	e.out = nil
	if e.style.Width <= 0 {
		return nil
	}

	for _, c := range contours {
		e.expandContour(c)
	}
	return e.out
}

func (e *Expander) expandContour(c raster.Contour) {
	pts := c.Points
	closed := c.Closed && len(pts) > 2

	if len(pts) == 1 || (len(pts) == 2 && pts[0] == pts[1]) {
		e.dot(pts[0], closed || c.Closed)
		return
	}

	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}

	for i := 0; i < segs; i++ {
		e.segment(pts[i], pts[(i+1)%n])
	}

	// Joins at interior vertices, and at the seam of closed contours.
	for i := 0; i < n; i++ {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		e.join(prev, pts[i], next)
	}

	if !closed {
		e.capAt(pts[0], pts[0].Sub(pts[1]))
		e.capAt(pts[n-1], pts[n-1].Sub(pts[n-2]))
	}
}

// segment emits the rectangle swept by the stroke along a-b.
func (e *Expander) segment(a, b Point) {
	norm := e.normal(b.Sub(a))
	if norm == (Point{}) {
		return
	}
	e.emit([]Point{a.Add(norm), b.Add(norm), b.Sub(norm), a.Sub(norm)})
}

// join covers the wedge between two consecutive segments at p.
func (e *Expander) join(prev, p, next Point) {
	ab := p.Sub(prev)
	cd := next.Sub(p)
	cross := ab.Cross(cd)
	if math.Abs(cross) < 1e-12 && ab.Dot(cd) > 0 {
		return
	}

	switch e.style.Join {
	case LineJoinRound:
		e.emit(e.circle(p))
	case LineJoinBevel:
		e.bevel(p, ab, cd, cross)
	case LineJoinMiter:
		e.miter(p, ab, cd, cross)
	}
}

// outerNormals returns the offsets of the two segment edges on the outside
// of the turn at a corner.
func (e *Expander) outerNormals(ab, cd Point, cross float64) (Point, Point) {
	n0 := e.normal(ab)
	n1 := e.normal(cd)
	if cross > 0 {
		return n0.Mul(-1), n1.Mul(-1)
	}
	return n0, n1
}

func (e *Expander) bevel(p, ab, cd Point, cross float64) {
	o0, o1 := e.outerNormals(ab, cd, cross)
	e.emit([]Point{p, p.Add(o0), p.Add(o1)})
}

func (e *Expander) miter(p, ab, cd Point, cross float64) {
	o0, o1 := e.outerNormals(ab, cd, cross)
	half := e.style.Width / 2

	// The miter tip lies along the bisector of the outer normals.
	bisector := o0.Add(o1)
	blen := bisector.Length()
	if blen < 1e-12 {
		e.bevel(p, ab, cd, cross)
		return
	}
	cosHalf := blen / (2 * half)
	if cosHalf <= 0 || 1/cosHalf > e.style.MiterLimit {
		e.bevel(p, ab, cd, cross)
		return
	}
	tip := p.Add(bisector.Mul(half / cosHalf / blen))
	e.emit([]Point{p, p.Add(o0), tip, p.Add(o1)})
}

// capAt adds the end cap at endpoint p; dir points away from the contour.
func (e *Expander) capAt(p, dir Point) {
	switch e.style.Cap {
	case LineCapRound:
		e.emit(e.circle(p))
	case LineCapSquare:
		l := dir.Length()
		if l == 0 {
			return
		}
		ext := dir.Mul(e.style.Width / 2 / l)
		norm := e.normal(dir)
		e.emit([]Point{p.Add(norm), p.Add(ext).Add(norm), p.Add(ext).Sub(norm), p.Sub(norm)})
	}
}

// dot handles a zero-length contour. Only round and square caps paint it.
func (e *Expander) dot(p Point, closed bool) {
	half := e.style.Width / 2
	switch {
	case closed || e.style.Cap == LineCapRound:
		e.emit(e.circle(p))
	case e.style.Cap == LineCapSquare:
		e.emit([]Point{
			{X: p.X - half, Y: p.Y - half},
			{X: p.X + half, Y: p.Y - half},
			{X: p.X + half, Y: p.Y + half},
			{X: p.X - half, Y: p.Y + half},
		})
	}
}

// normal returns the left-hand perpendicular of t scaled to half the width.
func (e *Expander) normal(t Point) Point {
	l := t.Length()
	if l < 1e-12 {
		return Point{}
	}
	s := 0.5 * e.style.Width / l
	return Point{X: -t.Y * s, Y: t.X * s}
}

// circle approximates a disc of radius width/2 around c, keeping the
// chord error within the tolerance.
func (e *Expander) circle(c Point) []Point {
	r := e.style.Width / 2
	segments := 8
	if r > e.tolerance {
		step := 2 * math.Acos(1-e.tolerance/r)
		if n := int(math.Ceil(2 * math.Pi / step)); n > segments {
			segments = n
		}
	}
	pts := make([]Point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// emit stores a closed piece, flipping it to positive orientation so that
// overlapping pieces never cancel.
func (e *Expander) emit(pts []Point) {
	if signedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	e.out = append(e.out, raster.Contour{Points: pts, Closed: true})
}

func signedArea(pts []Point) float64 {
	var a float64
	for i := range pts {
		j := (i + 1) % len(pts)
		a += pts[i].Cross(pts[j])
	}
	return a / 2
}
