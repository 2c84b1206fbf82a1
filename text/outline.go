package text

// Point is a position in layout space (y down).
type Point struct {
	X, Y float64
}

// SegmentOp is the kind of a Segment.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// points returns the number of Args the op uses.
func (op SegmentOp) points() int {
	switch op {
	case SegmentQuadTo:
		return 2
	case SegmentCubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one element of a glyph outline. Only the first
// Op.points() entries of Args are meaningful; the last one is the end point.
// Contours are implicitly closed.
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// End returns the point the segment ends at.
func (s Segment) End() Point {
	return s.Args[s.Op.points()-1]
}
