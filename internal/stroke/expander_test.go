package stroke

import (
	"image"
	"testing"

	"github.com/gogpu/fxlabel/internal/raster"
)

func line(a, b Point) []raster.Contour {
	return []raster.Contour{{Points: []Point{a, b}}}
}

func box(x0, y0, x1, y1 float64) []raster.Contour {
	return []raster.Contour{{
		Points: []Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}},
		Closed: true,
	}}
}

func render(style Style, contours []raster.Contour, w, h int) *image.Alpha {
	return raster.Fill(NewExpander(style).Expand(contours), w, h, Point{})
}

func alpha(m *image.Alpha, x, y int) uint8 {
	return m.AlphaAt(x, y).A
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(DefaultStyle())
	if e.style.Width != 1.0 {
		t.Errorf("style.Width = %v, want 1.0", e.style.Width)
	}
	if e.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", e.tolerance)
	}

	e.SetTolerance(0.1)
	e.SetTolerance(-1)
	e.SetTolerance(0)
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
}

func TestExpandZeroWidth(t *testing.T) {
	style := DefaultStyle()
	style.Width = 0
	if got := NewExpander(style).Expand(box(0, 0, 10, 10)); got != nil {
		t.Errorf("zero width produced %d pieces", len(got))
	}
}

func TestExpandPiecesArePositive(t *testing.T) {
	for _, join := range []LineJoin{LineJoinMiter, LineJoinRound, LineJoinBevel} {
		style := Style{Width: 3, Cap: LineCapSquare, Join: join, MiterLimit: 4}
		contours := append(box(0, 0, 10, 10), raster.Contour{
			Points: []Point{{X: 20, Y: 0}, {X: 30, Y: 5}, {X: 20, Y: 10}},
		})
		for i, piece := range NewExpander(style).Expand(contours) {
			if !piece.Closed {
				t.Errorf("join %d piece %d not closed", join, i)
			}
			if signedArea(piece.Points) < 0 {
				t.Errorf("join %d piece %d has negative area", join, i)
			}
		}
	}
}

func TestButtAndRoundCaps(t *testing.T) {
	seg := line(Point{X: 2, Y: 5}, Point{X: 10, Y: 5})

	butt := render(Style{Width: 2, Cap: LineCapButt, Join: LineJoinRound}, seg, 14, 10)
	if got := alpha(butt, 5, 4); got < 250 {
		t.Errorf("body alpha = %d, want 255", got)
	}
	if got := alpha(butt, 5, 5); got < 250 {
		t.Errorf("body alpha = %d, want 255", got)
	}
	if got := alpha(butt, 5, 7); got > 5 {
		t.Errorf("outside alpha = %d, want 0", got)
	}
	if got := alpha(butt, 10, 4); got > 5 {
		t.Errorf("butt end alpha = %d, want 0", got)
	}

	round := render(Style{Width: 2, Cap: LineCapRound, Join: LineJoinRound}, seg, 14, 10)
	if got := alpha(round, 10, 4); got < 128 {
		t.Errorf("round cap alpha = %d, want > 127", got)
	}

	square := render(Style{Width: 2, Cap: LineCapSquare, Join: LineJoinRound}, seg, 14, 10)
	if got := alpha(square, 10, 4); got < 250 {
		t.Errorf("square cap alpha = %d, want 255", got)
	}
	if got := alpha(square, 11, 4); got > 5 {
		t.Errorf("past square cap alpha = %d, want 0", got)
	}
}

func TestClosedContourKeepsCounter(t *testing.T) {
	m := render(Style{Width: 4, Join: LineJoinRound}, box(5, 5, 15, 15), 20, 20)

	if got := alpha(m, 10, 10); got > 5 {
		t.Errorf("counter alpha = %d, want 0", got)
	}
	if got := alpha(m, 10, 3); got < 250 {
		t.Errorf("outer band alpha = %d, want 255", got)
	}
	if got := alpha(m, 10, 6); got < 250 {
		t.Errorf("inner band alpha = %d, want 255", got)
	}
	if got := alpha(m, 10, 2); got > 5 {
		t.Errorf("beyond band alpha = %d, want 0", got)
	}
}

func TestJoins(t *testing.T) {
	outline := box(5, 5, 15, 15)

	miter := render(Style{Width: 4, Join: LineJoinMiter, MiterLimit: 4}, outline, 20, 20)
	if got := alpha(miter, 3, 3); got < 250 {
		t.Errorf("miter corner alpha = %d, want 255", got)
	}

	bevel := render(Style{Width: 4, Join: LineJoinBevel}, outline, 20, 20)
	if got := alpha(bevel, 3, 3); got > 5 {
		t.Errorf("bevel corner alpha = %d, want 0", got)
	}
	if got := alpha(bevel, 4, 4); got < 100 {
		t.Errorf("bevel inner corner alpha = %d, want partial coverage", got)
	}

	round := render(Style{Width: 4, Join: LineJoinRound}, outline, 20, 20)
	got := alpha(round, 3, 3)
	if got == 0 || got >= alpha(miter, 3, 3) {
		t.Errorf("round corner alpha = %d, want between bevel and miter", got)
	}

	limited := render(Style{Width: 4, Join: LineJoinMiter, MiterLimit: 1}, outline, 20, 20)
	if got := alpha(limited, 3, 3); got > 5 {
		t.Errorf("miter over limit alpha = %d, want bevel", got)
	}
}

func TestDot(t *testing.T) {
	dot := []raster.Contour{{Points: []Point{{X: 5, Y: 5}}}}

	if got := NewExpander(Style{Width: 4, Cap: LineCapButt}).Expand(dot); len(got) != 0 {
		t.Errorf("butt dot produced %d pieces", len(got))
	}
	m := render(Style{Width: 4, Cap: LineCapRound}, dot, 10, 10)
	if got := alpha(m, 4, 4); got < 250 {
		t.Errorf("round dot alpha = %d, want 255", got)
	}
}
