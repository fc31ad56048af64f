package bulge

import (
	"math"

	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/orientation"
)

// Orientation describes the turn made by three points.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "collinear"
	}
}

// Orient returns the orientation of c relative to the directed line from a to
// b: CounterClockwise if c lies to the left, Clockwise if it lies to the right.
// The test is exact.
func Orient(a, b, c Point) Orientation {
	switch xy.OrientationIndex(a.coord(), b.coord(), c.coord()) {
	case orientation.Clockwise:
		return Clockwise
	case orientation.CounterClockwise:
		return CounterClockwise
	default:
		return Collinear
	}
}

// Triangle is the triangle spanned by three points, in any order.
type Triangle struct {
	A, B, C Point
}

// SignedArea returns the area of the triangle, positive if A, B, C are in
// counter-clockwise order.
func (t Triangle) SignedArea() float64 {
	return 0.5 * t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}

func (t Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

// Contains reports whether pt lies inside of the triangle or on its boundary.
func (t Triangle) Contains(pt Point) bool {
	o1 := Orient(t.A, t.B, pt)
	o2 := Orient(t.B, t.C, pt)
	o3 := Orient(t.C, t.A, pt)
	if Orient(t.A, t.B, t.C) == Collinear {
		// A degenerate triangle only contains the points of its edges.
		return (o1 == Collinear && NewRectFromPoints(t.A, t.B).Contains(pt)) ||
			(o2 == Collinear && NewRectFromPoints(t.B, t.C).Contains(pt)) ||
			(o3 == Collinear && NewRectFromPoints(t.C, t.A).Contains(pt))
	}
	hasCW := o1 == Clockwise || o2 == Clockwise || o3 == Clockwise
	hasCCW := o1 == CounterClockwise || o2 == CounterClockwise || o3 == CounterClockwise
	return !(hasCW && hasCCW)
}
