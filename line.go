package bulge

import (
	"math"

	"github.com/twpayne/go-geom/xy/lineintersector"
)

// Line represents a line segment.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Midpoint returns the point halfway between the line's endpoints.
func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

// BoundingBox returns the envelope of the line. Unlike the rectangle spanned by
// P0 and P1, it always has non-negative width and height.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance from pt to the closest point of the
// line segment, and the parameter t ∈ [0, 1] of that point.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Distance returns the distance from pt to the closest point of the line segment.
func (l Line) Distance(pt Point) float64 {
	distSq, _ := l.Nearest(pt)
	return math.Sqrt(distSq)
}

// PerpendicularDistance returns the distance from pt to the infinite line
// through P0 and P1. For a zero-length line it is the distance to P0.
func (l Line) PerpendicularDistance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	return math.Abs(d.Cross(pt.Sub(l.P0))) / n
}

// ProjectionFactor returns the parameter t of the orthogonal projection of pt
// onto the infinite line through P0 and P1. Values outside of [0, 1] lie
// beyond the segment's endpoints.
func (l Line) ProjectionFactor(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dSquared := d.Dot(d)
	if dSquared == 0 {
		return 0
	}
	return d.Dot(pt.Sub(l.P0)) / dSquared
}

// Project returns the orthogonal projection of pt onto the infinite line
// through P0 and P1.
func (l Line) Project(pt Point) Point {
	return l.Eval(l.ProjectionFactor(pt))
}

// Intersects reports whether the two line segments share at least one point,
// including touching endpoints and collinear overlap. It uses go-geom's robust
// line intersector, whose orientation tests are exact.
func (l Line) Intersects(o Line) bool {
	res := lineintersector.LineIntersectsLine(
		lineintersector.RobustLineIntersector{},
		l.P0.coord(), l.P1.coord(),
		o.P0.coord(), o.P1.coord(),
	)
	return res.HasIntersection()
}
