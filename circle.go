package bulge

import (
	"math"

	"honnef.co/go/bulge/internal/dd"
)

type Circle struct {
	Center Point
	Radius float64
}

// CircleThrough returns the unique circle passing through a, b and c. It
// returns false if the points are collinear (including coincident points).
//
// The centre is solved in double-double precision relative to a, which keeps
// the result accurate for nearly collinear input.
func CircleThrough(a, b, c Point) (Circle, bool) {
	bx := dd.New(b.X).SubFloat64(a.X)
	by := dd.New(b.Y).SubFloat64(a.Y)
	cx := dd.New(c.X).SubFloat64(a.X)
	cy := dd.New(c.Y).SubFloat64(a.Y)

	d := bx.Mul(cy).Sub(by.Mul(cx)).MulFloat64(2)
	if d.IsZero() {
		return Circle{}, false
	}
	b2 := bx.Sqr().Add(by.Sqr())
	c2 := cx.Sqr().Add(cy.Sqr())
	ux := cy.Mul(b2).Sub(by.Mul(c2)).Div(d)
	uy := bx.Mul(c2).Sub(cx.Mul(b2)).Div(d)

	center := Point{
		X: ux.AddFloat64(a.X).Float64(),
		Y: uy.AddFloat64(a.Y).Float64(),
	}
	r := ux.Sqr().Add(uy.Sqr()).Sqrt().Float64()
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return Circle{}, false
	}
	return Circle{Center: center, Radius: r}, true
}

// Contains reports whether pt lies strictly inside of the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// PointAt returns the point of the circle in the direction angle from its centre.
func (c Circle) PointAt(angle float64) Point {
	return pointOnCircle(c.Center, c.Radius, angle)
}

// IntersectLine returns an intersector for the circle and the line segment l.
func (c Circle) IntersectLine(l Line, tolerance float64) *CircleLineIntersector {
	return NewCircleLineIntersector(c, l, tolerance)
}

// IntersectCircle returns an intersector for the circle and o.
func (c Circle) IntersectCircle(o Circle, tolerance float64) *CircleCircleIntersector {
	return NewCircleCircleIntersector(c, o, tolerance)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
