package bulge

import (
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/bulge/internal/dd"
)

// CircleLineIntersector computes the intersections of a circle with the
// infinite line through a line segment.
//
// Points are reported on the infinite line; callers that care about the
// segment's extent check [CircleLineIntersector.Parameter] against [0, 1], or
// apply their own bounds.
//
// The quadratic A·t² + B·t + C = 0 along the segment's parametrization and its
// discriminant are evaluated in double-double precision. Near tangency the
// discriminant and the perpendicular distance of the centre can disagree
// about the sign; a line whose distance from the centre is within tolerance
// of the radius is always reported as tangent.
//
// The result is computed on first use and memoized. An intersector must not be
// used concurrently before that.
type CircleLineIntersector struct {
	circle    Circle
	line      Line
	tolerance float64

	computed bool
	count    int
	ts       [2]float64
	pts      [2]Point
}

// NewCircleLineIntersector returns an intersector for c and l. Distances below
// tolerance are considered zero.
func NewCircleLineIntersector(c Circle, l Line, tolerance float64) *CircleLineIntersector {
	return &CircleLineIntersector{
		circle:    c,
		line:      l,
		tolerance: tolerance,
	}
}

// Count returns the number of intersections, 0, 1 or 2.
func (ci *CircleLineIntersector) Count() int {
	ci.compute()
	return ci.count
}

// Intersection returns the i-th intersection point. It panics if i is not in
// [0, Count()).
func (ci *CircleLineIntersector) Intersection(i int) Point {
	ci.compute()
	if i < 0 || i >= ci.count {
		panic(fmt.Sprintf("intersection index %d out of range [0, %d)", i, ci.count))
	}
	return ci.pts[i]
}

// Parameter returns the position of the i-th intersection along the segment,
// with 0 at P0 and 1 at P1. It panics if i is not in [0, Count()).
func (ci *CircleLineIntersector) Parameter(i int) float64 {
	ci.compute()
	if i < 0 || i >= ci.count {
		panic(fmt.Sprintf("intersection index %d out of range [0, %d)", i, ci.count))
	}
	return ci.ts[i]
}

// Intersections returns all intersection points.
func (ci *CircleLineIntersector) Intersections() []Point {
	ci.compute()
	out := make([]Point, ci.count)
	copy(out, ci.pts[:ci.count])
	return out
}

func (ci *CircleLineIntersector) add(t float64, pt Point) {
	ci.ts[ci.count] = t
	ci.pts[ci.count] = pt
	ci.count++
}

func (ci *CircleLineIntersector) compute() {
	if ci.computed {
		return
	}
	ci.computed = true

	c, l, tol := ci.circle, ci.line, ci.tolerance
	dx := dd.New(l.P1.X).SubFloat64(l.P0.X)
	dy := dd.New(l.P1.Y).SubFloat64(l.P0.Y)
	a := dx.Sqr().Add(dy.Sqr())

	if a.Float64() <= tol*tol {
		// The segment is a point.
		if math.Abs(c.Center.Distance(l.P0)-c.Radius) <= tol {
			ci.add(0, l.P0)
		}
		return
	}

	cx := dd.New(l.P0.X).SubFloat64(c.Center.X)
	cy := dd.New(l.P0.Y).SubFloat64(c.Center.Y)
	b := dx.Mul(cx).Add(dy.Mul(cy)).MulFloat64(2)
	cc := cx.Sqr().Add(cy.Sqr()).Sub(dd.New(c.Radius).Sqr())
	det := b.Sqr().Sub(a.Mul(cc).MulFloat64(4))
	twoA := a.MulFloat64(2)

	at := func(t dd.Float) Point {
		return Point{
			X: t.Mul(dx).AddFloat64(l.P0.X).Float64(),
			Y: t.Mul(dy).AddFloat64(l.P0.Y).Float64(),
		}
	}

	if det.Sign() < 0 {
		if math.Abs(l.PerpendicularDistance(c.Center)-c.Radius) < tol {
			Logger().Debug("line tangent by distance despite negative discriminant",
				slog.String("line", fmt.Sprint(l)),
				slog.String("circle", fmt.Sprint(c)),
				slog.Float64("det", det.Float64()))
			ci.add(l.ProjectionFactor(c.Center), l.Project(c.Center))
		}
		return
	}

	sqrtDet := det.Sqrt()
	// The two roots are √det/√A apart along the line.
	if sqrtDet.Div(a.Sqrt()).Float64() <= tol {
		t := b.Neg().Div(twoA)
		ci.add(t.Float64(), at(t))
		return
	}

	t0 := b.Neg().Add(sqrtDet).Div(twoA)
	t1 := b.Neg().Sub(sqrtDet).Div(twoA)
	ci.add(t0.Float64(), at(t0))
	ci.add(t1.Float64(), at(t1))
}
