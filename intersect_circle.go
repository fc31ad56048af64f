package bulge

import (
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/bulge/internal/dd"
)

// InfiniteIntersections is the intersection count of two coincident circles.
const InfiniteIntersections = -1

// CircleCircleIntersector computes the intersections of two circles. The
// distance between the centres and the chord through both intersection
// points are computed in double-double precision.
//
// The result is computed on first use and memoized. An intersector must not be
// used concurrently before that.
type CircleCircleIntersector struct {
	c1, c2    Circle
	tolerance float64

	computed bool
	count    int
	pts      [2]Point
}

// NewCircleCircleIntersector returns an intersector for c1 and c2. Distances
// below tolerance are considered zero.
func NewCircleCircleIntersector(c1, c2 Circle, tolerance float64) *CircleCircleIntersector {
	return &CircleCircleIntersector{
		c1:        c1,
		c2:        c2,
		tolerance: tolerance,
	}
}

// Count returns the number of intersections: 0, 1 for tangent circles, 2, or
// [InfiniteIntersections] for coincident circles.
func (ci *CircleCircleIntersector) Count() int {
	ci.compute()
	return ci.count
}

// Intersection returns the i-th intersection point. It panics if i is not in
// [0, Count()).
func (ci *CircleCircleIntersector) Intersection(i int) Point {
	ci.compute()
	if i < 0 || i >= ci.count {
		panic(fmt.Sprintf("intersection index %d out of range [0, %d)", i, max(ci.count, 0)))
	}
	return ci.pts[i]
}

// Intersections returns the intersection points. It returns nil for
// coincident circles.
func (ci *CircleCircleIntersector) Intersections() []Point {
	ci.compute()
	if ci.count <= 0 {
		return nil
	}
	out := make([]Point, ci.count)
	copy(out, ci.pts[:ci.count])
	return out
}

func (ci *CircleCircleIntersector) compute() {
	if ci.computed {
		return
	}
	ci.computed = true

	c1, c2, tol := ci.c1, ci.c2, ci.tolerance
	dx := dd.New(c2.Center.X).SubFloat64(c1.Center.X)
	dy := dd.New(c2.Center.Y).SubFloat64(c1.Center.Y)
	dist := dx.Sqr().Add(dy.Sqr()).Sqrt()
	r1 := dd.New(c1.Radius)
	r2 := dd.New(c2.Radius)
	sum := r1.Add(r2)
	diff := r1.Sub(r2).Abs()

	d := dist.Float64()
	switch {
	case dist.Sub(sum).Float64() > tol:
		// Too far apart.
		ci.count = 0
	case diff.Sub(dist).Float64() > tol:
		// One circle contains the other.
		ci.count = 0
	case d <= tol && diff.Float64() <= tol:
		Logger().Debug("coincident circles",
			slog.String("c1", fmt.Sprint(c1)),
			slog.String("c2", fmt.Sprint(c2)))
		ci.count = InfiniteIntersections
	case math.Abs(dist.Sub(sum).Float64()) <= tol:
		// Touching from the outside.
		ci.pts[0] = ci.alongCentres(dx, dy, dist, r1)
		ci.count = 1
	case math.Abs(dist.Sub(diff).Float64()) <= tol:
		// Touching from the inside, on the far side of the smaller circle.
		if c1.Radius >= c2.Radius {
			ci.pts[0] = ci.alongCentres(dx, dy, dist, r1)
		} else {
			ci.pts[0] = ci.alongCentres(dx, dy, dist, r1.Neg())
		}
		ci.count = 1
	default:
		a := r1.Sqr().Sub(r2.Sqr()).Add(dist.Sqr()).Div(dist.MulFloat64(2))
		h2 := r1.Sqr().Sub(a.Sqr())
		if h2.Sign() < 0 {
			h2 = dd.Float{}
		}
		h := h2.Sqrt()
		mx := a.Mul(dx).Div(dist).AddFloat64(c1.Center.X)
		my := a.Mul(dy).Div(dist).AddFloat64(c1.Center.Y)
		ox := h.Mul(dy).Div(dist)
		oy := h.Mul(dx).Div(dist)
		ci.pts[0] = Point{mx.Add(ox).Float64(), my.Sub(oy).Float64()}
		ci.pts[1] = Point{mx.Sub(ox).Float64(), my.Add(oy).Float64()}
		ci.count = 2
	}
}

// alongCentres returns the point at signed distance r from the first centre,
// in the direction of the second.
func (ci *CircleCircleIntersector) alongCentres(dx, dy, dist, r dd.Float) Point {
	return Point{
		X: r.Mul(dx).Div(dist).AddFloat64(ci.c1.Center.X).Float64(),
		Y: r.Mul(dy).Div(dist).AddFloat64(ci.c1.Center.Y).Float64(),
	}
}
