package bulge

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircleAreaSign(t *testing.T) {
	approxEqual := func(x, y float64) bool {
		return math.Abs(x-y) < 1e-7
	}

	center := Pt(5, 5)
	c := Circle{center, 5}
	if a := c.Area(); !approxEqual(a, 25*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if w := c.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
	if p := c.Perimeter(); !approxEqual(p, 10*math.Pi) {
		t.Errorf("got perimeter %v, expected %v", p, 10*math.Pi)
	}

	cNegRadius := Circle{center, -5}
	if a := cNegRadius.Area(); !approxEqual(a, 25.0*math.Pi) {
		t.Errorf("got area %v, expected %v", a, 25.0*math.Pi)
	}
	if w := cNegRadius.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
	diff(t, cNegRadius.BoundingBox(), Rect{0, 0, 10, 10})
}

func TestCircleThrough(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)

	c, ok := CircleThrough(Pt(6, 1), Pt(1, 6), Pt(-4, 1))
	if !ok {
		t.Fatal("expected a circle")
	}
	diff(t, Circle{Pt(1, 1), 5}, c, opt)

	// Vertical and horizontal chords.
	c, ok = CircleThrough(Pt(0, -5), Pt(5, 0), Pt(0, 5))
	if !ok {
		t.Fatal("expected a circle")
	}
	diff(t, Circle{Pt(0, 0), 5}, c, opt)

	if _, ok := CircleThrough(Pt(0, 0), Pt(1, 1), Pt(2, 2)); ok {
		t.Error("collinear points shouldn't define a circle")
	}
	if _, ok := CircleThrough(Pt(0, 0), Pt(0, 0), Pt(2, 2)); ok {
		t.Error("coincident points shouldn't define a circle")
	}
}

func TestCirclePointAt(t *testing.T) {
	c := Circle{Pt(1, 1), 2}
	diff(t, Pt(1, 3), c.PointAt(math.Pi/2), cmpopts.EquateApprox(0, 1e-15))
	diff(t, Pt(-1, 1), c.PointAt(math.Pi), cmpopts.EquateApprox(0, 1e-15))
}
