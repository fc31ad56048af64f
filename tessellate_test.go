package bulge

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestFillSequenceInvalid(t *testing.T) {
	s := mustSegment(t, Pt(0, 5), Pt(5, 0), 1)
	for _, step := range []float64{-1, 0, math.NaN(), math.Inf(1)} {
		if _, err := s.AsPointSequence(step, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("step %v: got error %v, want ErrInvalidArgument", step, err)
		}
	}
	if _, err := s.AsPointSequence(1, nil); err != nil {
		t.Errorf("positive step: %v", err)
	}
	if _, err := s.FillSequence(nil, 1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil factory: got error %v, want ErrInvalidArgument", err)
	}
	if _, err := s.FillSequence(shortFactory{}, 1, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("short sequence: got error %v, want ErrInvalidArgument", err)
	}
}

func TestTessellateTinyStep(t *testing.T) {
	s := mustSegment(t, Pt(0, 5), Pt(5, 0), math.Tan(math.Pi/8))
	for _, step := range []float64{1e-320, 1e-300, s.Length() / (2 * MaxTessellationPoints)} {
		if _, err := s.AsPointSequence(step, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("step %v: got error %v, want ErrInvalidArgument", step, err)
		}
		if _, err := s.Samples(step, nil); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("step %v: got error %v from Samples, want ErrInvalidArgument", step, err)
		}
	}

	// Straight segments never sample, whatever the step.
	straight := mustSegment(t, Pt(0, 0), Pt(1, 0), 0)
	pts, err := straight.AsPointSequence(1e-320, nil)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []Point{straight.P1(), straight.P2()}, pts)
}

type shortFactory struct{}

func (shortFactory) New(n int) Sequence { return make(PointSlice, n-1) }

func TestTessellateStraight(t *testing.T) {
	for _, s := range []*Segment{
		mustSegment(t, Pt(0, 0), Pt(10, 10), 0),
		mustSegment(t, Pt(3, 3), Pt(3, 3), 1),
	} {
		pts, err := s.AsPointSequence(0.1, nil)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, []Point{s.P1(), s.P2()}, pts)
	}
}

func TestTessellateSemicircle(t *testing.T) {
	s := mustSegment(t, Pt(5, 0), Pt(-5, 0), -1)
	pts, err := s.AsPointSequence(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 5π ≈ 15.7 rounds to 16 pieces of length 1, the last one shorter.
	if len(pts) != 17 {
		t.Fatalf("got %d points, want 17", len(pts))
	}
	if pts[0] != s.P1() || pts[len(pts)-1] != s.P2() {
		t.Errorf("tessellation doesn't start and end at the segment's endpoints: %v", pts)
	}
	want := 2 * 5 * math.Sin(0.1)
	for i, pt := range pts {
		if d := math.Abs(pt.Distance(Pt(0, 0)) - 5); d > 1e-12 {
			t.Errorf("point %d (%v) is %v away from the circle", i, pt, d)
		}
		if pt.Y < 0 {
			t.Errorf("point %d (%v) is on the wrong side of the chord", i, pt)
		}
		if i > 0 && i < len(pts)-1 {
			if d := pt.Distance(pts[i-1]); math.Abs(d-want) > 1e-9 {
				t.Errorf("points %d and %d are %v apart, want %v", i-1, i, d, want)
			}
		}
	}
	if d := pts[len(pts)-1].Distance(pts[len(pts)-2]); d >= want {
		t.Errorf("last piece is %v long, want less than %v", d, want)
	}
}

func TestTessellatePrecision(t *testing.T) {
	s := mustSegment(t, Pt(0, 5), Pt(5, 0), math.Tan(math.Pi/8))
	pts, err := s.AsPointSequence(0.5, Fixed{Scale: 10})
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range pts[1 : len(pts)-1] {
		for _, v := range []float64{pt.X, pt.Y} {
			if r := v * 10; math.Abs(r-math.Round(r)) > 1e-9 {
				t.Errorf("%v isn't snapped to a multiple of 0.1", pt)
			}
		}
	}

	// Without an explicit model, the segment's options apply.
	opts := DefaultOptions
	opts.Precision = Fixed{Scale: 1}
	s, err = opts.NewSegment(Pt(0, 5), Pt(5, 0), math.Tan(math.Pi/8))
	if err != nil {
		t.Fatal(err)
	}
	pts, err = s.AsPointSequence(0.5, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range pts {
		if pt.X != math.Round(pt.X) || pt.Y != math.Round(pt.Y) {
			t.Errorf("%v isn't snapped to integers", pt)
		}
	}
}

func TestSamples(t *testing.T) {
	s := mustSegment(t, Pt(5, 0), Pt(-5, 0), -1)
	seq, err := s.Samples(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for pt := range seq {
		if !s.IntersectsPoint(pt) {
			t.Errorf("sample %v isn't on the arc", pt)
		}
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("got %d samples, want 3", n)
	}

	if _, err := s.Samples(0, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}
