package bulge

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"

	"honnef.co/go/bulge/internal/dd"
)

// Sequence is a fixed-length, writable sequence of points.
type Sequence interface {
	Len() int
	At(i int) Point
	Set(i int, pt Point)
}

// SequenceFactory allocates sequences.
type SequenceFactory interface {
	// New returns a sequence of length n.
	New(n int) Sequence
}

// PointSlice is a Sequence backed by a slice.
type PointSlice []Point

func (s PointSlice) Len() int            { return len(s) }
func (s PointSlice) At(i int) Point      { return s[i] }
func (s PointSlice) Set(i int, pt Point) { s[i] = pt }

// SliceFactory creates PointSlices.
type SliceFactory struct{}

func (SliceFactory) New(n int) Sequence { return make(PointSlice, n) }

func checkStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 1) {
		return invalidArgumentf("tessellation step must be positive and finite, got %g", step)
	}
	return nil
}

// MaxTessellationPoints is the largest number of points a tessellation may
// produce.
const MaxTessellationPoints = 1 << 24

// samples returns the number of interior points of the tessellation and an
// iterator over them.
//
// The sweep is divided into steps whose arc length is close to step. Angles
// accumulate in double-double precision, starting at the direction of P1.
func (s *Segment) samples(step float64, pm PrecisionModel) (int, iter.Seq[Point], error) {
	if pm == nil {
		pm = s.opts.precision()
	}
	length := s.Length()
	if s.bulge == 0 || length == 0 {
		return 0, func(yield func(Point) bool) {}, nil
	}

	pieces := length / step
	if math.IsInf(pieces, 0) || math.IsNaN(pieces) || pieces > MaxTessellationPoints {
		return 0, nil, invalidArgumentf("tessellation step %g is too small for an arc of length %g", step, length)
	}
	c, _ := s.Centre()
	r := s.Radius()
	phi := s.SweepAngle()
	phiStep := phi / pieces
	n := max(0, int(math.Round(phi/phiStep))-1)
	start := Angle(c, s.p1)

	return n, func(yield func(Point) bool) {
		theta := dd.New(start)
		for range n {
			theta = theta.AddFloat64(phiStep)
			pt := pointOnCircle(c, r, theta.Float64())
			pt = Point{pm.MakePrecise(pt.X), pm.MakePrecise(pt.Y)}
			if !yield(pt) {
				return
			}
		}
	}, nil
}

// Samples returns the points strictly between P1 and P2 that a tessellation
// with the given step produces, see [Segment.FillSequence]. Straight segments
// have no interior points.
func (s *Segment) Samples(step float64, pm PrecisionModel) (iter.Seq[Point], error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	_, seq, err := s.samples(step, pm)
	if err != nil {
		return nil, err
	}
	return seq, nil
}

// AsPointSequence is like [Segment.FillSequence] but returns a slice.
func (s *Segment) AsPointSequence(step float64, pm PrecisionModel) ([]Point, error) {
	seq, err := s.FillSequence(SliceFactory{}, step, pm)
	if err != nil {
		return nil, err
	}
	return seq.(PointSlice), nil
}

// FillSequence approximates the arc by a polyline and writes its vertices into
// a sequence created by f.
//
// The first and last vertices are exactly P1 and P2. The interior vertices lie
// on the circle, roughly step apart when measured along the arc, and are
// snapped by pm. A nil pm means the segment's [Options.Precision]. Straight
// and zero-length segments produce just their two endpoints.
//
// It returns an error wrapping [ErrInvalidArgument] if step is not positive,
// if it would produce more than [MaxTessellationPoints] points, or if f is
// nil.
func (s *Segment) FillSequence(f SequenceFactory, step float64, pm PrecisionModel) (Sequence, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	if f == nil {
		return nil, invalidArgumentf("sequence factory must not be nil")
	}

	n, samples, err := s.samples(step, pm)
	if err != nil {
		return nil, err
	}
	seq := f.New(n + 2)
	if seq == nil || seq.Len() != n+2 {
		return nil, invalidArgumentf("sequence factory did not return a sequence of length %d", n+2)
	}
	seq.Set(0, s.p1)
	i := 1
	for pt := range samples {
		seq.Set(i, pt)
		i++
	}
	if i != seq.Len()-1 {
		return nil, errors.AssertionFailedf("tessellation wrote %d of %d points", i+1, seq.Len())
	}
	seq.Set(i, s.p2)
	return seq, nil
}
