package bulge

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"

	"honnef.co/go/bulge/internal/dd"
)

// AngleInterval is a closed, directed range of directions on a circle. It
// runs counter-clockwise from Start to End and may wrap around past ±π, in
// which case Start > End.
//
// Angles are in radians. Boundaries are kept in [-π, π], but all methods
// accept arbitrary angles and reduce them first.
type AngleInterval struct {
	iv s1.Interval
}

// NewAngleInterval returns the interval that starts at start and sweeps by
// sweep radians, counter-clockwise for positive sweeps. A sweep of 2π or more
// in either direction yields the full circle.
//
// The end angle is computed and reduced in double-double precision, so that
// sweeps which end just short of or just past ±π land on the correct side.
func NewAngleInterval(start, sweep float64) AngleInterval {
	if math.IsNaN(start) || math.IsNaN(sweep) {
		return AngleInterval{s1.EmptyInterval()}
	}
	if math.Abs(sweep) >= 2*math.Pi {
		return AngleInterval{s1.FullInterval()}
	}
	from := reduceAngle(dd.New(start))
	to := reduceAngle(dd.New(start).AddFloat64(sweep))
	if sweep < 0 {
		from, to = to, from
	}
	return AngleInterval{s1.IntervalFromEndpoints(from, to)}
}

// AngleIntervalBetween returns the interval traversed when travelling from
// the direction from to the direction to, counter-clockwise if ccw is true
// and clockwise otherwise.
func AngleIntervalBetween(from, to float64, ccw bool) AngleInterval {
	if math.IsNaN(from) || math.IsNaN(to) {
		return AngleInterval{s1.EmptyInterval()}
	}
	lo := reduceAngle(dd.New(from))
	hi := reduceAngle(dd.New(to))
	if !ccw {
		lo, hi = hi, lo
	}
	return AngleInterval{s1.IntervalFromEndpoints(lo, hi)}
}

// reduceAngle maps a onto [-π, π].
func reduceAngle(a dd.Float) float64 {
	if math.IsInf(a.Hi(), 0) {
		return math.NaN()
	}
	if k := math.Round(a.Float64() / (2 * math.Pi)); k != 0 {
		a = a.Sub(dd.TwoPi.MulFloat64(k))
	}
	negPi := dd.Pi.Neg()
	for a.Cmp(dd.Pi) > 0 {
		a = a.Sub(dd.TwoPi)
	}
	for a.Cmp(negPi) < 0 {
		a = a.Add(dd.TwoPi)
	}
	return a.Float64()
}

// NormalizeAngle maps a onto [0, 2π).
func NormalizeAngle(a float64) float64 {
	r := reduceAngle(dd.New(a))
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return r
}

// Angle returns the direction of pt as seen from centre, in (-π, π].
func Angle(centre, pt Point) float64 {
	return pt.Sub(centre).Angle()
}

// Start returns the angle at which the interval begins.
func (ai AngleInterval) Start() float64 { return ai.iv.Lo }

// End returns the angle at which the interval ends.
func (ai AngleInterval) End() float64 { return ai.iv.Hi }

// Length returns the angular extent of the interval. It is negative for the
// empty interval.
func (ai AngleInterval) Length() float64 { return ai.iv.Length() }

func (ai AngleInterval) IsFull() bool  { return ai.iv.IsFull() }
func (ai AngleInterval) IsEmpty() bool { return ai.iv.IsEmpty() }

// Contains reports whether the direction a lies within the interval,
// boundaries included.
func (ai AngleInterval) Contains(a float64) bool {
	if math.IsNaN(a) {
		return false
	}
	return ai.iv.Contains(reduceAngle(dd.New(a)))
}

// Overlaps reports whether the two intervals have at least one direction in common.
func (ai AngleInterval) Overlaps(o AngleInterval) bool {
	return ai.iv.Intersects(o.iv)
}

// Expanded returns the interval grown by margin radians on both ends.
func (ai AngleInterval) Expanded(margin float64) AngleInterval {
	return AngleInterval{ai.iv.Expanded(margin)}
}

func (ai AngleInterval) String() string {
	return fmt.Sprintf("[%g, %g]", ai.iv.Lo, ai.iv.Hi)
}
