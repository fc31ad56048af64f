package bulge

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/s1"

	"honnef.co/go/bulge/internal/dd"
)

// Segment is a circular arc from P1 to P2, described by its chord and a bulge.
//
// The bulge is the tangent of a quarter of the arc's opening angle and lies in
// [-1, 1]. A bulge of 0 describes a straight segment, ±1 a semicircle. For a
// positive bulge, the arc lies to the left of the directed chord P1→P2, the
// centre of its circle lies to the right, and the arc is travelled clockwise.
// A negative bulge mirrors all of this.
//
// The centre and the midpoint of the arc are computed on first use and
// memoized. A Segment is therefore not safe for concurrent use until both
// have been computed, for example by calling [Segment.Centre] and
// [Segment.Midpoint] once.
type Segment struct {
	p1, p2 Point
	bulge  float64
	opts   Options

	centre   option[Point]
	midpoint option[Point]
}

// NewSegment returns the segment from p1 to p2 with the given bulge, using
// [DefaultOptions]. It returns an error wrapping [ErrInvalidArgument] if bulge
// is not in [-1, 1]. p1 and p2 may coincide.
func NewSegment(p1, p2 Point, bulge float64) (*Segment, error) {
	return DefaultOptions.NewSegment(p1, p2, bulge)
}

// NewSegmentFromLine is like [NewSegment] but takes the chord as a line.
func NewSegmentFromLine(l Line, bulge float64) (*Segment, error) {
	return DefaultOptions.NewSegmentFromLine(l, bulge)
}

// NewSegmentFromCoords is like [NewSegment] but takes raw coordinates.
func NewSegmentFromCoords(x1, y1, x2, y2, bulge float64) (*Segment, error) {
	return DefaultOptions.NewSegmentFromCoords(x1, y1, x2, y2, bulge)
}

// NewSegmentThroughPoints returns the arc that starts at p1, passes through
// mid and ends at p2, using [DefaultOptions].
//
// If mid lies on the chord from p1 to p2, the result is a straight segment. If
// the arc is longer than a semicircle, which cannot be expressed by a bulge,
// an error wrapping [ErrInvalidArgument] is returned.
func NewSegmentThroughPoints(p1, mid, p2 Point) (*Segment, error) {
	return DefaultOptions.NewSegmentThroughPoints(p1, mid, p2)
}

// NewSegment is like the package-level [NewSegment] but uses o.
func (o Options) NewSegment(p1, p2 Point, bulge float64) (*Segment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(bulge) || bulge < -1 || bulge > 1 {
		return nil, invalidArgumentf("bulge must be in the range [-1, 1], got %g", bulge)
	}
	if p1 == p2 && bulge != 0 {
		Logger().Debug("zero-length chord, arc degenerates to a point",
			slog.String("p", p1.String()),
			slog.Float64("bulge", bulge))
	}
	return &Segment{p1: p1, p2: p2, bulge: bulge, opts: o}, nil
}

// NewSegmentFromLine is like the package-level [NewSegmentFromLine] but uses o.
func (o Options) NewSegmentFromLine(l Line, bulge float64) (*Segment, error) {
	return o.NewSegment(l.P0, l.P1, bulge)
}

// NewSegmentFromCoords is like the package-level [NewSegmentFromCoords] but uses o.
func (o Options) NewSegmentFromCoords(x1, y1, x2, y2, bulge float64) (*Segment, error) {
	return o.NewSegment(Pt(x1, y1), Pt(x2, y2), bulge)
}

// NewSegmentThroughPoints is like the package-level [NewSegmentThroughPoints]
// but uses o. Points within o.Tolerance of the chord count as lying on it.
func (o Options) NewSegmentThroughPoints(p1, mid, p2 Point) (*Segment, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	straight := func(reason string) (*Segment, error) {
		Logger().Debug("three points define a straight segment",
			slog.String("reason", reason),
			slog.String("p1", p1.String()),
			slog.String("mid", mid.String()),
			slog.String("p2", p2.String()))
		return &Segment{p1: p1, p2: p2, opts: o}, nil
	}

	if p1 == p2 {
		if p1.Distance(mid) <= o.Tolerance {
			return straight("all points coincide")
		}
		return nil, invalidArgumentf("points %v, %v, %v define a full circle", p1, mid, p2)
	}
	if (Line{p1, p2}).PerpendicularDistance(mid) <= o.Tolerance {
		return straight("midpoint lies on the chord")
	}
	travel := Orient(p1, mid, p2)
	if travel == Collinear {
		return straight("points are collinear")
	}
	circle, ok := CircleThrough(p1, mid, p2)
	if !ok {
		return straight("no circle through the points")
	}

	// The angle between p1 and p2 as seen from the centre, in [0, π]. If the
	// centre lies on the far side of the chord from the direction of travel,
	// the arc goes the long way around.
	c := circle.Center
	v1 := p1.Sub(c)
	v2 := p2.Sub(c)
	theta := math.Atan2(math.Abs(v1.Cross(v2)), v1.Dot(v2))
	if side := Orient(c, p1, p2); side != Collinear && side != travel {
		theta = 2*math.Pi - theta
	}
	angTol := 1e-12
	if circle.Radius > 0 {
		angTol = max(angTol, o.Tolerance/circle.Radius)
	}
	if theta > math.Pi+angTol {
		return nil, invalidArgumentf("points %v, %v, %v define an arc longer than a semicircle", p1, mid, p2)
	}
	theta = min(theta, math.Pi)

	sweep := theta
	if travel == Clockwise {
		sweep = -sweep
	}
	b := math.Tan(-sweep / 4)
	b = max(-1, min(1, b))
	return &Segment{p1: p1, p2: p2, bulge: b, opts: o}, nil
}

// P1 returns the start point of the segment.
func (s *Segment) P1() Point { return s.p1 }

// P2 returns the end point of the segment.
func (s *Segment) P2() Point { return s.p2 }

// Bulge returns tan(θ/4) of the arc's opening angle θ. Positive values put
// the arc to the left of P1→P2, travelled clockwise; zero means straight.
func (s *Segment) Bulge() float64 { return s.bulge }

// Options returns the options the segment was constructed with.
func (s *Segment) Options() Options { return s.opts }

// IsStraight reports whether the bulge is zero.
func (s *Segment) IsStraight() bool { return s.bulge == 0 }

// Chord returns the line from P1 to P2.
func (s *Segment) Chord() Line {
	return Line{P0: s.p1, P1: s.p2}
}

// ControlPoint returns one of the points defining the segment: 0 is the
// centre, 1 is P1, 2 is P2 and 3 is the midpoint of the arc.
//
// It returns an error wrapping [ErrNoCentre] for index 0 of a straight segment,
// and one wrapping [ErrIndexOutOfRange] for any other index.
func (s *Segment) ControlPoint(i int) (Point, error) {
	switch i {
	case 0:
		c, ok := s.Centre()
		if !ok {
			return Point{}, ErrNoCentre
		}
		return c, nil
	case 1:
		return s.p1, nil
	case 2:
		return s.p2, nil
	case 3:
		return s.Midpoint(), nil
	default:
		return Point{}, errors.Wrapf(ErrIndexOutOfRange, "control point %d is not in [0, 3]", i)
	}
}

// Centre returns the centre of the segment's circle. It returns false for
// straight segments.
func (s *Segment) Centre() (Point, bool) {
	if s.bulge == 0 {
		return Point{}, false
	}
	if c, ok := s.centre.get(); ok {
		return c, true
	}

	// With h = |P1P2|/2, the sagitta is h·|b| and the radius h·(1+b²)/(2|b|).
	// The centre is offset from the chord's midpoint by (sagitta − radius)·sign(b)
	// along the chord's left normal, which simplifies to (b² − 1)/(4b) times
	// the rotated chord vector.
	b := dd.New(s.bulge)
	k := b.Sqr().SubFloat64(1).Div(b.MulFloat64(4))
	dx := dd.New(s.p2.X).SubFloat64(s.p1.X)
	dy := dd.New(s.p2.Y).SubFloat64(s.p1.Y)
	mx := dd.New(s.p1.X).AddFloat64(s.p2.X).MulFloat64(0.5)
	my := dd.New(s.p1.Y).AddFloat64(s.p2.Y).MulFloat64(0.5)
	c := Point{
		X: mx.Sub(k.Mul(dy)).Float64(),
		Y: my.Add(k.Mul(dx)).Float64(),
	}
	s.centre.set(c)
	return c, true
}

// Midpoint returns the point of the arc halfway between P1 and P2. For
// straight segments this is the midpoint of the chord.
func (s *Segment) Midpoint() Point {
	if m, ok := s.midpoint.get(); ok {
		return m
	}

	// The chord's midpoint, offset by the sagitta along the left normal for
	// positive bulges. Sagitta over chord length is b/2.
	b := dd.New(s.bulge).MulFloat64(0.5)
	dx := dd.New(s.p2.X).SubFloat64(s.p1.X)
	dy := dd.New(s.p2.Y).SubFloat64(s.p1.Y)
	mx := dd.New(s.p1.X).AddFloat64(s.p2.X).MulFloat64(0.5)
	my := dd.New(s.p1.Y).AddFloat64(s.p2.Y).MulFloat64(0.5)
	m := Point{
		X: mx.Sub(b.Mul(dy)).Float64(),
		Y: my.Add(b.Mul(dx)).Float64(),
	}
	s.midpoint.set(m)
	return m
}

// Circle returns the circle the segment lies on. It returns false for
// straight segments.
func (s *Segment) Circle() (Circle, bool) {
	c, ok := s.Centre()
	if !ok {
		return Circle{}, false
	}
	return Circle{Center: c, Radius: s.Radius()}, true
}

// Sagitta returns the height of the arc over its chord.
func (s *Segment) Sagitta() float64 {
	return 0.5 * s.p1.Distance(s.p2) * math.Abs(s.bulge)
}

// Radius returns the radius of the segment's circle, or +Inf for straight
// segments. It is 0 if P1 and P2 coincide.
func (s *Segment) Radius() float64 {
	if s.bulge == 0 {
		return math.Inf(1)
	}
	// (h² + sagitta²) / (2·sagitta) with h = c/2 and sagitta = h·|b|.
	c := dd.New(s.p1.Distance(s.p2))
	b := dd.New(s.bulge)
	return c.Mul(b.Sqr().AddFloat64(1)).Div(b.Abs().MulFloat64(4)).Float64()
}

// Apothem returns the distance of the chord from the centre.
func (s *Segment) Apothem() float64 {
	return s.Radius() - s.Sagitta()
}

// OpeningAngle returns 4·atan(bulge), the angle subtended by the arc at the
// centre. It is positive for clockwise arcs and lies in [-π, π].
func (s *Segment) OpeningAngle() float64 {
	return 4 * math.Atan(s.bulge)
}

// SweepAngle returns the signed angle travelled from P1 to P2, positive in
// the counter-clockwise direction. It is the negated opening angle.
func (s *Segment) SweepAngle() float64 {
	return -s.OpeningAngle()
}

// Length returns the arc length.
func (s *Segment) Length() float64 {
	if s.bulge == 0 {
		return s.p1.Distance(s.p2)
	}
	return math.Abs(s.OpeningAngle() * s.Radius())
}

// Area returns the area enclosed by the arc and its chord.
func (s *Segment) Area() float64 {
	if s.bulge == 0 {
		return 0
	}
	c, _ := s.Centre()
	r := s.Radius()
	return math.Abs(s.OpeningAngle())*0.5*r*r - Triangle{c, s.p1, s.p2}.Area()
}

// BoundingBox returns the envelope of the arc. It is the envelope of the chord,
// extended by those points of the circle that are extreme along an axis and
// that the arc passes through.
func (s *Segment) BoundingBox() Rect {
	res := s.Chord().BoundingBox()
	if s.bulge == 0 {
		return res
	}

	// Walk the arc counter-clockwise and collect the axes it crosses.
	c, _ := s.Centre()
	from, to := s.p1, s.p2
	if s.bulge > 0 {
		from, to = to, from
	}
	q1 := quadrant(c, from)
	q2 := quadrant(c, to)
	if q1 == q2 {
		return res
	}
	if q2 < q1 {
		q2 += 4
	}
	r := s.Radius()
	// Entering quadrant k crosses the axis at extremes[k%4].
	extremes := [4]Point{
		{c.X + r, c.Y},
		{c.X, c.Y + r},
		{c.X - r, c.Y},
		{c.X, c.Y - r},
	}
	for k := q1 + 1; k <= q2; k++ {
		res = res.UnionPoint(extremes[k%4])
	}
	return res
}

// quadrant returns the quadrant, numbered counter-clockwise from 0, that pt
// lies in relative to center. Points on an axis belong to the quadrant that
// starts at that axis.
func quadrant(center, pt Point) int {
	v := pt.Sub(center)
	if v.X >= 0 {
		if v.Y >= 0 {
			return 0
		}
		return 3
	}
	if v.Y >= 0 {
		return 1
	}
	return 2
}

// AngleInterval returns the directions, as seen from the centre, covered by
// the arc. It is empty for straight segments.
func (s *Segment) AngleInterval() AngleInterval {
	c, ok := s.Centre()
	if !ok {
		return AngleInterval{s1.EmptyInterval()}
	}
	return AngleIntervalBetween(Angle(c, s.p1), Angle(c, s.p2), s.bulge < 0)
}

// tolerantInterval is AngleInterval grown by the angle that corresponds to
// the tolerance at the arc's radius.
func (s *Segment) tolerantInterval() AngleInterval {
	ai := s.AngleInterval()
	if r := s.Radius(); r > 0 {
		ai = ai.Expanded(s.opts.Tolerance / r)
	}
	return ai
}

// Reverse swaps P1 and P2 and negates the bulge. The centre and the midpoint
// of the arc are unaffected.
func (s *Segment) Reverse() {
	s.p1, s.p2 = s.p2, s.p1
	s.bulge = -s.bulge
}

// Reversed returns a reversed copy of s.
func (s *Segment) Reversed() *Segment {
	r := *s
	r.Reverse()
	return &r
}

// Translate returns a copy of s moved by v.
func (s *Segment) Translate(v Vec2) *Segment {
	t := &Segment{
		p1:    s.p1.Translate(v),
		p2:    s.p2.Translate(v),
		bulge: s.bulge,
		opts:  s.opts,
	}
	if c, ok := s.centre.get(); ok {
		t.centre.set(c.Translate(v))
	}
	if m, ok := s.midpoint.get(); ok {
		t.midpoint.set(m.Translate(v))
	}
	return t
}

// IntersectsPoint reports whether pt lies in the angular sector of the arc:
// the direction of pt seen from the centre must fall within the arc's angle
// interval, within tolerance. The distance of pt from the centre is not
// considered; use [Segment.OnArc] to test for points on the arc itself. For
// straight segments it is the same as OnArc.
func (s *Segment) IntersectsPoint(pt Point) bool {
	if s.bulge == 0 {
		return s.onChord(pt)
	}
	c, _ := s.Centre()
	return s.tolerantInterval().Contains(Angle(c, pt))
}

// OnArc reports whether pt lies on the segment, within tolerance. For curved
// segments pt must be within tolerance of the circle, scaled by the radius
// once that exceeds 1, and inside the arc's sector.
func (s *Segment) OnArc(pt Point) bool {
	if s.bulge == 0 {
		return s.onChord(pt)
	}
	c, _ := s.Centre()
	r := s.Radius()
	if math.Abs(c.Distance(pt)-r) > s.opts.Tolerance*max(1, r) {
		return false
	}
	return s.tolerantInterval().Contains(Angle(c, pt))
}

func (s *Segment) onChord(pt Point) bool {
	return math.Abs(s.p1.Distance(s.p2)-(s.p1.Distance(pt)+pt.Distance(s.p2))) <= s.opts.Tolerance
}

// IntersectsArea reports whether pt lies in the region enclosed by the arc
// and its chord. Points on the chord are not part of that region, and
// straight segments enclose no region at all.
func (s *Segment) IntersectsArea(pt Point) bool {
	if s.bulge == 0 {
		return false
	}
	c, _ := s.Centre()
	if c.Distance(pt) > s.Radius() {
		return false
	}
	if !s.AngleInterval().Contains(Angle(c, pt)) {
		return false
	}
	return !Triangle{c, s.p1, s.p2}.Contains(pt)
}

// IntersectsLine reports whether the segment and the line segment l share at
// least one point.
func (s *Segment) IntersectsLine(l Line) bool {
	if s.bulge == 0 {
		return s.Chord().Intersects(l)
	}

	c, _ := s.Centre()
	r := s.Radius()
	tol := s.opts.Tolerance
	if l.PerpendicularDistance(c)-r > tol {
		return false
	}

	ci := NewCircleLineIntersector(Circle{c, r}, l, tol)
	n := ci.Count()
	if n == 0 {
		return false
	}
	var tTol float64
	if length := l.Length(); length > 0 {
		tTol = tol / length
	}
	ai := s.tolerantInterval()
	for i := range n {
		if t := ci.Parameter(i); t < -tTol || t > 1+tTol {
			continue
		}
		if ai.Contains(Angle(c, ci.Intersection(i))) {
			return true
		}
	}
	return false
}

// IntersectsSegment reports whether the two segments share at least one point.
func (s *Segment) IntersectsSegment(o *Segment) bool {
	if o == nil {
		return false
	}
	if o.bulge == 0 {
		return s.IntersectsLine(o.Chord())
	}
	if s.bulge == 0 {
		return o.IntersectsLine(s.Chord())
	}

	c1, _ := s.Centre()
	c2, _ := o.Centre()
	r1 := s.Radius()
	r2 := o.Radius()
	tol := max(s.opts.Tolerance, o.opts.Tolerance)
	if c1.Distance(c2)-(r1+r2) > tol {
		return false
	}

	ci := NewCircleCircleIntersector(Circle{c1, r1}, Circle{c2, r2}, tol)
	switch n := ci.Count(); n {
	case 0:
		return false
	case InfiniteIntersections:
		return s.tolerantInterval().Overlaps(o.tolerantInterval())
	default:
		for i := range n {
			pt := ci.Intersection(i)
			if s.OnArc(pt) && o.OnArc(pt) {
				return true
			}
		}
		return false
	}
}

// Compare orders segments by their bounding boxes, see [Rect.Compare]. Any
// segment compares greater than nil.
func (s *Segment) Compare(o *Segment) int {
	if o == nil {
		return 1
	}
	return s.BoundingBox().Compare(o.BoundingBox())
}

func (s *Segment) IsInf() bool {
	return s.p1.IsInf() || s.p2.IsInf()
}

func (s *Segment) IsNaN() bool {
	return s.p1.IsNaN() || s.p2.IsNaN() || math.IsNaN(s.bulge)
}

func (s *Segment) String() string {
	return fmt.Sprintf("Segment(%v, %v, bulge=%g)", s.p1, s.p2, s.bulge)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}
