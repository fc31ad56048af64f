// Package bulge implements circular arc segments described by a chord and a
// bulge factor, as found in CAD drawing formats and polyline encodings.
//
// # Bulge segments
//
// A [Segment] runs from P1 to P2. Its bulge is the tangent of a quarter of the
// arc's opening angle, which restricts arcs to at most a semicircle: a bulge
// of 0 is a straight line, ±1 a semicircle. Positive bulges put the arc to the
// left of the directed chord and travel it clockwise; negative bulges mirror
// that. [Segment.Reverse] swaps the endpoints and negates the bulge, which
// describes the same set of points.
//
// Segments can be built from a chord and a bulge ([NewSegment],
// [NewSegmentFromLine], [NewSegmentFromCoords]) or from three points on the
// arc ([NewSegmentThroughPoints]). All derived geometry, such as the centre,
// radius, sagitta, apothem, length, area and bounding box, is computed from
// that data. Centre and midpoint are memoized.
//
// # Numerical robustness
//
// The closed forms for centre, midpoint and radius, the circumcentre of three
// points and the quadratics behind the circle intersectors are evaluated in
// double-double arithmetic. Orientation and line-line intersection tests are
// exact. Comparisons that cannot be exact use the absolute tolerance of
// [Options], which defaults to 1e-10.
//
// # Predicates
//
// [Segment.OnArc], [Segment.IntersectsLine] and
// [Segment.IntersectsSegment] test whether the arc shares points with a point,
// a line segment or another arc. [Segment.IntersectsArea] tests whether a
// point lies in the region between arc and chord, and
// [Segment.IntersectsPoint] whether it lies in the arc's angular sector. The
// primitive intersectors, [CircleLineIntersector] and
// [CircleCircleIntersector], are exported as well.
//
// # Tessellation
//
// [Segment.FillSequence] approximates an arc by a polyline whose vertices are
// roughly a given arc length apart, snapping interior vertices with a
// [PrecisionModel]. Any [Sequence] implementation can receive the vertices;
// [Segment.AsPointSequence] returns them as a slice and [Segment.Samples] as
// an iterator.
//
// # Logging
//
// By default, the package doesn't log. Use [SetLogger] to receive debug
// messages about numerically degenerate inputs.
package bulge
