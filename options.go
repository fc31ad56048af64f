package bulge

import "math"

// PrecisionModel snaps computed ordinates to a grid.
type PrecisionModel interface {
	MakePrecise(v float64) float64
}

// Floating is the precision model of full float64 precision. It leaves values unchanged.
type Floating struct{}

func (Floating) MakePrecise(v float64) float64 { return v }

// Fixed is a precision model that rounds values to multiples of 1/Scale. A
// Scale of 1000 keeps three decimal places.
type Fixed struct {
	Scale float64
}

func (f Fixed) MakePrecise(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*f.Scale) / f.Scale
}

// Options configures the construction and evaluation of segments. The zero
// value is not useful; start from [DefaultOptions].
type Options struct {
	// Tolerance is the absolute distance below which two quantities are
	// considered equal, for example when deciding whether a point lies on a
	// chord or whether a line is tangent to a circle.
	Tolerance float64
	// Precision snaps tessellated points. Nil means [Floating].
	Precision PrecisionModel
}

var DefaultOptions = Options{
	Tolerance: 1e-10,
	Precision: Floating{},
}

// Validate reports whether the options are usable.
func (o Options) Validate() error {
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return invalidArgumentf("tolerance must be finite and non-negative, got %g", o.Tolerance)
	}
	if f, ok := o.Precision.(Fixed); ok && !(f.Scale > 0) {
		return invalidArgumentf("fixed precision model must have a positive scale, got %g", f.Scale)
	}
	return nil
}

func (o Options) precision() PrecisionModel {
	if o.Precision == nil {
		return Floating{}
	}
	return o.Precision
}
