// Package dd implements double-double arithmetic.
//
// A double-double number is the unevaluated sum of two float64 values, hi and
// lo, with |lo| ≤ ulp(hi)/2. This yields roughly 106 bits of significand,
// which is enough to evaluate the discriminants and distances used by the
// intersection code without catastrophic cancellation.
//
// The algorithms are the classic error-free transformations by Dekker and
// Knuth, as described in "Library for Double-Double and Quad-Double
// Arithmetic" by Hida, Li and Bailey.
package dd

import (
	"fmt"
	"math"
)

// Float is a double-double number. The zero value is 0.
type Float struct {
	hi, lo float64
}

var (
	Pi    = Float{3.141592653589793116e+00, 1.224646799147353207e-16}
	TwoPi = Float{6.283185307179586232e+00, 2.449293598294706414e-16}
)

// New returns x as a double-double number.
func New(x float64) Float {
	return Float{hi: x}
}

// twoSum computes s = fl(a+b) and the rounding error e, such that a+b = s+e exactly.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// quickTwoSum is like twoSum but requires |a| ≥ |b|.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// twoProd computes p = fl(a*b) and the rounding error e, such that a*b = p+e exactly.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	e = math.FMA(a, b, -p)
	return p, e
}

// Float64 returns the float64 closest to x.
func (x Float) Float64() float64 {
	return x.hi + x.lo
}

// Hi returns the leading component of x.
func (x Float) Hi() float64 { return x.hi }

// Lo returns the trailing component of x.
func (x Float) Lo() float64 { return x.lo }

func (x Float) String() string {
	return fmt.Sprintf("%.17g%+.17g", x.hi, x.lo)
}

// Add returns x+y.
func (x Float) Add(y Float) Float {
	s, e := twoSum(x.hi, y.hi)
	t, f := twoSum(x.lo, y.lo)
	e += t
	s, e = quickTwoSum(s, e)
	e += f
	s, e = quickTwoSum(s, e)
	return Float{s, e}
}

// AddFloat64 returns x+y.
func (x Float) AddFloat64(y float64) Float {
	s, e := twoSum(x.hi, y)
	e += x.lo
	s, e = quickTwoSum(s, e)
	return Float{s, e}
}

// Sub returns x−y.
func (x Float) Sub(y Float) Float {
	return x.Add(y.Neg())
}

// SubFloat64 returns x−y.
func (x Float) SubFloat64(y float64) Float {
	return x.AddFloat64(-y)
}

// Mul returns x·y.
func (x Float) Mul(y Float) Float {
	p, e := twoProd(x.hi, y.hi)
	e += x.hi*y.lo + x.lo*y.hi
	p, e = quickTwoSum(p, e)
	return Float{p, e}
}

// MulFloat64 returns x·y.
func (x Float) MulFloat64(y float64) Float {
	p, e := twoProd(x.hi, y)
	e += x.lo * y
	p, e = quickTwoSum(p, e)
	return Float{p, e}
}

// Sqr returns x².
func (x Float) Sqr() Float {
	return x.Mul(x)
}

// Div returns x/y. Dividing by zero yields a non-finite result.
func (x Float) Div(y Float) Float {
	q1 := x.hi / y.hi
	r := x.Sub(y.MulFloat64(q1))
	q2 := r.hi / y.hi
	r = r.Sub(y.MulFloat64(q2))
	q3 := r.hi / y.hi
	q1, q2 = quickTwoSum(q1, q2)
	return Float{q1, q2}.AddFloat64(q3)
}

// Sqrt returns the square root of x. It returns NaN for negative x.
func (x Float) Sqrt() Float {
	if x.hi == 0 {
		return Float{}
	}
	if x.hi < 0 {
		return Float{math.NaN(), math.NaN()}
	}
	// One Newton step on top of the float64 root doubles the number of correct bits.
	a := math.Sqrt(x.hi)
	r := New(a)
	d := x.Sub(r.Sqr()).Float64() / (2 * a)
	return r.AddFloat64(d)
}

// Neg returns −x.
func (x Float) Neg() Float {
	return Float{-x.hi, -x.lo}
}

// Abs returns |x|.
func (x Float) Abs() Float {
	if x.hi < 0 || (x.hi == 0 && x.lo < 0) {
		return x.Neg()
	}
	return x
}

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Float) Sign() int {
	switch {
	case x.hi > 0:
		return 1
	case x.hi < 0:
		return -1
	case x.lo > 0:
		return 1
	case x.lo < 0:
		return -1
	default:
		return 0
	}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Float) Cmp(y Float) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether x is exactly zero.
func (x Float) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// IsNaN reports whether x is NaN.
func (x Float) IsNaN() bool {
	return math.IsNaN(x.hi) || math.IsNaN(x.lo)
}
