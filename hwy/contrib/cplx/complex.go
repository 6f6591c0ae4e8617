package cplx

import (
	"github.com/ajroetker/hwycomplex/hwy"
)

// Lane masks. The high half of each is chosen so scratch lanes stay 0.
var (
	// negOdd flips the sign of the odd lane in each half.
	negOdd = hwy.SetFloat64x4(1, -1, 1, -1)

	// conjMask flips the imaginary lane and zeroes the scratch half.
	conjMask = hwy.SetFloat64x4(1, -1, 0, 0)

	// divisorPad turns a zero high half into ones so 0/0 never happens there.
	divisorPad = hwy.SetFloat64x4(0, 0, 1, 1)
)

// Complex is a complex128 stored as lanes [real, imag, 0, 0] of a 256-bit
// vector. The zero value is 0+0i.
type Complex struct {
	v hwy.Float64x4
}

// New returns 0+0i.
func New() Complex {
	return Complex{}
}

// FromReal returns re+0i.
func FromReal(re float64) Complex {
	return Complex{v: hwy.SetFloat64x4(re, 0, 0, 0)}
}

// FromParts returns re+im·i.
func FromParts(re, im float64) Complex {
	return Complex{v: hwy.SetFloat64x4(re, im, 0, 0)}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex {
	return FromParts(real(z), imag(z))
}

// Real returns the real part exactly as stored.
func (c Complex) Real() float64 {
	return c.v.GetLane(0)
}

// Imag returns the imaginary part exactly as stored.
func (c Complex) Imag() float64 {
	return c.v.GetLane(1)
}

// Complex128 converts c to the builtin complex128.
func (c Complex) Complex128() complex128 {
	return complex(c.Real(), c.Imag())
}

// Vec returns the backing register, scratch lanes included.
func (c Complex) Vec() hwy.Float64x4 {
	return c.v
}

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{v: c.v.Add(o.v)}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{v: c.v.Sub(o.v)}
}

// MulScalar returns c scaled by s. The scalar fills only the low half.
func (c Complex) MulScalar(s float64) Complex {
	return Complex{v: c.v.Mul(hwy.SetFloat64x4(s, s, 0, 0))}
}

// DivScalar returns c divided by s.
//
// The high half of the divisor is 1, not 0, so the scratch lanes compute
// 0/1 = 0 instead of NaN.
func (c Complex) DivScalar(s float64) Complex {
	return Complex{v: c.v.Div(hwy.SetFloat64x4(s, s, 1, 1))}
}

// Conj returns the complex conjugate of c.
func (c Complex) Conj() Complex {
	return Complex{v: c.v.Mul(conjMask)}
}

// Norm returns real² + imag², the squared magnitude.
func (c Complex) Norm() float64 {
	p := c.v.Mul(c.v)
	return p.AddPairs(p).GetLane(0)
}

// Abs returns the magnitude sqrt(real² + imag²).
//
// The sum of squares is not rescaled, so components beyond ~1e154 overflow
// to +Inf and components below ~1e-162 underflow to 0.
func (c Complex) Abs() float64 {
	p := c.v.Mul(c.v)
	return p.AddPairs(p).Sqrt().GetLane(0)
}

// Equal reports whether c and o have equal real and imaginary parts under
// IEEE-754 equality. A NaN component makes c unequal to everything.
func (c Complex) Equal(o Complex) bool {
	return c.v.LowerEqual(o.v)
}

// NotEqual is the negation of Equal.
func (c Complex) NotEqual(o Complex) bool {
	return !c.Equal(o)
}
