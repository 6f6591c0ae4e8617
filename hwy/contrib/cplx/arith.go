package cplx

import (
	"github.com/ajroetker/hwycomplex/hwy"
)

// Mul returns c·o.
//
// With c = [a, b] and o = [c, d] in the low half:
//
//	vc3 = c*o              [ac, bd]
//	vc2 = Reverse2(o)*neg  [d, -c]
//	vc4 = c*vc2            [ad, -bc]
//	SubPairs(vc3, vc4)     [ac-bd, ad+bc]
//
// The high halves are all zero, so the scratch result is 0-0 = 0.
func (c Complex) Mul(o Complex) Complex {
	return Complex{v: mulFunc(c.v, o.v)}
}

// Div returns c/o.
//
// With c = [a, b] and o = [c, d] in the low half:
//
//	n1 = AddPairs(c*o, c*o)                 [ac+bd, ac+bd]
//	n2 = SubPairs(o*Reverse2(c), ...)       [bc-ad, bc-ad]
//	n  = InterleaveEven(n1, n2)             [ac+bd, bc-ad]
//	d  = DupEven(AddPairs(o*o, o*o)) + pad  [c²+d², c²+d², 1, 1]
//	n / d
//
// Both numerator lanes are divided by the same lane-0 sum. A zero divisor
// follows IEEE-754: the result holds infinities or NaNs.
func (c Complex) Div(o Complex) Complex {
	return Complex{v: divFunc(c.v, o.v)}
}

// Kernels behind Mul and Div. arith_avx2.go replaces them at init when the
// AVX2 path is selected.
var (
	mulFunc = mulBase
	divFunc = divBase
)

func mulBase(x, y hwy.Float64x4) hwy.Float64x4 {
	vc3 := x.Mul(y)
	vc2 := y.Reverse2().Mul(negOdd)
	vc4 := x.Mul(vc2)
	return vc3.SubPairs(vc4)
}

func divBase(x, y hwy.Float64x4) hwy.Float64x4 {
	n1 := x.Mul(y)
	n1 = n1.AddPairs(n1)
	n2 := y.Mul(x.Reverse2())
	n2 = n2.SubPairs(n2)
	n := n1.InterleaveEven(n2)

	d := y.Mul(y)
	d = d.AddPairs(d)
	d = d.DupEven().Add(divisorPad)
	return n.Div(d)
}
