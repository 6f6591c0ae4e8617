//go:build amd64 && goexperiment.simd

package cplx

import (
	"github.com/ajroetker/hwycomplex/hwy"
)

func init() {
	if hwy.CurrentLevel() >= hwy.DispatchAVX2 {
		mulFunc = mulAVX2
		divFunc = divAVX2
	}
}

// mulAVX2 is mulBase with both operands held in one ymm register each from
// load to store.
func mulAVX2(x, y hwy.Float64x4) hwy.Float64x4 {
	a, b := x.ToArch(), y.ToArch()

	vc3 := a.Mul(b)
	vc2 := hwy.Reverse2_AVX2_F64x4(b).Mul(negOdd.ToArch())
	vc4 := a.Mul(vc2)
	return hwy.FromArch(hwy.SubPairs_AVX2_F64x4(vc3, vc4))
}

// divAVX2 is divBase with both operands held in one ymm register each from
// load to store.
func divAVX2(x, y hwy.Float64x4) hwy.Float64x4 {
	a, b := x.ToArch(), y.ToArch()

	n1 := a.Mul(b)
	n1 = hwy.AddPairs_AVX2_F64x4(n1, n1)
	n2 := b.Mul(hwy.Reverse2_AVX2_F64x4(a))
	n2 = hwy.SubPairs_AVX2_F64x4(n2, n2)
	n := hwy.InterleaveEven_AVX2_F64x4(n1, n2)

	d := b.Mul(b)
	d = hwy.AddPairs_AVX2_F64x4(d, d)
	d = hwy.DupEven_AVX2_F64x4(d).Add(divisorPad.ToArch())
	return hwy.FromArch(n.Div(d))
}
