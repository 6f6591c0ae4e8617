//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides the AVX2 path for the elementwise Float64x4 operations.
// Each method checks the dispatch decision made in init and otherwise falls
// back to the scalar kernels in ops_base.go.
//
// The *_AVX2_F64x4 helpers work directly on archsimd vectors and can be used
// by callers that keep their data in archsimd registers.

// Add_AVX2_F64x4 computes a + b with VADDPD.
func Add_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Add(b)
}

// Sub_AVX2_F64x4 computes a - b with VSUBPD.
func Sub_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Sub(b)
}

// Mul_AVX2_F64x4 computes a * b with VMULPD.
func Mul_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Mul(b)
}

// Div_AVX2_F64x4 computes a / b with VDIVPD.
func Div_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.Div(b)
}

// Sqrt_AVX2_F64x4 computes sqrt(x) for a single Float64x4 vector.
// Uses the hardware VSQRTPD instruction which provides correctly rounded results.
func Sqrt_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.Sqrt()
}

// AddPairs_AVX2_F64x4 adds adjacent lanes within each 128-bit half with VHADDPD.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0+a1, b0+b1, a2+a3, b2+b3]
func AddPairs_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.AddPairsGrouped(b)
}

// SubPairs_AVX2_F64x4 subtracts the odd lane from the even lane within each
// 128-bit half with VHSUBPD.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0-a1, b0-b1, a2-a3, b2-b3]
func SubPairs_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.SubPairsGrouped(b)
}

// Reverse2_AVX2_F64x4 swaps the two lanes of each half (VPERMILPD 0b0101).
// Selector values 0-1 pick from the first operand's half, 2-3 from the second.
func Reverse2_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.SelectFromPairGrouped(1, 0, x)
}

// DupEven_AVX2_F64x4 copies the even lane of each half into the odd lane
// (VPERMILPD 0b0000).
func DupEven_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.SelectFromPairGrouped(0, 0, x)
}

// InterleaveEven_AVX2_F64x4 takes the even lane of each half from a and then
// from b (VSHUFPD 0b0000).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a2,b2]
func InterleaveEven_AVX2_F64x4(a, b archsimd.Float64x4) archsimd.Float64x4 {
	return a.SelectFromPairGrouped(0, 2, b)
}

// ToArch loads v into an archsimd register.
func (v Float64x4) ToArch() archsimd.Float64x4 {
	return archsimd.LoadFloat64x4Slice(v[:])
}

// FromArch stores an archsimd register into a Float64x4.
func FromArch(x archsimd.Float64x4) Float64x4 {
	var v Float64x4
	x.Store((*[NumLanes]float64)(&v))
	return v
}

// Add returns the lane-wise sum a + b.
func (a Float64x4) Add(b Float64x4) Float64x4 {
	if !useAVX2 {
		return addBase(a, b)
	}
	return FromArch(Add_AVX2_F64x4(a.ToArch(), b.ToArch()))
}

// Sub returns the lane-wise difference a - b.
func (a Float64x4) Sub(b Float64x4) Float64x4 {
	if !useAVX2 {
		return subBase(a, b)
	}
	return FromArch(Sub_AVX2_F64x4(a.ToArch(), b.ToArch()))
}

// Mul returns the lane-wise product a * b.
func (a Float64x4) Mul(b Float64x4) Float64x4 {
	if !useAVX2 {
		return mulBase(a, b)
	}
	return FromArch(Mul_AVX2_F64x4(a.ToArch(), b.ToArch()))
}

// Div returns the lane-wise quotient a / b.
func (a Float64x4) Div(b Float64x4) Float64x4 {
	if !useAVX2 {
		return divBase(a, b)
	}
	return FromArch(Div_AVX2_F64x4(a.ToArch(), b.ToArch()))
}

// Sqrt returns the lane-wise square root of v.
func (v Float64x4) Sqrt() Float64x4 {
	if !useAVX2 {
		return sqrtBase(v)
	}
	return FromArch(Sqrt_AVX2_F64x4(v.ToArch()))
}

// AddPairs adds adjacent lanes within each half (VHADDPD).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0+a1, b0+b1, a2+a3, b2+b3]
func (a Float64x4) AddPairs(b Float64x4) Float64x4 {
	if !useAVX2 {
		return addPairsBase(a, b)
	}
	return FromArch(AddPairs_AVX2_F64x4(a.ToArch(), b.ToArch()))
}

// SubPairs subtracts the odd lane from the even lane within each half (VHSUBPD).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0-a1, b0-b1, a2-a3, b2-b3]
func (a Float64x4) SubPairs(b Float64x4) Float64x4 {
	if !useAVX2 {
		return subPairsBase(a, b)
	}
	return FromArch(SubPairs_AVX2_F64x4(a.ToArch(), b.ToArch()))
}
