// Package hwy provides a 4-lane float64 vector register with runtime CPU dispatch.
//
// Float64x4 mirrors the layout of a 256-bit AVX register: four float64 lanes
// split into two 128-bit halves. Elementwise arithmetic runs on the hardware
// register when the binary is built with GOEXPERIMENT=simd on an AVX2 CPU, and
// on a scalar lane loop otherwise. Both paths round identically, so results do
// not depend on the dispatch level.
//
// Lane permutes and horizontal pair operations act within each 128-bit half,
// never across halves, exactly like VPERMILPD, VHADDPD, VHSUBPD and VSHUFPD.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwycomplex/hwy"
//
//	a := hwy.SetFloat64x4(3, 8, 0, 0)
//	b := hwy.SetFloat64x4(2, 1, 0, 0)
//	p := a.Mul(b)                 // [6, 8, 0, 0]
//	s := p.AddPairs(p)            // [14, 14, 0, 0]
//	fmt.Println(s.GetLane(0))     // 14
package hwy

// NumLanes is the number of float64 lanes in a Float64x4.
const NumLanes = 4

// Float64x4 is a 256-bit vector of four float64 lanes.
//
// Lanes 0-1 form the low 128-bit half and lanes 2-3 the high half.
// The zero value is a vector of four +0 lanes.
type Float64x4 [NumLanes]float64

// SetFloat64x4 returns a vector holding l0..l3 in lane order.
func SetFloat64x4(l0, l1, l2, l3 float64) Float64x4 {
	return Float64x4{l0, l1, l2, l3}
}

// ZeroFloat64x4 returns a vector with all lanes set to +0.
func ZeroFloat64x4() Float64x4 {
	return Float64x4{}
}

// BroadcastFloat64x4 returns a vector with all lanes set to x.
func BroadcastFloat64x4(x float64) Float64x4 {
	return Float64x4{x, x, x, x}
}

// LoadFloat64x4Slice loads the first four elements of src.
// It panics if len(src) < 4.
func LoadFloat64x4Slice(src []float64) Float64x4 {
	return Float64x4(src[:NumLanes])
}

// StoreSlice writes all four lanes to dst.
// It panics if len(dst) < 4.
func (v Float64x4) StoreSlice(dst []float64) {
	copy(dst[:NumLanes], v[:])
}

// GetLane returns lane i. It panics if i is out of range.
func (v Float64x4) GetLane(i int) float64 {
	return v[i]
}

// Lo returns the low 128-bit half (lanes 0 and 1).
func (v Float64x4) Lo() [2]float64 {
	return [2]float64{v[0], v[1]}
}

// Hi returns the high 128-bit half (lanes 2 and 3).
func (v Float64x4) Hi() [2]float64 {
	return [2]float64{v[2], v[3]}
}
