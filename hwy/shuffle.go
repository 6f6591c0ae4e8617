package hwy

// Lane moves on Float64x4. All of them stay inside a 128-bit half, matching
// the in-lane behaviour of VPERMILPD and VSHUFPD on 256-bit registers.
// Moves are exact, so these run as array moves on every target; code that
// keeps values in archsimd registers uses the *_AVX2_F64x4 forms instead.

// Reverse2 swaps the two lanes of each half.
// [0,1,2,3] -> [1,0,3,2]
//
// This is VPERMILPD with immediate 0b0101.
func (v Float64x4) Reverse2() Float64x4 {
	return Float64x4{v[1], v[0], v[3], v[2]}
}

// DupEven copies the even lane of each half into the odd lane.
// [0,1,2,3] -> [0,0,2,2]
//
// This is VPERMILPD with immediate 0b0000.
func (v Float64x4) DupEven() Float64x4 {
	return Float64x4{v[0], v[0], v[2], v[2]}
}

// InterleaveEven takes the even lane of each half from a and b.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a2,b2]
//
// This is VSHUFPD with immediate 0b0000.
func (a Float64x4) InterleaveEven(b Float64x4) Float64x4 {
	return Float64x4{a[0], b[0], a[2], b[2]}
}
