// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides pure Go (scalar) implementations of the elementwise
// Float64x4 operations. They back the methods whenever the AVX2 path is not
// selected, including when HWY_NO_SIMD is set.
//
// Every lane result is wrapped in an explicit float64 conversion so the
// compiler cannot fuse a product into a later sum. A fused multiply-add would
// round once instead of twice and break bit equality with VMULPD + VADDPD.

func addBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] + b[0]),
		float64(a[1] + b[1]),
		float64(a[2] + b[2]),
		float64(a[3] + b[3]),
	}
}

func subBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] - b[0]),
		float64(a[1] - b[1]),
		float64(a[2] - b[2]),
		float64(a[3] - b[3]),
	}
}

func mulBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] * b[0]),
		float64(a[1] * b[1]),
		float64(a[2] * b[2]),
		float64(a[3] * b[3]),
	}
}

func divBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] / b[0]),
		float64(a[1] / b[1]),
		float64(a[2] / b[2]),
		float64(a[3] / b[3]),
	}
}

// sqrtBase uses math.Sqrt, which is correctly rounded like VSQRTPD.
func sqrtBase(v Float64x4) Float64x4 {
	return Float64x4{
		math.Sqrt(v[0]),
		math.Sqrt(v[1]),
		math.Sqrt(v[2]),
		math.Sqrt(v[3]),
	}
}
