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

// Horizontal pair reductions. Each 128-bit half of the result takes one pair
// from a and one pair from b; nothing is combined across halves.

// addPairsBase is the lane loop behind AddPairs.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0+a1, b0+b1, a2+a3, b2+b3]
func addPairsBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] + a[1]),
		float64(b[0] + b[1]),
		float64(a[2] + a[3]),
		float64(b[2] + b[3]),
	}
}

// subPairsBase is the lane loop behind SubPairs.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0-a1, b0-b1, a2-a3, b2-b3]
func subPairsBase(a, b Float64x4) Float64x4 {
	return Float64x4{
		float64(a[0] - a[1]),
		float64(b[0] - b[1]),
		float64(a[2] - a[3]),
		float64(b[2] - b[3]),
	}
}

// LowerEqual reports whether lanes 0 and 1 of a and b compare equal.
// The high half is ignored. NaN lanes never compare equal.
func (a Float64x4) LowerEqual(b Float64x4) bool {
	return a[0] == b[0] && a[1] == b[1]
}
