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

//go:build !(amd64 && goexperiment.simd)

package hwy

// Add returns the lane-wise sum a + b.
func (a Float64x4) Add(b Float64x4) Float64x4 { return addBase(a, b) }

// Sub returns the lane-wise difference a - b.
func (a Float64x4) Sub(b Float64x4) Float64x4 { return subBase(a, b) }

// Mul returns the lane-wise product a * b.
func (a Float64x4) Mul(b Float64x4) Float64x4 { return mulBase(a, b) }

// Div returns the lane-wise quotient a / b.
func (a Float64x4) Div(b Float64x4) Float64x4 { return divBase(a, b) }

// Sqrt returns the lane-wise square root of v.
func (v Float64x4) Sqrt() Float64x4 { return sqrtBase(v) }

// AddPairs adds adjacent lanes within each half (VHADDPD).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0+a1, b0+b1, a2+a3, b2+b3]
func (a Float64x4) AddPairs(b Float64x4) Float64x4 { return addPairsBase(a, b) }

// SubPairs subtracts the odd lane from the even lane within each half (VHSUBPD).
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0-a1, b0-b1, a2-a3, b2-b3]
func (a Float64x4) SubPairs(b Float64x4) Float64x4 { return subPairsBase(a, b) }
