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

// Package cplx provides a double-precision complex number held in one
// 256-bit vector register.
//
// Complex keeps its real part in lane 0 and its imaginary part in lane 1 of a
// hwy.Float64x4. Lanes 2 and 3 are scratch: horizontal pair instructions work
// inside each 128-bit half, so the high half is carried along but held at an
// identity value (0 for values, 1 where a divisor needs padding) and never
// contributes to the result.
//
// Every operation is a fixed, branch-free sequence of elementwise multiplies,
// in-half permutes, sign flips and pair reductions:
//
//	(a+bi)(c+di) = (ac-bd) + (ad+bc)i
//	  vc3 = [a,b]*[c,d]           -> [ac, bd]
//	  vc4 = [a,b]*([d,c]*[1,-1])  -> [ad, -bc]
//	  SubPairs(vc3, vc4)          -> [ac-bd, ad+bc]
//
//	(a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
//
// Arithmetic follows IEEE-754 throughout. Division by a complex zero yields
// infinities or NaNs; nothing is intercepted.
//
// # Concurrency
//
// Complex is a plain value with no heap storage. Values may be read from any
// number of goroutines. The *Assign methods mutate their receiver and need the
// same external synchronization as any other write.
package cplx
