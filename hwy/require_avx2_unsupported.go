//go:build hwy_require_avx2 && !(amd64 && goexperiment.simd)

package hwy

// The hwy_require_avx2 tag forbids the scalar fallback. Only amd64 builds with
// GOEXPERIMENT=simd carry the vector path, so any other build must not compile.
var _ = hwy_require_avx2_needs_amd64_and_GOEXPERIMENT_simd
