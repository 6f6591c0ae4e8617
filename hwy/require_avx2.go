//go:build hwy_require_avx2

package hwy

// requireAVX2 makes package init panic unless the AVX2 path is selected.
const requireAVX2 = true
