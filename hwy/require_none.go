//go:build !hwy_require_avx2

package hwy

const requireAVX2 = false
