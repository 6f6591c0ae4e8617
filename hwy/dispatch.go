package hwy

import (
	"strconv"

	"github.com/xyproto/env/v2"
)

// NoSimdVar is the environment variable that forces the scalar path.
const NoSimdVar = "HWY_NO_SIMD"

// DispatchLevel represents the instruction set backing Float64x4 arithmetic.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go lane loops.
	DispatchScalar DispatchLevel = iota

	// DispatchAVX2 indicates AVX2 instructions on the 256-bit register.
	DispatchAVX2

	// DispatchAVX512 indicates an AVX-512 CPU. Float64x4 still uses the
	// 256-bit AVX2 encodings on it.
	DispatchAVX512
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// useAVX2 selects the archsimd path in ops_avx2.go.
// Set by init() in dispatch_*.go files.
var useAVX2 bool

// hasAVX2 reports what the CPU supports, independent of the build.
var hasAVX2 bool

// CurrentLevel returns the instruction set used for Float64x4 arithmetic.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HasAVX2 reports whether the CPU implements AVX2, even when this build
// cannot use it (no GOEXPERIMENT=simd, or HWY_NO_SIMD set).
func HasAVX2() bool {
	return hasAVX2
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Float64x4 uses the scalar lanes regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return parseNoSimd(env.Str(NoSimdVar))
}

func parseNoSimd(val string) bool {
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	useAVX2 = false
}

// checkRequirements enforces the hwy_require_avx2 build tag at start-up.
func checkRequirements() {
	if requireAVX2 && !useAVX2 {
		panic("hwy: built with hwy_require_avx2 but the AVX2 path is unavailable " +
			"(CPU without AVX2, or " + NoSimdVar + " is set)")
	}
}
