package cplx

import (
	"math"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/stretchr/testify/require"
)

// naiveDFT computes X[k] = sum_n x[n]·exp(-2πi·kn/N) with Complex arithmetic,
// the kind of transform kernel Complex exists for.
func naiveDFT(x []Complex) []Complex {
	n := len(x)
	out := make([]Complex, n)
	for k := range n {
		var acc Complex
		for j, xj := range x {
			angle := -2 * math.Pi * float64(k*j%n) / float64(n)
			w := FromParts(math.Cos(angle), math.Sin(angle))
			acc.AddAssign(xj.Mul(w))
		}
		out[k] = acc
	}
	return out
}

func TestDFTMatchesFFT(t *testing.T) {
	for _, size := range []int{8, 16, 64} {
		in := make([]Complex, size)
		src := make([]complex128, size)
		for i := range in {
			re := math.Sin(2*math.Pi*3*float64(i)/float64(size)) + 0.25*float64(i%5)
			im := 0.5 * math.Cos(2*math.Pi*float64(i)/float64(size))
			in[i] = FromParts(re, im)
			src[i] = complex(re, im)
		}

		plan, err := algofft.NewPlan64(size)
		require.NoError(t, err)
		want := make([]complex128, size)
		require.NoError(t, plan.Forward(want, src))

		got := naiveDFT(in)
		for k := range got {
			d := got[k].Sub(FromComplex128(want[k])).Abs()
			if d > 1e-9 {
				t.Errorf("N=%d bin %d: got %v, fft %v (|diff| %g)", size, k, got[k], want[k], d)
			}
		}
	}
}

func TestNormAbsMatchVecmath(t *testing.T) {
	s := samples(t)
	re := make([]float64, len(s))
	im := make([]float64, len(s))
	for i, c := range s {
		re[i], im[i] = c.Real(), c.Imag()
	}

	power := make([]float64, len(s))
	mag := make([]float64, len(s))
	vecmath.Power(power, re, im)
	vecmath.Magnitude(mag, re, im)

	for i, c := range s {
		require.InEpsilonf(t, power[i], c.Norm(), 1e-13, "Norm(%v)", c)
		require.InEpsilonf(t, mag[i], c.Abs(), 1e-13, "Abs(%v)", c)
	}
}
