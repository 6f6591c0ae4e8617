package cplx

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		c      Complex
		re, im float64
	}{
		{"New", New(), 0, 0},
		{"zero value", Complex{}, 0, 0},
		{"FromReal", FromReal(-4.5), -4.5, 0},
		{"FromParts", FromParts(3, 8), 3, 8},
		{"subnormal", FromParts(5e-324, -5e-324), 5e-324, -5e-324},
		{"large", FromParts(math.MaxFloat64, -math.MaxFloat64), math.MaxFloat64, -math.MaxFloat64},
		{"FromComplex128", FromComplex128(complex(1.25, -7)), 1.25, -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.c.Real() != tt.re || tt.c.Imag() != tt.im {
				t.Errorf("got (%v, %v), want (%v, %v)", tt.c.Real(), tt.c.Imag(), tt.re, tt.im)
			}
			if hi := tt.c.Vec().Hi(); hi != [2]float64{0, 0} {
				t.Errorf("scratch lanes: got %v, want [0 0]", hi)
			}
		})
	}
}

func TestAccessorsKeepBits(t *testing.T) {
	negZero := math.Copysign(0, -1)
	c := FromParts(negZero, math.Inf(-1))
	if !math.Signbit(c.Real()) || c.Real() != 0 {
		t.Errorf("Real: got %v, want -0", c.Real())
	}
	if !math.IsInf(c.Imag(), -1) {
		t.Errorf("Imag: got %v, want -Inf", c.Imag())
	}

	n := FromParts(math.NaN(), 1)
	if !math.IsNaN(n.Real()) {
		t.Errorf("Real: got %v, want NaN", n.Real())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	a := FromParts(1, 2)
	b := a
	b.AddAssign(FromParts(10, 10))
	if !a.Equal(FromParts(1, 2)) {
		t.Errorf("copy aliased the original: a = %v", a)
	}
	if !b.Equal(FromParts(11, 12)) {
		t.Errorf("b = %v, want 11 i12", b)
	}
}

func TestKnownProducts(t *testing.T) {
	a := FromParts(3, 8)
	b := FromParts(2, 1)

	p := a.Mul(b)
	if !p.Equal(FromParts(-2, 19)) {
		t.Errorf("a*b = %v, want -2 i19", p)
	}
	if got, want := p.Abs(), math.Sqrt(365); got != want {
		t.Errorf("abs(a*b) = %v, want %v", got, want)
	}

	q := a.Div(b)
	if !q.Equal(FromParts(2.8, 2.6)) {
		t.Errorf("a/b = %v, want 2.8 i2.6", q)
	}
	if got, want := q.Abs(), math.Sqrt(14.6); math.Abs(got-want) > 1e-12 {
		t.Errorf("abs(a/b) = %v, want %v", got, want)
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"i*i", FromParts(0, 1), FromParts(0, 1), FromReal(-1)},
		{"real*real", FromReal(3), FromReal(-4), FromReal(-12)},
		{"by one", FromParts(5, -6), FromReal(1), FromParts(5, -6)},
		{"by zero", FromParts(5, -6), New(), New()},
		{"conjugate pair", FromParts(1, 2), FromParts(1, -2), FromReal(5)},
		{"fractions", FromParts(0.5, 0.25), FromParts(4, 8), FromParts(0, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Mul(tt.b); !got.Equal(tt.want) {
				t.Errorf("%v * %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{"by i", FromReal(1), FromParts(0, 1), FromParts(0, -1)},
		{"by real", FromParts(6, -9), FromReal(3), FromParts(2, -3)},
		{"by self", FromParts(7, 7), FromParts(7, 7), FromReal(1)},
		{"zero numerator", New(), FromParts(2, 5), New()},
		{"imaginary only", FromParts(0, 4), FromParts(0, 2), FromReal(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Div(tt.b); !got.Equal(tt.want) {
				t.Errorf("%v / %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// TestDivUsesOneDenominator catches a denominator broadcast from the wrong
// lane: with an asymmetric divisor both parts would come out scaled
// differently.
func TestDivUsesOneDenominator(t *testing.T) {
	a := FromParts(1, 1)
	b := FromParts(3, 4) // c²+d² = 25
	got := a.Div(b)
	// (1+i)/(3+4i) = (1+i)(3-4i)/25 = (7 - i)/25
	if !got.Equal(FromParts(7.0/25, -1.0/25)) {
		t.Errorf("(1+i)/(3+4i) = %v, want %v", got, FromParts(7.0/25, -1.0/25))
	}
}

func TestZeroDivisor(t *testing.T) {
	q := FromReal(1).Div(New())
	re, im := q.Real(), q.Imag()
	bad := func(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
	if !bad(re) && !bad(im) {
		t.Errorf("1/0 = %v, want infinite or NaN components", q)
	}
	if hi := q.Vec().Hi(); hi != [2]float64{0, 0} {
		t.Errorf("scratch lanes after 1/0: got %v, want [0 0]", hi)
	}

	s := FromParts(1, -1).DivScalar(0)
	if !math.IsInf(s.Real(), 1) || !math.IsInf(s.Imag(), -1) {
		t.Errorf("(1-i)/0 = %v, want +Inf i-Inf", s)
	}
}

func TestScalar(t *testing.T) {
	c := FromParts(3, -4)
	if got := c.MulScalar(2.5); !got.Equal(FromParts(7.5, -10)) {
		t.Errorf("MulScalar: got %v", got)
	}
	if got := c.DivScalar(-2); !got.Equal(FromParts(-1.5, 2)) {
		t.Errorf("DivScalar: got %v", got)
	}
}

// TestScratchStaysInert checks the high half after every operation, including
// the ones that divide by zero or overflow.
func TestScratchStaysInert(t *testing.T) {
	a := FromParts(3, 8)
	b := FromParts(2, 1)
	huge := FromParts(math.MaxFloat64, math.MaxFloat64)
	inf := FromParts(math.Inf(1), math.Inf(-1))
	z := New()

	results := map[string]Complex{
		"Add":             a.Add(b),
		"Sub":             a.Sub(b),
		"MulScalar":       a.MulScalar(math.Inf(1)),
		"MulScalar NaN":   a.MulScalar(math.NaN()),
		"DivScalar":       a.DivScalar(7),
		"DivScalar zero":  a.DivScalar(0),
		"Mul":             a.Mul(b),
		"Mul overflow":    huge.Mul(huge),
		"Mul inf":         inf.Mul(b),
		"Div":             a.Div(b),
		"Div zero":        a.Div(New()),
		"Div inf":         b.Div(inf),
		"Conj":            a.Conj(),
		"MulAssign chain": *z.AddAssign(a).MulAssign(b).DivAssign(b).SubAssign(a),
	}

	for name, c := range results {
		if hi := c.Vec().Hi(); hi != [2]float64{0, 0} {
			t.Errorf("%s: scratch lanes = %v, want [0 0]", name, hi)
		}
	}
}

func TestConj(t *testing.T) {
	c := FromParts(1.5, -2)
	if got := c.Conj(); !got.Equal(FromParts(1.5, 2)) {
		t.Errorf("Conj(%v) = %v", c, got)
	}
	if got := c.Mul(c.Conj()); !got.Equal(FromReal(c.Norm())) {
		t.Errorf("c*conj(c) = %v, want %v", got, c.Norm())
	}
}

func TestNormAbs(t *testing.T) {
	tests := []struct {
		c         Complex
		norm, abs float64
	}{
		{New(), 0, 0},
		{FromParts(3, 4), 25, 5},
		{FromParts(-3, -4), 25, 5},
		{FromReal(-2), 4, 2},
		{FromParts(0, 0.5), 0.25, 0.5},
		{FromParts(1e200, 0), math.Inf(1), math.Inf(1)},
	}
	for _, tt := range tests {
		if got := tt.c.Norm(); got != tt.norm {
			t.Errorf("Norm(%v) = %v, want %v", tt.c, got, tt.norm)
		}
		if got := tt.c.Abs(); got != tt.abs {
			t.Errorf("Abs(%v) = %v, want %v", tt.c, got, tt.abs)
		}
	}
}

func TestEqual(t *testing.T) {
	nan := FromParts(math.NaN(), 0)
	if nan.Equal(nan) {
		t.Error("NaN value equals itself")
	}
	if !nan.NotEqual(nan) {
		t.Error("NotEqual(NaN, NaN) = false")
	}

	a := FromParts(1, 2)
	b := FromParts(1, 2)
	if !a.Equal(b) || !b.Equal(a) || a.NotEqual(b) {
		t.Errorf("%v and %v should be equal", a, b)
	}
	if a.Equal(FromParts(1, 2.0000000001)) {
		t.Error("Equal applied a tolerance")
	}
	if !FromReal(0).Equal(FromReal(math.Copysign(0, -1))) {
		t.Error("0 != -0")
	}
}

func TestCompoundAssign(t *testing.T) {
	z := FromParts(3, 8)
	ret := z.MulAssign(FromParts(2, 1))
	if ret != &z {
		t.Error("MulAssign did not return its receiver")
	}
	if !z.Equal(FromParts(-2, 19)) {
		t.Errorf("MulAssign: got %v", z)
	}

	z.DivAssign(FromParts(2, 1))
	if !z.Equal(FromParts(3, 8)) {
		t.Errorf("DivAssign: got %v", z)
	}

	z.AddAssign(FromParts(1, 1)).SubAssign(FromParts(0, 4)).MulScalarAssign(2).DivScalarAssign(4)
	if !z.Equal(FromParts(2, 2.5)) {
		t.Errorf("chain: got %v, want 2 i2.5", z)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		c    Complex
		want string
	}{
		{FromParts(-2, 19), "-2 i19"},
		{FromParts(2.8, 2.6), "2.8 i2.6"},
		{New(), "0 i0"},
		{FromParts(1.5, -0.25), "1.5 i-0.25"},
		{FromParts(1e21, 1e-7), "1e+21 i1e-07"},
		{FromParts(math.Inf(1), math.NaN()), "+Inf iNaN"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write(p []byte) (int, error) { return 0, errSink }

func TestWriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := FromParts(-2, 19).WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sb.String() != "-2 i19" || n != int64(len("-2 i19")) {
		t.Errorf("WriteTo wrote %q (%d bytes)", sb.String(), n)
	}

	_, err = FromParts(1, 2).WriteTo(failingWriter{})
	if !errors.Is(err, errSink) {
		t.Errorf("WriteTo error = %v, want wrapping %v", err, errSink)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := FromParts(3, 8), FromParts(2, 1)
	var r Complex
	for i := 0; i < b.N; i++ {
		r = x.Mul(y)
	}
	_ = r
}

func BenchmarkDiv(b *testing.B) {
	x, y := FromParts(3, 8), FromParts(2, 1)
	var r Complex
	for i := 0; i < b.N; i++ {
		r = x.Div(y)
	}
	_ = r
}

func BenchmarkMulBuiltin(b *testing.B) {
	x, y := complex(3, 8), complex(2, 1)
	var r complex128
	for i := 0; i < b.N; i++ {
		r = x * y
	}
	_ = r
}
