package bigfloat

import (
	"fmt"
	"math"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFloat64RoundTrip(t *testing.T) {
	for idx, v := range []float64{
		0, negZero, 1, -1, 0.1, -0.0125, 1e300, -1e-300,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		0x1p-1022, 0x1.fffffffffffffp-1023, 0x1p-1074 * 3,
		0x1p62, math.Pi, posInf, negInf,
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got := FromFloat64(v).Float64()
			tt.MustEqual(math.Float64bits(v), math.Float64bits(got))
		})
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for idx, v := range []float32{
		0, float32(negZero), 1, -1, 0.1, -0.0125,
		math.MaxFloat32, -math.MaxFloat32,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
		0x1p-126, float32(posInf), float32(negInf),
	} {
		t.Run(fmt.Sprintf("%d/%g", idx, v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got := FromFloat32(v).Float32()
			tt.MustEqual(math.Float32bits(v), math.Float32bits(got))
			tt.MustAssert(same(FromFloat64(float64(v)), FromFloat32(v)))
		})
	}
}

func TestNaNConversions(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(FromFloat64(math.NaN()).IsNaN())
	tt.MustAssert(FromFloat32(float32(math.NaN())).IsNaN())
	tt.MustAssert(FromFloat128(Float128FromBits(0x7FFF800000000000, 0)).IsNaN())
	tt.MustAssert(FromFloat128(Float128FromBits(0x7FFF000000000000, 1)).IsNaN())

	tt.MustAssert(math.IsNaN(NaN().Float64()))
	tt.MustAssert(math.IsNaN(float64(NaN().Float32())))
	tt.MustAssert(NaN().Float128().IsNaN())
	tt.MustAssert(!Inf(1).Float128().IsNaN())
}

func TestFloat128Bits(t *testing.T) {
	for idx, tc := range []struct {
		v      Float
		hi, lo uint64
	}{
		{f64(0), 0, 0},
		{f64(negZero), 0x8000000000000000, 0},
		{f64(1), 0x3FFF000000000000, 0},
		{f64(-2), 0xC000000000000000, 0},
		{f64(0.5), 0x3FFE000000000000, 0},
		{f64(1.5), 0x3FFF800000000000, 0},
		{f64(posInf), 0x7FFF000000000000, 0},
		{f64(negInf), 0xFFFF000000000000, 0},

		// 1 + 2**-112, the last bit of the binary128 fraction:
		{f64(1).Add(pow2(-112)), 0x3FFF000000000000, 1},

		// Smallest normal and largest finite:
		{pow2(-16382), 0x0001000000000000, 0},
		{pow2(16384).Sub(pow2(16384 - 113)), 0x7FFEFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},

		// Smallest and largest subnormals:
		{pow2(-16494), 0, 1},
		{pow2(-16382).Sub(pow2(-16494)), 0x0000FFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			hi, lo := tc.v.Float128().Bits()
			tt.MustEqual(tc.hi, hi, "%#016x != %#016x", tc.hi, hi)
			tt.MustEqual(tc.lo, lo, "%#016x != %#016x", tc.lo, lo)
			tt.MustAssert(same(tc.v, FromFloat128(Float128FromBits(tc.hi, tc.lo))))
		})
	}
}

func TestFloat128Rounding(t *testing.T) {
	for idx, tc := range []struct {
		v      Float
		hi, lo uint64
	}{
		// The 114th bit is a tie that goes to even:
		{f64(1).Add(pow2(-113)), 0x3FFF000000000000, 0},
		{f64(1).Add(pow2(-112)).Add(pow2(-113)), 0x3FFF000000000000, 2},

		// Past the tie:
		{f64(1).Add(pow2(-113)).Add(pow2(-120)), 0x3FFF000000000000, 1},

		// Rounding all the way up into the next binade:
		{pow2(1).Sub(pow2(-114)), 0x4000000000000000, 0},

		// Overflow:
		{pow2(16384), 0x7FFF000000000000, 0},
		{pow2(16384).Sub(pow2(16384 - 114)).Neg(), 0xFFFF000000000000, 0},

		// Underflow, with half the smallest subnormal tying to zero:
		{pow2(-16495), 0, 0},
		{pow2(-16495).Add(pow2(-16560)), 0, 1},
		{pow2(-16495).Mul(i64(3)), 0, 2},
		{pow2(-17000).Neg(), 0x8000000000000000, 0},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			hi, lo := tc.v.Float128().Bits()
			tt.MustEqual(tc.hi, hi, "%#016x != %#016x", tc.hi, hi)
			tt.MustEqual(tc.lo, lo, "%#016x != %#016x", tc.lo, lo)
		})
	}
}

func TestFloat64Narrowing(t *testing.T) {
	for idx, tc := range []struct {
		v   Float
		out float64
	}{
		{MustParse("1e309"), posInf},
		{MustParse("-1e309"), negInf},
		{MustParse("1e-400"), 0},
		{MustParse("-1e-400"), negZero},
		{MustParse("5e-324"), math.SmallestNonzeroFloat64},

		// Either side of half the smallest subnormal, and exactly on it:
		{MustParse("2.4703282292062328e-324"), math.SmallestNonzeroFloat64},
		{MustParse("2.4703282292062327e-324"), 0},
		{pow2(-1075), 0},
		{pow2(-1075).Mul(i64(3)), 2 * math.SmallestNonzeroFloat64},

		// Either side of MaxFloat64's rounding boundary:
		{f64(math.MaxFloat64).Add(pow2(969)), math.MaxFloat64},
		{f64(math.MaxFloat64).Add(pow2(970)), posInf},

		{MustParse("0.1"), 0.1},
		{MustParse("-12.5e-3"), -0.0125},
		{MustParse("3.141592653589793238462643383279502884197"), math.Pi},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got := tc.v.Float64()
			tt.MustEqual(math.Float64bits(tc.out), math.Float64bits(got), "%g != %g", tc.out, got)
		})
	}
}

func TestFloat32Narrowing(t *testing.T) {
	for idx, tc := range []struct {
		v   Float
		out float32
	}{
		{MustParse("1e39"), float32(posInf)},
		{MustParse("-1e39"), float32(negInf)},
		{MustParse("1e-46"), 0},
		{MustParse("-1e-50"), float32(negZero)},
		{MustParse("0.1"), 0.1},
		{pow2(-150), 0},
		{pow2(-150).Add(pow2(-200)), math.SmallestNonzeroFloat32},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			got := tc.v.Float32()
			tt.MustEqual(math.Float32bits(tc.out), math.Float32bits(got), "%g != %g", tc.out, got)
		})
	}
}

func TestFloat32NoDoubleRounding(t *testing.T) {
	tt := assert.WrapTB(t)

	// Going through float64 first loses the 2**-80 and turns this into a
	// tie, which rounds down to 1.
	v := i64(1).Add(pow2(-24)).Add(pow2(-80))
	tt.MustEqual(float32(1), float32(v.Float64()))
	tt.MustEqual(float32(0x1.000002p0), v.Float32())
}
