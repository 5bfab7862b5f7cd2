package bigfloat

import "math/big"

// Integer is the view of an arbitrary precision integer that Float needs.
// *big.Int satisfies it.
type Integer interface {
	// Sign returns -1, 0 or +1.
	Sign() int

	// Bytes returns the absolute value as a big-endian byte slice.
	Bytes() []byte
}

// FromInt returns v rounded to Prec bits, ties to even. Integers that fit in
// 128 bits are exact. Integer zero is +0.
func FromInt(v Integer) Float {
	mag := new(big.Int).SetBytes(v.Bytes())
	return fromScaled(v.Sign() < 0, mag, 0)
}

// FromBigInt is FromInt for a *big.Int, avoiding the byte round trip.
func FromBigInt(v *big.Int) Float {
	if v.Sign() >= 0 {
		return fromScaled(false, v, 0)
	}
	return fromScaled(true, new(big.Int).Abs(v), 0)
}

// intExp returns the significand of a finite, non-zero x as an integer with
// its trailing zeros stripped, along with the matching power of two:
// |x| == m * 2**e.
func (x Float) intExp() (m *big.Int, e int64) {
	tz := x.mant.trailingZeros()
	return x.mant.rsh(tz).asBigInt(), int64(x.exp) - Prec + int64(tz)
}

// AsBigInt returns x truncated toward zero. inRange is false, and the
// result 0, if x is NaN or infinite.
func (x Float) AsBigInt() (b *big.Int, inRange bool) {
	b = new(big.Int)
	switch x.form {
	case zero:
		return b, true
	case inf, nan:
		return b, false
	}

	m, e := x.intExp()
	if e >= 0 {
		b.Lsh(m, uint(e))
	} else {
		b.Rsh(m, uint(-e))
	}
	if x.neg {
		b.Neg(b)
	}
	return b, true
}

// AsBigFloat returns x as a *big.Float with precision Prec, which holds any
// Float exactly. big.Float has no NaN, so ok is false for NaN.
func (x Float) AsBigFloat() (b *big.Float, ok bool) {
	b = new(big.Float).SetPrec(Prec).SetMode(big.ToNearestEven)
	switch x.form {
	case nan:
		return nil, false
	case inf:
		return b.SetInf(x.neg), true
	case zero:
		if x.neg {
			b.Neg(b)
		}
		return b, true
	}

	b.SetInt(x.mant.asBigInt())
	b.SetMantExp(b, int(x.exp)-Prec)
	if x.neg {
		b.Neg(b)
	}
	return b, true
}

// FromBigFloat returns v rounded to Prec bits, ties to even.
func FromBigFloat(v *big.Float) Float {
	if v.IsInf() {
		return signedInf(v.Signbit())
	}
	prec := v.MinPrec()
	if prec == 0 {
		return signedZero(v.Signbit())
	}

	var mant big.Float
	exp := v.MantExp(&mant) // |v| = mant * 2**exp, 0.5 <= |mant| < 1
	mant.SetMantExp(&mant, int(prec))

	m, _ := mant.Int(nil) // exact: mant now has no fractional bits
	return fromScaled(v.Signbit(), m.Abs(m), int64(exp)-int64(prec))
}
