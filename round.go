package bigfloat

import "math/big"

// makeFinite packs a normalised significand, overflowing to Infinity and
// underflowing to zero outside the exponent range.
func makeFinite(neg bool, exp int64, mant u128) Float {
	if exp > MaxExp {
		return signedInf(neg)
	} else if exp < MinExp {
		return signedZero(neg)
	}
	return Float{form: finite, neg: neg, exp: int32(exp), mant: mant}
}

// round256 rounds the fraction 0.f * 2**exp to Prec bits, ties to even. Any
// inexactness below f must already be folded into its lowest bit.
func round256(neg bool, exp int64, f u256) Float {
	if f.isZero() {
		return signedZero(neg)
	}

	lz := f.leadingZeros()
	f = f.lsh(lz)
	exp -= int64(lz)

	mant, rest := f.top(), f.bottom()
	if rest.hi > msb64 || (rest.hi == msb64 && (rest.lo != 0 || mant.lo&1 == 1)) {
		mant = mant.inc()
		if mant.isZero() { // carried out of the top bit
			mant = u128{hi: msb64}
			exp++
		}
	}
	return makeFinite(neg, exp, mant)
}

// fromScaled returns mag * 2**exp2 rounded to Prec bits. mag must be
// non-negative and is not modified.
func fromScaled(neg bool, mag *big.Int, exp2 int64) Float {
	n := mag.BitLen()
	if n == 0 {
		return signedZero(neg)
	}

	var f u256
	if n <= 256 {
		f = u256FromBigInt(new(big.Int).Lsh(mag, uint(256-n)))
	} else {
		shift := uint(n - 256)
		f = u256FromBigInt(new(big.Int).Rsh(mag, shift))
		if mag.TrailingZeroBits() < shift {
			f.lo |= 1
		}
	}
	return round256(neg, exp2+int64(n), f)
}
