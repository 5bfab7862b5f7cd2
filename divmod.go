package bigfloat

import "math/big"

var bigOne = big.NewInt(1)

// truncQuoRem divides the magnitudes of two finite, non-zero values exactly.
// Both are scaled to integers at the common exponent e; q is the quotient
// truncated toward zero and rm the remainder, so |x| = q*my + rm at 2**e.
func truncQuoRem(x, y Float) (q, rm, my *big.Int, e int64) {
	mx, ex := x.intExp()
	my, ey := y.intExp()
	e = ex
	if ey < e {
		e = ey
	}
	mx.Lsh(mx, uint(ex-e))
	my.Lsh(my, uint(ey-e))

	q, rm = new(big.Int).QuoRem(mx, my, new(big.Int))
	return q, rm, my, e
}

// bothFiniteNonZero reports whether neither operand is zero, infinite or NaN.
func bothFiniteNonZero(x, y Float) bool {
	return x.form == finite && y.form == finite
}

// QuoTrunc returns the exact quotient x/y truncated toward zero, as a Float.
// The result is rounded only if the integer needs more than Prec bits.
//
// Zero, infinite and NaN operands follow Quo; the result of Quo for those is
// already integral.
func (x Float) QuoTrunc(y Float) Float {
	if !bothFiniteNonZero(x, y) {
		return x.Quo(y)
	}
	q, _, _, _ := truncQuoRem(x, y)
	return fromScaled(x.neg != y.neg, q, 0)
}

// QuoFloor returns the largest integer not greater than the exact quotient
// x/y, as a Float.
//
// Zero, infinite and NaN operands follow Quo, except that a finite non-zero
// x divided by an Infinity of the opposite sign is -1, matching Mod(x, y)
// returning y in that case.
func (x Float) QuoFloor(y Float) Float {
	neg := x.neg != y.neg
	if !bothFiniteNonZero(x, y) {
		if x.form == finite && y.form == inf && neg {
			return oneFloat.Neg()
		}
		return x.Quo(y)
	}

	q, rm, _, _ := truncQuoRem(x, y)
	if neg && rm.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return fromScaled(neg, q, 0)
}

// Rem returns x - QuoTrunc(x, y)*y. The remainder always fits in Prec bits,
// so it is exact unless it is smaller in magnitude than 2**(MinExp-1), in
// which case it flushes to a zero like any other underflow. A non-zero result
// has the sign of x; a zero result is a zero with the sign of x.
//
// Rem is NaN if either operand is NaN, x is infinite or y is zero. Rem(x, Inf)
// is x.
func (x Float) Rem(y Float) Float {
	switch {
	case x.form == nan || y.form == nan || x.form == inf || y.form == zero:
		return nanFloat
	case y.form == inf || x.form == zero:
		return x
	}

	_, rm, _, e := truncQuoRem(x, y)
	return fromScaled(x.neg, rm, e)
}

// Mod returns x - QuoFloor(x, y)*y, rounded once when x and y have opposite
// signs. It flushes to zero below 2**(MinExp-1) as Rem does. A non-zero result
// has the sign of y; a zero result is a zero with the sign of y.
//
// Mod is NaN if either operand is NaN, x is infinite or y is zero.
// Mod(x, Inf) is x if x is zero or has the sign of y, otherwise it is y.
func (x Float) Mod(y Float) Float {
	switch {
	case x.form == nan || y.form == nan || x.form == inf || y.form == zero:
		return nanFloat
	case x.form == zero:
		return signedZero(y.neg)
	case y.form == inf:
		if x.neg == y.neg {
			return x
		}
		return y
	}

	_, rm, my, e := truncQuoRem(x, y)
	if rm.Sign() == 0 {
		return signedZero(y.neg)
	}
	if x.neg != y.neg {
		// |y| - rm is exact here and rounded once by fromScaled.
		rm.Sub(my, rm)
	}
	return fromScaled(y.neg, rm, e)
}
