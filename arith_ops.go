package bigfloat

// Add returns x + y rounded to Prec bits, ties to even.
//
// Inf + -Inf is NaN. An exact zero sum is +0 unless both operands are -0.
func (x Float) Add(y Float) Float {
	switch {
	case x.form == nan || y.form == nan:
		return nanFloat

	case x.form == inf:
		if y.form == inf && x.neg != y.neg {
			return nanFloat
		}
		return x

	case y.form == inf:
		return y

	case x.form == zero && y.form == zero:
		return signedZero(x.neg && y.neg)

	case x.form == zero:
		return y

	case y.form == zero:
		return x
	}

	return addFinite(x, y)
}

// Sub returns x - y, which is always x.Add(y.Neg()).
func (x Float) Sub(y Float) Float {
	return x.Add(y.Neg())
}

func addFinite(x, y Float) Float {
	// Make |x| >= |y| so the subtraction below can't go negative.
	if x.exp < y.exp || (x.exp == y.exp && x.mant.cmp(y.mant) < 0) {
		x, y = y, x
	}

	// One spare bit at the top of both operands absorbs the carry of an
	// addition; y's bits that fall off the bottom are kept as a sticky bit.
	d := uint(int64(x.exp) - int64(y.exp))
	fx := u256From128(x.mant).rsh(1)
	fy := u256From128(y.mant).rshSticky(d + 1)
	exp := int64(x.exp) + 1

	if x.neg == y.neg {
		f, _ := fx.add(fy)
		return round256(x.neg, exp, f)
	}

	f, _ := fx.sub(fy)
	if f.isZero() {
		return Float{}
	}
	return round256(x.neg, exp, f)
}

// Mul returns x * y rounded to Prec bits, ties to even. 0 * Inf is NaN.
func (x Float) Mul(y Float) Float {
	neg := x.neg != y.neg

	switch {
	case x.form == nan || y.form == nan:
		return nanFloat

	case x.form == inf:
		if y.form == zero {
			return nanFloat
		}
		return signedInf(neg)

	case y.form == inf:
		if x.form == zero {
			return nanFloat
		}
		return signedInf(neg)

	case x.form == zero || y.form == zero:
		return signedZero(neg)
	}

	return round256(neg, int64(x.exp)+int64(y.exp), mul128to256(x.mant, y.mant))
}

// Quo returns x / y rounded to Prec bits, ties to even.
//
// A non-zero x divided by zero is an Infinity carrying the sign of the
// quotient; 0/0 and Inf/Inf are NaN.
func (x Float) Quo(y Float) Float {
	neg := x.neg != y.neg

	switch {
	case x.form == nan || y.form == nan:
		return nanFloat

	case x.form == inf:
		if y.form == inf {
			return nanFloat
		}
		return signedInf(neg)

	case y.form == inf:
		return signedZero(neg)

	case y.form == zero:
		if x.form == zero {
			return nanFloat
		}
		return signedInf(neg)

	case x.form == zero:
		return signedZero(neg)
	}

	// mant(x)/mant(y) = 2 * 0.q, hence the +1.
	q := quoFrac(x.mant, y.mant)
	return round256(neg, int64(x.exp)-int64(y.exp)+1, q)
}
