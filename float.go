package bigfloat

// form describes which kind of value a Float holds. The zero form is zero so
// that the zero value of Float is +0.
type form byte

const (
	zero form = iota
	finite
	inf
	nan
)

// Float is an extended precision binary floating point number with a
// 128-bit significand. A Float is +-0, +-Inf, NaN, or a finite value
// x = (-1)**neg * 0.mant * 2**exp with the top bit of mant set.
//
// Float is a value type; all operations return new values, so
// x = x.Add(y) is always safe. The zero value is +0.
type Float struct {
	mant u128
	exp  int32
	form form
	neg  bool
}

// NaN returns a Float that is not a number.
func NaN() Float { return nanFloat }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float { return Float{form: inf, neg: sign < 0} }

func signedZero(neg bool) Float { return Float{neg: neg} }
func signedInf(neg bool) Float  { return Float{form: inf, neg: neg} }

// fromUint returns the exact value m * 2**exp2. m must not exceed 128 bits.
func fromUint(neg bool, m u128, exp2 int64) Float {
	if m.isZero() {
		return signedZero(neg)
	}
	lz := m.leadingZeros()
	return makeFinite(neg, exp2+Prec-int64(lz), m.lsh(lz))
}

// FromInt64 returns the exact value of v.
func FromInt64(v int64) Float {
	if v < 0 {
		return fromUint(true, u128From64(uint64(-v)), 0)
	}
	return fromUint(false, u128From64(uint64(v)), 0)
}

// FromUint64 returns the exact value of v.
func FromUint64(v uint64) Float {
	return fromUint(false, u128From64(v), 0)
}

func (x Float) IsNaN() bool  { return x.form == nan }
func (x Float) IsInf() bool  { return x.form == inf }
func (x Float) IsZero() bool { return x.form == zero }

// IsFinite reports whether x is neither infinite nor NaN.
func (x Float) IsFinite() bool { return x.form == zero || x.form == finite }

// Signbit reports whether x is negative or negative zero. The sign bit of a
// NaN carries no meaning.
func (x Float) Signbit() bool { return x.neg }

// Sign returns -1 if x < 0, 0 if x is +-0 or NaN, and +1 if x > 0.
func (x Float) Sign() int {
	if x.form == zero || x.form == nan {
		return 0
	} else if x.neg {
		return -1
	}
	return 1
}

// Neg returns x with its sign flipped, including for zero.
func (x Float) Neg() Float {
	x.neg = !x.neg
	return x
}

func (x Float) Abs() Float {
	x.neg = false
	return x
}
