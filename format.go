package bigfloat

import (
	"fmt"
	"math/big"
	"strconv"
)

// Append appends the shortest decimal text that Parse reads back as exactly
// x, and returns the extended buffer. NaN, the Infinities and the zeros are
// written as "NaN", "+Inf", "-Inf", "0" and "-0".
func (x Float) Append(buf []byte) []byte {
	switch x.form {
	case nan:
		return append(buf, "NaN"...)
	case inf:
		if x.neg {
			return append(buf, "-Inf"...)
		}
		return append(buf, "+Inf"...)
	case zero:
		if x.neg {
			return append(buf, "-0"...)
		}
		return append(buf, '0')
	}

	return appendShortest(buf, x)
}

func (x Float) String() string {
	return string(x.Append(make([]byte, 0, 48)))
}

// Format implements fmt.Formatter. %v and %s write the text from Append,
// honouring width and the '-', '+', ' ' and '0' flags; every other verb is
// passed to big.Float, so its precisions are available too. NaN is printed as
// "NaN" for every verb.
func (x Float) Format(s fmt.State, c rune) {
	b, ok := x.AsBigFloat()
	if ok && c != 'v' && c != 's' {
		b.Format(s, c)
		return
	}

	text := x.Append(make([]byte, 0, 48))
	var sign []byte
	if text[0] == '-' || text[0] == '+' {
		sign, text = text[:1], text[1:]
	} else if ok && s.Flag('+') {
		sign = []byte{'+'}
	} else if ok && s.Flag(' ') {
		sign = []byte{' '}
	}

	pad := 0
	if w, wok := s.Width(); wok {
		pad = w - len(sign) - len(text)
	}
	switch {
	case pad <= 0:
		_, _ = s.Write(sign)
		_, _ = s.Write(text)
	case s.Flag('-'):
		_, _ = s.Write(sign)
		_, _ = s.Write(text)
		writeRepeat(s, ' ', pad)
	case s.Flag('0') && x.IsFinite():
		_, _ = s.Write(sign)
		writeRepeat(s, '0', pad)
		_, _ = s.Write(text)
	default:
		writeRepeat(s, ' ', pad)
		_, _ = s.Write(sign)
		_, _ = s.Write(text)
	}
}

func writeRepeat(s fmt.State, c byte, n int) {
	for i := 0; i < n; i++ {
		_, _ = s.Write([]byte{c})
	}
}

// appendShortest appends the fewest significant digits that round back to
// the finite, non-zero x at Prec bits. When several candidates have that many
// digits, the one nearest x is used. Layout matches %g in shortest mode:
// exponent form below 1e-4 and from 1e+06 up.
func appendShortest(buf []byte, x Float) []byte {
	// Everything is counted in quarter units of the last place: x is mid and
	// its neighbours are 4 units away, except that the one below a power of
	// two is only 2 away. Values between x and either halfway point round
	// back to x; the halfway points themselves do when the significand is
	// even.
	mid := new(big.Int).Lsh(x.mant.asBigInt(), 2)
	hi := new(big.Int).Add(mid, big.NewInt(2))
	lo := new(big.Int).Sub(mid, big.NewInt(2))
	if x.mant == (u128{hi: msb64}) {
		lo.Add(lo, bigOne)
	}
	inclusive := x.mant.lo&1 == 0
	exp2 := int64(x.exp) - Prec - 2

	// Pick 10**s so that mid/10**s has about 45 digits, several more than
	// it takes to tell neighbours apart, then take exact integer quotients.
	s := mulLog10_2(int64(x.exp)) - 45
	num, den := big.NewInt(1), big.NewInt(1)
	if s < 0 {
		num = pow5(-s)
	} else {
		den = pow5(s)
	}
	if sh := exp2 - s; sh >= 0 {
		num.Lsh(num, uint(sh))
	} else {
		den.Lsh(den, uint(-sh))
	}
	scale := func(v *big.Int) (q *big.Int, exact bool) {
		q, r := v.Mul(v, num).QuoRem(v, den, new(big.Int))
		return q, r.Sign() == 0
	}
	dlo, loExact := scale(lo)
	dmid, _ := scale(mid)
	dhi, hiExact := scale(hi)

	// Find the largest power of ten with a multiple inside the interval.
	n := len(dmid.String())
	unit := pow10(int64(n))
	var digits *big.Int
	var exp10 int64
	for j := n; ; j-- {
		loFloor, loCeil := quoFloorCeil(dlo, loExact, unit)
		hiFloor, hiCeil := quoFloorCeil(dhi, hiExact, unit)
		first, last := loCeil, hiFloor
		if !inclusive {
			first, last = loFloor.Add(loFloor, bigOne), hiCeil.Sub(hiCeil, bigOne)
		}
		if first.Cmp(last) <= 0 || j == 0 {
			q, r := new(big.Int).QuoRem(dmid, unit, new(big.Int))
			if r.Lsh(r, 1).Cmp(unit) >= 0 {
				q.Add(q, bigOne)
			}
			if q.Cmp(first) < 0 {
				q = first
			} else if q.Cmp(last) > 0 {
				q = last
			}
			digits, exp10 = q, s+int64(j)
			break
		}
		unit.Quo(unit, big10)
	}

	ds := digits.Append(make([]byte, 0, 48), 10)
	for len(ds) > 1 && ds[len(ds)-1] == '0' {
		ds = ds[:len(ds)-1]
		exp10++
	}

	if x.neg {
		buf = append(buf, '-')
	}
	sciExp := int64(len(ds)) - 1 + exp10
	if sciExp < -4 || sciExp >= 6 {
		buf = append(buf, ds[0])
		if len(ds) > 1 {
			buf = append(buf, '.')
			buf = append(buf, ds[1:]...)
		}
		buf = append(buf, 'e')
		if sciExp < 0 {
			buf = append(buf, '-')
			sciExp = -sciExp
		} else {
			buf = append(buf, '+')
		}
		if sciExp < 10 {
			buf = append(buf, '0')
		}
		return strconv.AppendInt(buf, sciExp, 10)
	}

	if exp10 >= 0 {
		buf = append(buf, ds...)
		for ; exp10 > 0; exp10-- {
			buf = append(buf, '0')
		}
		return buf
	}
	point := int64(len(ds)) + exp10
	if point > 0 {
		buf = append(buf, ds[:point]...)
		buf = append(buf, '.')
		return append(buf, ds[point:]...)
	}
	buf = append(buf, '0', '.')
	for ; point < 0; point++ {
		buf = append(buf, '0')
	}
	return append(buf, ds...)
}

// quoFloorCeil returns floor(v/u) and ceil(v/u) for a non-negative v that is
// f plus some fraction below one, zero if exact.
func quoFloorCeil(f *big.Int, exact bool, u *big.Int) (floor, ceil *big.Int) {
	floor, r := new(big.Int).QuoRem(f, u, new(big.Int))
	ceil = new(big.Int).Set(floor)
	if !exact || r.Sign() != 0 {
		ceil.Add(ceil, bigOne)
	}
	return floor, ceil
}

// mulLog10_2 returns floor(x * log10(2)), within one either way over the
// exponent range of a Float.
func mulLog10_2(x int64) int64 {
	// log10(2) ~= 78913 / 2**18
	return (x * 78913) >> 18
}

func pow5(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(5), big.NewInt(n), nil)
}

func (x Float) MarshalText() ([]byte, error) {
	return x.Append(nil), nil
}

// UnmarshalText accepts everything Parse does, plus the tokens written by
// Append for NaN and the Infinities. x is left untouched on error.
func (x *Float) UnmarshalText(bts []byte) (err error) {
	v, err := parseText(string(bts))
	if err != nil {
		return err
	}
	*x = v
	return nil
}

func (x Float) MarshalJSON() ([]byte, error) {
	buf := append(make([]byte, 0, 50), '"')
	buf = x.Append(buf)
	return append(buf, '"'), nil
}

func (x *Float) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("bigfloat: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return x.UnmarshalText(bts)
}

func parseText(s string) (Float, error) {
	switch s {
	case "NaN":
		return nanFloat, nil
	case "+Inf", "Inf":
		return signedInf(false), nil
	case "-Inf":
		return signedInf(true), nil
	}
	return Parse(s)
}
