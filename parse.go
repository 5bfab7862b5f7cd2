package bigfloat

import (
	"fmt"
	"math/big"
)

// ParseError is returned by Parse when the text is not a decimal literal.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bigfloat: invalid decimal literal %q", e.Text)
}

var big10 = big.NewInt(10)

// Parse reads a decimal literal of the form
//
//	[sign] digits ['.' digits] [('e'|'E') [sign] digits]
//
// and returns the Float nearest to its exact value, ties to even. Literals
// beyond the exponent range give a signed Infinity or zero. "-0" is -0.
//
// Hexadecimal, "Inf", "NaN", underscores and surrounding spaces are all
// rejected with a *ParseError.
func Parse(s string) (Float, error) {
	var (
		neg   bool
		i     int
		intg  string
		frac  string
		exp10 int64
	)

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return Float{}, &ParseError{Text: s}
	}
	intg = s[start:i]

	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return Float{}, &ParseError{Text: s}
		}
		frac = s[start:i]
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		eneg := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			eneg = s[i] == '-'
			i++
		}
		start = i
		for i < len(s) && isDigit(s[i]) {
			if exp10 < maxExpDigits {
				exp10 = exp10*10 + int64(s[i]-'0')
			}
			i++
		}
		if i == start {
			return Float{}, &ParseError{Text: s}
		}
		if eneg {
			exp10 = -exp10
		}
	}

	if i != len(s) {
		return Float{}, &ParseError{Text: s}
	}

	return decimalToFloat(neg, intg+frac, exp10-int64(len(frac))), nil
}

// MustParse is like Parse but panics if s is not a valid literal. It is
// meant for constants and tests.
func MustParse(s string) Float {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return f
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// decimalToFloat rounds digits * 10**exp10 to Prec bits. digits contains only
// ASCII decimal digits.
func decimalToFloat(neg bool, digits string, exp10 int64) Float {
	lead := 0
	for lead < len(digits) && digits[lead] == '0' {
		lead++
	}
	digits = digits[lead:]
	if digits == "" {
		return signedZero(neg)
	}

	trail := len(digits)
	for digits[trail-1] == '0' {
		trail--
	}
	exp10 += int64(len(digits) - trail)
	digits = digits[:trail]

	// The value lies in [10**(mag-1), 10**mag).
	mag := int64(len(digits)) + exp10
	if mag-1 > decExpLimit {
		return signedInf(neg)
	} else if mag < -decExpLimit {
		return signedZero(neg)
	}

	d, _ := new(big.Int).SetString(digits, 10)
	if exp10 >= 0 {
		d.Mul(d, pow10(exp10))
		return fromScaled(neg, d, 0)
	}

	// Scale the numerator up so the integer quotient carries well over Prec
	// bits; the remainder only matters as a sticky bit.
	den := pow10(-exp10)
	k := 258 + den.BitLen() - d.BitLen()
	if k < 0 {
		k = 0
	}
	d.Lsh(d, uint(k))

	q, r := d.QuoRem(d, den, new(big.Int))
	if r.Sign() != 0 {
		q.SetBit(q, 0, 1)
	}
	return fromScaled(neg, q, -int64(k))
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big10, big.NewInt(n), nil)
}
