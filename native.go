package bigfloat

import "math"

// Float128 holds the bit pattern of an IEEE-754 binary128 value. Go has no
// native quadruple precision type, so values cross the API boundary as
// bits.
type Float128 struct {
	hi, lo uint64
}

// Float128FromBits is the complement to Float128.Bits().
func Float128FromBits(hi, lo uint64) Float128 { return Float128{hi: hi, lo: lo} }

// Bits returns the raw IEEE-754 binary128 encoding.
func (f Float128) Bits() (hi, lo uint64) { return f.hi, f.lo }

func (f Float128) IsNaN() bool {
	return f.hi&0x7FFF000000000000 == 0x7FFF000000000000 &&
		(f.hi&0x0000FFFFFFFFFFFF != 0 || f.lo != 0)
}

// ieeeFormat describes an IEEE-754 binary interchange format.
type ieeeFormat struct {
	fracBits uint // explicit fraction bits, excluding the hidden bit
	expBits  uint
	bias     int64
}

var (
	binary32  = ieeeFormat{fracBits: 23, expBits: 8, bias: 127}
	binary64  = ieeeFormat{fracBits: 52, expBits: 11, bias: 1023}
	binary128 = ieeeFormat{fracBits: 112, expBits: 15, bias: 16383}
)

func (f ieeeFormat) expMax() uint64 { return 1<<f.expBits - 1 }

// decode loads an encoded value exactly.
func (f ieeeFormat) decode(b u128) Float {
	neg := b.rsh(f.fracBits+f.expBits).lo&1 != 0
	e := b.rsh(f.fracBits).lo & f.expMax()
	m := b.and(u128Mask(f.fracBits))

	switch e {
	case f.expMax():
		if !m.isZero() {
			return nanFloat
		}
		return signedInf(neg)

	case 0: // zero or subnormal
		return fromUint(neg, m, 1-f.bias-int64(f.fracBits))

	default:
		m = m.or(u128{lo: 1}.lsh(f.fracBits))
		return fromUint(neg, m, int64(e)-f.bias-int64(f.fracBits))
	}
}

// encode narrows x to the format, rounding to nearest with ties to even.
// Values too large become Infinity; values too small become subnormals or
// zero, as the hardware would produce.
func (f ieeeFormat) encode(x Float) u128 {
	var (
		expAll = u128From64(f.expMax()).lsh(f.fracBits)
		sign   u128
	)
	if x.neg {
		sign = u128{lo: 1}.lsh(f.fracBits + f.expBits)
	}

	switch x.form {
	case zero:
		return sign
	case inf:
		return sign.or(expAll)
	case nan:
		return expAll.or(u128{lo: 1}.lsh(f.fracBits - 1)) // quiet NaN
	}

	var (
		prec = int64(f.fracBits) + 1
		emax = f.bias + 1 // largest finite value is below 2**emax
		emin = 2 - f.bias // smallest normal value is 2**(emin-1)
		e    = int64(x.exp)
	)
	if e > emax {
		return sign.or(expAll)
	}

	avail := prec
	if e < emin {
		avail -= emin - e // subnormal: fewer bits are left below the hidden bit
	}
	if avail < 0 {
		return sign
	}

	shift := uint(Prec - avail)
	kept := x.mant.rsh(shift)
	roundBit := x.mant.rsh(shift-1).lo&1 != 0
	sticky := !x.mant.and(u128Mask(shift - 1)).isZero()
	if roundBit && (sticky || kept.lo&1 != 0) {
		kept = kept.inc()
	}

	if e < emin {
		// A subnormal that rounds up into the hidden bit lands exactly on the
		// smallest normal encoding, so the bits can be used as is.
		return sign.or(kept)
	}

	if kept.rsh(uint(prec)).lo != 0 {
		kept = kept.rsh(1)
		e++
		if e > emax {
			return sign.or(expAll)
		}
	}
	biased := u128From64(uint64(e - 1 + f.bias)).lsh(f.fracBits)
	return sign.or(biased).or(kept.and(u128Mask(f.fracBits)))
}

// FromFloat32 returns the exact value of v, preserving signed zero, the
// Infinities and NaN.
func FromFloat32(v float32) Float {
	return binary32.decode(u128From64(uint64(math.Float32bits(v))))
}

// FromFloat64 returns the exact value of v, preserving signed zero, the
// Infinities and NaN.
func FromFloat64(v float64) Float {
	return binary64.decode(u128From64(math.Float64bits(v)))
}

// FromFloat128 returns the exact value of v, preserving signed zero, the
// Infinities and NaN.
func FromFloat128(v Float128) Float {
	return binary128.decode(u128{hi: v.hi, lo: v.lo})
}

// Float32 returns the float32 nearest to x, ties to even. x is rounded
// once, directly to 24 bits, never via float64.
func (x Float) Float32() float32 {
	return math.Float32frombits(uint32(binary32.encode(x).lo))
}

// Float64 returns the float64 nearest to x, ties to even.
func (x Float) Float64() float64 {
	return math.Float64frombits(binary64.encode(x).lo)
}

// Float128 returns the binary128 value nearest to x, ties to even.
func (x Float) Float128() Float128 {
	b := binary128.encode(x)
	return Float128{hi: b.hi, lo: b.lo}
}
