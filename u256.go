package bigfloat

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// u256 is the intermediate width used while rounding: a 128-bit significand
// plus 128 bits of guard precision. Values are treated as binary fractions
// (0.hi hm lm lo) by round256.
type u256 struct {
	hi, hm, lm, lo uint64
}

// u256From128 places u in the high half.
func u256From128(u u128) u256 {
	return u256{hi: u.hi, hm: u.lo}
}

// u256FromBigInt expects a non-negative v of at most 256 bits.
func u256FromBigInt(v *big.Int) u256 {
	var buf [32]byte
	bts := v.Bytes()
	copy(buf[32-len(bts):], bts)
	return u256{
		hi: binary.BigEndian.Uint64(buf[0:]),
		hm: binary.BigEndian.Uint64(buf[8:]),
		lm: binary.BigEndian.Uint64(buf[16:]),
		lo: binary.BigEndian.Uint64(buf[24:]),
	}
}

func (u u256) isZero() bool { return u.hi|u.hm|u.lm|u.lo == 0 }

func (u u256) top() u128    { return u128{hi: u.hi, lo: u.hm} }
func (u u256) bottom() u128 { return u128{hi: u.lm, lo: u.lo} }

func (u u256) words() [4]uint64 { return [4]uint64{u.hi, u.hm, u.lm, u.lo} }

func u256FromWords(w [4]uint64) u256 {
	return u256{hi: w[0], hm: w[1], lm: w[2], lo: w[3]}
}

func (u u256) add(n u256) (v u256, carry uint64) {
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.lm, carry = bits.Add64(u.lm, n.lm, carry)
	v.hm, carry = bits.Add64(u.hm, n.hm, carry)
	v.hi, carry = bits.Add64(u.hi, n.hi, carry)
	return v, carry
}

func (u u256) sub(n u256) (v u256, borrow uint64) {
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.lm, borrow = bits.Sub64(u.lm, n.lm, borrow)
	v.hm, borrow = bits.Sub64(u.hm, n.hm, borrow)
	v.hi, borrow = bits.Sub64(u.hi, n.hi, borrow)
	return v, borrow
}

func (u u256) leadingZeros() uint {
	var n uint
	for _, w := range u.words() {
		if w != 0 {
			return n + uint(bits.LeadingZeros64(w))
		}
		n += 64
	}
	return n
}

func (u u256) lsh(n uint) u256 {
	if n == 0 {
		return u
	} else if n >= 256 {
		return u256{}
	}
	var (
		in     = u.words()
		out    [4]uint64
		ws, bs = int(n / 64), n % 64
	)
	for i := 0; i+ws < 4; i++ {
		src := i + ws
		out[i] = in[src] << bs
		if bs > 0 && src+1 < 4 {
			out[i] |= in[src+1] >> (64 - bs)
		}
	}
	return u256FromWords(out)
}

func (u u256) rsh(n uint) u256 {
	if n == 0 {
		return u
	} else if n >= 256 {
		return u256{}
	}
	var (
		in     = u.words()
		out    [4]uint64
		ws, bs = int(n / 64), n % 64
	)
	for i := 3; i-ws >= 0; i-- {
		src := i - ws
		out[i] = in[src] >> bs
		if bs > 0 && src-1 >= 0 {
			out[i] |= in[src-1] << (64 - bs)
		}
	}
	return u256FromWords(out)
}

// rshSticky shifts right by n, folding every bit shifted out into the
// lowest bit of the result.
func (u u256) rshSticky(n uint) u256 {
	v := u.rsh(n)
	if n >= 256 {
		if !u.isZero() {
			v.lo |= 1
		}
	} else if v.lsh(n) != u {
		v.lo |= 1
	}
	return v
}
