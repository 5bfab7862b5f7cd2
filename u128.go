package bigfloat

import (
	"math/big"
	"math/bits"
)

// u128 holds a Float's significand.
type u128 struct {
	hi, lo uint64
}

func u128From64(v uint64) u128 { return u128{lo: v} }

// u128Mask returns a value with the low n bits set.
func u128Mask(n uint) u128 {
	return u128{lo: 1}.lsh(n).dec()
}

func (u u128) isZero() bool { return u.hi|u.lo == 0 }

func (u u128) inc() (v u128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u u128) dec() (v u128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

// sub wraps on underflow, which quoFrac relies on.
func (u u128) sub(n u128) (v u128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u u128) cmp(n u128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u u128) and(v u128) (out u128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u u128) or(v u128) (out u128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

// lsh and rsh return zero for n >= 128.
func (u u128) lsh(n uint) (v u128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
		v.lo = 0
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else if n == 64 {
		v.hi = u.lo
		v.lo = 0
	}
	return v
}

func (u u128) rsh(n uint) (v u128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
		v.hi = 0
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else if n == 64 {
		v.lo = u.hi
		v.hi = 0
	}
	return v
}

func (u u128) leadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u u128) trailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

func (u u128) intoBigInt(b *big.Int) *big.Int {
	if u.hi == 0 {
		return b.SetUint64(u.lo)
	}
	var lo big.Int
	lo.SetUint64(u.lo)
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	return b.Or(b, &lo)
}

func (u u128) asBigInt() *big.Int {
	return u.intoBigInt(new(big.Int))
}
