package bigfloat

import "math/bits"

// mul128to256 returns the full product of two significands.
func mul128to256(u, v u128) (out u256) {
	var thi, tlo, c uint64

	out.hi, out.hm = bits.Mul64(u.hi, v.hi)
	out.lm, out.lo = bits.Mul64(u.lo, v.lo)

	thi, tlo = bits.Mul64(u.hi, v.lo)
	out.lm, c = bits.Add64(out.lm, tlo, 0)
	out.hm, c = bits.Add64(out.hm, thi, c)
	out.hi += c

	thi, tlo = bits.Mul64(u.lo, v.hi)
	out.lm, c = bits.Add64(out.lm, tlo, 0)
	out.hm, c = bits.Add64(out.hm, thi, c)
	out.hi += c

	return out
}
