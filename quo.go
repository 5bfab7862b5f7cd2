package bigfloat

// quoFrac divides two normalised significands, returning
// floor(u * 2**255 / by) with the remainder folded into the lowest bit as a
// sticky flag. u/by is in (0.5, 2), so the quotient always fits.
//
// This is a plain restoring shift-subtract division run for 256 quotient
// bits. The partial remainder can reach 129 bits after a shift; 'carry'
// holds the bit that falls off the top of u.
func quoFrac(u, by u128) (q u256) {
	var carry bool

	for i := 0; i < 256; i++ {
		// {{{ q.lsh(1)
		q.hi = (q.hi << 1) | (q.hm >> 63)
		q.hm = (q.hm << 1) | (q.lm >> 63)
		q.lm = (q.lm << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		if carry || !(u.hi < by.hi || (u.hi == by.hi && u.lo < by.lo)) {
			u = u.sub(by)
			q.lo |= 1
		}

		// {{{ u.lsh(1)
		carry = u.hi>>63 != 0
		u.hi = (u.hi << 1) | (u.lo >> 63)
		u.lo = u.lo << 1
		// }}}
	}

	if carry || !u.isZero() {
		q.lo |= 1
	}
	return q
}
