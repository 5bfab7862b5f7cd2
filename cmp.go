package bigfloat

// Ordering is the result of comparing two Floats.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1

	// Unordered is returned when either operand is NaN. It is never equal
	// to Less, Equal or Greater, so callers that forget to check for NaN
	// don't silently treat it as equality.
	Unordered Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	default:
		return "invalid"
	}
}

// Cmp compares x and y. -0 and +0 are Equal; a NaN operand gives Unordered.
func (x Float) Cmp(y Float) Ordering {
	if x.form == nan || y.form == nan {
		return Unordered
	}

	xs, ys := x.Sign(), y.Sign()
	if xs != ys {
		if xs < ys {
			return Less
		}
		return Greater
	} else if xs == 0 {
		return Equal
	}

	c := cmpAbs(x, y)
	if xs < 0 {
		c = -c
	}
	return Ordering(c)
}

// CmpZero compares x against +0.
func (x Float) CmpZero() Ordering {
	if x.form == nan {
		return Unordered
	}
	return Ordering(x.Sign())
}

// Equal reports whether x and y compare Equal; NaN is not equal to anything.
func (x Float) Equal(y Float) bool { return x.Cmp(y) == Equal }

// cmpAbs compares the magnitudes of two non-NaN values.
func cmpAbs(x, y Float) int {
	if x.form != y.form {
		if x.form < y.form { // zero < finite < inf
			return -1
		}
		return 1
	} else if x.form != finite {
		return 0
	} else if x.exp != y.exp {
		if x.exp < y.exp {
			return -1
		}
		return 1
	}
	return x.mant.cmp(y.mant)
}

// HasFraction reports whether x is finite and not an integer. NaN, the
// Infinities and zero have no fraction.
func (x Float) HasFraction() bool {
	if x.form != finite {
		return false
	} else if x.exp <= 0 {
		return true // 0 < |x| < 1
	} else if x.exp >= Prec {
		return false
	}
	return x.mant.trailingZeros() < uint(Prec-x.exp)
}

// IsInt reports whether x is a finite integer (including +-0).
func (x Float) IsInt() bool {
	return x.IsFinite() && !x.HasFraction()
}
