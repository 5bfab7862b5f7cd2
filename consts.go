package bigfloat

const (
	// Prec is the number of significand bits held by every finite Float.
	Prec = 128

	// MaxExp and MinExp bound the exponent of a finite Float x, written as
	// x = 0.mantissa * 2**exp with 0.5 <= 0.mantissa < 1. Results above
	// MaxExp become Infinity, results below MinExp become zero.
	MaxExp = 1 << 20
	MinExp = -(1 << 20)

	// decExpLimit bounds the decimal exponent accepted by Parse before the
	// result is known to be out of range. 2**MaxExp is roughly 10**315653.
	decExpLimit = 315660

	// maxExpDigits caps how much of a decimal exponent we bother reading.
	maxExpDigits = 1 << 40

	msb64 = 1 << 63
)

var (
	nanFloat = Float{form: nan}
	oneFloat = Float{form: finite, exp: 1, mant: u128{hi: msb64}}
)
