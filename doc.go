/*
Package bigfloat provides Float, an extended precision binary floating point
type with a 128-bit significand, intended for folding floating point
constant expressions at compile time.

Float is a value type; all operations return new values.

Simple example:

	third := bigfloat.FromInt64(1).Quo(bigfloat.FromInt64(3))
	fmt.Println(third.Mul(bigfloat.FromInt64(3)).Float64())
	// Output: 1

Every binary64 and binary128 value is representable exactly, so a value can
be loaded from a native float, combined with others at 128 bits, and then
narrowed once to its target width:

	FromFloat32(v float32) Float
	FromFloat64(v float64) Float
	FromFloat128(v Float128) Float
	FromInt(v Integer) Float
	FromBigInt(v *big.Int) Float
	FromBigFloat(v *big.Float) Float
	Parse(s string) (Float, error)

	(Float).Float32() float32
	(Float).Float64() float64
	(Float).Float128() Float128
	(Float).AsBigInt() (*big.Int, bool)
	(Float).AsBigFloat() (*big.Float, bool)

All arithmetic rounds to nearest with ties to even, exactly once per
operation, and never fails: division by zero, overflow and invalid
operations produce Infinity or NaN following IEEE-754. Parse is the only
operation that returns an error.

QuoTrunc and QuoFloor produce the integral part of the exact quotient, Rem
and Mod the matching remainders:

	x == x.QuoTrunc(y).Mul(y).Add(x.Rem(y)) // Rem has the sign of x
	x == x.QuoFloor(y).Mul(y).Add(x.Mod(y)) // Mod has the sign of y

Comparisons involving NaN return Unordered rather than any of Less, Equal
or Greater.

Float supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bigfloat
