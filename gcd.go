package fraction

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of integers a and b using the
// [Euclidean algorithm].
// The divisor is computed on the absolute values of a and b, so the result
// is non-negative, with the exception described below.
//
//	GCD(a, 0) = |a|
//	GCD(0, b) = |b|
//	GCD(0, 0) = 0
//
// If the absolute value of an operand cannot be represented in T (for example,
// -128 for int8), it wraps around like any other arithmetic in T and
// the sign of the result is not defined.
//
// [Euclidean algorithm]: https://en.wikipedia.org/wiki/Euclidean_algorithm
func GCD[T constraints.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	if a < b {
		a, b = b, a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns |x|.
// For unsigned types it returns x unchanged.
func abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
