package fraction

import (
	"errors"
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

var errInt64Overflow = errors.New("int64 overflow")

// Float64 returns the nearest binary floating-point number to num / den.
// See also method [Fraction.Decimal].
//
// This conversion may lose data, as float64 has a smaller precision
// than 64-bit integers.
func (f Fraction[T]) Float64() float64 {
	return float64(f.Num()) / float64(f.Den())
}

// Decimal returns the (possibly rounded) decimal representation of
// the fraction, computed as the quotient of its numerator and denominator.
// Rounding is performed by [decimal.Decimal.Quo] using
// [rounding half to even] (banker's rounding).
//
// Decimal returns an error if:
//   - the numerator or denominator cannot be represented as an int64;
//   - the integer part of the result has more than [decimal.MaxPrec] digits.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (f Fraction[T]) Decimal() (decimal.Decimal, error) {
	d, err := f.decimal()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", f, err)
	}
	return d, nil
}

func (f Fraction[T]) decimal() (decimal.Decimal, error) {
	num, ok := toInt64(f.Num())
	if !ok {
		return decimal.Decimal{}, errInt64Overflow
	}
	den, ok := toInt64(f.Den())
	if !ok {
		return decimal.Decimal{}, errInt64Overflow
	}
	d, err := decimal.New(num, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	e, err := decimal.New(den, 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Quo(e)
}

// MustDecimal is like [Fraction.Decimal] but panics if the fraction cannot
// be converted.
func (f Fraction[T]) MustDecimal() decimal.Decimal {
	d, err := f.Decimal()
	if err != nil {
		panic(fmt.Sprintf("%q.Decimal() failed: %v", f, err))
	}
	return d
}

// toInt64 reports false if x does not fit into int64, which can only happen
// for large values of unsigned types.
func toInt64[T constraints.Integer](x T) (int64, bool) {
	if x < 0 {
		return int64(x), true
	}
	if uint64(x) > math.MaxInt64 {
		return 0, false
	}
	return int64(x), true
}
