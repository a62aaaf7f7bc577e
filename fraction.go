package fraction

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// ErrZeroDenominator is returned by [New] when the denominator is zero.
var ErrZeroDenominator = errors.New("denominator cannot be zero")

// Fraction type represents a rational number num / den over the integer type T.
// Fractions are always stored in lowest terms with a positive denominator,
// the sign being carried by the numerator.
// Its zero value corresponds to 0/1.
//
// Valid fractions can be compared using the == and != operators,
// since every rational number has exactly one representation.
// The only exception is a reduced denominator equal to the most negative
// value of a signed T, such as -128 for int8: its sign cannot be flipped
// without overflow, so it stays negative, for example MustNew[int8](1, -128)
// is -1/-128.
// Fraction is designed to be safe for concurrent use by multiple goroutines.
type Fraction[T constraints.Integer] struct {
	num T // numerator
	den T // denominator, 0 only for the zero fraction
}

// newFracUnsafe creates a new fraction without reducing it.
// Use it only if you are absolutely sure that num and den are coprime
// and den is positive.
func newFracUnsafe[T constraints.Integer](num, den T) Fraction[T] {
	if num == 0 {
		return Fraction[T]{}
	}
	return Fraction[T]{num: num, den: den}
}

// reduce divides num and den by their greatest common divisor and moves
// the sign to the numerator.
// The denominator must not be zero.
func reduce[T constraints.Integer](num, den T) Fraction[T] {
	if num == 0 {
		return Fraction[T]{}
	}
	g := GCD(num, den)
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}
	return newFracUnsafe(num, den)
}

// New returns a fraction equal to num / den reduced to lowest terms.
// If den is negative, the signs of both num and den are flipped, so that
// New(1, -2) and New(-1, 2) return the same fraction.
// See also constructor [MustNew].
//
// New returns [ErrZeroDenominator] if den is zero.
func New[T constraints.Integer](num, den T) (Fraction[T], error) {
	if den == 0 {
		return Fraction[T]{}, ErrZeroDenominator
	}
	return reduce(num, den), nil
}

// MustNew is like [New] but panics if the denominator is zero.
// A zero denominator is a programming error, so MustNew is the constructor
// used by the arithmetic methods of [Fraction].
// It also simplifies safe initialization of global variables holding fractions.
func MustNew[T constraints.Integer](num, den T) Fraction[T] {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", num, den, err))
	}
	return f
}

// FromInt returns a fraction equal to n / 1.
func FromInt[T constraints.Integer](n T) Fraction[T] {
	return newFracUnsafe(n, 1)
}

// Num returns the numerator of the fraction.
// The numerator carries the sign of the fraction.
func (f Fraction[T]) Num() T {
	return f.num
}

// Den returns the denominator of the fraction.
// The denominator is always positive, unless it is the most negative value
// of a signed T (see [Fraction]).
func (f Fraction[T]) Den() T {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// Sign returns:
//
//	-1 if f < 0
//	 0 if f = 0
//	+1 if f > 0
func (f Fraction[T]) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num == 0:
		return 0
	default:
		return 1
	}
}

// IsZero returns:
//
//	true  if f = 0
//	false otherwise
func (f Fraction[T]) IsZero() bool {
	return f.num == 0
}

// IsNeg returns:
//
//	true  if f < 0
//	false otherwise
func (f Fraction[T]) IsNeg() bool {
	return f.num < 0
}

// IsPos returns:
//
//	true  if f > 0
//	false otherwise
func (f Fraction[T]) IsPos() bool {
	return f.num > 0
}

// IsOne returns:
//
//	true  if f = 1
//	false otherwise
func (f Fraction[T]) IsOne() bool {
	return f.num == 1 && f.Den() == 1
}

// IsInt returns true if the denominator of the fraction is 1.
func (f Fraction[T]) IsInt() bool {
	return f.Den() == 1
}

// Neg returns a fraction with the opposite sign.
// For unsigned types the result wraps around, as negation in T does.
func (f Fraction[T]) Neg() Fraction[T] {
	return reduce(-f.Num(), f.Den())
}

// Abs returns the absolute value of the fraction.
func (f Fraction[T]) Abs() Fraction[T] {
	return reduce(abs(f.Num()), f.Den())
}

// Inv returns the reciprocal of the fraction, den / num.
//
// Inv panics if the fraction is zero.
// To avoid this panic, use the [Fraction.IsZero] method to verify that
// the fraction is not zero before calling Inv.
func (f Fraction[T]) Inv() Fraction[T] {
	g, err := New(f.Den(), f.Num())
	if err != nil {
		panic(fmt.Sprintf("%q.Inv() failed: %v", f, err))
	}
	return g
}

// Mul returns the product of fractions f and g reduced to lowest terms.
// Intermediate products are computed in T and wrap around on overflow.
//
// Mul panics if the product of denominators wraps around to zero.
func (f Fraction[T]) Mul(g Fraction[T]) Fraction[T] {
	h, err := New(f.Num()*g.Num(), f.Den()*g.Den())
	if err != nil {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", f, g, err))
	}
	return h
}

// Quo returns the quotient of fractions f and g reduced to lowest terms.
// Intermediate products are computed in T and wrap around on overflow.
// See also method [Fraction.Inv].
//
// Quo panics if g is zero, since the denominator of the quotient becomes zero.
// To avoid this panic, use the [Fraction.IsZero] method to verify that
// the divisor is not zero before calling Quo.
func (f Fraction[T]) Quo(g Fraction[T]) Fraction[T] {
	h, err := New(f.Num()*g.Den(), f.Den()*g.Num())
	if err != nil {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", f, g, err))
	}
	return h
}

// Add returns the sum of fractions f and g reduced to lowest terms.
// Intermediate products and sums are computed in T and wrap around on overflow.
//
// Add panics if the product of denominators wraps around to zero.
func (f Fraction[T]) Add(g Fraction[T]) Fraction[T] {
	h, err := New(f.Num()*g.Den()+g.Num()*f.Den(), f.Den()*g.Den())
	if err != nil {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", f, g, err))
	}
	return h
}

// Sub returns the difference between fractions f and g reduced to lowest terms.
// Intermediate products and differences are computed in T and wrap around on
// overflow, which for unsigned types includes any negative difference.
//
// Sub panics if the product of denominators wraps around to zero.
func (f Fraction[T]) Sub(g Fraction[T]) Fraction[T] {
	h, err := New(f.Num()*g.Den()-g.Num()*f.Den(), f.Den()*g.Den())
	if err != nil {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", f, g, err))
	}
	return h
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the fraction in the form "num/den", for example "-3/8".
// See also method [Fraction.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Fraction[T]) String() string {
	return string(f.append(make([]byte, 0, 8)))
}

// GoString implements the [fmt.GoStringer] interface and returns
// a representation of the fraction that includes its type, for example
// "fraction.Fraction[int]{num: 1, den: 2}".
//
// [fmt.GoStringer]: https://pkg.go.dev/fmt#GoStringer
func (f Fraction[T]) GoString() string {
	text := fmt.Appendf(nil, "%T{num: ", f)
	text = appendInt(text, f.Num())
	text = append(text, ", den: "...)
	text = appendInt(text, f.Den())
	text = append(text, '}')
	return string(text)
}

func (f Fraction[T]) append(text []byte) []byte {
	text = appendInt(text, f.Num())
	text = append(text, '/')
	return appendInt(text, f.Den())
}

// appendInt appends the decimal representation of x.
// Negative values of any signed type fit into int64 and non-negative values
// of any type fit into uint64.
func appendInt[T constraints.Integer](text []byte, x T) []byte {
	if x < 0 {
		return strconv.AppendInt(text, int64(x), 10)
	}
	return strconv.AppendUint(text, uint64(x), 10)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                                  | Description         |
//	| ------ | ---------------------------------------- | ------------------- |
//	| %s, %v | -3/8                                     | Fraction            |
//	| %q     | "-3/8"                                   | Quoted fraction     |
//	| %#v    | fraction.Fraction[int]{num: -3, den: 8}  | Go-syntax fraction  |
//
// The '-' format flag can be used with all verbs.
// Width pads the whole representation with spaces.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (f Fraction[T]) Format(state fmt.State, verb rune) {
	var text []byte
	switch {
	case (verb == 'v' || verb == 'V') && state.Flag('#'):
		text = []byte(f.GoString())
	case verb == 'q' || verb == 'Q':
		text = strconv.AppendQuote(nil, f.String())
	default:
		text = f.append(nil)
	}

	// Padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(fraction.Fraction="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}
