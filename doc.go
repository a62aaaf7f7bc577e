/*
Package fraction implements immutable rational numbers over Go integer types.
A [Fraction] is a pair of a numerator and a denominator of the same integer
type, such as int, uint8 or int64, that is always kept in lowest terms.

# Features

  - Immutable fractions, ensuring safe usage across multiple goroutines
  - Generic over all signed and unsigned integer types
  - Automatic reduction to lowest terms on every construction
  - Arithmetic operations Add, Sub, Mul and Quo
  - Conversion to float64 and to [decimal.Decimal]

# Representation

A Fraction consists of a numerator and a denominator of type T.
Every constructor and operation divides both parts by their greatest
common divisor (see [GCD]) and moves the sign to the numerator, so the
denominator is always positive and each rational number has exactly one
representation.
The zero value of a Fraction is 0/1.

# Supported Ranges

The range of fractions supported depends on the integer type T.
All arithmetic is performed in T without widening, so products and sums
that do not fit into T wrap around silently, as they do in plain Go integer
arithmetic.
Choose a type wide enough for the chain of operations being performed.

# Operations

The package provides the constructors [New] and [MustNew], arithmetic
methods [Fraction.Add], [Fraction.Sub], [Fraction.Mul] and [Fraction.Quo],
and the unary methods [Fraction.Neg], [Fraction.Abs] and [Fraction.Inv].
Both operands of an arithmetic method must have the same type T.

# Errors

A zero denominator is the only invalid input.
[New] returns [ErrZeroDenominator] in this case, while [MustNew] and
the arithmetic methods panic.
In particular, dividing by a zero fraction with [Fraction.Quo] panics,
because the denominator of the result becomes zero.
*/
package fraction
