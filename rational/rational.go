// Package rational implements exact arithmetic on the small rational
// exponents that dimension vectors raise base units to.
//
// Every Exponent is kept in lowest terms with a positive denominator.
// The package is allocation-free and total except for construction with
// a zero denominator.
package rational

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrZeroDenominator is returned when an exponent is constructed with a
// zero denominator.
var ErrZeroDenominator = errors.New("rational: denominator must be non-zero")

// Exponent is a rational number in lowest terms with Den > 0.
//
// Construct exponents through New, MustNew, Int or Reduce; a hand-built
// Exponent may violate the lowest-terms invariant (see Reduced).
type Exponent struct {
	Num int64
	Den int64
}

// Common exponents.
var (
	Zero = Exponent{Num: 0, Den: 1}
	One  = Exponent{Num: 1, Den: 1}
)

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

// Reduce normalizes num/den to lowest terms with a positive denominator.
func Reduce(num, den int64) (Exponent, error) {
	if den == 0 {
		return Exponent{}, ErrZeroDenominator
	}
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Zero, nil
	}
	g := gcd(abs(num), den)
	return Exponent{Num: num / g, Den: den / g}, nil
}

// New returns the reduced exponent num/den.
func New(num, den int64) (Exponent, error) {
	return Reduce(num, den)
}

// MustNew is like New but panics on a zero denominator.
// Intended for exponent literals in declarations and tests.
func MustNew(num, den int64) Exponent {
	e, err := New(num, den)
	if err != nil {
		panic(fmt.Errorf("rational: MustNew(%d, %d): %w", num, den, err))
	}
	return e
}

// Int returns the integer exponent n/1.
func Int(n int64) Exponent {
	return Exponent{Num: n, Den: 1}
}

// Add returns a + b, reduced.
//
// Cross-multiplies denominators: (a.Num*b.Den + b.Num*a.Den) / (a.Den*b.Den).
func Add(a, b Exponent) Exponent {
	e, _ := Reduce(a.Num*b.Den+b.Num*a.Den, a.Den*b.Den)
	return e
}

// Mul returns a * b, reduced.
func Mul(a, b Exponent) Exponent {
	e, _ := Reduce(a.Num*b.Num, a.Den*b.Den)
	return e
}

// Neg returns -a. Only the numerator changes sign.
func Neg(a Exponent) Exponent {
	return Exponent{Num: -a.Num, Den: a.Den}
}

// IsZero reports whether the exponent is zero.
func (e Exponent) IsZero() bool {
	return e.Num == 0
}

// Equal reports whether two reduced exponents are equal.
func (e Exponent) Equal(other Exponent) bool {
	return e.Num == other.Num && e.Den == other.Den
}

// Reduced reports whether the exponent satisfies the lowest-terms
// invariant: Den > 0 and gcd(|Num|, Den) == 1.
func (e Exponent) Reduced() bool {
	if e.Den <= 0 {
		return false
	}
	if e.Num == 0 {
		return e.Den == 1
	}
	return gcd(abs(e.Num), e.Den) == 1
}

// Float64 returns the exponent as a float64.
func (e Exponent) Float64() float64 {
	return float64(e.Num) / float64(e.Den)
}

// String renders the exponent as "n" or "n/d".
func (e Exponent) String() string {
	if e.Den == 1 {
		return strconv.FormatInt(e.Num, 10)
	}
	return strconv.FormatInt(e.Num, 10) + "/" + strconv.FormatInt(e.Den, 10)
}
