package unitgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/unitgo/dimension"
)

var (
	// ErrZeroScale is returned when a quantity is constructed with
	// scale 0. Scales are multipliers against the base scale and must
	// be at least 1.
	ErrZeroScale = errors.New("scale must be positive")

	// ErrNotScalar is returned by Scalar on a quantity that still
	// carries physical units.
	ErrNotScalar = errors.New("quantity is not dimensionless")
)

// ErrInvalidExponent indicates a rational power that is not a valid
// exponent (zero or negative denominator).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidExponent struct {
	Num   int64
	Den   int64
	cause error
}

func (e *ErrInvalidExponent) Error() string {
	return fmt.Sprintf("invalid exponent: %d/%d", e.Num, e.Den)
}

func (e *ErrInvalidExponent) Unwrap() error { return e.cause }

// ErrNonCanonicalDimension indicates a dimension vector supplied to
// quantity construction or a cast that is not in canonical form.
//
// The underlying *dimension.ErrNotCanonical can be accessed via errors.As.
type ErrNonCanonicalDimension struct {
	// Vector names the offending vector: "semantic" or "units".
	Vector string
	cause  error
}

func (e *ErrNonCanonicalDimension) Error() string {
	return fmt.Sprintf("non-canonical %s vector: %v", e.Vector, e.cause)
}

func (e *ErrNonCanonicalDimension) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates arithmetic between quantities whose
// physical units differ where exact equality is required.
type ErrDimensionMismatch struct {
	Want dimension.Vector
	Got  dimension.Vector
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: %s vs %s", e.Want, e.Got)
}

// ErrIncompatibleSemantics indicates arithmetic between quantities
// with non-equal, non-empty semantic vectors.
type ErrIncompatibleSemantics struct {
	A dimension.Vector
	B dimension.Vector
}

func (e *ErrIncompatibleSemantics) Error() string {
	return fmt.Sprintf("incompatible semantics: %s vs %s", e.A, e.B)
}
