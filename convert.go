package unitgo

import (
	"github.com/hupe1980/unitgo/dimension"
)

// checkConvertible verifies that other may be converted into q's
// frame: exact physical-unit equality and semantic convertibility.
func (q Quantity[T]) checkConvertible(other Quantity[T]) error {
	if !q.units.Equal(other.units) {
		return &ErrDimensionMismatch{Want: q.units, Got: other.units}
	}
	if !dimension.SemanticConvertible(q.semantic, other.semantic) {
		return &ErrIncompatibleSemantics{A: q.semantic, B: other.semantic}
	}
	return nil
}

// rescale converts other's payload into q's scale.
func (q Quantity[T]) rescale(other Quantity[T]) T {
	return other.value * T(other.scale) / T(q.scale)
}

// ConvertFrom returns a copy of q whose payload is other's value
// rescaled into q's scale.
//
// Legal only when both quantities share identical physical units
// (*ErrDimensionMismatch) and their semantic vectors are convertible:
// equal, or either empty (*ErrIncompatibleSemantics). An empty
// semantic vector is a wildcard.
func (q Quantity[T]) ConvertFrom(other Quantity[T]) (Quantity[T], error) {
	if err := q.checkConvertible(other); err != nil {
		return Quantity[T]{}, err
	}
	out := q
	out.value = q.rescale(other)
	return out, nil
}

// SetFrom replaces q's payload with other's value rescaled into q's
// scale, under the ConvertFrom rules. Scale and vectors are untouched.
func (q *Quantity[T]) SetFrom(other Quantity[T]) error {
	if err := q.checkConvertible(other); err != nil {
		return err
	}
	q.value = q.rescale(other)
	return nil
}

// AddAssign adds other's rescaled payload to q's, under the
// ConvertFrom rules.
func (q *Quantity[T]) AddAssign(other Quantity[T]) error {
	if err := q.checkConvertible(other); err != nil {
		return err
	}
	q.value += q.rescale(other)
	return nil
}

// SubAssign subtracts other's rescaled payload from q's, under the
// ConvertFrom rules.
func (q *Quantity[T]) SubAssign(other Quantity[T]) error {
	if err := q.checkConvertible(other); err != nil {
		return err
	}
	q.value -= q.rescale(other)
	return nil
}

// Inc increments the payload by one in q's own scale.
func (q *Quantity[T]) Inc() { q.value++ }

// Dec decrements the payload by one in q's own scale.
func (q *Quantity[T]) Dec() { q.value-- }

// ScaleBy multiplies the payload by a raw scalar. Dimension and scale
// are untouched.
func (q *Quantity[T]) ScaleBy(s T) { q.value *= s }

// DivBy divides the payload by a raw scalar. Dimension and scale are
// untouched.
func (q *Quantity[T]) DivBy(s T) { q.value /= s }
