package unitgo

import (
	"math"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/rational"
)

// Mul multiplies two quantities. Dimensions multiply, so exponents of
// shared base units add; the same applies to the semantic vectors.
//
// If the physical units fully cancel (meters^1 * meters^-1), the
// result degrades to a dimensionless scalar whose payload is the raw
// numeric product in base scale. Otherwise the result's scale is the
// product of both operand scales and the payload the product of both
// payloads, which keeps the base-scale value exact.
func (q Quantity[T]) Mul(other Quantity[T]) Quantity[T] {
	units := dimension.Canonicalize(dimension.Merge(q.units, other.units, rational.Add))
	if units.IsEmpty() {
		return Dimensionless(q.value * T(q.scale) * other.value * T(other.scale))
	}

	return Quantity[T]{
		value:    q.value * other.value,
		scale:    q.scale * other.scale,
		semantic: dimension.Canonicalize(dimension.Merge(q.semantic, other.semantic, rational.Add)),
		units:    units,
	}
}

// Reciprocal returns 1/q: every exponent in both vectors is negated
// and the payload inverted. The scale is kept, so the inversion is
// exact in base scale only for scale-1 quantities; convert to base
// scale first when the operand uses a larger scale.
func (q Quantity[T]) Reciprocal() Quantity[T] {
	return Quantity[T]{
		value:    T(1) / q.value,
		scale:    q.scale,
		semantic: dimension.NegateAll(q.semantic),
		units:    dimension.NegateAll(q.units),
	}
}

// Div divides q by other, defined as q * other.Reciprocal().
func (q Quantity[T]) Div(other Quantity[T]) Quantity[T] {
	return q.Mul(other.Reciprocal())
}

// Add adds two quantities. Both must share identical physical units
// (*ErrDimensionMismatch; there is no implicit unit conversion beyond
// scale) and convertible semantics (*ErrIncompatibleSemantics). The
// right operand is rescaled into q's scale.
func (q Quantity[T]) Add(other Quantity[T]) (Quantity[T], error) {
	if err := q.checkConvertible(other); err != nil {
		return Quantity[T]{}, err
	}
	out := q
	out.value += q.rescale(other)
	return out, nil
}

// Sub subtracts other from q under the same rules as Add.
func (q Quantity[T]) Sub(other Quantity[T]) (Quantity[T], error) {
	if err := q.checkConvertible(other); err != nil {
		return Quantity[T]{}, err
	}
	out := q
	out.value -= q.rescale(other)
	return out, nil
}

// MulScalar multiplies the payload by a raw scalar. Dimension and
// scale are untouched.
func (q Quantity[T]) MulScalar(s T) Quantity[T] {
	out := q
	out.value *= s
	return out
}

// DivScalar divides the payload by a raw scalar.
func (q Quantity[T]) DivScalar(s T) Quantity[T] {
	out := q
	out.value /= s
	return out
}

// AddScalar adds a raw offset to the stored payload. No dimension
// check is performed; keeping the offset meaningful is the caller's
// responsibility.
func (q Quantity[T]) AddScalar(s T) Quantity[T] {
	out := q
	out.value += s
	return out
}

// SubScalar subtracts a raw offset from the stored payload.
func (q Quantity[T]) SubScalar(s T) Quantity[T] {
	out := q
	out.value -= s
	return out
}

// Pow raises q to the rational power num/den.
//
// Every exponent in both vectors is multiplied by num/den. The value
// is computed in the base scale and the result always has scale 1,
// since a fractional power of an arbitrary scale is not generally
// expressible as an integer scale. The payload becomes float64.
func Pow[T Number](q Quantity[T], num, den int64) (Quantity[float64], error) {
	if den <= 0 {
		var cause error
		if den == 0 {
			cause = rational.ErrZeroDenominator
		}
		return Quantity[float64]{}, &ErrInvalidExponent{Num: num, Den: den, cause: cause}
	}
	power, _ := rational.New(num, den)

	return Quantity[float64]{
		value:    math.Pow(float64(q.value)*float64(q.scale), power.Float64()),
		scale:    1,
		semantic: dimension.Canonicalize(dimension.Raise(q.semantic, power)),
		units:    dimension.Canonicalize(dimension.Raise(q.units, power)),
	}, nil
}
