package unitgo

import (
	"fmt"
	"slices"

	"github.com/hupe1980/unitgo/dimension"
)

// Number constrains the numeric payload of a Quantity.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Quantity is a physical quantity: a numeric payload, a scale factor,
// a semantic-subcategory vector and a physical-unit vector.
//
// The scale expresses how many base-scale units one stored value
// represents (storing kilometers against a meter base uses scale
// 1000). Both vectors are fixed at construction; only the payload
// changes through the compound-assignment operations.
//
// The zero Quantity is a dimensionless zero with scale 0 and is not
// valid; construct quantities through New, MustNew or Dimensionless.
type Quantity[T Number] struct {
	value    T
	scale    uint64
	semantic dimension.Vector
	units    dimension.Vector
}

// New creates a quantity. Both vectors must already be canonical
// (*ErrNonCanonicalDimension otherwise) and scale must be positive.
func New[T Number](value T, scale uint64, semantic, units dimension.Vector) (Quantity[T], error) {
	if scale == 0 {
		return Quantity[T]{}, ErrZeroScale
	}
	if err := dimension.Validate(semantic); err != nil {
		return Quantity[T]{}, &ErrNonCanonicalDimension{Vector: "semantic", cause: err}
	}
	if err := dimension.Validate(units); err != nil {
		return Quantity[T]{}, &ErrNonCanonicalDimension{Vector: "units", cause: err}
	}

	return Quantity[T]{
		value:    value,
		scale:    scale,
		semantic: slices.Clone(semantic),
		units:    slices.Clone(units),
	}, nil
}

// MustNew is like New but panics on an invalid quantity.
// Intended for quantity literals in declarations and tests.
func MustNew[T Number](value T, scale uint64, semantic, units dimension.Vector) Quantity[T] {
	q, err := New(value, scale, semantic, units)
	if err != nil {
		panic(fmt.Errorf("unitgo: MustNew: %w", err))
	}
	return q
}

// Dimensionless creates a scalar quantity: no units, no semantics,
// scale 1.
func Dimensionless[T Number](value T) Quantity[T] {
	return Quantity[T]{value: value, scale: 1}
}

// Value returns the stored payload in the quantity's own scale.
func (q Quantity[T]) Value() T { return q.value }

// Scale returns the quantity's scale factor.
func (q Quantity[T]) Scale() uint64 { return q.scale }

// Semantic returns the semantic-subcategory vector.
// Callers must not modify the returned slice.
func (q Quantity[T]) Semantic() dimension.Vector { return q.semantic }

// Units returns the physical-unit vector.
// Callers must not modify the returned slice.
func (q Quantity[T]) Units() dimension.Vector { return q.units }

// InBaseScale returns the payload expressed with scale 1.
func (q Quantity[T]) InBaseScale() T {
	return q.value * T(q.scale)
}

// StripSemantic returns an equivalent quantity with an empty semantic
// vector: a deliberate escape hatch from subcategory checking.
func (q Quantity[T]) StripSemantic() Quantity[T] {
	out := q
	out.semantic = nil
	return out
}

// IsDimensionless reports whether the quantity carries no physical
// units.
func (q Quantity[T]) IsDimensionless() bool {
	return q.units.IsEmpty()
}

// Scalar returns the base-scale payload of a dimensionless quantity,
// or ErrNotScalar if physical units remain.
func (q Quantity[T]) Scalar() (T, error) {
	if !q.IsDimensionless() {
		var zero T
		return zero, ErrNotScalar
	}
	return q.InBaseScale(), nil
}

// String renders the quantity for debugging, e.g. "12.5x1000 b1^2 [b4]".
func (q Quantity[T]) String() string {
	s := fmt.Sprintf("%v", q.value)
	if q.scale != 1 {
		s += fmt.Sprintf("x%d", q.scale)
	}
	if !q.units.IsEmpty() {
		s += " " + q.units.String()
	}
	if !q.semantic.IsEmpty() {
		s += " [" + q.semantic.String() + "]"
	}
	return s
}
