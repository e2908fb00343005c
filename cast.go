package unitgo

import (
	"slices"

	"github.com/hupe1980/unitgo/dimension"
)

// SemanticCast reinterprets q under a different semantic vector,
// keeping units, scale and value. This is an unchecked escape hatch:
// the caller asserts the reinterpretation is meaningful. The target
// must be canonical (*ErrNonCanonicalDimension otherwise).
func (q Quantity[T]) SemanticCast(target dimension.Vector) (Quantity[T], error) {
	if err := dimension.Validate(target); err != nil {
		return Quantity[T]{}, &ErrNonCanonicalDimension{Vector: "semantic", cause: err}
	}
	out := q
	out.semantic = slices.Clone(target)
	return out, nil
}

// UnitCast reinterprets q under a different physical-unit vector,
// keeping semantics and scale. Changing the unit basis without
// adjusting the value is dimensionally unsound, so the caller must
// supply the conversion factor between the old and new basis; the
// payload is multiplied by it. Pass 1 when both bases share identical
// base-scale factors.
//
// The target must be canonical (*ErrNonCanonicalDimension otherwise).
func (q Quantity[T]) UnitCast(target dimension.Vector, factor T) (Quantity[T], error) {
	if err := dimension.Validate(target); err != nil {
		return Quantity[T]{}, &ErrNonCanonicalDimension{Vector: "units", cause: err}
	}
	out := q
	out.units = slices.Clone(target)
	out.value = q.value * factor
	return out, nil
}
