// Package dimension implements the dimension-vector algebra at the
// heart of unitgo.
//
// A Vector represents a product of base units raised to rational
// powers, e.g. meters^2 * seconds^-1. Vectors have a canonical form:
// sorted ascending by base-unit ID, at most one entry per base unit,
// no zero exponents, every exponent in lowest terms. All algebra
// operations (Merge, Raise, NegateAll) must be followed by
// Canonicalize before the result is treated as a Vector; the
// high-level helpers in this package and in the root package do this
// for you.
//
// Structural equality of canonical vectors is dimensional equality.
package dimension

import (
	"strconv"
	"strings"

	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/rational"
)

// Power is a base unit raised to a rational exponent.
type Power struct {
	Base baseunit.ID
	Exp  rational.Exponent
}

// Pow pairs a base unit with an exponent.
func Pow(base baseunit.ID, exp rational.Exponent) Power {
	return Power{Base: base, Exp: exp}
}

// Base is shorthand for base^1.
func Base(base baseunit.ID) Power {
	return Power{Base: base, Exp: rational.One}
}

// SameBase reports whether two powers share a base unit, regardless of
// exponent.
func SameBase(a, b Power) bool {
	return a.Base == b.Base
}

// Vector is an ordered collection of powers. The nil/empty vector is
// dimensionless (or "no semantic subcategory").
//
// Vectors are treated as immutable: every operation returns a fresh
// slice and callers must not modify a vector after handing it out.
type Vector []Power

// Of builds a canonical vector from the given powers, combining
// duplicate base units by adding exponents.
//
//	Of(Base(meters), Base(meters)) // meters^2
func Of(powers ...Power) Vector {
	var v Vector
	for _, p := range powers {
		v = ConsCombine(p, v, rational.Add)
	}
	return Canonicalize(v)
}

// IsEmpty reports whether the vector is dimensionless.
func (v Vector) IsEmpty() bool {
	return len(v) == 0
}

// Equal reports structural equality. Both vectors must be canonical
// for this to coincide with dimensional equality.
func (v Vector) Equal(other Vector) bool {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if v[i].Base != other[i].Base || !v[i].Exp.Equal(other[i].Exp) {
			return false
		}
	}
	return true
}

// SemanticConvertible reports whether two semantic vectors may
// interoperate: they are equal, or either is empty. An empty semantic
// vector is a wildcard.
func SemanticConvertible(a, b Vector) bool {
	return a.IsEmpty() || b.IsEmpty() || a.Equal(b)
}

// String renders the vector with raw base-unit ids, e.g.
// "b1^2*b2^-1/2". Use Format to resolve kinds against a registry.
func (v Vector) String() string {
	if len(v) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, p := range v {
		if i > 0 {
			sb.WriteByte('*')
		}
		sb.WriteByte('b')
		sb.WriteString(baseunitString(p.Base))
		if !p.Exp.Equal(rational.One) {
			sb.WriteByte('^')
			sb.WriteString(p.Exp.String())
		}
	}
	return sb.String()
}

// Format renders the vector with kind names resolved against reg,
// e.g. "meters^2*seconds^-1". Unknown ids fall back to the raw form.
func (v Vector) Format(reg *baseunit.Registry) string {
	if len(v) == 0 {
		return "1"
	}
	var sb strings.Builder
	for i, p := range v {
		if i > 0 {
			sb.WriteByte('*')
		}
		if kind, ok := reg.KindOf(p.Base); ok {
			sb.WriteString(kind)
		} else {
			sb.WriteByte('b')
			sb.WriteString(baseunitString(p.Base))
		}
		if !p.Exp.Equal(rational.One) {
			sb.WriteByte('^')
			sb.WriteString(p.Exp.String())
		}
	}
	return sb.String()
}

func baseunitString(id baseunit.ID) string {
	return strconv.FormatUint(uint64(id), 10)
}
