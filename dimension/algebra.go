package dimension

import (
	"slices"

	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/rational"
)

// Combiner merges the exponents of two powers that share a base unit.
// rational.Add is used when multiplying quantities (exponents add);
// rational.Mul when raising to a power.
type Combiner func(a, b rational.Exponent) rational.Exponent

// ConsCombine adds p to v. If v already carries p's base unit, that
// entry's exponent is replaced with combine(p.Exp, existing); otherwise
// p is appended at the end.
//
// ConsCombine alone does not keep the result sorted; callers must
// Canonicalize afterwards.
func ConsCombine(p Power, v Vector, combine Combiner) Vector {
	out := slices.Clone(v)
	for i, q := range out {
		if SameBase(p, q) {
			out[i].Exp = combine(p.Exp, q.Exp)
			return out
		}
	}
	return append(out, p)
}

// Merge folds every power of a into b via ConsCombine, producing the
// union of base units with exponents combined wherever both vectors
// share a base. The result is unsorted; Canonicalize it before use.
func Merge(a, b Vector, combine Combiner) Vector {
	out := slices.Clone(b)
	for _, p := range a {
		out = ConsCombine(p, out, combine)
	}
	return out
}

// Concat appends the powers of b after those of a without combining.
// It is a building block, not a canonical-form producer.
func Concat(a, b Vector) Vector {
	out := make(Vector, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Raise multiplies every exponent in v by power, reduced.
func Raise(v Vector, power rational.Exponent) Vector {
	out := make(Vector, len(v))
	for i, p := range v {
		out[i] = Power{Base: p.Base, Exp: rational.Mul(p.Exp, power)}
	}
	return out
}

// NegateAll flips the sign of every exponent in v.
func NegateAll(v Vector) Vector {
	out := make(Vector, len(v))
	for i, p := range v {
		out[i] = Power{Base: p.Base, Exp: rational.Neg(p.Exp)}
	}
	return out
}

// Prune removes every power with a zero exponent.
func Prune(v Vector) Vector {
	out := make(Vector, 0, len(v))
	for _, p := range v {
		if !p.Exp.IsZero() {
			out = append(out, p)
		}
	}
	return out
}

// Canonicalize sorts v ascending by base-unit ID and prunes zero
// exponents, producing the canonical form used for structural
// equality. It must follow every Merge, Raise and NegateAll.
func Canonicalize(v Vector) Vector {
	out := slices.Clone(v)
	slices.SortFunc(out, func(a, b Power) int {
		switch {
		case a.Base < b.Base:
			return -1
		case a.Base > b.Base:
			return 1
		default:
			return 0
		}
	})
	return Prune(out)
}

// Remove deletes the (at most one) power for base from v. It is a
// no-op if base is absent.
func Remove(base baseunit.ID, v Vector) Vector {
	out := make(Vector, 0, len(v))
	for _, p := range v {
		if p.Base != base {
			out = append(out, p)
		}
	}
	return out
}
