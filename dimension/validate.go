package dimension

import "fmt"

// Canonical-form violations reported by Validate.
const (
	ReasonUnsorted    = "entries not sorted by base-unit id"
	ReasonDuplicate   = "duplicate base unit"
	ReasonZero        = "zero exponent"
	ReasonUnreduced   = "exponent not in lowest terms"
	ReasonInvalidBase = "invalid base-unit id"
)

// ErrNotCanonical indicates a vector that violates canonical form.
type ErrNotCanonical struct {
	// Reason is one of the Reason* constants.
	Reason string

	// Index is the offending entry.
	Index int
}

func (e *ErrNotCanonical) Error() string {
	return fmt.Sprintf("dimension vector not canonical: %s (entry %d)", e.Reason, e.Index)
}

// Validate checks the canonical-form invariant: sorted ascending by
// base-unit ID, no duplicate base units, no zero exponents, all
// exponents in lowest terms. The empty vector is canonical.
func Validate(v Vector) error {
	for i, p := range v {
		if p.Base == 0 {
			return &ErrNotCanonical{Reason: ReasonInvalidBase, Index: i}
		}
		if !p.Exp.Reduced() {
			return &ErrNotCanonical{Reason: ReasonUnreduced, Index: i}
		}
		if p.Exp.IsZero() {
			return &ErrNotCanonical{Reason: ReasonZero, Index: i}
		}
		if i > 0 {
			switch {
			case p.Base == v[i-1].Base:
				return &ErrNotCanonical{Reason: ReasonDuplicate, Index: i}
			case p.Base < v[i-1].Base:
				return &ErrNotCanonical{Reason: ReasonUnsorted, Index: i}
			}
		}
	}
	return nil
}
