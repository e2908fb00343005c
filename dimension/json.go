package dimension

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/rational"
)

// powerJSON is the wire form of a single power.
type powerJSON struct {
	Base uint64 `json:"base"`
	Num  int64  `json:"num"`
	Den  int64  `json:"den"`
}

// MarshalJSON encodes the vector as an array of {base, num, den}
// objects in canonical order.
func (v Vector) MarshalJSON() ([]byte, error) {
	wire := make([]powerJSON, len(v))
	for i, p := range v {
		wire[i] = powerJSON{Base: uint64(p.Base), Num: p.Exp.Num, Den: p.Exp.Den}
	}
	return gojson.Marshal(wire)
}

// UnmarshalJSON decodes and re-validates canonical form. Persisted
// bytes are untrusted: a snapshot edited by hand (or written by a
// different implementation) must not smuggle a non-canonical vector
// into the algebra.
func (v *Vector) UnmarshalJSON(data []byte) error {
	var wire []powerJSON
	if err := gojson.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := make(Vector, len(wire))
	for i, p := range wire {
		exp, err := rational.New(p.Num, p.Den)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if exp.Num != p.Num || exp.Den != p.Den {
			return &ErrNotCanonical{Reason: ReasonUnreduced, Index: i}
		}
		out[i] = Power{Base: baseunit.ID(p.Base), Exp: exp}
	}

	if err := Validate(out); err != nil {
		return err
	}

	*v = out
	return nil
}
