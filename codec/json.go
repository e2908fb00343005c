package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Use it when you want the most portable, lowest-dependency encoding
// of quantity snapshots. Decoded snapshots are re-validated against
// canonical form regardless of codec, so codec choice affects bytes,
// not correctness.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the codec used when none is configured.
//
// Snapshots always record the codec name, so changing the default
// never breaks decoding of existing bytes.
var Default Codec = GoJSON{}
