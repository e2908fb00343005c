package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value float64 `json:"value"`
	Scale uint64  `json:"scale"`
}

func TestByName(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		c, ok := ByName("json")
		require.True(t, ok)
		assert.Equal(t, "json", c.Name())
	})

	t.Run("go-json", func(t *testing.T) {
		c, ok := ByName("go-json")
		require.True(t, ok)
		assert.Equal(t, "go-json", c.Name())
	})

	t.Run("unknown", func(t *testing.T) {
		_, ok := ByName("msgpack")
		assert.False(t, ok)
	})
}

func TestCodecsAreWireCompatible(t *testing.T) {
	in := payload{Value: 12.5, Scale: 1000}

	stdlib := MustMarshal(JSON{}, in)
	goccy := MustMarshal(GoJSON{}, in)
	assert.JSONEq(t, string(stdlib), string(goccy))

	var out payload
	require.NoError(t, JSON{}.Unmarshal(goccy, &out))
	assert.Equal(t, in, out)

	out = payload{}
	require.NoError(t, GoJSON{}.Unmarshal(stdlib, &out))
	assert.Equal(t, in, out)
}

func TestMustMarshalNilCodecUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		MustMarshal(nil, payload{Value: 1})
	})
}
