package unitgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/baseunit"
	"github.com/hupe1980/unitgo/dimension"
)

func TestSemanticCast(t *testing.T) {
	t.Run("reinterprets tag only", func(t *testing.T) {
		w := MustNew(3.0, 10, semWidth, meters)

		got, err := w.SemanticCast(semDepth)
		require.NoError(t, err)
		assert.True(t, got.Semantic().Equal(semDepth))
		assert.True(t, got.Units().Equal(meters))
		assert.Equal(t, 3.0, got.Value())
		assert.Equal(t, uint64(10), got.Scale())
	})

	t.Run("to untagged", func(t *testing.T) {
		w := MustNew(3.0, 1, semWidth, meters)

		got, err := w.SemanticCast(nil)
		require.NoError(t, err)
		assert.True(t, got.Semantic().IsEmpty())
	})

	t.Run("rejects non-canonical target", func(t *testing.T) {
		w := MustNew(3.0, 1, semWidth, meters)
		dup := dimension.Vector{
			dimension.Base(widthID),
			dimension.Base(widthID),
		}

		_, err := w.SemanticCast(dup)
		var nc *ErrNonCanonicalDimension
		require.ErrorAs(t, err, &nc)
		assert.Equal(t, "semantic", nc.Vector)
	})
}

func TestUnitCast(t *testing.T) {
	feet := dimension.Of(dimension.Base(baseunit.Register("feet")))

	t.Run("applies the conversion factor", func(t *testing.T) {
		m := MustNew(2.0, 1, nil, meters)

		got, err := m.UnitCast(feet, 3.28084)
		require.NoError(t, err)
		assert.True(t, got.Units().Equal(feet))
		assert.InDelta(t, 6.56168, got.Value(), 1e-9)
		assert.Equal(t, uint64(1), got.Scale())
	})

	t.Run("factor one reinterprets in place", func(t *testing.T) {
		m := MustNew(2.0, 1, semWidth, meters)

		got, err := m.UnitCast(feet, 1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, got.Value())
		assert.True(t, got.Semantic().Equal(semWidth))
	})

	t.Run("rejects non-canonical target", func(t *testing.T) {
		m := MustNew(2.0, 1, nil, meters)
		unsorted := dimension.Vector{
			dimension.Base(secondsID),
			dimension.Base(metersID),
		}

		_, err := m.UnitCast(unsorted, 1)
		var nc *ErrNonCanonicalDimension
		require.ErrorAs(t, err, &nc)
		assert.Equal(t, "units", nc.Vector)
	})
}
