package unitgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/rational"
)

func dist(value float64, semantic dimension.Vector) Quantity[float64] {
	return MustNew(value, 1, semantic, meters)
}

func TestMul(t *testing.T) {
	t.Run("dimensions multiply", func(t *testing.T) {
		a := dist(20, semLength)
		b := dist(10, semWidth)

		got := a.Mul(b)
		assert.True(t, got.Units().Equal(meters2))
		assert.True(t, got.Semantic().Equal(dimension.Of(
			dimension.Base(lengthID), dimension.Base(widthID),
		)))
		assert.Equal(t, 200.0, got.Value())
	})

	t.Run("scales multiply and payload stays exact in base scale", func(t *testing.T) {
		a := MustNew(2.0, 10, nil, meters)
		b := MustNew(3.0, 100, nil, meters)

		got := a.Mul(b)
		assert.Equal(t, uint64(1000), got.Scale())
		assert.Equal(t, 6.0, got.Value())
		// (2*10) * (3*100) == 6 * 1000
		assert.Equal(t, a.InBaseScale()*b.InBaseScale(), got.InBaseScale())
	})

	t.Run("full cancellation degrades to scalar", func(t *testing.T) {
		m := MustNew(6.0, 1, nil, meters)
		perM := MustNew(0.5, 1, nil, dimension.Of(
			dimension.Pow(metersID, rational.Int(-1)),
		))

		got := m.Mul(perM)
		assert.True(t, got.IsDimensionless())
		assert.True(t, got.Semantic().IsEmpty())

		v, err := got.Scalar()
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	})

	t.Run("cancellation accounts for scales", func(t *testing.T) {
		km := MustNew(2.0, 1000, nil, meters)
		perM := MustNew(3.0, 1, nil, dimension.Of(
			dimension.Pow(metersID, rational.Int(-1)),
		))

		v, err := km.Mul(perM).Scalar()
		require.NoError(t, err)
		assert.Equal(t, 6000.0, v)
	})

	t.Run("exponents add for shared bases", func(t *testing.T) {
		a := MustNew(2.0, 1, nil, meters2)
		b := MustNew(3.0, 1, nil, meters3)
		got := a.Mul(b)
		assert.True(t, got.Units().Equal(dimension.Of(
			dimension.Pow(metersID, rational.Int(5)),
		)))
	})
}

func TestDiv(t *testing.T) {
	t.Run("volume over depth is an area", func(t *testing.T) {
		x := dist(20, semLength)
		y := dist(10, semWidth)
		z := dist(5, semDepth)

		vol := x.Mul(y).Mul(z)
		require.True(t, vol.Units().Equal(meters3))

		area := vol.Div(dist(7, semDepth))
		assert.True(t, area.Units().Equal(meters2))
		assert.True(t, area.Semantic().Equal(dimension.Of(
			dimension.Base(lengthID), dimension.Base(widthID),
		)))
		assert.InDelta(t, 1000.0/7, area.Value(), 1e-9)
	})

	t.Run("same dimension cancels to scalar", func(t *testing.T) {
		a := dist(10, nil)
		b := dist(4, nil)

		got := a.Div(b)
		assert.True(t, got.IsDimensionless())
		v, err := got.Scalar()
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
	})
}

func TestReciprocal(t *testing.T) {
	q := MustNew(4.0, 1, semDepth, meters)
	r := q.Reciprocal()

	assert.Equal(t, 0.25, r.Value())
	assert.True(t, r.Units().Equal(dimension.Of(
		dimension.Pow(metersID, rational.Int(-1)),
	)))
	assert.True(t, r.Semantic().Equal(dimension.Of(
		dimension.Pow(depthID, rational.Int(-1)),
	)))
}

func TestAdd(t *testing.T) {
	t.Run("same units and scale", func(t *testing.T) {
		got, err := dist(1, nil).Add(dist(2, nil))
		require.NoError(t, err)
		assert.Equal(t, 3.0, got.Value())
	})

	t.Run("rescales right operand", func(t *testing.T) {
		m := MustNew(500.0, 1, nil, meters)
		km := MustNew(2.0, 1000, nil, meters)

		got, err := m.Add(km)
		require.NoError(t, err)
		assert.Equal(t, 2500.0, got.Value())
		assert.Equal(t, uint64(1), got.Scale())
	})

	t.Run("tagged plus untagged succeeds", func(t *testing.T) {
		w := MustNew(3.0, 1, semWidth, meters)
		free := MustNew(2.0, 1000, nil, meters)

		got, err := w.Add(free)
		require.NoError(t, err)
		assert.Equal(t, 2003.0, got.Value())
		assert.True(t, got.Semantic().Equal(semWidth))
	})

	t.Run("width plus depth fails", func(t *testing.T) {
		w := dist(1, semWidth)
		d := dist(1, semDepth)

		_, err := w.Add(d)
		var is *ErrIncompatibleSemantics
		assert.ErrorAs(t, err, &is)
	})

	t.Run("different units fail", func(t *testing.T) {
		m := MustNew(1.0, 1, nil, meters)
		s := MustNew(1.0, 1, nil, seconds)

		_, err := m.Add(s)
		var dm *ErrDimensionMismatch
		assert.ErrorAs(t, err, &dm)
	})
}

func TestSub(t *testing.T) {
	m := MustNew(2500.0, 1, nil, meters)
	km := MustNew(2.0, 1000, nil, meters)

	got, err := m.Sub(km)
	require.NoError(t, err)
	assert.Equal(t, 500.0, got.Value())

	t.Run("semantic mismatch", func(t *testing.T) {
		_, err := dist(1, semWidth).Sub(dist(1, semDepth))
		var is *ErrIncompatibleSemantics
		assert.ErrorAs(t, err, &is)
	})
}

func TestScalarOps(t *testing.T) {
	q := MustNew(6.0, 1000, semWidth, meters)

	t.Run("MulScalar", func(t *testing.T) {
		got := q.MulScalar(2)
		assert.Equal(t, 12.0, got.Value())
		assert.Equal(t, q.Scale(), got.Scale())
		assert.True(t, got.Units().Equal(q.Units()))
	})

	t.Run("DivScalar", func(t *testing.T) {
		assert.Equal(t, 3.0, q.DivScalar(2).Value())
	})

	t.Run("AddScalar is a raw offset", func(t *testing.T) {
		got := q.AddScalar(1)
		assert.Equal(t, 7.0, got.Value())
		assert.Equal(t, q.Scale(), got.Scale())
	})

	t.Run("SubScalar", func(t *testing.T) {
		assert.Equal(t, 5.0, q.SubScalar(1).Value())
	})
}

func TestPow(t *testing.T) {
	t.Run("fractional power of meters", func(t *testing.T) {
		q := MustNew(8.0, 1, nil, meters)

		got, err := Pow(q, 2, 3)
		require.NoError(t, err)
		assert.True(t, got.Units().Equal(dimension.Of(
			dimension.Pow(metersID, rational.MustNew(2, 3)),
		)))
		assert.Equal(t, uint64(1), got.Scale())
		assert.InDelta(t, 4.0, got.Value(), 1e-9) // 8^(2/3)
	})

	t.Run("computes in base scale", func(t *testing.T) {
		km := MustNew(2.0, 1000, nil, meters)

		got, err := Pow(km, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got.Scale())
		assert.InDelta(t, 4e6, got.Value(), 1e-6)
		assert.True(t, got.Units().Equal(meters2))
	})

	t.Run("square root", func(t *testing.T) {
		area := MustNew(9.0, 1, nil, meters2)

		got, err := Pow(area, 1, 2)
		require.NoError(t, err)
		assert.True(t, got.Units().Equal(meters))
		assert.InDelta(t, 3.0, got.Value(), 1e-9)
	})

	t.Run("zero power cancels dimension", func(t *testing.T) {
		q := MustNew(5.0, 1, semWidth, meters)

		got, err := Pow(q, 0, 1)
		require.NoError(t, err)
		assert.True(t, got.IsDimensionless())
		assert.True(t, got.Semantic().IsEmpty())
		assert.InDelta(t, 1.0, got.Value(), 1e-12)
	})

	t.Run("semantic vector is raised too", func(t *testing.T) {
		q := dist(2, semWidth)

		got, err := Pow(q, 2, 1)
		require.NoError(t, err)
		assert.True(t, got.Semantic().Equal(dimension.Of(
			dimension.Pow(widthID, rational.Int(2)),
		)))
	})

	t.Run("invalid denominator", func(t *testing.T) {
		q := dist(2, nil)

		_, err := Pow(q, 1, 0)
		var ie *ErrInvalidExponent
		require.ErrorAs(t, err, &ie)
		assert.ErrorIs(t, err, rational.ErrZeroDenominator)

		_, err = Pow(q, 1, -2)
		assert.ErrorAs(t, err, &ie)
	})

	t.Run("negative power inverts", func(t *testing.T) {
		q := dist(4, nil)

		got, err := Pow(q, -1, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, got.Value(), 1e-12)
		assert.True(t, got.Units().Equal(dimension.Of(
			dimension.Pow(metersID, rational.Int(-1)),
		)))
	})

	t.Run("integer payloads are promoted", func(t *testing.T) {
		q := MustNew(int64(9), 1, nil, meters2)

		got, err := Pow(q, 1, 2)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, got.Value(), 1e-9)
		assert.IsType(t, float64(0), got.Value())
	})
}

func TestPowMatchesMath(t *testing.T) {
	q := MustNew(2.5, 10, nil, meters)
	got, err := Pow(q, 3, 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(25, 1.5), got.Value(), 1e-9)
}
