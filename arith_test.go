package compvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScale(t *testing.T) {
	t.Run("PreservesFieldPartition", func(t *testing.T) {
		v, err := New(Arr("a", []float64{1}), Arr("b", []float64{5, 3}))
		require.NoError(t, err)

		w := Scale(2.0, v)
		assert.True(t, w.EqualSlice([]float64{2, 10, 6}))

		b, err := w.Slice("b")
		require.NoError(t, err)
		assert.Equal(t, []float64{10, 6}, b)

		// operand untouched
		assert.True(t, v.EqualSlice([]float64{1, 5, 3}))
	})

	t.Run("ScalesScalarFieldsToo", func(t *testing.T) {
		v, err := New(Arr("a", []float64{1}), Arr("b", []float64{2, 3}), Scalar("c", 4.0))
		require.NoError(t, err)

		w := Scale(2.0, v)
		assert.True(t, w.EqualSlice([]float64{2, 4, 6, 8}))

		c, err := w.Scalar("c")
		require.NoError(t, err)
		assert.Equal(t, 8.0, c)
	})

	t.Run("InPlace", func(t *testing.T) {
		v, err := New(Scalar("a", 1.0), Arr("b", []float64{2, 3}))
		require.NoError(t, err)

		ScaleInPlace(3.0, v)
		assert.True(t, v.EqualSlice([]float64{3, 6, 9}))
	})

	t.Run("Float32", func(t *testing.T) {
		v, err := New(Arr("a", []float32{1, 2}))
		require.NoError(t, err)

		w := Scale[float32](2, v)
		assert.True(t, w.EqualSlice([]float32{2, 4}))
	})
}

func TestAdd(t *testing.T) {
	t.Run("IdenticalLayouts", func(t *testing.T) {
		a, err := New(Scalar("x", 1.0), Arr("y", []float64{2, 3}))
		require.NoError(t, err)

		b, err := New(Scalar("x", 10.0), Arr("y", []float64{20, 30}))
		require.NoError(t, err)

		sum, err := Add(a, b)
		require.NoError(t, err)

		assert.True(t, sum.EqualSlice([]float64{11, 22, 33}))

		y, err := sum.Slice("y")
		require.NoError(t, err)
		assert.Equal(t, []float64{22, 33}, y)
	})

	t.Run("DifferentOrderRejected", func(t *testing.T) {
		a, err := New(Scalar("x", 1.0), Scalar("y", 2.0))
		require.NoError(t, err)

		b, err := New(Scalar("y", 2.0), Scalar("x", 1.0))
		require.NoError(t, err)

		_, err = Add(a, b)
		var incompatible *ErrIncompatibleLayout
		require.ErrorAs(t, err, &incompatible)
		assert.Equal(t, 0, incompatible.Index)
		assert.Equal(t, "x", incompatible.Want)
		assert.Equal(t, "y", incompatible.Got)
	})

	t.Run("DifferentNameSetsRejected", func(t *testing.T) {
		a, err := New(Scalar("x", 1.0))
		require.NoError(t, err)

		b, err := New(Scalar("x", 1.0), Scalar("y", 2.0))
		require.NoError(t, err)

		_, err = Add(a, b)
		var incompatible *ErrIncompatibleLayout
		require.ErrorAs(t, err, &incompatible)
		assert.Equal(t, 1, incompatible.Index)
		assert.Equal(t, "", incompatible.Want)
		assert.Equal(t, "y", incompatible.Got)
	})

	t.Run("SameNamesDifferentExtentsRejected", func(t *testing.T) {
		a, err := New(Arr("x", []float64{1, 2}), Arr("y", []float64{3}))
		require.NoError(t, err)

		b, err := New(Arr("x", []float64{1, 2, 3}), Arr("y", []float64{4}))
		require.NoError(t, err)

		_, err = Add(a, b)
		var size *ErrSizeMismatch
		require.ErrorAs(t, err, &size)
	})

	t.Run("InPlace", func(t *testing.T) {
		a, err := New(Scalar("x", 1.0), Arr("y", []float64{2, 3}))
		require.NoError(t, err)

		require.NoError(t, AddInPlace(a, a.Clone()))
		assert.True(t, a.EqualSlice([]float64{2, 4, 6}))
	})
}
