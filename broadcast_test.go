package compvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcast(t *testing.T) {
	t.Run("MixedOperands", func(t *testing.T) {
		v, err := New(Scalar("a", 1.0), Arr("b", []float64{2, 3}))
		require.NoError(t, err)

		// w = 2*v + s + 10
		w, err := Broadcast(func(args []float64) float64 {
			return 2*args[0] + args[1] + args[2]
		}, v, []float64{100, 200, 300}, 10.0)
		require.NoError(t, err)

		assert.True(t, w.EqualSlice([]float64{112, 214, 316}))

		// layout comes from the vector operand
		assert.Same(t, v.Layout(), w.Layout())

		b, err := w.Slice("b")
		require.NoError(t, err)
		assert.Equal(t, []float64{214, 316}, b)
	})

	t.Run("LayoutFromFirstVectorOperand", func(t *testing.T) {
		a, err := New(Scalar("x", 1.0), Scalar("y", 2.0))
		require.NoError(t, err)

		// same length, different field map: accepted, first layout wins
		b, err := New(Arr("p", []float64{10, 20}))
		require.NoError(t, err)

		w, err := Broadcast(func(args []float64) float64 {
			return args[0] + args[1]
		}, a, b)
		require.NoError(t, err)

		assert.Same(t, a.Layout(), w.Layout())
		assert.True(t, w.EqualSlice([]float64{11, 22}))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		v, err := New(Arr("a", []float64{1, 2}))
		require.NoError(t, err)

		_, err = Broadcast(func(args []float64) float64 {
			return args[0] + args[1]
		}, v, []float64{1, 2, 3})
		var size *ErrSizeMismatch
		require.ErrorAs(t, err, &size)
		assert.Equal(t, 2, size.Want)
		assert.Equal(t, 3, size.Got)
	})

	t.Run("UnsupportedOperand", func(t *testing.T) {
		v, err := New(Arr("a", []float64{1, 2}))
		require.NoError(t, err)

		_, err = Broadcast(func(args []float64) float64 {
			return args[0]
		}, v, "nope")
		require.ErrorIs(t, err, ErrNonNumericValue)
	})

	t.Run("NoVectorOperand", func(t *testing.T) {
		_, err := Broadcast(func(args []float64) float64 {
			return args[0]
		}, []float64{1, 2})
		require.Error(t, err)
	})
}

func TestBroadcastInto(t *testing.T) {
	t.Run("FieldViewAsDestination", func(t *testing.T) {
		v, err := New(Scalar("a", 1.0), Arr("b", []float64{2, 3}))
		require.NoError(t, err)

		b, err := v.Slice("b")
		require.NoError(t, err)

		// b += [10, 20], writing straight into v's buffer
		err = BroadcastInto(b, func(args []float64) float64 {
			return args[0] + args[1]
		}, b, []float64{10, 20})
		require.NoError(t, err)

		assert.True(t, v.EqualSlice([]float64{1, 12, 23}))
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		dst := make([]float64, 2)
		err := BroadcastInto(dst, func(args []float64) float64 {
			return args[0]
		}, []float64{1, 2, 3})
		var size *ErrSizeMismatch
		require.ErrorAs(t, err, &size)
	})
}
