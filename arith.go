package compvec

import (
	"github.com/hupe1980/compvec/internal/numeric"
)

// Scale returns c*v elementwise over a fresh buffer. The result shares v's
// layout by reference, so every field of the result is the scaled field of
// the operand.
func Scale[T Elem](c T, v *Vector[T]) *Vector[T] {
	data := make([]T, len(v.data))
	numeric.ScaleTo(data, c, v.data)

	return &Vector[T]{data: data, layout: v.layout}
}

// ScaleInPlace multiplies all elements of v by c, field views included.
func ScaleInPlace[T Elem](c T, v *Vector[T]) {
	numeric.Scale(c, v.data)
}

// Add returns a+b elementwise over a fresh buffer. The operands must declare
// identical field name sets in identical order and equal lengths; the result
// takes a's layout, guaranteed structurally equal to b's by the check.
func Add[T Elem](a, b *Vector[T]) (*Vector[T], error) {
	if err := a.layout.sameFields(b.layout); err != nil {
		return nil, err
	}
	if a.Len() != b.Len() {
		return nil, &ErrSizeMismatch{Want: a.Len(), Got: b.Len()}
	}

	data := make([]T, len(a.data))
	numeric.AddTo(data, a.data, b.data)

	return &Vector[T]{data: data, layout: a.layout}, nil
}

// AddInPlace adds x into dst elementwise, writing through dst's buffer. The
// same layout compatibility rules as Add apply.
func AddInPlace[T Elem](dst, x *Vector[T]) error {
	if err := dst.layout.sameFields(x.layout); err != nil {
		return err
	}
	if dst.Len() != x.Len() {
		return &ErrSizeMismatch{Want: dst.Len(), Got: x.Len()}
	}

	numeric.Add(dst.data, x.data)

	return nil
}
