package compvec

import (
	"fmt"
)

// Broadcast applies fn elementwise across a mix of vectors, plain slices and
// scalar operands. args passed to fn hold one element per operand, in
// operand order; scalars repeat at every position.
//
// All sequence-like operands must share one length. The result is a fresh
// buffer under the layout of the first vector operand in left-to-right
// order; layouts of any further vector operands are not cross-checked, the
// operands only need matching lengths. Callers that need the strict
// structural check use Add.
//
// At least one operand must be a *Vector; broadcasting over plain slices
// alone is the host array library's job, not this package's.
func Broadcast[T Elem](fn func(args []T) T, operands ...any) (*Vector[T], error) {
	length := -1
	var layout *Layout

	for _, op := range operands {
		switch o := op.(type) {
		case *Vector[T]:
			if layout == nil {
				layout = o.layout
			}
			if length >= 0 && o.Len() != length {
				return nil, &ErrSizeMismatch{Want: length, Got: o.Len()}
			}
			length = o.Len()
		case []T:
			if length >= 0 && len(o) != length {
				return nil, &ErrSizeMismatch{Want: length, Got: len(o)}
			}
			length = len(o)
		case T:
			// scalar, any length
		default:
			return nil, fmt.Errorf("broadcast operand: %w (%T)", ErrNonNumericValue, op)
		}
	}

	if layout == nil {
		return nil, fmt.Errorf("broadcast: %w: no vector operand", ErrEmptyFields)
	}

	data := make([]T, length)
	broadcastInto(data, fn, operands)

	return &Vector[T]{data: data, layout: layout}, nil
}

// BroadcastInto applies fn elementwise across operands, writing results into
// dst. Passing a field's aliasing slice as dst lands the writes directly in
// the owning vector's buffer with no reallocation. The same length rules as
// Broadcast apply, with dst setting the required length; vector operands are
// permitted but not required.
func BroadcastInto[T Elem](dst []T, fn func(args []T) T, operands ...any) error {
	for _, op := range operands {
		switch o := op.(type) {
		case *Vector[T]:
			if o.Len() != len(dst) {
				return &ErrSizeMismatch{Want: len(dst), Got: o.Len()}
			}
		case []T:
			if len(o) != len(dst) {
				return &ErrSizeMismatch{Want: len(dst), Got: len(o)}
			}
		case T:
		default:
			return fmt.Errorf("broadcast operand: %w (%T)", ErrNonNumericValue, op)
		}
	}

	broadcastInto(dst, fn, operands)

	return nil
}

func broadcastInto[T Elem](dst []T, fn func(args []T) T, operands []any) {
	args := make([]T, len(operands))
	for i := range dst {
		for j, op := range operands {
			switch o := op.(type) {
			case *Vector[T]:
				args[j] = o.data[i]
			case []T:
				args[j] = o[i]
			case T:
				args[j] = o
			}
		}
		dst[i] = fn(args)
	}
}
