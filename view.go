package compvec

import (
	"fmt"

	"github.com/hupe1980/compvec/internal/shape"
)

// View is one field's typed window into the owning buffer. Reads never copy:
// the view's slice aliases the owner's storage, so mutating it mutates the
// owner in place. A view is valid only while the owner lives and its buffer
// has not been replaced.
type View[T Elem] struct {
	kind  RegionKind
	data  []T
	shape []int
	inner *Layout
}

// materialize is the single read transform: slice the buffer to the region's
// range and tag it with the region's kind.
func materialize[T Elem](r Region, buf []T) View[T] {
	return View[T]{
		kind:  r.Kind,
		data:  buf[r.Start:r.End],
		shape: r.Shape,
		inner: r.Inner,
	}
}

// Kind returns the view's region kind.
func (v View[T]) Kind() RegionKind { return v.kind }

// Slice returns the view's flat backing slice, aliasing the owner's buffer.
// Valid for every kind; for scalars it has length 1.
func (v View[T]) Slice() []T { return v.data }

// Scalar returns the element of a scalar view. It panics on any other kind;
// use Kind to dispatch when the field shape is not known statically.
func (v View[T]) Scalar() T {
	if v.kind != KindScalar {
		panic(fmt.Sprintf("compvec: Scalar on %s view", v.kind))
	}

	return v.data[0]
}

// Shape returns the dimensions of an array view. Scalar views report an
// empty shape, nested views their flat length.
func (v View[T]) Shape() []int {
	switch v.kind {
	case KindArray:
		return v.shape
	case KindNested:
		return []int{len(v.data)}
	default:
		return nil
	}
}

// Array returns the reshaped accessor of an array view. The accessor aliases
// the owner's buffer. Panics on non-array kinds.
func (v View[T]) Array() *Array[T] {
	if v.kind != KindArray {
		panic(fmt.Sprintf("compvec: Array on %s view", v.kind))
	}

	return &Array[T]{data: v.data, shape: v.shape, strides: shape.Strides(v.shape)}
}

// Vector returns the nested composite of a nested view. Its buffer is the
// aliasing slice, its layout the region's inner layout shared by reference.
// Panics on non-nested kinds.
func (v View[T]) Vector() *Vector[T] {
	if v.kind != KindNested {
		panic(fmt.Sprintf("compvec: Vector on %s view", v.kind))
	}

	return &Vector[T]{data: v.data, layout: v.inner}
}

// assign is the single write transform: route value into the region's slice
// of buf according to the region's kind.
func assign[T Elem](r Region, buf []T, value any) error {
	dst := buf[r.Start:r.End]

	switch r.Kind {
	case KindScalar:
		x, ok := value.(T)
		if !ok {
			return fmt.Errorf("scalar field: %w (%T)", ErrNonNumericValue, value)
		}
		dst[0] = x

		return nil

	case KindArray:
		switch src := value.(type) {
		case T: // scalar broadcast fill
			for i := range dst {
				dst[i] = src
			}
			return nil
		case []T:
			if len(src) != len(dst) {
				return &ErrShapeMismatch{Want: r.Shape, Got: []int{len(src)}}
			}
			copy(dst, src)
			return nil
		case *Array[T]:
			if !shape.Equal(src.shape, r.Shape) {
				return &ErrShapeMismatch{Want: r.Shape, Got: src.shape}
			}
			copy(dst, src.data)
			return nil
		default:
			return fmt.Errorf("array field: %w (%T)", ErrNonNumericValue, value)
		}

	default: // KindNested
		switch src := value.(type) {
		case *Vector[T]:
			if src.Len() != len(dst) {
				return &ErrShapeMismatch{Want: []int{len(dst)}, Got: []int{src.Len()}}
			}
			copy(dst, src.data)
			return nil
		case []T:
			if len(src) != len(dst) {
				return &ErrShapeMismatch{Want: []int{len(dst)}, Got: []int{len(src)}}
			}
			copy(dst, src)
			return nil
		default:
			return fmt.Errorf("nested field: %w (%T)", ErrNonNumericValue, value)
		}
	}
}

// Array is a fixed-shape, row-major accessor over an aliasing slice. Element
// writes land in the owning Vector's buffer.
type Array[T Elem] struct {
	data    []T
	shape   []int
	strides []int
}

// Shape returns the array's dimensions.
func (a *Array[T]) Shape() []int { return a.shape }

// Slice returns the flat backing slice, aliasing the owner's buffer.
func (a *Array[T]) Slice() []T { return a.data }

// At returns the element at the given multi-dimensional index. Panics if the
// index is invalid for the shape.
func (a *Array[T]) At(index ...int) T {
	off, ok := shape.Offset(a.shape, a.strides, index)
	if !ok {
		panic(fmt.Sprintf("compvec: index %v invalid for shape %v", index, a.shape))
	}

	return a.data[off]
}

// Set writes the element at the given multi-dimensional index through to the
// owner's buffer. Panics if the index is invalid for the shape.
func (a *Array[T]) Set(x T, index ...int) {
	off, ok := shape.Offset(a.shape, a.strides, index)
	if !ok {
		panic(fmt.Sprintf("compvec: index %v invalid for shape %v", index, a.shape))
	}

	a.data[off] = x
}
