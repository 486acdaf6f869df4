package compvec

import (
	"fmt"
	"strings"

	"github.com/hupe1980/compvec/internal/numeric"
)

// Vector pairs one contiguous buffer with one Layout. It satisfies two
// protocols over the same storage: the flat sequence (Len, At, SetAt,
// arithmetic) and the named record (Field, SetField and the typed
// shorthands). The buffer is exclusively owned; the layout is immutable and
// freely shared with derived vectors.
type Vector[T Elem] struct {
	data   []T
	layout *Layout
}

// Raw wraps data under a layout assembled from names and regions, without
// validating that the regions partition the buffer.
//
// This is an unsafe escape hatch for low-level construction; regions that do
// not partition data produce a vector with undefined field behavior. It is
// not meant for untrusted input. Ownership of data transfers to the returned
// vector. names and regions are parallel, in declaration order.
func Raw[T Elem](data []T, names []string, regions []Region) *Vector[T] {
	return &Vector[T]{data: data, layout: newLayout(names, regions)}
}

// Retag wraps an existing flat sequence as a Vector under layout, taking
// ownership of data: the caller must not mutate data through its original
// reference while the returned vector is in use. Fails if the layout's total
// extent and len(data) differ.
func Retag[T Elem](layout *Layout, data []T) (*Vector[T], error) {
	if layout.Len() != len(data) {
		return nil, &ErrLengthMismatch{Layout: layout.Len(), Buffer: len(data)}
	}

	return &Vector[T]{data: data, layout: layout}, nil
}

// Len returns the buffer length, equal to the sum of all field extents.
func (v *Vector[T]) Len() int { return len(v.data) }

// Layout returns the vector's layout.
func (v *Vector[T]) Layout() *Layout { return v.layout }

// Data returns the flat buffer itself, aliasing, not a copy. It is the
// bridge to numeric code written against plain slices; writes through it are
// visible to every field view.
func (v *Vector[T]) Data() []T { return v.data }

// At returns the element at position i. Panics with *ErrIndexOutOfRange if i
// is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= len(v.data) {
		panic(&ErrIndexOutOfRange{Index: i, Len: len(v.data)})
	}

	return v.data[i]
}

// SetAt stores x at position i. Panics with *ErrIndexOutOfRange if i is
// outside [0, Len()).
func (v *Vector[T]) SetAt(i int, x T) {
	if i < 0 || i >= len(v.data) {
		panic(&ErrIndexOutOfRange{Index: i, Len: len(v.data)})
	}

	v.data[i] = x
}

// Field returns the named field's view. The view aliases this vector's
// buffer for its whole lifetime.
func (v *Vector[T]) Field(name string) (View[T], error) {
	r, ok := v.layout.Region(name)
	if !ok {
		return View[T]{}, &ErrUnknownField{Name: name}
	}

	return materialize(r, v.data), nil
}

// SetField writes value into the named field through its aliasing view.
// Scalars take a T; arrays take a T (broadcast fill), a []T of matching
// extent or an *Array with matching shape; nested fields take a *Vector or a
// flat []T of matching length.
func (v *Vector[T]) SetField(name string, value any) error {
	r, ok := v.layout.Region(name)
	if !ok {
		return &ErrUnknownField{Name: name}
	}

	return assign(r, v.data, value)
}

// Scalar returns the value of a scalar field. Panics if the field exists but
// is not scalar.
func (v *Vector[T]) Scalar(name string) (T, error) {
	view, err := v.Field(name)
	if err != nil {
		return 0, err
	}

	return view.Scalar(), nil
}

// Slice returns an array or nested field's flat aliasing slice.
func (v *Vector[T]) Slice(name string) ([]T, error) {
	view, err := v.Field(name)
	if err != nil {
		return nil, err
	}

	return view.Slice(), nil
}

// Sub returns a nested field as a Vector aliasing this vector's buffer.
// Panics if the field exists but is not nested.
func (v *Vector[T]) Sub(name string) (*Vector[T], error) {
	view, err := v.Field(name)
	if err != nil {
		return nil, err
	}

	return view.Vector(), nil
}

// Views returns one view per field in declaration order. O(number of
// fields); the buffer is not copied.
func (v *Vector[T]) Views() []View[T] {
	views := make([]View[T], 0, v.layout.NumFields())
	for _, name := range v.layout.names {
		r, _ := v.layout.Region(name)
		views = append(views, materialize(r, v.data))
	}

	return views
}

// Record returns the field views keyed by name.
func (v *Vector[T]) Record() map[string]View[T] {
	rec := make(map[string]View[T], v.layout.NumFields())
	for _, name := range v.layout.names {
		r, _ := v.layout.Region(name)
		rec[name] = materialize(r, v.data)
	}

	return rec
}

// Similar returns a new vector sharing this layout over a fresh zero buffer.
func (v *Vector[T]) Similar() *Vector[T] {
	return &Vector[T]{data: make([]T, len(v.data)), layout: v.layout}
}

// Clone returns a new vector sharing this layout over a copy of the buffer.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)

	return &Vector[T]{data: data, layout: v.layout}
}

// Equal reports elementwise equality of the two flat sequences. Layout
// contents are irrelevant: two vectors with different field maps over equal
// buffers are equal.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	return numeric.Equal(v.data, o.data)
}

// EqualSlice reports elementwise equality against a plain flat sequence.
func (v *Vector[T]) EqualSlice(s []T) bool {
	return numeric.Equal(v.data, s)
}

// String renders "<n>-element Vector[<type>]{name: view, ...}" with fields
// in declaration order.
func (v *Vector[T]) String() string {
	var zero T

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-element Vector[%T]{", len(v.data), zero)
	for i, name := range v.layout.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		r, _ := v.layout.Region(name)
		view := materialize(r, v.data)
		switch view.kind {
		case KindScalar:
			fmt.Fprintf(&sb, "%s: %v", name, view.data[0])
		case KindArray:
			fmt.Fprintf(&sb, "%s: %v", name, view.data)
		default:
			fmt.Fprintf(&sb, "%s: %s", name, view.Vector().String())
		}
	}
	sb.WriteString("}")

	return sb.String()
}
