package compvec

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/compvec/internal/shape"
)

// Elem constrains the buffer element type.
type Elem interface {
	constraints.Float
}

// Field is one (name, value) pair handed to the builder. Construct fields
// with Scalar, Arr and Nested.
type Field[T Elem] struct {
	name   string
	kind   RegionKind
	scalar T
	data   []T
	shape  []int
	nested *Vector[T]
}

// Scalar declares a single-element field holding v.
func Scalar[T Elem](name string, v T) Field[T] {
	return Field[T]{name: name, kind: KindScalar, scalar: v}
}

// Arr declares a fixed-shape array field initialized from data. With no
// explicit dims the field is one-dimensional of length len(data); otherwise
// the product of dims must equal len(data), checked at build time. data is
// copied into the new buffer, never aliased.
func Arr[T Elem](name string, data []T, dims ...int) Field[T] {
	if len(dims) == 0 {
		dims = []int{len(data)}
	}

	return Field[T]{name: name, kind: KindArray, data: data, shape: dims}
}

// Nested declares a field that is itself a composite vector. v's layout is
// reused by reference for the nested region; v's buffer is copied in.
func Nested[T Elem](name string, v *Vector[T]) Field[T] {
	return Field[T]{name: name, kind: KindNested, nested: v}
}

func (f Field[T]) extent() int {
	switch f.kind {
	case KindScalar:
		return 1
	case KindArray:
		return len(f.data)
	default:
		return f.nested.Len()
	}
}

// New builds a Vector from fields in declaration order: reject duplicate or
// empty field sets, prefix-sum extents into regions, allocate one buffer and
// copy every initial value in. Shorthand for NewBuilder().Add(...).Build()
// with no options.
func New[T Elem](fields ...Field[T]) (*Vector[T], error) {
	return NewBuilder[T]().Add(fields...).Build()
}

// Builder accumulates fields and options for a Vector construction.
//
//	v, err := compvec.NewBuilder[float64](compvec.WithLogger(l)).
//	    Scalar("mass", 2.5).
//	    Arr("position", []float64{0, 0, 0}).
//	    Build()
type Builder[T Elem] struct {
	fields []Field[T]
	opts   options
}

// NewBuilder creates an empty Builder.
func NewBuilder[T Elem](opts ...Option) *Builder[T] {
	b := &Builder[T]{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&b.opts)
	}

	return b
}

// Scalar appends a scalar field.
func (b *Builder[T]) Scalar(name string, v T) *Builder[T] {
	return b.Add(Scalar(name, v))
}

// Arr appends an array field.
func (b *Builder[T]) Arr(name string, data []T, dims ...int) *Builder[T] {
	return b.Add(Arr(name, data, dims...))
}

// Nested appends a nested composite field.
func (b *Builder[T]) Nested(name string, v *Vector[T]) *Builder[T] {
	return b.Add(Nested(name, v))
}

// Add appends pre-constructed fields.
func (b *Builder[T]) Add(fields ...Field[T]) *Builder[T] {
	b.fields = append(b.fields, fields...)
	return b
}

// Build computes the layout, allocates the buffer and writes every initial
// value. Nothing externally observable is published on failure.
func (b *Builder[T]) Build() (*Vector[T], error) {
	if len(b.fields) == 0 {
		return nil, ErrEmptyFields
	}

	logger := b.opts.logger

	names := make([]string, 0, len(b.fields))
	regions := make([]Region, 0, len(b.fields))
	seen := make(map[string]struct{}, len(b.fields))

	offset := 0
	for _, f := range b.fields {
		if _, dup := seen[f.name]; dup {
			return nil, &ErrDuplicateField{Name: f.name}
		}
		seen[f.name] = struct{}{}

		if f.kind == KindArray && shape.Size(f.shape) != len(f.data) {
			return nil, &ErrShapeMismatch{Want: f.shape, Got: []int{len(f.data)}}
		}

		start, end := offset, offset+f.extent()
		offset = end

		r := Region{Kind: f.kind, Start: start, End: end}
		switch f.kind {
		case KindArray:
			// Own the dims so a caller mutating its slice cannot skew the
			// frozen layout.
			r.Shape = append([]int(nil), f.shape...)
		case KindNested:
			r.Inner = f.nested.layout
		}

		logger.Debug("field placed",
			"name", f.name,
			"kind", f.kind.String(),
			"start", start,
			"end", end,
		)

		names = append(names, f.name)
		regions = append(regions, r)
	}

	buf := make([]T, offset)
	for i, f := range b.fields {
		dst := buf[regions[i].Start:regions[i].End]
		switch f.kind {
		case KindScalar:
			dst[0] = f.scalar
		case KindArray:
			copy(dst, f.data)
		case KindNested:
			copy(dst, f.nested.data)
		}
	}

	logger.Debug("layout built", "fields", len(names), "length", offset)

	return &Vector[T]{data: buf, layout: newLayout(names, regions)}, nil
}

// NamedValue is one dynamically typed (name, value) pair for FromValues.
type NamedValue struct {
	Name  string
	Value any
}

// Val constructs a NamedValue.
func Val(name string, value any) NamedValue {
	return NamedValue{Name: name, Value: value}
}

// FromValues builds a float64-backed Vector from dynamically typed values,
// promoting every numeric input to the common element type float64. Accepted
// value kinds: Go integer and float scalars, []float64, []float32, []int,
// and nested *Vector[float64]. Anything else fails wrapping
// ErrNonNumericValue. Use FromValues32 for a float32-only field set.
func FromValues(values ...NamedValue) (*Vector[float64], error) {
	fields := make([]Field[float64], 0, len(values))
	for _, nv := range values {
		f, err := promoteValue(nv)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return New(fields...)
}

func promoteValue(nv NamedValue) (Field[float64], error) {
	switch v := nv.Value.(type) {
	case float64:
		return Scalar(nv.Name, v), nil
	case float32:
		return Scalar(nv.Name, float64(v)), nil
	case int:
		return Scalar(nv.Name, float64(v)), nil
	case int8:
		return Scalar(nv.Name, float64(v)), nil
	case int16:
		return Scalar(nv.Name, float64(v)), nil
	case int32:
		return Scalar(nv.Name, float64(v)), nil
	case int64:
		return Scalar(nv.Name, float64(v)), nil
	case uint:
		return Scalar(nv.Name, float64(v)), nil
	case []float64:
		return Arr(nv.Name, v), nil
	case []float32:
		data := make([]float64, len(v))
		for i, x := range v {
			data[i] = float64(x)
		}
		return Arr(nv.Name, data), nil
	case []int:
		data := make([]float64, len(v))
		for i, x := range v {
			data[i] = float64(x)
		}
		return Arr(nv.Name, data), nil
	case *Vector[float64]:
		return Nested(nv.Name, v), nil
	default:
		return Field[float64]{}, fmt.Errorf("field %q: %w (%T)", nv.Name, ErrNonNumericValue, nv.Value)
	}
}

// FromValues32 is FromValues for a float32 element type. All inputs must
// already be float32-representable kinds: float32 scalars, []float32,
// integer scalars, []int or nested *Vector[float32]. float64 inputs are
// rejected rather than narrowed.
func FromValues32(values ...NamedValue) (*Vector[float32], error) {
	fields := make([]Field[float32], 0, len(values))
	for _, nv := range values {
		switch v := nv.Value.(type) {
		case float32:
			fields = append(fields, Scalar(nv.Name, v))
		case int:
			fields = append(fields, Scalar(nv.Name, float32(v)))
		case []float32:
			fields = append(fields, Arr(nv.Name, v))
		case []int:
			data := make([]float32, len(v))
			for i, x := range v {
				data[i] = float32(x)
			}
			fields = append(fields, Arr(nv.Name, data))
		case *Vector[float32]:
			fields = append(fields, Nested(nv.Name, v))
		default:
			return nil, fmt.Errorf("field %q: %w (%T)", nv.Name, ErrNonNumericValue, nv.Value)
		}
	}

	return New(fields...)
}
