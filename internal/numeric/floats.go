// Package numeric provides elementwise float kernels generic over the
// element type, with a float64 fast path delegating to gonum.
// This is an internal package - external users should use the compvec
// arithmetic functions.
package numeric

import (
	"golang.org/x/exp/constraints"

	"gonum.org/v1/gonum/floats"
)

// AddTo stores a+b elementwise into dst. All three slices must share one
// length.
func AddTo[T constraints.Float](dst, a, b []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.AddTo(d, any(a).([]float64), any(b).([]float64))
		return
	}

	addToGeneric(dst, a, b)
}

func addToGeneric[T constraints.Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Add adds s into dst elementwise.
func Add[T constraints.Float](dst, s []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Add(d, any(s).([]float64))
		return
	}

	for i := range dst {
		dst[i] += s[i]
	}
}

// ScaleTo stores c*s elementwise into dst.
func ScaleTo[T constraints.Float](dst []T, c T, s []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.ScaleTo(d, float64(c), any(s).([]float64))
		return
	}

	for i := range dst {
		dst[i] = c * s[i]
	}
}

// Scale multiplies all elements of dst by c in place.
func Scale[T constraints.Float](c T, dst []T) {
	if d, ok := any(dst).([]float64); ok {
		floats.Scale(float64(c), d)
		return
	}

	for i := range dst {
		dst[i] *= c
	}
}

// Equal reports whether a and b have the same length and identical elements.
func Equal[T constraints.Float](a, b []T) bool {
	if x, ok := any(a).([]float64); ok {
		return floats.Equal(x, any(b).([]float64))
	}

	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Fill sets every element of dst to c.
func Fill[T constraints.Float](dst []T, c T) {
	for i := range dst {
		dst[i] = c
	}
}
