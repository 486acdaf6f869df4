// Package shape provides row-major shape and stride arithmetic for fixed
// multi-dimensional views over flat buffers.
//
// This is an internal package - external users see shapes only through the
// compvec view types.
package shape

// Size returns the element count of a shape, the product of its dimensions.
// An empty shape has size 1 (a scalar view); any zero dimension yields 0.
func Size(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}

	return n
}

// Strides returns the row-major strides for a shape: the last dimension
// varies fastest.
func Strides(dims []int) []int {
	strides := make([]int, len(dims))

	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= dims[i]
	}

	return strides
}

// Offset maps a multi-dimensional index to a flat offset under the given
// strides. It reports false if the index rank differs from the shape rank or
// any coordinate is out of its dimension's range.
func Offset(dims, strides, index []int) (int, bool) {
	if len(index) != len(dims) {
		return 0, false
	}

	off := 0
	for i, x := range index {
		if x < 0 || x >= dims[i] {
			return 0, false
		}
		off += x * strides[i]
	}

	return off, true
}

// Equal reports whether two shapes have identical rank and dimensions.
func Equal(a, b []int) bool {
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
