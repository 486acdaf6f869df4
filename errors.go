package compvec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFields is returned when construction is attempted with no fields.
	ErrEmptyFields = errors.New("at least one field is required")

	// ErrNonNumericValue is returned by FromValues when a field value is not a
	// supported numeric kind.
	ErrNonNumericValue = errors.New("value is not numeric")
)

// ErrDuplicateField indicates that a field name appears more than once in a
// single construction.
type ErrDuplicateField struct {
	Name string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field %q", e.Name)
}

// ErrUnknownField indicates named access to a field that does not exist in
// the layout.
type ErrUnknownField struct {
	Name string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}

// ErrShapeMismatch indicates an assignment whose shape or type is
// incompatible with the target field's region.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Want  []int
	Got   []int
	cause error
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: want %v, got %v", e.Want, e.Got)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }

// ErrIncompatibleLayout indicates an elementwise operation between vectors
// whose field name sets or field orders differ.
type ErrIncompatibleLayout struct {
	Index int    // position of the first differing field
	Want  string // field name in the left operand ("" if absent)
	Got   string // field name in the right operand ("" if absent)
}

func (e *ErrIncompatibleLayout) Error() string {
	return fmt.Sprintf("incompatible layouts: field %d is %q in left operand, %q in right", e.Index, e.Want, e.Got)
}

// ErrSizeMismatch indicates a broadcast across sequence operands of unequal
// lengths.
type ErrSizeMismatch struct {
	Want int
	Got  int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: want %d, got %d", e.Want, e.Got)
}

// ErrLengthMismatch indicates a Retag where the layout's total extent and the
// adopted buffer's length differ.
type ErrLengthMismatch struct {
	Layout int
	Buffer int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: layout spans %d elements, buffer has %d", e.Layout, e.Buffer)
}

// ErrIndexOutOfRange is the panic value for positional access outside
// [0, Len). Positional access is a hot flat-protocol path; like the dense
// containers in gonum/mat, it panics on contract violation instead of
// returning an error.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}
