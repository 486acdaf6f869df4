// Package compvec provides composite vectors: flat numeric sequences with
// named, aliasing field views.
//
// A Vector pairs one contiguous buffer with an immutable Layout that maps
// field names to disjoint regions of that buffer. Numeric code written against
// the flat protocol (Len/At/SetAt, elementwise arithmetic) operates on the
// whole buffer; human-facing code reads and writes the same storage by field
// name. No copying happens between the two views.
//
// # Quick Start
//
// Typed construction:
//
//	v, _ := compvec.New(
//	    compvec.Arr("position", []float64{0, 0, 0}),
//	    compvec.Arr("velocity", []float64{1, 0, 0}),
//	    compvec.Scalar("mass", 2.5),
//	)
//	v.Len()                       // 7 — one flat sequence
//	pos, _ := v.Slice("position") // aliasing view, writes hit the buffer
//
// Dynamically typed construction with numeric promotion:
//
//	v, _ := compvec.FromValues(
//	    compvec.Val("a", 1), // int, promoted to float64
//	    compvec.Val("b", []float64{2, 3}),
//	)
//
// # Fields
//
// A field is a scalar (one element), a fixed-shape array (a contiguous
// sub-range reinterpreted under a shape), or a nested Vector (a sub-range
// wrapped recursively under its own Layout). Regions partition the buffer
// exactly, in declaration order.
//
// # Views alias the buffer
//
// Field reads never copy. Mutating a view mutates the owner:
//
//	vel, _ := v.Slice("velocity")
//	vel[0] = 9 // visible via v.At and every other view of "velocity"
//
// # Arithmetic
//
// Scale, Add and Broadcast allocate a fresh buffer and share the operand's
// Layout by reference. Layouts carry only offsets and shapes, never
// buffer-specific state, so sharing is safe.
//
//	w, _ := compvec.Add(v, v)
//	u := compvec.Scale(2, v)
//
// # Ownership
//
// Each buffer is exclusively owned by one Vector. Views are non-owning
// aliases, valid only while the owner lives and its buffer is not replaced.
// The type has no internal synchronization: concurrent mutation of one
// instance, or mutation concurrent with a live view of the same region, must
// be synchronized by the caller.
package compvec
