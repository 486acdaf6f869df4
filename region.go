package compvec

// RegionKind tags the three field shapes a Region can describe.
type RegionKind uint8

const (
	// KindScalar is a single buffer element.
	KindScalar RegionKind = iota
	// KindArray is a contiguous sub-range reinterpreted under a fixed shape.
	KindArray
	// KindNested is a contiguous sub-range wrapped recursively as a Vector
	// under an inner Layout.
	KindNested
)

func (k RegionKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Region describes where a field lives in the buffer and how to rebuild its
// typed view from a raw slice. It is pure structural metadata: offsets,
// shape and inner layout, never buffer contents.
type Region struct {
	Kind  RegionKind
	Start int
	End   int

	// Shape holds the field's dimensions, row-major. KindArray only.
	Shape []int

	// Inner is the nested field's own layout. KindNested only.
	Inner *Layout
}

// Extent returns the number of buffer elements the region spans.
func (r Region) Extent() int { return r.End - r.Start }
