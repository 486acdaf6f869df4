package compvec

// Layout is an ordered, name-keyed map of Regions. It is built once at
// construction and never mutated afterwards, so derived vectors (Scale, Add,
// Clone, Similar, Broadcast results) share it by reference instead of
// recomputing offsets.
//
// Invariants upheld by the builder: regions partition [0, Len()) exactly, in
// declaration order, and names are unique. Raw bypasses these checks.
type Layout struct {
	names   []string
	regions map[string]Region
	length  int
}

// newLayout assembles a layout from parallel name/region slices. Regions are
// assumed contiguous and ordered; callers are the builder and Raw.
func newLayout(names []string, regions []Region) *Layout {
	byName := make(map[string]Region, len(names))
	length := 0
	for i, name := range names {
		byName[name] = regions[i]
		length += regions[i].Extent()
	}

	return &Layout{
		names:   names,
		regions: byName,
		length:  length,
	}
}

// Len returns the total extent of the layout, the sum of all field extents.
func (l *Layout) Len() int { return l.length }

// NumFields returns the number of fields.
func (l *Layout) NumFields() int { return len(l.names) }

// Fields returns the field names in declaration order. The returned slice is
// a copy.
func (l *Layout) Fields() []string {
	names := make([]string, len(l.names))
	copy(names, l.names)

	return names
}

// Region returns the region for name, reporting whether the field exists.
func (l *Layout) Region(name string) (Region, bool) {
	r, ok := l.regions[name]
	return r, ok
}

// sameFields checks that two layouts declare identical field name sets in
// identical order. Field shapes are deliberately not compared; Add pairs this
// with a total-length check.
func (l *Layout) sameFields(o *Layout) error {
	n := len(l.names)
	if len(o.names) > n {
		n = len(o.names)
	}

	for i := 0; i < n; i++ {
		var want, got string
		if i < len(l.names) {
			want = l.names[i]
		}
		if i < len(o.names) {
			got = o.names[i]
		}
		if want != got {
			return &ErrIncompatibleLayout{Index: i, Want: want, Got: got}
		}
	}

	return nil
}
