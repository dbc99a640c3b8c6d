package diffpager

import "sort"

// Resolver maps a raw line number to the context active at that line.
type Resolver interface {
	// Resolve returns the context of the boundary with the greatest start
	// line not exceeding line, or the zero Context when line precedes
	// every boundary.
	Resolve(line int) Context
}

// Compile-time interface verification.
var _ Resolver = Index{}

// Index is an ordered sequence of context boundaries. Diff headers arrive
// in stream order, so the sequence is sorted by construction and lookups
// can binary-search without a separate sorting step.
type Index struct {
	boundaries []Boundary
}

// NewIndex builds an Index from boundaries in ascending Start order.
// A boundary sharing a start line with its predecessor overrides it.
func NewIndex(boundaries []Boundary) Index {
	out := make([]Boundary, 0, len(boundaries))
	for _, b := range boundaries {
		if n := len(out); n > 0 && out[n-1].Start == b.Start {
			out[n-1] = b
			continue
		}
		out = append(out, b)
	}
	return Index{boundaries: out}
}

// Len returns the number of boundaries in the index.
func (ix Index) Len() int {
	return len(ix.boundaries)
}

// Resolve returns the context active at the given line. Cost is
// logarithmic in the number of boundaries, independent of line count.
func (ix Index) Resolve(line int) Context {
	i := sort.Search(len(ix.boundaries), func(i int) bool {
		return ix.boundaries[i].Start > line
	})
	if i == 0 {
		return Context{}
	}
	return ix.boundaries[i-1].Context
}
