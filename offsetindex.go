package syntree

import (
	"sort"

	"github.com/flier/syntree/flavor"
)

// offsetEntry pairs a leaf's start offset with its identifier.
type offsetEntry[I flavor.Index[I], W flavor.Width] struct {
	start I
	id    ID[W]
}

// offsetIndex is a vector of (start, leaf-id) entries sorted by start,
// supporting node_with_range via binary search. Builder and Change-Set
// both append to it in increasing start order (per the monotone-cursor
// invariant), so no sort pass is ever required.
type offsetIndex[I flavor.Index[I], W flavor.Width] struct {
	entries []offsetEntry[I, W]
}

func (idx *offsetIndex[I, W]) append(start I, id ID[W]) {
	idx.entries = append(idx.entries, offsetEntry[I, W]{start: start, id: id})
}

// remap produces a copy of the index with every identifier translated
// through table (indexed by the identifier's old Index()). Entries stay
// sorted by start, since start values themselves are untouched.
func (idx *offsetIndex[I, W]) remap(table []flavor.Option[W]) offsetIndex[I, W] {
	out := offsetIndex[I, W]{entries: make([]offsetEntry[I, W], 0, len(idx.entries))}

	for _, e := range idx.entries {
		if newID, ok := table[e.id.Index()].Get(); ok {
			out.entries = append(out.entries, offsetEntry[I, W]{start: e.start, id: newID})
		}
	}

	return out
}

// Len reports the number of indexed leaves.
func (idx *offsetIndex[I, W]) Len() int {
	return len(idx.entries)
}

// floor returns the rightmost entry whose start is <= q, and true, or false
// if q is before every indexed leaf.
func (idx *offsetIndex[I, W]) floor(q I) (offsetEntry[I, W], bool) {
	n := len(idx.entries)

	i := sort.Search(n, func(i int) bool {
		return q.Less(idx.entries[i].start)
	})

	if i == 0 {
		return offsetEntry[I, W]{}, false
	}

	return idx.entries[i-1], true
}
