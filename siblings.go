package syntree

import "github.com/flier/syntree/flavor"

// Siblings is a forward-only iterator starting at some node and walking
// through its following siblings, including the starting node itself. The
// zero value is an empty, exhausted iterator.
type Siblings[T any, I flavor.Index[I], W flavor.Width] struct {
	tree []link[T, I, W]
	cur  flavor.Option[W]
}

func newSiblingsFrom[T any, I flavor.Index[I], W flavor.Width](tree []link[T, I, W], start ID[W]) Siblings[T, I, W] {
	return Siblings[T, I, W]{tree: tree, cur: flavor.SomePointer(start)}
}

// Next returns the next sibling, or false once the chain is exhausted.
func (s *Siblings[T, I, W]) Next() (Node[T, I, W], bool) {
	id, ok := s.cur.Get()
	if !ok {
		return Node[T, I, W]{}, false
	}

	s.cur = s.tree[id.Index()].next

	return Node[T, I, W]{id: id, links: &s.tree[id.Index()], tree: s.tree}, true
}

// SkipTokens returns the remainder of this iterator with token (leaf)
// nodes filtered out.
func (s Siblings[T, I, W]) SkipTokens() *SkipTokens[T, I, W, *Siblings[T, I, W]] {
	return newSkipTokens[T, I, W](&s)
}
