package syntree

import "github.com/flier/syntree/flavor"

// Ancestors is a forward-only iterator starting at some node and walking
// up through its parent chain, including the starting node itself. The
// zero value is an empty, exhausted iterator.
type Ancestors[T any, I flavor.Index[I], W flavor.Width] struct {
	node  Node[T, I, W]
	valid bool
}

func newAncestors[T any, I flavor.Index[I], W flavor.Width](start Node[T, I, W]) Ancestors[T, I, W] {
	return Ancestors[T, I, W]{node: start, valid: true}
}

// Next returns the next ancestor, or false once the root has been
// returned.
func (a *Ancestors[T, I, W]) Next() (Node[T, I, W], bool) {
	if !a.valid {
		return Node[T, I, W]{}, false
	}

	n := a.node

	parent, ok := n.Parent()
	a.node = parent
	a.valid = ok

	return n, true
}

// SkipTokens returns the remainder of this iterator with token (leaf)
// nodes filtered out. Every node above the starting one is an internal
// node, so the only token this can drop is the starting node itself.
func (a Ancestors[T, I, W]) SkipTokens() *SkipTokens[T, I, W, *Ancestors[T, I, W]] {
	return newSkipTokens[T, I, W](&a)
}
