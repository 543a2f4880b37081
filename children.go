package syntree

import "github.com/flier/syntree/flavor"

// Children is a double-ended iterator over a bounded run of siblings
// (typically the children of one node, or a tree's root-level nodes).
// The zero value is an empty, exhausted iterator.
type Children[T any, I flavor.Index[I], W flavor.Width] struct {
	tree  []link[T, I, W]
	first flavor.Option[W]
	last  flavor.Option[W]
}

func newChildren[T any, I flavor.Index[I], W flavor.Width](tree []link[T, I, W], first, last flavor.Option[W]) Children[T, I, W] {
	return Children[T, I, W]{tree: tree, first: first, last: last}
}

// Next returns the next node from the front of the range.
func (c *Children[T, I, W]) Next() (Node[T, I, W], bool) {
	id, ok := c.first.Get()
	if !ok {
		return Node[T, I, W]{}, false
	}

	l, lok := c.last.Get()

	if !lok || id != l {
		c.first = c.tree[id.Index()].next
	} else {
		c.first = flavor.NonePointer[W]()
		c.last = flavor.NonePointer[W]()
	}

	return Node[T, I, W]{id: id, links: &c.tree[id.Index()], tree: c.tree}, true
}

// NextBack returns the next node from the back of the range.
func (c *Children[T, I, W]) NextBack() (Node[T, I, W], bool) {
	id, ok := c.last.Get()
	if !ok {
		return Node[T, I, W]{}, false
	}

	f, fok := c.first.Get()

	if !fok || id != f {
		c.last = c.tree[id.Index()].prev
	} else {
		c.first = flavor.NonePointer[W]()
		c.last = flavor.NonePointer[W]()
	}

	return Node[T, I, W]{id: id, links: &c.tree[id.Index()], tree: c.tree}, true
}

// SkipTokens returns the remainder of this iterator with token (leaf)
// nodes filtered out.
func (c Children[T, I, W]) SkipTokens() *SkipTokens[T, I, W, *Children[T, I, W]] {
	return newSkipTokens[T, I, W](&c)
}
