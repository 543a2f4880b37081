package syntree

import "github.com/flier/syntree/flavor"

// Walk is a depth-first preorder iterator visiting every node exactly
// once. It is [WalkEvents] with Up transitions filtered out. The zero
// value is an empty, exhausted iterator.
type Walk[T any, I flavor.Index[I], W flavor.Width] struct {
	events WalkEvents[T, I, W]
	depth  int
}

func newWalk[T any, I flavor.Index[I], W flavor.Width](events WalkEvents[T, I, W]) Walk[T, I, W] {
	return Walk[T, I, W]{events: events}
}

// Next returns the next node in preorder, or false once the walk is
// exhausted.
func (w *Walk[T, I, W]) Next() (Node[T, I, W], bool) {
	n, ok := w.nextWithDepth()
	return n, ok
}

// nextWithDepth advances the walk and records the depth the returned node
// was found at, for WithDepths.
func (w *Walk[T, I, W]) nextWithDepth() (Node[T, I, W], bool) {
	for {
		w.depth = w.events.Depth()

		pair, ok := w.events.Next()
		if !ok {
			return Node[T, I, W]{}, false
		}

		event, node := pair.Unpack()
		if event != EventUp {
			return node, true
		}
	}
}

// Depth returns the depth of the node most recently returned by Next.
func (w *Walk[T, I, W]) Depth() int {
	return w.depth
}

// SkipTokens returns the remainder of this iterator with token (leaf)
// nodes filtered out.
func (w Walk[T, I, W]) SkipTokens() *SkipTokens[T, I, W, *Walk[T, I, W]] {
	return newSkipTokens[T, I, W](&w)
}

// WithDepths is a [Walk] whose Next also reports each node's depth.
type WithDepths[T any, I flavor.Index[I], W flavor.Width] struct {
	walk Walk[T, I, W]
}

// WithDepths adapts w into an iterator that reports (depth, node) pairs.
func (w Walk[T, I, W]) WithDepths() WithDepths[T, I, W] {
	return WithDepths[T, I, W]{walk: w}
}

// Next returns the next (depth, node) pair, or false once exhausted.
func (w *WithDepths[T, I, W]) Next() (int, Node[T, I, W], bool) {
	n, ok := w.walk.nextWithDepth()
	if !ok {
		return 0, Node[T, I, W]{}, false
	}

	return w.walk.Depth(), n, true
}
