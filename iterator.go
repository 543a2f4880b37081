package syntree

import "github.com/flier/syntree/flavor"

// nodeIterator is satisfied by every cursor-style iterator in this package:
// Children, Siblings, Ancestors and Walk. It lets SkipTokens wrap any of
// them uniformly.
type nodeIterator[T any, I flavor.Index[I], W flavor.Width] interface {
	Next() (Node[T, I, W], bool)
}

// SkipTokens wraps another node iterator, filtering out token (leaf)
// nodes so that only internal nodes are yielded.
type SkipTokens[T any, I flavor.Index[I], W flavor.Width, Src nodeIterator[T, I, W]] struct {
	src Src
}

func newSkipTokens[T any, I flavor.Index[I], W flavor.Width, Src nodeIterator[T, I, W]](src Src) *SkipTokens[T, I, W, Src] {
	return &SkipTokens[T, I, W, Src]{src: src}
}

// Next returns the next non-token node, or false once the source is
// exhausted.
func (s *SkipTokens[T, I, W, Src]) Next() (Node[T, I, W], bool) {
	for {
		n, ok := s.src.Next()
		if !ok {
			return Node[T, I, W]{}, false
		}

		if !n.IsToken() {
			return n, true
		}
	}
}
