package syntree

import "github.com/flier/syntree/flavor"

// kind discriminates a token (leaf) from an internal node. It is stored
// explicitly rather than derived from first/last being unset, because an
// internal node opened and closed without ever gaining a child also has
// first = last = None and must still not be mistaken for a token.
type kind uint8

const (
	kindNode kind = iota
	kindToken
)

// link is the single record type stored in an arena: a payload, its span,
// and the doubly-linked parent/sibling/child pointers that let traversal
// move in any direction without recursion.
type link[T any, I flavor.Index[I], W flavor.Width] struct {
	data T
	kind kind
	span flavor.Span[I]

	parent flavor.Option[W]
	prev   flavor.Option[W]
	next   flavor.Option[W]
	first  flavor.Option[W]
	last   flavor.Option[W]
}

func (l *link[T, I, W]) isToken() bool {
	return l.kind == kindToken
}
