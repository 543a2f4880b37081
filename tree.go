package syntree

import (
	"github.com/dolthub/maphash"

	"github.com/flier/syntree/errs"
	"github.com/flier/syntree/flavor"
)

// Tree is an immutable, contiguous sequence of link records produced by
// [Builder.Build] or [ChangeSet.Modify]. It is safe to share across
// readers: node handles and iterators only ever borrow from it.
type Tree[T any, I flavor.Index[I], W flavor.Width] struct {
	links   []link[T, I, W]
	span    flavor.Span[I]
	first   flavor.Option[W]
	last    flavor.Option[W]
	offsets offsetIndex[I, W]
}

// IsEmpty reports whether the tree has no root-level nodes.
func (t *Tree[T, I, W]) IsEmpty() bool {
	return len(t.links) == 0
}

// Len returns the total number of nodes in the tree, at every depth.
func (t *Tree[T, I, W]) Len() int {
	return len(t.links)
}

// Span returns the overall span covered by the tree's root-level nodes.
func (t *Tree[T, I, W]) Span() flavor.Span[I] {
	return t.span
}

// Range returns the tree's span as plain integer endpoints.
func (t *Tree[T, I, W]) Range() (start, end uint64) {
	return t.span.Range()
}

// First returns the first root-level node, or false if the tree is empty.
func (t *Tree[T, I, W]) First() (Node[T, I, W], bool) {
	id, ok := t.first.Get()
	if !ok {
		return Node[T, I, W]{}, false
	}

	return t.node(id), true
}

// Last returns the last root-level node, or false if the tree is empty.
func (t *Tree[T, I, W]) Last() (Node[T, I, W], bool) {
	id, ok := t.last.Get()
	if !ok {
		return Node[T, I, W]{}, false
	}

	return t.node(id), true
}

// Get resolves id to a node handle. It fails with [errs.ErrMissingNode] if
// id does not address a node in this tree.
func (t *Tree[T, I, W]) Get(id ID[W]) (Node[T, I, W], error) {
	if id.Index() >= uint64(len(t.links)) {
		return Node[T, I, W]{}, errs.ErrMissingNode
	}

	return t.node(id), nil
}

func (t *Tree[T, I, W]) node(id ID[W]) Node[T, I, W] {
	return Node[T, I, W]{id: id, links: &t.links[id.Index()], tree: t.links}
}

// Children returns a double-ended iterator over the root-level nodes.
func (t *Tree[T, I, W]) Children() Children[T, I, W] {
	return newChildren(t.links, t.first, t.last)
}

// Walk returns a depth-first preorder iterator over every node in the
// tree.
func (t *Tree[T, I, W]) Walk() Walk[T, I, W] {
	return newWalk(t.WalkEvents())
}

// WalkEvents returns a depth-first iterator that additionally reports
// descent (Down) and ascent (Up) events.
func (t *Tree[T, I, W]) WalkEvents() WalkEvents[T, I, W] {
	return newWalkEvents(t.links, t.first)
}

// NodeWithRange finds the indexed leaf whose span starts at or before
// want.Start and returns its nearest ancestor whose span is exactly want,
// or the leaf itself if no ancestor matches but the leaf does. It returns
// false if neither matches. With the [flavor.Empty] index realization
// nothing is indexed, so it always returns false.
func (t *Tree[T, I, W]) NodeWithRange(want flavor.Span[I]) (Node[T, I, W], bool) {
	entry, ok := t.offsets.floor(want.Start)
	if !ok {
		return Node[T, I, W]{}, false
	}

	leaf := t.node(entry.id)

	for n, ok := leaf.Parent(); ok; n, ok = n.Parent() {
		if n.links.span.Equal(want) {
			return n, true
		}
	}

	if leaf.links.span.Equal(want) {
		return leaf, true
	}

	return Node[T, I, W]{}, false
}

// digestEntry is the fixed-size, comparable summary of a single node that
// feeds the rolling hash in [Tree.Digest]: its span's two endpoints,
// expressed as plain uint64s so the digest is independent of the flavor's
// Index realization.
type digestEntry struct {
	start, end uint64
}

// digestHasher is shared by every [Tree.Digest] call so that equal trees
// hash alike within one process.
var digestHasher = maphash.NewHasher[digestEntry]()

// Digest returns a fast structural fingerprint of the tree, suitable for
// cheaply ruling out equality before falling back to a full [Equal]
// comparison. Two trees with different digests are never equal; two trees
// with the same digest are not guaranteed to be equal.
func (t *Tree[T, I, W]) Digest() uint64 {
	hasher := digestHasher

	var acc uint64

	zero := zeroOf[I]()

	for i := range t.links {
		l := &t.links[i]

		acc = acc*1000003 ^ hasher.Hash(digestEntry{
			start: zero.Diff(l.span.Start),
			end:   zero.Diff(l.span.End),
		})
	}

	return acc
}

func zeroOf[I any]() (z I) { return z }

// Equal reports whether two trees are structurally equal: the same
// depth-annotated preorder traversal of (depth, value, span) triples.
func Equal[T comparable, I flavor.Index[I], W flavor.Width](a, b *Tree[T, I, W]) bool {
	wa, wb := a.Walk().WithDepths(), b.Walk().WithDepths()

	for {
		da, na, oka := wa.Next()
		db, nb, okb := wb.Next()

		if oka != okb {
			return false
		}

		if !oka {
			return true
		}

		if da != db {
			return false
		}

		if na.Value() != nb.Value() {
			return false
		}

		if !na.Span().Equal(nb.Span()) {
			return false
		}
	}
}
