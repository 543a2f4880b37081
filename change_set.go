package syntree

import (
	"github.com/flier/syntree/flavor"
	"github.com/flier/syntree/pkg/opt"
)

// changeKind is the only kind of modification a ChangeSet currently
// records.
type changeKind uint8

const (
	changeDelete changeKind = iota
)

// ChangeSet records planned modifications to a [Tree] without mutating it.
// Call [ChangeSet.Modify] to build a new tree with those modifications
// applied; the tree the ChangeSet was built against, and any node handles
// into it, stay valid and unaffected.
type ChangeSet[T any, I flavor.Index[I], W flavor.Width] struct {
	changes map[ID[W]]changeKind
}

// NewChangeSet constructs an empty ChangeSet.
func NewChangeSet[T any, I flavor.Index[I], W flavor.Width]() *ChangeSet[T, I, W] {
	return &ChangeSet[T, I, W]{changes: make(map[ID[W]]changeKind)}
}

// Remove marks id, and everything beneath it, for deletion by the next
// call to [ChangeSet.Modify]. Only one modification per node is kept; a
// later call for the same id replaces the earlier one.
func (c *ChangeSet[T, I, W]) Remove(id ID[W]) {
	c.changes[id] = changeDelete
}

func (c *ChangeSet[T, I, W]) deleted(n Node[T, I, W]) bool {
	_, ok := c.changes[n.ID()]

	return ok
}

// Modify rebuilds tree with every recorded change applied, returning the
// result as a fresh [Tree]. It walks tree in preorder through a [Builder],
// skipping any node marked for removal along with its entire subtree, so
// spans and offsets in the result are recomputed from what survives rather
// than copied from the source.
func (c *ChangeSet[T, I, W]) Modify(tree *Tree[T, I, W]) (Tree[T, I, W], error) {
	b := NewBuilder[T, I, W](opt.Some(tree.Len()))

	cur, ok := tree.First()

	for ok {
		var err error

		switch {
		case c.deleted(cur):
			cur, ok, err = c.advance(b, cur)
		case cur.IsToken():
			if _, err = b.Token(cur.Value(), cur.Span().Len()); err == nil {
				cur, ok, err = c.advance(b, cur)
			}
		default:
			if _, err = b.Open(cur.Value()); err != nil {
				break
			}

			if first, fok := cur.First(); fok {
				cur, ok = first, true

				continue
			}

			if _, err = b.Close(); err == nil {
				cur, ok, err = c.advance(b, cur)
			}
		}

		if err != nil {
			return Tree[T, I, W]{}, err
		}
	}

	return b.Build()
}

// advance finds the next node to visit after cur in preorder, closing the
// builder's scope for every ancestor it climbs past along the way. cur
// itself has already been fully handled by the caller — emitted as a
// token, opened-and-closed as an empty internal node, or skipped entirely
// as part of a deleted subtree — so only its ancestors can still need
// closing.
func (c *ChangeSet[T, I, W]) advance(b *Builder[T, I, W], cur Node[T, I, W]) (Node[T, I, W], bool, error) {
	for {
		if next, ok := cur.Next(); ok {
			return next, true, nil
		}

		parent, ok := cur.Parent()
		if !ok {
			return Node[T, I, W]{}, false, nil
		}

		if _, err := b.Close(); err != nil {
			return Node[T, I, W]{}, false, err
		}

		cur = parent
	}
}
