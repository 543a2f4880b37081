package syntree

import "github.com/flier/syntree/flavor"

// Checkpoint marks a position in an in-progress build so that a later call
// to [Builder.CloseAt] can retroactively wrap everything emitted since into
// a new parent node.
//
// A checkpoint stays valid after being closed: [Builder.CloseAt] splices
// the new node into the exact slot its recorded anchor used to occupy, so
// replaying the same checkpoint resolves to that new node and wraps it
// together with whatever has been emitted since, nesting the next wrap on
// the outside of this one.
type Checkpoint[W flavor.Width] struct {
	cell *checkpointState[W]
}

type checkpointState[W flavor.Width] struct {
	// sibling is the node that was most recently inserted in the checkpoint's
	// scope, or None if the checkpoint was taken at the start of that scope.
	sibling flavor.Option[W]
	// parent is the enclosing internal node open at the time the checkpoint
	// was taken, or None at the root scope.
	parent flavor.Option[W]
}

func newCheckpoint[W flavor.Width](sibling, parent flavor.Option[W]) Checkpoint[W] {
	return Checkpoint[W]{cell: &checkpointState[W]{sibling: sibling, parent: parent}}
}

func (c Checkpoint[W]) get() (sibling, parent flavor.Option[W]) {
	return c.cell.sibling, c.cell.parent
}
