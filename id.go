package syntree

import "github.com/flier/syntree/flavor"

// ID identifies a single node inside a [Tree] or [Builder]. It is an opaque,
// non-max encoded index (see [flavor.Pointer]) rather than a pointer, so it
// stays valid across copies of the tree it was issued from and carries no
// lifetime of its own.
type ID[W flavor.Width] = flavor.Pointer[W]

func newID[W flavor.Width](index int) (ID[W], error) {
	return flavor.NewPointer[W](uint64(index))
}
