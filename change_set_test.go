package syntree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/syntree/flavor"

	. "github.com/flier/syntree"
)

func preorderValues(tree *Tree[string, flavor.Uint32Index, uint32]) []string {
	var out []string

	w := tree.Walk()

	for {
		n, ok := w.Next()
		if !ok {
			break
		}

		out = append(out, n.Value())
	}

	return out
}

func TestChangeSetDeleteMiddleChild(t *testing.T) {
	Convey("Deleting the second token of a group", t, func() {
		tree := buildSample(t)

		root, ok := tree.First()
		So(ok, ShouldBeTrue)

		group, ok := root.First()
		So(ok, ShouldBeTrue)
		So(group.Value(), ShouldEqual, "group")

		a, ok := group.First()
		So(ok, ShouldBeTrue)

		b, ok := a.Next()
		So(ok, ShouldBeTrue)
		So(b.Value(), ShouldEqual, "b")

		cs := NewChangeSet[string, flavor.Uint32Index, uint32]()
		cs.Remove(b.ID())

		modified, err := cs.Modify(&tree)
		So(err, ShouldBeNil)

		So(preorderValues(&modified), ShouldResemble, []string{"root", "group", "a", "c"})

		newRoot, ok := modified.First()
		So(ok, ShouldBeTrue)
		newGroup, ok := newRoot.First()
		So(ok, ShouldBeTrue)

		So(newGroup.Span(), ShouldResemble, span(0, 1))

		newC, ok := newGroup.Next()
		So(ok, ShouldBeTrue)
		So(newC.Value(), ShouldEqual, "c")
		So(newC.Span(), ShouldResemble, span(1, 2))

		So(newRoot.Span(), ShouldResemble, span(0, 2))
	})
}

func TestChangeSetDeleteLeaf(t *testing.T) {
	Convey("Deleting the middle token of a flat list", t, func() {
		var b node

		_, err := b.Open("root")
		So(err, ShouldBeNil)
		_, err = b.Token("a", 1)
		So(err, ShouldBeNil)
		idB, err := b.Token("b", 1)
		So(err, ShouldBeNil)
		_, err = b.Token("c", 1)
		So(err, ShouldBeNil)
		_, err = b.Close()
		So(err, ShouldBeNil)

		tree, err := b.Build()
		So(err, ShouldBeNil)

		cs := NewChangeSet[string, flavor.Uint32Index, uint32]()
		cs.Remove(idB)

		modified, err := cs.Modify(&tree)
		So(err, ShouldBeNil)

		So(preorderValues(&modified), ShouldResemble, []string{"root", "a", "c"})

		newRoot, ok := modified.First()
		So(ok, ShouldBeTrue)
		So(newRoot.Span(), ShouldResemble, span(0, 2))
	})
}

func TestChangeSetModifyWithNoChangesIsIdentity(t *testing.T) {
	Convey("Modifying with an empty change set reproduces the same tree", t, func() {
		tree := buildSample(t)

		cs := NewChangeSet[string, flavor.Uint32Index, uint32]()

		modified, err := cs.Modify(&tree)
		So(err, ShouldBeNil)

		So(Equal(&tree, &modified), ShouldBeTrue)
	})
}
