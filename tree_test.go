package syntree_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/syntree/flavor"

	. "github.com/flier/syntree"
)

// buildSample constructs:
//
//	root
//	├── group
//	│   ├── a (0..1)
//	│   └── b (1..2)
//	└── c (2..3)
func buildSample(t *testing.T) Tree[string, flavor.Uint32Index, uint32] {
	t.Helper()

	var b node

	_, err := b.Open("root")
	So(err, ShouldBeNil)

	_, err = b.Open("group")
	So(err, ShouldBeNil)
	_, err = b.Token("a", 1)
	So(err, ShouldBeNil)
	_, err = b.Token("b", 1)
	So(err, ShouldBeNil)
	_, err = b.Close()
	So(err, ShouldBeNil)

	_, err = b.Token("c", 1)
	So(err, ShouldBeNil)

	_, err = b.Close()
	So(err, ShouldBeNil)

	tree, err := b.Build()
	So(err, ShouldBeNil)

	return tree
}

func TestTreeIterators(t *testing.T) {
	Convey("A tree with one nested group", t, func() {
		tree := buildSample(t)

		root, ok := tree.First()
		So(ok, ShouldBeTrue)
		So(root.Value(), ShouldEqual, "root")

		Convey("Children iterates a node's direct children only", func() {
			var names []string
			it := root.Children()

			for {
				n, ok := it.Next()
				if !ok {
					break
				}

				names = append(names, n.Value())
			}

			So(names, ShouldResemble, []string{"group", "c"})
		})

		Convey("Children.NextBack walks from the back", func() {
			it := root.Children()

			last, ok := it.NextBack()
			So(ok, ShouldBeTrue)
			So(last.Value(), ShouldEqual, "c")

			first, ok := it.NextBack()
			So(ok, ShouldBeTrue)
			So(first.Value(), ShouldEqual, "group")

			_, ok = it.NextBack()
			So(ok, ShouldBeFalse)
		})

		Convey("Siblings walks forward from a starting node", func() {
			group, ok := root.First()
			So(ok, ShouldBeTrue)

			var names []string
			it := group.Siblings()

			for {
				n, ok := it.Next()
				if !ok {
					break
				}

				names = append(names, n.Value())
			}

			So(names, ShouldResemble, []string{"group", "c"})
		})

		Convey("Ancestors walks up through the parent chain", func() {
			group, ok := root.First()
			So(ok, ShouldBeTrue)

			a, ok := group.First()
			So(ok, ShouldBeTrue)
			So(a.Value(), ShouldEqual, "a")

			var names []string
			it := a.Ancestors()

			for {
				n, ok := it.Next()
				if !ok {
					break
				}

				names = append(names, n.Value())
			}

			So(names, ShouldResemble, []string{"a", "group", "root"})
		})

		Convey("Walk visits every node in preorder", func() {
			var names []string
			w := tree.Walk()

			for {
				n, ok := w.Next()
				if !ok {
					break
				}

				names = append(names, n.Value())
			}

			So(names, ShouldResemble, []string{"root", "group", "a", "b", "c"})
		})

		Convey("Children.SkipTokens filters out leaves", func() {
			it := root.Children().SkipTokens()

			n, ok := it.Next()
			So(ok, ShouldBeTrue)
			So(n.Value(), ShouldEqual, "group")

			_, ok = it.Next()
			So(ok, ShouldBeFalse)
		})

		Convey("WalkEvents reports Down/Next/Up transitions with depth", func() {
			type seen struct {
				event Event
				value string
				depth int
			}

			var got []seen

			w := root.WalkEvents()

			for {
				depth := w.Depth()

				pair, ok := w.Next()
				if !ok {
					break
				}

				event, n := pair.Unpack()
				got = append(got, seen{event, n.Value(), depth})
			}

			So(got, ShouldResemble, []seen{
				{EventNext, "group", 0},
				{EventDown, "a", 1},
				{EventNext, "b", 1},
				{EventUp, "group", 0},
				{EventNext, "c", 0},
			})
		})

		Convey("NodeWithRange finds the node at an exact span", func() {
			found, ok := tree.NodeWithRange(span(1, 2))
			So(ok, ShouldBeTrue)
			So(found.Value(), ShouldEqual, "b")

			_, ok = tree.NodeWithRange(span(0, 2))
			So(ok, ShouldBeTrue)

			_, ok = tree.NodeWithRange(span(10, 20))
			So(ok, ShouldBeFalse)
		})

		Convey("FindPreceding climbs ancestors then descends into the match", func() {
			// root
			// ├── child1
			// │   ├── token2 (0..1)
			// │   └── child2
			// │       └── token1 (1..3)
			// └── child3
			//     └── child4
			//         └── token1 (3..7)
			var fp node

			_, err := fp.Open("root")
			So(err, ShouldBeNil)

			_, err = fp.Open("child1")
			So(err, ShouldBeNil)
			_, err = fp.Token("token2", 1)
			So(err, ShouldBeNil)
			_, err = fp.Open("child2")
			So(err, ShouldBeNil)
			_, err = fp.Token("token1", 2)
			So(err, ShouldBeNil)
			_, err = fp.Close()
			So(err, ShouldBeNil)
			_, err = fp.Close()
			So(err, ShouldBeNil)

			_, err = fp.Open("child3")
			So(err, ShouldBeNil)
			_, err = fp.Open("child4")
			So(err, ShouldBeNil)
			_, err = fp.Token("token1", 4)
			So(err, ShouldBeNil)
			_, err = fp.Close()
			So(err, ShouldBeNil)
			_, err = fp.Close()
			So(err, ShouldBeNil)

			_, err = fp.Close()
			So(err, ShouldBeNil)

			fpTree, err := fp.Build()
			So(err, ShouldBeNil)

			fpRoot, ok := fpTree.First()
			So(ok, ShouldBeTrue)

			child3, ok := fpRoot.Last()
			So(ok, ShouldBeTrue)
			So(child3.Value(), ShouldEqual, "child3")

			child4, ok := child3.First()
			So(ok, ShouldBeTrue)
			So(child4.Value(), ShouldEqual, "child4")

			pred := func(n Node[string, flavor.Uint32Index, uint32]) bool {
				return n.Span().End == 3 && n.HasChildren()
			}

			found, ok := child4.FindPreceding(pred)
			So(ok, ShouldBeTrue)
			So(found.Value(), ShouldEqual, "child2")
		})
	})
}

func TestTreeDigestAndEqual(t *testing.T) {
	Convey("Digest and Equal agree on structural equality", t, func() {
		a := buildSample(t)
		b := buildSample(t)

		So(a.Digest(), ShouldEqual, b.Digest())
		So(Equal(&a, &b), ShouldBeTrue)

		var other node
		_, err := other.Token("different", 1)
		So(err, ShouldBeNil)

		c, err := other.Build()
		So(err, ShouldBeNil)

		So(Equal(&a, &c), ShouldBeFalse)
	})
}
