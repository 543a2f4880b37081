package syntree_test

import (
	"fmt"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/flier/syntree/flavor"

	. "github.com/flier/syntree"
)

// fuzzStep is one raw, not-yet-validated instruction in a random sequence
// of builder operations.
type fuzzStep struct {
	Kind   uint8
	Data   string
	Length uint8
}

// runFuzzSteps interprets steps against a fresh Builder, silently skipping
// a step that would fail in the builder's current state (a stray Close, a
// CloseAt against a checkpoint with nothing left to wrap it against)
// rather than aborting the whole sequence, then force-closes whatever
// scopes are still open so Build always succeeds.
func runFuzzSteps(steps []fuzzStep) Tree[string, flavor.Uint32Index, uint32] {
	var b node

	var checkpoints []Checkpoint[uint32]

	for _, s := range steps {
		switch s.Kind % 5 {
		case 0:
			_, _ = b.Token(s.Data, uint64(s.Length))
		case 1:
			_, _ = b.Open(s.Data)
		case 2:
			_, _ = b.Close()
		case 3:
			checkpoints = append(checkpoints, b.Checkpoint())
		case 4:
			if len(checkpoints) == 0 {
				continue
			}

			c := checkpoints[len(checkpoints)-1]
			checkpoints = checkpoints[:len(checkpoints)-1]

			_, _ = b.CloseAt(c, s.Data)
		}
	}

	for {
		if _, err := b.Close(); err != nil {
			break
		}
	}

	tree, err := b.Build()
	if err != nil {
		panic(err)
	}

	return tree
}

// checkPreorderLayout verifies that a preorder walk visits identifiers in
// strictly increasing order starting from 0, with no gaps.
func checkPreorderLayout(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	w := tree.Walk()

	want := uint64(0)

	for {
		n, ok := w.Next()
		if !ok {
			break
		}

		if n.ID().Index() != want {
			t.Fatalf("preorder layout: got id %d, want %d", n.ID().Index(), want)
		}

		want++
	}

	if want != uint64(tree.Len()) {
		t.Fatalf("preorder layout: walked %d nodes, tree has %d", want, tree.Len())
	}
}

// checkSpanCoverage verifies that a non-empty internal node's span is
// exactly the join of its first and last child's spans.
func checkSpanCoverage(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	w := tree.Walk()

	for {
		n, ok := w.Next()
		if !ok {
			break
		}

		if n.IsToken() || n.IsEmpty() {
			continue
		}

		first, _ := n.First()
		last, _ := n.Last()

		want := first.Span().Join(last.Span())

		if !n.Span().Equal(want) {
			t.Fatalf("span coverage: node %v has span %v, want %v", n.Value(), n.Span(), want)
		}
	}
}

// checkChainConsistency verifies that next/prev agree in both directions
// and that a node's parent actually lists it among its children.
func checkChainConsistency(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	w := tree.Walk()

	for {
		n, ok := w.Next()
		if !ok {
			break
		}

		if next, ok := n.Next(); ok {
			prev, ok := next.Prev()
			if !ok || prev.ID() != n.ID() {
				t.Fatalf("chain consistency: %v.next.prev does not round-trip", n.Value())
			}
		}

		parent, ok := n.Parent()
		if !ok {
			continue
		}

		found := false

		children := parent.Children()

		for {
			child, ok := children.Next()
			if !ok {
				break
			}

			if child.ID() == n.ID() {
				found = true

				break
			}
		}

		if !found {
			t.Fatalf("chain consistency: %v not found among its parent's children", n.Value())
		}
	}
}

// checkEventBalance verifies that Down/Up transitions stay balanced:
// nesting never goes negative, and the walk ends back at depth 0.
func checkEventBalance(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	events := tree.WalkEvents()

	depth := 0

	for {
		pair, ok := events.Next()
		if !ok {
			break
		}

		event, _ := pair.Unpack()

		switch event {
		case EventDown:
			depth++
		case EventUp:
			depth--
		}

		if depth < 0 {
			t.Fatalf("event balance: depth went negative")
		}
	}

	if depth != 0 {
		t.Fatalf("event balance: walk ended at depth %d, want 0", depth)
	}
}

// checkRoundTrip verifies that rebuilding via an empty change-set
// reproduces a structurally equal tree.
func checkRoundTrip(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	cs := NewChangeSet[string, flavor.Uint32Index, uint32]()

	rebuilt, err := cs.Modify(tree)
	if err != nil {
		t.Fatalf("round trip: modify failed: %v", err)
	}

	if !Equal(tree, &rebuilt) {
		t.Fatalf("round trip: rebuilt tree not structurally equal to original")
	}
}

func checkAllInvariants(t *testing.T, tree *Tree[string, flavor.Uint32Index, uint32]) {
	t.Helper()

	checkPreorderLayout(t, tree)
	checkSpanCoverage(t, tree)
	checkChainConsistency(t, tree)
	checkEventBalance(t, tree)
	checkRoundTrip(t, tree)
}

func TestInvariantsUnderRandomBuilderSequences(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(20, 200)

	for iteration := 0; iteration < 200; iteration++ {
		var steps []fuzzStep

		f.Fuzz(&steps)

		tree := runFuzzSteps(steps)

		t.Run(fmt.Sprintf("iteration-%d", iteration), func(t *testing.T) {
			checkAllInvariants(t, &tree)
		})
	}
}
