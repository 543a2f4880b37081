// Command syntreefuzz drives the same builder-invariant checks as
// invariants_fuzz_test.go in a long-running loop outside of `go test`,
// useful for an extended soak run.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	fuzz "github.com/google/gofuzz"

	"github.com/flier/syntree"
	"github.com/flier/syntree/flavor"
)

var (
	duration = flag.Duration("duration", 30*time.Second, "how long to fuzz for")
	minSteps = flag.Int("min-steps", 20, "minimum number of builder steps per tree")
	maxSteps = flag.Int("max-steps", 200, "maximum number of builder steps per tree")
)

type step struct {
	Kind   uint8
	Data   string
	Length uint8
}

func buildTree(steps []step) syntree.Tree[string, flavor.Uint32Index, uint32] {
	var b syntree.Builder[string, flavor.Uint32Index, uint32]

	var checkpoints []syntree.Checkpoint[uint32]

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
		log.Fatalf("build: %v", err)
	}

	return tree
}

func checkInvariants(tree *syntree.Tree[string, flavor.Uint32Index, uint32]) error {
	w := tree.Walk()

	want := uint64(0)

	for {
		n, ok := w.Next()
		if !ok {
			break
		}

		if n.ID().Index() != want {
			return fmt.Errorf("preorder layout: got id %d, want %d", n.ID().Index(), want)
		}

		want++

		if n.IsToken() || n.IsEmpty() {
			continue
		}

		first, _ := n.First()
		last, _ := n.Last()

		if joined := first.Span().Join(last.Span()); !n.Span().Equal(joined) {
			return fmt.Errorf("span coverage: node %v has span %v, want %v", n.Value(), n.Span(), joined)
		}
	}

	events := tree.WalkEvents()

	depth := 0

	for {
		pair, ok := events.Next()
		if !ok {
			break
		}

		event, _ := pair.Unpack()

		switch event {
		case syntree.EventDown:
			depth++
		case syntree.EventUp:
			depth--
		}

		if depth < 0 {
			return fmt.Errorf("event balance: depth went negative")
		}
	}

	if depth != 0 {
		return fmt.Errorf("event balance: walk ended at depth %d, want 0", depth)
	}

	cs := syntree.NewChangeSet[string, flavor.Uint32Index, uint32]()

	rebuilt, err := cs.Modify(tree)
	if err != nil {
		return fmt.Errorf("round trip: modify failed: %w", err)
	}

	if !syntree.Equal(tree, &rebuilt) {
		return fmt.Errorf("round trip: rebuilt tree not structurally equal to original")
	}

	return nil
}

func main() {
	flag.Parse()

	f := fuzz.New().NilChance(0).NumElements(*minSteps, *maxSteps)

	deadline := time.Now().Add(*duration)

	var iterations int

	for time.Now().Before(deadline) {
		var steps []step

		f.Fuzz(&steps)

		tree := buildTree(steps)

		if err := checkInvariants(&tree); err != nil {
			log.Fatalf("iteration %d: %v", iterations, err)
		}

		iterations++
	}

	log.Printf("ran %d iterations over %s without a violation", iterations, *duration)
}
