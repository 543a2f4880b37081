package syntree

import (
	"github.com/flier/syntree/flavor"
	"github.com/flier/syntree/pkg/tuple"
)

// Event distinguishes the three ways [WalkEvents] can move between nodes.
type Event uint8

const (
	// EventNext is a sibling at the current depth; also the first event
	// emitted by a fresh walk.
	EventNext Event = iota
	// EventDown is descent from the previous node into its first child.
	EventDown
	// EventUp is ascent after an internal node's last child has been fully
	// emitted; the accompanying node is the parent just closed.
	EventUp
)

func (e Event) String() string {
	switch e {
	case EventNext:
		return "Next"
	case EventDown:
		return "Down"
	case EventUp:
		return "Up"
	default:
		return "?"
	}
}

// WalkEvents is the low-level, non-recursive depth-first iterator that
// every other walking adapter ([Walk], [SkipTokens] over a walk) is built
// from. It reports entry (Next/Down) and exit (Up) transitions, so a
// caller can track depth or render indentation without recursion. The
// zero value is an empty, exhausted iterator.
type WalkEvents[T any, I flavor.Index[I], W flavor.Width] struct {
	tree  []link[T, I, W]
	next  flavor.Option[W]
	event Event
	depth int

	// bounded stops the walk at depth 0 instead of continuing to ascend
	// through real parent links; set for walks scoped to a single node's
	// subtree ([Node.Walk], [Node.WalkEvents]), cleared for [Node.WalkFrom]
	// which deliberately climbs out into the rest of the tree.
	bounded bool
}

func newWalkEvents[T any, I flavor.Index[I], W flavor.Width](tree []link[T, I, W], start flavor.Option[W]) WalkEvents[T, I, W] {
	return WalkEvents[T, I, W]{tree: tree, next: start, event: EventNext, bounded: true}
}

// newWalkEventsFrom starts a walk at start with the given event rather than
// always EventNext, and never stops on depth alone — it only ends once
// there is no real parent left to ascend to.
func newWalkEventsFrom[T any, I flavor.Index[I], W flavor.Width](tree []link[T, I, W], start flavor.Option[W], event Event) WalkEvents[T, I, W] {
	return WalkEvents[T, I, W]{tree: tree, next: start, event: event}
}

// Depth returns the current nesting depth: the number of Down events not
// yet matched by an Up.
func (w *WalkEvents[T, I, W]) Depth() int {
	return w.depth
}

// step mirrors the checkpointed builder's preorder layout: from any node,
// prefer descending into its first child (emitting Down, and incrementing
// depth); failing that, advance to its next sibling (emitting Next);
// failing that, ascend to its parent (emitting Up, and decrementing
// depth). For a bounded walk, depth is relative to wherever the walk
// started rather than the actual tree root: once it would fall below zero,
// the walk has climbed back out of the subtree it was scoped to and ends
// there, even though the link itself may still have a real parent further
// up the tree. An unbounded walk ignores that and keeps ascending for as
// long as a real parent link exists.
func (w *WalkEvents[T, I, W]) step(l *link[T, I, W], event Event) (flavor.Option[W], Event) {
	if event != EventUp {
		if first, ok := l.first.Get(); ok {
			w.depth++

			return flavor.SomePointer(first), EventDown
		}

		if next, ok := l.next.Get(); ok {
			return flavor.SomePointer(next), EventNext
		}
	} else if next, ok := l.next.Get(); ok {
		return flavor.SomePointer(next), EventNext
	}

	if w.bounded && w.depth == 0 {
		return flavor.NonePointer[W](), event
	}

	parent, ok := l.parent.Get()
	if !ok {
		return flavor.NonePointer[W](), event
	}

	w.depth--

	return flavor.SomePointer(parent), EventUp
}

// Next returns the next (Event, Node) pair, or false once the walk is
// exhausted.
func (w *WalkEvents[T, I, W]) Next() (tuple.Tuple2[Event, Node[T, I, W]], bool) {
	id, ok := w.next.Get()
	if !ok {
		return tuple.Tuple2[Event, Node[T, I, W]]{}, false
	}

	event := w.event
	l := &w.tree[id.Index()]

	nextID, nextEvent := w.step(l, event)
	w.next = nextID
	w.event = nextEvent

	return tuple.New2(event, Node[T, I, W]{id: id, links: l, tree: w.tree}), true
}
