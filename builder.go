package syntree

import (
	"github.com/flier/syntree/errs"
	"github.com/flier/syntree/flavor"
	"github.com/flier/syntree/internal/debug"
	"github.com/flier/syntree/pkg/opt"
)

// Builder constructs a [Tree] incrementally: open/close a scope for an
// internal node, emit tokens, and optionally capture a [Checkpoint] to
// retroactively wrap a run of siblings into a node that wasn't anticipated
// when they were emitted.
//
// The zero value is ready to use.
type Builder[T any, I flavor.Index[I], W flavor.Width] struct {
	links []link[T, I, W]

	// stack holds the identifiers of currently open internal nodes, outermost
	// first.
	stack []ID[W]

	// first is the first root-level node, the root scope's analogue of a
	// parent's first-child slot.
	first flavor.Option[W]

	// sibling is the most recently completed node in the current scope (the
	// top of stack, or the root scope if stack is empty), or None if nothing
	// has been emitted in that scope yet.
	sibling flavor.Option[W]

	// cursor is the source position; it only ever advances, by Token or
	// Insert.
	cursor I

	offsets offsetIndex[I, W]
}

// NewBuilder constructs a Builder with its arena pre-allocated to capacity,
// if given, to avoid reallocation while the node count is known ahead of
// time. The zero value of Builder is also ready to use; NewBuilder(opt.None[int]())
// is equivalent to it.
func NewBuilder[T any, I flavor.Index[I], W flavor.Width](capacity opt.Option[int]) *Builder[T, I, W] {
	return &Builder[T, I, W]{links: make([]link[T, I, W], 0, capacity.UnwrapOr(0))}
}

// currentParent returns the identifier of the innermost open node, or None
// at the root scope.
func (b *Builder[T, I, W]) currentParent() flavor.Option[W] {
	if len(b.stack) == 0 {
		return flavor.NonePointer[W]()
	}

	return flavor.SomePointer(b.stack[len(b.stack)-1])
}

// insertLink appends a new record, splicing it into the sibling chain of
// the current scope and, if it is the first node of that scope, into the
// enclosing first-child (or root-first) slot. It consumes b.sibling; Open
// leaves it reset for the new child scope, while Token and Close set it
// back to the node they just produced.
func (b *Builder[T, I, W]) insertLink(data T, kn kind, span flavor.Span[I]) (ID[W], error) {
	id, err := newID[W](len(b.links))
	if err != nil {
		return ID[W]{}, err
	}

	parent := b.currentParent()
	prevSibling := b.sibling
	b.sibling = flavor.NonePointer[W]()

	b.links = append(b.links, link[T, I, W]{
		data:   data,
		kind:   kn,
		span:   span,
		parent: parent,
		prev:   prevSibling,
	})

	if p, ok := prevSibling.Get(); ok {
		b.links[p.Index()].next = flavor.SomePointer(id)
	} else if p, ok := parent.Get(); ok {
		if b.links[p.Index()].first.IsNone() {
			b.links[p.Index()].first = flavor.SomePointer(id)
		}
	} else if b.first.IsNone() {
		b.first = flavor.SomePointer(id)
	}

	return id, nil
}

// Open starts a new internal node with the given payload, pushing it onto
// the parent stack so that subsequent operations become its children.
func (b *Builder[T, I, W]) Open(data T) (ID[W], error) {
	id, err := b.insertLink(data, kindNode, flavor.Span[I]{})
	if err != nil {
		return ID[W]{}, err
	}

	b.stack = append(b.stack, id)

	debug.Log(nil, "open", "id=%v", id)

	return id, nil
}

// StartNode is a convenience alias for [Builder.Open].
func (b *Builder[T, I, W]) StartNode(data T) (ID[W], error) {
	return b.Open(data)
}

// Close finalizes the innermost open node: its span becomes the join of
// its first and last child spans, or a point span at the current cursor if
// it gained no children. It fails with [errs.ErrClose] if no node is open.
func (b *Builder[T, I, W]) Close() (ID[W], error) {
	if len(b.stack) == 0 {
		return ID[W]{}, errs.ErrClose
	}

	id := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	l := &b.links[id.Index()]

	if last, ok := b.sibling.Get(); ok {
		first, _ := l.first.Get()
		l.last = b.sibling
		l.span = b.links[first.Index()].span.Join(b.links[last.Index()].span)
	} else {
		l.span = flavor.Point(b.cursor)
	}

	b.sibling = flavor.SomePointer(id)

	debug.Log(nil, "close", "id=%v span=%v", id, l.span)

	return id, nil
}

// EndNode is a convenience alias for [Builder.Close].
func (b *Builder[T, I, W]) EndNode() (ID[W], error) {
	return b.Close()
}

// Token emits a leaf node spanning length units starting at the current
// cursor, then advances the cursor. It fails with [errs.ErrOverflow] if the
// cursor would overflow the flavor's Index.
func (b *Builder[T, I, W]) Token(data T, length uint64) (ID[W], error) {
	start := b.cursor

	end, ok := start.CheckedAdd(length)
	if !ok {
		return ID[W]{}, errs.New(errs.KindOverflow, "token would overflow source cursor")
	}

	id, err := b.insertLink(data, kindToken, flavor.NewSpan(start, end))
	if err != nil {
		return ID[W]{}, err
	}

	b.cursor = end
	b.sibling = flavor.SomePointer(id)

	if start.Less(end) {
		b.offsets.append(start, id)
	}

	debug.Log(nil, "token", "id=%v span=[%v,%v)", id, start, end)

	return id, nil
}

// Checkpoint captures the current position in the builder: the last
// sibling completed in the current scope (or None at the start of that
// scope) and the enclosing parent. Pass the result to [Builder.CloseAt] to
// retroactively wrap everything emitted since into a new node.
func (b *Builder[T, I, W]) Checkpoint() Checkpoint[W] {
	return newCheckpoint(b.sibling, b.currentParent())
}

// firstInScope returns the first node after afterSibling within a scope
// whose enclosing parent is parent (None meaning the root scope).
func (b *Builder[T, I, W]) firstInScope(afterSibling, parent flavor.Option[W]) flavor.Option[W] {
	if s, ok := afterSibling.Get(); ok {
		return b.links[s.Index()].next
	}

	if p, ok := parent.Get(); ok {
		return b.links[p.Index()].first
	}

	return b.first
}

// spliceIntoScope links newNode into the chain that used to run from
// afterSibling to whatever followed last, replacing that whole run.
func (b *Builder[T, I, W]) spliceIntoScope(afterSibling, parent flavor.Option[W], newNode ID[W], oldNext flavor.Option[W]) {
	if s, ok := afterSibling.Get(); ok {
		b.links[s.Index()].next = flavor.SomePointer(newNode)
	} else if p, ok := parent.Get(); ok {
		b.links[p.Index()].first = flavor.SomePointer(newNode)
	} else {
		b.first = flavor.SomePointer(newNode)
	}

	if n, ok := oldNext.Get(); ok {
		b.links[n.Index()].prev = flavor.SomePointer(newNode)
	}

	b.links[newNode.Index()].prev = afterSibling
	b.links[newNode.Index()].next = oldNext
	b.links[newNode.Index()].parent = parent
}

// CloseAt wraps every sibling emitted since checkpoint was taken (up to and
// including the current cursor position) into a new internal node with the
// given payload, without moving or copying any of the wrapped records.
// checkpoint keeps referring to the same anchor position; since splicing
// rewrites the surrounding first/next links to point at the new node,
// closing the same checkpoint again naturally wraps it together with
// whatever follows it, nesting the next wrap on the outside of this one.
//
// It fails with [errs.ErrCloseAt] if the checkpoint's parent has since been
// closed, or [errs.ErrMissingCheckpoint] if its recorded sibling no longer
// exists.
func (b *Builder[T, I, W]) CloseAt(checkpoint Checkpoint[W], data T) (ID[W], error) {
	recordedSibling, recordedParent := checkpoint.get()

	if b.currentParent() != recordedParent {
		return ID[W]{}, errs.ErrCloseAt
	}

	if s, ok := recordedSibling.Get(); ok && s.Index() >= uint64(len(b.links)) {
		return ID[W]{}, errs.ErrMissingCheckpoint
	}

	first := b.firstInScope(recordedSibling, recordedParent)

	id, err := newID[W](len(b.links))
	if err != nil {
		return ID[W]{}, err
	}

	firstID, hasFirst := first.Get()

	if !hasFirst {
		// Nothing has been emitted since the checkpoint: splice an empty
		// internal node into the gap.
		b.links = append(b.links, link[T, I, W]{
			data: data,
			kind: kindNode,
			span: flavor.Point(b.cursor),
		})

		b.spliceIntoScope(recordedSibling, recordedParent, id, flavor.NonePointer[W]())
		b.sibling = flavor.SomePointer(id)

		debug.Log(nil, "close_at", "id=%v empty", id)

		return id, nil
	}

	last := b.sibling
	lastID, _ := last.Get()
	oldNext := b.links[lastID.Index()].next

	span := b.links[firstID.Index()].span.Join(b.links[lastID.Index()].span)

	b.links = append(b.links, link[T, I, W]{
		data:  data,
		kind:  kindNode,
		span:  span,
		first: first,
		last:  last,
	})

	// Re-parent every wrapped sibling onto the new node.
	for cur := firstID; ; {
		b.links[cur.Index()].parent = flavor.SomePointer(id)

		if cur == lastID {
			break
		}

		next, _ := b.links[cur.Index()].next.Get()
		cur = next
	}

	b.links[firstID.Index()].prev = flavor.NonePointer[W]()
	b.links[lastID.Index()].next = flavor.NonePointer[W]()

	b.spliceIntoScope(recordedSibling, recordedParent, id, oldNext)
	b.sibling = flavor.SomePointer(id)

	debug.Log(nil, "close_at", "id=%v span=%v", id, span)

	return id, nil
}

// Insert appends a zero-child internal node with the given payload,
// spanning length units starting at the current cursor, and advances the
// cursor. It is a convenience over the common Open immediately followed by
// Close, letting a childless node claim an explicit source width (unlike a
// plain empty Open/Close pair, whose span collapses to a point) in a
// single call. It fails with [errs.ErrOverflow] under the same condition
// as [Builder.Token].
func (b *Builder[T, I, W]) Insert(data T, length uint64) (ID[W], error) {
	start := b.cursor

	end, ok := start.CheckedAdd(length)
	if !ok {
		return ID[W]{}, errs.New(errs.KindOverflow, "insert would overflow source cursor")
	}

	id, err := b.insertLink(data, kindNode, flavor.NewSpan(start, end))
	if err != nil {
		return ID[W]{}, err
	}

	b.cursor = end
	b.sibling = flavor.SomePointer(id)

	if start.Less(end) {
		b.offsets.append(start, id)
	}

	debug.Log(nil, "insert", "id=%v span=[%v,%v)", id, start, end)

	return id, nil
}

// InsertAt is a convenience alias for [Builder.CloseAt]: when checkpoint
// has nothing emitted after it, CloseAt already produces exactly the
// zero-child node this name promises, splicing it in at the checkpoint's
// position; when something has been emitted since, it wraps that instead,
// same as any other CloseAt call.
func (b *Builder[T, I, W]) InsertAt(checkpoint Checkpoint[W], data T) (ID[W], error) {
	return b.CloseAt(checkpoint, data)
}

// Build finalizes construction into an immutable [Tree]. It fails with
// [errs.ErrBuild] if any node opened with Open has not been closed.
func (b *Builder[T, I, W]) Build() (Tree[T, I, W], error) {
	if len(b.stack) != 0 {
		return Tree[T, I, W]{}, errs.ErrBuild
	}

	return convert(b)
}

// Len returns the number of records emitted so far, including ones still
// inside an open node.
func (b *Builder[T, I, W]) Len() int {
	return len(b.links)
}
