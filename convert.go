package syntree

import "github.com/flier/syntree/flavor"

// convert renumbers a builder's arena into the preorder layout a [Tree]
// requires.
//
// The builder's own arena is not necessarily in preorder: [Builder.CloseAt]
// appends the wrapping node after the children it wraps, so a node can
// have a smaller arena index than its parent. This walks the builder's
// first/next chains non-recursively, assigning each node a fresh
// sequential identifier the moment it is first visited, which is exactly
// preorder by construction.
func convert[T any, I flavor.Index[I], W flavor.Width](b *Builder[T, I, W]) (Tree[T, I, W], error) {
	firstSrc, ok := b.first.Get()
	if !ok {
		return Tree[T, I, W]{}, nil
	}

	type frame struct {
		src    ID[W]
		parent flavor.Option[W] // destination parent id
		prev   flavor.Option[W] // destination previous-sibling id
		down   bool
	}

	remap := make([]flavor.Option[W], len(b.links))

	stack := []frame{{src: firstSrc, down: true}}

	var dst []link[T, I, W]
	var rootFirst, rootLast flavor.Option[W]

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if !top.down {
			if n, ok := b.links[top.src.Index()].next.Get(); ok {
				prevDst, _ := remap[top.src.Index()].Get()
				top.src = n
				top.prev = flavor.SomePointer(prevDst)
				top.down = true

				continue
			}

			stack = stack[:len(stack)-1]

			continue
		}

		srcLink := &b.links[top.src.Index()]

		destID, err := newID[W](len(dst))
		if err != nil {
			return Tree[T, I, W]{}, err
		}

		remap[top.src.Index()] = flavor.SomePointer(destID)

		dst = append(dst, link[T, I, W]{
			data:   srcLink.data,
			kind:   srcLink.kind,
			span:   srcLink.span,
			parent: top.parent,
			prev:   top.prev,
		})

		if p, ok := top.prev.Get(); ok {
			dst[p.Index()].next = flavor.SomePointer(destID)
		}

		if p, ok := top.parent.Get(); ok {
			if dst[p.Index()].first.IsNone() {
				dst[p.Index()].first = flavor.SomePointer(destID)
			}

			dst[p.Index()].last = flavor.SomePointer(destID)
		} else {
			if rootFirst.IsNone() {
				rootFirst = flavor.SomePointer(destID)
			}

			rootLast = flavor.SomePointer(destID)
		}

		if child, ok := srcLink.first.Get(); ok {
			stack = append(stack, frame{src: child, parent: flavor.SomePointer(destID), down: true})

			continue
		}

		for i := len(stack) - 1; i >= 0; i-- {
			wasDown := stack[i].down
			stack[i].down = false

			if !wasDown {
				break
			}
		}
	}

	var span flavor.Span[I]

	if r, ok := rootFirst.Get(); ok {
		l, _ := rootLast.Get()
		span = dst[r.Index()].span.Join(dst[l.Index()].span)
	}

	offsets := b.offsets.remap(remap)

	return Tree[T, I, W]{
		links:   dst,
		span:    span,
		first:   rootFirst,
		last:    rootLast,
		offsets: offsets,
	}, nil
}
