//go:build go1.23

package opt

import "iter"

// Iter returns a sequence that yields o's value once if it is Some, and
// nothing at all if it is None.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.IsSome() {
			yield(o.unwrap())
		}
	}
}
