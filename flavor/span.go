package flavor

import "fmt"

// Span is a half-open interval [Start, End) over an [Index] realization I.
type Span[I Index[I]] struct {
	Start I
	End   I
}

// NewSpan constructs a span, panicking if start sorts after end — this is
// the one contract violation the library treats as unrecoverable, per its
// error-handling policy.
func NewSpan[I Index[I]](start, end I) Span[I] {
	if end.Less(start) {
		panic(fmt.Sprintf("syntree: invalid span [%v, %v)", start, end))
	}

	return Span[I]{Start: start, End: end}
}

// Point returns a zero-length span at the given position.
func Point[I Index[I]](at I) Span[I] {
	return Span[I]{Start: at, End: at}
}

// Len returns the number of units covered by the span.
func (s Span[I]) Len() uint64 {
	return s.Start.Diff(s.End)
}

// IsEmpty reports whether the span covers zero units.
func (s Span[I]) IsEmpty() bool {
	return s.Len() == 0
}

// Join returns the smallest span covering both s and other, assuming other
// starts no earlier than s (siblings are joined left-to-right during a
// preorder build, so this never needs to handle overlap or reordering).
func (s Span[I]) Join(other Span[I]) Span[I] {
	return Span[I]{Start: s.Start, End: other.End}
}

// Contains reports whether q falls within the span, i.e. Start <= q < End.
func (s Span[I]) Contains(q I) bool {
	return !q.Less(s.Start) && q.Less(s.End)
}

// Equal reports whether two spans cover exactly the same range.
func (s Span[I]) Equal(other Span[I]) bool {
	return s.Start == other.Start && s.End == other.End
}

// Range returns the span's endpoints as plain integers measured from a
// zero-valued Index, the Go analogue of the original's
// Span::range() -> ops::Range<usize>.
func (s Span[I]) Range() (start, end uint64) {
	var zero I
	return zero.Diff(s.Start), zero.Diff(s.End)
}

func (s Span[I]) String() string {
	return fmt.Sprintf("%v..%v", s.Start, s.End)
}
