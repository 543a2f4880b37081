// Package flavor declares the compile-time parameters of a syntax tree: the
// numeric width used for node identifiers (Width/Pointer) and the
// realization used for span endpoints (Index).
//
// A tree is generic over both axes so that a parser embedding tens of
// millions of nodes can pick a 32-bit pointer, while a parser that only
// needs tree shape can drop span storage entirely by picking [Empty] as its
// index.
package flavor

import (
	"fmt"

	"github.com/flier/syntree/errs"
)

// Width is the set of unsigned integer types that can back a node
// identifier. [Pointer] is derived from this width by reserving its
// all-ones bit pattern to mean "no value".
type Width interface {
	~uint16 | ~uint32 | ~uint64 | ~uint
}

// Pointer is a non-max identifier: for a width W, the all-ones value of W is
// reserved as a sentinel, which lets [Option] represent "none" without an
// extra discriminant.
//
// Pointer values are produced by [NewPointer] and are never directly
// constructed by callers; they are opaque identifiers into an arena.
type Pointer[W Width] struct {
	// raw stores value XOR max, so the reserved sentinel (max) corresponds
	// to raw == 0. This mirrors the non-max encoding used by the original
	// implementation rather than storing the value directly, so that the
	// zero value of Pointer is never mistaken for a valid identifier.
	raw W
}

func maxOf[W Width]() W {
	return ^W(0)
}

// NewPointer constructs a Pointer from a raw, zero-based index.
//
// It fails with [ErrOverflow] if value does not fit in W, or if it equals
// the reserved all-ones sentinel.
func NewPointer[W Width](value uint64) (Pointer[W], error) {
	max := maxOf[W]()
	w := W(value)

	if uint64(w) != value || w == max {
		return Pointer[W]{}, errs.New(errs.KindOverflow, fmt.Sprintf("identifier %d exceeds pointer width", value))
	}

	return Pointer[W]{raw: w ^ max}, nil
}

// Index returns the zero-based index this pointer refers to.
func (p Pointer[W]) Index() uint64 {
	return uint64(p.raw ^ maxOf[W]())
}

func (p Pointer[W]) String() string {
	return fmt.Sprintf("%d", p.Index())
}

// Option is a sparse-max encoded optional [Pointer]: since a [Pointer]'s raw
// storage is value XOR max, the only raw value a valid Pointer can never
// produce is zero (it would require value == max, which [NewPointer]
// rejects). Option reuses that hole as its "none" representation, so an
// Option[W] occupies exactly as much space as a bare W and never requires a
// heap allocation — the same niche-filling trick Rust's
// Option<NonZeroUsize> gets from the compiler, done explicitly here.
type Option[W Width] struct {
	raw W
}

// NonePointer returns the empty Option.
func NonePointer[W Width]() Option[W] {
	return Option[W]{}
}

// SomePointer wraps a valid Pointer in an Option.
func SomePointer[W Width](p Pointer[W]) Option[W] {
	return Option[W]{raw: p.raw}
}

// IsSome reports whether the option carries a pointer.
func (o Option[W]) IsSome() bool {
	return o.raw != 0
}

// IsNone reports whether the option is empty.
func (o Option[W]) IsNone() bool {
	return !o.IsSome()
}

// Get returns the contained pointer and true, or the zero Pointer and false
// if the option is empty.
func (o Option[W]) Get() (Pointer[W], bool) {
	if o.IsNone() {
		return Pointer[W]{}, false
	}

	return Pointer[W]{raw: o.raw}, true
}

// IsValid reports whether p was produced by [NewPointer] rather than being
// a zero-valued Pointer — useful when a Pointer is held outside an Option
// and its zero value must be distinguished from a real identifier.
func (p Pointer[W]) IsValid() bool {
	return p.raw != 0
}

func (o Option[W]) String() string {
	if p, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", p)
	}

	return "None"
}
