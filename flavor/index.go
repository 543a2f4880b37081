package flavor

import (
	"math"
	"strconv"
)

// Index is the realization of a span endpoint. Go generics cannot add
// arithmetic operators to a zero-sized marker type the way the original
// implementation's associated-type trait does, so instead of constraining
// a type parameter to "any unsigned primitive", each realization
// implements this small interface directly — the same interface-based
// polymorphism the teacher uses for its ART node strategies.
//
// Recognized realizations are [Uint32Index], [UintIndex] and [Empty].
type Index[I any] interface {
	comparable

	// CheckedAdd returns the index advanced by n units, and false if doing so
	// would overflow the underlying representation.
	CheckedAdd(n uint64) (I, bool)
	// Diff returns the number of units between other and the receiver,
	// assuming other >= receiver.
	Diff(other I) uint64
	// Less reports whether the receiver sorts strictly before other.
	Less(other I) bool
	// String renders the index for debugging and error messages.
	String() string
}

// Uint32Index is the default span realization: a u32 offset, the same
// width the original implementation's default flavor uses.
type Uint32Index uint32

func (i Uint32Index) CheckedAdd(n uint64) (Uint32Index, bool) {
	sum := uint64(i) + n
	if sum > math.MaxUint32 {
		return 0, false
	}

	return Uint32Index(sum), true
}

func (i Uint32Index) Diff(o Uint32Index) uint64 { return uint64(o) - uint64(i) }
func (i Uint32Index) Less(o Uint32Index) bool   { return i < o }
func (i Uint32Index) String() string            { return strconv.FormatUint(uint64(i), 10) }

// UintIndex is a machine-word-width span realization, for trees whose
// total source length may exceed 4GiB.
type UintIndex uint

func (i UintIndex) CheckedAdd(n uint64) (UintIndex, bool) {
	sum := uint64(i) + n
	if sum < uint64(i) {
		return 0, false
	}

	return UintIndex(sum), true
}

func (i UintIndex) Diff(o UintIndex) uint64 { return uint64(o) - uint64(i) }
func (i UintIndex) Less(o UintIndex) bool   { return i < o }
func (i UintIndex) String() string          { return strconv.FormatUint(uint64(i), 10) }

// Empty is a zero-sized index realization: every span operation is a
// no-op and every span compares equal. It is used when a caller needs
// only the tree's shape and never its source positions, eliminating span
// storage entirely.
type Empty struct{}

func (Empty) CheckedAdd(uint64) (Empty, bool) { return Empty{}, true }
func (Empty) Diff(Empty) uint64               { return 0 }
func (Empty) Less(Empty) bool                 { return false }
func (Empty) String() string                  { return "-" }

var (
	_ Index[Uint32Index] = Uint32Index(0)
	_ Index[UintIndex]   = UintIndex(0)
	_ Index[Empty]       = Empty{}
)
