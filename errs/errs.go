// Package errs declares the single error enumeration shared by the
// flavor, builder, tree and change-set components of syntree.
//
// It is a standalone package (rather than living in the root syntree
// package) so that flavor's NewPointer can report a [KindOverflow] error
// without creating an import cycle with the root package,
// which itself depends on flavor.
package errs

import "github.com/flier/syntree/pkg/xerrors"

// Kind discriminates the fixed set of ways a syntree operation can fail.
type Kind int

const (
	// KindClose is returned by Close with no open parent.
	KindClose Kind = iota
	// KindBuild is returned by Build with a non-empty parent stack.
	KindBuild
	// KindCloseAt is returned by CloseAt when the checkpoint no longer
	// refers to a sibling of the current cursor.
	KindCloseAt
	// KindMissingCheckpoint is returned when a checkpoint's recorded
	// identifier is no longer addressable.
	KindMissingCheckpoint
	// KindMissingNode is returned when a caller-supplied identifier does
	// not address a node.
	KindMissingNode
	// KindOverflow is returned when an arithmetic or identifier operation
	// would exceed the flavor's Index or Width bounds.
	KindOverflow
)

func (k Kind) String() string {
	switch k {
	case KindClose:
		return "close: no open parent"
	case KindBuild:
		return "build: unbalanced tree"
	case KindCloseAt:
		return "close_at: checkpoint is no longer valid at this position"
	case KindMissingCheckpoint:
		return "close_at: checkpoint identifier is no longer addressable"
	case KindMissingNode:
		return "missing node for identifier"
	case KindOverflow:
		return "identifier or index overflow"
	default:
		return "unknown syntree error"
	}
}

// Error is the single error type returned by every fallible syntree
// operation. Callers that need to distinguish a specific failure mode
// should compare against the sentinel values below with [errors.Is], or
// recover the [Kind] with [errors.As].
type Error struct {
	Kind Kind
	// Msg, if non-empty, adds operation-specific context (an identifier,
	// an offset) to the error message.
	Msg string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}

	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is the sentinel for e's Kind, so that
// errors.Is(err, ErrOverflow) works through any wrapping.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*Error)
	return ok && sentinel.Kind == e.Kind && sentinel.Msg == ""
}

// New constructs an *Error of the given kind with an optional formatted
// message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Sentinels usable with errors.Is.
var (
	ErrClose             = &Error{Kind: KindClose}
	ErrBuild             = &Error{Kind: KindBuild}
	ErrCloseAt           = &Error{Kind: KindCloseAt}
	ErrMissingCheckpoint = &Error{Kind: KindMissingCheckpoint}
	ErrMissingNode       = &Error{Kind: KindMissingNode}
	ErrOverflow          = &Error{Kind: KindOverflow}
)

var _ error = ErrClose

// AsKind reports whether err (or one it wraps) is a *[Error] and returns
// its [Kind].
func AsKind(err error) (Kind, bool) {
	e, ok := xerrors.AsA[*Error](err)
	if !ok {
		return 0, false
	}

	return e.Kind, true
}
