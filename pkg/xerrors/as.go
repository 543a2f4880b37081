package xerrors

import "errors"

// AsA reports whether err (or an error it wraps) can be represented as T,
// and if so returns it. It is a generic wrapper around [errors.As], used by
// [errs.AsKind] to recover a *errs.Error out of an arbitrary error chain
// without a type switch at every call site.
func AsA[T error](err error) (T, bool) {
	var target T

	ok := errors.As(err, &target)

	return target, ok
}
