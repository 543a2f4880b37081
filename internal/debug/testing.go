package debug

import (
	"testing"

	"github.com/timandy/routine"
)

var tls = routine.NewThreadLocal[testing.TB]()

// WithTesting routes this goroutine's [Log] output through t.Log instead of
// stderr for the duration of a test, restoring whatever was set before on
// return. Useful so `go test -v` interleaves debug traces with the rest of
// a test's own logging instead of printing them out of band.
func WithTesting(t testing.TB) func() {
	t.Helper()

	prev := tls.Get()
	tls.Set(t)
	return func() {
		tls.Set(prev)
	}
}
