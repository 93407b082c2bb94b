package engine

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error codes reported through the trampoline. The numbering follows the
// classic qhull convention so that callers familiar with the C library can
// match codes directly.
const (
	ErrNone     = 0
	ErrInput    = 1 // bad input to the engine itself
	ErrSingular = 2 // singular (flat) input, no initial simplex
	ErrPrec     = 3 // precision failure while computing a hyperplane
	ErrMem      = 4
	ErrQhull    = 5 // internal consistency failure
	ErrOther    = 6
	ErrTopology = 7 // broken facet/vertex topology
	ErrWide     = 8

	// Reported by TryOn itself when a recovery point is already installed.
	ErrTryNested = -1
)

// Failure unwinds out of arbitrarily deep engine call stacks and is recovered
// at the TryOn boundary. Threading error returns through the recursive hull
// construction would complicate every signature for a condition that aborts
// the whole computation anyway, so the engine panics and the boundary
// converts. This mirrors the longjmp/errexit scheme of the C original.
type Failure struct {
	Code int
	Err  error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("engine failure (code %d): %v", f.Code, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Errexit reports a fatal condition: the diagnostic text goes to the error
// stream, then the failure unwinds to the nearest recovery point.
func (ctx *Context) Errexit(code int, format string, args ...interface{}) {
	err := errors.Errorf(format, args...)
	fmt.Fprintf(ctx.Ferr, "qhull error (code %d): %s\n", code, err.Error())
	panic(&Failure{Code: code, Err: err})
}

// TryOn installs a recovery point on the context, runs fn exactly once, and
// converts an unwinding Failure into its numeric code. Zero means fn returned
// normally.
//
// Installing a nested recovery point is refused: fn is not run and
// ErrTryNested is returned. One fallible call per installation keeps the
// source of an error unambiguous.
//
// Panics that are not engine Failures are re-raised untouched.
func TryOn(ctx *Context, fn func(*Context)) (code int) {
	if !ctx.NoErrexit {
		fmt.Fprintln(ctx.Fout, "qhull: TryOn was nested")
		return ErrTryNested
	}
	ctx.NoErrexit = false
	defer func() {
		ctx.NoErrexit = true
		if r := recover(); r != nil {
			f, ok := r.(*Failure)
			if !ok {
				panic(r)
			}
			code = f.Code
		}
	}()
	fn(ctx)
	return ErrNone
}
