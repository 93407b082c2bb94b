package qhull

import (
	"fmt"

	"github.com/hullworks/qhull/internal/engine"
)

// ErrorKind classifies an engine failure. The numeric values are the
// engine's error codes, which follow the classic qhull numbering.
type ErrorKind int

const (
	KindInput     ErrorKind = engine.ErrInput
	KindSingular  ErrorKind = engine.ErrSingular
	KindPrecision ErrorKind = engine.ErrPrec
	KindMemory    ErrorKind = engine.ErrMem
	KindQhull     ErrorKind = engine.ErrQhull
	KindOther     ErrorKind = engine.ErrOther
	KindTopology  ErrorKind = engine.ErrTopology
	KindWide      ErrorKind = engine.ErrWide
	KindNested    ErrorKind = engine.ErrTryNested
)

func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSingular:
		return "singular input"
	case KindPrecision:
		return "precision failure"
	case KindMemory:
		return "memory"
	case KindQhull:
		return "internal inconsistency"
	case KindOther:
		return "other"
	case KindTopology:
		return "topology"
	case KindWide:
		return "wide facet"
	case KindNested:
		return "nested recovery point"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// KindFromCode maps an engine error code onto a kind. Codes outside the
// known range come back as KindOther; the raw code stays on the Error.
func KindFromCode(code int) ErrorKind {
	switch code {
	case engine.ErrInput, engine.ErrSingular, engine.ErrPrec, engine.ErrMem,
		engine.ErrQhull, engine.ErrOther, engine.ErrTopology, engine.ErrWide,
		engine.ErrTryNested:
		return ErrorKind(code)
	}
	return KindOther
}

// Error is a typed computation failure: the numeric code recovered at the
// trampoline plus whatever diagnostic text the engine wrote to its error
// stream during the failing call.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
}

func (e *Error) Error() string {
	s := fmt.Sprintf("qhull error: %s (#%d)", e.Kind, e.Code)
	if e.Message != "" {
		s += "\n" + e.Message
	}
	return s
}

func inputErrorf(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInput,
		Code:    engine.ErrInput,
		Message: fmt.Sprintf(format, args...),
	}
}

// Try runs exactly one fallible engine operation under a fresh recovery
// point and converts a failure into a typed *Error carrying the captured
// diagnostic text. The closure's normal return is the success case.
//
// This is also the low-level escape hatch: arbitrary operations can be run
// against the raw context, but keep one fallible call per Try so an error is
// attributable to the call that raised it.
func (qh *Qh) Try(f func(*engine.Context)) error {
	if qh.closed {
		return &Error{Kind: KindQhull, Code: engine.ErrQhull, Message: "context is closed"}
	}
	code := engine.TryOn(qh.ctx, f)
	if code == engine.ErrNone {
		return nil
	}
	return &Error{
		Kind:    KindFromCode(code),
		Code:    code,
		Message: qh.buffers.takeErrText(qh.ctx),
	}
}
