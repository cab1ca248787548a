package errs

import (
	"errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"

	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

// Highlight binds a package import-path prefix to a style part.
// Highlights are ordered: the first matching prefix wins during rendering.
type Highlight struct {
	Prefix string
	Part   style.Part
}

// Error is a context-aware error wrapper.
//
// Beyond a message and an optional cause, an Error carries the key/value
// context gathered at the failure site, a severity that drives how reports
// are styled, an optional suggested solution, ordered package highlights,
// and the call stack captured at construction.
//
// The With* mutators return the receiver for fluent chaining and may be
// called in any order; later writes win per context key. Once an Error has
// been handed to a logger it should be treated as immutable.
type Error struct {
	msg        string
	cause      error
	ctx        map[string]any
	severity   level.Level
	solution   string
	highlights []Highlight
	stack      []uintptr
}

// New creates an Error with the given message, capturing the call stack.
func New(msg string) *Error {
	return &Error{
		msg:      msg,
		severity: level.Error,
		stack:    callers(),
	}
}

// Newf creates an Error with a formatted message, capturing the call stack.
func Newf(format string, args ...any) *Error {
	return &Error{
		msg:      fmt.Sprintf(format, args...),
		severity: level.Error,
		stack:    callers(),
	}
}

// Wrap creates an Error wrapping cause, capturing the call stack.
// A nil cause yields the same result as [New].
func Wrap(cause error, msg string) *Error {
	return &Error{
		msg:      msg,
		cause:    cause,
		severity: level.Error,
		stack:    callers(),
	}
}

// From converts any error into an *Error.
//
// A nil error yields nil, and an error that already is (or wraps) an *Error
// is returned as is so repeated enrichment accumulates on one value.
// Anything else is wrapped with its own message, preserving the original as
// the cause so errors.Is and errors.As continue to see it.
func From(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	return &Error{
		msg:      err.Error(),
		cause:    err,
		severity: level.Error,
		stack:    callers(),
	}
}

// WithSeverity adopts err via [From] and assigns the given severity.
// A nil err yields nil.
func WithSeverity(err error, l level.Level) *Error {
	e := From(err)
	if e == nil {
		return nil
	}

	return e.WithLevel(l)
}

// Error implements the error interface.
// The cause message is appended unless it already equals the message.
func (e *Error) Error() string {
	if e.cause != nil && e.cause.Error() != e.msg {
		return e.msg + ": " + e.cause.Error()
	}

	return e.msg
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Message returns the message without the cause chain appended.
func (e *Error) Message() string { return e.msg }

// WithContext attaches one key/value pair, overwriting any previous value
// for the key.
func (e *Error) WithContext(key string, value any) *Error {
	if e.ctx == nil {
		e.ctx = make(map[string]any)
	}
	e.ctx[key] = value

	return e
}

// WithContextMap merges all entries of m into the context.
// Later writes win per key; m itself is never retained.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if len(m) == 0 {
		return e
	}

	if e.ctx == nil {
		e.ctx = make(map[string]any, len(m))
	}
	for k, v := range m {
		e.ctx[k] = v
	}

	return e
}

// WithLevel sets the severity used to style reports of this error.
// It changes presentation only: records already emitted are unaffected.
func (e *Error) WithLevel(l level.Level) *Error {
	e.severity = l

	return e
}

// WithSolution attaches a suggested remediation.
func (e *Error) WithSolution(solution string) *Error {
	e.solution = solution

	return e
}

// HighlightPackage adds (or replaces) a package-prefix highlight.
func (e *Error) HighlightPackage(prefix string, part style.Part) *Error {
	for i, h := range e.highlights {
		if h.Prefix == prefix {
			e.highlights[i].Part = part

			return e
		}
	}
	e.highlights = append(e.highlights, Highlight{Prefix: prefix, Part: part})

	return e
}

// Context returns a copy of the attached context, or nil if empty.
func (e *Error) Context() map[string]any {
	if len(e.ctx) == 0 {
		return nil
	}

	ctx := make(map[string]any, len(e.ctx))
	for k, v := range e.ctx {
		ctx[k] = v
	}

	return ctx
}

// Level returns the severity assigned to this error.
func (e *Error) Level() level.Level { return e.severity }

// Solution returns the suggested remediation, or "" when unset.
func (e *Error) Solution() string { return e.solution }

// Highlights returns the ordered package highlights.
func (e *Error) Highlights() []Highlight { return e.highlights }

// Callers returns the program counters captured at construction.
func (e *Error) Callers() []uintptr {
	pcs := make([]uintptr, len(e.stack))
	copy(pcs, e.stack)

	return pcs
}

// StackTrace exposes the captured stack in the form used by
// github.com/pkg/errors, so this type interoperates with tooling written
// against that interface.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	st := make(pkgerrors.StackTrace, len(e.stack))
	for i, pc := range e.stack {
		st[i] = pkgerrors.Frame(pc)
	}

	return st
}

const maxStackDepth = 48

// callers captures the stack of the exported constructor's caller.
func callers() []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)

	return pcs[:n]
}
