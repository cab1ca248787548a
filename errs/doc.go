// Package errs provides the context-aware error wrapper consumed by the
// exception reporter.
//
// An [Error] owns everything needed to render a rich report: message, cause,
// key/value context, a severity for styling, an optional suggested solution,
// package highlights, and the call stack captured at construction. The
// wrapper composes these fields directly rather than reaching into any
// foreign error type, and it interoperates with github.com/pkg/errors by
// exposing its stack through the same StackTrace interface.
//
// [Classify] assigns a reporting severity to arbitrary errors using a fixed
// name/message heuristic, and the Validation/Config/Data constructors seed
// common failure categories.
package errs
