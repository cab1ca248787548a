// Package report renders errors as structured stack traces and full
// diagnostic reports.
//
// The [Formatter] is the entry point. It is created over a [style.Theme]
// and renders through named style slots, so the same layout degrades to
// plain text on terminals without color support:
//
//	f := report.NewFormatter(style.NewTheme(os.Stderr))
//	f.WriteTrace(os.Stderr, err)
//
// # Trace Layout
//
// A trace opens with the error's type and message, then lists its stack
// frames grouped by package, capped at [MaxFrames] entries. Each nested
// cause, obtained through [errors.Unwrap], contributes its own CAUSED BY
// block with its own frames, capped at [MaxCauses] levels; deeper chains
// are summarized with a single omission note.
//
// # Stack Sources
//
// Frames are extracted from any error exposing Callers() []uintptr (the
// errs package) or the StackTrace method of github.com/pkg/errors.
// Errors carrying neither render with a "No stack trace available"
// placeholder.
//
// # Full Reports
//
// [Formatter.WriteReport] wraps the trace in a complete diagnostic report:
// runtime environment, the error's merged context (caller-supplied entries
// win on collision), and remediation steps proposed by [SuggestActions]
// from the error's type and message.
//
// # Styling
//
// Every visual element maps to a [style.Part] slot that can be overridden
// with [Formatter.SetStyle]. [Formatter.UseLevel] re-keys the prominent
// slots to a severity's color, and [Formatter.Highlight] colors frames by
// package prefix, first match winning. Frames belonging to the package
// that declares the error's type always use the type style.
package report
