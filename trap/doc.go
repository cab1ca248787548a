// Package trap decorates function calls with entry/exit logging and
// automatic failure reporting.
//
// [Call] and its typed variant [Wrap] log the call site and summarized
// arguments at debug level, time the invocation, and on failure produce a
// full diagnostic report through the logger before returning an enriched
// error:
//
//	user, err := trap.Wrap(log, "UserService", "FindByID",
//		[]trap.Arg{{Name: "id", Value: id}},
//		func() (User, error) { return svc.findByID(id) })
//
// The enriched error wraps the original, so errors.Is and errors.As keep
// working, and carries the call identity, elapsed time, and argument
// summaries as context. Its severity is classified from the original error
// by [errs.Classify].
//
// # Argument Summaries
//
// Argument values never reach the logs verbatim. Values whose type name
// suggests sensitive content (user, password, credential, payment, credit,
// account) render as an opaque "Type@hash" token, as do arrays and slices
// or maps with more than five elements. Long strings are truncated. The
// same summaries appear in entry logs and in failure context.
package trap
