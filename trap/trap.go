package trap

import (
	"strings"
	"time"

	"github.com/ardnew/glint"
	"github.com/ardnew/glint/errs"
	"github.com/ardnew/glint/level"
)

// Arg names one argument of an intercepted call for entry logging and
// failure context. Values are summarized, never rendered verbatim; see the
// package documentation for the redaction rules.
type Arg struct {
	Name  string
	Value any
}

// Call invokes fn under interception: entry and exit are logged at
// [level.Debug] through l, and a failure is reported, enriched, and
// rethrown.
//
// On error, the returned error is an [errs.Error] wrapping the original,
// carrying the call identity, elapsed time, and summarized arguments as
// context, with its severity classified from the original error. The
// original remains reachable through [errors.Unwrap]. On success the
// result and nil are returned unchanged.
func Call(
	l *glint.Logger,
	class, method string,
	args []Arg,
	fn func() (any, error),
) (any, error) {
	site := class + "." + method

	if l.Enabled(level.Debug) {
		l.Debug("{}({})", site, argList(args))
	}

	start := time.Now()
	result, err := fn()
	elapsed := time.Since(start)

	if err == nil {
		if l.Enabled(level.Debug) {
			if result != nil {
				l.Debug("{} completed in {}ms -> {}",
					site, elapsed.Milliseconds(), summarize(result))
			} else {
				l.Debug("{} completed in {}ms", site, elapsed.Milliseconds())
			}
		}

		return result, nil
	}

	ctx := map[string]any{
		"class":         class,
		"method":        method,
		"failure_point": site,
		"elapsed_ms":    elapsed.Milliseconds(),
	}
	for _, a := range args {
		ctx["param."+a.Name] = summarize(a.Value)
	}

	severity := errs.Classify(err)
	enriched := errs.From(err).
		WithLevel(severity).
		WithContextMap(ctx)

	l.ReportException(severity, enriched, nil)

	return result, enriched
}

// Wrap is the typed variant of [Call] for functions returning a concrete
// result. Interception behavior is identical; the result is passed through
// without boxing on success and is the zero value of T on failure.
func Wrap[T any](
	l *glint.Logger,
	class, method string,
	args []Arg,
	fn func() (T, error),
) (T, error) {
	var result T

	boxed, err := Call(l, class, method, args, func() (any, error) {
		r, err := fn()
		if err != nil {
			return nil, err
		}

		return r, nil
	})
	if err != nil {
		return result, err
	}

	if r, ok := boxed.(T); ok {
		result = r
	}

	return result, nil
}

func argList(args []Arg) string {
	if len(args) == 0 {
		return ""
	}

	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + "=" + summarize(a.Value)
	}

	return strings.Join(parts, ", ")
}
