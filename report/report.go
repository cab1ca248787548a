package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/ardnew/glint/errs"
	"github.com/ardnew/glint/style"
)

const subsectionWidth = 50

// WriteReport writes a full diagnostic report for err to w: the error's
// identity, runtime environment, merged context, the formatted stack trace,
// and suggested remediation actions.
//
// Context carried by the error itself (when it is an [errs.Error]) is merged
// with extra; on key collision the extra value wins. A nil err or nil w
// makes the call a no-op.
func (f *Formatter) WriteReport(w io.Writer, err error, extra map[string]any) {
	if w == nil || err == nil {
		return
	}

	stamp := time.Now().Format("2006-01-02 15:04:05")
	f.line(w, style.Header, " EXCEPTION REPORT "+stamp+" ")
	fmt.Fprintln(w)

	f.kv(w, "Exception Type", typeName(err))
	f.kv(w, "Message", message(err))
	fmt.Fprintln(w)

	f.subsection(w, "Environment Information")
	f.kv(w, "Go Version", runtime.Version())
	f.kv(w, "OS Name", runtime.GOOS)
	f.kv(w, "OS Architecture", runtime.GOARCH)

	if wd, werr := os.Getwd(); werr == nil {
		f.kv(w, "Working Directory", wd)
	}
	fmt.Fprintln(w)

	if ctx := mergeContext(err, extra); len(ctx) > 0 {
		f.subsection(w, "Additional Context")

		keys := make([]string, 0, len(ctx))
		for k := range ctx {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			f.kv(w, k, fmt.Sprint(ctx[k]))
		}
		fmt.Fprintln(w)
	}

	f.subsection(w, "Stack Trace")
	f.WriteTrace(w, err)
	fmt.Fprintln(w)

	f.subsection(w, "Suggested Actions")
	for _, action := range SuggestActions(err) {
		fmt.Fprintln(w, f.render(style.StackTrace, boxV+"  ")+
			f.render(style.Value, "• "+action))
	}
}

// Report renders a full diagnostic report for err as a string.
func (f *Formatter) Report(err error, extra map[string]any) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	f.WriteReport(&sb, err, extra)

	return sb.String()
}

// mergeContext combines the context attached to a rich error with the
// caller-supplied entries, which take precedence, plus the error's
// suggested solution when it carries one.
func mergeContext(err error, extra map[string]any) map[string]any {
	merged := map[string]any{}

	var e *errs.Error
	if errors.As(err, &e) {
		for k, v := range e.Context() {
			merged[k] = v
		}

		if sol := e.Solution(); sol != "" {
			merged["Suggested Solution"] = sol
		}
	}

	for k, v := range extra {
		merged[k] = v
	}

	return merged
}

func (f *Formatter) subsection(w io.Writer, title string) {
	head := boxTopL + boxH + " " + title + " "

	pad := subsectionWidth - len([]rune(head))
	if pad < 0 {
		pad = 0
	}

	f.line(w, style.Label, head+strings.Repeat(boxH, pad))
}

func (f *Formatter) kv(w io.Writer, key, value string) {
	fmt.Fprintln(w, f.render(style.StackTrace, boxV+"  ")+
		f.render(style.Label, key+": ")+
		f.render(style.Value, value))
}
