package report

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ardnew/glint/errs"
	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

// Rendering bounds. Both caps are unconditional so the total output size is
// a function of these constants, never of the input: a pathological or even
// cyclic cause chain cannot produce unbounded output.
const (
	// MaxFrames is the number of stack frames rendered per trace section.
	MaxFrames = 20

	// MaxCauses is the number of nested causes rendered per trace.
	MaxCauses = 5
)

// Box-drawing runes used by the styled layout.
const (
	boxH       = "─"
	boxV       = "│"
	boxTopL    = "┌"
	boxBotL    = "└"
	boxBranchL = "├"
)

type highlight struct {
	prefix string
	style  style.Style
}

// Formatter renders errors as structured, styled traces and reports.
//
// Styling is configured per named [style.Part] slot and by an ordered
// package-prefix highlight table; the first matching prefix wins, and the
// package declaring the error's own type always renders with the type style
// regardless of the table. All configuration methods return the receiver
// for chaining. A Formatter is not safe for concurrent mutation, but
// rendering through a fully configured Formatter is.
type Formatter struct {
	theme      style.Theme
	styles     map[style.Part]style.Style
	highlights []highlight
	plain      bool
}

// NewFormatter creates a Formatter over the given theme.
//
// The default slot assignments mirror the theme's report parts, and the
// plain-text fallback is selected automatically when the theme is unstyled.
// Default highlights dim Go runtime internals and mark this module's own
// packages.
func NewFormatter(theme style.Theme) *Formatter {
	f := &Formatter{
		theme: theme,
		styles: map[style.Part]style.Style{
			style.Header:       theme.Get(style.Header),
			style.Message:      theme.Get(style.Message),
			style.Type:         theme.Get(style.Type),
			style.StackTrace:   theme.Get(style.StackTrace),
			style.ClassName:    theme.Get(style.ClassName),
			style.MethodName:   theme.Get(style.MethodName),
			style.FileName:     theme.Get(style.FileName),
			style.LineNumber:   theme.Get(style.LineNumber),
			style.CausedBy:     theme.Get(style.CausedBy),
			style.NativeMethod: theme.Get(style.NativeMethod),
			style.MoreFrames:   theme.Get(style.MoreFrames),
			style.PackageName:  theme.Get(style.PackageName),
			style.Label:        theme.Get(style.Label),
			style.Value:        theme.Get(style.Value),
		},
		plain: !theme.Styled(),
	}

	return f.
		Highlight("runtime", theme.Get(style.StackTrace)).
		Highlight("testing", theme.Get(style.StackTrace)).
		Highlight("github.com/ardnew/glint", theme.Get(style.Success))
}

// SetStyle overrides the style of one slot.
func (f *Formatter) SetStyle(part style.Part, s style.Style) *Formatter {
	f.styles[part] = s

	return f
}

// Highlight adds a package-prefix highlight, replacing any existing entry
// for the same prefix. Earlier entries match first.
func (f *Formatter) Highlight(prefix string, s style.Style) *Formatter {
	for i, h := range f.highlights {
		if h.prefix == prefix {
			f.highlights[i].style = s

			return f
		}
	}
	f.highlights = append(f.highlights, highlight{prefix: prefix, style: s})

	return f
}

// UseLevel keys the header, message, and type slots to the theme style of
// the given severity. At [level.Error] and above, the cause slot follows as
// well.
func (f *Formatter) UseLevel(l level.Level) *Formatter {
	s := l.Style(f.theme)

	f.styles[style.Header] = s
	f.styles[style.Message] = s
	f.styles[style.Type] = s

	if l.AtLeast(level.Error) {
		f.styles[style.CausedBy] = s
	}

	return f
}

// Apply copies the severity and package highlights carried by a rich error
// onto this formatter.
func (f *Formatter) Apply(e *errs.Error) *Formatter {
	if e == nil {
		return f
	}

	f.UseLevel(e.Level())
	for _, h := range e.Highlights() {
		f.Highlight(h.Prefix, f.theme.Get(h.Part))
	}

	return f
}

// Plain forces or clears the plain-text fallback layout. The default
// follows the theme's capability.
func (f *Formatter) Plain(plain bool) *Formatter {
	f.plain = plain

	return f
}

// Format renders err as a formatted trace string.
// A nil error yields "".
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	f.WriteTrace(&sb, err)

	return sb.String()
}

// WriteTrace writes the formatted trace of err to w.
// Either argument being nil makes the call a no-op.
func (f *Formatter) WriteTrace(w io.Writer, err error) {
	if w == nil || err == nil {
		return
	}

	if f.plain {
		f.writeSimple(w, err)

		return
	}

	f.line(w, style.Header, " EXCEPTION ")
	fmt.Fprintln(w, f.render(style.Type, "╭─ Type: ")+f.render(style.Type, typeName(err)))
	fmt.Fprintln(w, f.render(style.Message, "╰─ Message: ")+f.render(style.Message, message(err)))

	fmt.Fprintln(w, "\n"+f.render(style.StackTrace, boxTopL+boxH+" STACK TRACE ")+
		f.render(style.StackTrace, strings.Repeat(boxH, 45)))

	f.writeFrames(w, Frames(err), errPackage(err))

	cause := errors.Unwrap(err)
	for depth := 0; cause != nil && depth < MaxCauses; depth++ {
		fmt.Fprintln(w, "\n"+f.render(style.CausedBy, boxBranchL+boxH+" CAUSED BY: ")+
			f.render(style.Type, typeName(cause)))
		fmt.Fprintln(w, f.render(style.CausedBy, boxV+"  ")+
			f.render(style.Message, message(cause)))
		f.line(w, style.CausedBy, boxV)

		f.writeFrames(w, Frames(cause), errPackage(cause))

		cause = errors.Unwrap(cause)
	}

	if cause != nil {
		fmt.Fprintln(w, "\n"+f.render(style.CausedBy,
			boxBranchL+boxH+" Additional nested causes omitted..."))
	}

	f.line(w, style.StackTrace, boxBotL+strings.Repeat(boxH, 67))
}

// writeFrames renders one frame listing, grouping consecutive frames by
// package and capping the listing at [MaxFrames]. The grouping is purely
// presentational: frame order is preserved.
func (f *Formatter) writeFrames(w io.Writer, frames []Frame, errPkg string) {
	if len(frames) == 0 {
		f.line(w, style.StackTrace, boxV+"  No stack trace available")

		return
	}

	shown := min(len(frames), MaxFrames)
	current := ""

	for i, fr := range frames[:shown] {
		if pkg := fr.Package(); pkg != current {
			if i > 0 {
				f.line(w, style.PackageName, boxV)
			}
			f.line(w, style.PackageName, boxV+"  package "+pkg)
			f.line(w, style.PackageName, boxV)
			current = pkg
		}

		recv, method := fr.Receiver()

		var sb strings.Builder
		sb.WriteString(f.render(style.StackTrace, boxV+"  "))
		sb.WriteString(f.render(style.StackTrace, fmt.Sprintf("%02d", i)))
		sb.WriteString(": ")
		sb.WriteString(f.frameStyle(fr, errPkg).Render(recv))
		sb.WriteString(f.render(style.StackTrace, "."))
		sb.WriteString(f.render(style.MethodName, method))
		sb.WriteString(f.render(style.StackTrace, " ("))
		sb.WriteString(f.location(fr))
		sb.WriteString(f.render(style.StackTrace, ")"))

		fmt.Fprintln(w, sb.String())
	}

	if len(frames) > shown {
		f.line(w, style.StackTrace, boxV)
		f.line(w, style.MoreFrames, fmt.Sprintf("%s  ... %d more frames (showing first %d)",
			boxV, len(frames)-shown, shown))
	}
}

// frameStyle selects the style for a frame's receiver: the error's own
// package always uses the type style, then the first matching highlight
// prefix, then the generic class-name slot.
func (f *Formatter) frameStyle(fr Frame, errPkg string) style.Style {
	pkg := fr.Package()
	if errPkg != "" && filepath.Base(pkg) == errPkg {
		return f.styles[style.Type]
	}

	for _, h := range f.highlights {
		if strings.HasPrefix(pkg, h.prefix) {
			return h.style
		}
	}

	return f.styles[style.ClassName]
}

func (f *Formatter) location(fr Frame) string {
	switch {
	case fr.Native():
		return f.render(style.NativeMethod, "Native Method")
	case fr.File == "":
		return f.render(style.FileName, "Unknown Source")
	case fr.Line < 0:
		return f.render(style.FileName, filepath.Base(fr.File))
	default:
		return f.render(style.FileName, filepath.Base(fr.File)) +
			f.render(style.StackTrace, ":") +
			f.render(style.LineNumber, fmt.Sprintf("%d", fr.Line))
	}
}

// writeSimple renders err without any styling or box layout: type, message,
// the full uncapped stack, and one level of cause with its own full stack.
func (f *Formatter) writeSimple(w io.Writer, err error) {
	fmt.Fprintln(w, "EXCEPTION: "+typeName(err))
	fmt.Fprintln(w, "MESSAGE: "+message(err))
	fmt.Fprintln(w, "\nSTACK TRACE:")

	for _, fr := range Frames(err) {
		fmt.Fprintf(w, "  at %s (%s)\n", fr.Function, fr.Location())
	}

	cause := errors.Unwrap(err)
	if cause == nil {
		return
	}

	fmt.Fprintln(w, "\nCAUSED BY: "+typeName(cause))
	fmt.Fprintln(w, "MESSAGE: "+message(cause))
	fmt.Fprintln(w, "\nSTACK TRACE:")

	for _, fr := range Frames(cause) {
		fmt.Fprintf(w, "  at %s (%s)\n", fr.Function, fr.Location())
	}
}

func (f *Formatter) render(part style.Part, text string) string {
	return f.styles[part].Render(text)
}

func (f *Formatter) line(w io.Writer, part style.Part, text string) {
	fmt.Fprintln(w, f.render(part, text))
}

// typeName reports the dynamic type of err, such as "*errs.Error".
func typeName(err error) string {
	return fmt.Sprintf("%T", err)
}

// message reports the error's own message, without its cause chain appended
// when the error distinguishes the two.
func message(err error) string {
	if e, ok := err.(interface{ Message() string }); ok {
		return e.Message()
	}

	return err.Error()
}

// errPackage reports the short package name declaring the error's dynamic
// type, used to mark the error's own frames in a trace.
func errPackage(err error) string {
	name := strings.TrimLeft(typeName(err), "*")
	if dot := strings.Index(name, "."); dot > 0 {
		return name[:dot]
	}

	return ""
}
