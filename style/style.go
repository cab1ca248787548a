package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Part identifies a semantic styling slot.
//
// Severity parts select the color theme of a log level marker, while the
// remaining parts style the individual sections of an exception trace or
// report. Parts are stable names: callers configure styling per part without
// knowing which colors a [Theme] assigns to it.
type Part string

// Severity parts, one per color family used by the level table.
const (
	Trace     Part = "trace"
	Debug     Part = "debug"
	Info      Part = "info"
	Success   Part = "success"
	Highlight Part = "highlight"
	Important Part = "important"
	Warning   Part = "warning"
	Error     Part = "error"
	Critical  Part = "critical"
	Security  Part = "security"
	Todo      Part = "todo"
	Plain     Part = "plain"
)

// Trace and report parts.
const (
	Header       Part = "header"
	Message      Part = "message"
	Type         Part = "type"
	StackTrace   Part = "stackTrace"
	ClassName    Part = "className"
	MethodName   Part = "methodName"
	FileName     Part = "fileName"
	LineNumber   Part = "lineNumber"
	CausedBy     Part = "causedBy"
	NativeMethod Part = "nativeMethod"
	MoreFrames   Part = "moreFrames"
	PackageName  Part = "packageName"
	Label        Part = "label"
	Value        Part = "value"
)

// Style renders text with a fixed visual treatment.
// The zero value renders text unchanged.
type Style struct {
	style  lipgloss.Style
	active bool
}

// Render applies the style to text.
// Inactive styles (including the zero value) return text verbatim.
func (s Style) Render(text string) string {
	if !s.active {
		return text
	}

	return s.style.Render(text)
}

// Theme maps every [Part] to a [Style] for one output target.
//
// A Theme is immutable once constructed. Themes built for targets without
// color support render all parts verbatim, and [Theme.Styled] reports false
// so callers can select a simpler layout.
type Theme struct {
	parts  map[Part]Style
	styled bool
}

// NewTheme builds a theme for the given writer, detecting its color
// capability. Writers that do not support ANSI styling (pipes, files,
// buffers) produce a plain theme identical to [PlainTheme].
func NewTheme(w io.Writer) Theme {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		return PlainTheme()
	}

	return themed(r)
}

// Colored builds a theme that styles unconditionally, regardless of the
// capability of any particular writer. Intended for targets known to accept
// ANSI sequences.
func Colored() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	return themed(r)
}

// PlainTheme returns a theme whose styles render text unchanged.
func PlainTheme() Theme {
	return Theme{}
}

// Styled reports whether this theme produces styled output.
func (t Theme) Styled() bool {
	return t.styled
}

// Get returns the style assigned to part.
// Unknown parts and plain themes yield a style that renders text verbatim.
func (t Theme) Get(p Part) Style {
	return t.parts[p]
}

// themed constructs the full part table against a configured renderer.
func themed(r *lipgloss.Renderer) Theme {
	mk := func() lipgloss.Style { return r.NewStyle() }

	parts := map[Part]lipgloss.Style{
		Trace:     mk().Foreground(lipgloss.Color("8")),
		Debug:     mk().Foreground(lipgloss.Color("4")),
		Info:      mk().Foreground(lipgloss.Color("6")),
		Success:   mk().Foreground(lipgloss.Color("2")).Bold(true),
		Highlight: mk().Foreground(lipgloss.Color("5")),
		Important: mk().Foreground(lipgloss.Color("11")).Bold(true),
		Warning:   mk().Foreground(lipgloss.Color("3")).Bold(true),
		Error:     mk().Foreground(lipgloss.Color("1")).Bold(true),
		Critical:  mk().Foreground(lipgloss.Color("9")).Bold(true),
		Security: mk().Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Bold(true),
		Todo:  mk().Foreground(lipgloss.Color("13")),
		Plain: mk(),

		Header: mk().Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Bold(true),
		Message:      mk().Foreground(lipgloss.Color("1")).Bold(true),
		Type:         mk().Foreground(lipgloss.Color("1")).Bold(true),
		StackTrace:   mk().Foreground(lipgloss.Color("8")),
		ClassName:    mk().Foreground(lipgloss.Color("7")).Bold(true),
		MethodName:   mk().Foreground(lipgloss.Color("6")),
		FileName:     mk().Foreground(lipgloss.Color("8")),
		LineNumber:   mk().Foreground(lipgloss.Color("8")),
		CausedBy:     mk().Foreground(lipgloss.Color("3")).Bold(true),
		NativeMethod: mk().Foreground(lipgloss.Color("5")),
		MoreFrames:   mk().Foreground(lipgloss.Color("8")).Faint(true),
		PackageName:  mk().Foreground(lipgloss.Color("12")),
		Label:        mk().Foreground(lipgloss.Color("4")),
		Value:        mk().Foreground(lipgloss.Color("6")),
	}

	t := Theme{
		parts:  make(map[Part]Style, len(parts)),
		styled: true,
	}
	for p, s := range parts {
		t.parts[p] = Style{style: s, active: true}
	}

	return t
}
