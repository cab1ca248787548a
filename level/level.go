package level

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/glint/style"
)

// Level represents the severity of a log record.
//
// The numeric value of a Level is its rank: higher ranks indicate higher
// severity, and every filtering decision in the module reduces to a rank
// comparison. The set of levels is fixed and closed; metadata for each level
// (label, glyph, description, style part) is attached once in a static table
// and never mutated.
type Level int

const (
	// Stub marks code under active development. It has the lowest rank so a
	// threshold of Stub admits every level.
	Stub Level = 50

	// Trace is fine-grained diagnostic detail.
	Trace Level = 100

	// Debug is developer diagnostic detail.
	Debug Level = 200

	// Info reports normal operation.
	Info Level = 300

	// Success reports a notable positive outcome.
	Success Level = 350

	// Notice flags an attention-worthy, non-error event.
	Notice Level = 500

	// Important flags a significant, non-error event.
	Important Level = 600

	// Warn reports a potential problem.
	Warn Level = 700

	// Error reports an operation-affecting failure.
	Error Level = 800

	// Severe reports a failure that risks system stability.
	Severe Level = 900

	// Fatal reports an unrecoverable failure.
	Fatal Level = 1000

	// Off has the highest rank and disables all output when used as a
	// threshold.
	Off Level = math.MaxInt32
)

// Default is the threshold assigned to new loggers.
const Default = Info

type meta struct {
	label       string
	glyph       string
	description string
	part        style.Part
}

// table attaches immutable metadata to each level.
var table = map[Level]meta{
	Stub:      {"STUB", "🚧", "Code under development", style.Todo},
	Trace:     {"TRACE", "🔍", "Detailed tracing information", style.Trace},
	Debug:     {"DEBUG", "🐞", "Debugging information", style.Debug},
	Info:      {"INFO", "ℹ️", "General information", style.Info},
	Success:   {"SUCCESS", "✅", "Operation completed successfully", style.Success},
	Notice:    {"NOTICE", "📢", "Notable event that might need attention", style.Highlight},
	Important: {"IMPORTANT", "❗", "Significant event requiring attention", style.Important},
	Warn:      {"WARN", "⚠️", "Warning that might cause issues", style.Warning},
	Error:     {"ERROR", "❌", "Error that affects operation", style.Error},
	Severe:    {"SEVERE", "🚨", "Serious error that may cause system instability", style.Critical},
	Fatal:     {"FATAL", "💀", "Critical error that will cause system failure", style.Security},
	Off:       {"OFF", "🚫", "Logging disabled", style.Plain},
}

// ordered lists every level by ascending rank.
var ordered = []Level{
	Stub, Trace, Debug, Info, Success, Notice,
	Important, Warn, Error, Severe, Fatal, Off,
}

// Levels returns an iterator over all defined levels in ascending rank
// order.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, l := range ordered {
			if !yield(l) {
				return
			}
		}
	}
}

// Rank returns the numeric rank of l.
func (l Level) Rank() int { return int(l) }

// String returns the level label, such as "INFO".
// Values outside the defined set format as their numeric rank.
func (l Level) String() string {
	if m, ok := table[l]; ok {
		return m.label
	}

	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// Label returns the canonical uppercase name of l, or "" for values
// outside the defined set.
func (l Level) Label() string { return table[l].label }

// Glyph returns the display glyph for l.
func (l Level) Glyph() string { return table[l].glyph }

// Description returns the short description of l.
func (l Level) Description() string { return table[l].description }

// Part returns the semantic style part assigned to l.
func (l Level) Part() style.Part {
	if m, ok := table[l]; ok {
		return m.part
	}

	return style.Plain
}

// Style returns the concrete style for l under the given theme.
func (l Level) Style(t style.Theme) style.Style {
	return t.Get(l.Part())
}

// Detailed returns the label, rank, and description of l on one line.
func (l Level) Detailed() string {
	return fmt.Sprintf("%s (rank %d): %s", l, int(l), l.Description())
}

// AtLeast reports whether l is at or above min.
func (l Level) AtLeast(min Level) bool { return l >= min }

// Compare orders two levels by rank.
func Compare(a, b Level) int { return cmp.Compare(a, b) }

// FromRank returns the highest-ranked level whose rank does not exceed n.
// Values below every defined rank yield [Off]: an unmapped number rounds
// down to the nearest defined level, never up.
func FromRank(n int) Level {
	result := Off

	for _, l := range ordered {
		if int(l) <= n && (result == Off || l > result) {
			result = l
		}
	}

	return result
}

// FromName converts a level name to a Level, case-insensitively.
//
// Empty and unrecognized names yield [Info] rather than an error: level
// names commonly arrive from external configuration, where failing soft
// keeps the logger usable. Unrecognized names emit a one-line warning on the
// package warn writer that suggests the closest known name.
func FromName(name string) Level {
	name = strings.TrimSpace(name)
	if name == "" {
		return Info
	}

	upper := strings.ToUpper(name)
	for _, l := range ordered {
		if table[l].label == upper {
			return l
		}
	}

	warnUnknown(name)

	return Info
}

var (
	warnMu     sync.Mutex
	warnWriter io.Writer = os.Stderr
)

// SetWarnWriter redirects the side-channel warnings emitted by [FromName].
// A nil writer restores the default of [os.Stderr].
func SetWarnWriter(w io.Writer) {
	warnMu.Lock()
	defer warnMu.Unlock()

	if w == nil {
		w = os.Stderr
	}

	warnWriter = w
}

func warnUnknown(name string) {
	labels := make([]string, 0, len(ordered))
	for _, l := range ordered {
		labels = append(labels, table[l].label)
	}

	hint := ""
	if matches := fuzzy.Find(strings.ToUpper(name), labels); len(matches) > 0 {
		hint = fmt.Sprintf(" (did you mean %s?)", matches[0].Str)
	}

	warnMu.Lock()
	defer warnMu.Unlock()

	fmt.Fprintf(warnWriter, "glint: unknown log level %q, using INFO%s\n", name, hint)
}
