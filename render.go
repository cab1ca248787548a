package glint

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ardnew/glint/errs"
	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/report"
)

// emit writes a record to the stream selected by its severity. Each line of
// a multi-line message receives its own severity marker, and any attached
// error is rendered as a formatted trace after the message.
func (l *Logger) emit(r Record) {
	l.mutex.RLock()
	cfg := l.config
	l.mutex.RUnlock()

	w := cfg.out
	if r.Level.AtLeast(level.Error) {
		w = cfg.err
	}

	marker := l.marker(r.Level, cfg)
	for _, line := range splitLines(r.Message) {
		fmt.Fprintln(w, marker+line)
	}

	if r.Err != nil {
		fmt.Fprintln(w)
		l.formatter(r, cfg).WriteTrace(w, r.Err)
	}
}

// marker renders the severity prefix of one message line: the bracketed
// label plus, in enhanced mode, the severity glyph.
func (l *Logger) marker(lvl level.Level, cfg config) string {
	text := "[" + lvl.String() + "] "
	if cfg.enhanced {
		text = "[" + lvl.String() + "] " + lvl.Glyph() + " "
	}

	return lvl.Style(cfg.theme).Render(text)
}

// formatter builds the trace formatter for a record: slots keyed to the
// record's severity, plus any package highlights the error carries.
func (l *Logger) formatter(r Record, cfg config) *report.Formatter {
	f := report.NewFormatter(cfg.theme).UseLevel(r.Level)

	var e *errs.Error
	if errors.As(r.Err, &e) {
		for _, h := range e.Highlights() {
			f.Highlight(h.Prefix, cfg.theme.Get(h.Part))
		}
	}

	return f
}

// ReportException writes a full diagnostic report for err at the given
// severity, merging extra into the error's own context. The report goes to
// the stream selected by the severity and is suppressed below threshold.
func (l *Logger) ReportException(lvl level.Level, err error, extra map[string]any) {
	if err == nil || !l.Enabled(lvl) {
		return
	}

	l.mutex.RLock()
	cfg := l.config
	l.mutex.RUnlock()

	w := cfg.out
	if lvl.AtLeast(level.Error) {
		w = cfg.err
	}

	l.formatter(Record{Level: lvl, Err: err}, cfg).WriteReport(w, err, extra)
}

// WriteTrace writes the formatted trace of err to w using the logger's
// theme, without a severity marker or threshold check.
func (l *Logger) WriteTrace(w io.Writer, err error) {
	l.mutex.RLock()
	cfg := l.config
	l.mutex.RUnlock()

	l.formatter(Record{Level: level.Error, Err: err}, cfg).WriteTrace(w, err)
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
