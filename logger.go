package glint

import (
	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

// Logger writes severity-tagged messages and formatted error traces to a
// pair of output streams.
//
// The threshold and output mode can be changed at any time, concurrently
// with logging. All other configuration is fixed at construction.
type Logger struct {
	config
}

// New creates a [Logger] with the default configuration, overridden by any
// provided options.
//
// The defaults write to standard output and error, filter below
// [level.Default], and use enhanced mode with a theme matching the
// capabilities of standard output.
func New(opts ...Option) *Logger {
	return &Logger{config: makeConfig(opts...)}
}

// Source returns the identity the logger was created for.
func (l *Logger) Source() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.source
}

// Threshold returns the minimum severity the logger emits.
func (l *Logger) Threshold() level.Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.threshold
}

// SetThreshold sets the minimum severity the logger emits.
func (l *Logger) SetThreshold(min level.Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.threshold = min
}

// Enhanced reports whether enhanced output mode is active.
func (l *Logger) Enhanced() bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.enhanced
}

// SetEnhanced enables or disables enhanced output mode.
func (l *Logger) SetEnhanced(enhanced bool) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.enhanced = enhanced
}

// Theme returns the style theme the logger renders with.
func (l *Logger) Theme() style.Theme {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.theme
}

// Enabled reports whether a message at the given severity would be emitted.
// [level.Off] is never emitted regardless of threshold.
func (l *Logger) Enabled(lvl level.Level) bool {
	return lvl != level.Off && lvl.AtLeast(l.Threshold())
}

// Log emits a message at the given severity, substituting "{}" placeholders
// in template with args. See [Format] for the substitution rules.
func (l *Logger) Log(lvl level.Level, template string, args ...any) {
	if !l.Enabled(lvl) {
		return
	}

	l.emit(Record{
		Level:   lvl,
		Message: Format(template, args...),
		Source:  l.Source(),
	})
}

// LogErr emits a message at the given severity followed by a formatted
// trace of err. A nil err behaves like [Logger.Log].
func (l *Logger) LogErr(lvl level.Level, err error, template string, args ...any) {
	if !l.Enabled(lvl) {
		return
	}

	l.emit(Record{
		Level:   lvl,
		Message: Format(template, args...),
		Err:     err,
		Source:  l.Source(),
	})
}

// LogRecord emits a fully resolved record, bypassing template formatting.
// The record's Source is replaced with the logger's own when empty.
func (l *Logger) LogRecord(r Record) {
	if !l.Enabled(r.Level) {
		return
	}

	if r.Source == "" {
		r.Source = l.Source()
	}

	l.emit(r)
}

// Stub emits a message at [level.Stub].
func (l *Logger) Stub(template string, args ...any) {
	l.Log(level.Stub, template, args...)
}

// Trace emits a message at [level.Trace].
func (l *Logger) Trace(template string, args ...any) {
	l.Log(level.Trace, template, args...)
}

// Debug emits a message at [level.Debug].
func (l *Logger) Debug(template string, args ...any) {
	l.Log(level.Debug, template, args...)
}

// Info emits a message at [level.Info].
func (l *Logger) Info(template string, args ...any) {
	l.Log(level.Info, template, args...)
}

// Success emits a message at [level.Success].
func (l *Logger) Success(template string, args ...any) {
	l.Log(level.Success, template, args...)
}

// Notice emits a message at [level.Notice].
func (l *Logger) Notice(template string, args ...any) {
	l.Log(level.Notice, template, args...)
}

// Important emits a message at [level.Important].
func (l *Logger) Important(template string, args ...any) {
	l.Log(level.Important, template, args...)
}

// Warn emits a message at [level.Warn].
func (l *Logger) Warn(template string, args ...any) {
	l.Log(level.Warn, template, args...)
}

// Error emits a message at [level.Error].
func (l *Logger) Error(template string, args ...any) {
	l.Log(level.Error, template, args...)
}

// Severe emits a message at [level.Severe].
func (l *Logger) Severe(template string, args ...any) {
	l.Log(level.Severe, template, args...)
}

// Fatal emits a message at [level.Fatal]. Unlike the standard library's
// log.Fatal, it does not terminate the program.
func (l *Logger) Fatal(template string, args ...any) {
	l.Log(level.Fatal, template, args...)
}

// WarnErr emits a message and trace of err at [level.Warn].
func (l *Logger) WarnErr(err error, template string, args ...any) {
	l.LogErr(level.Warn, err, template, args...)
}

// ErrorErr emits a message and trace of err at [level.Error].
func (l *Logger) ErrorErr(err error, template string, args ...any) {
	l.LogErr(level.Error, err, template, args...)
}

// SevereErr emits a message and trace of err at [level.Severe].
func (l *Logger) SevereErr(err error, template string, args ...any) {
	l.LogErr(level.Severe, err, template, args...)
}

// FatalErr emits a message and trace of err at [level.Fatal].
func (l *Logger) FatalErr(err error, template string, args ...any) {
	l.LogErr(level.Fatal, err, template, args...)
}
