package glint

import (
	"io"
	"os"
	"sync"

	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

// DefaultEnhanced is the default output mode for new loggers.
// Enhanced mode prefixes each message with the severity glyph.
const DefaultEnhanced = true

type config struct {
	mutex     *sync.RWMutex
	out       io.Writer
	err       io.Writer
	threshold level.Level
	enhanced  bool
	source    string
	theme     style.Theme
}

// makeConfig creates a new config with defaults applied, overridden by any
// provided options.
func makeConfig(opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults()), opts...)
}

// WithDefaults returns a functional option that sets the default
// configuration: standard output and error streams, [level.Default]
// threshold, enhanced mode, and a theme derived from the capabilities of
// standard output.
func WithDefaults() Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.out = os.Stdout
		c.err = os.Stderr
		c.threshold = level.Default
		c.enhanced = DefaultEnhanced
		c.source = ""
		c.theme = style.NewTheme(os.Stdout)

		return c
	}
}

// WithWriters returns a functional option that sets the output streams.
// Messages below [level.Error] go to out, the rest to err. A nil writer is
// replaced with [io.Discard]. The theme is re-derived from the capabilities
// of out, so apply [WithTheme] after this option to override it.
func WithWriters(out, err io.Writer) Option {
	return func(c config) config {
		if out == nil {
			out = io.Discard
		}

		if err == nil {
			err = io.Discard
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.out = out
		c.err = err
		c.theme = style.NewTheme(out)

		return c
	}
}

// WithThreshold returns a functional option that sets the minimum severity
// a logger emits.
func WithThreshold(l level.Level) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.threshold = l

		return c
	}
}

// WithEnhanced returns a functional option that enables or disables
// enhanced output mode.
func WithEnhanced(enhanced bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.enhanced = enhanced

		return c
	}
}

// WithSource returns a functional option that sets the logger's source
// identity, typically the package or component the logger reports for.
func WithSource(source string) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.source = source

		return c
	}
}

// WithTheme returns a functional option that sets the style theme used for
// severity markers and error traces.
func WithTheme(t style.Theme) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.theme = t

		return c
	}
}
