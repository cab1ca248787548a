package glint

import (
	"sort"
	"strings"
	"sync"

	"github.com/ardnew/glint/level"
)

// Registry caches one [Logger] per source identity and applies bulk
// threshold and mode changes across them.
//
// All methods are safe for concurrent use. Loggers obtained from a registry
// remain valid across [Registry.Reset]; they simply stop being shared with
// later callers of the same identity.
type Registry struct {
	mu        sync.RWMutex
	loggers   map[string]*Logger
	threshold level.Level
	enhanced  bool
	opts      []Option
}

// NewRegistry creates an empty registry. Loggers it creates start from the
// default configuration, overridden by any provided options, with their
// source set to the requested identity.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		loggers:   map[string]*Logger{},
		threshold: level.Default,
		enhanced:  DefaultEnhanced,
		opts:      opts,
	}
}

// Get returns the logger for the given identity, creating it on first use.
// Subsequent calls with the same identity return the same logger.
func (r *Registry) Get(name string) *Logger {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()

	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another goroutine may have created it between the locks.
	if l, ok := r.loggers[name]; ok {
		return l
	}

	opts := make([]Option, 0, len(r.opts)+3)
	opts = append(opts, r.opts...)
	opts = append(opts,
		WithSource(name),
		WithThreshold(r.threshold),
		WithEnhanced(r.enhanced),
	)

	l = New(opts...)
	r.loggers[name] = l

	return l
}

// Names returns the identities of all cached loggers in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// SetDefaultThreshold sets the threshold assigned to loggers created after
// this call. Existing loggers are unaffected.
func (r *Registry) SetDefaultThreshold(min level.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.threshold = min
}

// SetGlobalThreshold sets the threshold of every cached logger and of all
// loggers created after this call.
func (r *Registry) SetGlobalThreshold(min level.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.threshold = min
	for _, l := range r.loggers {
		l.SetThreshold(min)
	}
}

// SetNamespaceThreshold sets the threshold of every cached logger whose
// identity begins with prefix. The match is a plain string prefix, so
// "a.b" covers "a.b", "a.b.c", and "a.bc" alike. Loggers created later are
// unaffected.
func (r *Registry) SetNamespaceThreshold(prefix string, min level.Level) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name, l := range r.loggers {
		if strings.HasPrefix(name, prefix) {
			l.SetThreshold(min)
		}
	}
}

// SetEnhanced sets the output mode of every cached logger and of all
// loggers created after this call.
func (r *Registry) SetEnhanced(enhanced bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.enhanced = enhanced
	for _, l := range r.loggers {
		l.SetEnhanced(enhanced)
	}
}

// EnableDebug lowers the threshold to [level.Debug] for the given
// namespace prefix, or for every logger when prefix is empty.
func (r *Registry) EnableDebug(prefix string) {
	if prefix == "" {
		r.SetGlobalThreshold(level.Debug)

		return
	}

	r.SetNamespaceThreshold(prefix, level.Debug)
}

// DisableDebug restores the threshold to [level.Default] for the given
// namespace prefix, or for every logger when prefix is empty.
func (r *Registry) DisableDebug(prefix string) {
	if prefix == "" {
		r.SetGlobalThreshold(level.Default)

		return
	}

	r.SetNamespaceThreshold(prefix, level.Default)
}

// Reset discards all cached loggers and restores the default threshold and
// output mode. Previously obtained loggers keep working with the settings
// they had.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.loggers = map[string]*Logger{}
	r.threshold = level.Default
	r.enhanced = DefaultEnhanced
}

// Default is the registry backing the package-level functions.
var Default = NewRegistry()

// Get returns the logger for the given identity from [Default].
func Get(name string) *Logger { return Default.Get(name) }

// SetDefaultThreshold sets the threshold for loggers created after this
// call on [Default].
func SetDefaultThreshold(min level.Level) { Default.SetDefaultThreshold(min) }

// SetGlobalThreshold sets the threshold of every logger in [Default].
func SetGlobalThreshold(min level.Level) { Default.SetGlobalThreshold(min) }

// SetNamespaceThreshold sets the threshold of every logger in [Default]
// matching the given namespace prefix.
func SetNamespaceThreshold(prefix string, min level.Level) {
	Default.SetNamespaceThreshold(prefix, min)
}

// SetEnhanced sets the output mode of every logger in [Default].
func SetEnhanced(enhanced bool) { Default.SetEnhanced(enhanced) }

// EnableDebug lowers the threshold of [Default] to [level.Debug] for the
// given namespace, or everywhere when prefix is empty.
func EnableDebug(prefix string) { Default.EnableDebug(prefix) }

// DisableDebug restores the threshold of [Default] for the given namespace,
// or everywhere when prefix is empty.
func DisableDebug(prefix string) { Default.DisableDebug(prefix) }

// Reset discards all loggers cached in [Default].
func Reset() { Default.Reset() }
