package errs

import (
	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

// Specialized constructors for common failure categories.
//
// Each variant is an ordinary *Error with a fixed severity, a category
// marker in its context, and a package highlight for the category's code.
// The With* accessors below are sugar over the generic context map; they add
// no behavior of their own.

// Validation creates an input-validation error.
func Validation(msg string) *Error {
	e := New(msg)
	e.severity = level.Error

	return e.WithContext("category", "validation").
		HighlightPackage("validation", style.Critical)
}

// Config creates a configuration error.
func Config(msg string) *Error {
	e := New(msg)
	e.severity = level.Error

	return e.WithContext("category", "config").
		HighlightPackage("config", style.Important)
}

// Data creates a data-access error wrapping the underlying failure.
func Data(msg string, cause error) *Error {
	e := Wrap(cause, msg)
	e.severity = level.Error

	return e.WithContext("category", "data").
		HighlightPackage("db", style.Warning)
}

// WithField records the name of the field that failed validation.
func (e *Error) WithField(name string) *Error {
	return e.WithContext("field", name)
}

// WithValue records the offending value.
func (e *Error) WithValue(value any) *Error {
	return e.WithContext("value", value)
}

// WithConstraint records a named constraint and its bound.
func (e *Error) WithConstraint(name string, value any) *Error {
	return e.WithContext("constraint."+name, value)
}

// WithProperty records the configuration property involved.
func (e *Error) WithProperty(property string) *Error {
	return e.WithContext("property", property)
}

// WithOrigin records where the configuration value came from.
func (e *Error) WithOrigin(origin string) *Error {
	return e.WithContext("origin", origin)
}

// WithQuery records the query that failed.
func (e *Error) WithQuery(query string) *Error {
	return e.WithContext("query", query)
}

// WithDatabase records the database involved.
func (e *Error) WithDatabase(database string) *Error {
	return e.WithContext("database", database)
}
