package glint

import "github.com/ardnew/glint/level"

// Record is one fully resolved log event: the severity, the formatted
// message, an optional error to render as a trace, and the identity of the
// logger that produced it.
type Record struct {
	Level   level.Level
	Message string
	Err     error
	Source  string
}
