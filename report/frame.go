package report

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Frame is one resolved entry of a captured call stack.
type Frame struct {
	// Function is the fully qualified function name, including the package
	// import path (for example "github.com/ardnew/glint/errs.New").
	Function string

	// File is the full path of the source file, or "" when unknown.
	File string

	// Line is the line number within File. Negative when unknown.
	Line int
}

// Package returns the import path portion of the function name.
func (f Frame) Package() string {
	name := f.Function

	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return name
	}

	return name[:slash+1+dot]
}

// Short returns the function name without its package import path,
// such as "(*Formatter).Format" or "New".
func (f Frame) Short() string {
	pkg := f.Package()
	if len(pkg) < len(f.Function) {
		return f.Function[len(pkg)+1:]
	}

	return f.Function
}

// Receiver splits [Frame.Short] into its receiver (or the package base name
// for free functions) and the bare method name.
func (f Frame) Receiver() (recv, method string) {
	short := f.Short()
	if dot := strings.LastIndex(short, "."); dot >= 0 {
		return short[:dot], short[dot+1:]
	}

	return filepath.Base(f.Package()), short
}

// Native reports whether the frame refers to an assembly routine.
func (f Frame) Native() bool {
	return strings.HasSuffix(f.File, ".s")
}

// Location renders the source position of the frame: "Native Method" for
// assembly routines, "Unknown Source" when no file is recorded, and
// otherwise "file:line" with the line omitted when negative.
func (f Frame) Location() string {
	switch {
	case f.Native():
		return "Native Method"
	case f.File == "":
		return "Unknown Source"
	case f.Line < 0:
		return filepath.Base(f.File)
	default:
		return filepath.Base(f.File) + ":" + strconv.Itoa(f.Line)
	}
}

// Frames resolves the call stack attached to err, or nil when err carries
// none.
//
// Two stack sources are recognized: errors exposing Callers (the errs
// package) and errors exposing the StackTrace interface of
// github.com/pkg/errors. Program counters are resolved through
// [runtime.CallersFrames], so inlined calls expand to their logical frames.
func Frames(err error) []Frame {
	var pcs []uintptr

	switch e := err.(type) {
	case interface{ Callers() []uintptr }:
		pcs = e.Callers()

	case interface{ StackTrace() pkgerrors.StackTrace }:
		for _, f := range e.StackTrace() {
			pcs = append(pcs, uintptr(f))
		}
	}

	if len(pcs) == 0 {
		return nil
	}

	frames := make([]Frame, 0, len(pcs))
	iter := runtime.CallersFrames(pcs)

	for {
		fr, more := iter.Next()
		if fr.Function != "" {
			frames = append(frames, Frame{
				Function: fr.Function,
				File:     fr.File,
				Line:     fr.Line,
			})
		}

		if !more {
			break
		}
	}

	return frames
}
