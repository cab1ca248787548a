package report

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/ardnew/glint/errs"
)

func TestFrame_Package(t *testing.T) {
	tests := []struct {
		name     string
		function string
		want     string
	}{
		{"plain function", "github.com/ardnew/glint/errs.New", "github.com/ardnew/glint/errs"},
		{"method", "github.com/ardnew/glint/report.(*Formatter).Format", "github.com/ardnew/glint/report"},
		{"stdlib", "runtime.goexit", "runtime"},
		{"main", "main.main", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{Function: tt.function}
			if got := f.Package(); got != tt.want {
				t.Errorf("Package() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrame_Receiver(t *testing.T) {
	tests := []struct {
		name       string
		function   string
		wantRecv   string
		wantMethod string
	}{
		{"method", "github.com/ardnew/glint/report.(*Formatter).Format", "(*Formatter)", "Format"},
		{"free function uses package", "github.com/ardnew/glint/errs.New", "errs", "New"},
		{"stdlib free function", "runtime.goexit", "runtime", "goexit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recv, method := Frame{Function: tt.function}.Receiver()
			if recv != tt.wantRecv || method != tt.wantMethod {
				t.Errorf("Receiver() = (%q, %q), want (%q, %q)",
					recv, method, tt.wantRecv, tt.wantMethod)
			}
		})
	}
}

func TestFrame_Location(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  string
	}{
		{"normal", Frame{File: "/src/app/main.go", Line: 42}, "main.go:42"},
		{"assembly", Frame{File: "/go/src/runtime/asm_amd64.s", Line: 1}, "Native Method"},
		{"no file", Frame{}, "Unknown Source"},
		{"no line", Frame{File: "/src/app/main.go", Line: -1}, "main.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.frame.Location(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFrames_FromRichError(t *testing.T) {
	frames := Frames(errs.New("boom"))

	if len(frames) == 0 {
		t.Fatal("expected frames from a stack-capturing error")
	}

	found := false
	for _, f := range frames {
		if strings.Contains(f.Function, "TestFrames_FromRichError") {
			found = true
		}
	}

	if !found {
		t.Error("expected the test function among the frames")
	}
}

func TestFrames_PlainErrorHasNone(t *testing.T) {
	if frames := Frames(errors.New("flat")); frames != nil {
		t.Errorf("expected nil frames, got %d", len(frames))
	}
}

// stackErr carries an arbitrary captured stack, used to exercise deep
// traces without depending on test-runner call depth.
type stackErr struct {
	msg   string
	pcs   []uintptr
	cause error
}

func (e *stackErr) Error() string      { return e.msg }
func (e *stackErr) Unwrap() error      { return e.cause }
func (e *stackErr) Callers() []uintptr { return e.pcs }

// deepStack recurses to the requested depth before capturing the stack, so
// the result has at least depth frames.
func deepStack(depth int) []uintptr {
	if depth > 0 {
		return deepStack(depth - 1)
	}

	pcs := make([]uintptr, 128)
	n := runtime.Callers(1, pcs)

	return pcs[:n]
}

func TestFrames_DeepStackResolvesAll(t *testing.T) {
	err := &stackErr{msg: "deep", pcs: deepStack(40)}

	frames := Frames(err)
	if len(frames) < 40 {
		t.Errorf("expected at least 40 frames, got %d", len(frames))
	}
}
