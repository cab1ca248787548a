package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ardnew/glint/level"
	"github.com/ardnew/glint/style"
)

func TestNew_CapturesStack(t *testing.T) {
	err := New("boom")

	if len(err.Callers()) == 0 {
		t.Error("expected a captured call stack")
	}
	if err.Level() != level.Error {
		t.Errorf("expected default severity Error, got %s", err.Level())
	}
	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
}

func TestNewf_FormatsMessage(t *testing.T) {
	err := Newf("user %d missing", 42)

	if err.Message() != "user 42 missing" {
		t.Errorf("Message() = %q", err.Message())
	}
}

func TestWrap_ChainsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, "save failed")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if got := err.Error(); got != "save failed: disk full" {
		t.Errorf("Error() = %q", got)
	}
	if err.Message() != "save failed" {
		t.Errorf("Message() = %q, want message without cause", err.Message())
	}
}

func TestError_DuplicateCauseMessageNotRepeated(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(cause, "timeout")

	if got := err.Error(); got != "timeout" {
		t.Errorf("Error() = %q, want single %q", got, "timeout")
	}
}

func TestFrom_Behavior(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if From(nil) != nil {
			t.Error("From(nil) should be nil")
		}
	})

	t.Run("rich error returned unchanged", func(t *testing.T) {
		orig := New("already rich")
		if From(orig) != orig {
			t.Error("From should return the same *Error")
		}
	})

	t.Run("plain error wrapped", func(t *testing.T) {
		plain := errors.New("plain")
		err := From(plain)

		if err.Message() != "plain" {
			t.Errorf("Message() = %q", err.Message())
		}
		if !errors.Is(err, plain) {
			t.Error("original not reachable through errors.Is")
		}
	})
}

func TestWithSeverity_AdoptsAndAssigns(t *testing.T) {
	if WithSeverity(nil, level.Fatal) != nil {
		t.Error("WithSeverity(nil) should be nil")
	}

	err := WithSeverity(errors.New("boom"), level.Severe)
	if err.Level() != level.Severe {
		t.Errorf("Level() = %s", err.Level())
	}
}

func TestError_FluentChaining(t *testing.T) {
	err := New("query failed").
		WithLevel(level.Severe).
		WithSolution("check the connection string").
		WithContext("query", "SELECT 1").
		WithContextMap(map[string]any{"retries": 3})

	if err.Level() != level.Severe {
		t.Errorf("Level() = %s", err.Level())
	}
	if err.Solution() != "check the connection string" {
		t.Errorf("Solution() = %q", err.Solution())
	}

	ctx := err.Context()
	if ctx["query"] != "SELECT 1" || ctx["retries"] != 3 {
		t.Errorf("Context() = %v", ctx)
	}
}

func TestError_ContextReturnsCopy(t *testing.T) {
	err := New("x").WithContext("a", 1)

	err.Context()["a"] = 99
	if err.Context()["a"] != 1 {
		t.Error("mutating the returned context changed the error")
	}
}

func TestError_HighlightPackageReplacesSamePrefix(t *testing.T) {
	err := New("x").
		HighlightPackage("db", style.Warning).
		HighlightPackage("db", style.Critical)

	hs := err.Highlights()
	if len(hs) != 1 {
		t.Fatalf("expected 1 highlight, got %d", len(hs))
	}
	if hs[0].Part != style.Critical {
		t.Errorf("expected replacement to win, got %s", hs[0].Part)
	}
}

func TestError_StackTraceInterop(t *testing.T) {
	err := New("x")

	st := err.StackTrace()
	if len(st) != len(err.Callers()) {
		t.Errorf("StackTrace length %d != Callers length %d",
			len(st), len(err.Callers()))
	}
}

func TestClassify_SeverityTable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want level.Level
	}{
		{"nil", nil, level.Error},
		{"generic", errors.New("something odd"), level.Error},
		{"io failure", errors.New("i/o timeout reading header"), level.Severe},
		{"sql failure", errors.New("sql: no rows in result set"), level.Severe},
		{"file failure", errors.New("open file: permission denied"), level.Severe},
		{"validation", errors.New("invalid state transition"), level.Error},
		{"memory", errors.New("runtime: outofmemory"), level.Fatal},
		{"security", errors.New("security constraint violated"), level.Fatal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_ExplicitSeverityWins(t *testing.T) {
	err := New("i/o timeout").WithLevel(level.Warn)

	if got := Classify(err); got != level.Warn {
		t.Errorf("Classify kept %s, want explicit %s", got, level.Warn)
	}
}

func TestClassify_ExplicitSeveritySurvivesWrapping(t *testing.T) {
	inner := New("i/o timeout").WithLevel(level.Warn)
	outer := fmt.Errorf("request failed: %w", inner)

	if got := Classify(outer); got != level.Warn {
		t.Errorf("Classify(wrapped) = %s, want explicit %s", got, level.Warn)
	}
}

func TestValidation_VariantDefaults(t *testing.T) {
	err := Validation("bad email").
		WithField("email").
		WithConstraint("format", "rfc5322")

	ctx := err.Context()
	if ctx["category"] != "validation" {
		t.Errorf("category = %v", ctx["category"])
	}
	if ctx["field"] != "email" {
		t.Errorf("field = %v", ctx["field"])
	}
	if _, ok := ctx["constraint.format"]; !ok {
		t.Errorf("missing constraint key in %v", ctx)
	}
}

func TestData_VariantWrapsCause(t *testing.T) {
	cause := fmt.Errorf("sql: connection refused")
	err := Data("lookup failed", cause).
		WithQuery("SELECT * FROM users").
		WithDatabase("primary")

	if !errors.Is(err, cause) {
		t.Error("cause not reachable")
	}
	if err.Context()["category"] != "data" {
		t.Errorf("category = %v", err.Context()["category"])
	}
}

func TestConfig_VariantContext(t *testing.T) {
	err := Config("missing endpoint").WithProperty("server.endpoint")

	ctx := err.Context()
	if ctx["category"] != "config" {
		t.Errorf("category = %v", ctx["category"])
	}
	if ctx["property"] != "server.endpoint" {
		t.Errorf("property = %v", ctx["property"])
	}
}

func TestError_MessageStrings(t *testing.T) {
	err := Wrap(errors.New("inner"), "outer")

	if !strings.Contains(err.Error(), "inner") {
		t.Error("Error() should include the cause")
	}
	if strings.Contains(err.Message(), "inner") {
		t.Error("Message() should exclude the cause")
	}
}
