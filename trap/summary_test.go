package trap

import (
	"strings"
	"testing"
)

type userCredentials struct {
	Name     string
	Password string
}

type widget struct {
	ID int
}

func TestSummarize_Redaction(t *testing.T) {
	tests := []struct {
		name  string
		value any
		check func(t *testing.T, got string)
	}{
		{
			"nil renders null",
			nil,
			equals("null"),
		},
		{
			"short string verbatim",
			"hello",
			equals("hello"),
		},
		{
			"long string truncated",
			strings.Repeat("a", 80),
			func(t *testing.T, got string) {
				if len([]rune(got)) != maxSummaryRunes {
					t.Errorf("truncated length = %d, want %d", len([]rune(got)), maxSummaryRunes)
				}
				if !strings.HasSuffix(got, "...") {
					t.Errorf("missing ellipsis: %q", got)
				}
			},
		},
		{
			"sensitive type opaque",
			userCredentials{Name: "ann", Password: "hunter2"},
			func(t *testing.T, got string) {
				if strings.Contains(got, "hunter2") || strings.Contains(got, "ann") {
					t.Errorf("sensitive value leaked: %q", got)
				}
				if !strings.Contains(got, "userCredentials@") {
					t.Errorf("expected opaque token: %q", got)
				}
			},
		},
		{
			"sensitive pointer opaque",
			&userCredentials{Password: "secret"},
			func(t *testing.T, got string) {
				if strings.Contains(got, "secret") {
					t.Errorf("sensitive value leaked: %q", got)
				}
			},
		},
		{
			"small slice verbatim",
			[]int{1, 2, 3},
			equals("[1 2 3]"),
		},
		{
			"large slice opaque",
			[]int{1, 2, 3, 4, 5, 6},
			func(t *testing.T, got string) {
				if !strings.Contains(got, "@") {
					t.Errorf("expected opaque token: %q", got)
				}
			},
		},
		{
			"array always opaque",
			[3]int{1, 2, 3},
			func(t *testing.T, got string) {
				if !strings.Contains(got, "@") {
					t.Errorf("expected opaque token: %q", got)
				}
			},
		},
		{
			"plain struct verbatim",
			widget{ID: 9},
			equals("{9}"),
		},
		{
			"number verbatim",
			42,
			equals("42"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, summarize(tt.value))
		})
	}
}

func equals(want string) func(*testing.T, string) {
	return func(t *testing.T, got string) {
		if got != want {
			t.Errorf("summarize = %q, want %q", got, want)
		}
	}
}

func TestSummarize_StableAcrossCalls(t *testing.T) {
	v := [3]int{1, 2, 3}

	if summarize(v) != summarize(v) {
		t.Error("expected stable opaque token for identical values")
	}
}
