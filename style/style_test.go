package style

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewTheme_BufferDegradesToPlain(t *testing.T) {
	var buf bytes.Buffer

	theme := NewTheme(&buf)
	if theme.Styled() {
		t.Error("expected unstyled theme for a non-terminal writer")
	}
}

func TestPlainTheme_RendersIdentity(t *testing.T) {
	theme := PlainTheme()

	for _, part := range []Part{Error, Header, PackageName, Value} {
		got := theme.Get(part).Render("text")
		if got != "text" {
			t.Errorf("plain %s rendered %q, want identity", part, got)
		}
	}
}

func TestPlainPart_DistinctFromPlainTheme(t *testing.T) {
	// The "plain" severity part and the unstyled theme constructor are
	// independent: a colored theme still carries a Plain part entry.
	if got := PlainTheme().Get(Plain).Render("x"); got != "x" {
		t.Errorf("plain theme rendered %q, want identity", got)
	}

	colored := Colored()
	if _, active := colored.parts[Plain]; !active {
		t.Error("colored theme missing the Plain part")
	}
}

func TestColored_EmitsEscapeCodes(t *testing.T) {
	theme := Colored()
	if !theme.Styled() {
		t.Fatal("expected forced-color theme to report styled")
	}

	got := theme.Get(Error).Render("fail")
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escape in %q", got)
	}
	if !strings.Contains(got, "fail") {
		t.Errorf("styled output %q lost its text", got)
	}
}

func TestTheme_Get_UnknownPartIsInert(t *testing.T) {
	theme := Colored()

	got := theme.Get(Part("nonexistent")).Render("text")
	if got != "text" {
		t.Errorf("unknown part rendered %q, want identity", got)
	}
}
