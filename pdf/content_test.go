package pdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"f(x) = y", `f\(x\) = y`},
		{`back\slash`, `back\\slash`},
		{"tab\there", `tab\there`},
		{"(nested (parens))", `\(nested \(parens\)\)`},
	}

	for _, tt := range tests {
		if got := escapeString(tt.in); got != tt.want {
			t.Errorf("escapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildContentStream(t *testing.T) {
	content := string(buildContentStream([]string{"first", "second"}))

	if !strings.HasPrefix(content, "BT\n/F1 12 Tf\n72 720 Td\n") {
		t.Errorf("content stream should begin with text setup, got %q", content)
	}
	if !strings.HasSuffix(content, "ET") {
		t.Errorf("content stream should end with ET, got %q", content)
	}

	first := strings.Index(content, "(first) Tj")
	advance := strings.Index(content, "0 -16 Td")
	second := strings.Index(content, "(second) Tj")
	if first == -1 || advance == -1 || second == -1 || !(first < advance && advance < second) {
		t.Errorf("lines should be separated by a single vertical advance, got %q", content)
	}
}

func TestBuildContentStream_NoLines(t *testing.T) {
	content := buildContentStream(nil)

	if bytes.Contains(content, []byte("Tj")) {
		t.Errorf("no lines should mean no show-text operators, got %q", content)
	}
	if !bytes.HasPrefix(content, []byte("BT\n")) {
		t.Errorf("text object should still open, got %q", content)
	}
}
