package markdown

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	out, err := Render("# Title\n\nsome *emphasis*")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<h1") {
		t.Fatalf("missing heading in %q", out)
	}
	if !strings.Contains(out, "<em>emphasis</em>") {
		t.Fatalf("missing emphasis in %q", out)
	}
}

func TestRenderGFMTable(t *testing.T) {
	out, err := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Fatalf("GFM table not rendered: %q", out)
	}
}
