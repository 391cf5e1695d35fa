package chess

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSVGProducesWellFormedSVG(t *testing.T) {
	p := Default()
	var buf bytes.Buffer
	if err := p.RenderSVG(&buf); err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("output does not contain an <svg> element:\n%s", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("output is not closed with </svg>:\n%s", out)
	}
	if count := strings.Count(out, "<rect"); count != 64 {
		t.Fatalf("expected 64 squares drawn, got %d", count)
	}
	if count := strings.Count(out, "<text"); count != 32 {
		t.Fatalf("expected 32 piece glyphs drawn from the starting position, got %d", count)
	}
}
