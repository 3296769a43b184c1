package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(MinWidth-1, MinHeight) || !IsTooSmall(MinWidth, MinHeight-1) {
		t.Fatal("expected too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Fatal("minimum size must be accepted")
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader("Quiz", "constrained-template", 80)
	if h := lipgloss.Height(out); h != 1 {
		t.Fatalf("header height = %d, want 1", h)
	}
	if w := lipgloss.Width(out); w != 80 {
		t.Fatalf("header width = %d, want 80", w)
	}

	plain := ansi.Strip(out)
	for _, want := range []string{"Checkpoint", "Quiz", "constrained-template"} {
		if !strings.Contains(plain, want) {
			t.Errorf("header missing %q: %q", want, plain)
		}
	}
	if strings.Index(plain, "Quiz") > strings.Index(plain, "constrained-template") {
		t.Error("status should be right of the title")
	}
}

func TestRenderFooter(t *testing.T) {
	hints := []KeyHint{{Key: "Enter", Description: "Create quiz"}, {Key: "Tab", Description: "Variant"}}
	out := ansi.Strip(RenderFooter(hints, 80))
	if !strings.Contains(out, "Enter Create quiz   Tab Variant") {
		t.Errorf("footer missing hints: %q", out)
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Create quiz"},
		{Key: "Tab", Description: "Variant"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	out := ansi.Strip(RenderFooter(hints, 34))
	if !strings.Contains(out, "Enter Create quiz") {
		t.Errorf("first hint missing: %q", out)
	}
	if strings.Contains(out, "Quit") {
		t.Errorf("overflowing hint kept: %q", out)
	}
	if w := lipgloss.Width(RenderFooter(hints, 34)); w != 34 {
		t.Errorf("footer width = %d, want 34", w)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("t", "", 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 30)
	if h := lipgloss.Height(frame); h != 30 {
		t.Errorf("frame height = %d, want 30", h)
	}
	if !strings.Contains(ansi.Strip(frame), "body") {
		t.Error("content missing")
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := ansi.Strip(RenderMinSizeMessage(40, 10))
	if !strings.Contains(out, "40x10") || !strings.Contains(out, "50x14") {
		t.Errorf("unexpected message: %q", out)
	}
}
