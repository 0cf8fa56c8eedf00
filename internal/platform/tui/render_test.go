package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/guessgrid/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawTextColored(0, 0, "hello", core.ColorTitle)
	s.DrawTextColored(6, 1, "world", core.ColorHint)
	s.SetCell(0, 2, 'x', core.Color(200))

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "hello") || !strings.Contains(lines[1], "world") {
		t.Errorf("text missing from output:\n%s", out)
	}
	if !strings.Contains(lines[2], "x") {
		t.Error("unknown colours should still render their runes")
	}
}

func TestEveryColorHasAStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorAlert; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %s", c)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
