package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guessgrid/internal/game"
)

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuAction
	}{
		{"q", runeKey('q'), MenuActionQuit},
		{"ctrl+c", keyOf(tea.KeyCtrlC), MenuActionQuit},
		{"up", keyOf(tea.KeyUp), MenuActionUp},
		{"k", runeKey('k'), MenuActionUp},
		{"down", keyOf(tea.KeyDown), MenuActionDown},
		{"j", runeKey('j'), MenuActionDown},
		{"enter", keyOf(tea.KeyEnter), MenuActionSelect},
		{"space", runeKey(' '), MenuActionSelect},
		{"esc", keyOf(tea.KeyEsc), MenuActionBack},
		{"tab", keyOf(tea.KeyTab), MenuActionHistory},
		{"x", runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
				t.Errorf("MapKeyToMenuAction(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestDifficultyForKey(t *testing.T) {
	for i, d := range game.Difficulties() {
		got, ok := difficultyForKey(runeKey(rune('1' + i)))
		if !ok || got != d {
			t.Errorf("key %d = %s,%v want %s", i+1, got, ok, d)
		}
	}

	for _, r := range []rune{'0', '6', '9', 'a'} {
		if _, ok := difficultyForKey(runeKey(r)); ok {
			t.Errorf("key %q should not pick a difficulty", r)
		}
	}
}

func TestBoardKeyMapHelp(t *testing.T) {
	km := DefaultBoardKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("short help is empty")
	}
	for _, group := range km.FullHelp() {
		for _, b := range group {
			if b.Help().Key == "" {
				t.Errorf("binding %v has no help text", b.Keys())
			}
		}
	}
}
