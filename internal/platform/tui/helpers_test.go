package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/random"
)

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func openSession(t *testing.T) *game.Session {
	t.Helper()
	s := game.NewSession(game.WithSource(random.New(7)))
	s.Open()
	return s
}

// press feeds keys to a GameModel and returns the final model.
func press(m GameModel, keys ...tea.KeyMsg) GameModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(GameModel)
	}
	return m
}

// moveTo walks the cursor from square 1 to sq.
func moveTo(m GameModel, sq int) GameModel {
	for range (sq - 1) / 10 {
		m = press(m, keyOf(tea.KeyDown))
	}
	for range (sq - 1) % 10 {
		m = press(m, keyOf(tea.KeyRight))
	}
	return m
}
