package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guessgrid/internal/game"
)

func TestGameModelCursorStaysOnBoard(t *testing.T) {
	m := NewGameModel(openSession(t), game.Easy, testConfig)

	m = press(m, keyOf(tea.KeyUp), keyOf(tea.KeyLeft))
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor())
	}

	m = press(m, keyOf(tea.KeyRight), keyOf(tea.KeyDown))
	if m.Cursor() != 12 {
		t.Errorf("cursor = %d, want 12", m.Cursor())
	}

	m = press(m, runeKey('h'), runeKey('k'))
	if m.Cursor() != 1 {
		t.Errorf("vim keys: cursor = %d, want 1", m.Cursor())
	}

	m = moveTo(m, 100)
	m = press(m, keyOf(tea.KeyDown), keyOf(tea.KeyRight))
	if m.Cursor() != 100 {
		t.Errorf("cursor = %d, want 100", m.Cursor())
	}

	// Left edge of a row does not wrap to the previous row.
	m = NewGameModel(openSession(t), game.Easy, testConfig)
	m = moveTo(m, 11)
	m = press(m, keyOf(tea.KeyLeft))
	if m.Cursor() != 11 {
		t.Errorf("cursor wrapped to %d", m.Cursor())
	}
}

func TestGameModelGuessWinningSquare(t *testing.T) {
	m := NewGameModel(openSession(t), game.Medium, testConfig)
	winning := m.State().WinningNumber

	m = moveTo(m, winning)
	m = press(m, keyOf(tea.KeyEnter))

	st := m.State()
	if st.Progress != game.Won {
		t.Fatalf("progress = %s, want WON", st.Progress)
	}
	if st.Winstreak != 1 {
		t.Errorf("streak = %d, want 1", st.Winstreak)
	}
}

func TestGameModelSelectThenGuess(t *testing.T) {
	m := NewGameModel(openSession(t), game.Easy, testConfig)
	target := 1
	if m.State().WinningNumber == 1 {
		target = 2
	}

	m = moveTo(m, target)
	m = press(m, runeKey(' '))
	if m.State().SelectedSquare != target {
		t.Fatalf("selected = %d, want %d", m.State().SelectedSquare, target)
	}

	m = press(m, runeKey('g'))
	st := m.State()
	if len(st.PastGuesses) != 1 || st.PastGuesses[0] != target {
		t.Errorf("past guesses = %v", st.PastGuesses)
	}
	if st.GuessesLeft() != 4 {
		t.Errorf("guesses left = %d, want 4", st.GuessesLeft())
	}
}

func TestGameModelHintAndNewRound(t *testing.T) {
	m := NewGameModel(openSession(t), game.Hard, testConfig)

	m = press(m, runeKey('c'))
	if got := len(m.State().CurrentHints); got != 15 {
		t.Fatalf("hints = %d, want 15", got)
	}

	m = press(m, runeKey('n'))
	st := m.State()
	if st.Difficulty != game.Hard || len(st.CurrentHints) != 0 || len(st.PastGuesses) != 0 {
		t.Errorf("new round state = %+v", st)
	}
}

func TestGameModelDifficultyKeys(t *testing.T) {
	m := NewGameModel(openSession(t), game.Easy, testConfig)

	tests := []struct {
		key  rune
		want game.Difficulty
	}{
		{'4', game.Expert},
		{'5', game.Jedi},
		{'2', game.Medium},
		{'1', game.Easy},
		{'3', game.Hard},
	}
	for _, tt := range tests {
		m = press(m, runeKey(tt.key))
		if got := m.State().Difficulty; got != tt.want {
			t.Errorf("key %q: difficulty = %s, want %s", tt.key, got, tt.want)
		}
	}
}

func TestGameModelMouseSelects(t *testing.T) {
	m := NewGameModel(openSession(t), game.Easy, testConfig)
	r := game.BoardRect(testConfig.ScreenW)

	next, _ := m.Update(tea.MouseMsg{
		X:      r.X + 2*5 + 1,
		Y:      r.Y + 3,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(GameModel)

	if m.State().SelectedSquare != 33 || m.Cursor() != 33 {
		t.Errorf("selected = %d cursor = %d, want 33", m.State().SelectedSquare, m.Cursor())
	}

	next, _ = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if next.(GameModel).State().SelectedSquare != 33 {
		t.Error("click outside the board changed the selection")
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m := NewGameModel(openSession(t), game.Easy, testConfig)

	back := press(m, keyOf(tea.KeyEsc))
	if !back.BackToMenu() || back.IsQuitting() {
		t.Error("esc should go back to the menu")
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(openSession(t), game.Jedi, testConfig)
	view := m.View()

	for _, want := range []string{"G U E S S G R I D", "Jedi", "Guesses left: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	if lines := strings.Count(view, "\n") + 1; lines > testConfig.ScreenH {
		t.Errorf("view has %d lines, screen is %d", lines, testConfig.ScreenH)
	}
}

func TestGameModelUnknownDifficultyFallsBack(t *testing.T) {
	m := NewGameModel(openSession(t), "NIGHTMARE", testConfig)
	if m.State().Difficulty != game.Easy {
		t.Errorf("difficulty = %s, want EASY", m.State().Difficulty)
	}
}
