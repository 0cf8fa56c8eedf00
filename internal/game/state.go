package game

import (
	"slices"

	"github.com/vovakirdan/guessgrid/internal/random"
)

// Grid bounds and sentinel values.
const (
	MinSquare = 1
	MaxSquare = 100

	// NoSquare means nothing is selected.
	NoSquare = 0
	// HintMarker occupies a PastGuesses slot spent on a hint.
	HintMarker = 0
)

// IsSquare reports whether n is a square on the board.
func IsSquare(n int) bool {
	return n >= MinSquare && n <= MaxSquare
}

// Progress is the round outcome so far.
type Progress string

const (
	Playing Progress = "PLAYING"
	Won     Progress = "WON"
	Lost    Progress = "LOST"
)

// State is a full snapshot of a game. Transition never mutates a State in
// place; it returns a new one with freshly allocated slices.
type State struct {
	Difficulty     Difficulty
	WinningNumber  int
	PastGuesses    []int // Chronological; HintMarker where a hint was bought
	CurrentHints   []int // Ascending, no duplicates
	MaxGuesses     int
	NumHints       int
	SelectedSquare int
	Progress       Progress
	Message        Message
	Winstreak      int
}

// NewState returns the state shown before the first round is started:
// easy allowances, a fresh winning number, and a zero streak.
func NewState(src random.Source) State {
	a := allowances[Easy]
	return State{
		Difficulty:    Easy,
		WinningNumber: random.Square(src),
		MaxGuesses:    a.MaxGuesses,
		NumHints:      a.NumHints,
		Progress:      Playing,
		Message:       MsgStart,
	}
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	s.PastGuesses = slices.Clone(s.PastGuesses)
	s.CurrentHints = slices.Clone(s.CurrentHints)
	return s
}

// GuessesLeft returns how many guesses (or hints) can still be spent.
func (s State) GuessesLeft() int {
	return s.MaxGuesses - len(s.PastGuesses)
}

// HintsUsed counts the PastGuesses slots spent on hints.
func (s State) HintsUsed() int {
	n := 0
	for _, g := range s.PastGuesses {
		if g == HintMarker {
			n++
		}
	}
	return n
}

// HasGuessed reports whether square was already submitted this round.
func (s State) HasGuessed(square int) bool {
	return square != HintMarker && slices.Contains(s.PastGuesses, square)
}

// IsHint reports whether square is among the current hint candidates.
func (s State) IsHint(square int) bool {
	_, found := slices.BinarySearch(s.CurrentHints, square)
	return found
}

// Finished reports whether the round has ended.
func (s State) Finished() bool {
	return s.Progress == Won || s.Progress == Lost
}
