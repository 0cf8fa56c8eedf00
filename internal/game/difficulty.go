// Package game implements the number-guessing game: the difficulty table,
// hint generation, the pure Transition function over typed actions, the
// Session driver that owns state and persistence hooks, and the board
// renderer. It has no dependency on Bubble Tea or on any storage medium.
package game

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty selects how many guesses and hints a round allows.
type Difficulty string

const (
	Easy   Difficulty = "EASY"
	Medium Difficulty = "MEDIUM"
	Hard   Difficulty = "HARD"
	Expert Difficulty = "EXPERT"
	Jedi   Difficulty = "JEDI" // One guess, no hints
)

// ErrUnknownDifficulty is returned for identifiers outside the five levels.
var ErrUnknownDifficulty = errors.New("game: unknown difficulty")

// Allowance is the per-round budget for a difficulty.
type Allowance struct {
	MaxGuesses int
	NumHints   int
}

var allowances = map[Difficulty]Allowance{
	Easy:   {MaxGuesses: 5, NumHints: 5},
	Medium: {MaxGuesses: 4, NumHints: 10},
	Hard:   {MaxGuesses: 3, NumHints: 15},
	Expert: {MaxGuesses: 2, NumHints: 20},
	Jedi:   {MaxGuesses: 1, NumHints: 0},
}

// Difficulties returns all levels from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard, Expert, Jedi}
}

// Valid reports whether d is one of the five levels.
func (d Difficulty) Valid() bool {
	_, ok := allowances[d]
	return ok
}

// Title returns the display name, e.g. "Expert".
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	s := strings.ToLower(string(d))
	return strings.ToUpper(s[:1]) + s[1:]
}

// Lookup returns the allowance for d.
func Lookup(d Difficulty) (Allowance, error) {
	a, ok := allowances[d]
	if !ok {
		return Allowance{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, string(d))
	}
	return a, nil
}

// ParseDifficulty validates user input such as "easy" or " Jedi ".
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}
