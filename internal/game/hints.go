package game

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vovakirdan/guessgrid/internal/random"
)

// ErrHintsUnavailable is returned when a hint set of size zero is requested.
// Jedi rounds have no hints at all; this is distinct from an empty set.
var ErrHintsUnavailable = errors.New("game: hints unavailable")

// GenerateHints returns count distinct squares that always include winning.
//
// count-1 decoys are drawn uniformly from [1, 100], rejecting repeats, and
// winning is added last. The winning square is treated as already taken
// while drawing so the result always has exactly count members. Earlier
// versions only de-duplicated decoys against each other and could return
// count-1 squares when a decoy hit the answer; that no longer happens.
// The result is sorted ascending.
func GenerateHints(src random.Source, count, winning int) ([]int, error) {
	if count < 1 {
		return nil, ErrHintsUnavailable
	}
	if count > MaxSquare {
		return nil, fmt.Errorf("game: hint count %d exceeds %d squares", count, MaxSquare)
	}
	if !IsSquare(winning) {
		return nil, fmt.Errorf("game: winning square %d out of range", winning)
	}

	taken := make(map[int]bool, count)
	taken[winning] = true
	hints := make([]int, 0, count)

	for len(hints) < count-1 {
		h := random.Square(src)
		for taken[h] {
			h = random.Square(src)
		}
		taken[h] = true
		hints = append(hints, h)
	}

	hints = append(hints, winning)
	slices.Sort(hints)
	return hints, nil
}
