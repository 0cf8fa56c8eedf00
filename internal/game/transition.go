package game

import "github.com/vovakirdan/guessgrid/internal/random"

// Transition computes the state that follows s after action a.
//
// It is pure apart from draws on src (new winning number, hint decoys).
// Unknown actions and invalid payloads return s unchanged. Game-level
// problems (nothing selected, repeated guess, too few guesses to hint) are
// reported through Message rather than errors.
func Transition(s State, a Action, src random.Source) State {
	switch a := a.(type) {
	case LoadSession:
		return loadSession(s, a)
	case StartRound:
		return startRound(s, a, src)
	case SelectSquare:
		return selectSquare(s, a)
	case SubmitGuess:
		return submitGuess(s)
	case RequestHint:
		return requestHint(s, src)
	default:
		return s
	}
}

func loadSession(s State, a LoadSession) State {
	next := s.Clone()
	next.Winstreak = max(a.Winstreak, 0)
	return next
}

func startRound(s State, a StartRound, src random.Source) State {
	allowance, err := Lookup(a.Difficulty)
	if err != nil {
		return s
	}

	return State{
		Difficulty:     a.Difficulty,
		WinningNumber:  random.Square(src),
		MaxGuesses:     allowance.MaxGuesses,
		NumHints:       allowance.NumHints,
		SelectedSquare: NoSquare,
		Progress:       Playing,
		Message:        MsgStart,
		Winstreak:      s.Winstreak,
	}
}

func selectSquare(s State, a SelectSquare) State {
	if !IsSquare(a.Square) {
		return s
	}

	next := s.Clone()
	next.SelectedSquare = a.Square
	next.CurrentHints = nil
	return next
}

func submitGuess(s State) State {
	if s.Progress != Playing {
		return s
	}

	next := s.Clone()
	guess := s.SelectedSquare

	switch {
	case guess == NoSquare:
		next.Message = MsgChooseSquare
		return next

	case s.HasGuessed(guess):
		next.Message = MsgAlreadyGuessed
		return next

	case guess == s.WinningNumber:
		next.Progress = Won
		next.Message = MsgYouWin
		next.Winstreak = s.Winstreak + 1
		return next
	}

	next.PastGuesses = append(next.PastGuesses, guess)
	next.Message = proximity(guess, s.WinningNumber)

	if len(next.PastGuesses) == next.MaxGuesses {
		next.Progress = Lost
		next.Message = MsgYouLose
		next.Winstreak = 0
	}
	return next
}

func requestHint(s State, src random.Source) State {
	if s.Progress != Playing {
		return s
	}

	next := s.Clone()

	if s.Difficulty == Jedi {
		next.Message = MsgJediHint
		return next
	}

	if s.GuessesLeft() == 1 {
		next.Message = MsgNotEnoughToHint
		return next
	}

	hints, err := GenerateHints(src, s.NumHints, s.WinningNumber)
	if err != nil {
		return s
	}

	next.CurrentHints = hints
	next.Message = MsgClear
	next.PastGuesses = append(next.PastGuesses, HintMarker)
	return next
}
