package game

// seqSource replays a fixed list of squares (1-100). Intn(n) returns the next
// square minus one, so random.Square yields the listed values in order.
type seqSource struct {
	squares []int
	i       int
}

func newSeq(squares ...int) *seqSource {
	return &seqSource{squares: squares}
}

func (s *seqSource) Intn(n int) int {
	v := s.squares[s.i%len(s.squares)]
	s.i++
	return (v - 1) % n
}

// startedState returns a fresh round at d whose winning number is winning.
func startedState(d Difficulty, winning int) State {
	return Transition(State{}, StartRound{Difficulty: d}, newSeq(winning))
}

// guess selects and submits square.
func guess(s State, square int) State {
	s = Transition(s, SelectSquare{Square: square}, nil)
	return Transition(s, SubmitGuess{}, nil)
}
