package game

// Action is a player or driver intent fed to Transition.
// The set is closed: only the types in this file implement it.
type Action interface {
	actionName() string
}

// LoadSession restores the persisted win streak at session start.
type LoadSession struct {
	Winstreak int
}

// StartRound begins a fresh round at the given difficulty.
type StartRound struct {
	Difficulty Difficulty
}

// SelectSquare highlights a square for the next guess.
type SelectSquare struct {
	Square int
}

// SubmitGuess submits the currently selected square.
type SubmitGuess struct{}

// RequestHint spends one guess to reveal candidate squares.
type RequestHint struct{}

func (LoadSession) actionName() string  { return "load_session" }
func (StartRound) actionName() string   { return "start_round" }
func (SelectSquare) actionName() string { return "select_square" }
func (SubmitGuess) actionName() string  { return "submit_guess" }
func (RequestHint) actionName() string  { return "request_hint" }

// ActionName returns a stable identifier for logging.
func ActionName(a Action) string {
	if a == nil {
		return "none"
	}
	return a.actionName()
}
