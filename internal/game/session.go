package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guessgrid/internal/random"
)

// Persister loads and saves the win streak. Implementations own the medium;
// the session treats both calls as best-effort.
type Persister interface {
	Load() (int, error)
	Save(winstreak int) error
}

// RoundResult summarises a finished round.
type RoundResult struct {
	Difficulty    Difficulty
	WinningNumber int
	Outcome       Progress
	GuessesUsed   int // Submitted squares, including the winning one
	HintsUsed     int
	Winstreak     int // Streak after the round
}

// RoundRecorder is notified once for every round that ends.
type RoundRecorder interface {
	RecordRound(RoundResult) error
}

// Session owns the single mutable State for one player and applies actions
// to it one at a time. It is not safe for concurrent use; each player gets
// their own Session.
type Session struct {
	state     State
	src       random.Source
	persister Persister
	recorders []RoundRecorder
	logger    *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithSource sets the random source for winning numbers and hints.
func WithSource(src random.Source) Option {
	return func(s *Session) { s.src = src }
}

// WithPersister sets where the win streak is loaded from and saved to.
func WithPersister(p Persister) Option {
	return func(s *Session) { s.persister = p }
}

// WithRecorder adds a listener for finished rounds.
func WithRecorder(r RoundRecorder) Option {
	return func(s *Session) { s.recorders = append(s.recorders, r) }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// NewSession creates a session holding the pre-round initial state.
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = random.New(0)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.state = NewState(s.src)
	return s
}

// Open restores the persisted win streak. Load failures count as zero.
func (s *Session) Open() State {
	streak := 0
	if s.persister != nil {
		v, err := s.persister.Load()
		if err != nil {
			s.logger.Warn("could not load win streak", "error", err)
		} else {
			streak = v
		}
	}
	return s.Dispatch(LoadSession{Winstreak: streak})
}

// Start validates d and begins a new round.
func (s *Session) Start(d Difficulty) (State, error) {
	if _, err := Lookup(d); err != nil {
		return s.State(), err
	}
	return s.Dispatch(StartRound{Difficulty: d}), nil
}

// Dispatch applies a to the current state and returns the new snapshot.
func (s *Session) Dispatch(a Action) State {
	prev := s.state
	next := Transition(prev, a, s.src)
	s.state = next

	s.logger.Debug("transition",
		"action", ActionName(a),
		"difficulty", next.Difficulty,
		"progress", next.Progress,
		"guesses", len(next.PastGuesses),
	)

	if prev.Progress == Playing && next.Finished() {
		s.roundEnded(next)
	}

	return next.Clone()
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Close saves the current win streak.
func (s *Session) Close() {
	s.save(s.state.Winstreak)
}

func (s *Session) roundEnded(st State) {
	if st.Progress == Lost {
		s.save(0)
	}

	result := RoundResult{
		Difficulty:    st.Difficulty,
		WinningNumber: st.WinningNumber,
		Outcome:       st.Progress,
		GuessesUsed:   len(st.PastGuesses) - st.HintsUsed(),
		HintsUsed:     st.HintsUsed(),
		Winstreak:     st.Winstreak,
	}
	if st.Progress == Won {
		result.GuessesUsed++
	}

	s.logger.Info("round finished",
		"difficulty", result.Difficulty,
		"outcome", result.Outcome,
		"guesses", result.GuessesUsed,
		"hints", result.HintsUsed,
		"streak", result.Winstreak,
	)

	for _, r := range s.recorders {
		if err := r.RecordRound(result); err != nil {
			s.logger.Warn("could not record round", "error", err)
		}
	}
}

func (s *Session) save(streak int) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(streak); err != nil {
		s.logger.Warn("could not save win streak", "streak", streak, "error", err)
	}
}
