package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/guessgrid/internal/game"
)

// Round is one finished round as stored in the history table.
type Round struct {
	ID            string
	Player        string
	Difficulty    game.Difficulty
	WinningNumber int
	Outcome       game.Progress
	GuessesUsed   int
	HintsUsed     int
	Winstreak     int
	CreatedAt     time.Time
}

// SaveRound appends a finished round to the history.
// Returns the generated round ID.
func (s *Store) SaveRound(player string, r game.RoundResult) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds
		 (id, player, difficulty, winning_number, outcome, guesses_used, hints_used, winstreak)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, player, string(r.Difficulty), r.WinningNumber, string(r.Outcome),
		r.GuessesUsed, r.HintsUsed, r.Winstreak,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RecentRounds retrieves the newest rounds for player, newest first.
// An empty player returns rounds from everyone.
func (s *Store) RecentRounds(player string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, difficulty, winning_number, outcome,
		        guesses_used, hints_used, winstreak, created_at
		 FROM rounds
		 WHERE ? = '' OR player = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var difficulty, outcome string
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Player,
			&difficulty,
			&r.WinningNumber,
			&outcome,
			&r.GuessesUsed,
			&r.HintsUsed,
			&r.Winstreak,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Difficulty = game.Difficulty(difficulty)
		r.Outcome = game.Progress(outcome)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// ClearRounds deletes the round history for player.
func (s *Store) ClearRounds(player string) error {
	if _, err := s.db.Exec("DELETE FROM rounds WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// DifficultyStats contains aggregated results for one difficulty.
type DifficultyStats struct {
	Difficulty game.Difficulty
	Rounds     int
	Wins       int
	BestStreak int
	AvgGuesses float64
	LastPlayed time.Time
}

// WinRate returns the fraction of rounds won, or 0 with no rounds.
func (d DifficultyStats) WinRate() float64 {
	if d.Rounds == 0 {
		return 0
	}
	return float64(d.Wins) / float64(d.Rounds)
}

// Stats aggregates player's history per difficulty.
func (s *Store) Stats(player string) (map[game.Difficulty]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        MAX(winstreak), AVG(guesses_used), MAX(created_at)
		 FROM rounds
		 WHERE player = ?
		 GROUP BY difficulty`,
		string(game.Won), player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[game.Difficulty]*DifficultyStats)
	for rows.Next() {
		var d DifficultyStats
		var difficulty string
		var lastPlayed any
		if err := rows.Scan(&difficulty, &d.Rounds, &d.Wins, &d.BestStreak, &d.AvgGuesses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		d.Difficulty = game.Difficulty(difficulty)
		d.LastPlayed = parseTime(lastPlayed)
		stats[d.Difficulty] = &d
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// RoundRecorder adapts the store to game.RoundRecorder for one player.
func (s *Store) RoundRecorder(player string) game.RoundRecorder {
	return &roundRecorder{store: s, player: player}
}

type roundRecorder struct {
	store  *Store
	player string
}

func (r *roundRecorder) RecordRound(res game.RoundResult) error {
	_, err := r.store.SaveRound(r.player, res)
	return err
}
