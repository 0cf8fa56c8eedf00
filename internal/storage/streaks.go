package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/guessgrid/internal/game"
)

// LoadStreak returns the stored win streak for player. A player with no
// stored value, or a value that is not a number, has a streak of 0.
func (s *Store) LoadStreak(player string) (int, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM streaks WHERE player = ?", player).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load streak: %w", err)
	}
	return game.ParseWinstreak(raw), nil
}

// SaveStreak stores streak for player, replacing any previous value.
func (s *Store) SaveStreak(player string, streak int) error {
	_, err := s.db.Exec(
		`INSERT INTO streaks (player, value) VALUES (?, ?)
		 ON CONFLICT(player) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		player, game.FormatWinstreak(streak),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save streak: %w", err)
	}
	return nil
}

// ResetStreak deletes the stored streak for player.
func (s *Store) ResetStreak(player string) error {
	if _, err := s.db.Exec("DELETE FROM streaks WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot reset streak: %w", err)
	}
	return nil
}

// StreakStore adapts the store to game.Persister for one player.
func (s *Store) StreakStore(player string) game.Persister {
	return &streakStore{store: s, player: player}
}

type streakStore struct {
	store  *Store
	player string
}

func (p *streakStore) Load() (int, error) { return p.store.LoadStreak(p.player) }

func (p *streakStore) Save(streak int) error { return p.store.SaveStreak(p.player, streak) }
