package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal. Without --difficulty a menu lets you
pick one; with it the first round starts straight away.

Controls:
  Arrows/hjkl  - Move the cursor
  Mouse click  - Select a square
  Space        - Select the square under the cursor
  Enter/G      - Guess the selected square
  C            - Ask for a hint (costs one guess)
  N            - New round at the same difficulty
  1-5          - New round at Easy..Jedi
  Esc/B        - Back to the menu
  Q/Ctrl+C     - Quit

Examples:
  guessgrid play
  guessgrid play --difficulty expert
  guessgrid play --seed 42 --player alice`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Start a round right away: easy, medium, hard, expert, jedi")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	difficulty, err := cfg.Difficulty()
	if err != nil {
		return err
	}
	skipMenu := false
	if cmd.Flags().Changed("difficulty") {
		if difficulty, err = game.ParseDifficulty(flagDifficulty); err != nil {
			return fmt.Errorf("%w (run 'guessgrid difficulties' to list them)", err)
		}
		skipMenu = true
	}

	uiLogger, logFile := newFileLogger(cfg)
	defer logFile.Close()

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	player := cfg.Storage.Player
	session := newSession(store, player, cfg.Game.Seed, uiLogger.With("player", player))
	defer session.Close()

	var history tui.HistorySource
	if store != nil {
		history = store
	}

	return tui.Run(tui.SessionOptions{
		Session:    session,
		History:    history,
		Player:     player,
		Config:     terminalConfig(cfg.Game.Seed),
		Difficulty: difficulty,
		SkipMenu:   skipMenu,
	})
}
