package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagReset bool

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show or reset your win streak",
	Long: `Print the saved win streak for the current player.

Examples:
  guessgrid streak
  guessgrid streak --player alice
  guessgrid streak --reset`,
	Args: cobra.NoArgs,
	RunE: runStreak,
}

func init() {
	streakCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the streak to 0")
}

func runStreak(cmd *cobra.Command, _ []string) error {
	store, err := mustOpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	player := cfg.Storage.Player
	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ResetStreak(player); err != nil {
			return err
		}
		logger.Info("streak reset", "player", player)
		fmt.Fprintf(out, "Win streak for %s reset to 0.\n", player)
		return nil
	}

	streak, err := store.LoadStreak(player)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Win streak for %s: %d\n", player, streak)
	return nil
}
