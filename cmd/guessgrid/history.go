package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/platform/tui"
	"github.com/vovakirdan/guessgrid/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished rounds",
	Long: `Display the most recent rounds for the current player, followed by
per-difficulty totals.

Examples:
  guessgrid history
  guessgrid history --limit 50
  guessgrid history --interactive`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	historyCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse history in a table")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	store, err := mustOpenStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	player := cfg.Storage.Player

	if flagInteractive {
		rc := terminalConfig(0)
		_, err := tui.RunHistory(store, player, rc.ScreenW, rc.ScreenH)
		return err
	}

	rounds, err := store.RecentRounds(player, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(player)
	if err != nil {
		return err
	}

	printHistory(cmd.OutOrStdout(), player, rounds, stats)
	return nil
}

func printHistory(out io.Writer, player string, rounds []storage.Round, stats map[game.Difficulty]*storage.DifficultyStats) {
	fmt.Fprintf(out, "Round history - %s\n", player)
	fmt.Fprintln(out)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'guessgrid play' to start one!")
		return
	}

	fmt.Fprintf(out, "  %-16s  %-7s  %-6s  %-6s  %-7s  %-5s  %s\n", "Date", "Level", "Result", "Number", "Guesses", "Hints", "Streak")
	fmt.Fprintf(out, "  %-16s  %-7s  %-6s  %-6s  %-7s  %-5s  %s\n", "----", "-----", "------", "------", "-------", "-----", "------")
	for _, r := range rounds {
		fmt.Fprintf(out, "  %-16s  %-7s  %-6s  %-6d  %-7d  %-5d  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Difficulty.Title(),
			outcomeWord(r.Outcome),
			r.WinningNumber,
			r.GuessesUsed,
			r.HintsUsed,
			r.Winstreak,
		)
	}

	fmt.Fprintln(out)
	for _, d := range game.Difficulties() {
		s, ok := stats[d]
		if !ok {
			continue
		}
		fmt.Fprintf(out, "%-7s  %d rounds, %.0f%% won, best streak %d\n",
			d.Title(), s.Rounds, s.WinRate()*100, s.BestStreak)
	}
}

func outcomeWord(p game.Progress) string {
	if p == game.Won {
		return "won"
	}
	return "lost"
}
