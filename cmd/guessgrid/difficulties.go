package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/game"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty levels",
	Long:  `Shows every difficulty with its guess budget and hint size.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Difficulty levels:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-3s  %-7s  %-7s  %s\n", "Key", "Level", "Guesses", "Hint size")
	fmt.Fprintf(out, "  %-3s  %-7s  %-7s  %s\n", "---", "-----", "-------", "---------")

	for i, d := range game.Difficulties() {
		a, err := game.Lookup(d)
		if err != nil {
			continue
		}
		hint := fmt.Sprintf("%d squares", a.NumHints)
		if a.NumHints == 0 {
			hint = "no hints"
		}
		fmt.Fprintf(out, "  %-3d  %-7s  %-7d  %s\n", i+1, d.Title(), a.MaxGuesses, hint)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'guessgrid play --difficulty <level>' to start a round.")
}
