package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/config"
	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/storage"
)

func TestApplyFlagsOnlyChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "")
	cmd.Flags().StringVar(&flagDBPath, "db", "", "")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")

	if err := cmd.Flags().Parse([]string{"--seed", "99", "--player", "ada"}); err != nil {
		t.Fatal(err)
	}

	c := config.Default()
	applyFlags(cmd, &c)

	if c.Game.Seed != 99 || c.Storage.Player != "ada" {
		t.Errorf("flags not applied: %+v", c)
	}
	if c.Storage.Path != config.Default().Storage.Path || c.Log.Level != "info" {
		t.Errorf("unset flags overwrote config: %+v", c)
	}
}

func TestLoadConfigFlagOverridesBadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GUESSGRID_LOG_LEVEL", "verbose")
	flagConfig = ""

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "")
	if err := cmd.Flags().Parse([]string{"--log-level", "debug"}); err != nil {
		t.Fatal(err)
	}

	if err := loadConfig(cmd, nil); err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}

	if err := cmd.Flags().Set("log-level", "loud"); err != nil {
		t.Fatal(err)
	}
	if err := loadConfig(cmd, nil); err == nil {
		t.Error("loadConfig() accepted log level loud")
	}
}

func TestDifficultiesOutput(t *testing.T) {
	var buf bytes.Buffer
	difficultiesCmd.SetOut(&buf)
	runDifficulties(difficultiesCmd, nil)

	out := buf.String()
	for _, want := range []string{"Easy", "Medium", "Hard", "Expert", "Jedi", "no hints", "20 squares"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	rounds := []storage.Round{
		{Difficulty: game.Easy, Outcome: game.Won, WinningNumber: 42, GuessesUsed: 2, HintsUsed: 1, Winstreak: 3,
			CreatedAt: time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)},
	}
	stats := map[game.Difficulty]*storage.DifficultyStats{
		game.Easy: {Difficulty: game.Easy, Rounds: 4, Wins: 3, BestStreak: 3},
	}

	printHistory(&buf, "ada", rounds, stats)
	out := buf.String()

	for _, want := range []string{"Round history - ada", "2026-05-04 10:30", "won", "Easy     4 rounds, 75% won, best streak 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	printHistory(&buf, "ada", nil, nil)

	if !strings.Contains(buf.String(), "No rounds recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}
