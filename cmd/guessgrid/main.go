// guessgrid is a number-guessing game on a 10x10 board, played in the
// terminal or over SSH.
//
// Usage:
//
//	guessgrid play           - Pick a difficulty and play
//	guessgrid difficulties   - List difficulty levels
//	guessgrid streak         - Show or reset the saved win streak
//	guessgrid history        - Show finished rounds
//	guessgrid serve          - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.guessgrid/config.yaml, ./configs/guessgrid.yaml)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.guessgrid/guessgrid.db)
//	--player <name>     - Whose streak and history to use
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogLevel string

	// Resolved before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guessgrid",
	Short: "Guess Grid - find the hidden number on a 10x10 board",
	Long: `Guess Grid hides a number between 1 and 100. Pick squares to guess it;
every miss tells you how close you were. Hints narrow the board down at the
cost of a guess. Win rounds in a row to build your streak.

Available commands:
  play          - Play in this terminal
  difficulties  - Show difficulty levels
  streak        - Show or reset your win streak
  history       - View finished rounds
  serve         - Start SSH server for remote play

Examples:
  guessgrid play
  guessgrid play --difficulty hard
  guessgrid history --limit 5
  guessgrid serve --ssh :2222 --metrics :9090`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to streak database (default ~/.guessgrid/guessgrid.db)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for streak and history (default \"local\")")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves config file, environment and flags, in that order of
// increasing precedence.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	applyFlags(cmd, &loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded
	logger = newLogger(cfg)
	logger.Debug("config loaded", "player", cfg.Storage.Player, "db", cfg.Storage.Path)
	return nil
}

// applyFlags copies explicitly set global flags over c.
func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		c.Game.Seed = flagSeed
	}
	if flags.Changed("db") {
		c.Storage.Path = flagDBPath
	}
	if flags.Changed("player") {
		c.Storage.Player = flagPlayer
	}
	if flags.Changed("log-level") {
		c.Log.Level = flagLogLevel
	}
}
