package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/guessgrid/internal/config"
	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/random"
	"github.com/vovakirdan/guessgrid/internal/storage"
)

// newLogger builds the stderr logger used outside the full-screen UI.
func newLogger(c config.Config) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "guessgrid",
	})
	if lvl, err := c.LogLevel(); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// newFileLogger builds a logger writing to the configured log file, so
// log lines do not tear the alt screen. It falls back to discarding.
func newFileLogger(c config.Config) (*log.Logger, io.Closer) {
	l := log.NewWithOptions(io.Discard, log.Options{Prefix: "guessgrid"})
	if lvl, err := c.LogLevel(); err == nil {
		l.SetLevel(lvl)
	}
	if c.Log.File == "" {
		return l, io.NopCloser(nil)
	}

	path, err := storage.ExpandHome(c.Log.File)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		logger.Warn("could not open log file, UI logs are discarded", "path", c.Log.File, "error", err)
		return l, io.NopCloser(nil)
	}

	l.SetOutput(f)
	l.SetReportTimestamp(true)
	return l, f
}

// openStore opens the streak database. Failure is a warning: the game still
// works, it just forgets the streak.
func openStore(c config.Config) *storage.Store {
	store, err := storage.Open(c.Storage.Path)
	if err != nil {
		logger.Warn("could not open streak database, playing without persistence", "error", err)
		return nil
	}
	return store
}

// mustOpenStore opens the database for commands that need it.
func mustOpenStore(c config.Config) (*storage.Store, error) {
	store, err := storage.Open(c.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("open streak database: %w", err)
	}
	return store, nil
}

// newSession builds an opened game session for player.
func newSession(store *storage.Store, player string, seed int64, l *log.Logger) *game.Session {
	opts := []game.Option{
		game.WithSource(random.New(seed)),
		game.WithLogger(l),
	}
	if store != nil {
		opts = append(opts,
			game.WithPersister(store.StreakStore(player)),
			game.WithRecorder(store.RoundRecorder(player)),
		)
	}

	s := game.NewSession(opts...)
	s.Open()
	return s
}

// terminalConfig reads the terminal size, defaulting to 80x24.
func terminalConfig(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Seed = seed
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	return rc
}
