package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/guessgrid/internal/core"
	"github.com/vovakirdan/guessgrid/internal/game"
	"github.com/vovakirdan/guessgrid/internal/metrics"
	"github.com/vovakirdan/guessgrid/internal/random"
	"github.com/vovakirdan/guessgrid/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.guessgrid/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Difficulty is preselected in every player's menu.
	Difficulty game.Difficulty

	// Seed fixes every session's random source. 0 gives each session its own.
	Seed int64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 10 * time.Minute,
		Difficulty:  game.Easy,
	}
}

// SSHServer wraps a Wish SSH server. Every connection gets its own
// game.Session keyed by the SSH user name.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	store   *storage.Store
	metrics *metrics.Metrics
	logger  *log.Logger
}

// NewSSHServer creates a new SSH server. store and m may be nil, in which
// case streaks are not persisted or metrics are not collected.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, m *metrics.Metrics, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "guessgrid-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		store:   store,
		metrics: m,
		logger:  logger,
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		// The last middleware runs first: loggingMiddleware wraps the
		// program and closes the game session once it has returned.
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// resolveHostKey picks the host key location and makes sure its directory
// exists. Wish generates the key on first start.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".guessgrid", "host_key")
	}

	path, err := storage.ExpandHome(path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newPlayerSession builds the game session for one connected user.
func (s *SSHServer) newPlayerSession(user string) *game.Session {
	opts := []game.Option{
		game.WithSource(random.New(s.config.Seed)),
		game.WithLogger(s.logger.With("user", user)),
	}
	if s.store != nil {
		opts = append(opts,
			game.WithPersister(s.store.StreakStore(user)),
			game.WithRecorder(s.store.RoundRecorder(user)),
		)
	}
	if s.metrics != nil {
		opts = append(opts, game.WithRecorder(s.metrics))
	}

	gs := game.NewSession(opts...)
	gs.Open()
	return gs
}

// playerSessionKey stores a connection's *game.Session in its ssh context.
type playerSessionKey struct{}

// endPlayerSession saves the streak of the session stored in ctx, if any.
// It runs after the Bubble Tea program has returned, so nothing else
// touches the session any more.
func (s *SSHServer) endPlayerSession(ctx context.Context) {
	gs, ok := ctx.Value(playerSessionKey{}).(*game.Session)
	if !ok {
		return
	}
	gs.Close()
	if s.metrics != nil {
		s.metrics.SessionEnded()
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	gs := s.newPlayerSession(user)
	if s.metrics != nil {
		s.metrics.SessionStarted()
	}

	sshSession.Context().SetValue(playerSessionKey{}, gs)

	var history HistorySource
	if s.store != nil {
		history = s.store
	}

	model := NewSessionModel(SessionOptions{
		Session:    gs,
		History:    history,
		Player:     user,
		Difficulty: s.config.Difficulty,
		Config: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
			Seed:    s.config.Seed,
		},
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.endPlayerSession(sshSession.Context())
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled
// or the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
