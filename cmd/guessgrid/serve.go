package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guessgrid/internal/metrics"
	"github.com/vovakirdan/guessgrid/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the guessgrid SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a difficulty menu.
Streaks and history are stored per SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.guessgrid/host_key

Examples:
  guessgrid serve                           # Listen on the configured address
  guessgrid serve --ssh :2222               # Listen on port 2222
  guessgrid serve --host-key ./my_host_key  # Use specific host key
  guessgrid serve --metrics :9090           # Expose prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Address for the prometheus /metrics endpoint")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}
	if flags.Changed("metrics") {
		cfg.Server.MetricsAddress = flagMetricsAddr
	}

	difficulty, err := cfg.Difficulty()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	var m *metrics.Metrics
	if addr := cfg.Server.MetricsAddress; addr != "" {
		m = metrics.New()
		go func() {
			logger.Info("serving metrics", "address", addr)
			if err := m.Serve(ctx, addr); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: cfg.Server.IdleTimeout,
		Difficulty:  difficulty,
		Seed:        cfg.Game.Seed,
	}, store, m, logger.WithPrefix("guessgrid-ssh"))
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Starting guessgrid SSH server on %s\n", server.Addr())
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
