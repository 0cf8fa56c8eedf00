// Package metrics exports round and session counters for prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/guessgrid/internal/game"
)

// Namespace prefixes every exported metric.
const Namespace = "guessgrid"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RoundsTotal     *prometheus.CounterVec
	HintsTotal      *prometheus.CounterVec
	GuessesPerRound prometheus.Histogram
	ActiveSessions  prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RoundsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "rounds_total",
			Help:      "Finished rounds by difficulty and outcome",
		}, []string{"difficulty", "outcome"}),
		HintsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "hints_total",
			Help:      "Hints requested in finished rounds",
		}, []string{"difficulty"}),
		GuessesPerRound: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "guesses_per_round",
			Help:      "Squares submitted per finished round",
			Buckets:   prometheus.LinearBuckets(1, 1, 5),
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "active_sessions",
			Help:      "Number of connected players",
		}),
	}

	m.registry.MustRegister(
		m.RoundsTotal,
		m.HintsTotal,
		m.GuessesPerRound,
		m.ActiveSessions,
	)

	return m
}

// RecordRound implements game.RoundRecorder.
func (m *Metrics) RecordRound(r game.RoundResult) error {
	d := string(r.Difficulty)
	m.RoundsTotal.WithLabelValues(d, string(r.Outcome)).Inc()
	m.HintsTotal.WithLabelValues(d).Add(float64(r.HintsUsed))
	m.GuessesPerRound.Observe(float64(r.GuessesUsed))
	return nil
}

// SessionStarted marks a player as connected.
func (m *Metrics) SessionStarted() {
	m.ActiveSessions.Inc()
}

// SessionEnded marks a player as gone.
func (m *Metrics) SessionEnded() {
	m.ActiveSessions.Dec()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
