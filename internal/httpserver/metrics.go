// internal/httpserver/metrics.go
//
// Prometheus metrics for game traffic, served on GET /metrics from a private
// registry so tests can build as many servers as they like.

package httpserver

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Guess outcome labels.
const (
	outcomeCorrect   = "correct"
	outcomeIncorrect = "incorrect"
	outcomeRejected  = "rejected"
)

// Metrics contains the counters updated by the game handlers.
type Metrics struct {
	GamesStarted *prometheus.CounterVec
	GamesWon     *prometheus.CounterVec
	Guesses      *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates the game metrics and registers them with registry
// (a fresh registry when nil).
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := &Metrics{
		GamesStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokedle_games_started_total",
				Help: "Daily sessions created, partitioned by mode.",
			},
			[]string{"mode"},
		),
		GamesWon: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokedle_games_won_total",
				Help: "Daily sessions solved, partitioned by mode.",
			},
			[]string{"mode"},
		),
		Guesses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pokedle_guesses_total",
				Help: "Guesses submitted to daily sessions, partitioned by mode and outcome.",
			},
			[]string{"mode", "outcome"},
		),
		registry: registry,
	}
	for _, c := range []prometheus.Collector{m.GamesStarted, m.GamesWon, m.Guesses} {
		if err := registry.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register game metrics: %w", err)
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
