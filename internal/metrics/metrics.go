// Package metrics provides the centralized Prometheus metrics registry for
// the predictor and backtest harness.
package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Skip reason label values for MatchupsSkippedTotal.
const (
	SkipReasonNotFinal         = "not_final"
	SkipReasonMissingStandings = "missing_standings"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	PredictionsGeneratedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "predictions_generated_total",
		Help:      "Total number of predictions produced",
	})
	MatchupsSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "matchups_skipped_total",
		Help:      "Total number of matchups skipped, by reason",
	}, []string{"reason"})
	WeeksSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "weeks_skipped_total",
		Help:      "Total number of backtest weeks skipped for missing snapshots",
	})
	BacktestRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridiron_edge",
		Name:      "backtest_runs_total",
		Help:      "Total number of backtest runs started",
	})
)

// Gauge metrics
var (
	LastRunWinnerAccuracy = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_run_winner_accuracy",
		Help:      "Winner accuracy percentage of the most recent backtest run",
	})
	LastRunAvgSpreadError = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "gridiron_edge",
		Name:      "last_run_avg_spread_error",
		Help:      "Mean absolute spread error of the most recent backtest run",
	})
)

// Registry returns the shared registry, registering all collectors on first
// use.
func Registry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			PredictionsGeneratedTotal,
			MatchupsSkippedTotal,
			WeeksSkippedTotal,
			BacktestRunsTotal,
			LastRunWinnerAccuracy,
			LastRunAvgSpreadError,
		)
	})
	return registry
}

// Handler returns the HTTP handler serving the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry(), promhttp.HandlerOpts{})
}

// StartServer serves the metrics endpoint in the background.
func StartServer(port int, path string, logger *logrus.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(path, Handler())

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Metrics server stopped")
		}
	}()

	return server
}
