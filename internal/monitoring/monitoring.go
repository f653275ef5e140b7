package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service provides monitoring functionality. Fetch and command failures are
// counted per kind so "no network", "bad response", and "bad payload" stay
// distinguishable in telemetry even though user-facing behavior is identical.
type Service struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	commands      *prometheus.CounterVec
	historySize   prometheus.Gauge
}

// NewService creates a monitoring service with its own metric registry.
func NewService() *Service {
	s := &Service{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "airsentry_fetches_total",
			Help: "Total sensor fetch attempts by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "airsentry_fetch_duration_seconds",
			Help:    "Histogram of sensor fetch durations.",
			Buckets: prometheus.DefBuckets,
		}),
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "airsentry_commands_total",
			Help: "Total control commands by device, action and outcome.",
		}, []string{"device", "action", "outcome"}),
		historySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "airsentry_history_size",
			Help: "Number of readings currently retained in the history store.",
		}),
	}

	s.registry.MustRegister(
		s.fetches,
		s.fetchDuration,
		s.commands,
		s.historySize,
	)

	return s
}

// RecordFetch records one fetch attempt. Outcome is "ok" or a failure kind.
func (s *Service) RecordFetch(outcome string, duration time.Duration) {
	if s == nil {
		return
	}
	s.fetches.WithLabelValues(outcome).Inc()
	s.fetchDuration.Observe(duration.Seconds())
}

// RecordCommand records one control command dispatch.
func (s *Service) RecordCommand(device, action, outcome string) {
	if s == nil {
		return
	}
	s.commands.WithLabelValues(device, action, outcome).Inc()
}

// SetHistorySize updates the history size gauge.
func (s *Service) SetHistorySize(n int) {
	if s == nil {
		return
	}
	s.historySize.Set(float64(n))
}

// Handler returns the Prometheus exposition handler for this registry.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
