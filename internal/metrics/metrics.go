package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const (
	Success = "success"
	Failure = "failure"
)

// Metrics records experiment outcomes on its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates and registers the experiment collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	p := NewPrometheusMetrics()
	registry.MustRegister(p.collectors()...)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Experiment counts a finished experiment fold.
func (m *Metrics) Experiment(name, status string) {
	m.prometheus.Experiments.WithLabelValues(name, status).Inc()
}

// AUC records the score of a fold. NaN is kept as is.
func (m *Metrics) AUC(name, fold string, auc float64) {
	m.prometheus.AUC.WithLabelValues(name, fold).Set(auc)
}

// Fit observes the duration of a fit.
func (m *Metrics) Fit(name string, d time.Duration) {
	m.prometheus.Fit.WithLabelValues(name).Observe(d.Seconds())
}

// Handler exposes the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on the given address in the background.
func (m *Metrics) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("addr", addr).Msg("metrics server stopped")
		}
	}()
	log.Info().Str("addr", addr).Msg("serving metrics")
	return srv
}
