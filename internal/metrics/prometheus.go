package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "prospect"

type Prometheus struct {
	Experiments *prometheus.CounterVec
	AUC         *prometheus.GaugeVec
	Fit         *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Experiments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "experiments_total",
				Help:      "experiment folds run, by outcome",
			}, []string{"experiment", "status"}),
		AUC: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "auc",
				Help:      "area under the roc curve of the last run",
			}, []string{"experiment", "fold"}),
		Fit: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fit_seconds",
				Help:      "time spent balancing and fitting a classifier",
				Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
			}, []string{"experiment"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Experiments, p.AUC, p.Fit}
}
