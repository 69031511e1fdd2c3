package devtools

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus metrics of a Recorder.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "tracked").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for effect run duration.
	// Default: prometheus.DefBuckets.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "tracked",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// metrics holds the Prometheus metrics for effect runs.
type metrics struct {
	runsTotal   *prometheus.CounterVec
	changedKeys *prometheus.CounterVec
	runDuration *prometheus.HistogramVec
}

func initMetrics(config MetricsConfig) *metrics {
	factory := promauto.With(config.Registry)

	return &metrics{
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_runs_total",
			Help:        "Total number of tracked effect executions",
			ConstLabels: config.ConstLabels,
		}, []string{"effect", "mount"}),

		changedKeys: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_changed_keys_total",
			Help:        "Total number of dependency keys reported changed",
			ConstLabels: config.ConstLabels,
		}, []string{"effect"}),

		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effect_run_duration_seconds",
			Help:        "Effect body execution duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"effect"}),
	}
}

// record updates the metrics for one effect run.
func (m *metrics) record(r RunRecord) {
	mount := "false"
	if r.Mount {
		mount = "true"
	}
	m.runsTotal.WithLabelValues(r.Effect, mount).Inc()
	m.changedKeys.WithLabelValues(r.Effect).Add(float64(r.ChangeCount))
	m.runDuration.WithLabelValues(r.Effect).Observe(r.Duration.Seconds())
}
