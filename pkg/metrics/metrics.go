// Package metrics counts provisioning outcomes with Prometheus collectors.
// A CLI run has no scrape endpoint, so the registry is exported as a
// node-exporter textfile when a path is configured.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arthur-debert/vendorlink/pkg/symlink"
)

const namespace = "vendorlink"

// Recorder owns a private registry so tests and repeated runs never collide
// with the global default registry.
type Recorder struct {
	registry *prometheus.Registry
	outcomes *prometheus.CounterVec
	runs     prometheus.Counter
}

// NewRecorder creates a recorder with every outcome label pre-initialized to zero
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "provision_outcomes_total",
				Help:      "Symlink installer outcomes by kind",
			},
			[]string{"outcome"},
		),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provision_runs_total",
			Help:      "Provisioning passes started",
		}),
	}
	r.registry.MustRegister(r.outcomes, r.runs)
	for _, o := range symlink.AllOutcomes {
		r.outcomes.WithLabelValues(string(o))
	}
	return r
}

// ObserveOutcome counts one installer result
func (r *Recorder) ObserveOutcome(o symlink.Outcome) {
	r.outcomes.WithLabelValues(string(o)).Inc()
}

// ObserveRun counts one provisioning pass
func (r *Recorder) ObserveRun() {
	r.runs.Inc()
}

// Registry exposes the underlying gatherer
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes the current metrics in the text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
