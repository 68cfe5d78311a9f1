// Package metrics exports simulation results as Prometheus series.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"mlfq-sim/internal/schedulers"
)

// Recorder publishes per-scheme run results.
type Recorder struct {
	runs           *prometheus.CounterVec
	dispatches     *prometheus.CounterVec
	averages       *prometheus.GaugeVec
	simulationTime *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlfq_runs_total",
				Help: "Total number of completed simulation runs.",
			},
			[]string{"scheme"},
		),
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mlfq_dispatches_total",
				Help: "Total number of dispatch decisions, by offering queue level.",
			},
			[]string{"scheme", "queue"},
		),
		averages: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mlfq_average_ticks",
				Help: "Average per-process timing metric of the latest run, in ticks.",
			},
			[]string{"scheme", "metric"},
		),
		simulationTime: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mlfq_simulation_ticks",
				Help: "Total simulated time of the latest run, in ticks.",
			},
			[]string{"scheme"},
		),
	}
	reg.MustRegister(r.runs, r.dispatches, r.averages, r.simulationTime)
	return r
}

// Observe records one finished run.
func (r *Recorder) Observe(result schedulers.Result) {
	scheme := strconv.Itoa(result.Scheme.ID)
	r.runs.WithLabelValues(scheme).Inc()
	for _, d := range result.Trace {
		r.dispatches.WithLabelValues(scheme, strconv.Itoa(d.Queue)).Inc()
	}
	for name, value := range result.Metrics {
		r.averages.WithLabelValues(scheme, name).Set(value)
	}
	r.simulationTime.WithLabelValues(scheme).Set(float64(result.TotalTime))
}
