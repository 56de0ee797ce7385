// Package metrics exposes Prometheus instrumentation for the
// optimizer and evaluator. Nothing in this package is required for
// correctness; a caller that never registers a Prometheus handler
// simply never scrapes these.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BuildsTested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hunterforge",
		Name:      "builds_tested_total",
		Help:      "Total number of build configurations fully evaluated.",
	})

	BuildsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hunterforge",
		Name:      "builds_rejected_total",
		Help:      "Total number of generated builds rejected by validation.",
	})

	SimsPerSecond = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hunterforge",
		Name:      "sims_per_second",
		Help:      "Rolling throughput of the batch evaluator, in simulated runs per second.",
	})

	ActiveTier = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "hunterforge",
		Name:      "active_tier",
		Help:      "The point-budget tier currently being optimized, as an index into the curriculum.",
	})
)
