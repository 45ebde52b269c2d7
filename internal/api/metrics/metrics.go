// Package metrics defines and registers all custom Prometheus metrics for the
// portfolio API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init via
// promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ── Portfolio metrics ─────────────────────────────────────────────────────────

// PortfoliosCreatedTotal counts newly created portfolios.
// Label:
//   - theme: the theme the portfolio was created with (e.g. "default")
var PortfoliosCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "portfolios_created_total",
		Help:      "Total number of portfolios created, by theme.",
	},
	[]string{"theme"},
)

// SectionEditsTotal counts section mutations applied through the API.
// Labels:
//   - op: "add", "update", "remove", or "reorder"
//   - type: the section type, or "all" for reorders and removals
var SectionEditsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "section_edits_total",
		Help:      "Total number of section edits, by operation and section type.",
	},
	[]string{"op", "type"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthAttemptsTotal counts authentication attempts.
// Labels:
//   - op: "login" or "register"
//   - result: "success" or "failure"
var AuthAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_attempts_total",
		Help:      "Total number of authentication attempts, by operation and result.",
	},
	[]string{"op", "result"},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportsTotal counts portfolio export jobs that finished.
// Label:
//   - result: "success" or "error"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of portfolio export jobs processed, by result.",
	},
	[]string{"result"},
)

// ExportQueueDepth tracks the current number of export jobs waiting in each
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ExportQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "export_queue_depth",
		Help:      "Current number of export jobs pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// ExportDuration measures how long a single export takes from dequeue to the
// rendered file hitting disk.
var ExportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of portfolio export from dequeue to file write.",
		Buckets:   prometheus.DefBuckets,
	},
)
