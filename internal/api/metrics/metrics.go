// Package metrics defines and registers all custom Prometheus metrics for the
// vendor portal. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; expose them by mounting promhttp.Handler().
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionLoginsTotal counts sessions established through the sign-in exchange.
var SessionLoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logins_total",
		Help:      "Total number of sessions established via sign-in.",
	},
)

// SessionLogoutsTotal counts cleared sessions.
// Label:
//   - cause: "user" (explicit sign-out) or "unauthorized" (401-triggered)
var SessionLogoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_logouts_total",
		Help:      "Total number of sessions cleared, by cause.",
	},
	[]string{"cause"},
)

// SessionRestoresTotal counts startup restore outcomes.
// Label:
//   - result: "restored" or "empty"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of session restore attempts, by result.",
	},
	[]string{"result"},
)

// ── Authorization metrics ─────────────────────────────────────────────────────

// GuardDecisionsTotal counts route guard evaluations.
// Label:
//   - outcome: "render", "signin_redirect", or "role_redirect"
var GuardDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_decisions_total",
		Help:      "Total number of route guard decisions, by outcome.",
	},
	[]string{"outcome"},
)

// UnauthorizedResponsesTotal counts 401 responses observed on outgoing calls
// to the remote API.
var UnauthorizedResponsesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unauthorized_responses_total",
		Help:      "Total number of unauthorized responses seen by the authorization transport.",
	},
)

// ── Inquiry metrics ───────────────────────────────────────────────────────────

// InquiriesProcessedTotal counts vendor inquiries that completed processing.
// Label:
//   - result: "ok" or the failure reason ("vendor_not_found", "insert_failed")
var InquiriesProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inquiries_processed_total",
		Help:      "Total number of vendor inquiries processed, by result.",
	},
	[]string{"result"},
)

// InquiryQueueDepth tracks the number of inquiries waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var InquiryQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inquiry_queue_depth",
		Help:      "Current number of inquiries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
