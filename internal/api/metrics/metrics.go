// Package metrics defines all custom Prometheus metrics for the agency API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agency"

// RequestsSubmittedTotal counts service requests created.
// Label:
//   - service: catalog service name (e.g. "SEO Optimization")
var RequestsSubmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of service requests submitted, by service name.",
	},
	[]string{"service"},
)

// RequestsCompletedTotal counts requests transitioned to completed.
var RequestsCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_completed_total",
		Help:      "Total number of service requests marked completed.",
	},
)

// MailsSentTotal counts successfully delivered notification mails.
// Label:
//   - kind: "admin_new_request", "completion", or "admin_contact"
var MailsSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_sent_total",
		Help:      "Total number of notification mails delivered, by kind.",
	},
	[]string{"kind"},
)

// MailsFailedTotal counts notification mails that failed delivery. Delivery
// is best-effort, so this counter is the only trace of a lost mail besides
// the error log.
var MailsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mails_failed_total",
		Help:      "Total number of notification mails that failed delivery, by kind.",
	},
	[]string{"kind"},
)

// ContactMessagesTotal counts contact-form submissions.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages received.",
	},
)
