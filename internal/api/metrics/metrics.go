// Package metrics defines and registers all custom Prometheus metrics
// for the designer platform API. It is the single source of truth for
// metric names, labels, and help strings. Registration happens at
// import time via promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vovzone"

// RegistrationsTotal counts designer applications accepted through the
// public registration endpoint.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of designer applications submitted.",
	},
)

// ApplicationDecisionsTotal counts admin decisions on applications.
// Label:
//   - decision: "approved" or "rejected"
var ApplicationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "application_decisions_total",
		Help:      "Total number of application decisions, by outcome.",
	},
	[]string{"decision"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (all failure modes collapse into
//     one bucket on purpose; per-cause counts would mirror the account
//     enumeration the API refuses to expose)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
