// Package metrics defines and registers all custom Prometheus metrics for the
// news publishing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default registry at init time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news"

// ── Account metrics ───────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created author accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of author accounts created.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RoleGrantsTotal counts roles granted to authors.
// Label:
//   - role: the granted role name (e.g. "Admin")
var RoleGrantsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_grants_total",
		Help:      "Total number of roles granted to authors, by role name.",
	},
	[]string{"role"},
)

// ── News metrics ──────────────────────────────────────────────────────────────

// NewsPublishedTotal counts news items created.
var NewsPublishedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "published_total",
		Help:      "Total number of news items created.",
	},
)

// NewsDeletedTotal counts news items deleted through the API.
var NewsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of news items deleted through the API.",
	},
)
