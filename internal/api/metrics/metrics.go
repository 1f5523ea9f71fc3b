// Package metrics defines and registers the custom Prometheus metrics for
// the user service. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry at import time via promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userservice"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out.
// Label:
//   - type: "access" or "refresh"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs issued, by token type.",
	},
	[]string{"type"},
)

// AuthRejectionsTotal counts requests turned away before reaching a handler.
// Label:
//   - reason: "missing_header", "invalid_token", or "forbidden"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the auth or role middleware.",
	},
	[]string{"reason"},
)

// UsersCreatedTotal counts accounts created through any creation endpoint.
// Label:
//   - role: "user", "shopkeeper", or "admin"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by assigned role.",
	},
	[]string{"role"},
)
