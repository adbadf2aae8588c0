// Package metrics defines and registers all custom Prometheus metrics for
// the user administration API. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "household"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful self-registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts that reached the auth service.
// Label:
//   - result: "success" or "denied"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenPairsIssuedTotal counts issued access+refresh pairs.
// Label:
//   - grant: what produced the pair ("register", "login", "refresh")
var TokenPairsIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_pairs_issued_total",
		Help:      "Total number of access+refresh token pairs issued, by grant.",
	},
	[]string{"grant"},
)

// AuthDenialsTotal counts requests rejected at the boundary.
// Label:
//   - kind: "unauthenticated" (401) or "forbidden" (403)
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied for authentication or authorization reasons.",
	},
	[]string{"kind"},
)

// ── User management metrics ───────────────────────────────────────────────────

// UsersCreatedTotal counts admin-created accounts.
// Label:
//   - role: the role granted at creation ("ADMIN", "MANAGER", "USER", "CUSTOMER")
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created through the admin API, by role.",
	},
	[]string{"role"},
)

// UsersDeletedTotal counts accounts removed through the admin API.
var UsersDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_deleted_total",
		Help:      "Total number of users deleted through the admin API.",
	},
)
