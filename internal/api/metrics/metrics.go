// Package metrics defines and registers all custom Prometheus metrics for the
// commerce API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commerce"

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

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created through self-registration.",
	},
)

// AccessDeniedTotal counts authorization denials at the transport boundary.
// Label:
//   - status: the HTTP status of the denial ("401" or "403")
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of denied authorization decisions, by status.",
	},
	[]string{"status"},
)

// CartMutationsTotal counts cart aggregate mutations that completed.
// Label:
//   - op: "add_item", "set_quantity", "remove_item" or "clear"
var CartMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cart_mutations_total",
		Help:      "Total number of successful cart mutations, by operation.",
	},
	[]string{"op"},
)

// CartMutationDuration measures how long a cart mutation takes end-to-end,
// including the transaction and total recompute.
// Label:
//   - op: same values as CartMutationsTotal
var CartMutationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cart_mutation_duration_seconds",
		Help:      "Duration of cart mutations from handler entry to commit.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// OrdersCheckedOutTotal counts carts settled into orders.
var OrdersCheckedOutTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_checked_out_total",
		Help:      "Total number of carts settled into orders at checkout.",
	},
)
