// Package metrics defines the custom Prometheus collectors for the banking
// API. It is the single source of truth for metric names, labels, and help
// strings; collectors register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bank"

// TokensIssuedTotal counts access tokens handed out by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// AuthDeniedTotal counts denied requests.
// Label:
//   - reason: "missing_token", "bad_header", "invalid_token", "forbidden"
var AuthDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denied_total",
		Help:      "Total number of requests denied by authentication or authorization.",
	},
	[]string{"reason"},
)

// RecordWritesTotal counts successful record mutations.
// Labels:
//   - entity: "user", "account", "transaction"
//   - op: "create", "update", "delete"
var RecordWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "record_writes_total",
		Help:      "Total number of successful record writes, by entity and operation.",
	},
	[]string{"entity", "op"},
)

// IdempotentReplaysTotal counts transaction posts short-circuited by a
// previously seen Idempotency-Key.
var IdempotentReplaysTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotent_replays_total",
		Help:      "Total number of transaction posts answered from the idempotency guard.",
	},
)
