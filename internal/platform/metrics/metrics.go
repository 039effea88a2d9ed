// Package metrics exposes prometheus counters for ledger activity.
// The tracker core itself carries no telemetry; counters are incremented
// at the HTTP boundary only.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CoinAdjustments counts balance-changing operations by action tag.
var CoinAdjustments = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "chorecoin",
	Name:      "coin_adjustments_total",
	Help:      "Successful balance-changing operations by action.",
}, []string{"action"})

// CoinsExchanged counts coins removed by exchange cash-outs.
var CoinsExchanged = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "chorecoin",
	Name:      "coins_exchanged_total",
	Help:      "Total coins cashed out via exchange.",
})

// AccountsCreated counts account creations.
var AccountsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "chorecoin",
	Name:      "accounts_created_total",
	Help:      "Accounts created since process start.",
})

// Resets counts destructive reset operations by scope (account or all).
var Resets = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "chorecoin",
	Name:      "resets_total",
	Help:      "Destructive reset operations by scope.",
}, []string{"scope"})
