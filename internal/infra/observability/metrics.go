// Package observability exposes Prometheus metrics for the ledger.
// Counters are registered via promauto and scraped at /metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DeedsLogged counts successful deed logs by deed id.
	DeedsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "candyd_deeds_logged_total",
		Help: "Successful deed logs by deed.",
	}, []string{"deed"})

	// CandiesEarned counts candy actually credited to daily totals.
	CandiesEarned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "candyd_candies_earned_total",
		Help: "Candy credited through deeds and admin grants.",
	})

	// CandiesDeducted counts candy removed by penalties and deductions.
	CandiesDeducted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "candyd_candies_deducted_total",
		Help: "Candy removed by penalties and manual deductions.",
	})

	// Trades counts successful reward trades by reward id.
	Trades = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "candyd_trades_total",
		Help: "Successful reward trades by reward.",
	}, []string{"reward"})

	// SubmissionsResolved counts submission resolutions by outcome.
	SubmissionsResolved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "candyd_submissions_resolved_total",
		Help: "Submission resolutions by outcome.",
	}, []string{"status"})

	// RuleViolations counts mutations blocked by a domain rule.
	RuleViolations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "candyd_rule_violations_total",
		Help: "Ledger mutations blocked by a domain rule.",
	}, []string{"reason"})
)
