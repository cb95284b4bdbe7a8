// Wayfinder - Real-Time Place Ranking and Personalization Engine
// Copyright 2026 Thomas Petersen (thomaspetersen1)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/thomaspetersen1/wayfinder

// Package metrics provides Prometheus instrumentation for the ranking engine:
// request throughput and latency, feedback routing outcomes, oracle health,
// and state persistence failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RankRequestsTotal counts ranking requests, partitioned by whether the
	// response was served in degraded (bandit-only) mode.
	RankRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rank_requests_total",
			Help: "Total number of ranking requests",
		},
		[]string{"degraded"},
	)

	// RankLatency observes end-to-end ranking latency.
	RankLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rank_duration_seconds",
			Help:    "Ranking request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	// RankCandidates observes the number of candidates scored per request.
	RankCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rank_candidates",
			Help:    "Number of candidates scored per ranking request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// FeedbackEventsTotal counts feedback events by routed outcome
	// (positive, negative, ignore).
	FeedbackEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_events_total",
			Help: "Total number of feedback events by learning outcome",
		},
		[]string{"outcome"},
	)

	// OracleFailuresTotal counts oracle scoring failures, including circuit
	// breaker rejections.
	OracleFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "oracle_failures_total",
			Help: "Total number of relevance oracle scoring failures",
		},
	)

	// StatePersistFailuresTotal counts failed state file writes by store.
	// Failures are non-fatal; in-memory state remains authoritative.
	StatePersistFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_persist_failures_total",
			Help: "Total number of failed state persistence writes",
		},
		[]string{"store"},
	)

	// BanditArms tracks the current number of bandit arms in memory.
	// Arms are never pruned, so this gauge only grows within a process.
	BanditArms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bandit_arms",
			Help: "Current number of bandit arms held in memory",
		},
	)

	// UserProfiles tracks the current number of stored user profiles.
	UserProfiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "user_profiles",
			Help: "Current number of user profiles held in memory",
		},
	)
)
