// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_login_attempts_total",
		Help: "Login attempts by result.",
	}, []string{"result"})

	TokensIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_tokens_issued_total",
		Help: "Signed tokens issued by kind.",
	}, []string{"kind"})

	// SessionTransitions counts the session status reached after each token check.
	SessionTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_session_transitions_total",
		Help: "Session status reached after verifying a token, by token kind.",
	}, []string{"kind", "status"})

	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_rate_limited_total",
		Help: "Requests rejected by a rate limiter, by scope.",
	}, []string{"scope"})
)
