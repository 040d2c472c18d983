package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRequestsCreatedTotal returns a Prometheus counter for the number of persisted collection requests
func NewRequestsCreatedTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requests_created_total",
		Help: "Total number of persisted collection requests",
	})
}

// NewDispatchAttemptsTotal returns a Prometheus counter for the number of per-driver notification attempts
func NewDispatchAttemptsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_attempts_total",
		Help: "Total number of per-driver notification dispatch attempts",
	})
}

// NewDispatchFailuresTotal returns a Prometheus counter for the number of failed notification attempts
func NewDispatchFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_failures_total",
		Help: "Total number of failed per-driver notification dispatch attempts",
	})
}

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}
