package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tinashecee/lab-center-request/internal/metrics"
)

type appMetrics struct {
	requestsCreated   prometheus.Counter
	dispatchAttempts  prometheus.Counter
	dispatchFailures  prometheus.Counter
	rateLimitExceeded prometheus.Counter
}

func newMetrics() *appMetrics {
	return &appMetrics{
		requestsCreated:   registerCounter(metrics.NewRequestsCreatedTotal()),
		dispatchAttempts:  registerCounter(metrics.NewDispatchAttemptsTotal()),
		dispatchFailures:  registerCounter(metrics.NewDispatchFailuresTotal()),
		rateLimitExceeded: registerCounter(metrics.NewRateLimitExceededTotal()),
	}
}

// registerCounter registers the counter with the default registry, reusing
// the already registered collector when a container is built more than once
// in the same process (tests do this).
func registerCounter(c prometheus.Counter) prometheus.Counter {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
			return existing
		}
	}
	return c
}
