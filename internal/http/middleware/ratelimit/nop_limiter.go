package ratelimit

// NopLimiter admits everything. It stands in for the token bucket when rate
// limiting is disabled in config.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns a NopLimiter as a Limiter.
func NewNopLimiter() Limiter { return NopLimiter{} }
