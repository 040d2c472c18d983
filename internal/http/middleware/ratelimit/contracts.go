package ratelimit

// Limiter decides whether one more request is allowed for a key. The
// middleware keys by client IP.
type Limiter interface {
	Allow(key string) bool
}
