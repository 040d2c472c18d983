package ratelimit

import "time"

// Clock abstracts time for the token bucket so refill math is testable.
type Clock interface {
	Now() time.Time
}

// RealClock is the wall-clock implementation used outside tests.
type RealClock struct{}

// Now returns the current wall-clock time.
func (RealClock) Now() time.Time { return time.Now() }
