package config

import "time"

const defaultPort = 8080

// Driver resolution strategies. Route-matched is the authoritative default;
// the active registry broadcast is an explicit alternate.
const (
	StrategyRouteMatched   = "route_matched"
	StrategyActiveRegistry = "active_registry"
)

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "lab_requests",
}

var defaultRelay = Relay{
	BaseURL: "http://localhost:3004",
	Timeout: 10 * time.Second,
}

var defaultNotify = Notify{
	Strategy: StrategyRouteMatched,
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default Kafka settings (disabled).
func DefaultKafka() Kafka {
	return Kafka{}
}

// DefaultRelay returns the default relay client settings.
func DefaultRelay() Relay {
	return defaultRelay
}

// DefaultNotify returns the default notification settings.
func DefaultNotify() Notify {
	return defaultNotify
}

// DefaultRateLimit returns the default rate limit settings (disabled).
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
