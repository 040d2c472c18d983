package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores PostgreSQL connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string from the DB settings.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass),
		net.JoinHostPort(d.Host, d.Port), d.Name)
}

// Kafka stores request-event bus settings. Empty brokers disable the bus and
// the intake falls back to in-process dispatch.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Enabled reports whether the Kafka event bus is configured.
func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != "" && k.GroupID != ""
}

// Relay stores settings of the notification relay client.
type Relay struct {
	BaseURL string
	Timeout time.Duration
}

// Notify stores driver-resolution settings.
type Notify struct {
	Strategy string
}

// Pprof stores settings of the optional debug/pprof listener. An empty Addr
// disables it.
type Pprof struct {
	Addr string
	User string
	Pass string
}

// RateLimit stores per-client request limiting settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Config stores settings of the request service.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	Relay     Relay
	Notify    Notify
	RateLimit RateLimit
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		Relay:     DefaultRelay(),
		Notify:    DefaultNotify(),
		RateLimit: DefaultRateLimit(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	readEnv(&cfg.DB.Host, "POSTGRES_HOST")
	readEnv(&cfg.DB.Port, "POSTGRES_PORT")
	readEnv(&cfg.DB.User, "POSTGRES_USER")
	readEnv(&cfg.DB.Pass, "POSTGRES_PASSWORD")
	readEnv(&cfg.DB.Name, "POSTGRES_DB")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	readEnv(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	readEnv(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	readEnv(&cfg.Relay.BaseURL, "RELAY_URL")
	if v := os.Getenv("RELAY_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RELAY_TIMEOUT %q: %w", v, err)
		}
		cfg.Relay.Timeout = d
	}

	readEnv(&cfg.Notify.Strategy, "NOTIFY_STRATEGY")

	readEnv(&cfg.Pprof.Addr, "PPROF_ADDR")
	readEnv(&cfg.Pprof.User, "PPROF_USER")
	readEnv(&cfg.Pprof.Pass, "PPROF_PASS")

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_ENABLED %q: %w", v, err)
		}
		cfg.RateLimit.Enabled = b
	}
	if v := os.Getenv("RATE_LIMIT_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_RATE %q: %w", v, err)
		}
		cfg.RateLimit.Rate = f
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		cfg.RateLimit.Burst = n
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Relay.BaseURL, "relay-url", cfg.Relay.BaseURL, "base URL of the notification relay")
	pflag.StringVar(&cfg.Notify.Strategy, "notify-strategy", cfg.Notify.Strategy,
		"driver resolution strategy: route_matched or active_registry")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid postgres port %q: %w", c.DB.Port, err)
	}
	if c.Relay.Timeout <= 0 {
		return fmt.Errorf("invalid relay timeout: %s", c.Relay.Timeout)
	}
	switch c.Notify.Strategy {
	case StrategyRouteMatched, StrategyActiveRegistry:
	default:
		return fmt.Errorf("unknown notify strategy: %q", c.Notify.Strategy)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	return nil
}

func readEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
