package relay

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	defaultPort            = 3004
	defaultCredentialsFile = "firebase-service-account-key.json"
	defaultRateLimit       = 20
	defaultRateBurst       = 40
)

// Config stores relay process settings.
type Config struct {
	Port            int
	CredentialsFile string
	RateLimit       int // allowed requests per second per client IP
	RateBurst       int
}

// Load reads configuration from .env, environment variables and flags, in
// that order of precedence (flags win).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:            defaultPort,
		CredentialsFile: defaultCredentialsFile,
		RateLimit:       defaultRateLimit,
		RateBurst:       defaultRateBurst,
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse PORT: %w", err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("FCM_CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = n
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "listen port")
	pflag.StringVar(&cfg.CredentialsFile, "credentials-file", cfg.CredentialsFile, "path to the push gateway service account file")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.CredentialsFile == "" {
		return Config{}, fmt.Errorf("credentials file path is empty")
	}
	return cfg, nil
}
