package relay

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	oldFlags := pflag.CommandLine
	oldArgs := os.Args
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	os.Args = []string{"cmd"}
	t.Cleanup(func() {
		pflag.CommandLine = oldFlags
		os.Args = oldArgs
	})
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "")
	t.Setenv("FCM_CREDENTIALS_FILE", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3004, cfg.Port)
	require.Equal(t, "firebase-service-account-key.json", cfg.CredentialsFile)
	require.Equal(t, 20, cfg.RateLimit)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "4004")
	t.Setenv("FCM_CREDENTIALS_FILE", "/etc/relay/creds.json")
	t.Setenv("RATE_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4004, cfg.Port)
	require.Equal(t, "/etc/relay/creds.json", cfg.CredentialsFile)
	require.Equal(t, 5, cfg.RateLimit)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	t.Setenv("PORT", "not-a-number")
	t.Setenv("FCM_CREDENTIALS_FILE", "")
	t.Setenv("RATE_LIMIT", "")

	_, err := Load()
	require.Error(t, err)
}
