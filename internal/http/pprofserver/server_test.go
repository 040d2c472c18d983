package pprofserver

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func callAuth(t *testing.T, cfg Config, remoteAddr, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := authOrLocalOnly(next, cfg)

	req := httptest.NewRequest(http.MethodGet, "http://example/debug/pprof/", nil)
	req.RemoteAddr = remoteAddr
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func basicAuth(userPass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(userPass))
}

func TestAuthOrLocalOnly_AllowsLoopbackWithoutAuth(t *testing.T) {
	t.Parallel()

	rr := callAuth(t, Config{}, "127.0.0.1:12345", "")
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestAuthOrLocalOnly_NonLoopback_EmptyCreds_Unauthorized(t *testing.T) {
	t.Parallel()

	rr := callAuth(t, Config{}, "8.8.8.8:54444", "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestAuthOrLocalOnly_NonLoopback_WrongCreds_Unauthorized(t *testing.T) {
	t.Parallel()

	rr := callAuth(t, Config{User: "u", Pass: "p"}, "8.8.8.8:54444", basicAuth("u:WRONG"))
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.NotEmpty(t, rr.Header().Get("WWW-Authenticate"))
}

func TestAuthOrLocalOnly_NonLoopback_CorrectCreds_Allows(t *testing.T) {
	t.Parallel()

	rr := callAuth(t, Config{User: "u", Pass: "p"}, "8.8.8.8:54444", basicAuth("u:p"))
	require.Equal(t, http.StatusTeapot, rr.Code)
}

func TestIsLoopback(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"127.0.0.1:123", true},
		{"127.0.0.1", true},
		{" 127.0.0.1 ", true},
		{"[::1]:123", true},
		{"8.8.8.8:1", false},
		{"not-an-ip:1", false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, isLoopback(tc.in), "isLoopback(%q)", tc.in)
	}
}

func TestSecureEq(t *testing.T) {
	t.Parallel()

	require.False(t, secureEq("a", "ab"))
	require.True(t, secureEq("abc", "abc"))
	require.False(t, secureEq("abc", "abd"))
}
