package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tinashecee/lab-center-request/internal/logx"
)

type stubSender struct {
	lastToken string
	lastTitle string
	lastBody  string
	lastData  map[string]string
	id        string
	err       error
}

func (s *stubSender) Send(_ context.Context, token, title, body string, data map[string]string) (string, error) {
	s.lastToken = token
	s.lastTitle = title
	s.lastBody = body
	s.lastData = data
	return s.id, s.err
}

func postSend(t *testing.T, h *Handlers, body string) (*httptest.ResponseRecorder, sendResponse) {
	t.Helper()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send-notification", strings.NewReader(body))
	h.SendNotification(rr, req)

	var resp sendResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return rr, resp
}

func TestSendNotification_Success(t *testing.T) {
	t.Parallel()

	sender := &stubSender{id: "projects/p/messages/123"}
	h := NewHandlers(sender, logx.Nop())

	rr, resp := postSend(t, h, `{
		"token": "tok-1",
		"message": {
			"title": "New Sample Request",
			"body": "Clinic-7 requested a pickup",
			"sample_id": "req-1",
			"lat": -17.8,
			"lng": 31,
			"notification_type": "sample_request"
		},
		"driverId": "d1",
		"driverName": "T. Moyo"
	}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, resp.Success)
	require.Equal(t, "projects/p/messages/123", resp.Response)

	require.Equal(t, "tok-1", sender.lastToken)
	require.Equal(t, "New Sample Request", sender.lastTitle)
	require.Equal(t, "Clinic-7 requested a pickup", sender.lastBody)
	require.Equal(t, "req-1", sender.lastData["sample_id"])
	require.Equal(t, "-17.8", sender.lastData["lat"])
	require.Equal(t, "31", sender.lastData["lng"])
	require.Equal(t, "sample_request", sender.lastData["notification_type"])
	require.Equal(t, "", sender.lastData["caller_name"], "absent keys are present as empty strings")
}

func TestSendNotification_DefaultTitle(t *testing.T) {
	t.Parallel()

	sender := &stubSender{id: "id-1"}
	h := NewHandlers(sender, logx.Nop())

	rr, resp := postSend(t, h, `{"token":"tok-1","message":{"body":"b"}}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, resp.Success)
	require.Equal(t, "Notification", sender.lastTitle)
}

func TestSendNotification_MissingFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"no message", `{"token":"tok-1"}`},
		{"no token", `{"message":{"title":"A"}}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewHandlers(&stubSender{}, logx.Nop())
			rr, resp := postSend(t, h, tc.body)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			require.False(t, resp.Success)
			require.Equal(t, "token and message are required", resp.Error)
		})
	}
}

func TestSendNotification_BadJSON(t *testing.T) {
	t.Parallel()

	h := NewHandlers(&stubSender{}, logx.Nop())
	rr, resp := postSend(t, h, "{nope")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "invalid json", resp.Error)
}

func TestSendNotification_GatewayError(t *testing.T) {
	t.Parallel()

	sender := &stubSender{err: errors.New("registration-token-not-registered")}
	h := NewHandlers(sender, logx.Nop())

	rr, resp := postSend(t, h, `{"token":"tok-1","message":{"title":"A"}}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "registration-token-not-registered", resp.Error)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := NewHandlers(&stubSender{}, logx.Nop())

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, "ok", resp["status"])
	require.Equal(t, "Notification server is running", resp["message"])
}

func TestStringField(t *testing.T) {
	t.Parallel()

	msg := map[string]any{
		"s":   "text",
		"f":   42.5,
		"i":   float64(7),
		"b":   true,
		"nil": nil,
	}

	require.Equal(t, "text", stringField(msg, "s"))
	require.Equal(t, "42.5", stringField(msg, "f"))
	require.Equal(t, "7", stringField(msg, "i"))
	require.Equal(t, "true", stringField(msg, "b"))
	require.Equal(t, "", stringField(msg, "nil"))
	require.Equal(t, "", stringField(msg, "absent"))
}
