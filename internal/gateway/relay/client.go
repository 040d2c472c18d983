package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// Client submits individual notifications to the relay service, which holds
// the sole push-gateway credential.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a relay client with the given base URL and timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

type sendRequest struct {
	Token      string            `json:"token"`
	Message    map[string]string `json:"message"`
	DriverID   string            `json:"driverId,omitempty"`
	DriverName string            `json:"driverName,omitempty"`
}

type sendResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Send submits one notification for one driver target and returns the
// gateway-assigned message ID. Exactly one attempt is made; any failure is
// reported to the caller, never retried here.
func (c *Client) Send(ctx context.Context, target domain.DispatchTarget, payload domain.NotificationPayload) (string, error) {
	message := make(map[string]string, len(payload.Data)+2)
	for k, v := range payload.Data {
		message[k] = v
	}
	message["title"] = payload.Title
	message["body"] = payload.Body

	body, err := json.Marshal(sendRequest{
		Token:      target.PushToken,
		Message:    message,
		DriverID:   target.DriverID,
		DriverName: target.DriverName,
	})
	if err != nil {
		return "", fmt.Errorf("relay client: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/send-notification", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("relay client: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay client: send: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("relay client: decode response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !out.Success {
		if out.Error != "" {
			return "", fmt.Errorf("relay rejected notification: %s", out.Error)
		}
		return "", fmt.Errorf("relay returned status %d", resp.StatusCode)
	}
	return out.Response, nil
}
