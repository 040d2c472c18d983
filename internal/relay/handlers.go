package relay

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tinashecee/lab-center-request/internal/logx"
)

// Handlers serves the relay HTTP surface.
type Handlers struct {
	sender Sender
	logger logx.Logger
}

// NewHandlers creates relay Handlers.
func NewHandlers(sender Sender, logger logx.Logger) *Handlers {
	return &Handlers{sender: sender, logger: logger}
}

type sendRequest struct {
	Token      string         `json:"token"`
	Message    map[string]any `json:"message"`
	DriverID   string         `json:"driverId"`
	DriverName string         `json:"driverName"`
}

type sendResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Health handles GET /health. Reaching this handler at all means the fatal
// startup credential check has passed.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.write(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Notification server is running",
	})
}

// SendNotification handles POST /send-notification: one inbound call, one
// outbound gateway attempt, outcome reported synchronously.
func (h *Handlers) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, sendResponse{Success: false, Error: "invalid json"})
		return
	}

	if req.Token == "" || req.Message == nil {
		h.write(w, http.StatusBadRequest, sendResponse{Success: false, Error: "token and message are required"})
		return
	}

	title := stringField(req.Message, "title")
	if title == "" {
		title = "Notification"
	}
	body := stringField(req.Message, "body")

	id, err := h.sender.Send(r.Context(), req.Token, title, body, dataBlock(req.Message))
	if err != nil {
		h.logger.Error("notification send failed",
			logx.String("driver_id", req.DriverID),
			logx.String("driver_name", req.DriverName),
			logx.Err(err),
		)
		h.write(w, http.StatusInternalServerError, sendResponse{Success: false, Error: err.Error()})
		return
	}

	h.logger.Info("notification sent",
		logx.String("driver_id", req.DriverID),
		logx.String("driver_name", req.DriverName),
		logx.String("message_id", id),
	)
	h.write(w, http.StatusOK, sendResponse{Success: true, Response: id})
}

// dataKeys is the fixed metadata schema of the push payload. Every key is
// always present on the wire, stringified, with absent values as "".
var dataKeys = [...]string{
	"sample_id", "requestedAt", "caller_name", "caller_number",
	"lat", "lng", "message", "notification_type",
}

func dataBlock(message map[string]any) map[string]string {
	data := make(map[string]string, len(dataKeys))
	for _, key := range dataKeys {
		data[key] = stringField(message, key)
	}
	return data
}

func stringField(message map[string]any, key string) string {
	v, ok := message[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func (h *Handlers) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("json encode error", logx.Err(err))
	}
}
