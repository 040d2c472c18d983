package notify

// RequestEvent is the post-commit event emitted after a collection request is
// persisted. It carries everything the notification pipeline needs so that no
// second read of the request record is required.
type RequestEvent struct {
	RequestID    string  `json:"request_id"`
	Route        string  `json:"route"`
	CenterID     string  `json:"center_id"`
	CenterName   string  `json:"center_name"`
	Priority     string  `json:"priority"`
	CallerName   string  `json:"caller_name"`
	CallerNumber string  `json:"caller_number"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Notes        string  `json:"notes"`
	RequestedAt  string  `json:"requested_at"`
}
