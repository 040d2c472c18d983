package domain

// NotificationPayload is the wire record handed to the notification relay.
// Data carries flat string-valued metadata; every key is present even when the
// source value was absent, so the receiving side can rely on field presence.
type NotificationPayload struct {
	Title string
	Body  string
	Data  map[string]string
}

// DispatchTarget pairs a driver identity with its push address for one fan-out
// attempt.
type DispatchTarget struct {
	DriverID   string
	DriverName string
	PushToken  string
}

// DispatchOutcome is the per-driver result of one fan-out attempt. Ephemeral;
// logged, never persisted.
type DispatchOutcome struct {
	DriverID   string
	DriverName string
	OK         bool
	MessageID  string
	Error      string
}
