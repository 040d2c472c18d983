package domain

import "strings"

type (
	// RequestStatus represents the lifecycle status of a collection request.
	RequestStatus string
	// RequestPriority represents the urgency of a collection request.
	RequestPriority string
)

// List of possible request statuses
const (
	StatusPending    RequestStatus = "pending"
	StatusCollected  RequestStatus = "collected"
	StatusRegistered RequestStatus = "registered"
	StatusReceived   RequestStatus = "received"
	StatusProcessing RequestStatus = "processing"
	StatusCompleted  RequestStatus = "completed"
	StatusDelivered  RequestStatus = "delivered"
	StatusCancelled  RequestStatus = "cancelled"
	StatusRejected   RequestStatus = "rejected"
)

// List of possible request priorities
const (
	PriorityLow    RequestPriority = "low"
	PriorityNormal RequestPriority = "normal"
	PriorityHigh   RequestPriority = "high"
	PriorityUrgent RequestPriority = "urgent"
)

// DriverActive marks a driver visible to the active-registry resolution
// strategy.
const DriverActive DriverStatus = "active"

var allowedStatuses = [...]RequestStatus{
	StatusPending, StatusCollected, StatusRegistered, StatusReceived,
	StatusProcessing, StatusCompleted, StatusDelivered,
	StatusCancelled, StatusRejected,
}

var allowedPriorities = [...]RequestPriority{
	PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent,
}

// Valid checks if the RequestStatus is valid
func (s RequestStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the RequestPriority is valid
func (p RequestPriority) Valid() bool {
	for _, v := range allowedPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// NormalizeStatus lowercases and trims a raw status value.
func NormalizeStatus(raw string) RequestStatus {
	return RequestStatus(strings.ToLower(strings.TrimSpace(raw)))
}
