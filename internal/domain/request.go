package domain

import "time"

// Coordinates is a geographic lat/lng pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// CollectionRequest represents one field-sample pickup request raised by a
// lab-partner center.
//
// SampleID mirrors the storage key of the record itself. It is written in a
// second pass right after creation; an empty value reads as equal to ID.
// Route groups the request into a dispatch zone and is optional; when absent it
// is resolved lazily via the originating center. RequestedAt is the
// client-visible request timestamp, stamped independently of the server clock
// and used for display only.
type CollectionRequest struct {
	ID            string
	SampleID      string
	Status        RequestStatus
	Priority      RequestPriority
	CenterName    string
	CenterID      string
	CenterAddress string
	Coordinates   Coordinates
	CallerName    string
	CallerNumber  string
	Notes         string
	Route         string
	SampleType    string
	TestIDs       []string
	TestNames     []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	RequestedAt   string
}

// NewRequestData carries caller input for creating a collection request.
type NewRequestData struct {
	Priority      RequestPriority
	CenterName    string
	CenterID      string
	CenterAddress string
	Coordinates   *Coordinates
	CallerName    string
	CallerNumber  string
	Notes         string
	Route         string
	SampleType    string
	TestIDs       []string
	TestNames     []string
}

// RequestStats aggregates request counts per lifecycle status.
type RequestStats struct {
	Total    int64
	ByStatus map[RequestStatus]int64
}
