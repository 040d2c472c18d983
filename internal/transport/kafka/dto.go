package kafka

import (
	"strings"

	"github.com/tinashecee/lab-center-request/internal/service/notify"
)

// EventDTO is the wire form of a request-created event.
type EventDTO struct {
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

// ToDomain converts EventDTO to notify.RequestEvent.
func ToDomain(dto EventDTO) notify.RequestEvent {
	return notify.RequestEvent{
		RequestID:    strings.TrimSpace(dto.RequestID),
		Route:        strings.TrimSpace(dto.Route),
		CenterID:     strings.TrimSpace(dto.CenterID),
		CenterName:   dto.CenterName,
		Priority:     dto.Priority,
		CallerName:   dto.CallerName,
		CallerNumber: dto.CallerNumber,
		Lat:          dto.Lat,
		Lng:          dto.Lng,
		Notes:        dto.Notes,
		RequestedAt:  dto.RequestedAt,
	}
}

// FromDomain converts notify.RequestEvent to its wire form.
func FromDomain(ev notify.RequestEvent) EventDTO {
	return EventDTO{
		RequestID:    ev.RequestID,
		Route:        ev.Route,
		CenterID:     ev.CenterID,
		CenterName:   ev.CenterName,
		Priority:     ev.Priority,
		CallerName:   ev.CallerName,
		CallerNumber: ev.CallerNumber,
		Lat:          ev.Lat,
		Lng:          ev.Lng,
		Notes:        ev.Notes,
		RequestedAt:  ev.RequestedAt,
	}
}
