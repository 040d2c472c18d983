package handlers

import (
	"time"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

func toNewRequestData(dto createRequestDTO) domain.NewRequestData {
	data := domain.NewRequestData{
		Priority:      domain.RequestPriority(dto.Priority),
		CenterName:    dto.CenterName,
		CenterID:      dto.CenterID,
		CenterAddress: dto.CenterAddress,
		CallerName:    dto.CallerName,
		CallerNumber:  dto.CallerNumber,
		Notes:         dto.Notes,
		Route:         dto.Route,
		SampleType:    dto.SampleType,
		TestIDs:       dto.TestIDs,
		TestNames:     dto.TestNames,
	}
	if dto.Coordinates != nil {
		data.Coordinates = &domain.Coordinates{Lat: dto.Coordinates.Lat, Lng: dto.Coordinates.Lng}
	}
	return data
}

func toRequestDTO(req *domain.CollectionRequest) requestDTO {
	return requestDTO{
		ID:            req.ID,
		SampleID:      req.SampleID,
		Status:        string(req.Status),
		Priority:      string(req.Priority),
		CenterName:    req.CenterName,
		CenterID:      req.CenterID,
		CenterAddress: req.CenterAddress,
		Coordinates:   coordinatesDTO{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng},
		CallerName:    req.CallerName,
		CallerNumber:  req.CallerNumber,
		Notes:         req.Notes,
		Route:         req.Route,
		SampleType:    req.SampleType,
		TestIDs:       req.TestIDs,
		TestNames:     req.TestNames,
		CreatedAt:     req.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     req.UpdatedAt.UTC().Format(time.RFC3339),
		RequestedAt:   req.RequestedAt,
	}
}

func toRequestDTOs(reqs []domain.CollectionRequest) []requestDTO {
	out := make([]requestDTO, 0, len(reqs))
	for i := range reqs {
		out = append(out, toRequestDTO(&reqs[i]))
	}
	return out
}

func toCenterDTO(c *domain.Center) centerDTO {
	return centerDTO{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		ContactPerson: c.ContactPerson,
		Coordinates:   coordinatesDTO{Lat: c.Coordinates.Lat, Lng: c.Coordinates.Lng},
		Status:        c.Status,
		Route:         c.Route,
	}
}

func toCenterDTOs(centers []domain.Center) []centerDTO {
	out := make([]centerDTO, 0, len(centers))
	for i := range centers {
		out = append(out, toCenterDTO(&centers[i]))
	}
	return out
}

func toStatsDTO(stats domain.RequestStats) statsDTO {
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[string(status)] = n
	}
	return statsDTO{Total: stats.Total, ByStatus: byStatus}
}
