package handlers

import (
	"context"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

type requestUsecase interface {
	CreateRequest(ctx context.Context, data domain.NewRequestData) (string, error)
	Get(ctx context.Context, id string) (*domain.CollectionRequest, error)
	ListByCenterName(ctx context.Context, centerName string) ([]domain.CollectionRequest, error)
	ListByCenterID(ctx context.Context, centerID string) ([]domain.CollectionRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
}

type centerUsecase interface {
	GetCenter(ctx context.Context, id string) (*domain.Center, error)
	ListCenters(ctx context.Context) ([]domain.Center, error)
}

type statsUsecase interface {
	Stats(ctx context.Context) (domain.RequestStats, error)
}
