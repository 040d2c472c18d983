package registry

import (
	"context"

	"github.com/tinashecee/lab-center-request/internal/domain"
)

// CenterStore is the center directory persistence the service relies on.
type CenterStore interface {
	Get(ctx context.Context, id string) (*domain.Center, error)
	List(ctx context.Context) ([]domain.Center, error)
}

// StatsStore computes read-only aggregates over collection requests.
type StatsStore interface {
	Summary(ctx context.Context) (domain.RequestStats, error)
}
