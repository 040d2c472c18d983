package registry

import (
	"context"
	"strings"
	"time"

	"github.com/tinashecee/lab-center-request/internal/apperr"
	"github.com/tinashecee/lab-center-request/internal/domain"
)

// Service exposes the center directory and request aggregates.
type Service struct {
	centers          CenterStore
	stats            StatsStore
	operationTimeout time.Duration
}

// NewService creates a registry Service.
func NewService(centers CenterStore, stats StatsStore, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		centers:          centers,
		stats:            stats,
		operationTimeout: timeout,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// GetCenter returns one center by its identifier.
func (s *Service) GetCenter(ctx context.Context, id string) (*domain.Center, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.centers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// ListCenters returns all active centers.
func (s *Service) ListCenters(ctx context.Context) ([]domain.Center, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.centers.List(ctx)
}

// Stats returns request counts grouped by lifecycle status.
func (s *Service) Stats(ctx context.Context) (domain.RequestStats, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.stats.Summary(ctx)
}
