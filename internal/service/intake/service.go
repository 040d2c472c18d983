package intake

import (
	"context"
	"strings"
	"time"

	"github.com/tinashecee/lab-center-request/internal/apperr"
	"github.com/tinashecee/lab-center-request/internal/domain"
	"github.com/tinashecee/lab-center-request/internal/logx"
	"github.com/tinashecee/lab-center-request/internal/service/notify"
)

type counter interface {
	Inc()
}

// Service coordinates the request intake pipeline: validate, persist,
// self-tag, then emit the post-commit notification event.
type Service struct {
	repo             RequestStore
	hook             Hook
	operationTimeout time.Duration
	logger           logx.Logger
	created          counter
	now              func() time.Time
}

// NewService creates and configures an intake Service. The created counter
// may be nil.
func NewService(repo RequestStore, hook Hook, timeout time.Duration, logger logx.Logger, created counter) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		hook:             hook,
		operationTimeout: timeout,
		logger:           logger,
		created:          created,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCreate(data *domain.NewRequestData) error {
	if strings.TrimSpace(data.CenterName) == "" {
		return apperr.ErrInvalid
	}
	if data.Coordinates == nil {
		return apperr.ErrInvalid
	}
	if data.Priority == "" {
		data.Priority = domain.PriorityNormal
	}
	if !data.Priority.Valid() {
		return apperr.ErrInvalid
	}
	if data.SampleType == "" {
		data.SampleType = "general"
	}
	return nil
}

// CreateRequest persists a new collection request and returns its identifier.
// Persistence is two writes: the insert, then the mandatory self-tagging of
// the record with its own key. Only after both succeed is the post-commit
// hook fired; the hook outcome never reaches the caller.
func (s *Service) CreateRequest(ctx context.Context, data domain.NewRequestData) (string, error) {
	if err := validateCreate(&data); err != nil {
		return "", err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &domain.CollectionRequest{
		Status:        domain.StatusPending,
		Priority:      data.Priority,
		CenterName:    data.CenterName,
		CenterID:      data.CenterID,
		CenterAddress: data.CenterAddress,
		Coordinates:   *data.Coordinates,
		CallerName:    data.CallerName,
		CallerNumber:  data.CallerNumber,
		Notes:         data.Notes,
		Route:         data.Route,
		SampleType:    data.SampleType,
		TestIDs:       data.TestIDs,
		TestNames:     data.TestNames,
		RequestedAt:   s.now().Format(time.RFC3339),
	}

	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetSampleID(ctx, id); err != nil {
		return "", err
	}

	if s.created != nil {
		s.created.Inc()
	}
	s.logger.Info("collection request created",
		logx.String("request_id", id),
		logx.String("center_name", req.CenterName),
		logx.String("priority", string(req.Priority)),
	)

	if err := s.hook.RequestCreated(ctx, requestEvent(id, req)); err != nil {
		// Best-effort side channel: the request stands regardless.
		s.logger.Warn("post-commit notification hook failed",
			logx.String("request_id", id),
			logx.Err(err),
		)
	}

	return id, nil
}

func requestEvent(id string, req *domain.CollectionRequest) notify.RequestEvent {
	return notify.RequestEvent{
		RequestID:    id,
		Route:        req.Route,
		CenterID:     req.CenterID,
		CenterName:   req.CenterName,
		Priority:     string(req.Priority),
		CallerName:   req.CallerName,
		CallerNumber: req.CallerNumber,
		Lat:          req.Coordinates.Lat,
		Lng:          req.Coordinates.Lng,
		Notes:        req.Notes,
		RequestedAt:  req.RequestedAt,
	}
}

// Get retrieves a request by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.CollectionRequest, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, apperr.ErrNotFound
	}
	return req, nil
}

// ListByCenterName returns a center's requests by its display name.
func (s *Service) ListByCenterName(ctx context.Context, centerName string) ([]domain.CollectionRequest, error) {
	if strings.TrimSpace(centerName) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByCenterName(ctx, centerName)
}

// ListByCenterID returns a center's requests by its identifier.
func (s *Service) ListByCenterID(ctx context.Context, centerID string) ([]domain.CollectionRequest, error) {
	if strings.TrimSpace(centerID) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListByCenterID(ctx, centerID)
}

// UpdateStatus moves a request through its lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	if strings.TrimSpace(id) == "" || !status.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
